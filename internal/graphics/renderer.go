package graphics

import (
	_ "embed"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"torusvox/internal/config"
	"torusvox/internal/meshing"
	"torusvox/internal/player"
	"torusvox/internal/profiling"
)

//go:embed shaders/terrain.vert.glsl
var terrainVertSource string

//go:embed shaders/terrain.frag.glsl
var terrainFragSource string

// Sky and sun. The light direction points from the sun toward the terrain.
var (
	skyColor = mgl32.Vec3{0.53, 0.81, 0.92}
	lightDir = mgl32.Vec3{-0.4, -1.0, -0.3}
)

// chunkBuffer is one chunk's uploaded geometry.
type chunkBuffer struct {
	vao   uint32
	vbo   uint32
	count int32
}

// Renderer draws the streamed chunk meshes and the avatar. It mirrors the
// chunk manager's contents into GPU buffers: meshes are immutable after
// meshing, so a chunk is uploaded once and only deleted when the manager
// evicts it.
type Renderer struct {
	shader  *Shader
	camera  *Camera
	buffers map[meshing.ChunkKey]chunkBuffer
	avatar  chunkBuffer
}

// NewRenderer compiles the terrain shader and configures the GL state.
// Requires a current GL context.
func NewRenderer(width, height int) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	shader, err := NewShader(terrainVertSource, terrainFragSource)
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		shader:  shader,
		camera:  NewCamera(width, height),
		buffers: make(map[meshing.ChunkKey]chunkBuffer),
	}
	r.avatar = uploadVertices(avatarVertices())
	return r, nil
}

// Render draws one frame: terrain chunks from the manager, then the avatar.
func (r *Renderer) Render(pose player.CameraPose, avatar *player.Controller, chunks *meshing.Manager) {
	defer profiling.Track("render.Frame")()

	r.syncChunks(chunks)

	gl.ClearColor(skyColor.X(), skyColor.Y(), skyColor.Z(), 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if config.GetWireframe() {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		defer gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	view := pose.ViewMatrix()
	projection := r.camera.GetProjectionMatrix()
	identity := mgl32.Ident4()

	r.shader.Use()
	r.shader.SetMatrix4("view", &view[0])
	r.shader.SetMatrix4("projection", &projection[0])
	r.shader.SetVector3("lightDir", lightDir.X(), lightDir.Y(), lightDir.Z())

	// Terrain is meshed in world space; model stays identity.
	r.shader.SetMatrix4("model", &identity[0])
	for _, buf := range r.buffers {
		gl.BindVertexArray(buf.vao)
		gl.DrawArrays(gl.TRIANGLES, 0, buf.count)
	}

	model := mgl32.Translate3D(avatar.Position.X(), avatar.Position.Y(), avatar.Position.Z()).
		Mul4(mgl32.HomogRotate3DY(avatar.Heading))
	r.shader.SetMatrix4("model", &model[0])
	gl.BindVertexArray(r.avatar.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, r.avatar.count)

	gl.BindVertexArray(0)
}

// syncChunks uploads newly meshed chunks and frees buffers the manager has
// evicted.
func (r *Renderer) syncChunks(chunks *meshing.Manager) {
	defer profiling.Track("render.syncChunks")()

	chunks.ForEach(func(key meshing.ChunkKey, mesh *meshing.ChunkMesh) {
		if _, ok := r.buffers[key]; ok {
			return
		}
		r.buffers[key] = uploadVertices(mesh.Interleaved())
	})

	for key, buf := range r.buffers {
		if !chunks.Has(key) {
			deleteBuffer(buf)
			delete(r.buffers, key)
		}
	}
}

// uploadVertices creates a VAO/VBO pair for interleaved pos+normal+color
// vertex data (stride of 9 floats).
func uploadVertices(data []float32) chunkBuffer {
	var buf chunkBuffer
	buf.count = int32(len(data) / 9)

	gl.GenVertexArrays(1, &buf.vao)
	gl.GenBuffers(1, &buf.vbo)
	gl.BindVertexArray(buf.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, buf.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)

	// Position attribute (location = 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 9*4, 0)

	// Normal attribute (location = 1)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, 9*4, 3*4)

	// Color attribute (location = 2)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 3, gl.FLOAT, false, 9*4, 6*4)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return buf
}

func deleteBuffer(buf chunkBuffer) {
	gl.DeleteBuffers(1, &buf.vbo)
	gl.DeleteVertexArrays(1, &buf.vao)
}

// UpdateViewport updates the camera's viewport dimensions
func (r *Renderer) UpdateViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	r.camera.SetViewport(width, height)
}

// ChunkBufferCount returns how many chunk meshes live on the GPU.
func (r *Renderer) ChunkBufferCount() int {
	return len(r.buffers)
}

// Dispose frees all GPU resources.
func (r *Renderer) Dispose() {
	for key, buf := range r.buffers {
		deleteBuffer(buf)
		delete(r.buffers, key)
	}
	deleteBuffer(r.avatar)
	r.shader.Delete()
}
