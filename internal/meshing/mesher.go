package meshing

import (
	"github.com/aquilax/go-perlin"
	"github.com/go-gl/mathgl/mgl32"

	"torusvox/internal/world"
)

// Height-tier base colors. A voxel's tier depends on its depth below the
// column surface: topmost is grass, the band within 3 below is dirt, the
// rest is stone.
var (
	grassColor = mgl32.Vec3{0.35, 0.62, 0.28}
	dirtColor  = mgl32.Vec3{0.52, 0.38, 0.26}
	stoneColor = mgl32.Vec3{0.50, 0.50, 0.54}
)

const (
	// sideShade darkens side faces relative to the top to approximate
	// directional shading without per-face lighting.
	sideShade = 0.8

	// Detail-tint noise parameters. Sampled at wrapped column coordinates
	// so the tint stays consistent across the world seam.
	tintFrequency = 0.13
	tintStrength  = 0.05
)

// ChunkMesh is a renderable surface: flat position/normal/color triples,
// implicitly triangulated in groups of three vertices.
type ChunkMesh struct {
	Positions []float32
	Normals   []float32
	Colors    []float32
}

// VertexCount returns the number of vertices in the mesh.
func (m *ChunkMesh) VertexCount() int {
	return len(m.Positions) / 3
}

// Interleaved packs the mesh as pos.xyz + normal.xyz + color.rgb per vertex
// for a single-VBO upload.
func (m *ChunkMesh) Interleaved() []float32 {
	n := m.VertexCount()
	out := make([]float32, 0, n*9)
	for i := 0; i < n; i++ {
		out = append(out,
			m.Positions[i*3], m.Positions[i*3+1], m.Positions[i*3+2],
			m.Normals[i*3], m.Normals[i*3+1], m.Normals[i*3+2],
			m.Colors[i*3], m.Colors[i*3+1], m.Colors[i*3+2],
		)
	}
	return out
}

// Mesher converts heightmap regions into chunk surfaces. The perlin detail
// field modulates tier colors per column; it is seeded once so meshes are
// reproducible.
type Mesher struct {
	tint *perlin.Perlin
}

// NewMesher creates a mesher whose color detail noise is fixed to the seed.
func NewMesher(seed int64) *Mesher {
	return &Mesher{
		tint: perlin.NewPerlin(1.5, 2.0, 2, seed),
	}
}

// columnTint returns a small deterministic color offset for a column. The
// coordinates are wrapped by the world size so the tint repeats with the
// terrain.
func (me *Mesher) columnTint(wx, wz, size int) float32 {
	jx := float64(world.Wrap(wx, size)) * tintFrequency
	jz := float64(world.Wrap(wz, size)) * tintFrequency
	return float32(me.tint.Noise2D(jx, jz)) * tintStrength
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func tintColor(base mgl32.Vec3, j float32) mgl32.Vec3 {
	return mgl32.Vec3{clamp01(base[0] + j), clamp01(base[1] + j), clamp01(base[2] + j)}
}

// tierColor picks the height-tier base color for voxel level y in a column
// of the given surface height.
func tierColor(y, height int) mgl32.Vec3 {
	switch {
	case y == height-1:
		return grassColor
	case y > height-4:
		return dirtColor
	default:
		return stoneColor
	}
}

// Mesh builds the surface for the chunk at (chunkX, chunkZ). Chunk
// coordinates are unbounded; column heights are read through the heightmap's
// wrapping lookup, while vertex positions stay in unwrapped chunk space so
// meshes tile seamlessly around the player. Every voxel level emits a top
// quad; the four side quads are emitted only for the column's topmost voxel.
// Returns nil when the chunk contributes no vertices.
func (me *Mesher) Mesh(hm *world.HeightMap, chunkX, chunkZ int) *ChunkMesh {
	mesh := &ChunkMesh{}

	// emitQuad pushes one quad as two consistently wound triangles
	// (v0,v1,v2) and (v2,v3,v0).
	emitQuad := func(v0, v1, v2, v3, normal, color mgl32.Vec3) {
		for _, v := range [6]mgl32.Vec3{v0, v1, v2, v2, v3, v0} {
			mesh.Positions = append(mesh.Positions, v[0], v[1], v[2])
			mesh.Normals = append(mesh.Normals, normal[0], normal[1], normal[2])
			mesh.Colors = append(mesh.Colors, color[0], color[1], color[2])
		}
	}

	baseX := chunkX * world.ChunkSize
	baseZ := chunkZ * world.ChunkSize

	for lz := 0; lz < world.ChunkSize; lz++ {
		for lx := 0; lx < world.ChunkSize; lx++ {
			wx := baseX + lx
			wz := baseZ + lz
			height := hm.HeightAt(wx, wz)
			j := me.columnTint(wx, wz, hm.Size())

			x0 := float32(wx) * world.VoxelSize
			x1 := x0 + world.VoxelSize
			z0 := float32(wz) * world.VoxelSize
			z1 := z0 + world.VoxelSize

			for y := 0; y < height; y++ {
				top := tintColor(tierColor(y, height), j)
				yTop := float32(y+1) * world.VoxelSize
				y0 := float32(y) * world.VoxelSize

				// Top face, always. CCW as seen from above.
				emitQuad(
					mgl32.Vec3{x0, yTop, z0},
					mgl32.Vec3{x0, yTop, z1},
					mgl32.Vec3{x1, yTop, z1},
					mgl32.Vec3{x1, yTop, z0},
					mgl32.Vec3{0, 1, 0},
					top,
				)

				if y != height-1 {
					continue
				}

				// Side faces only at the column surface.
				side := top.Mul(sideShade)

				// +X (east)
				emitQuad(
					mgl32.Vec3{x1, y0, z1},
					mgl32.Vec3{x1, y0, z0},
					mgl32.Vec3{x1, yTop, z0},
					mgl32.Vec3{x1, yTop, z1},
					mgl32.Vec3{1, 0, 0},
					side,
				)
				// -X (west)
				emitQuad(
					mgl32.Vec3{x0, y0, z0},
					mgl32.Vec3{x0, y0, z1},
					mgl32.Vec3{x0, yTop, z1},
					mgl32.Vec3{x0, yTop, z0},
					mgl32.Vec3{-1, 0, 0},
					side,
				)
				// +Z (south)
				emitQuad(
					mgl32.Vec3{x0, y0, z1},
					mgl32.Vec3{x1, y0, z1},
					mgl32.Vec3{x1, yTop, z1},
					mgl32.Vec3{x0, yTop, z1},
					mgl32.Vec3{0, 0, 1},
					side,
				)
				// -Z (north)
				emitQuad(
					mgl32.Vec3{x1, y0, z0},
					mgl32.Vec3{x0, y0, z0},
					mgl32.Vec3{x0, yTop, z0},
					mgl32.Vec3{x1, yTop, z0},
					mgl32.Vec3{0, 0, -1},
					side,
				)
			}
		}
	}

	if len(mesh.Positions) == 0 {
		return nil
	}
	return mesh
}
