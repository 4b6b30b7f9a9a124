package graphics

import (
	"github.com/go-gl/mathgl/mgl32"

	"torusvox/internal/player"
)

var avatarColor = mgl32.Vec3{0.82, 0.33, 0.25}

// avatarVertices builds the avatar's box, centered on the origin so the model
// matrix can place it at the controller's center. Interleaved pos+normal+color
// like the chunk meshes, so it renders through the terrain shader.
func avatarVertices() []float32 {
	hw := float32(player.PlayerRadius)
	hh := float32(player.PlayerHeight) / 2

	var data []float32
	emitQuad := func(v0, v1, v2, v3, normal mgl32.Vec3) {
		for _, v := range [6]mgl32.Vec3{v0, v1, v2, v2, v3, v0} {
			data = append(data,
				v[0], v[1], v[2],
				normal[0], normal[1], normal[2],
				avatarColor[0], avatarColor[1], avatarColor[2],
			)
		}
	}

	// Top (+Y)
	emitQuad(
		mgl32.Vec3{-hw, hh, -hw},
		mgl32.Vec3{-hw, hh, hw},
		mgl32.Vec3{hw, hh, hw},
		mgl32.Vec3{hw, hh, -hw},
		mgl32.Vec3{0, 1, 0},
	)
	// Bottom (-Y)
	emitQuad(
		mgl32.Vec3{-hw, -hh, hw},
		mgl32.Vec3{-hw, -hh, -hw},
		mgl32.Vec3{hw, -hh, -hw},
		mgl32.Vec3{hw, -hh, hw},
		mgl32.Vec3{0, -1, 0},
	)
	// +X
	emitQuad(
		mgl32.Vec3{hw, -hh, hw},
		mgl32.Vec3{hw, -hh, -hw},
		mgl32.Vec3{hw, hh, -hw},
		mgl32.Vec3{hw, hh, hw},
		mgl32.Vec3{1, 0, 0},
	)
	// -X
	emitQuad(
		mgl32.Vec3{-hw, -hh, -hw},
		mgl32.Vec3{-hw, -hh, hw},
		mgl32.Vec3{-hw, hh, hw},
		mgl32.Vec3{-hw, hh, -hw},
		mgl32.Vec3{-1, 0, 0},
	)
	// +Z
	emitQuad(
		mgl32.Vec3{-hw, -hh, hw},
		mgl32.Vec3{hw, -hh, hw},
		mgl32.Vec3{hw, hh, hw},
		mgl32.Vec3{-hw, hh, hw},
		mgl32.Vec3{0, 0, 1},
	)
	// -Z
	emitQuad(
		mgl32.Vec3{hw, -hh, -hw},
		mgl32.Vec3{-hw, -hh, -hw},
		mgl32.Vec3{-hw, hh, -hw},
		mgl32.Vec3{hw, hh, -hw},
		mgl32.Vec3{0, 0, -1},
	)

	return data
}
