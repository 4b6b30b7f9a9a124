package player

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"torusvox/internal/config"
	"torusvox/internal/profiling"
	"torusvox/internal/world"
)

const (
	PlayerHeight = 1.8
	PlayerRadius = 0.4

	MoveSpeed = 5.0 // world units per second
)

// MoveIntent is the digested movement input for one tick. Opposed directions
// cancel; a diagonal is normalized before speed is applied.
type MoveIntent struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
}

// Controller owns the avatar's pose on the torus. Position is the avatar's
// center; x and z always stay inside [0, WorldSize) and y is glued to the
// terrain, so there is no vertical velocity to integrate.
type Controller struct {
	Position mgl32.Vec3
	Heading  float32 // radians, accumulated without wrapping

	heightMap *world.HeightMap
}

// New places a controller on the terrain surface at the given column.
func New(hm *world.HeightMap, x, z float32) *Controller {
	c := &Controller{
		Position:  mgl32.Vec3{world.WrapPos(x), 0, world.WrapPos(z)},
		heightMap: hm,
	}
	c.clampToGround()
	return c
}

// Advance runs one movement tick: mouse-look, walking, wrapping, and the
// ground clamp, in that order. mouseDX is the cursor travel in pixels since
// the previous tick; it only steers while look is active (pointer captured).
func (c *Controller) Advance(dt float32, intent MoveIntent, mouseDX float32, lookActive bool) {
	defer profiling.Track("player.Advance")()

	if lookActive {
		c.Heading -= mouseDX * config.GetMouseSensitivity()
	}

	c.move(dt, intent)
	c.Position[0] = world.WrapPos(c.Position[0])
	c.Position[2] = world.WrapPos(c.Position[2])
	c.clampToGround()
}

// move translates the local intent vector into world space by the heading and
// walks at MoveSpeed. Forward is -z in local space, matching a camera that
// sits behind the avatar at heading zero.
func (c *Controller) move(dt float32, intent MoveIntent) {
	var lx, lz float32
	if intent.Forward {
		lz--
	}
	if intent.Backward {
		lz++
	}
	if intent.Left {
		lx--
	}
	if intent.Right {
		lx++
	}
	if lx == 0 && lz == 0 {
		return
	}

	// Normalize so diagonals are not faster than cardinals.
	inv := 1 / math32.Sqrt(lx*lx+lz*lz)
	lx *= inv
	lz *= inv

	sin, cos := math32.Sin(c.Heading), math32.Cos(c.Heading)
	wx := lx*cos + lz*sin
	wz := -lx*sin + lz*cos

	c.Position[0] += wx * MoveSpeed * dt
	c.Position[2] += wz * MoveSpeed * dt
}

// clampToGround pins the avatar's center to the column surface beneath it.
func (c *Controller) clampToGround() {
	col := c.heightMap.HeightAt(
		int(math32.Floor(c.Position.X())),
		int(math32.Floor(c.Position.Z())),
	)
	c.Position[1] = float32(col)*world.VoxelSize + PlayerHeight/2
}

// GroundHeight returns the terrain height under the avatar.
func (c *Controller) GroundHeight() int {
	return c.heightMap.HeightAt(
		int(math32.Floor(c.Position.X())),
		int(math32.Floor(c.Position.Z())),
	)
}
