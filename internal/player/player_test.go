package player

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"torusvox/internal/config"
	"torusvox/internal/noise"
	"torusvox/internal/world"
)

const eps = 1e-4

func newTestController(t *testing.T) *Controller {
	t.Helper()
	hm := world.BuildHeightMap(noise.NewField(42), 64)
	return New(hm, 32, 32)
}

func near(a, b float32) bool {
	return math32.Abs(a-b) < eps
}

func TestNewStartsOnGround(t *testing.T) {
	c := newTestController(t)

	want := float32(c.GroundHeight()) + PlayerHeight/2
	if c.Position.Y() != want {
		t.Errorf("initial y = %f, want %f", c.Position.Y(), want)
	}
}

// TestAdvanceForward verifies forward at heading zero walks toward -z at
// MoveSpeed.
func TestAdvanceForward(t *testing.T) {
	c := newTestController(t)
	x0, z0 := c.Position.X(), c.Position.Z()

	c.Advance(0.1, MoveIntent{Forward: true}, 0, false)

	if !near(c.Position.X(), x0) {
		t.Errorf("x moved: %f -> %f", x0, c.Position.X())
	}
	if !near(c.Position.Z(), z0-MoveSpeed*0.1) {
		t.Errorf("z = %f, want %f", c.Position.Z(), z0-MoveSpeed*0.1)
	}
}

// TestAdvanceDiagonalNormalized verifies a diagonal covers the same ground
// distance as a cardinal direction.
func TestAdvanceDiagonalNormalized(t *testing.T) {
	c := newTestController(t)
	x0, z0 := c.Position.X(), c.Position.Z()

	c.Advance(0.1, MoveIntent{Forward: true, Right: true}, 0, false)

	dx := c.Position.X() - x0
	dz := c.Position.Z() - z0
	dist := math32.Sqrt(dx*dx + dz*dz)
	if !near(dist, MoveSpeed*0.1) {
		t.Errorf("diagonal distance = %f, want %f", dist, float32(MoveSpeed*0.1))
	}
	if dx <= 0 || dz >= 0 {
		t.Errorf("forward-right at heading 0 moved (%f, %f), want +x, -z", dx, dz)
	}
}

// TestAdvanceOpposedInputsCancel verifies opposed keys leave the avatar in
// place instead of producing NaN from normalizing a zero vector.
func TestAdvanceOpposedInputsCancel(t *testing.T) {
	c := newTestController(t)
	before := c.Position

	c.Advance(0.1, MoveIntent{Forward: true, Backward: true, Left: true, Right: true}, 0, false)

	if c.Position != before {
		t.Errorf("position moved under cancelled input: %v -> %v", before, c.Position)
	}
}

// TestAdvanceHeadingRotatesMovement verifies a quarter-turn heading sends
// "forward" along -x.
func TestAdvanceHeadingRotatesMovement(t *testing.T) {
	c := newTestController(t)
	c.Heading = math32.Pi / 2
	x0, z0 := c.Position.X(), c.Position.Z()

	c.Advance(0.1, MoveIntent{Forward: true}, 0, false)

	if !near(c.Position.X(), x0-MoveSpeed*0.1) {
		t.Errorf("x = %f, want %f", c.Position.X(), x0-MoveSpeed*0.1)
	}
	if !near(c.Position.Z(), z0) {
		t.Errorf("z moved: %f -> %f", z0, c.Position.Z())
	}
}

func TestAdvanceMouseLook(t *testing.T) {
	c := newTestController(t)
	sens := config.GetMouseSensitivity()

	c.Advance(0.1, MoveIntent{}, 100, true)
	if want := -100 * sens; !near(c.Heading, want) {
		t.Errorf("heading = %f after +100px, want %f", c.Heading, want)
	}

	// Cursor travel is ignored while look is inactive.
	before := c.Heading
	c.Advance(0.1, MoveIntent{}, 500, false)
	if c.Heading != before {
		t.Errorf("heading changed while look inactive: %f -> %f", before, c.Heading)
	}
}

// TestAdvanceWrapsAtEdge verifies walking off the world's -z edge re-enters
// from the far side.
func TestAdvanceWrapsAtEdge(t *testing.T) {
	c := newTestController(t)
	c.Position[2] = 0.3

	c.Advance(0.1, MoveIntent{Forward: true}, 0, false)

	want := float32(world.WorldSize) - 0.2
	if !near(c.Position.Z(), want) {
		t.Errorf("z = %f after crossing the edge, want %f", c.Position.Z(), want)
	}
	if c.Position.Z() < 0 || c.Position.Z() >= world.WorldSize {
		t.Errorf("z = %f outside [0,%d)", c.Position.Z(), world.WorldSize)
	}
}

// TestAdvanceStaysGrounded verifies the ground clamp holds across a long walk.
func TestAdvanceStaysGrounded(t *testing.T) {
	c := newTestController(t)

	for i := 0; i < 200; i++ {
		c.Advance(0.05, MoveIntent{Forward: true}, 3, true)
		want := float32(c.GroundHeight()) + PlayerHeight/2
		if c.Position.Y() != want {
			t.Fatalf("tick %d: y = %f, want %f", i, c.Position.Y(), want)
		}
	}
}

func TestCameraForBehindAvatar(t *testing.T) {
	c := newTestController(t)
	c.Heading = 0

	pose := CameraFor(c)
	wantPos := c.Position.Add(mgl32.Vec3{0, CameraHeight, CameraDistance})
	if pose.Position != wantPos {
		t.Errorf("camera position = %v, want %v", pose.Position, wantPos)
	}
	wantTarget := c.Position.Add(mgl32.Vec3{0, cameraTargetLift, 0})
	if pose.Target != wantTarget {
		t.Errorf("camera target = %v, want %v", pose.Target, wantTarget)
	}
}

// TestCameraForFollowsHeading verifies the rig orbits with the heading: at a
// quarter turn the camera sits beside the avatar at half distance.
func TestCameraForFollowsHeading(t *testing.T) {
	c := newTestController(t)
	c.Heading = math32.Pi / 2

	pose := CameraFor(c)
	off := pose.Position.Sub(c.Position)
	if !near(off.X(), CameraDistance*0.5) || !near(off.Y(), CameraHeight) || !near(off.Z(), 0) {
		t.Errorf("camera offset = %v, want (%f, %f, 0)", off, float32(CameraDistance*0.5), float32(CameraHeight))
	}
}

// TestCameraForPure verifies the rig is stateless: same controller pose, same
// camera pose.
func TestCameraForPure(t *testing.T) {
	c := newTestController(t)
	c.Heading = 1.234

	a := CameraFor(c)
	b := CameraFor(c)
	if a != b {
		t.Errorf("CameraFor is not pure: %v != %v", a, b)
	}
}

func TestViewMatrixFinite(t *testing.T) {
	c := newTestController(t)
	view := CameraFor(c).ViewMatrix()

	for i, v := range view {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			t.Fatalf("view matrix element %d is %f", i, v)
		}
	}
}
