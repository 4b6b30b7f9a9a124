package player

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	CameraDistance = 5.0
	CameraHeight   = 2.0

	// The lateral swing is half the follow distance, so turning shows the
	// avatar slightly off-center instead of pivoting rigidly behind it.
	cameraLateral = CameraDistance * 0.5

	// The camera aims a little above the avatar's center.
	cameraTargetLift = 0.5
)

// CameraPose is a resolved third-person camera: where it sits and what it
// looks at.
type CameraPose struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
}

// CameraFor derives the follow camera from the controller's pose. Pure
// function of Position and Heading; the rig holds no state of its own, so it
// can never lag or drift from the avatar.
func CameraFor(c *Controller) CameraPose {
	sin, cos := math32.Sin(c.Heading), math32.Cos(c.Heading)
	offset := mgl32.Vec3{sin * cameraLateral, CameraHeight, cos * CameraDistance}
	return CameraPose{
		Position: c.Position.Add(offset),
		Target:   c.Position.Add(mgl32.Vec3{0, cameraTargetLift, 0}),
	}
}

// ViewMatrix builds the look-at matrix for the pose.
func (p CameraPose) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(p.Position, p.Target, mgl32.Vec3{0, 1, 0})
}
