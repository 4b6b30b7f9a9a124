package graphics

import (
	"testing"

	"github.com/chewxy/math32"

	"torusvox/internal/player"
)

// GL calls need a context, so only the pure pieces are tested here.

func TestCameraAspect(t *testing.T) {
	c := NewCamera(1600, 900)
	if want := float32(1600) / 900; c.AspectRatio != want {
		t.Errorf("aspect = %f, want %f", c.AspectRatio, want)
	}

	c.SetViewport(800, 600)
	if want := float32(800) / 600; c.AspectRatio != want {
		t.Errorf("aspect after resize = %f, want %f", c.AspectRatio, want)
	}

	// A minimized window must not divide by zero.
	c.SetViewport(800, 0)
	if math32.IsNaN(c.AspectRatio) || math32.IsInf(c.AspectRatio, 0) {
		t.Errorf("aspect after zero-height resize = %f", c.AspectRatio)
	}
}

func TestProjectionFinite(t *testing.T) {
	proj := NewCamera(900, 600).GetProjectionMatrix()
	for i, v := range proj {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			t.Fatalf("projection element %d is %f", i, v)
		}
	}
}

func TestAvatarVertices(t *testing.T) {
	data := avatarVertices()

	// Six faces, two triangles each, nine floats per vertex.
	if want := 6 * 6 * 9; len(data) != want {
		t.Fatalf("len(avatarVertices()) = %d, want %d", len(data), want)
	}

	for i := 0; i < len(data); i += 9 {
		x, y := data[i], data[i+1]
		if math32.Abs(x) > player.PlayerRadius {
			t.Fatalf("vertex x = %f outside radius %f", x, float32(player.PlayerRadius))
		}
		if math32.Abs(y) > player.PlayerHeight/2 {
			t.Fatalf("vertex y = %f outside half height", y)
		}
	}
}
