package game

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"

	"torusvox/internal/config"
	"torusvox/internal/input"
	"torusvox/internal/meshing"
	"torusvox/internal/player"
	"torusvox/internal/world"
)

// Sessions are headless, so the full stack can tick without a window.

func TestNewSessionSpawnsOnTerrain(t *testing.T) {
	s := NewSession(42)

	if got := s.World.Size(); got != world.WorldSize {
		t.Fatalf("world size = %d, want %d", got, world.WorldSize)
	}
	wantY := float32(s.Player.GroundHeight()) + player.PlayerHeight/2
	if s.Player.Position.Y() != wantY {
		t.Errorf("spawn y = %f, want %f", s.Player.Position.Y(), wantY)
	}
}

func TestNewSessionPreloadsChunks(t *testing.T) {
	s := NewSession(42)

	r := config.GetRenderDistance()
	want := (2*r + 1) * (2*r + 1)
	if s.Chunks.Len() != want {
		t.Errorf("preloaded %d chunks, want %d", s.Chunks.Len(), want)
	}

	// The spawn chunk itself must be present.
	cx := int(s.Player.Position.X()) / world.ChunkSize
	cz := int(s.Player.Position.Z()) / world.ChunkSize
	if !s.Chunks.Has(meshing.ChunkKey{X: cx, Z: cz}) {
		t.Errorf("spawn chunk (%d,%d) not loaded", cx, cz)
	}
}

// TestUpdateMovesAndFollows verifies one tick moves the avatar and leaves the
// camera derived from the new pose.
func TestUpdateMovesAndFollows(t *testing.T) {
	s := NewSession(42)
	im := input.NewInputManager()
	im.HandleKeyEvent(glfw.KeyW, glfw.Press)

	before := s.Player.Position
	s.Update(0.1, im)

	if s.Player.Position == before {
		t.Error("held forward key did not move the avatar")
	}
	if want := player.CameraFor(s.Player); s.Camera != want {
		t.Errorf("camera = %v, want pose derived from avatar %v", s.Camera, want)
	}
}

func TestUpdatePausedFreezesSimulation(t *testing.T) {
	s := NewSession(42)
	s.SetPaused(true)
	im := input.NewInputManager()
	im.HandleKeyEvent(glfw.KeyW, glfw.Press)

	before := s.Player.Position
	s.Update(0.1, im)

	if s.Player.Position != before {
		t.Error("paused session moved the avatar")
	}
}

// TestUpdatePausedDrainsMouseDelta verifies look input accumulated during a
// pause does not snap the view on resume.
func TestUpdatePausedDrainsMouseDelta(t *testing.T) {
	s := NewSession(42)
	im := input.NewInputManager()
	im.SetLookActive(true)
	im.HandleCursorPos(0, 0)
	im.HandleCursorPos(400, 0)

	s.SetPaused(true)
	s.Update(0.1, im)
	s.SetPaused(false)

	heading := s.Player.Heading
	s.Update(0.1, im)
	if s.Player.Heading != heading {
		t.Errorf("heading jumped on resume: %f -> %f", heading, s.Player.Heading)
	}
}

func TestUpdateStreamsChunksWhileWalking(t *testing.T) {
	s := NewSession(42)
	im := input.NewInputManager()
	im.HandleKeyEvent(glfw.KeyW, glfw.Press)

	before := s.Chunks.Len()
	// Walk far enough to cross into new chunks.
	for i := 0; i < 100; i++ {
		s.Update(0.1, im)
	}

	if s.Chunks.Len() <= before {
		t.Errorf("chunk count stayed at %d after walking %d units",
			before, 100*int(player.MoveSpeed)/10)
	}
}

func TestTogglesEdgeTriggered(t *testing.T) {
	s := NewSession(42)
	im := input.NewInputManager()
	wireframe := config.GetWireframe()

	im.HandleKeyEvent(glfw.KeyF, glfw.Press)
	im.HandleKeyEvent(glfw.KeyV, glfw.Press)
	s.Update(0.01, im)

	if config.GetWireframe() == wireframe {
		t.Error("wireframe toggle did not fire")
	}
	if !s.ShowProfiling {
		t.Error("profiling toggle did not fire")
	}

	// Held keys must not re-toggle on the next tick.
	im.PostUpdate()
	s.Update(0.01, im)
	if config.GetWireframe() != !wireframe {
		t.Error("held F re-toggled wireframe")
	}

	config.ToggleWireframe() // restore
}
