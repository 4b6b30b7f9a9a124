package game

import (
	"torusvox/internal/config"
	"torusvox/internal/input"
	"torusvox/internal/meshing"
	"torusvox/internal/noise"
	"torusvox/internal/player"
	"torusvox/internal/profiling"
	"torusvox/internal/world"
)

// Session is one running world: the generated terrain, the avatar walking on
// it, its follow camera, and the chunk meshes streamed around it. It holds no
// GL or window state, so it can run headless.
type Session struct {
	Noise  *noise.Field
	World  *world.HeightMap
	Player *player.Controller
	Chunks *meshing.Manager
	Camera player.CameraPose

	Paused        bool
	ShowProfiling bool
}

// NewSession generates the world for a seed and spawns the avatar at its
// center. The first chunk load pass runs here so the opening frame already
// has terrain under the camera.
func NewSession(seed int64) *Session {
	nf := noise.NewField(seed)
	hm := world.BuildHeightMap(nf, world.WorldSize)

	s := &Session{
		Noise:  nf,
		World:  hm,
		Player: player.New(hm, world.WorldSize/2, world.WorldSize/2),
		Chunks: meshing.NewManager(hm, meshing.NewMesher(seed)),
	}
	s.Camera = player.CameraFor(s.Player)
	s.Chunks.EnsureLoaded(s.Player.Position, config.GetRenderDistance())
	return s
}

// Update runs one simulation tick: toggles, then mouse-look and movement,
// then the camera, then chunk streaming. The order matters: the camera reads
// the post-move pose, and streaming reads the post-wrap position.
func (s *Session) Update(dt float64, im *input.InputManager) {
	defer profiling.Track("session.Update")()

	s.handleToggles(im)

	if s.Paused {
		// Drop look input accumulated while paused so resuming does not
		// snap the view.
		im.ConsumeMouseDelta()
		return
	}

	dx, _ := im.ConsumeMouseDelta()
	intent := player.MoveIntent{
		Forward:  im.IsActive(input.ActionMoveForward),
		Backward: im.IsActive(input.ActionMoveBackward),
		Left:     im.IsActive(input.ActionMoveLeft),
		Right:    im.IsActive(input.ActionMoveRight),
	}
	s.Player.Advance(float32(dt), intent, float32(dx), im.LookActive())

	s.Camera = player.CameraFor(s.Player)
	s.Chunks.EnsureLoaded(s.Player.Position, config.GetRenderDistance())
}

// SetPaused freezes or resumes the simulation. Cursor capture is the window
// owner's job; the session only stops ticking.
func (s *Session) SetPaused(paused bool) {
	s.Paused = paused
}

func (s *Session) handleToggles(im *input.InputManager) {
	if im.JustPressed(input.ActionToggleWireframe) {
		config.ToggleWireframe()
	}
	if im.JustPressed(input.ActionToggleProfiling) {
		s.ShowProfiling = !s.ShowProfiling
	}
}
