package main

import (
	"flag"
	"log"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"

	"torusvox/internal/config"
	"torusvox/internal/game"
	"torusvox/internal/graphics"
	"torusvox/internal/input"
	"torusvox/internal/profiling"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	seed := flag.Int64("seed", 1, "world generation seed")
	distance := flag.Int("render-distance", 6, "chunk load radius around the player")
	fpsLimit := flag.Int("fps-limit", 120, "frame cap, 0 for uncapped")
	flag.Parse()

	config.SetSeed(*seed)
	config.SetRenderDistance(*distance)
	config.SetFPSLimit(*fpsLimit)

	if err := glfw.Init(); err != nil {
		log.Fatalf("glfw init: %v", err)
	}
	closer.Bind(glfw.Terminate)

	window, err := setupWindow()
	if err != nil {
		log.Fatalf("window setup: %v", err)
	}
	if err := gl.Init(); err != nil {
		log.Fatalf("gl init: %v", err)
	}

	im := input.NewInputManager()
	im.SetCallbacks(window)
	im.SetLookActive(true)

	log.Printf("generating world, seed %d", config.GetSeed())
	session := game.NewSession(config.GetSeed())

	width, height := window.GetSize()
	renderer, err := graphics.NewRenderer(width, height)
	if err != nil {
		log.Fatalf("renderer setup: %v", err)
	}
	closer.Bind(renderer.Dispose)

	window.SetSizeCallback(func(w *glfw.Window, width, height int) {
		renderer.UpdateViewport(width, height)
	})

	runLoop(window, im, session, renderer)
	closer.Close()
}

func setupWindow() (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(900, 600, "torusvox", nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	glfw.SwapInterval(0)
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	return window, nil
}

func runLoop(window *glfw.Window, im *input.InputManager, session *game.Session, renderer *graphics.Renderer) {
	limiter := game.NewFPSLimiter()
	frames := 0
	lastFPSCheckTime := time.Now()
	lastTime := time.Now()

	for !window.ShouldClose() {
		profiling.ResetFrame()
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

		handlePauseToggle(window, im, session)
		session.Update(dt, im)
		renderer.Render(session.Camera, session.Player, session.Chunks)

		func() { defer profiling.Track("glfw.SwapBuffers")(); window.SwapBuffers() }()

		frames++
		if time.Since(lastFPSCheckTime) >= time.Second {
			if session.ShowProfiling {
				log.Printf("FPS: %d, chunks: %d, frame: %s", frames, session.Chunks.Len(), profiling.TopN(5))
			}
			frames = 0
			lastFPSCheckTime = time.Now()
		}

		// Flag hitches with the buckets that caused them.
		if frameDur := time.Since(now); frameDur > 16*time.Millisecond {
			log.Printf("slow frame: %v, top tasks: %s", frameDur, profiling.TopN(5))
		}

		im.PostUpdate()
		limiter.Wait(session.Paused)
	}
}

// handlePauseToggle flips the pause state and hands the cursor back to the
// desktop while paused.
func handlePauseToggle(window *glfw.Window, im *input.InputManager, session *game.Session) {
	if !im.JustPressed(input.ActionPause) {
		return
	}

	session.SetPaused(!session.Paused)
	if session.Paused {
		window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
		im.SetLookActive(false)
	} else {
		window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
		im.SetLookActive(true)
	}
}
