package config

import "sync"

// ControlSettings holds input configuration
type ControlSettings struct {
	mu               sync.RWMutex
	mouseSensitivity float32 // radians per pixel of cursor travel
}

var globalControlSettings = &ControlSettings{
	mouseSensitivity: 0.002,
}

// GetMouseSensitivity returns the look sensitivity in radians per pixel
func GetMouseSensitivity() float32 {
	globalControlSettings.mu.RLock()
	defer globalControlSettings.mu.RUnlock()
	return globalControlSettings.mouseSensitivity
}

// SetMouseSensitivity sets the look sensitivity in radians per pixel
func SetMouseSensitivity(s float32) {
	globalControlSettings.mu.Lock()
	defer globalControlSettings.mu.Unlock()

	if s < 0.0005 {
		s = 0.0005
	}
	if s > 0.01 {
		s = 0.01
	}

	globalControlSettings.mouseSensitivity = s
}
