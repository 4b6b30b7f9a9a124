package config

import "sync"

// WorldGenSettings holds world generation configuration
type WorldGenSettings struct {
	mu   sync.RWMutex
	seed int64
}

var globalWorldGenSettings = &WorldGenSettings{
	seed: 1, // default world
}

// GetSeed returns the world generation seed
func GetSeed() int64 {
	globalWorldGenSettings.mu.RLock()
	defer globalWorldGenSettings.mu.RUnlock()
	return globalWorldGenSettings.seed
}

// SetSeed sets the world generation seed
func SetSeed(seed int64) {
	globalWorldGenSettings.mu.Lock()
	defer globalWorldGenSettings.mu.Unlock()
	globalWorldGenSettings.seed = seed
}
