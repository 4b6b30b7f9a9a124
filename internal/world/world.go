package world

import "github.com/chewxy/math32"

const (
	// WorldSize is the edge length of the toroidal world in voxel columns.
	// Positions wrap at this bound on both horizontal axes.
	WorldSize = 256

	// ChunkSize is the edge length of one meshed chunk in voxel columns.
	ChunkSize = 16

	// VoxelSize is the edge length of a single voxel in world units.
	VoxelSize = 1

	// MinHeight and MaxHeight bound the terrain height mapping
	// floor((v+1)*10)+5 for v in [-1,1].
	MinHeight = 5
	MaxHeight = 25

	// HeightOctaves and HeightPersistence parameterize the octave noise
	// the heightmap is built from.
	HeightOctaves     = 4
	HeightPersistence = 0.5
)

// Wrap maps any integer (including large negatives) into [0, size).
func Wrap(n, size int) int {
	return ((n % size) + size) % size
}

// WrapPos wraps a continuous position into [0, WorldSize).
func WrapPos(v float32) float32 {
	size := float32(WorldSize)
	m := math32.Mod(v, size)
	if m < 0 {
		m += size
	}
	// float rounding can push m back up to size exactly
	if m >= size {
		m -= size
	}
	return m
}

// FloorDiv divides rounding toward negative infinity, so negative world
// coordinates map to the correct chunk.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
