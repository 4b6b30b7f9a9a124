package world

import (
	"math"

	"torusvox/internal/noise"
)

// Noise-domain placement of the circle embedding. The scale decides how many
// lattice cells one trip around the world covers; the offset keeps the
// embedding off the zero-valued lattice lines.
const (
	noiseScale  = 2.0
	noiseOffset = 0.5
)

// HeightMap is an immutable grid of terrain heights indexed [z][x].
// It is built exactly once at world construction and never mutated.
type HeightMap struct {
	size    int
	heights [][]int
}

// torusSample maps an integer world coordinate pair onto the noise domain so
// that wrapping in x and in z each traces a closed loop in noise-input space.
// Each axis is projected onto a circle, giving the 4-component embedding
// (cos thx, cos thz, sin thx, sin thz); the first two components are scaled
// and offset into the sampling plane. Coordinates are wrapped before the
// angle is computed, so x and x+size produce bit-identical angles and hence
// identical heights.
func torusSample(x, z, size int) (u, v float64) {
	wx := float64(Wrap(x, size)) / float64(size)
	wz := float64(Wrap(z, size)) / float64(size)
	thx := 2 * math.Pi * wx
	thz := 2 * math.Pi * wz
	u = math.Cos(thx)*noiseScale + noiseOffset
	v = math.Cos(thz)*noiseScale + noiseOffset
	return u, v
}

// heightFromNoise maps a raw octave value in [-1,1] to an integer height in
// [MinHeight, MaxHeight].
func heightFromNoise(v float64) int {
	return int(math.Floor((v+1)*10)) + MinHeight
}

// SeamlessHeight computes the terrain height for a world coordinate pair
// directly from the noise field, before any grid is involved. BuildHeightMap
// stores exactly these values; callers that need heights for pre-wrap
// coordinates (chunk math produces them) get the same answer either way.
func SeamlessHeight(nf *noise.Field, x, z, size int) int {
	u, v := torusSample(x, z, size)
	return heightFromNoise(nf.OctaveSample(u, v, HeightOctaves, HeightPersistence))
}

// BuildHeightMap samples the noise field through the torus transform for
// every column of a size x size world. Runs once; the result is immutable.
func BuildHeightMap(nf *noise.Field, size int) *HeightMap {
	heights := make([][]int, size)
	for z := 0; z < size; z++ {
		row := make([]int, size)
		for x := 0; x < size; x++ {
			row[x] = SeamlessHeight(nf, x, z, size)
		}
		heights[z] = row
	}
	return &HeightMap{size: size, heights: heights}
}

// Size returns the edge length of the grid.
func (hm *HeightMap) Size() int {
	return hm.size
}

// HeightAt returns the terrain height at (x, z). Both coordinates are
// wrapped into [0, size) first, so negative or out-of-range chunk-derived
// coordinates never index out of bounds.
func (hm *HeightMap) HeightAt(x, z int) int {
	return hm.heights[Wrap(z, hm.size)][Wrap(x, hm.size)]
}
