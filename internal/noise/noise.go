package noise

import (
	"math"
)

// Seeded 2D gradient noise over an integer lattice. Gradients are unit
// vectors derived from an integer hash of the lattice point and the seed,
// so the field is fully reproducible across runs for the same seed.

// latticeKey identifies one lattice cell.
type latticeKey struct {
	X, Y int64
}

// sampleKey memoizes interpolated samples by their exact input pair.
type sampleKey struct {
	X, Y float64
}

// Gradient is a unit vector attached to a lattice point.
type Gradient struct {
	X, Y float64
}

// Field is a seeded 2D gradient noise field with lazily cached per-cell
// gradients and per-coordinate sample memoization. Both caches are
// append-only; a cached entry never changes because the underlying
// computation is a pure function of (seed, inputs).
//
// Field is not safe for concurrent use; the simulation mutates it from a
// single logical thread only.
type Field struct {
	seed      int64
	gradients map[latticeKey]Gradient
	samples   map[sampleKey]float64
}

// NewField creates a noise field fixed to the given seed.
func NewField(seed int64) *Field {
	return &Field{
		seed:      seed,
		gradients: make(map[latticeKey]Gradient),
		samples:   make(map[sampleKey]float64),
	}
}

// Seed returns the seed the field was constructed with.
func (f *Field) Seed() int64 {
	return f.seed
}

// hashLattice mixes a lattice coordinate and seed into a uint64.
// SplitMix64 style, stable across runs for same inputs.
func hashLattice(x, y int64, seed int64) uint64 {
	v := uint64(x)*0x9E3779B97F4A7C15 + uint64(y)*0x517CC1B727220A95 + uint64(seed)
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	v = v ^ (v >> 31)
	return v
}

// GradientAt returns the unit gradient vector at lattice point (ix, iy).
// The vector is computed once per cell and cached for the field lifetime.
func (f *Field) GradientAt(ix, iy int64) Gradient {
	key := latticeKey{X: ix, Y: iy}
	if g, ok := f.gradients[key]; ok {
		return g
	}

	h := hashLattice(ix, iy, f.seed)
	angle := float64(h&0xFFFFFFFF) / float64(0xFFFFFFFF) * 2 * math.Pi
	g := Gradient{X: math.Cos(angle), Y: math.Sin(angle)}
	f.gradients[key] = g
	return g
}

// fade is the smoothstep weighting 3t^2 - 2t^3. Its first derivative
// vanishes at t=0 and t=1, which keeps both heights and slopes continuous
// across lattice cell boundaries.
func fade(t float64) float64 {
	return t * t * (3 - 2*t)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Sample returns single-octave gradient noise at (x, y) in [-1, 1].
// Results are memoized by the exact input pair.
func (f *Field) Sample(x, y float64) float64 {
	key := sampleKey{X: x, Y: y}
	if v, ok := f.samples[key]; ok {
		return v
	}

	v := f.sample(x, y)
	f.samples[key] = v
	return v
}

// sample computes the interpolated noise value without consulting the cache.
func (f *Field) sample(x, y float64) float64 {
	x0 := math.Floor(x)
	y0 := math.Floor(y)
	ix0 := int64(x0)
	iy0 := int64(y0)

	// Offsets from the cell origin
	fx := x - x0
	fy := y - y0

	// Dot product of each corner gradient with the offset to (x, y)
	d00 := f.cornerDot(ix0, iy0, fx, fy)
	d10 := f.cornerDot(ix0+1, iy0, fx-1, fy)
	d01 := f.cornerDot(ix0, iy0+1, fx, fy-1)
	d11 := f.cornerDot(ix0+1, iy0+1, fx-1, fy-1)

	wx := fade(fx)
	wy := fade(fy)

	i0 := lerp(d00, d10, wx)
	i1 := lerp(d01, d11, wx)
	return lerp(i0, i1, wy)
}

func (f *Field) cornerDot(ix, iy int64, dx, dy float64) float64 {
	g := f.GradientAt(ix, iy)
	return g.X*dx + g.Y*dy
}

// OctaveSample sums octaves of Sample with doubling frequency and
// persistence-scaled amplitude, normalized back into [-1, 1].
func (f *Field) OctaveSample(x, y float64, octaves int, persistence float64) float64 {
	amplitude := 1.0
	frequency := 1.0
	sum := 0.0
	norm := 0.0
	for i := 0; i < octaves; i++ {
		sum += amplitude * f.Sample(x*frequency, y*frequency)
		norm += amplitude
		amplitude *= persistence
		frequency *= 2
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}
