package noise

import "testing"

// BenchmarkSampleCold measures uncached sampling cost.
func BenchmarkSampleCold(b *testing.B) {
	f := NewField(12345)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.sample(float64(i)*0.137, float64(i)*0.291)
	}
}

// BenchmarkSampleMemoized measures repeated sampling of the same coordinate.
func BenchmarkSampleMemoized(b *testing.B) {
	f := NewField(12345)
	f.Sample(1.5, 2.5)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Sample(1.5, 2.5)
	}
}

// BenchmarkOctaveSample measures 4-octave composition cost.
func BenchmarkOctaveSample(b *testing.B) {
	f := NewField(12345)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.OctaveSample(float64(i)*0.017, float64(i)*0.029, 4, 0.5)
	}
}
