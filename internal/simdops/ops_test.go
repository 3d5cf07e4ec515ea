package simdops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tphakala/simd/f64"
)

func TestScale_MatchesScalar(t *testing.T) {
	for _, n := range []int{0, 1, 3, 4, 7, 16, 33, 256} {
		a := make([]float64, n)
		for i := range a {
			a[i] = float64(i)*0.25 - 1.5
		}
		dst := make([]float64, n)
		For[float64]().Scale(dst, a, 0.5)
		for i := range a {
			assert.InDelta(t, a[i]*0.5, dst[i], 1e-15, "n=%d i=%d", n, i)
		}
	}
}

func TestScale_Float32(t *testing.T) {
	a := []float32{1, -2, 3, -4, 5}
	dst := make([]float32, len(a))
	For[float32]().Scale(dst, a, 2)
	assert.Equal(t, []float32{2, -4, 6, -8, 10}, dst)
}

// BenchmarkDirectF64Scale measures direct SIMD call overhead.
func BenchmarkDirectF64Scale(b *testing.B) {
	a := make([]float64, 256)
	dst := make([]float64, 256)
	for i := range a {
		a[i] = float64(i) * 0.01
	}

	b.ReportAllocs()
	for b.Loop() {
		f64.Scale(dst, a, 0.7)
	}
}

// BenchmarkIndirectF64Scale measures indirect call through Ops struct.
func BenchmarkIndirectF64Scale(b *testing.B) {
	ops := For[float64]()
	a := make([]float64, 256)
	dst := make([]float64, 256)
	for i := range a {
		a[i] = float64(i) * 0.01
	}

	b.ReportAllocs()
	for b.Loop() {
		ops.Scale(dst, a, 0.7)
	}
}
