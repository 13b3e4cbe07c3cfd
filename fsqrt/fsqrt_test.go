package fsqrt

import "math"
import "testing"

import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

// log-spaced sweep over normal positive floats
func eachSample(fn func(value float32)) {
	for value := float64(1e-30); value < 1e30; value *= 1.37 {
		fn(float32(value))
	}
}

func relErr(approx float32, exact float64) float64 {
	return math.Abs(float64(approx) - exact)/exact
}

func TestSqrtKnownValues(t *testing.T) {
	tests := []struct {
		in  float32
		out float64
	}{
		{1, 1}, {4, 2}, {9, 3}, {0.25, 0.5}, {2, math.Sqrt2},
		{25, 5}, {1e6, 1000}, {1e-10, 1e-5}, {12345.678, math.Sqrt(12345.678)},
	}

	for i, test := range tests {
		got := Sqrt(test.in)
		if err := relErr(got, test.out); err >= 1e-5 {
			str := "test #%d: in %f expected out ~%f, but got %f (rel err %g)"
			t.Fatalf(str, i, test.in, test.out, got, err)
		}
	}
}

func TestSqrtAccuracy(t *testing.T) {
	eachSample(func(value float32) {
		exact := math.Sqrt(float64(value))
		require.Less(t, relErr(Sqrt(value), exact), 1e-5, "sqrt(%g)", value)
		require.Less(t, relErr(InvSqrt(value), 1/exact), 1e-5, "1/sqrt(%g)", value)
	})
}

func TestSqrtUlpError(t *testing.T) {
	// not correctly rounded, but never more than a couple ulps away
	var worst float64
	for value := float64(1e-37); value < 1e38; value *= 1.013 {
		exact := math.Sqrt(float64(float32(value)))
		err := relErr(Sqrt(float32(value)), exact)
		if err > worst { worst = err }
	}
	if worst >= 2.5e-7 {
		t.Fatalf("expected max rel err < 2.5e-7, got %g", worst)
	}
}

func TestInverseConsistency(t *testing.T) {
	eachSample(func(value float32) {
		inv := InvSqrt(value)
		reciprocal := 1/Sqrt(value)
		require.InEpsilon(t, reciprocal, inv, 1e-5, "value %g", value)
	})
}

func TestIterationConvergence(t *testing.T) {
	bounds := []float64{ 0.035, 0.002, 2e-5, 1e-6, 1e-6 }
	for iters, bound := range bounds {
		var worst float64
		eachSample(func(value float32) {
			exact := 1/math.Sqrt(float64(value))
			err := relErr(Approx(value, true, iters), exact)
			if err > worst { worst = err }
		})
		if worst >= bound {
			t.Fatalf("%d iterations: expected max rel err < %g, got %g", iters, bound, worst)
		}
	}
}

func TestSeedAndDegenerateInputs(t *testing.T) {
	assert.Equal(t, Seed(3.5), Approx(3.5, true, 0))
	assert.Equal(t, Seed(3.5), Approx(3.5, true, -2))
	assert.Equal(t, math.Float32frombits(MagicSeed), Seed(0))

	// no validation, but zero still collapses to zero in non-inverse mode
	assert.Equal(t, float32(0), Sqrt(0))
	assert.True(t, math.IsNaN(float64(Sqrt(float32(math.NaN())))))
}

func BenchmarkSqrt(b *testing.B) {
	var sink float32
	for i := 0; i < b.N; i++ {
		sink += Sqrt(float32(i & 1023) + 1)
	}
	_ = sink
}

func BenchmarkMathSqrt(b *testing.B) {
	var sink float32
	for i := 0; i < b.N; i++ {
		sink += float32(math.Sqrt(float64(float32(i & 1023) + 1)))
	}
	_ = sink
}
