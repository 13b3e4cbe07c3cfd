package fsqrt

import "math"

// The magic constant used to compute the initial estimate.
const MagicSeed uint32 = 0x5f3759df

// Number of Newton-Raphson refinement passes used by [Sqrt]()
// and [InvSqrt](). Four passes keep normal inputs within a couple
// of ulps of the exact result.
const DefaultIterations = 4

// Returns an approximation of sqrt(value), or of 1/sqrt(value)
// if inverse is true, refining the initial estimate with the
// given number of Newton-Raphson iterations. Negative iteration
// counts are treated as zero.
//
// The result is undefined for value <= 0, NaNs, infinites and
// denormals.
func Approx(value float32, inverse bool, iterations int) float32 {
	approx := Seed(value)
	halfValue := 0.5*value
	for i := 0; i < iterations; i++ {
		approx = approx*(1.5 - halfValue*approx*approx)
	}
	if inverse { return approx }
	return approx*value
}

// Returns an approximation of sqrt(value) using [DefaultIterations].
func Sqrt(value float32) float32 {
	return Approx(value, false, DefaultIterations)
}

// Returns an approximation of 1/sqrt(value) using [DefaultIterations].
func InvSqrt(value float32) float32 {
	return Approx(value, true, DefaultIterations)
}

// Returns the raw bit trick estimate of 1/sqrt(value), before
// any refinement. Its relative error is around 3.5% at worst.
func Seed(value float32) float32 {
	bits := math.Float32bits(value)
	return math.Float32frombits(MagicSeed - (bits >> 1))
}
