// fsqrt is a tiny subpackage implementing the classic "fast inverse
// square root" approximation: the bit pattern of a float32 is
// reinterpreted as an integer to obtain an initial estimate of 1/sqrt(x),
// which is then refined with a few [Newton-Raphson] iterations.
//
// With [DefaultIterations] the result stays within a couple of ulps
// of the exact value for any positive normal input (it's not correctly
// rounded, though), which makes it a reasonable drop-in for
// the float32 -> float64 -> float32 round trip that [math.Sqrt] requires
// when working with float32 game data.
//
// There's no input validation at all. Zero, negative, denormal, NaN
// and infinite inputs produce meaningless results.
//
// [Newton-Raphson]: https://en.wikipedia.org/wiki/Fast_inverse_square_root#Newton's_method
package fsqrt
