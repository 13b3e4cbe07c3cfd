// evec is a minimal package for 2D and 3D float32 vectors, designed
// to be used mainly with the Ebitengine game engine, but perfectly
// usable on its own with the gvec build tag.
//
// The [Vector2] and [Vector3] types are plain values with the usual
// arithmetic methods:
//   pos := evec.NewVector2(32, 48)
//   vel := evec.Vector2Right().MulScalar(2.5)
//   pos.AddAssign(vel)
//   dist := evec.Vector2.Distance(pos, target)
//
// Lengths, distances and normalization use the fast square root
// approximation from the [fsqrt] subpackage instead of [math.Sqrt],
// which avoids the float32 -> float64 round trips.
//
// Degenerate inputs are never checked: dividing by zero or normalizing
// a zero vector results in infinites or NaNs, following IEEE-754. Guard
// against those yourself if your data can contain them.
//
// Vectors can be shared freely for reading. In-place methods (the ones
// with pointer receivers, like [Vector2.AddAssign] or [Vector2.Normalize])
// are not synchronized in any way.
package evec
