package evec

import "image"
import "math"

import "golang.org/x/image/math/f32"
import "golang.org/x/image/math/fixed"

// Conversions to and from the golang.org/x/image math types and the
// stdlib [image.Point]. None of these check for overflows: converting
// values outside the target range gives the same garbage as a regular
// Go conversion would.

// Converts the vector to a 26.6 fixed point pair, rounding to
// the closest 1/64th (ties away from zero).
func (self Vector2) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{ X: toFixed(self.X), Y: toFixed(self.Y) }
}

// Creates a vector from a 26.6 fixed point pair. The conversion
// is exact for values within ±2^18 (float32 mantissa limit).
func Vector2FromFixed(point fixed.Point26_6) Vector2 {
	return Vector2{ X: fromFixed(point.X), Y: fromFixed(point.Y) }
}

func (self Vector2) F32() f32.Vec2 {
	return f32.Vec2{ self.X, self.Y }
}

func Vector2FromF32(vec f32.Vec2) Vector2 {
	return Vector2{ X: vec[0], Y: vec[1] }
}

func (self Vector3) F32() f32.Vec3 {
	return f32.Vec3{ self.X, self.Y, self.Z }
}

func Vector3FromF32(vec f32.Vec3) Vector3 {
	return Vector3{ X: vec[0], Y: vec[1], Z: vec[2] }
}

// Rounds the coordinates to the closest ints (ties away from zero)
// and returns them as an [image.Point].
func (self Vector2) ImagePoint() image.Point {
	x := math.Round(float64(self.X))
	y := math.Round(float64(self.Y))
	return image.Pt(int(x), int(y))
}

func Vector2FromImagePoint(point image.Point) Vector2 {
	return Vector2{ X: float32(point.X), Y: float32(point.Y) }
}

func toFixed(value float32) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(float64(value)*64))
}

func fromFixed(value fixed.Int26_6) float32 {
	return float32(float64(value)/64.0)
}
