package evec

import "strconv"

import "github.com/tinne26/evec/fsqrt"

// A pair of float32 coordinates. Vectors are plain values: methods
// without a pointer receiver never modify the vector, and the few
// pointer receiver methods are explicitly named as in-place operations.
//
// Since the type is comparable, == and != can be used directly to
// check for exact equality.
type Vector2 struct {
	X float32
	Y float32
}

// Creates a vector from explicit coordinates.
func NewVector2(x, y float32) Vector2 {
	return Vector2{ X: x, Y: y }
}

// Creates a vector with all its coordinates set to the given value.
func FillVector2(value float32) Vector2 {
	return Vector2{ X: value, Y: value }
}

// Returns (0, 0).
func Vector2Zero() Vector2 { return Vector2{} }

// Returns (1, 1).
func Vector2One() Vector2 { return Vector2{ 1, 1 } }

// Returns (0, 1).
func Vector2Up() Vector2 { return Vector2{ 0, 1 } }

// Returns (0, -1).
func Vector2Down() Vector2 { return Vector2{ 0, -1 } }

// Returns (-1, 0).
func Vector2Left() Vector2 { return Vector2{ -1, 0 } }

// Returns (1, 0).
func Vector2Right() Vector2 { return Vector2{ 1, 0 } }

// --- arithmetic ---

// Returns the sum of both vectors.
func (self Vector2) Add(other Vector2) Vector2 {
	return Vector2{ self.X + other.X, self.Y + other.Y }
}

// Returns the difference of both vectors.
func (self Vector2) Sub(other Vector2) Vector2 {
	return Vector2{ self.X - other.X, self.Y - other.Y }
}

// Component-wise multiplication.
func (self Vector2) Mul(other Vector2) Vector2 {
	return Vector2{ self.X*other.X, self.Y*other.Y }
}

// Component-wise division. Zero components in the divisor
// lead to infinites or NaNs.
func (self Vector2) Div(other Vector2) Vector2 {
	return Vector2{ self.X/other.X, self.Y/other.Y }
}

// Adds the value to each coordinate.
func (self Vector2) AddScalar(value float32) Vector2 {
	return Vector2{ self.X + value, self.Y + value }
}

// Subtracts the value from each coordinate.
func (self Vector2) SubScalar(value float32) Vector2 {
	return Vector2{ self.X - value, self.Y - value }
}

// Multiplies each coordinate by the value.
func (self Vector2) MulScalar(value float32) Vector2 {
	return Vector2{ self.X*value, self.Y*value }
}

// Divides each coordinate by the value.
func (self Vector2) DivScalar(value float32) Vector2 {
	return Vector2{ self.X/value, self.Y/value }
}

// Returns the vector with all its coordinates negated.
func (self Vector2) Neg() Vector2 {
	return Vector2{ -self.X, -self.Y }
}

// In-place variant of [Vector2.Add]().
func (self *Vector2) AddAssign(other Vector2) { *self = self.Add(other) }

// In-place variant of [Vector2.Sub]().
func (self *Vector2) SubAssign(other Vector2) { *self = self.Sub(other) }

// In-place variant of [Vector2.Mul]().
func (self *Vector2) MulAssign(other Vector2) { *self = self.Mul(other) }

// In-place variant of [Vector2.Div]().
func (self *Vector2) DivAssign(other Vector2) { *self = self.Div(other) }

// In-place variant of [Vector2.AddScalar]().
func (self *Vector2) AddScalarAssign(value float32) { *self = self.AddScalar(value) }

// In-place variant of [Vector2.SubScalar]().
func (self *Vector2) SubScalarAssign(value float32) { *self = self.SubScalar(value) }

// In-place variant of [Vector2.MulScalar]().
func (self *Vector2) MulScalarAssign(value float32) { *self = self.MulScalar(value) }

// In-place variant of [Vector2.DivScalar]().
func (self *Vector2) DivScalarAssign(value float32) { *self = self.DivScalar(value) }

// Exact comparison, same as ==. No epsilons involved.
func (self Vector2) Equals(other Vector2) bool {
	return self == other
}

// --- geometry ---

// Returns the dot product of both vectors. Can also be used
// with the method expression form: Vector2.Dot(a, b).
func (self Vector2) Dot(other Vector2) float32 {
	return self.X*other.X + self.Y*other.Y
}

// Returns the squared length of the vector.
func (self Vector2) SqrMagnitude() float32 {
	return self.Dot(self)
}

// Returns the length of the vector, computed with [fsqrt.Sqrt]().
// Components below ~1e-19 or above ~1e19 in magnitude take the sum
// of squares out of the normal float32 range and give garbage.
func (self Vector2) Magnitude() float32 {
	return fsqrt.Sqrt(self.SqrMagnitude())
}

// Returns the distance between the two points. Can also be used
// with the method expression form: Vector2.Distance(a, b).
func (self Vector2) Distance(other Vector2) float32 {
	return self.Sub(other).Magnitude()
}

// Returns self + (other - self)*amount. The amount is not
// clamped, so values outside [0, 1] extrapolate.
func (self Vector2) Lerp(other Vector2, amount float32) Vector2 {
	return self.Add(other.Sub(self).MulScalar(amount))
}

// Sets the vector to the linear interpolation between a and b.
// See [Vector2.Lerp]().
func (self *Vector2) SetLerp(a, b Vector2, amount float32) {
	*self = a.Lerp(b, amount)
}

// Returns the vector scaled to unit length. Normalizing a zero
// vector results in NaN coordinates, and the same component range
// limits as [Vector2.Magnitude]() apply.
func (self Vector2) Normalized() Vector2 {
	return self.MulScalar(1/self.Magnitude())
}

// In-place variant of [Vector2.Normalized]().
func (self *Vector2) Normalize() {
	*self = self.Normalized()
}

// Returns a [Vector3] with the same X and Y and the given Z.
func (self Vector2) Extend(z float32) Vector3 {
	return Vector3{ self.X, self.Y, z }
}

// Returns a textual representation of the vector (e.g.: "(2.5, -4)").
func (self Vector2) String() string {
	return "(" + fmtCoord(self.X) + ", " + fmtCoord(self.Y) + ")"
}

func fmtCoord(value float32) string {
	return strconv.FormatFloat(float64(value), 'f', -1, 32)
}
