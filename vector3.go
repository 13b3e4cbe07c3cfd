package evec

import "github.com/tinne26/evec/fsqrt"

// Three float32 coordinates. Same semantics as [Vector2]: methods
// with value receivers return new vectors, the pointer receiver
// ones operate in place.
type Vector3 struct {
	X float32
	Y float32
	Z float32
}

// Creates a vector from explicit coordinates.
func NewVector3(x, y, z float32) Vector3 {
	return Vector3{ X: x, Y: y, Z: z }
}

// Creates a vector with all its coordinates set to the given value.
func FillVector3(value float32) Vector3 {
	return Vector3{ X: value, Y: value, Z: value }
}

// Returns (0, 0, 0).
func Vector3Zero() Vector3 { return Vector3{} }

// Returns (1, 1, 1).
func Vector3One() Vector3 { return Vector3{ 1, 1, 1 } }

// Returns (0, 1, 0).
func Vector3Up() Vector3 { return Vector3{ 0, 1, 0 } }

// Returns (0, -1, 0).
func Vector3Down() Vector3 { return Vector3{ 0, -1, 0 } }

// Returns (-1, 0, 0).
func Vector3Left() Vector3 { return Vector3{ -1, 0, 0 } }

// Returns (1, 0, 0).
func Vector3Right() Vector3 { return Vector3{ 1, 0, 0 } }

// Returns (0, 0, 1).
func Vector3Forward() Vector3 { return Vector3{ 0, 0, 1 } }

// Returns (0, 0, -1).
func Vector3Backward() Vector3 { return Vector3{ 0, 0, -1 } }

// --- arithmetic ---

// Returns the sum of both vectors.
func (self Vector3) Add(other Vector3) Vector3 {
	return Vector3{ self.X + other.X, self.Y + other.Y, self.Z + other.Z }
}

// Returns the difference of both vectors.
func (self Vector3) Sub(other Vector3) Vector3 {
	return Vector3{ self.X - other.X, self.Y - other.Y, self.Z - other.Z }
}

// Component-wise multiplication.
func (self Vector3) Mul(other Vector3) Vector3 {
	return Vector3{ self.X*other.X, self.Y*other.Y, self.Z*other.Z }
}

// Component-wise division. Zero components in the divisor
// lead to infinites or NaNs.
func (self Vector3) Div(other Vector3) Vector3 {
	return Vector3{ self.X/other.X, self.Y/other.Y, self.Z/other.Z }
}

// Adds the value to each coordinate.
func (self Vector3) AddScalar(value float32) Vector3 {
	return Vector3{ self.X + value, self.Y + value, self.Z + value }
}

// Subtracts the value from each coordinate.
func (self Vector3) SubScalar(value float32) Vector3 {
	return Vector3{ self.X - value, self.Y - value, self.Z - value }
}

// Multiplies each coordinate by the value.
func (self Vector3) MulScalar(value float32) Vector3 {
	return Vector3{ self.X*value, self.Y*value, self.Z*value }
}

// Divides each coordinate by the value.
func (self Vector3) DivScalar(value float32) Vector3 {
	return Vector3{ self.X/value, self.Y/value, self.Z/value }
}

// Returns the vector with all its coordinates negated.
func (self Vector3) Neg() Vector3 {
	return Vector3{ -self.X, -self.Y, -self.Z }
}

// In-place variant of [Vector3.Add]().
func (self *Vector3) AddAssign(other Vector3) { *self = self.Add(other) }

// In-place variant of [Vector3.Sub]().
func (self *Vector3) SubAssign(other Vector3) { *self = self.Sub(other) }

// In-place variant of [Vector3.Mul]().
func (self *Vector3) MulAssign(other Vector3) { *self = self.Mul(other) }

// In-place variant of [Vector3.Div]().
func (self *Vector3) DivAssign(other Vector3) { *self = self.Div(other) }

// In-place variant of [Vector3.AddScalar]().
func (self *Vector3) AddScalarAssign(value float32) { *self = self.AddScalar(value) }

// In-place variant of [Vector3.SubScalar]().
func (self *Vector3) SubScalarAssign(value float32) { *self = self.SubScalar(value) }

// In-place variant of [Vector3.MulScalar]().
func (self *Vector3) MulScalarAssign(value float32) { *self = self.MulScalar(value) }

// In-place variant of [Vector3.DivScalar]().
func (self *Vector3) DivScalarAssign(value float32) { *self = self.DivScalar(value) }

// Exact comparison, same as ==.
func (self Vector3) Equals(other Vector3) bool {
	return self == other
}

// --- geometry ---

// Returns the dot product of both vectors. Can also be used
// with the method expression form: Vector3.Dot(a, b).
func (self Vector3) Dot(other Vector3) float32 {
	return self.X*other.X + self.Y*other.Y + self.Z*other.Z
}

// Returns the cross product self × other (right-handed).
func (self Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		X: self.Y*other.Z - self.Z*other.Y,
		Y: self.Z*other.X - self.X*other.Z,
		Z: self.X*other.Y - self.Y*other.X,
	}
}

// Returns the squared length of the vector.
func (self Vector3) SqrMagnitude() float32 {
	return self.Dot(self)
}

// Returns the length of the vector, computed with [fsqrt.Sqrt]().
// Components below ~1e-19 or above ~1e19 in magnitude take the sum
// of squares out of the normal float32 range and give garbage.
func (self Vector3) Magnitude() float32 {
	return fsqrt.Sqrt(self.SqrMagnitude())
}

// Returns the distance between the two points. Can also be used
// with the method expression form: Vector3.Distance(a, b).
func (self Vector3) Distance(other Vector3) float32 {
	return self.Sub(other).Magnitude()
}

// Returns self + (other - self)*amount, without clamping the amount.
func (self Vector3) Lerp(other Vector3, amount float32) Vector3 {
	return self.Add(other.Sub(self).MulScalar(amount))
}

// Sets the vector to the linear interpolation between a and b.
// See [Vector3.Lerp]().
func (self *Vector3) SetLerp(a, b Vector3, amount float32) {
	*self = a.Lerp(b, amount)
}

// Returns the vector scaled to unit length. Zero vectors
// result in NaN coordinates, and the same component range
// limits as [Vector3.Magnitude]() apply.
func (self Vector3) Normalized() Vector3 {
	return self.MulScalar(1/self.Magnitude())
}

// In-place variant of [Vector3.Normalized]().
func (self *Vector3) Normalize() {
	*self = self.Normalized()
}

// Drops the Z coordinate.
func (self Vector3) XY() Vector2 {
	return Vector2{ self.X, self.Y }
}

// Returns a textual representation of the vector (e.g.: "(1, 0.5, -3)").
func (self Vector3) String() string {
	return "(" + fmtCoord(self.X) + ", " + fmtCoord(self.Y) + ", " + fmtCoord(self.Z) + ")"
}
