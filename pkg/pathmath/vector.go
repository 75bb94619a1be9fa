// Package pathmath provides the vector/point/ray algebra shared by every
// other package in the renderer.
package pathmath

import "math"

// Vector is a 3D displacement. Components are 32-bit floats per the data
// model's (x,y,z) triple. Dot products and squared lengths are summed in
// float32 and returned as float64; scalar factors are taken as float64
// and narrowed to float32 before multiplying. Only the operations that make physical sense
// on a displacement are exposed: vector+vector, scalar*vector, negation,
// dot/cross, and normalization.
type Vector struct {
	X, Y, Z float32
}

// NewVector creates a new Vector.
func NewVector(x, y, z float64) Vector {
	return Vector{X: float32(x), Y: float32(y), Z: float32(z)}
}

// Add returns the sum of two vectors.
func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors.
func (v Vector) Subtract(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar.
func (v Vector) Multiply(scalar float64) Vector {
	s := float32(scalar)
	return Vector{v.X * s, v.Y * s, v.Z * s}
}

// Negate returns the opposite vector.
func (v Vector) Negate() Vector {
	return Vector{-v.X, -v.Y, -v.Z}
}

// Length returns the magnitude of the vector.
func (v Vector) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// LengthSquared returns the squared magnitude of the vector.
func (v Vector) LengthSquared() float64 {
	return float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Dot returns the dot product of two vectors.
func (v Vector) Dot(other Vector) float64 {
	return float64(v.X*other.X + v.Y*other.Y + v.Z*other.Z)
}

// Cross returns the right-handed cross product of two vectors.
func (v Vector) Cross(other Vector) Vector {
	return Vector{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Normalize returns a unit vector in the same direction. The caller must
// not call this on a zero-length vector.
func (v Vector) Normalize() Vector {
	length := float32(v.Length())
	return Vector{v.X / length, v.Y / length, v.Z / length}
}

// Reflect returns the mirror reflection of v about the plane with normal n,
// i.e. d - 2*(d.n)*n.
func (v Vector) Reflect(n Vector) Vector {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
