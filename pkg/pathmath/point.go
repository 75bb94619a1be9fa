package pathmath

// Point is a 3D affine position. Components are 32-bit floats per the
// data model. The only legal cross-type operations between Point and
// Vector are point-point -> vector and point+-vector -> point; Point
// never exposes dot/cross/normalize, mirroring the restricted algebra in
// the data model.
type Point struct {
	X, Y, Z float32
}

// NewPoint creates a new Point.
func NewPoint(x, y, z float64) Point {
	return Point{X: float32(x), Y: float32(y), Z: float32(z)}
}

// Subtract returns the displacement from other to p.
func (p Point) Subtract(other Point) Vector {
	return Vector{p.X - other.X, p.Y - other.Y, p.Z - other.Z}
}

// Add returns the point offset by v.
func (p Point) Add(v Vector) Point {
	return Point{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// AddScaled offsets the point by a vector scaled by t; a small convenience
// for the ray-marching idiom origin + t*direction.
func (p Point) AddScaled(v Vector, t float64) Point {
	return p.Add(v.Multiply(t))
}
