package geometry

import "math"

// Point2 represents a 2D point or direction vector in sketch-local
// coordinates (plane-relative, not world or screen space).
type Point2 struct {
	X, Y float64
}

// NewPoint2 creates a new 2D point
func NewPoint2(x, y float64) Point2 {
	return Point2{X: x, Y: y}
}

// Add returns the sum of two points (vector addition)
func (p Point2) Add(other Point2) Point2 {
	return Point2{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the difference between two points
func (p Point2) Sub(other Point2) Point2 {
	return Point2{X: p.X - other.X, Y: p.Y - other.Y}
}

// Mul multiplies the point by a scalar
func (p Point2) Mul(scalar float64) Point2 {
	return Point2{X: p.X * scalar, Y: p.Y * scalar}
}

// Dot returns the dot product of two vectors
func (p Point2) Dot(other Point2) float64 {
	return p.X*other.X + p.Y*other.Y
}

// Cross returns the 2D cross product (the z-component of the 3D cross
// product with z=0). Its sign gives the orientation of the turn from p
// to other.
func (p Point2) Cross(other Point2) float64 {
	return p.X*other.Y - p.Y*other.X
}

// Length returns the magnitude of the vector
func (p Point2) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// LengthSq returns the squared magnitude of the vector.
// Cheaper than Length when only comparing magnitudes.
func (p Point2) LengthSq() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Distance returns the distance between two points
func (p Point2) Distance(other Point2) float64 {
	return p.Sub(other).Length()
}

// DistanceSq returns the squared distance between two points
func (p Point2) DistanceSq(other Point2) float64 {
	return p.Sub(other).LengthSq()
}

// Normalize returns a unit vector in the same direction
func (p Point2) Normalize() Point2 {
	length := p.Length()
	if length == 0 {
		return Point2{}
	}
	return Point2{X: p.X / length, Y: p.Y / length}
}

// Perp returns the vector rotated 90 degrees counter-clockwise
func (p Point2) Perp() Point2 {
	return Point2{X: -p.Y, Y: p.X}
}

// Angle returns the angle of the vector in radians, measured from the
// positive x axis
func (p Point2) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// Midpoint returns the point halfway between two points
func (p Point2) Midpoint(other Point2) Point2 {
	return Point2{X: (p.X + other.X) / 2, Y: (p.Y + other.Y) / 2}
}

// Approx returns true if two points are equal within epsilon
func (p Point2) Approx(other Point2, epsilon float64) bool {
	return math.Abs(p.X-other.X) < epsilon && math.Abs(p.Y-other.Y) < epsilon
}
