package sketch

import (
	"github.com/philipparndt/gosketch/pkg/geometry"
)

// Plane is the 2D parametric plane a sketch lives on, embedded in
// world space. XAxis and YAxis are orthonormal by construction; the
// plane normal is their cross product.
type Plane struct {
	Origin geometry.Vector3
	XAxis  geometry.Vector3
	YAxis  geometry.Vector3
}

// NewPlane creates a plane from an origin and two axis directions.
// The axes are orthonormalized: XAxis is normalized and the component
// of YAxis parallel to it is removed.
func NewPlane(origin, xAxis, yAxis geometry.Vector3) Plane {
	x := xAxis.Normalize()
	y := yAxis.Sub(x.Mul(yAxis.Dot(x))).Normalize()
	return Plane{Origin: origin, XAxis: x, YAxis: y}
}

// XYPlane returns the world XY plane at the origin
func XYPlane() Plane {
	return Plane{
		Origin: geometry.NewVector3(0, 0, 0),
		XAxis:  geometry.NewVector3(1, 0, 0),
		YAxis:  geometry.NewVector3(0, 1, 0),
	}
}

// Normal returns the plane normal XAxis x YAxis
func (p Plane) Normal() geometry.Vector3 {
	return p.XAxis.Cross(p.YAxis)
}

// ToWorld converts a sketch-local point to world space
func (p Plane) ToWorld(local geometry.Point2) geometry.Vector3 {
	return p.Origin.Add(p.XAxis.Mul(local.X)).Add(p.YAxis.Mul(local.Y))
}

// ToLocal projects a world-space point onto the plane basis
func (p Plane) ToLocal(world geometry.Vector3) geometry.Point2 {
	rel := world.Sub(p.Origin)
	return geometry.NewPoint2(rel.Dot(p.XAxis), rel.Dot(p.YAxis))
}
