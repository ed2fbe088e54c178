package viewer

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/philipparndt/gosketch/pkg/geometry"
)

// Camera represents a perspective camera for viewing a sketch plane.
// Its view and projection matrices are the only camera state the
// inference core consumes; they are threaded into calls explicitly,
// never read from globals.
type Camera struct {
	Position geometry.Vector3
	Target   geometry.Vector3
	Up       geometry.Vector3
	FOV      float64 // Field of view in radians
	Aspect   float64 // Viewport width / height
	Near     float64
	Far      float64
}

// NewCamera creates a camera looking at the origin from distance units
// along the +Z axis.
func NewCamera(distance float64) *Camera {
	return &Camera{
		Position: geometry.NewVector3(0, 0, distance),
		Target:   geometry.NewVector3(0, 0, 0),
		Up:       geometry.NewVector3(0, 1, 0),
		FOV:      math.Pi / 4, // 45 degrees
		Aspect:   1.0,
		Near:     0.1,
		Far:      distance * 100,
	}
}

// Zoom moves the camera along its view direction. Positive deltas
// move towards the target; the camera never crosses it.
func (c *Camera) Zoom(delta float64) {
	offset := c.Position.Sub(c.Target)
	scale := 1 - delta
	if scale < 0.01 {
		scale = 0.01
	}
	minDist := c.Near * 2
	if offset.Length()*scale < minDist {
		scale = minDist / offset.Length()
	}
	c.Position = c.Target.Add(offset.Mul(scale))
}

// basis returns the orthonormal camera basis (right, up, forward)
func (c *Camera) basis() (geometry.Vector3, geometry.Vector3, geometry.Vector3) {
	forward := c.Target.Sub(c.Position).Normalize()
	right := forward.Cross(c.Up).Normalize()
	up := right.Cross(forward).Normalize()
	return right, up, forward
}

// ViewMatrix returns the 4x4 world-to-camera transform
func (c *Camera) ViewMatrix() *mat.Dense {
	right, up, forward := c.basis()
	p := c.Position
	return mat.NewDense(4, 4, []float64{
		right.X, right.Y, right.Z, -right.Dot(p),
		up.X, up.Y, up.Z, -up.Dot(p),
		-forward.X, -forward.Y, -forward.Z, forward.Dot(p),
		0, 0, 0, 1,
	})
}

// ProjectionMatrix returns the 4x4 perspective projection transform
func (c *Camera) ProjectionMatrix() *mat.Dense {
	f := 1.0 / math.Tan(c.FOV/2)
	nf := 1.0 / (c.Near - c.Far)
	return mat.NewDense(4, 4, []float64{
		f / c.Aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (c.Far + c.Near) * nf, 2 * c.Far * c.Near * nf,
		0, 0, -1, 0,
	})
}

// ViewProjection returns projection * view
func (c *Camera) ViewProjection() *mat.Dense {
	var vp mat.Dense
	vp.Mul(c.ProjectionMatrix(), c.ViewMatrix())
	return &vp
}

// ProjectToNDC projects a world-space point into normalized device
// coordinates (x and y in [-1, 1], y up). Returns false if the point
// is behind the camera.
func (c *Camera) ProjectToNDC(world geometry.Vector3) (geometry.Point2, bool) {
	vp := c.ViewProjection()
	clip := transform(vp, world, 1)
	if clip[3] <= 0 {
		return geometry.Point2{}, false
	}
	return geometry.NewPoint2(clip[0]/clip[3], clip[1]/clip[3]), true
}

// Unproject converts normalized device coordinates back to a
// world-space ray. The ray origin is the intersection with the near
// plane; the direction points into the scene.
func (c *Camera) Unproject(ndc geometry.Point2) (origin, direction geometry.Vector3, err error) {
	var inv mat.Dense
	if err := inv.Inverse(c.ViewProjection()); err != nil {
		return geometry.Vector3{}, geometry.Vector3{}, fmt.Errorf("failed to invert view-projection matrix: %w", err)
	}

	near := dehomogenize(transformNDC(&inv, ndc, -1))
	far := dehomogenize(transformNDC(&inv, ndc, 1))
	return near, far.Sub(near).Normalize(), nil
}

// transform multiplies a 4x4 matrix with a homogeneous point
func transform(m *mat.Dense, v geometry.Vector3, w float64) [4]float64 {
	in := []float64{v.X, v.Y, v.Z, w}
	var out [4]float64
	for row := 0; row < 4; row++ {
		sum := 0.0
		for col := 0; col < 4; col++ {
			sum += m.At(row, col) * in[col]
		}
		out[row] = sum
	}
	return out
}

func transformNDC(m *mat.Dense, ndc geometry.Point2, z float64) [4]float64 {
	return transform(m, geometry.NewVector3(ndc.X, ndc.Y, z), 1)
}

func dehomogenize(h [4]float64) geometry.Vector3 {
	return geometry.NewVector3(h[0]/h[3], h[1]/h[3], h[2]/h[3])
}
