package sketch

import (
	"math"
	"testing"

	"github.com/philipparndt/gosketch/pkg/geometry"
)

func TestPlaneRoundTrip(t *testing.T) {
	plane := NewPlane(
		geometry.NewVector3(5, -2, 3),
		geometry.NewVector3(1, 1, 0),
		geometry.NewVector3(0, 0, 1),
	)

	local := geometry.NewPoint2(3.5, -7.25)
	world := plane.ToWorld(local)
	back := plane.ToLocal(world)

	if !back.Approx(local, 1e-10) {
		t.Errorf("round trip failed: expected %v, got %v", local, back)
	}
}

func TestPlaneOrthonormalization(t *testing.T) {
	// Deliberately non-orthogonal, non-unit axes.
	plane := NewPlane(
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(2, 0, 0),
		geometry.NewVector3(1, 1, 0),
	)

	if math.Abs(plane.XAxis.Length()-1.0) > 1e-10 {
		t.Errorf("XAxis not unit length: %v", plane.XAxis.Length())
	}
	if math.Abs(plane.YAxis.Length()-1.0) > 1e-10 {
		t.Errorf("YAxis not unit length: %v", plane.YAxis.Length())
	}
	if math.Abs(plane.XAxis.Dot(plane.YAxis)) > 1e-10 {
		t.Errorf("axes not orthogonal: dot = %v", plane.XAxis.Dot(plane.YAxis))
	}
}

func TestPlaneNormal(t *testing.T) {
	plane := XYPlane()
	expected := geometry.NewVector3(0, 0, 1)
	if !plane.Normal().Approx(expected, 1e-10) {
		t.Errorf("Normal failed: expected %v, got %v", expected, plane.Normal())
	}
}
