package sketchfile

import (
	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/sketch"
)

// Document is the serialized form of a sketch: its plane, its
// entities and the dimensions placed on them.
type Document struct {
	Name       string      `json:"name,omitempty"`
	Plane      PlaneDef    `json:"plane"`
	Entities   []EntityDef `json:"entities"`
	Dimensions []Dimension `json:"dimensions,omitempty"`
}

// PlaneDef serializes a sketch plane
type PlaneDef struct {
	Origin [3]float64 `json:"origin"`
	XAxis  [3]float64 `json:"xAxis"`
	YAxis  [3]float64 `json:"yAxis"`
}

// EntityDef serializes one entity. Type selects which fields apply:
// "point" uses At, "line" uses Start and End, "circle" uses Center
// and Radius, "arc" additionally StartAngle and EndAngle.
type EntityDef struct {
	Type       string     `json:"type"`
	At         [2]float64 `json:"at,omitempty"`
	Start      [2]float64 `json:"start,omitempty"`
	End        [2]float64 `json:"end,omitempty"`
	Center     [2]float64 `json:"center,omitempty"`
	Radius     float64    `json:"radius,omitempty"`
	StartAngle float64    `json:"startAngle,omitempty"`
	EndAngle   float64    `json:"endAngle,omitempty"`
}

// Dimension serializes a placed dimension
type Dimension struct {
	Kind      string     `json:"kind"`
	Subjects  []int      `json:"subjects"`
	Value     float64    `json:"value"`
	Placement [2]float64 `json:"placement"`
}

// NewDocument creates an empty document on the XY plane
func NewDocument(name string) *Document {
	return &Document{
		Name: name,
		Plane: PlaneDef{
			XAxis: [3]float64{1, 0, 0},
			YAxis: [3]float64{0, 1, 0},
		},
		Entities: make([]EntityDef, 0),
	}
}

// SketchPlane converts the serialized plane definition
func (d *Document) SketchPlane() sketch.Plane {
	return sketch.NewPlane(
		vec3(d.Plane.Origin),
		vec3(d.Plane.XAxis),
		vec3(d.Plane.YAxis),
	)
}

func vec3(v [3]float64) geometry.Vector3 {
	return geometry.NewVector3(v[0], v[1], v[2])
}

func point2(v [2]float64) geometry.Point2 {
	return geometry.NewPoint2(v[0], v[1])
}

func coords2(p geometry.Point2) [2]float64 {
	return [2]float64{p.X, p.Y}
}
