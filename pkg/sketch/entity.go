package sketch

import (
	"fmt"

	"github.com/philipparndt/gosketch/pkg/geometry"
)

// ID identifies an entity within a sketch. The zero ID is never
// assigned and marks "no entity".
type ID int

// Kind enumerates the sketch primitive types
type Kind int

const (
	KindPoint Kind = iota
	KindLine
	KindCircle
	KindArc
)

// String returns the lowercase name of the kind
func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindLine:
		return "line"
	case KindCircle:
		return "circle"
	case KindArc:
		return "arc"
	}
	return "unknown"
}

// Entity is implemented by every sketch primitive. All coordinates are
// sketch-local (plane-relative).
type Entity interface {
	EntityID() ID
	EntityKind() Kind
}

// Point is a free point in the sketch
type Point struct {
	ID       ID
	Position geometry.Point2
}

// Line is a straight segment between two endpoints. Start and End are
// not semantically ordered and no operation may assume one of them is
// "the" anchor.
type Line struct {
	ID    ID
	Start geometry.Point2
	End   geometry.Point2
}

// Circle is a full circle with a positive radius
type Circle struct {
	ID     ID
	Center geometry.Point2
	Radius float64
}

// Arc is a circular arc with a positive radius. Angles are in radians,
// counter-clockwise from the positive x axis.
type Arc struct {
	ID         ID
	Center     geometry.Point2
	Radius     float64
	StartAngle float64
	EndAngle   float64
}

func (p Point) EntityID() ID     { return p.ID }
func (p Point) EntityKind() Kind { return KindPoint }

func (l Line) EntityID() ID     { return l.ID }
func (l Line) EntityKind() Kind { return KindLine }

// Segment returns the line's geometry
func (l Line) Segment() geometry.Segment {
	return geometry.Segment{Start: l.Start, End: l.End}
}

// Midpoint returns the point halfway between the endpoints
func (l Line) Midpoint() geometry.Point2 {
	return l.Start.Midpoint(l.End)
}

func (c Circle) EntityID() ID     { return c.ID }
func (c Circle) EntityKind() Kind { return KindCircle }

func (a Arc) EntityID() ID     { return a.ID }
func (a Arc) EntityKind() Kind { return KindArc }

// validateLine rejects degenerate lines at creation so downstream code
// never has to handle them.
func validateLine(start, end geometry.Point2) error {
	if _, err := geometry.NewSegment(start, end); err != nil {
		return fmt.Errorf("invalid line: %w", err)
	}
	return nil
}

func validateRadius(radius float64) error {
	if radius <= 0 {
		return fmt.Errorf("invalid radius %g: must be positive", radius)
	}
	return nil
}
