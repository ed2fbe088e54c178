package dimension

import (
	"errors"

	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/sketch"
)

// Kind enumerates the dimension types the resolver can produce
type Kind int

const (
	Distance Kind = iota
	HorizontalDistance
	VerticalDistance
	Angle
	Radius
	Diameter
	DistancePointLine
)

// String returns a short name for the kind
func (k Kind) String() string {
	switch k {
	case Distance:
		return "distance"
	case HorizontalDistance:
		return "horizontal-distance"
	case VerticalDistance:
		return "vertical-distance"
	case Angle:
		return "angle"
	case Radius:
		return "radius"
	case Diameter:
		return "diameter"
	case DistancePointLine:
		return "distance-point-line"
	}
	return "unknown"
}

// Proposal is a fully resolved dimension, created transiently per
// dimensioning gesture. On commit, ownership transfers to the external
// command layer which turns it into a driving constraint; on cancel it
// is simply discarded.
type Proposal struct {
	Kind Kind
	// Subjects references the dimensioned entities. The second entry
	// is zero for Radius and Diameter.
	Subjects [2]sketch.ID
	Value    float64
	// Anchor is the geometric reference of the dimension (midpoint,
	// angle vertex, projection foot, circle center).
	Anchor geometry.Point2
	// Placement is where the user put the annotation.
	Placement geometry.Point2
}

// Measurement is structurally a resolved dimension but explicitly
// non-driving: it is never handed to the constraint solver and lives
// only for the current interaction session.
type Measurement struct {
	Kind      Kind
	Subjects  [2]sketch.ID
	Value     float64
	Anchor    geometry.Point2
	Placement geometry.Point2
}

// Typed gesture errors. Each aborts the current gesture only; the tool
// controller returns to a neutral selection state and no proposal is
// surfaced.
var (
	// ErrTooManySelectionItems rejects selections of more than two
	// items instead of silently truncating them.
	ErrTooManySelectionItems = errors.New("dimension: selection has more than two items")

	// ErrUnsupportedSelection marks a selection shape the resolver has
	// no rule for.
	ErrUnsupportedSelection = errors.New("dimension: unsupported selection combination")

	// ErrDegenerateZeroDistance rejects dimensions whose value would
	// be zero, such as a point lying on the very line it is measured
	// against.
	ErrDegenerateZeroDistance = errors.New("dimension: distance is degenerate zero")

	// ErrSamePointOrEntity rejects selecting the same point or curve
	// twice.
	ErrSamePointOrEntity = errors.New("dimension: both selection items refer to the same point or entity")

	// ErrUnknownEntity is returned when a selection references an
	// entity missing from the store.
	ErrUnknownEntity = errors.New("dimension: selection references unknown entity")
)
