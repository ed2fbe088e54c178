package dimension

import (
	"math"

	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/sketch"
)

// Tolerances bundles the epsilons of the resolver. The axis-lock
// offset in particular is empirical and tuned per application, so it
// is a field rather than a constant.
type Tolerances struct {
	// Epsilon is the coordinate comparison tolerance.
	Epsilon float64
	// AxisLockOffset is how far the placement point must sit off the
	// segment midpoint, along one axis and dominating the other,
	// before a point-point dimension locks to Horizontal/Vertical
	// instead of plain Distance.
	AxisLockOffset float64
	// ParallelAngleDeg is the angle in degrees below which two lines
	// count as parallel (or antiparallel) to each other.
	ParallelAngleDeg float64
}

// DefaultTolerances returns the tolerances used by the interactive
// tools.
func DefaultTolerances() Tolerances {
	return Tolerances{
		Epsilon:          1e-6,
		AxisLockOffset:   50,
		ParallelAngleDeg: 0.01,
	}
}

// Resolver turns a classified subject pair plus a placement point into
// a dimension proposal.
type Resolver struct {
	Tol Tolerances
	// DiameterMode switches single-circle dimensions from Radius to
	// Diameter. It is an explicit caller toggle, never inferred from
	// the selection.
	DiameterMode bool
}

// NewResolver creates a resolver with default tolerances
func NewResolver() *Resolver {
	return &Resolver{Tol: DefaultTolerances()}
}

// Resolve decides which dimension kind applies to the subjects and
// computes its value. The placement point only influences the
// horizontal/vertical axis lock and the angle side selection.
//
// Errors are terminal for the gesture: the caller discards the
// proposal and returns to a neutral selection state.
func (r *Resolver) Resolve(pair SubjectPair, placement geometry.Point2) (Proposal, error) {
	switch pair.Kind {
	case PairPointPoint:
		return r.resolvePointPoint(pair, placement)
	case PairPointLine:
		return r.resolvePointLine(pair, placement)
	case PairLineLine:
		return r.resolveLineLine(pair, placement)
	case PairPointCircle:
		return r.resolvePointCircle(pair, placement)
	case PairSingleLine:
		return Proposal{
			Kind:      Distance,
			Subjects:  pair.Subjects,
			Value:     pair.Line1.Length(),
			Anchor:    pair.Line1.Midpoint(),
			Placement: placement,
		}, nil
	case PairSingleCircle:
		return r.resolveSingleCircle(pair, placement), nil
	}
	return Proposal{}, ErrUnsupportedSelection
}

func (r *Resolver) resolvePointPoint(pair SubjectPair, placement geometry.Point2) (Proposal, error) {
	a, b := pair.PointA, pair.PointB
	if a.Approx(b, r.Tol.Epsilon) {
		// Same point picked twice, or two distinct references that
		// coincide: either way a zero-value dimension.
		return Proposal{}, ErrSamePointOrEntity
	}

	proposal := Proposal{
		Subjects:  pair.Subjects,
		Anchor:    a.Midpoint(b),
		Placement: placement,
	}

	dx := math.Abs(a.X - b.X)
	dy := math.Abs(a.Y - b.Y)

	// Points sharing a coordinate are already axis aligned.
	if dx < r.Tol.Epsilon {
		proposal.Kind = VerticalDistance
		proposal.Value = dy
		return proposal, nil
	}
	if dy < r.Tol.Epsilon {
		proposal.Kind = HorizontalDistance
		proposal.Value = dx
		return proposal, nil
	}

	// Otherwise the placement point decides: dragged far off along
	// one axis, the user wants the axis-aligned extent with witness
	// lines, not the diagonal.
	offX := math.Abs(placement.X - proposal.Anchor.X)
	offY := math.Abs(placement.Y - proposal.Anchor.Y)
	switch {
	case offY > r.Tol.AxisLockOffset && offY > offX:
		proposal.Kind = HorizontalDistance
		proposal.Value = dx
	case offX > r.Tol.AxisLockOffset && offX > offY:
		proposal.Kind = VerticalDistance
		proposal.Value = dy
	default:
		proposal.Kind = Distance
		proposal.Value = a.Distance(b)
	}
	return proposal, nil
}

func (r *Resolver) resolvePointLine(pair SubjectPair, placement geometry.Point2) (Proposal, error) {
	dist := pair.Line1.PerpendicularDistance(pair.PointA)
	if dist < r.Tol.Epsilon {
		// The point lies on the infinite line: a zero-length dimension
		// would be meaningless and unsolvable.
		return Proposal{}, ErrDegenerateZeroDistance
	}
	return Proposal{
		Kind:      DistancePointLine,
		Subjects:  pair.Subjects,
		Value:     dist,
		Anchor:    pair.Line1.ClosestOnLine(pair.PointA),
		Placement: placement,
	}, nil
}

func (r *Resolver) resolveLineLine(pair SubjectPair, placement geometry.Point2) (Proposal, error) {
	if pair.Subjects[0] == pair.Subjects[1] {
		return Proposal{}, ErrSamePointOrEntity
	}

	result := geometry.AngleBetween(pair.Line1, pair.Line2)
	deg := result.Degrees
	if result.Parallel || deg < r.Tol.ParallelAngleDeg || deg > 180-r.Tol.ParallelAngleDeg {
		// Parallel lines get a distance, not a 0/180 angle.
		dist := pair.Line1.PerpendicularDistance(pair.Line2.Start)
		if dist < r.Tol.Epsilon {
			return Proposal{}, ErrDegenerateZeroDistance
		}
		return Proposal{
			Kind:      Distance,
			Subjects:  pair.Subjects,
			Value:     dist,
			Anchor:    pair.Line2.Start,
			Placement: placement,
		}, nil
	}

	return Proposal{
		Kind:      Angle,
		Subjects:  pair.Subjects,
		Value:     angleForPlacement(result, placement),
		Anchor:    result.Vertex,
		Placement: placement,
	}, nil
}

// angleForPlacement picks the measured angle or its supplement so the
// annotated arc lands in the quadrant the user clicked in. The four
// quadrants around the vertex alternate between the two supplementary
// solutions; opposite quadrants share one.
func angleForPlacement(result geometry.AngleResult, placement geometry.Point2) float64 {
	toPlacement := placement.Sub(result.Vertex)
	if toPlacement.LengthSq() == 0 {
		return result.Degrees
	}

	a1 := result.Dir1.Angle()
	span := angleDiff(result.Dir2.Angle(), a1)
	at := angleDiff(toPlacement.Angle(), a1)

	if sameSector(at, span) {
		return result.Degrees
	}
	// Opposite (vertical) sector measures the same angle.
	opposite := angleDiff(toPlacement.Angle(), a1+math.Pi)
	if sameSector(opposite, span) {
		return result.Degrees
	}
	return 180 - result.Degrees
}

// angleDiff wraps a-b into (-pi, pi]
func angleDiff(a, b float64) float64 {
	d := a - b
	for d > math.Pi {
		d -= 2 * math.Pi
	}
	for d <= -math.Pi {
		d += 2 * math.Pi
	}
	return d
}

// sameSector reports whether angle at lies inside the sector swept
// from 0 to span.
func sameSector(at, span float64) bool {
	if span >= 0 {
		return at >= 0 && at <= span
	}
	return at <= 0 && at >= span
}

func (r *Resolver) resolvePointCircle(pair SubjectPair, placement geometry.Point2) (Proposal, error) {
	if pair.PointIsCenter {
		// The circle's own center with no external point: the
		// dimension is the circle's radius.
		return Proposal{
			Kind:      Radius,
			Subjects:  [2]sketch.ID{pair.Subjects[1]},
			Value:     pair.Radius,
			Anchor:    pair.Center,
			Placement: placement,
		}, nil
	}

	dist := pair.PointA.Distance(pair.Center)
	if dist < r.Tol.Epsilon {
		return Proposal{}, ErrDegenerateZeroDistance
	}
	return Proposal{
		Kind:      Distance,
		Subjects:  pair.Subjects,
		Value:     dist,
		Anchor:    pair.PointA.Midpoint(pair.Center),
		Placement: placement,
	}, nil
}

func (r *Resolver) resolveSingleCircle(pair SubjectPair, placement geometry.Point2) Proposal {
	kind := Radius
	value := pair.Radius
	if r.DiameterMode {
		kind = Diameter
		value = 2 * pair.Radius
	}
	return Proposal{
		Kind:      kind,
		Subjects:  pair.Subjects,
		Value:     value,
		Anchor:    pair.Center,
		Placement: placement,
	}
}
