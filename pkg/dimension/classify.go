package dimension

import (
	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/sketch"
)

// PairKind is the canonical shape of a classified selection
type PairKind int

const (
	PairPointPoint PairKind = iota
	PairPointLine
	PairLineLine
	PairPointCircle
	PairSingleLine
	PairSingleCircle
)

// String returns a short name for the pair kind
func (k PairKind) String() string {
	switch k {
	case PairPointPoint:
		return "point-point"
	case PairPointLine:
		return "point-line"
	case PairLineLine:
		return "line-line"
	case PairPointCircle:
		return "point-circle"
	case PairSingleLine:
		return "single-line"
	case PairSingleCircle:
		return "single-circle"
	}
	return "unknown"
}

// SubjectPair is a classified selection with all geometry resolved, so
// the resolver is a pure function of the pair and the placement point.
type SubjectPair struct {
	Kind     PairKind
	Subjects [2]sketch.ID
	Items    [2]sketch.SelectionItem

	// PointA and PointB are set for PairPointPoint. For PairPointLine
	// and PairPointCircle only PointA carries the point.
	PointA geometry.Point2
	PointB geometry.Point2

	// Line1 is set for PairPointLine, PairLineLine and PairSingleLine;
	// Line2 only for PairLineLine.
	Line1 geometry.Segment
	Line2 geometry.Segment

	// Center and Radius are set for PairPointCircle and
	// PairSingleCircle.
	Center geometry.Point2
	Radius float64

	// PointIsCenter reports that the point of a PairPointCircle is the
	// circle's own center.
	PointIsCenter bool
}

// Classify reduces an ordered selection of 0-2 items to a canonical
// subject pair. The order of the two items never affects the result.
// Pure function over the selection and the entity store.
func Classify(store *sketch.Store, items []sketch.SelectionItem) (SubjectPair, error) {
	if len(items) > 2 {
		return SubjectPair{}, ErrTooManySelectionItems
	}
	if len(items) == 0 {
		return SubjectPair{}, ErrUnsupportedSelection
	}

	if len(items) == 1 {
		return classifySingle(store, items[0])
	}

	// Normalize order: point-like item first, edge second. Two items
	// of the same flavor keep their selection order, which the rules
	// below never depend on.
	a, b := items[0], items[1]
	if b.Role.IsPointLike() && !a.Role.IsPointLike() {
		a, b = b, a
	}

	switch {
	case a.Role.IsPointLike() && b.Role.IsPointLike():
		return classifyPointPoint(store, a, b)
	case a.Role.IsPointLike() && b.Role == sketch.RoleEdgeCurve:
		return classifyPointEdge(store, a, b)
	case a.Role == sketch.RoleEdgeCurve && b.Role == sketch.RoleEdgeCurve:
		return classifyEdgeEdge(store, a, b)
	}
	return SubjectPair{}, ErrUnsupportedSelection
}

func classifySingle(store *sketch.Store, item sketch.SelectionItem) (SubjectPair, error) {
	if item.Role != sketch.RoleEdgeCurve {
		// A lone point has nothing to dimension against.
		return SubjectPair{}, ErrUnsupportedSelection
	}

	entity, ok := store.Get(item.Entity)
	if !ok {
		return SubjectPair{}, ErrUnknownEntity
	}

	switch e := entity.(type) {
	case sketch.Line:
		return SubjectPair{
			Kind:     PairSingleLine,
			Subjects: [2]sketch.ID{item.Entity},
			Items:    [2]sketch.SelectionItem{item},
			Line1:    e.Segment(),
		}, nil
	case sketch.Circle:
		return SubjectPair{
			Kind:     PairSingleCircle,
			Subjects: [2]sketch.ID{item.Entity},
			Items:    [2]sketch.SelectionItem{item},
			Center:   e.Center,
			Radius:   e.Radius,
		}, nil
	case sketch.Arc:
		return SubjectPair{
			Kind:     PairSingleCircle,
			Subjects: [2]sketch.ID{item.Entity},
			Items:    [2]sketch.SelectionItem{item},
			Center:   e.Center,
			Radius:   e.Radius,
		}, nil
	}
	return SubjectPair{}, ErrUnsupportedSelection
}

func classifyPointPoint(store *sketch.Store, a, b sketch.SelectionItem) (SubjectPair, error) {
	pa, ok := store.PointAt(a)
	if !ok {
		return SubjectPair{}, ErrUnknownEntity
	}
	pb, ok := store.PointAt(b)
	if !ok {
		return SubjectPair{}, ErrUnknownEntity
	}
	return SubjectPair{
		Kind:     PairPointPoint,
		Subjects: [2]sketch.ID{a.Entity, b.Entity},
		Items:    [2]sketch.SelectionItem{a, b},
		PointA:   pa,
		PointB:   pb,
	}, nil
}

func classifyPointEdge(store *sketch.Store, point, edge sketch.SelectionItem) (SubjectPair, error) {
	p, ok := store.PointAt(point)
	if !ok {
		return SubjectPair{}, ErrUnknownEntity
	}
	entity, ok := store.Get(edge.Entity)
	if !ok {
		return SubjectPair{}, ErrUnknownEntity
	}

	switch e := entity.(type) {
	case sketch.Line:
		return SubjectPair{
			Kind:     PairPointLine,
			Subjects: [2]sketch.ID{point.Entity, edge.Entity},
			Items:    [2]sketch.SelectionItem{point, edge},
			PointA:   p,
			Line1:    e.Segment(),
		}, nil
	case sketch.Circle:
		return pointCircle(point, edge, p, e.Center, e.Radius), nil
	case sketch.Arc:
		return pointCircle(point, edge, p, e.Center, e.Radius), nil
	}
	return SubjectPair{}, ErrUnsupportedSelection
}

func pointCircle(point, edge sketch.SelectionItem, p, center geometry.Point2, radius float64) SubjectPair {
	return SubjectPair{
		Kind:          PairPointCircle,
		Subjects:      [2]sketch.ID{point.Entity, edge.Entity},
		Items:         [2]sketch.SelectionItem{point, edge},
		PointA:        p,
		Center:        center,
		Radius:        radius,
		PointIsCenter: point.Role == sketch.RoleCenter && point.Entity == edge.Entity,
	}
}

func classifyEdgeEdge(store *sketch.Store, a, b sketch.SelectionItem) (SubjectPair, error) {
	ea, ok := store.Get(a.Entity)
	if !ok {
		return SubjectPair{}, ErrUnknownEntity
	}
	eb, ok := store.Get(b.Entity)
	if !ok {
		return SubjectPair{}, ErrUnknownEntity
	}

	la, aIsLine := ea.(sketch.Line)
	lb, bIsLine := eb.(sketch.Line)
	if !aIsLine || !bIsLine {
		// Two curves without picked centers have no dimension rule.
		return SubjectPair{}, ErrUnsupportedSelection
	}

	return SubjectPair{
		Kind:     PairLineLine,
		Subjects: [2]sketch.ID{a.Entity, b.Entity},
		Items:    [2]sketch.SelectionItem{a, b},
		Line1:    la.Segment(),
		Line2:    lb.Segment(),
	}, nil
}
