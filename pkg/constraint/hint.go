package constraint

import "github.com/philipparndt/gosketch/pkg/sketch"

// HintKind enumerates the constraints the engine can infer while a
// line is being drawn
type HintKind int

const (
	HintHorizontal HintKind = iota
	HintVertical
	HintCoincident
	HintParallel
	HintPerpendicular
)

// String returns the lowercase name of the hint kind
func (k HintKind) String() string {
	switch k {
	case HintHorizontal:
		return "horizontal"
	case HintVertical:
		return "vertical"
	case HintCoincident:
		return "coincident"
	case HintParallel:
		return "parallel"
	case HintPerpendicular:
		return "perpendicular"
	}
	return "unknown"
}

// Hint is a live constraint suggestion shown while drawing. At most
// one hint is active at a time; a new inference replaces the previous
// one rather than stacking.
type Hint struct {
	Kind HintKind
	// Target is the referenced entity for coincident, parallel and
	// perpendicular hints. Zero for horizontal and vertical.
	Target sketch.ID
}

// Constraint is a hint that was accepted at commit. Entities lists the
// committed line first, then the target where the kind has one.
type Constraint struct {
	Kind     HintKind
	Entities []sketch.ID
}
