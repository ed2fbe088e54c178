package constraint

import (
	"errors"
	"math"

	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/sketch"
)

// ErrNotDrawing is returned by Commit when no gesture is in progress
var ErrNotDrawing = errors.New("constraint: no line gesture in progress")

// Options tunes the inference engine. Zero fields fall back to the
// defaults, so Options{} is usable.
type Options struct {
	// SnapAngleDeg is the angular band in degrees around the
	// horizontal, vertical, parallel and perpendicular directions
	// inside which the cursor snaps to the exact direction.
	SnapAngleDeg float64
	// SnapRadius is the pick distance for coincident snapping, in
	// sketch units.
	SnapRadius float64
	// RecentLines caps how many of the newest lines are checked for
	// parallel and perpendicular matches.
	RecentLines int
}

// DefaultOptions returns the tuning used by the interactive tools
func DefaultOptions() Options {
	return Options{
		SnapAngleDeg: 3,
		SnapRadius:   8,
		RecentLines:  5,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.SnapAngleDeg <= 0 {
		o.SnapAngleDeg = d.SnapAngleDeg
	}
	if o.SnapRadius <= 0 {
		o.SnapRadius = d.SnapRadius
	}
	if o.RecentLines <= 0 {
		o.RecentLines = d.RecentLines
	}
	return o
}

// State is the gesture state of the engine. Committed and Cancelled
// are terminal for one gesture; Begin starts a fresh one from any
// non-drawing state.
type State int

const (
	StateIdle State = iota
	StateDrawing
	StateCommitted
	StateCancelled
)

// String returns the lowercase name of the state
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDrawing:
		return "drawing"
	case StateCommitted:
		return "committed"
	case StateCancelled:
		return "cancelled"
	}
	return "unknown"
}

// Engine infers constraint hints while a line is drawn. It is driven
// by the pointer: Begin anchors the start, every Tick reevaluates the
// hint and the adjusted endpoint from scratch, Commit turns the last
// hint into constraints, Cancel discards the gesture.
//
// Hints never stack. Each tick produces at most one, and coincident
// beats horizontal/vertical, which beat parallel/perpendicular.
type Engine struct {
	store *sketch.Store
	opts  Options

	state State
	start geometry.Point2
	end   geometry.Point2
	hint  *Hint
}

// NewEngine creates an engine over a store
func NewEngine(store *sketch.Store, opts Options) *Engine {
	return &Engine{
		store: store,
		opts:  opts.withDefaults(),
	}
}

// State returns the current gesture state
func (e *Engine) State() State {
	return e.state
}

// Hint returns the live hint, or nil when none applies
func (e *Engine) Hint() *Hint {
	return e.hint
}

// Begin starts a line gesture. The start point snaps to a nearby
// existing point the same way the endpoint does during ticks.
func (e *Engine) Begin(start geometry.Point2) geometry.Point2 {
	if snap, ok := e.store.NearestPointWithin(start, e.opts.SnapRadius); ok {
		start = snap.Position
	}
	e.state = StateDrawing
	e.start = start
	e.end = start
	e.hint = nil
	return start
}

// Tick updates the gesture with a new cursor position and returns the
// adjusted endpoint. With suppress set the endpoint is the raw cursor
// and no hint is produced; suppression lasts only for this tick.
func (e *Engine) Tick(cursor geometry.Point2, suppress bool) geometry.Point2 {
	if e.state != StateDrawing {
		return cursor
	}

	e.hint = nil
	e.end = cursor
	if suppress {
		return e.end
	}

	// Coincident wins over every directional hint: landing exactly on
	// an existing point matters more than the direction of travel.
	if snap, ok := e.store.NearestPointWithin(cursor, e.opts.SnapRadius); ok {
		if !snap.Position.Approx(e.start, geometry.DegenerateEpsilon) {
			e.end = snap.Position
			e.hint = &Hint{Kind: HintCoincident, Target: snap.Entity}
			return e.end
		}
	}

	delta := cursor.Sub(e.start)
	if delta.LengthSq() == 0 {
		return e.end
	}

	if p, ok := e.axisSnap(delta); ok {
		e.end = p
		return e.end
	}

	if p, ok := e.directionSnap(delta); ok {
		e.end = p
		return e.end
	}
	return e.end
}

// axisSnap clamps the endpoint onto the horizontal or vertical through
// the start point when the travel direction is within the snap band.
func (e *Engine) axisSnap(delta geometry.Point2) (geometry.Point2, bool) {
	angle := math.Abs(delta.Angle()) * 180 / math.Pi

	// Horizontal covers both travel directions.
	if angle < e.opts.SnapAngleDeg || 180-angle < e.opts.SnapAngleDeg {
		e.hint = &Hint{Kind: HintHorizontal}
		return geometry.NewPoint2(e.start.X+delta.X, e.start.Y), true
	}
	if math.Abs(angle-90) < e.opts.SnapAngleDeg {
		e.hint = &Hint{Kind: HintVertical}
		return geometry.NewPoint2(e.start.X, e.start.Y+delta.Y), true
	}
	return geometry.Point2{}, false
}

// directionSnap rotates the endpoint to the nearest parallel or
// perpendicular direction of a recent line. Only consulted when no
// axis snap applied, so an axis-aligned reference line never produces
// a redundant parallel hint.
func (e *Engine) directionSnap(delta geometry.Point2) (geometry.Point2, bool) {
	band := e.opts.SnapAngleDeg * math.Pi / 180
	length := delta.Length()
	travel := delta.Angle()

	for _, line := range e.store.RecentLines(e.opts.RecentLines) {
		ref := line.Segment().Delta().Angle()
		for _, cand := range []struct {
			kind   HintKind
			offset float64
		}{
			{HintParallel, 0},
			{HintPerpendicular, math.Pi / 2},
		} {
			target := ref + cand.offset
			diff := travel - target
			// Directions are unsigned: travel along -target is still
			// parallel (or perpendicular).
			for diff > math.Pi/2 {
				diff -= math.Pi
			}
			for diff < -math.Pi/2 {
				diff += math.Pi
			}
			if math.Abs(diff) >= band {
				continue
			}
			snapped := travel - diff
			e.hint = &Hint{Kind: cand.kind, Target: line.ID}
			end := e.start.Add(geometry.NewPoint2(math.Cos(snapped), math.Sin(snapped)).Mul(length))
			return end, true
		}
	}
	return geometry.Point2{}, false
}

// Commit ends the gesture, adds the line to the store and returns it
// together with the constraints made from the last hint.
func (e *Engine) Commit() (sketch.Line, []Constraint, error) {
	if e.state != StateDrawing {
		return sketch.Line{}, nil, ErrNotDrawing
	}

	line, err := e.store.AddLine(e.start, e.end)
	if err != nil {
		e.state = StateIdle
		e.hint = nil
		return sketch.Line{}, nil, err
	}

	var constraints []Constraint
	if e.hint != nil {
		c := Constraint{Kind: e.hint.Kind, Entities: []sketch.ID{line.ID}}
		if e.hint.Target != 0 {
			c.Entities = append(c.Entities, e.hint.Target)
		}
		constraints = append(constraints, c)
	}
	e.state = StateCommitted
	e.hint = nil
	return line, constraints, nil
}

// Cancel discards the gesture without creating anything. A no-op
// outside of drawing.
func (e *Engine) Cancel() {
	if e.state != StateDrawing {
		return
	}
	e.state = StateCancelled
	e.hint = nil
}
