package constraint

import (
	"errors"
	"math"
	"testing"

	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/sketch"
)

func TestEngineHorizontalClamp(t *testing.T) {
	store := sketch.NewStore()
	if _, err := store.AddLine(geometry.NewPoint2(0, 0), geometry.NewPoint2(10, 0)); err != nil {
		t.Fatal(err)
	}

	engine := NewEngine(store, Options{})
	engine.Begin(geometry.NewPoint2(0, 100))

	// 2.3 degrees off horizontal, inside the 3 degree band.
	end := engine.Tick(geometry.NewPoint2(50, 102), false)
	if math.Abs(end.Y-100) > 1e-9 || math.Abs(end.X-50) > 1e-9 {
		t.Errorf("expected clamp to (50,100), got %v", end)
	}
	hint := engine.Hint()
	if hint == nil || hint.Kind != HintHorizontal {
		t.Errorf("expected horizontal hint, got %v", hint)
	}
}

func TestEngineVerticalClamp(t *testing.T) {
	engine := NewEngine(sketch.NewStore(), Options{})
	engine.Begin(geometry.NewPoint2(0, 100))

	end := engine.Tick(geometry.NewPoint2(1, 150), false)
	if math.Abs(end.X) > 1e-9 || math.Abs(end.Y-150) > 1e-9 {
		t.Errorf("expected clamp to (0,150), got %v", end)
	}
	hint := engine.Hint()
	if hint == nil || hint.Kind != HintVertical {
		t.Errorf("expected vertical hint, got %v", hint)
	}
}

func TestEngineCoincidentBeatsAxis(t *testing.T) {
	store := sketch.NewStore()
	line, err := store.AddLine(geometry.NewPoint2(0, 0), geometry.NewPoint2(10, 0))
	if err != nil {
		t.Fatal(err)
	}

	engine := NewEngine(store, Options{})
	engine.Begin(geometry.NewPoint2(10, 100))

	// Nearly vertical travel, but the cursor is within snap radius of
	// the line's end point. Coincident must win.
	end := engine.Tick(geometry.NewPoint2(10.5, 2), false)
	if !end.Approx(geometry.NewPoint2(10, 0), 1e-9) {
		t.Errorf("expected snap to (10,0), got %v", end)
	}
	hint := engine.Hint()
	if hint == nil || hint.Kind != HintCoincident || hint.Target != line.ID {
		t.Errorf("expected coincident hint on line %d, got %v", line.ID, hint)
	}
}

func TestEngineParallelSnap(t *testing.T) {
	store := sketch.NewStore()
	diag, err := store.AddLine(geometry.NewPoint2(0, 0), geometry.NewPoint2(10, 10))
	if err != nil {
		t.Fatal(err)
	}

	engine := NewEngine(store, Options{})
	start := engine.Begin(geometry.NewPoint2(100, 0))

	// 1.4 degrees off the diagonal's 45 degrees.
	cursor := geometry.NewPoint2(110, 10.5)
	end := engine.Tick(cursor, false)

	hint := engine.Hint()
	if hint == nil || hint.Kind != HintParallel || hint.Target != diag.ID {
		t.Fatalf("expected parallel hint on line %d, got %v", diag.ID, hint)
	}
	d := end.Sub(start)
	if math.Abs(d.X-d.Y) > 1e-9 {
		t.Errorf("snapped direction should be 45 degrees, got %v", d)
	}
	if math.Abs(d.Length()-cursor.Sub(start).Length()) > 1e-9 {
		t.Errorf("snapping must preserve the travel length")
	}
}

func TestEnginePerpendicularSnap(t *testing.T) {
	store := sketch.NewStore()
	diag, err := store.AddLine(geometry.NewPoint2(0, 0), geometry.NewPoint2(10, 10))
	if err != nil {
		t.Fatal(err)
	}

	engine := NewEngine(store, Options{})
	start := engine.Begin(geometry.NewPoint2(100, 0))

	end := engine.Tick(geometry.NewPoint2(90, 10.5), false)

	hint := engine.Hint()
	if hint == nil || hint.Kind != HintPerpendicular || hint.Target != diag.ID {
		t.Fatalf("expected perpendicular hint on line %d, got %v", diag.ID, hint)
	}
	d := end.Sub(start)
	if math.Abs(d.X+d.Y) > 1e-9 {
		t.Errorf("snapped direction should be 135 degrees, got %v", d)
	}
}

func TestEngineAxisBeatsParallel(t *testing.T) {
	// A horizontal reference line makes horizontal travel eligible for
	// both hints; the axis hint must win and no parallel hint appears.
	store := sketch.NewStore()
	if _, err := store.AddLine(geometry.NewPoint2(0, 0), geometry.NewPoint2(10, 0)); err != nil {
		t.Fatal(err)
	}

	engine := NewEngine(store, Options{})
	engine.Begin(geometry.NewPoint2(0, 100))
	engine.Tick(geometry.NewPoint2(50, 101), false)

	hint := engine.Hint()
	if hint == nil || hint.Kind != HintHorizontal {
		t.Errorf("expected horizontal hint, got %v", hint)
	}
}

func TestEngineSuppression(t *testing.T) {
	engine := NewEngine(sketch.NewStore(), Options{})
	engine.Begin(geometry.NewPoint2(0, 0))

	cursor := geometry.NewPoint2(50, 1)
	end := engine.Tick(cursor, true)
	if !end.Approx(cursor, 1e-9) {
		t.Errorf("suppressed tick must pass the cursor through, got %v", end)
	}
	if engine.Hint() != nil {
		t.Errorf("suppressed tick must not produce a hint, got %v", engine.Hint())
	}

	// Suppression is per tick: the next unsuppressed tick infers again.
	engine.Tick(cursor, false)
	if hint := engine.Hint(); hint == nil || hint.Kind != HintHorizontal {
		t.Errorf("expected horizontal hint after suppression ends, got %v", hint)
	}
}

func TestEngineHintReplacedEachTick(t *testing.T) {
	engine := NewEngine(sketch.NewStore(), Options{})
	engine.Begin(geometry.NewPoint2(0, 0))

	engine.Tick(geometry.NewPoint2(1, 50), false)
	if hint := engine.Hint(); hint == nil || hint.Kind != HintVertical {
		t.Fatalf("expected vertical hint, got %v", hint)
	}

	// Move to a direction with no match: the stale hint must clear.
	engine.Tick(geometry.NewPoint2(30, 30), false)
	if engine.Hint() != nil {
		t.Errorf("expected no hint at 45 degrees, got %v", engine.Hint())
	}
}

func TestEngineCommit(t *testing.T) {
	store := sketch.NewStore()
	engine := NewEngine(store, Options{})
	engine.Begin(geometry.NewPoint2(0, 0))
	engine.Tick(geometry.NewPoint2(50, 1), false)

	line, constraints, err := engine.Commit()
	if err != nil {
		t.Fatal(err)
	}
	if !line.End.Approx(geometry.NewPoint2(50, 0), 1e-9) {
		t.Errorf("committed line should use the clamped endpoint, got %v", line.End)
	}
	if len(constraints) != 1 || constraints[0].Kind != HintHorizontal {
		t.Fatalf("expected one horizontal constraint, got %v", constraints)
	}
	if len(constraints[0].Entities) != 1 || constraints[0].Entities[0] != line.ID {
		t.Errorf("constraint should reference the committed line, got %v", constraints[0].Entities)
	}
	if engine.State() != StateCommitted {
		t.Errorf("commit should end the gesture, state %v", engine.State())
	}
	if _, ok := store.Get(line.ID); !ok {
		t.Errorf("committed line missing from store")
	}
}

func TestEngineCommitCoincidentTargets(t *testing.T) {
	store := sketch.NewStore()
	ref, err := store.AddLine(geometry.NewPoint2(0, 0), geometry.NewPoint2(10, 0))
	if err != nil {
		t.Fatal(err)
	}

	engine := NewEngine(store, Options{})
	engine.Begin(geometry.NewPoint2(10, 100))
	engine.Tick(geometry.NewPoint2(10.5, 2), false)

	line, constraints, err := engine.Commit()
	if err != nil {
		t.Fatal(err)
	}
	if len(constraints) != 1 || constraints[0].Kind != HintCoincident {
		t.Fatalf("expected one coincident constraint, got %v", constraints)
	}
	want := []sketch.ID{line.ID, ref.ID}
	got := constraints[0].Entities
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("expected entities %v, got %v", want, got)
	}
}

func TestEngineCancel(t *testing.T) {
	store := sketch.NewStore()
	engine := NewEngine(store, Options{})
	engine.Begin(geometry.NewPoint2(0, 0))
	engine.Tick(geometry.NewPoint2(50, 1), false)
	engine.Cancel()

	if engine.State() != StateCancelled {
		t.Errorf("cancel should be terminal, state %v", engine.State())
	}
	if store.Len() != 0 {
		t.Errorf("cancel must not create entities, store has %d", store.Len())
	}
	if _, _, err := engine.Commit(); !errors.Is(err, ErrNotDrawing) {
		t.Errorf("commit after cancel should fail, got %v", err)
	}
}

func TestEngineZeroLengthCommit(t *testing.T) {
	engine := NewEngine(sketch.NewStore(), Options{})
	engine.Begin(geometry.NewPoint2(5, 5))

	if _, _, err := engine.Commit(); err == nil {
		t.Error("expected error committing a zero-length line")
	}
	if engine.State() == StateDrawing {
		t.Errorf("failed commit should still end the gesture")
	}
}
