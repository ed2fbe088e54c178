package app

import (
	"math"
	"testing"

	"github.com/philipparndt/gosketch/pkg/constraint"
	"github.com/philipparndt/gosketch/pkg/dimension"
	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/sketch"
	"github.com/philipparndt/gosketch/pkg/viewer"
)

// recordSink captures every sink callback for assertions
type recordSink struct {
	hints        []*constraint.Hint
	previews     []geometry.Segment
	lines        []sketch.Line
	constraints  [][]constraint.Constraint
	dimensions   []dimension.Proposal
	measurements []dimension.Measurement
	selections   [][]sketch.SelectionItem
}

func (r *recordSink) HintChanged(h *constraint.Hint) { r.hints = append(r.hints, h) }
func (r *recordSink) LinePreview(s geometry.Segment) { r.previews = append(r.previews, s) }
func (r *recordSink) LineCommitted(l sketch.Line, cs []constraint.Constraint) {
	r.lines = append(r.lines, l)
	r.constraints = append(r.constraints, cs)
}
func (r *recordSink) DimensionCreated(p dimension.Proposal)  { r.dimensions = append(r.dimensions, p) }
func (r *recordSink) MeasurementShown(m dimension.Measurement) {
	r.measurements = append(r.measurements, m)
}
func (r *recordSink) SelectionChanged(items []sketch.SelectionItem) {
	r.selections = append(r.selections, items)
}

type fixture struct {
	store      *sketch.Store
	plane      sketch.Plane
	camera     *viewer.Camera
	sink       *recordSink
	controller *Controller
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		store:  sketch.NewStore(),
		plane:  sketch.XYPlane(),
		camera: viewer.NewCamera(300),
		sink:   &recordSink{},
	}
	f.controller = NewController(f.store, f.plane, f.camera, Config{Sink: f.sink})
	return f
}

// ndcAt maps a plane-local point through the camera, so tests drive
// the controller with realistic pointer coordinates.
func (f *fixture) ndcAt(t *testing.T, local geometry.Point2) geometry.Point2 {
	t.Helper()
	ndc, ok := f.camera.ProjectToNDC(f.plane.ToWorld(local))
	if !ok {
		t.Fatalf("point %v not projectable", local)
	}
	return ndc
}

func (f *fixture) click(t *testing.T, local geometry.Point2) {
	t.Helper()
	f.controller.PointerUp(f.ndcAt(t, local))
}

func (f *fixture) move(t *testing.T, local geometry.Point2, suppress bool) {
	t.Helper()
	f.controller.PointerMoved(f.ndcAt(t, local), suppress)
}

func TestControllerLineTool(t *testing.T) {
	f := newFixture(t)
	f.controller.SetTool(ToolLine)

	f.click(t, geometry.NewPoint2(0, 0))
	f.move(t, geometry.NewPoint2(50, 1), false)

	if len(f.sink.hints) == 0 || f.sink.hints[len(f.sink.hints)-1] == nil {
		t.Fatal("expected a live hint while drawing")
	}
	if got := f.sink.hints[len(f.sink.hints)-1].Kind; got != constraint.HintHorizontal {
		t.Errorf("expected horizontal hint, got %v", got)
	}

	f.click(t, geometry.NewPoint2(50, 1))
	if len(f.sink.lines) != 1 {
		t.Fatal("expected one committed line")
	}
	line := f.sink.lines[0]
	if math.Abs(line.End.Y) > 1e-6 {
		t.Errorf("expected clamped horizontal line, end %v", line.End)
	}
	if len(f.sink.constraints[0]) != 1 || f.sink.constraints[0][0].Kind != constraint.HintHorizontal {
		t.Errorf("expected horizontal constraint, got %v", f.sink.constraints[0])
	}
	if f.store.Len() != 1 {
		t.Errorf("store should hold the committed line, has %d entities", f.store.Len())
	}
}

func TestControllerLineSuppression(t *testing.T) {
	f := newFixture(t)
	f.controller.SetTool(ToolLine)

	f.click(t, geometry.NewPoint2(0, 0))
	f.move(t, geometry.NewPoint2(50, 1), true)

	if h := f.sink.hints[len(f.sink.hints)-1]; h != nil {
		t.Errorf("suppressed move must not hint, got %v", h)
	}
	preview := f.sink.previews[len(f.sink.previews)-1]
	if math.Abs(preview.End.Y-1) > 1e-6 {
		t.Errorf("suppressed preview should follow the cursor, got %v", preview.End)
	}
}

func TestControllerDimensionFlow(t *testing.T) {
	f := newFixture(t)
	if _, err := f.store.AddLine(geometry.NewPoint2(-50, 0), geometry.NewPoint2(0, 0)); err != nil {
		t.Fatal(err)
	}
	if _, err := f.store.AddLine(geometry.NewPoint2(0, -50), geometry.NewPoint2(0, 0)); err != nil {
		t.Fatal(err)
	}
	f.controller.SetTool(ToolDimension)

	f.click(t, geometry.NewPoint2(-50, 0))
	f.click(t, geometry.NewPoint2(0, -50))
	if got := len(f.controller.DimensionSelection()); got != 2 {
		t.Fatalf("expected 2 picked items, got %d", got)
	}

	// Third click misses all geometry: it places the dimension.
	f.click(t, geometry.NewPoint2(-30, -30))
	if len(f.sink.dimensions) != 1 {
		t.Fatal("expected one created dimension")
	}
	d := f.sink.dimensions[0]
	if d.Kind != dimension.Distance || math.Abs(d.Value-70.71) > 0.01 {
		t.Errorf("expected Distance ~70.71, got %v %v", d.Kind, d.Value)
	}
	if len(f.controller.DimensionSelection()) != 0 {
		t.Error("selection should clear after placement")
	}
}

func TestControllerDimensionRejectionClearsSelection(t *testing.T) {
	f := newFixture(t)
	if _, err := f.store.AddLine(geometry.NewPoint2(0, 0), geometry.NewPoint2(40, 0)); err != nil {
		t.Fatal(err)
	}
	f.controller.SetTool(ToolDimension)

	// The line's own midpoint against its edge is a zero distance.
	f.click(t, geometry.NewPoint2(20, 0))
	f.click(t, geometry.NewPoint2(30, 0.5))
	if got := len(f.controller.DimensionSelection()); got != 2 {
		t.Fatalf("expected 2 picked items, got %d", got)
	}

	f.click(t, geometry.NewPoint2(20, 60))
	if len(f.sink.dimensions) != 0 {
		t.Errorf("degenerate dimension must not be created, got %v", f.sink.dimensions)
	}
	if len(f.controller.DimensionSelection()) != 0 {
		t.Error("selection should clear after rejection")
	}
}

func TestControllerMeasureTool(t *testing.T) {
	f := newFixture(t)
	if _, err := f.store.AddLine(geometry.NewPoint2(0, 0), geometry.NewPoint2(0, 40)); err != nil {
		t.Fatal(err)
	}
	f.controller.SetTool(ToolMeasure)

	f.click(t, geometry.NewPoint2(0, 0))
	f.click(t, geometry.NewPoint2(0, 40))
	f.move(t, geometry.NewPoint2(60, 20), false)

	if len(f.sink.measurements) == 0 {
		t.Fatal("expected a live measurement")
	}
	m := f.sink.measurements[len(f.sink.measurements)-1]
	if m.Kind != dimension.VerticalDistance || math.Abs(m.Value-40) > 1e-6 {
		t.Errorf("expected VerticalDistance 40, got %v %v", m.Kind, m.Value)
	}
	if f.store.Len() != 1 {
		t.Errorf("measuring must not create entities, store has %d", f.store.Len())
	}
}

func TestControllerEscapeCancelsGesture(t *testing.T) {
	f := newFixture(t)
	f.controller.SetTool(ToolLine)

	f.click(t, geometry.NewPoint2(0, 0))
	f.move(t, geometry.NewPoint2(30, 0), false)
	f.controller.KeyEscape()

	if f.store.Len() != 0 {
		t.Errorf("escape must not commit, store has %d entities", f.store.Len())
	}
	// The next click starts a new gesture instead of committing.
	f.click(t, geometry.NewPoint2(15, 15))
	f.click(t, geometry.NewPoint2(35, 15))
	if f.store.Len() != 1 {
		t.Errorf("expected a fresh gesture after escape, store has %d", f.store.Len())
	}
}

func TestControllerToolSwitchDiscardsSelection(t *testing.T) {
	f := newFixture(t)
	if _, err := f.store.AddLine(geometry.NewPoint2(0, 0), geometry.NewPoint2(40, 0)); err != nil {
		t.Fatal(err)
	}
	f.controller.SetTool(ToolDimension)
	f.click(t, geometry.NewPoint2(0, 0))

	f.controller.SetTool(ToolMeasure)
	f.controller.SetTool(ToolDimension)
	if len(f.controller.DimensionSelection()) != 0 {
		t.Error("tool switch should discard the partial selection")
	}
}

func TestControllerSelectTool(t *testing.T) {
	f := newFixture(t)
	line, err := f.store.AddLine(geometry.NewPoint2(0, 0), geometry.NewPoint2(40, 0))
	if err != nil {
		t.Fatal(err)
	}

	f.click(t, geometry.NewPoint2(40, 0))
	last := f.sink.selections[len(f.sink.selections)-1]
	if len(last) != 1 || last[0].Entity != line.ID || last[0].Role != sketch.RoleEndpointEnd {
		t.Errorf("expected end point pick, got %v", last)
	}

	f.click(t, geometry.NewPoint2(200, 200))
	if last := f.sink.selections[len(f.sink.selections)-1]; last != nil {
		t.Errorf("miss should clear the selection, got %v", last)
	}
}
