package app

import (
	"errors"
	"log/slog"

	"github.com/philipparndt/gosketch/pkg/constraint"
	"github.com/philipparndt/gosketch/pkg/dimension"
	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/sketch"
	"github.com/philipparndt/gosketch/pkg/viewer"
)

// Sink receives the user-visible results of controller actions. The
// GUI renders them; tests record them.
type Sink interface {
	HintChanged(hint *constraint.Hint)
	LinePreview(line geometry.Segment)
	LineCommitted(line sketch.Line, constraints []constraint.Constraint)
	DimensionCreated(proposal dimension.Proposal)
	MeasurementShown(m dimension.Measurement)
	SelectionChanged(items []sketch.SelectionItem)
}

// Config tunes a controller. Zero values fall back to defaults.
type Config struct {
	// PickRadius is the selection distance in sketch units.
	PickRadius float64
	// Constraint tunes the line tool's inference engine.
	Constraint constraint.Options
	Logger     *slog.Logger
	Sink       Sink
}

// Controller translates pointer and key events into sketch commands.
// It owns all tool state; the store only ever receives committed
// geometry. Pointer positions arrive in normalized device coordinates
// and are projected onto the sketch plane here, so the tools
// themselves work purely in plane-local coordinates.
type Controller struct {
	store  *sketch.Store
	plane  sketch.Plane
	camera *viewer.Camera

	tool       Tool
	pickRadius float64

	pointer   PointerState
	line      LineToolState
	dimension DimensionToolState
	measure   MeasureToolState

	logger *slog.Logger
	sink   Sink
}

// NewController creates a controller over a store and a sketch plane
func NewController(store *sketch.Store, plane sketch.Plane, camera *viewer.Camera, cfg Config) *Controller {
	if cfg.PickRadius <= 0 {
		cfg.PickRadius = 8
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Sink == nil {
		cfg.Sink = nopSink{}
	}
	return &Controller{
		store:      store,
		plane:      plane,
		camera:     camera,
		pickRadius: cfg.PickRadius,
		line: LineToolState{
			engine: constraint.NewEngine(store, cfg.Constraint),
		},
		dimension: DimensionToolState{
			resolver: dimension.NewResolver(),
		},
		measure: MeasureToolState{
			session: dimension.NewSession(store),
		},
		logger: cfg.Logger,
		sink:   cfg.Sink,
	}
}

// Tool returns the active tool
func (c *Controller) Tool() Tool {
	return c.tool
}

// SetTool switches the active tool. Any gesture or partial selection
// of the previous tool is discarded.
func (c *Controller) SetTool(tool Tool) {
	if tool == c.tool {
		return
	}
	c.resetToolState()
	c.tool = tool
	c.logger.Debug("tool changed", "tool", tool.String())
}

// PointerMoved handles a pointer move in normalized device
// coordinates. With suppress set the line tool skips constraint
// inference for this sample.
func (c *Controller) PointerMoved(ndc geometry.Point2, suppress bool) {
	local, ok := c.project(ndc)
	if !ok {
		return
	}

	switch c.tool {
	case ToolLine:
		if c.line.engine.State() != constraint.StateDrawing {
			return
		}
		end := c.line.engine.Tick(local, suppress)
		c.line.preview = geometry.Segment{Start: c.line.previewStart(), End: end}
		c.line.previewOK = true
		c.sink.HintChanged(c.line.engine.Hint())
		c.sink.LinePreview(c.line.preview)
	case ToolMeasure:
		if len(c.measure.session.Selection()) != 2 {
			return
		}
		m, err := c.measure.session.MeasureAt(local)
		if err != nil {
			return
		}
		c.measure.last = &m
		c.sink.MeasurementShown(m)
	}
}

// PointerUp handles a click in normalized device coordinates
func (c *Controller) PointerUp(ndc geometry.Point2) {
	local, ok := c.project(ndc)
	if !ok {
		return
	}

	switch c.tool {
	case ToolSelect:
		if item, ok := c.pick(local); ok {
			c.sink.SelectionChanged([]sketch.SelectionItem{item})
		} else {
			c.sink.SelectionChanged(nil)
		}
	case ToolLine:
		c.lineClick(local)
	case ToolDimension:
		c.dimensionClick(local)
	case ToolMeasure:
		c.measureClick(local)
	}
}

// KeyEscape cancels the current gesture or selection of the active
// tool without switching tools.
func (c *Controller) KeyEscape() {
	c.resetToolState()
	c.logger.Debug("gesture cancelled", "tool", c.tool.String())
}

// DimensionSelection returns the dimension tool's current picks
func (c *Controller) DimensionSelection() []sketch.SelectionItem {
	return c.dimension.items
}

// Dimensions returns the dimensions created so far
func (c *Controller) Dimensions() []dimension.Proposal {
	return c.dimension.created
}

// LastMeasurement returns the most recent measurement, or nil
func (c *Controller) LastMeasurement() *dimension.Measurement {
	return c.measure.last
}

func (c *Controller) lineClick(local geometry.Point2) {
	if c.line.engine.State() != constraint.StateDrawing {
		start := c.line.engine.Begin(local)
		c.line.preview = geometry.Segment{Start: start, End: start}
		c.line.previewOK = true
		return
	}

	// Re-run inference at the click position so a click without a
	// preceding move still commits the right endpoint.
	c.line.engine.Tick(local, false)
	line, constraints, err := c.line.engine.Commit()
	c.line.previewOK = false
	c.sink.HintChanged(nil)
	if err != nil {
		c.logger.Warn("line commit failed", "error", err)
		return
	}
	c.logger.Info("line committed", "id", int(line.ID), "constraints", len(constraints))
	c.sink.LineCommitted(line, constraints)
}

func (c *Controller) dimensionClick(local geometry.Point2) {
	if len(c.dimension.items) < 2 {
		item, ok := c.pick(local)
		if !ok {
			return
		}
		c.dimension.items = append(c.dimension.items, item)
		c.sink.SelectionChanged(c.dimension.items)
		return
	}

	// Selection is complete, this click places the dimension.
	pair, err := dimension.Classify(c.store, c.dimension.items)
	if err == nil {
		var proposal dimension.Proposal
		proposal, err = c.dimension.resolver.Resolve(pair, local)
		if err == nil {
			c.dimension.created = append(c.dimension.created, proposal)
			c.logger.Info("dimension created",
				"kind", proposal.Kind.String(), "value", proposal.Value)
			c.sink.DimensionCreated(proposal)
		}
	}
	if err != nil {
		c.logger.Warn("dimension rejected", "error", err)
	}
	c.dimension.items = nil
	c.sink.SelectionChanged(nil)
}

func (c *Controller) measureClick(local geometry.Point2) {
	if item, ok := c.pick(local); ok {
		c.measure.session.Select(item)
		c.sink.SelectionChanged(c.measure.session.Selection())
		return
	}
	if len(c.measure.session.Selection()) != 2 {
		return
	}
	m, err := c.measure.session.MeasureAt(local)
	if err != nil {
		c.logger.Warn("measurement rejected", "error", err)
		return
	}
	c.measure.last = &m
	c.sink.MeasurementShown(m)
}

// pick resolves a plane-local position to a selection item. Points
// win over edges so endpoints stay pickable on top of their own line.
func (c *Controller) pick(local geometry.Point2) (sketch.SelectionItem, bool) {
	if snap, ok := c.store.NearestPointWithin(local, c.pickRadius); ok {
		return sketch.SelectionItem{Entity: snap.Entity, Role: snap.Role}, true
	}
	return c.store.NearestEdgeWithin(local, c.pickRadius)
}

// project maps NDC to plane-local coordinates. A ray parallel to the
// plane is a miss, not an error: the sample is dropped and the last
// on-plane position stays current.
func (c *Controller) project(ndc geometry.Point2) (geometry.Point2, bool) {
	local, err := viewer.ProjectToPlane(ndc, c.camera, c.plane)
	if err != nil {
		if !errors.Is(err, viewer.ErrRayParallel) {
			c.logger.Warn("pointer projection failed", "error", err)
		}
		c.pointer.onPlane = false
		return geometry.Point2{}, false
	}
	c.pointer.ndc = ndc
	c.pointer.local = local
	c.pointer.onPlane = true
	return local, true
}

func (c *Controller) resetToolState() {
	c.line.engine.Cancel()
	c.line.previewOK = false
	c.dimension.items = nil
	c.measure.session.Reset()
	c.measure.last = nil
	c.sink.HintChanged(nil)
	c.sink.SelectionChanged(nil)
}

// previewStart returns the anchored start of the live preview
func (s *LineToolState) previewStart() geometry.Point2 {
	return s.preview.Start
}

type nopSink struct{}

func (nopSink) HintChanged(*constraint.Hint)                          {}
func (nopSink) LinePreview(geometry.Segment)                          {}
func (nopSink) LineCommitted(sketch.Line, []constraint.Constraint)    {}
func (nopSink) DimensionCreated(dimension.Proposal)                   {}
func (nopSink) MeasurementShown(dimension.Measurement)                {}
func (nopSink) SelectionChanged([]sketch.SelectionItem)               {}
