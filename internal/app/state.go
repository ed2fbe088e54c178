package app

import (
	"github.com/philipparndt/gosketch/pkg/constraint"
	"github.com/philipparndt/gosketch/pkg/dimension"
	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/sketch"
)

// Tool identifies the active interaction tool
type Tool int

const (
	ToolSelect Tool = iota
	ToolLine
	ToolDimension
	ToolMeasure
)

// String returns the lowercase name of the tool
func (t Tool) String() string {
	switch t {
	case ToolSelect:
		return "select"
	case ToolLine:
		return "line"
	case ToolDimension:
		return "dimension"
	case ToolMeasure:
		return "measure"
	}
	return "unknown"
}

// PointerState holds the last pointer sample
type PointerState struct {
	ndc     geometry.Point2 // last normalized device coordinates
	local   geometry.Point2 // last plane-local position
	onPlane bool            // false while the ray misses the plane
}

// LineToolState holds the line drawing gesture
type LineToolState struct {
	engine    *constraint.Engine
	preview   geometry.Segment // current rubber-band line
	previewOK bool
}

// DimensionToolState holds the dimension selection and its output.
// The selection lives here, not in the store: switching tools discards
// it without touching sketch data.
type DimensionToolState struct {
	resolver *dimension.Resolver
	items    []sketch.SelectionItem
	created  []dimension.Proposal
}

// MeasureToolState holds the measurement session
type MeasureToolState struct {
	session *dimension.Session
	last    *dimension.Measurement
}
