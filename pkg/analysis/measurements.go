package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/sketch"
)

// CurveInfo describes one curve of the sketch
type CurveInfo struct {
	Entity sketch.ID
	Kind   sketch.Kind
	Length float64
}

// Bounds is a 2D axis-aligned bounding box in plane-local coordinates
type Bounds struct {
	Min geometry.Point2
	Max geometry.Point2
}

// Size returns the extents of the bounds
func (b Bounds) Size() geometry.Point2 {
	return b.Max.Sub(b.Min)
}

func (b *Bounds) extend(p geometry.Point2) {
	b.Min = geometry.NewPoint2(math.Min(b.Min.X, p.X), math.Min(b.Min.Y, p.Y))
	b.Max = geometry.NewPoint2(math.Max(b.Max.X, p.X), math.Max(b.Max.Y, p.Y))
}

// MeasurementResult contains aggregate measurements of a sketch
type MeasurementResult struct {
	Bounds         Bounds
	EntityCount    int
	PointCount     int
	LineCount      int
	CircleCount    int
	ArcCount       int
	TotalLength    float64
	MinCurveLength float64
	MaxCurveLength float64
	AllCurves      []CurveInfo
}

// AnalyzeSketch computes counts, bounds and curve lengths for a sketch
func AnalyzeSketch(store *sketch.Store) *MeasurementResult {
	result := &MeasurementResult{
		EntityCount: store.Len(),
		AllCurves:   make([]CurveInfo, 0),
	}

	bounds := Bounds{
		Min: geometry.NewPoint2(math.MaxFloat64, math.MaxFloat64),
		Max: geometry.NewPoint2(-math.MaxFloat64, -math.MaxFloat64),
	}
	minLength := math.MaxFloat64
	maxLength := 0.0

	for _, entity := range store.Entities() {
		var length float64
		switch e := entity.(type) {
		case sketch.Point:
			result.PointCount++
			bounds.extend(e.Position)
			continue
		case sketch.Line:
			result.LineCount++
			length = e.Segment().Length()
			bounds.extend(e.Start)
			bounds.extend(e.End)
		case sketch.Circle:
			result.CircleCount++
			length = 2 * math.Pi * e.Radius
			bounds.extend(e.Center.Add(geometry.NewPoint2(e.Radius, e.Radius)))
			bounds.extend(e.Center.Sub(geometry.NewPoint2(e.Radius, e.Radius)))
		case sketch.Arc:
			result.ArcCount++
			length = arcLength(e)
			// Conservative: the arc's full circle bounds it.
			bounds.extend(e.Center.Add(geometry.NewPoint2(e.Radius, e.Radius)))
			bounds.extend(e.Center.Sub(geometry.NewPoint2(e.Radius, e.Radius)))
		}

		result.AllCurves = append(result.AllCurves, CurveInfo{
			Entity: entity.EntityID(),
			Kind:   entity.EntityKind(),
			Length: length,
		})
		result.TotalLength += length
		if length < minLength {
			minLength = length
		}
		if length > maxLength {
			maxLength = length
		}
	}

	if len(result.AllCurves) > 0 {
		result.MinCurveLength = minLength
		result.MaxCurveLength = maxLength
	}
	if result.EntityCount > 0 {
		result.Bounds = bounds
	}
	return result
}

func arcLength(a sketch.Arc) float64 {
	sweep := a.EndAngle - a.StartAngle
	for sweep < 0 {
		sweep += 2 * math.Pi
	}
	return a.Radius * sweep
}

// FindLongestCurves returns the n longest curves of the sketch
func FindLongestCurves(result *MeasurementResult, n int) []CurveInfo {
	curves := make([]CurveInfo, len(result.AllCurves))
	copy(curves, result.AllCurves)

	sort.Slice(curves, func(i, j int) bool {
		return curves[i].Length > curves[j].Length
	})

	if n > len(curves) {
		n = len(curves)
	}
	return curves[:n]
}

// FormatMeasurement formats a measurement with units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.3f %s", value, unit)
}

// FormatPoint formats a plane-local point
func FormatPoint(p geometry.Point2) string {
	return fmt.Sprintf("(%.3f, %.3f)", p.X, p.Y)
}
