package analysis

import (
	"math"
	"testing"

	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/sketch"
)

func buildSketch(t *testing.T) *sketch.Store {
	t.Helper()
	store := sketch.NewStore()
	if _, err := store.AddLine(geometry.NewPoint2(0, 0), geometry.NewPoint2(30, 0)); err != nil {
		t.Fatal(err)
	}
	if _, err := store.AddLine(geometry.NewPoint2(0, 0), geometry.NewPoint2(0, 10)); err != nil {
		t.Fatal(err)
	}
	if _, err := store.AddCircle(geometry.NewPoint2(10, 5), 2); err != nil {
		t.Fatal(err)
	}
	store.AddPoint(geometry.NewPoint2(-5, -5))
	return store
}

func TestAnalyzeSketch(t *testing.T) {
	result := AnalyzeSketch(buildSketch(t))

	if result.EntityCount != 4 {
		t.Errorf("EntityCount = %d, want 4", result.EntityCount)
	}
	if result.LineCount != 2 || result.CircleCount != 1 || result.PointCount != 1 {
		t.Errorf("counts = %d lines %d circles %d points",
			result.LineCount, result.CircleCount, result.PointCount)
	}

	wantTotal := 30 + 10 + 2*math.Pi*2
	if math.Abs(result.TotalLength-wantTotal) > 1e-9 {
		t.Errorf("TotalLength = %v, want %v", result.TotalLength, wantTotal)
	}
	if math.Abs(result.MinCurveLength-10) > 1e-9 {
		t.Errorf("MinCurveLength = %v, want 10", result.MinCurveLength)
	}
	if math.Abs(result.MaxCurveLength-30) > 1e-9 {
		t.Errorf("MaxCurveLength = %v, want 30", result.MaxCurveLength)
	}

	if !result.Bounds.Min.Approx(geometry.NewPoint2(-5, -5), 1e-9) {
		t.Errorf("Bounds.Min = %v", result.Bounds.Min)
	}
	if !result.Bounds.Max.Approx(geometry.NewPoint2(30, 10), 1e-9) {
		t.Errorf("Bounds.Max = %v", result.Bounds.Max)
	}
}

func TestAnalyzeArcLength(t *testing.T) {
	store := sketch.NewStore()
	if _, err := store.AddArc(geometry.NewPoint2(0, 0), 10, 0, math.Pi); err != nil {
		t.Fatal(err)
	}

	result := AnalyzeSketch(store)
	if math.Abs(result.TotalLength-10*math.Pi) > 1e-9 {
		t.Errorf("half circle length = %v, want %v", result.TotalLength, 10*math.Pi)
	}
}

func TestFindLongestCurves(t *testing.T) {
	result := AnalyzeSketch(buildSketch(t))

	longest := FindLongestCurves(result, 2)
	if len(longest) != 2 {
		t.Fatalf("expected 2 curves, got %d", len(longest))
	}
	if math.Abs(longest[0].Length-30) > 1e-9 {
		t.Errorf("longest = %v, want 30", longest[0].Length)
	}
	if longest[0].Kind != sketch.KindLine {
		t.Errorf("longest kind = %v, want line", longest[0].Kind)
	}
}

func TestAnalyzeEmptySketch(t *testing.T) {
	result := AnalyzeSketch(sketch.NewStore())
	if result.EntityCount != 0 || result.TotalLength != 0 {
		t.Errorf("empty sketch should be all zero, got %+v", result)
	}
}
