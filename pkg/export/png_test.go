package export

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/gosketch/pkg/dimension"
	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/sketch"
)

func TestRenderPNG(t *testing.T) {
	store := sketch.NewStore()
	line, err := store.AddLine(geometry.NewPoint2(0, 0), geometry.NewPoint2(40, 0))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.AddCircle(geometry.NewPoint2(20, 10), 5); err != nil {
		t.Fatal(err)
	}

	dims := []dimension.Proposal{{
		Kind:      dimension.Distance,
		Subjects:  [2]sketch.ID{line.ID},
		Value:     40,
		Anchor:    geometry.NewPoint2(20, 0),
		Placement: geometry.NewPoint2(20, -8),
	}}

	path := filepath.Join(t.TempDir(), "sketch.png")
	if err := RenderPNG(store, dims, path, Options{Width: 320, Height: 240}); err != nil {
		t.Fatalf("RenderPNG failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("output is not a valid PNG: %v", err)
	}
	if cfg.Width != 320 || cfg.Height != 240 {
		t.Errorf("image is %dx%d, want 320x240", cfg.Width, cfg.Height)
	}
}

func TestRenderPNGEmptySketch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.png")
	if err := RenderPNG(sketch.NewStore(), nil, path, Options{}); err == nil {
		t.Fatal("expected error for an empty sketch")
	}
}
