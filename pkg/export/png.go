package export

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/philipparndt/gosketch/pkg/analysis"
	"github.com/philipparndt/gosketch/pkg/dimension"
	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/sketch"
)

// Options tunes PNG rendering. Zero fields fall back to defaults.
type Options struct {
	Width  int
	Height int
	// Margin is the border around the sketch in pixels.
	Margin float64
	// FontSize for dimension labels in points.
	FontSize float64
}

// DefaultOptions returns the rendering defaults
func DefaultOptions() Options {
	return Options{
		Width:    1024,
		Height:   768,
		Margin:   40,
		FontSize: 14,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Height <= 0 {
		o.Height = d.Height
	}
	if o.Margin <= 0 {
		o.Margin = d.Margin
	}
	if o.FontSize <= 0 {
		o.FontSize = d.FontSize
	}
	return o
}

// renderer maps plane-local coordinates to image pixels with a
// uniform scale and a flipped y axis.
type renderer struct {
	dc     *gg.Context
	scale  float64
	offset geometry.Point2
	height float64
}

// RenderPNG renders a sketch and its dimensions to a PNG file
func RenderPNG(store *sketch.Store, dims []dimension.Proposal, filename string, opts Options) error {
	opts = opts.withDefaults()

	result := analysis.AnalyzeSketch(store)
	if result.EntityCount == 0 {
		return fmt.Errorf("nothing to render: sketch is empty")
	}

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return fmt.Errorf("failed to load font: %w", err)
	}
	dc.SetFont(source.Face(opts.FontSize))

	r := newRenderer(dc, result.Bounds, opts, dims)

	dc.SetRGB(0.1, 0.1, 0.1)
	dc.SetLineWidth(2)
	for _, entity := range store.Entities() {
		if err := r.drawEntity(entity); err != nil {
			return err
		}
	}

	dc.SetRGB(0.75, 0.3, 0.1)
	dc.SetLineWidth(1)
	for _, d := range dims {
		if err := r.drawDimension(d); err != nil {
			return err
		}
	}

	if err := dc.SavePNG(filename); err != nil {
		return fmt.Errorf("failed to write PNG: %w", err)
	}
	return nil
}

func newRenderer(dc *gg.Context, bounds analysis.Bounds, opts Options, dims []dimension.Proposal) *renderer {
	// Dimension placements count towards the fitted extents so labels
	// stay inside the image.
	for _, d := range dims {
		bounds = extendBounds(bounds, d.Placement)
	}

	size := bounds.Size()
	usableW := float64(opts.Width) - 2*opts.Margin
	usableH := float64(opts.Height) - 2*opts.Margin
	scale := math.Min(usableW/math.Max(size.X, 1e-9), usableH/math.Max(size.Y, 1e-9))

	// Center the sketch.
	offsetX := opts.Margin + (usableW-size.X*scale)/2 - bounds.Min.X*scale
	offsetY := opts.Margin + (usableH-size.Y*scale)/2 + bounds.Max.Y*scale

	return &renderer{
		dc:     dc,
		scale:  scale,
		offset: geometry.NewPoint2(offsetX, offsetY),
		height: float64(opts.Height),
	}
}

func extendBounds(b analysis.Bounds, p geometry.Point2) analysis.Bounds {
	b.Min = geometry.NewPoint2(math.Min(b.Min.X, p.X), math.Min(b.Min.Y, p.Y))
	b.Max = geometry.NewPoint2(math.Max(b.Max.X, p.X), math.Max(b.Max.Y, p.Y))
	return b
}

func (r *renderer) toPixel(p geometry.Point2) (float64, float64) {
	return r.offset.X + p.X*r.scale, r.offset.Y - p.Y*r.scale
}

func (r *renderer) drawEntity(entity sketch.Entity) error {
	switch e := entity.(type) {
	case sketch.Point:
		x, y := r.toPixel(e.Position)
		r.dc.DrawCircle(x, y, 3)
		return r.dc.Fill()
	case sketch.Line:
		x1, y1 := r.toPixel(e.Start)
		x2, y2 := r.toPixel(e.End)
		r.dc.DrawLine(x1, y1, x2, y2)
	case sketch.Circle:
		x, y := r.toPixel(e.Center)
		r.dc.DrawCircle(x, y, e.Radius*r.scale)
	case sketch.Arc:
		x, y := r.toPixel(e.Center)
		// Pixel space runs clockwise, so angles negate.
		r.dc.DrawArc(x, y, e.Radius*r.scale, -e.EndAngle, -e.StartAngle)
	}
	return r.dc.Stroke()
}

func (r *renderer) drawDimension(d dimension.Proposal) error {
	ax, ay := r.toPixel(d.Anchor)
	px, py := r.toPixel(d.Placement)

	r.dc.DrawLine(ax, ay, px, py)
	if err := r.dc.Stroke(); err != nil {
		return err
	}

	r.dc.DrawStringAnchored(label(d), px, py, 0.5, 0.5)
	return nil
}

func label(d dimension.Proposal) string {
	switch d.Kind {
	case dimension.Angle:
		return fmt.Sprintf("%.1f°", d.Value)
	case dimension.Radius:
		return fmt.Sprintf("R%.2f", d.Value)
	case dimension.Diameter:
		return fmt.Sprintf("⌀%.2f", d.Value)
	}
	return fmt.Sprintf("%.2f", d.Value)
}
