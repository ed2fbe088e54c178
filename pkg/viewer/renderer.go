package viewer

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/sketch"
)

// EventHandler receives pointer events in normalized device
// coordinates. The widget never interprets sketch semantics itself;
// it only translates screen positions and repaints.
type EventHandler interface {
	PointerMoved(ndc geometry.Point2, suppress bool)
	PointerUp(ndc geometry.Point2)
}

const arcChordSegments = 32

var (
	entityColor  = color.RGBA{220, 220, 220, 255}
	previewColor = color.RGBA{120, 180, 255, 255}
	hintColor    = color.RGBA{255, 200, 80, 255}
	markerColor  = color.RGBA{255, 80, 80, 255}
)

// SketchRenderer draws a sketch through a perspective camera and
// forwards pointer input to an event handler.
type SketchRenderer struct {
	widget.BaseWidget
	store   *sketch.Store
	plane   sketch.Plane
	camera  *Camera
	handler EventHandler

	lines       []*canvas.Line
	annotations []*canvas.Text
	markers     []*canvas.Circle
	hintLabel   *canvas.Text

	preview   geometry.Segment
	previewOK bool
	selected  []geometry.Point2
	suppress  bool

	width  float64
	height float64
}

// NewSketchRenderer creates a renderer over a store, plane and camera
func NewSketchRenderer(store *sketch.Store, plane sketch.Plane, camera *Camera, handler EventHandler) *SketchRenderer {
	r := &SketchRenderer{
		store:   store,
		plane:   plane,
		camera:  camera,
		handler: handler,
	}
	r.hintLabel = canvas.NewText("", hintColor)
	r.hintLabel.TextSize = 12
	r.ExtendBaseWidget(r)
	return r
}

// SetPreview sets the rubber-band line shown while drawing
func (r *SketchRenderer) SetPreview(line geometry.Segment, visible bool) {
	r.preview = line
	r.previewOK = visible
	r.Render(r.width, r.height)
}

// SetHintText sets the inference hint label, empty to hide
func (r *SketchRenderer) SetHintText(text string) {
	r.hintLabel.Text = text
	r.Refresh()
}

// SetSelected sets the highlighted pick positions
func (r *SketchRenderer) SetSelected(points []geometry.Point2) {
	r.selected = points
	r.Render(r.width, r.height)
}

// SetSuppress toggles constraint suppression for subsequent pointer
// moves. Wired to the modifier key by the window.
func (r *SketchRenderer) SetSuppress(suppress bool) {
	r.suppress = suppress
}

// Annotate places a text label at a plane-local position. Used for
// dimension values and measurements.
func (r *SketchRenderer) Annotate(text string, at geometry.Point2) {
	label := canvas.NewText(text, hintColor)
	label.TextSize = 12
	if sx, sy, ok := r.toScreen(at); ok {
		label.Move(fyne.NewPos(float32(sx), float32(sy)))
	}
	r.annotations = append(r.annotations, label)
	r.Refresh()
}

// ClearAnnotations removes all dimension and measurement labels
func (r *SketchRenderer) ClearAnnotations() {
	r.annotations = nil
	r.Refresh()
}

// CreateRenderer creates the fyne renderer for the widget
func (r *SketchRenderer) CreateRenderer() fyne.WidgetRenderer {
	return &sketchWidgetRenderer{renderer: r}
}

// Render projects the sketch into screen space and rebuilds the
// canvas objects.
func (r *SketchRenderer) Render(width, height float64) {
	r.width = width
	r.height = height

	r.lines = r.lines[:0]
	r.markers = r.markers[:0]

	for _, entity := range r.store.Entities() {
		switch e := entity.(type) {
		case sketch.Line:
			r.addLine(e.Start, e.End, entityColor, 1)
		case sketch.Circle:
			r.addArcChords(e.Center, e.Radius, 0, 2*math.Pi, entityColor)
		case sketch.Arc:
			r.addArcChords(e.Center, e.Radius, e.StartAngle, e.EndAngle, entityColor)
		case sketch.Point:
			r.addMarker(e.Position, entityColor)
		}
	}

	if r.previewOK {
		r.addLine(r.preview.Start, r.preview.End, previewColor, 2)
	}
	for _, p := range r.selected {
		r.addMarker(p, markerColor)
	}

	r.Refresh()
}

func (r *SketchRenderer) addLine(start, end geometry.Point2, col color.Color, strokeWidth float32) {
	x1, y1, ok1 := r.toScreen(start)
	x2, y2, ok2 := r.toScreen(end)
	if !ok1 || !ok2 {
		return
	}
	line := canvas.NewLine(col)
	line.StrokeWidth = strokeWidth
	line.Position1 = fyne.NewPos(float32(x1), float32(y1))
	line.Position2 = fyne.NewPos(float32(x2), float32(y2))
	r.lines = append(r.lines, line)
}

func (r *SketchRenderer) addArcChords(center geometry.Point2, radius, startAngle, endAngle float64, col color.Color) {
	sweep := endAngle - startAngle
	for sweep < 0 {
		sweep += 2 * math.Pi
	}
	prev := arcPoint(center, radius, startAngle)
	for i := 1; i <= arcChordSegments; i++ {
		next := arcPoint(center, radius, startAngle+sweep*float64(i)/arcChordSegments)
		r.addLine(prev, next, col, 1)
		prev = next
	}
}

func arcPoint(center geometry.Point2, radius, angle float64) geometry.Point2 {
	return center.Add(geometry.NewPoint2(math.Cos(angle), math.Sin(angle)).Mul(radius))
}

func (r *SketchRenderer) addMarker(p geometry.Point2, col color.Color) {
	x, y, ok := r.toScreen(p)
	if !ok {
		return
	}
	marker := canvas.NewCircle(col)
	size := float32(8)
	marker.Resize(fyne.NewSize(size, size))
	marker.Move(fyne.NewPos(float32(x)-size/2, float32(y)-size/2))
	r.markers = append(r.markers, marker)
}

// toScreen maps a plane-local point to widget pixels
func (r *SketchRenderer) toScreen(local geometry.Point2) (float64, float64, bool) {
	ndc, ok := r.camera.ProjectToNDC(r.plane.ToWorld(local))
	if !ok {
		return 0, 0, false
	}
	x := (ndc.X + 1) / 2 * r.width
	y := (1 - ndc.Y) / 2 * r.height
	return x, y, true
}

// toNDC maps widget pixels to normalized device coordinates
func (r *SketchRenderer) toNDC(pos fyne.Position) geometry.Point2 {
	return geometry.NewPoint2(
		2*float64(pos.X)/r.width-1,
		1-2*float64(pos.Y)/r.height,
	)
}

// Tapped forwards a click to the handler
func (r *SketchRenderer) Tapped(event *fyne.PointEvent) {
	if r.handler == nil || r.width == 0 || r.height == 0 {
		return
	}
	r.handler.PointerUp(r.toNDC(event.Position))
	r.Render(r.width, r.height)
}

// MouseMoved forwards hover movement to the handler
func (r *SketchRenderer) MouseMoved(event *desktop.MouseEvent) {
	if r.handler == nil || r.width == 0 || r.height == 0 {
		return
	}
	r.handler.PointerMoved(r.toNDC(event.Position), r.suppress)
}

// MouseIn implements desktop.Hoverable
func (r *SketchRenderer) MouseIn(event *desktop.MouseEvent) {}

// MouseOut implements desktop.Hoverable
func (r *SketchRenderer) MouseOut() {}

// Scrolled zooms the camera
func (r *SketchRenderer) Scrolled(event *fyne.ScrollEvent) {
	r.camera.Zoom(float64(event.Scrolled.DY) * 0.001)
	r.Render(r.width, r.height)
}

// sketchWidgetRenderer implements fyne.WidgetRenderer
type sketchWidgetRenderer struct {
	renderer *SketchRenderer
	objects  []fyne.CanvasObject
}

func (s *sketchWidgetRenderer) Layout(size fyne.Size) {
	s.renderer.Render(float64(size.Width), float64(size.Height))
}

func (s *sketchWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (s *sketchWidgetRenderer) Refresh() {
	s.objects = s.objects[:0]
	for _, line := range s.renderer.lines {
		s.objects = append(s.objects, line)
	}
	for _, marker := range s.renderer.markers {
		s.objects = append(s.objects, marker)
	}
	for _, label := range s.renderer.annotations {
		s.objects = append(s.objects, label)
	}
	if s.renderer.hintLabel.Text != "" {
		s.objects = append(s.objects, s.renderer.hintLabel)
	}
	canvas.Refresh(s.renderer)
}

func (s *sketchWidgetRenderer) Objects() []fyne.CanvasObject {
	return s.objects
}

func (s *sketchWidgetRenderer) Destroy() {}
