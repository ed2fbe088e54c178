package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/philipparndt/gosketch/internal/app"
	"github.com/philipparndt/gosketch/pkg/analysis"
	"github.com/philipparndt/gosketch/pkg/constraint"
	"github.com/philipparndt/gosketch/pkg/dimension"
	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/sketch"
	"github.com/philipparndt/gosketch/pkg/sketchfile"
	"github.com/philipparndt/gosketch/pkg/viewer"
	"github.com/philipparndt/gosketch/pkg/watcher"
)

type App struct {
	window     fyne.Window
	store      *sketch.Store
	plane      sketch.Plane
	camera     *viewer.Camera
	controller *app.Controller
	renderer   *viewer.SketchRenderer

	toolLabel   *widget.Label
	hintLabel   *widget.Label
	resultLabel *widget.Label
	statsLabel  *widget.Label

	fileWatcher *watcher.SketchWatcher
	sourceFile  string
}

func main() {
	a := fyneapp.New()
	w := a.NewWindow("GoSketch - Parametric Sketcher")

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	appInstance := &App{
		window: w,
		plane:  sketch.XYPlane(),
		camera: viewer.NewCamera(300),
	}

	if len(os.Args) > 1 {
		appInstance.loadFile(os.Args[1], logger)
	} else {
		appInstance.setStore(sketch.NewStore(), logger)
	}

	w.Resize(fyne.NewSize(1200, 800))
	w.ShowAndRun()
}

func (a *App) loadFile(filename string, logger *slog.Logger) {
	doc, err := sketchfile.Parse(filename)
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to load sketch file: %w", err), a.window)
		a.setStore(sketch.NewStore(), logger)
		return
	}
	store, err := doc.Store()
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to build sketch: %w", err), a.window)
		a.setStore(sketch.NewStore(), logger)
		return
	}

	a.sourceFile = filename
	a.plane = doc.SketchPlane()
	a.setStore(store, logger)
	a.watchFile(filename, logger)
}

// watchFile reloads the sketch whenever its file changes on disk
func (a *App) watchFile(filename string, logger *slog.Logger) {
	w, err := watcher.New(250*time.Millisecond, logger)
	if err != nil {
		logger.Warn("file watching disabled", "error", err)
		return
	}
	if err := w.Watch(filename, func(file string) {
		fyne.Do(func() {
			a.loadFile(file, logger)
		})
	}); err != nil {
		logger.Warn("file watching disabled", "error", err)
		w.Close()
		return
	}
	if a.fileWatcher != nil {
		a.fileWatcher.Close()
	}
	a.fileWatcher = w
	w.Start(context.Background())
}

func (a *App) setStore(store *sketch.Store, logger *slog.Logger) {
	a.store = store
	a.controller = app.NewController(store, a.plane, a.camera, app.Config{
		Logger: logger,
		Sink:   a,
	})
	a.renderer = viewer.NewSketchRenderer(store, a.plane, a.camera, a.controller)
	a.setupUI()
}

func (a *App) setupUI() {
	a.toolLabel = widget.NewLabel("Tool: select")
	a.toolLabel.TextStyle = fyne.TextStyle{Bold: true}
	a.hintLabel = widget.NewLabel("")
	a.resultLabel = widget.NewLabel("")
	a.statsLabel = widget.NewLabel("")
	a.updateStats()

	toolButtons := container.NewVBox(
		widget.NewButton("Select (S)", func() { a.setTool(app.ToolSelect) }),
		widget.NewButton("Line (L)", func() { a.setTool(app.ToolLine) }),
		widget.NewButton("Dimension (D)", func() { a.setTool(app.ToolDimension) }),
		widget.NewButton("Measure (M)", func() { a.setTool(app.ToolMeasure) }),
	)

	instructions := widget.NewLabel(
		"• L then click twice to draw a line\n" +
			"• Hold Shift to suppress snapping\n" +
			"• D: pick two references, then click to place\n" +
			"• Escape cancels the current action\n" +
			"• Scroll to zoom",
	)
	instructions.Wrapping = fyne.TextWrapWord

	sidePanel := container.NewVBox(
		a.toolLabel,
		widget.NewSeparator(),
		toolButtons,
		widget.NewSeparator(),
		a.hintLabel,
		a.resultLabel,
		widget.NewSeparator(),
		widget.NewLabel("Sketch:"),
		a.statsLabel,
		widget.NewSeparator(),
		instructions,
	)
	sideScroll := container.NewVScroll(sidePanel)
	sideScroll.SetMinSize(fyne.NewSize(280, 0))

	content := container.NewBorder(nil, nil, nil, sideScroll, a.renderer)
	a.window.SetContent(content)
	a.bindKeys()
}

func (a *App) bindKeys() {
	canvas := a.window.Canvas()
	canvas.SetOnTypedKey(func(event *fyne.KeyEvent) {
		switch event.Name {
		case fyne.KeyEscape:
			a.controller.KeyEscape()
			a.hintLabel.SetText("")
			a.renderer.SetPreview(geometry.Segment{}, false)
		case fyne.KeyS:
			a.setTool(app.ToolSelect)
		case fyne.KeyL:
			a.setTool(app.ToolLine)
		case fyne.KeyD:
			a.setTool(app.ToolDimension)
		case fyne.KeyM:
			a.setTool(app.ToolMeasure)
		}
	})
	if deskCanvas, ok := canvas.(desktop.Canvas); ok {
		deskCanvas.SetOnKeyDown(func(event *fyne.KeyEvent) {
			if event.Name == desktop.KeyShiftLeft || event.Name == desktop.KeyShiftRight {
				a.renderer.SetSuppress(true)
			}
		})
		deskCanvas.SetOnKeyUp(func(event *fyne.KeyEvent) {
			if event.Name == desktop.KeyShiftLeft || event.Name == desktop.KeyShiftRight {
				a.renderer.SetSuppress(false)
			}
		})
	}
}

func (a *App) setTool(tool app.Tool) {
	a.controller.SetTool(tool)
	a.toolLabel.SetText("Tool: " + tool.String())
	a.hintLabel.SetText("")
	a.resultLabel.SetText("")
	a.renderer.SetPreview(geometry.Segment{}, false)
}

func (a *App) updateStats() {
	result := analysis.AnalyzeSketch(a.store)
	a.statsLabel.SetText(fmt.Sprintf(
		"Lines: %d\nCircles: %d\nArcs: %d\nPoints: %d\nTotal length: %.2f",
		result.LineCount, result.CircleCount, result.ArcCount,
		result.PointCount, result.TotalLength,
	))
}

// HintChanged implements app.Sink
func (a *App) HintChanged(hint *constraint.Hint) {
	if hint == nil {
		a.hintLabel.SetText("")
		a.renderer.SetHintText("")
		return
	}
	a.hintLabel.SetText("Hint: " + hint.Kind.String())
	a.renderer.SetHintText(hint.Kind.String())
}

// LinePreview implements app.Sink
func (a *App) LinePreview(line geometry.Segment) {
	a.renderer.SetPreview(line, true)
}

// LineCommitted implements app.Sink
func (a *App) LineCommitted(line sketch.Line, constraints []constraint.Constraint) {
	a.renderer.SetPreview(geometry.Segment{}, false)
	text := fmt.Sprintf("Line %d committed", line.ID)
	for _, c := range constraints {
		text += "\n  " + c.Kind.String()
	}
	a.resultLabel.SetText(text)
	a.updateStats()
}

// DimensionCreated implements app.Sink
func (a *App) DimensionCreated(proposal dimension.Proposal) {
	a.resultLabel.SetText(fmt.Sprintf("%s: %.3f", proposal.Kind, proposal.Value))
	a.renderer.Annotate(fmt.Sprintf("%.2f", proposal.Value), proposal.Placement)
}

// MeasurementShown implements app.Sink
func (a *App) MeasurementShown(m dimension.Measurement) {
	a.resultLabel.SetText(fmt.Sprintf("Measured %s: %.3f", m.Kind, m.Value))
}

// SelectionChanged implements app.Sink
func (a *App) SelectionChanged(items []sketch.SelectionItem) {
	points := make([]geometry.Point2, 0, len(items))
	for _, item := range items {
		if p, ok := a.store.PointAt(item); ok {
			points = append(points, p)
		}
	}
	a.renderer.SetSelected(points)
}
