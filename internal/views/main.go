package views

import (
	"textplay/internal/controllers"
	"textplay/internal/logger"
	"textplay/internal/models"
	"textplay/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

const component = "MainView"

// Dispatcher receives every UI event produced by the view
type Dispatcher interface {
	Handle(ev controllers.Event) error
	Snapshot() controllers.Snapshot
}

// MainView lays out the canvas, controls and status bar and turns widget
// callbacks into controller events
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	canvas        *components.TextCanvas
	controls      *components.ControlPanel
	statusBar     *components.StatusBar

	dispatcher Dispatcher
	logger     logger.Logger
}

// NewMainView builds the layout into window. Events are dropped until Bind is called.
func NewMainView(window fyne.Window, canvas *components.TextCanvas, controls *components.ControlPanel, log logger.Logger) *MainView {
	if log == nil {
		log = logger.NewNop()
	}
	view := &MainView{
		window:    window,
		canvas:    canvas,
		controls:  controls,
		statusBar: components.NewStatusBar(),
		logger:    log,
	}

	view.buildLayout()
	view.setupEventHandlers()

	return view
}

func (mv *MainView) buildLayout() {
	bottomArea := container.NewVBox(
		mv.controls.GetContainer(),
		mv.statusBar.GetContainer(),
	)

	mv.mainContainer = container.NewBorder(
		nil,        // top
		bottomArea, // bottom
		nil,        // left
		nil,        // right
		mv.canvas,  // center
	)

	mv.window.SetContent(mv.mainContainer)
}

func (mv *MainView) setupEventHandlers() {
	mv.canvas.SetTapHandler(func(at models.Point) {
		mv.dispatch(controllers.ClickAt(at))
	})

	mv.controls.SetRemoveHandler(func() {
		mv.dispatch(controllers.Remove())
	})

	mv.controls.SetFontChangeHandler(func(name string) {
		mv.dispatch(controllers.SelectFont(models.FontStyle(name)))
	})

	mv.controls.SetSizeChangeHandler(func(size int) {
		mv.dispatch(controllers.ChangeSize(size))
	})
}

// Bind connects the view to a dispatcher and refreshes the status bar
func (mv *MainView) Bind(d Dispatcher) {
	mv.dispatcher = d
	mv.refreshStatus()
}

func (mv *MainView) dispatch(ev controllers.Event) {
	if mv.dispatcher == nil {
		mv.logger.Warning(component, "event dropped, no dispatcher bound", map[string]interface{}{
			"event": ev.Kind.String(),
		})
		return
	}

	if err := mv.dispatcher.Handle(ev); err != nil {
		mv.logger.Error(component, err, map[string]interface{}{
			"event": ev.Kind.String(),
		})
	}
	mv.refreshStatus()
}

func (mv *MainView) refreshStatus() {
	if mv.dispatcher == nil {
		return
	}
	mv.statusBar.Update(mv.dispatcher.Snapshot(), mv.canvas.Count())
}

// Show displays the main window
func (mv *MainView) Show() {
	mv.window.Show()
}

func (mv *MainView) Canvas() *components.TextCanvas     { return mv.canvas }
func (mv *MainView) Controls() *components.ControlPanel { return mv.controls }
func (mv *MainView) StatusBar() *components.StatusBar   { return mv.statusBar }
