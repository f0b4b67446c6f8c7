package components

import (
	"fmt"

	"textplay/internal/controllers"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const idleStatus = "No current text"

// StatusBar shows the current text and the style the next text will get
type StatusBar struct {
	container    *fyne.Container
	currentLabel *widget.Label
	pendingLabel *widget.Label
	countLabel   *widget.Label
}

func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents() {
	sb.currentLabel = widget.NewLabel(idleStatus)
	sb.pendingLabel = widget.NewLabel("")
	sb.countLabel = widget.NewLabel("")
}

func (sb *StatusBar) buildLayout() {
	sb.container = container.NewHBox(
		sb.currentLabel,
		widget.NewSeparator(),
		sb.pendingLabel,
		widget.NewSeparator(),
		sb.countLabel,
	)
}

// Update renders a controller snapshot along with the number of drawn texts
func (sb *StatusBar) Update(snap controllers.Snapshot, drawn int) {
	if snap.Current == nil {
		sb.currentLabel.SetText(idleStatus)
	} else {
		sb.currentLabel.SetText("Current: " + snap.Current.String())
	}
	sb.pendingLabel.SetText(fmt.Sprintf("Next: %s %dpt", snap.PendingStyle, snap.PendingSize))
	sb.countLabel.SetText(fmt.Sprintf("On canvas: %d", drawn))
}

func (sb *StatusBar) CurrentText() string {
	return sb.currentLabel.Text
}

func (sb *StatusBar) PendingText() string {
	return sb.pendingLabel.Text
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
