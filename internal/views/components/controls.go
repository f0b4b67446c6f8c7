package components

import (
	"fmt"
	"math"

	"textplay/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const removeLabel = "Remove last text"

// ControlPanel holds the text field, remove button, font menu and size slider
type ControlPanel struct {
	container    *fyne.Container
	textEntry    *widget.Entry
	removeButton *widget.Button
	fontSelect   *widget.Select
	sizeSlider   *widget.Slider
	sizeLabel    *widget.Label

	// Event handlers
	removeHandler     func()
	fontChangeHandler func(string)
	sizeChangeHandler func(int)
}

// NewControlPanel creates the panel with the given initial font and size selected
func NewControlPanel(style models.FontStyle, size int) *ControlPanel {
	cp := &ControlPanel{}
	cp.createComponents(style, models.ClampFontSize(size))
	cp.buildLayout()
	cp.setupEventHandlers()
	return cp
}

func (cp *ControlPanel) createComponents(style models.FontStyle, size int) {
	cp.textEntry = widget.NewEntry()
	cp.textEntry.SetPlaceHolder("Type text, then click the canvas")

	cp.removeButton = widget.NewButton(removeLabel, nil)
	cp.removeButton.Importance = widget.HighImportance

	cp.fontSelect = widget.NewSelect(models.FontStyleNames(), nil)
	if !style.Valid() {
		style = models.DefaultFontStyle
	}
	cp.fontSelect.SetSelected(string(style))

	cp.sizeSlider = widget.NewSlider(models.MinFontSize, models.MaxFontSize)
	cp.sizeSlider.Step = 1
	cp.sizeSlider.Value = float64(size)

	cp.sizeLabel = widget.NewLabel(sizeText(size))
}

func (cp *ControlPanel) buildLayout() {
	sizeSection := container.NewBorder(nil, nil, nil, cp.sizeLabel, cp.sizeSlider)

	controls := container.NewGridWithColumns(3,
		cp.removeButton,
		cp.fontSelect,
		sizeSection,
	)

	cp.container = container.NewGridWithRows(2,
		controls,
		cp.textEntry,
	)
}

// setupEventHandlers connects widget callbacks. Handlers are looked up on every
// event so they can be set after construction.
func (cp *ControlPanel) setupEventHandlers() {
	cp.removeButton.OnTapped = func() {
		if cp.removeHandler != nil {
			cp.removeHandler()
		}
	}

	cp.fontSelect.OnChanged = func(name string) {
		if cp.fontChangeHandler != nil {
			cp.fontChangeHandler(name)
		}
	}

	cp.sizeSlider.OnChanged = func(value float64) {
		size := int(math.Round(value))
		cp.sizeLabel.SetText(sizeText(size))
		if cp.sizeChangeHandler != nil {
			cp.sizeChangeHandler(size)
		}
	}
}

// SetRemoveHandler sets the handler for the remove button
func (cp *ControlPanel) SetRemoveHandler(handler func()) {
	cp.removeHandler = handler
}

// SetFontChangeHandler sets the handler for font menu selections
func (cp *ControlPanel) SetFontChangeHandler(handler func(string)) {
	cp.fontChangeHandler = handler
}

// SetSizeChangeHandler sets the handler for slider drags
func (cp *ControlPanel) SetSizeChangeHandler(handler func(int)) {
	cp.sizeChangeHandler = handler
}

// Text returns the live content of the text field
func (cp *ControlPanel) Text() string {
	return cp.textEntry.Text
}

func (cp *ControlPanel) SelectedFont() string {
	return cp.fontSelect.Selected
}

func (cp *ControlPanel) SelectedSize() int {
	return int(math.Round(cp.sizeSlider.Value))
}

func (cp *ControlPanel) Entry() *widget.Entry         { return cp.textEntry }
func (cp *ControlPanel) RemoveButton() *widget.Button { return cp.removeButton }
func (cp *ControlPanel) FontSelect() *widget.Select   { return cp.fontSelect }
func (cp *ControlPanel) SizeSlider() *widget.Slider   { return cp.sizeSlider }

// GetContainer returns the control panel container
func (cp *ControlPanel) GetContainer() *fyne.Container {
	return cp.container
}

func sizeText(size int) string {
	return fmt.Sprintf("%d pt", size)
}
