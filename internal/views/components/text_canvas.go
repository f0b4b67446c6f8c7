package components

import (
	"image/color"

	"textplay/internal/fonts"
	"textplay/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const (
	CanvasMinWidth  = 300
	CanvasMinHeight = 200
)

var (
	canvasBackground = color.White
	textColor        = color.Black
)

// FaceResolver maps a font family to something canvas.Text can render
type FaceResolver interface {
	Resolve(style models.FontStyle) fonts.Face
}

// TextCanvas is the tappable drawing surface holding text objects
type TextCanvas struct {
	widget.BaseWidget

	fonts      FaceResolver
	background *canvas.Rectangle
	layer      *fyne.Container

	texts map[models.TextID]*canvas.Text
	next  models.TextID

	tapHandler func(models.Point)
}

// NewTextCanvas creates an empty canvas. A nil resolver renders every family with the theme font.
func NewTextCanvas(resolver FaceResolver) *TextCanvas {
	tc := &TextCanvas{
		fonts: resolver,
		texts: make(map[models.TextID]*canvas.Text),
	}
	tc.createComponents()
	tc.ExtendBaseWidget(tc)
	return tc
}

func (tc *TextCanvas) createComponents() {
	tc.background = canvas.NewRectangle(canvasBackground)
	tc.background.SetMinSize(fyne.NewSize(CanvasMinWidth, CanvasMinHeight))
	tc.layer = container.NewWithoutLayout()
}

func (tc *TextCanvas) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(tc.background, tc.layer))
}

// Tapped reports the tap position in canvas coordinates
func (tc *TextCanvas) Tapped(ev *fyne.PointEvent) {
	if tc.tapHandler != nil {
		tc.tapHandler(models.NewPoint(ev.Position.X, ev.Position.Y))
	}
}

// SetTapHandler sets the handler for taps on the canvas
func (tc *TextCanvas) SetTapHandler(handler func(models.Point)) {
	tc.tapHandler = handler
}

func (tc *TextCanvas) Draw(content string, at models.Point, style models.FontStyle, size int) models.TextID {
	text := canvas.NewText(content, textColor)
	text.TextSize = float32(size)
	tc.applyFace(text, style)
	text.Move(fyne.NewPos(at.X, at.Y))
	text.Resize(text.MinSize())

	tc.next++
	tc.texts[tc.next] = text
	tc.layer.Add(text)
	return tc.next
}

func (tc *TextCanvas) Restyle(id models.TextID, style models.FontStyle) {
	text, ok := tc.texts[id]
	if !ok {
		return
	}
	tc.applyFace(text, style)
	text.Resize(text.MinSize())
	text.Refresh()
}

func (tc *TextCanvas) ResizeText(id models.TextID, size int) {
	text, ok := tc.texts[id]
	if !ok {
		return
	}
	text.TextSize = float32(size)
	text.Resize(text.MinSize())
	text.Refresh()
}

func (tc *TextCanvas) Erase(id models.TextID) {
	text, ok := tc.texts[id]
	if !ok {
		return
	}
	delete(tc.texts, id)
	tc.layer.Remove(text)
}

// Count returns the number of texts currently drawn
func (tc *TextCanvas) Count() int {
	return len(tc.texts)
}

// Text returns the drawn object for id
func (tc *TextCanvas) Text(id models.TextID) (*canvas.Text, bool) {
	text, ok := tc.texts[id]
	return text, ok
}

func (tc *TextCanvas) applyFace(text *canvas.Text, style models.FontStyle) {
	if tc.fonts == nil {
		text.FontSource = nil
		text.TextStyle = fyne.TextStyle{}
		return
	}
	face := tc.fonts.Resolve(style)
	text.FontSource = face.Source
	text.TextStyle = face.Style
}
