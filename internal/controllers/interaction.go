package controllers

import (
	"errors"
	"fmt"

	"textplay/internal/logger"
	"textplay/internal/models"
)

const component = "InteractionController"

var ErrUnknownEvent = errors.New("unknown event kind")

// Canvas is the drawing surface that hosts text objects. The controller
// never keeps the set of drawn objects itself.
type Canvas interface {
	Draw(content string, at models.Point, style models.FontStyle, size int) models.TextID
	Restyle(id models.TextID, style models.FontStyle)
	ResizeText(id models.TextID, size int)
	Erase(id models.TextID)
}

// TextSource is read at click time for the content of a new text.
type TextSource interface {
	Text() string
}

// State is Idle when no text is current and Active otherwise
type State int

const (
	Idle State = iota
	Active
)

func (s State) String() string {
	if s == Active {
		return "Active"
	}
	return "Idle"
}

// Snapshot is a read-only copy of the controller state for display
type Snapshot struct {
	State        State
	Current      *models.DisplayedText
	PendingStyle models.FontStyle
	PendingSize  int
}

// InteractionController applies UI events to at most one current text object
type InteractionController struct {
	canvas Canvas
	input  TextSource
	logger logger.Logger

	current   *models.DisplayedText
	fontSize  int
	fontStyle models.FontStyle
}

// Option adjusts a controller at construction
type Option func(*InteractionController)

// WithDefaults sets the pending style and size used before any change event.
// Invalid values are ignored.
func WithDefaults(style models.FontStyle, size int) Option {
	return func(c *InteractionController) {
		if style.Valid() {
			c.fontStyle = style
		}
		c.fontSize = models.ClampFontSize(size)
	}
}

// NewInteractionController creates a controller in the Idle state with Courier at 10pt
func NewInteractionController(canvas Canvas, input TextSource, log logger.Logger, opts ...Option) *InteractionController {
	if log == nil {
		log = logger.NewNop()
	}
	c := &InteractionController{
		canvas:    canvas,
		input:     input,
		logger:    log,
		fontSize:  models.DefaultFontSize,
		fontStyle: models.DefaultFontStyle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Handle routes one event to its handler. Only malformed events return an error.
func (c *InteractionController) Handle(ev Event) error {
	switch ev.Kind {
	case PointerClick:
		c.onPointerClick(ev.Point)
		return nil
	case RemovePressed:
		c.onRemove()
		return nil
	case FontSelected:
		return c.onFontStyleSelected(ev.Style)
	case SizeChanged:
		c.onFontSizeChanged(ev.Size)
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrUnknownEvent, ev.Kind)
	}
}

func (c *InteractionController) onPointerClick(at models.Point) {
	content := ""
	if c.input != nil {
		content = c.input.Text()
	}

	text := &models.DisplayedText{
		Content: content,
		Anchor:  at,
		Style:   c.fontStyle,
		Size:    c.fontSize,
	}
	text.ID = c.canvas.Draw(text.Content, text.Anchor, text.Style, text.Size)

	if c.current != nil {
		c.logger.Debug(component, "previous text superseded", map[string]interface{}{
			"id": uint64(c.current.ID),
		})
	}
	c.current = text

	c.logger.Debug(component, "text drawn", map[string]interface{}{
		"id":    uint64(text.ID),
		"x":     at.X,
		"y":     at.Y,
		"style": string(text.Style),
		"size":  text.Size,
	})
}

func (c *InteractionController) onRemove() {
	if c.current == nil {
		c.logger.Debug(component, "remove ignored, no current text", nil)
		return
	}

	id := c.current.ID
	c.canvas.Erase(id)
	c.current = nil

	c.logger.Debug(component, "text removed", map[string]interface{}{"id": uint64(id)})
}

func (c *InteractionController) onFontStyleSelected(name models.FontStyle) error {
	style, err := models.ParseFontStyle(string(name))
	if err != nil {
		return err
	}

	c.fontStyle = style
	if c.current == nil {
		return nil
	}

	c.current.Style = style
	c.canvas.Restyle(c.current.ID, style)
	c.logger.Debug(component, "text restyled", map[string]interface{}{
		"id":    uint64(c.current.ID),
		"style": string(style),
	})
	return nil
}

func (c *InteractionController) onFontSizeChanged(size int) {
	size = models.ClampFontSize(size)

	c.fontSize = size
	if c.current == nil || c.current.Size == size {
		return
	}

	c.current.Size = size
	c.canvas.ResizeText(c.current.ID, size)
	c.logger.Debug(component, "text resized", map[string]interface{}{
		"id":   uint64(c.current.ID),
		"size": size,
	})
}

func (c *InteractionController) State() State {
	if c.current == nil {
		return Idle
	}
	return Active
}

// Current returns a copy of the current text, if any
func (c *InteractionController) Current() (models.DisplayedText, bool) {
	if c.current == nil {
		return models.DisplayedText{}, false
	}
	return *c.current, true
}

func (c *InteractionController) PendingStyle() models.FontStyle { return c.fontStyle }
func (c *InteractionController) PendingSize() int               { return c.fontSize }

func (c *InteractionController) Snapshot() Snapshot {
	snap := Snapshot{
		State:        c.State(),
		PendingStyle: c.fontStyle,
		PendingSize:  c.fontSize,
	}
	if cur, ok := c.Current(); ok {
		snap.Current = &cur
	}
	return snap
}
