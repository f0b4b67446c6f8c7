package models

import (
	"errors"
	"fmt"
)

const (
	MinFontSize     = 10
	MaxFontSize     = 48
	DefaultFontSize = MinFontSize
)

// ErrUnknownFontStyle is returned for a family outside the fixed menu.
var ErrUnknownFontStyle = errors.New("unknown font style")

// FontStyle names one of the font families offered in the font menu
type FontStyle string

const (
	Courier    FontStyle = "Courier"
	Helvetica  FontStyle = "Helvetica"
	TimesRoman FontStyle = "Times Roman"
	Zapfino    FontStyle = "Zapfino"
	Geneva     FontStyle = "Geneva"
	Arial      FontStyle = "Arial"
	Futura     FontStyle = "Futura"

	DefaultFontStyle = Courier
)

var fontStyles = []FontStyle{Courier, Helvetica, TimesRoman, Zapfino, Geneva, Arial, Futura}

// FontStyles returns the menu entries in display order
func FontStyles() []FontStyle {
	styles := make([]FontStyle, len(fontStyles))
	copy(styles, fontStyles)
	return styles
}

// FontStyleNames returns the menu entries as plain strings for select widgets
func FontStyleNames() []string {
	names := make([]string, len(fontStyles))
	for i, s := range fontStyles {
		names[i] = string(s)
	}
	return names
}

// Valid reports whether the style is one of the menu entries
func (s FontStyle) Valid() bool {
	for _, known := range fontStyles {
		if s == known {
			return true
		}
	}
	return false
}

// ParseFontStyle converts a menu label into a FontStyle
func ParseFontStyle(name string) (FontStyle, error) {
	style := FontStyle(name)
	if !style.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownFontStyle, name)
	}
	return style, nil
}

// ClampFontSize forces a size into [MinFontSize, MaxFontSize]
func ClampFontSize(size int) int {
	switch {
	case size < MinFontSize:
		return MinFontSize
	case size > MaxFontSize:
		return MaxFontSize
	default:
		return size
	}
}

// Point is a canvas coordinate in logical units
type Point struct {
	X float32
	Y float32
}

func NewPoint(x, y float32) Point {
	return Point{X: x, Y: y}
}

// TextID identifies a text object drawn on a canvas. Zero is never issued.
type TextID uint64

// DisplayedText is a single rendered text object. Content and Anchor are fixed once drawn.
type DisplayedText struct {
	ID      TextID
	Content string
	Anchor  Point
	Style   FontStyle
	Size    int
}

func (t DisplayedText) String() string {
	return fmt.Sprintf("%q at (%.0f,%.0f) %s %dpt", t.Content, t.Anchor.X, t.Anchor.Y, t.Style, t.Size)
}
