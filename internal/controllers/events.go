package controllers

import "textplay/internal/models"

// EventKind tags the UI event carried by an Event
type EventKind int

const (
	PointerClick EventKind = iota
	RemovePressed
	FontSelected
	SizeChanged
)

func (k EventKind) String() string {
	switch k {
	case PointerClick:
		return "PointerClick"
	case RemovePressed:
		return "RemovePressed"
	case FontSelected:
		return "FontSelected"
	case SizeChanged:
		return "SizeChanged"
	default:
		return "Unknown"
	}
}

// Event is one UI event. Only the field matching Kind is meaningful.
type Event struct {
	Kind  EventKind
	Point models.Point
	Style models.FontStyle
	Size  int
}

func ClickAt(at models.Point) Event {
	return Event{Kind: PointerClick, Point: at}
}

func Remove() Event {
	return Event{Kind: RemovePressed}
}

func SelectFont(style models.FontStyle) Event {
	return Event{Kind: FontSelected, Style: style}
}

func ChangeSize(size int) Event {
	return Event{Kind: SizeChanged, Size: size}
}
