// Package engine turns pointer and key events into label assignments.
//
// The engine has a single idle state. Every event is handled to
// completion: key commands are folded into State by Reduce, and
// double-clicks in the embedding view brush labels into the Store. The
// returned Outcome tells the caller whether the views must be redrawn.
package engine

import (
	"github.com/Mr-Dark-debug/timecluster/internal/dataset"
	"github.com/Mr-Dark-debug/timecluster/internal/geometry"
	"github.com/Mr-Dark-debug/timecluster/internal/labels"
)

// Surface identifies which view a pointer event landed on.
type Surface int

const (
	SurfaceNone Surface = iota
	SurfaceTime
	SurfaceEmbedding
)

// Button is a pointer button.
type Button int

const (
	ButtonNone Button = iota
	ButtonPrimary
	ButtonMiddle
	ButtonSecondary
)

// Event is either a PointerEvent or a KeyEvent.
type Event interface {
	isEvent()
}

// PointerEvent is a pointer press on the host surface.
type PointerEvent struct {
	DoubleClick bool
	Button      Button
	// Data is the press position in the target view's data units, or
	// nil when the press was outside every view.
	Data   *geometry.Point
	Target Surface
	// Limits are the embedding view's visible limits at press time.
	Limits geometry.Rect
}

// KeyEvent is a key press, named as bubbletea names keys ("n", ",").
type KeyEvent struct {
	Key string
}

func (PointerEvent) isEvent() {}
func (KeyEvent) isEvent()     {}

// State is the active brush state.
type State struct {
	ActiveColor int
	Brush       geometry.Brush
}

// DefaultState is the state a session starts in.
func DefaultState() State {
	return State{ActiveColor: 1, Brush: geometry.NewBrush(geometry.DefaultBrushFraction)}
}

// Outcome describes what handling an event did.
type Outcome struct {
	Redraw  bool
	Reset   bool
	Labeled uint64
}

// Engine owns the mutable session state: the brush state and, through
// the Store, the label mask.
type Engine struct {
	points *dataset.PointSet
	store  *labels.Store
	state  State
}

// New creates an engine over points, writing labels into store. The
// initial color is wrapped into the palette and the brush clamped.
func New(points *dataset.PointSet, store *labels.Store, initial State) *Engine {
	initial.ActiveColor = labels.Index(initial.ActiveColor)
	initial.Brush = geometry.NewBrush(initial.Brush.Fraction)
	return &Engine{points: points, store: store, state: initial}
}

// State returns the current brush state.
func (e *Engine) State() State { return e.state }

// Store returns the label store the engine writes to.
func (e *Engine) Store() *labels.Store { return e.store }

// Handle processes one event.
func (e *Engine) Handle(ev Event) Outcome {
	switch ev := ev.(type) {
	case PointerEvent:
		return e.handlePointer(ev)
	case KeyEvent:
		next, cmd, ok := Reduce(e.state, ev)
		if !ok {
			return Outcome{}
		}
		e.state = next
		if cmd == CommandReset {
			e.store.Reset()
			return Outcome{Redraw: true, Reset: true}
		}
		return Outcome{Redraw: true}
	}
	return Outcome{}
}

func (e *Engine) handlePointer(ev PointerEvent) Outcome {
	if !Selects(ev) {
		return Outcome{}
	}
	hits := e.state.Brush.Select(*ev.Data, ev.Limits, e.points.EmbedCoords())
	e.store.Assign(hits, e.state.ActiveColor)
	return Outcome{Redraw: true, Labeled: hits.GetCardinality()}
}

// Selects reports whether ev is a labeling gesture: a primary-button
// double-click inside the embedding view's visible limits.
func Selects(ev PointerEvent) bool {
	return ev.DoubleClick &&
		ev.Button == ButtonPrimary &&
		ev.Target == SurfaceEmbedding &&
		ev.Data != nil &&
		ev.Limits.Contains(*ev.Data)
}
