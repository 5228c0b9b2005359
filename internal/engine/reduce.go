package engine

import "github.com/Mr-Dark-debug/timecluster/internal/labels"

// Command is a side effect a key requests beyond the state change.
type Command int

const (
	CommandNone Command = iota
	CommandReset
)

// Reduce applies a key event to st. ok is false for keys the engine does
// not listen to, in which case st is returned unchanged.
func Reduce(st State, ev KeyEvent) (next State, cmd Command, ok bool) {
	switch ev.Key {
	case "n":
		st.ActiveColor = labels.Index(st.ActiveColor + 1)
	case "m":
		st.ActiveColor = labels.Index(st.ActiveColor - 1)
	case ",":
		st.Brush = st.Brush.Grow()
	case ".":
		st.Brush = st.Brush.Shrink()
	case "b":
		return st, CommandReset, true
	default:
		return st, CommandNone, false
	}
	return st, CommandNone, true
}

// Legend lists the key commands in display order.
var Legend = []struct{ Key, Desc string }{
	{"n", "color up"},
	{"m", "color down"},
	{",", "brush up"},
	{".", "brush down"},
	{"b", "clear"},
}
