package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ────────────────────────────────────────────────────────────
// Double-click detection
// ────────────────────────────────────────────────────────────

// clickTracker recognizes double-clicks, which terminals do not report:
// two presses of the same button on the same cell within the threshold.
type clickTracker struct {
	last   time.Time
	x, y   int
	button tea.MouseButton
}

// press records a press and reports whether it completes a double-click.
// A completed double-click clears the tracker so a third press starts a
// new sequence.
func (c *clickTracker) press(now time.Time, x, y int, button tea.MouseButton, threshold time.Duration) bool {
	double := !c.last.IsZero() &&
		c.x == x && c.y == y && c.button == button &&
		now.Sub(c.last) <= threshold
	if double {
		*c = clickTracker{}
		return true
	}
	*c = clickTracker{last: now, x: x, y: y, button: button}
	return false
}
