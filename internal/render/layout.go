package render

// PanelWidth is the width of the side panel on normal terminals.
const PanelWidth = 24

// CellRect is a rectangle of terminal cells.
type CellRect struct {
	X, Y, W, H int
}

// Contains reports whether cell (x, y) is inside r.
func (r CellRect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether r has no cells.
func (r CellRect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Layout positions the header, side panel, both views and the footer.
// The views follow a 3-row grid: the time view takes the top row, the
// embedding view the two rows below. The plot column keeps the figure's
// aspect ratio, counting a cell as twice as tall as it is wide.
type Layout struct {
	Width, Height int

	Panel      CellRect
	TimeTitle  CellRect
	Time       CellRect
	EmbedTitle CellRect
	Embed      CellRect
}

// NewLayout computes the layout for a width×height terminal.
func NewLayout(width, height int, figSize [2]float64) Layout {
	l := Layout{Width: width, Height: height}
	body := height - 2 // header + footer
	if width <= 0 || body <= 0 {
		return l
	}

	pw := PanelWidth
	if width < 3*PanelWidth {
		pw = width / 3
	}
	cols, rows := width-pw, body

	if figSize[0] > 0 && figSize[1] > 0 {
		ratio := figSize[0] / figSize[1]
		if float64(cols) > ratio*2*float64(rows) {
			cols = int(ratio * 2 * float64(rows))
		} else {
			rows = int(float64(cols) / (2 * ratio))
		}
	}

	top := rows / 3
	l.Panel = CellRect{X: 0, Y: 1, W: pw, H: body}
	l.TimeTitle = CellRect{X: pw, Y: 1, W: cols, H: minInt(1, top)}
	l.Time = CellRect{X: pw, Y: 2, W: cols, H: maxInt(top-1, 0)}
	l.EmbedTitle = CellRect{X: pw, Y: 1 + top, W: cols, H: minInt(1, rows-top)}
	l.Embed = CellRect{X: pw, Y: 2 + top, W: cols, H: maxInt(rows-top-1, 0)}
	return l
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
