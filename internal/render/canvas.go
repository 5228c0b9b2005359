package render

import (
	"math"
	"strings"

	"github.com/Mr-Dark-debug/timecluster/internal/geometry"
	"github.com/Mr-Dark-debug/timecluster/internal/labels"
	"github.com/charmbracelet/lipgloss"
)

// canvas rasterizes one view. The line layer is drawn on a braille
// micro-grid (2×4 dots per cell); the scatter layer holds one marker per
// cell, the highest-index point in that cell.
type canvas struct {
	w, h  int
	view  geometry.Rect
	dots  [][]uint8
	marks [][]int
}

func newCanvas(w, h int, view geometry.Rect) *canvas {
	c := &canvas{w: w, h: h, view: view}
	c.dots = make([][]uint8, h)
	c.marks = make([][]int, h)
	for y := 0; y < h; y++ {
		c.dots[y] = make([]uint8, w)
		c.marks[y] = make([]int, w)
		for x := range c.marks[y] {
			c.marks[y][x] = -1
		}
	}
	return c
}

// micro maps p to fractional micro-grid coordinates. ok is false when
// either coordinate is not a finite number.
func (c *canvas) micro(p geometry.Point) (mx, my float64, ok bool) {
	fx := (p.X/2 - c.view.MinX/2) / c.view.HalfWidth()
	fy := (c.view.MaxY/2 - p.Y/2) / c.view.HalfHeight()
	mx, my = fx*float64(2*c.w), fy*float64(4*c.h)
	return mx, my, finite(mx) && finite(my)
}

func finite(v float64) bool { return !math.IsInf(v, 0) && !math.IsNaN(v) }

// setDot sets a micro-pixel; out-of-range dots are dropped.
func (c *canvas) setDot(mx, my int) {
	if mx < 0 || my < 0 || mx >= 2*c.w || my >= 4*c.h {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	c.dots[cy][cx] |= brailleBit[rx][ry]
}

var brailleBit = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// polyline draws segments between consecutive points. The dash pattern
// runs continuously across segments.
func (c *canvas) polyline(pts []geometry.Point, dash string) {
	if c.view.Degenerate() {
		return
	}
	step := 0
	for i := 1; i < len(pts); i++ {
		x0, y0, ok0 := c.micro(pts[i-1])
		x1, y1, ok1 := c.micro(pts[i])
		if !ok0 || !ok1 {
			continue
		}
		x0, y0, x1, y1, ok := clipSegment(x0, y0, x1, y1, float64(2*c.w), float64(4*c.h))
		if !ok {
			continue
		}
		c.segment(int(x0), int(y0), int(x1), int(y1), dash, &step)
	}
}

// segment draws a Bresenham line on the micro-grid.
func (c *canvas) segment(x0, y0, x1, y1 int, dash string, step *int) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	e := dx + dy
	for {
		if dashOn(dash, *step) {
			c.setDot(x0, y0)
		}
		*step++
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func dashOn(dash string, step int) bool {
	switch dash {
	case "--":
		return (step/3)%2 == 0
	case ":":
		return step%3 == 0
	default:
		return true
	}
}

// scatter places a marker for every point inside the view.
func (c *canvas) scatter(pts []geometry.Point) {
	if c.view.Degenerate() {
		return
	}
	for i, p := range pts {
		if !c.view.Contains(p) {
			continue
		}
		mx, my, ok := c.micro(p)
		if !ok {
			continue
		}
		cx := max(0, minInt(int(mx)/2, c.w-1))
		cy := max(0, minInt(int(my)/4, c.h-1))
		c.marks[cy][cx] = i
	}
}

// lines renders the canvas. Runs of cells sharing a color are styled
// together.
func (c *canvas) lines(glyph rune, lineColor string, edges []labels.Color) []string {
	styles := map[string]lipgloss.Style{}
	styled := func(color, text string) string {
		if color == "" {
			return text
		}
		st, ok := styles[color]
		if !ok {
			st = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
			styles[color] = st
		}
		return st.Render(text)
	}

	out := make([]string, c.h)
	for y := 0; y < c.h; y++ {
		var row strings.Builder
		var run strings.Builder
		runColor := ""
		flush := func() {
			if run.Len() > 0 {
				row.WriteString(styled(runColor, run.String()))
				run.Reset()
			}
		}
		for x := 0; x < c.w; x++ {
			r, color := ' ', ""
			switch {
			case c.marks[y][x] >= 0:
				r, color = glyph, string(edges[c.marks[y][x]])
			case c.dots[y][x] != 0:
				r, color = rune(0x2800+int(c.dots[y][x])), lineColor
			}
			if color != runColor {
				flush()
				runColor = color
			}
			run.WriteRune(r)
		}
		flush()
		out[y] = row.String()
	}
	return out
}

// clipSegment clips a segment to [0,w)×[0,h) (Liang–Barsky).
func clipSegment(x0, y0, x1, y1, w, h float64) (float64, float64, float64, float64, bool) {
	const eps = 1e-9
	maxX, maxY := w-eps, h-eps
	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0
	for _, pq := range [4][2]float64{
		{-dx, x0},
		{dx, maxX - x0},
		{-dy, y0},
		{dy, maxY - y0},
	} {
		p, q := pq[0], pq[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, r)
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
