// Package render draws the two linked views of a labeling session and
// the side panel that reports the active brush state.
//
// Both views paint their markers from the Store's edge color slice, so
// a label change shows up in the time view and the embedding view in
// the same frame. Frames are cached; UpdateAxes and Repaint are the only
// ways to produce a new one.
package render

import (
	"fmt"
	"strings"

	"github.com/Mr-Dark-debug/timecluster/internal/dataset"
	"github.com/Mr-Dark-debug/timecluster/internal/engine"
	"github.com/Mr-Dark-debug/timecluster/internal/geometry"
	"github.com/Mr-Dark-debug/timecluster/internal/labels"
	"github.com/Mr-Dark-debug/timecluster/pkg/tickfmt"
	"github.com/charmbracelet/lipgloss"
)

// Options are the renderer's display settings.
type Options struct {
	Line   LineStyle
	Marker MarkerStyle
}

// DefaultOptions returns the default line and marker styles.
func DefaultOptions() Options {
	return Options{Line: DefaultLineStyle(), Marker: DefaultMarkerStyle()}
}

// Renderer projects the Point Set, Label Store and brush state onto two
// views and a side panel. It keeps no state of its own beyond the last
// frame.
type Renderer struct {
	points    *dataset.PointSet
	store     *labels.Store
	timeView  *Viewport
	embedView *Viewport

	glyph     rune
	lineColor string
	dash      string

	layout Layout
	state  engine.State

	timeTitle, embedTitle string
	timeFrame, embedFrame string
	panel                 string
	repaints              int
}

// New creates a renderer. embedView is shared with the caller, which
// pans and zooms it; the time view is fixed to its data bounds.
func New(points *dataset.PointSet, store *labels.Store, embedView *Viewport, opts Options) (*Renderer, error) {
	palette := store.Palette()
	if err := opts.Line.Validate(palette); err != nil {
		return nil, err
	}
	if err := opts.Marker.Validate(palette); err != nil {
		return nil, err
	}
	lineHex, _ := resolveColor(opts.Line.Color, palette)

	return &Renderer{
		points:    points,
		store:     store,
		timeView:  NewViewport(points.TimeCoords()),
		embedView: embedView,
		glyph:     opts.Marker.glyph(),
		lineColor: blend(lineHex, string(colorBg), opts.Line.Alpha),
		dash:      opts.Line.Dash,
	}, nil
}

// Layout returns the layout of the last Resize.
func (r *Renderer) Layout() Layout { return r.layout }

// Resize adopts a new layout and repaints.
func (r *Renderer) Resize(l Layout) {
	r.layout = l
	r.Repaint()
}

// UpdateAxes is the redraw entry point after a state change: it takes
// the new brush state, re-applies the edge colors to both scatter
// layers, refreshes the readouts and repaints.
func (r *Renderer) UpdateAxes(st engine.State) {
	r.state = st
	r.Repaint()
}

// Repaint rasterizes both views and the side panel.
func (r *Renderer) Repaint() {
	edges := r.store.EdgeColors()
	r.timeFrame = r.plot(r.points.TimeCoords(), r.timeView.Limits(), r.layout.Time, edges)
	r.embedFrame = r.plot(r.points.EmbedCoords(), r.embedView.Limits(), r.layout.Embed, edges)

	tl := r.timeView.Limits()
	r.timeTitle = r.title("Time",
		"t "+tickfmt.Range(tl.MinX, tl.MaxX), r.layout.TimeTitle.W)
	el := r.embedView.Limits()
	r.embedTitle = r.title("Embedding",
		"x "+tickfmt.Range(el.MinX, el.MaxX)+"  y "+tickfmt.Range(el.MinY, el.MaxY), r.layout.EmbedTitle.W)

	r.panel = r.sidePanel()
	r.repaints++
}

// Repaints counts how many frames have been produced.
func (r *Renderer) Repaints() int { return r.repaints }

// TimeView returns the time view block: title line plus plot rows.
func (r *Renderer) TimeView() string { return joinBlock(r.timeTitle, r.timeFrame) }

// EmbedView returns the embedding view block: title line plus plot rows.
func (r *Renderer) EmbedView() string { return joinBlock(r.embedTitle, r.embedFrame) }

// SidePanel returns the readout and legend panel.
func (r *Renderer) SidePanel() string { return r.panel }

func (r *Renderer) plot(pts []geometry.Point, view geometry.Rect, area CellRect, edges []labels.Color) string {
	if area.Empty() {
		return ""
	}
	c := newCanvas(area.W, area.H, view)
	c.polyline(pts, r.dash)
	c.scatter(pts)
	return strings.Join(c.lines(r.glyph, r.lineColor, edges), "\n")
}

func (r *Renderer) title(name, limits string, width int) string {
	if width <= 0 {
		return ""
	}
	text := tickfmt.Truncate(name+"  "+limits, width)
	if len(name) >= len(text) {
		return plotTitleStyle.Render(text)
	}
	return plotTitleStyle.Render(name) + plotRangeStyle.Render(text[len(name):])
}

func (r *Renderer) sidePanel() string {
	p := r.layout.Panel
	if p.Empty() {
		return ""
	}
	inner := p.W - 3 // padding + border
	palette := r.store.Palette()
	active := palette.Lookup(r.state.ActiveColor)
	swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(string(active)))

	var lines []string
	lines = append(lines,
		swatch.Render(fmt.Sprintf("Color: %d", r.state.ActiveColor))+" "+swatch.Render("██"),
		readoutLabelStyle.Render("Brush: ")+readoutValueStyle.Render(tickfmt.Fraction(r.state.Brush.Fraction)),
		"",
		sectionStyle.Render("Commands:"),
	)
	for _, l := range engine.Legend {
		lines = append(lines, legendKeyStyle.Render(l.Key)+" "+legendDescStyle.Render(l.Desc))
	}

	lines = append(lines, "", sectionStyle.Render("Labels:"))
	counts := r.store.Counts()
	total := r.store.Len()
	for slot, n := range counts {
		if n == 0 {
			continue
		}
		lines = append(lines, renderCountBar(slot, n, total, inner-9, palette[slot]))
	}

	if len(lines) > p.H {
		lines = lines[:p.H]
	}
	return panelStyle.Width(p.W - 1).Height(p.H).Render(strings.Join(lines, "\n"))
}

// renderCountBar draws "3 ████░░ 42%" for one palette slot.
func renderCountBar(slot, count, total, barWidth int, color labels.Color) string {
	if total == 0 || barWidth < 1 {
		return fmt.Sprintf("%d %d", slot, count)
	}
	pct := count * 100 / total
	filled := barWidth * count / total
	if filled < 1 && count > 0 {
		filled = 1
	}
	bar := lipgloss.NewStyle().Foreground(lipgloss.Color(string(color))).Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", barWidth-filled))
	return fmt.Sprintf("%d %s %3d%%", slot, bar, pct)
}

func joinBlock(title, frame string) string {
	if frame == "" {
		return title
	}
	return title + "\n" + frame
}

