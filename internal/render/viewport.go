package render

import "github.com/Mr-Dark-debug/timecluster/internal/geometry"

// homePad is the margin added around the data bounds.
const homePad = 0.05

// Viewport tracks the visible data limits of a view.
type Viewport struct {
	home   geometry.Rect
	limits geometry.Rect
}

// NewViewport frames pts with a small margin.
func NewViewport(pts []geometry.Point) *Viewport {
	home := geometry.Bounds(pts).Pad(homePad)
	return &Viewport{home: home, limits: home}
}

// Limits returns the currently visible limits.
func (v *Viewport) Limits() geometry.Rect { return v.limits }

// Home returns the initial limits.
func (v *Viewport) Home() geometry.Rect { return v.home }

// Reset restores the initial limits.
func (v *Viewport) Reset() { v.limits = v.home }

// Pan shifts the limits by fx, fy times the visible extent. A move that
// would leave the finite float64 range is dropped.
func (v *Viewport) Pan(fx, fy float64) {
	dx := 2 * v.limits.HalfWidth() * fx
	dy := 2 * v.limits.HalfHeight() * fy
	l := v.limits
	v.set(geometry.Rect{MinX: l.MinX + dx, MaxX: l.MaxX + dx, MinY: l.MinY + dy, MaxY: l.MaxY + dy})
}

// Zoom scales the limits by 1/factor, keeping about fixed on screen.
// factor > 1 zooms in.
func (v *Viewport) Zoom(factor float64, about geometry.Point) {
	if !(factor > 0) {
		return
	}
	l := v.limits
	v.set(geometry.Rect{
		MinX: about.X - 2*((about.X/2-l.MinX/2)/factor),
		MaxX: about.X + 2*((l.MaxX/2-about.X/2)/factor),
		MinY: about.Y - 2*((about.Y/2-l.MinY/2)/factor),
		MaxY: about.Y + 2*((l.MaxY/2-about.Y/2)/factor),
	})
}

func (v *Viewport) set(r geometry.Rect) {
	if r.Finite() {
		v.limits = r
	}
}

// CellToData maps the centre of cell (cx, cy) of a w×h cell plot to data
// coordinates. Row 0 is the top of the plot.
func (v *Viewport) CellToData(cx, cy, w, h int) geometry.Point {
	return v.limits.Lerp(
		(float64(cx)+0.5)/float64(w),
		1-(float64(cy)+0.5)/float64(h),
	)
}
