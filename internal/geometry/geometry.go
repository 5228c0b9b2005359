// Package geometry implements brush hit-testing for the embedding view.
//
// The brush is an axis-aligned ellipse whose semi-axes are a fraction of
// the currently visible axis extents, so it keeps the same on-screen
// proportions no matter how differently the two axes are scaled.
package geometry

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// Point is a 2-D coordinate in data units.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned range of data coordinates, typically the
// visible limits of a view.
type Rect struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the vertical extent of r.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// HalfWidth and HalfHeight return half the extents of r. Unlike Width
// and Height they stay finite for any finite r.
func (r Rect) HalfWidth() float64  { return r.MaxX/2 - r.MinX/2 }
func (r Rect) HalfHeight() float64 { return r.MaxY/2 - r.MinY/2 }

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{X: r.MinX/2 + r.MaxX/2, Y: r.MinY/2 + r.MaxY/2}
}

// Finite reports whether every edge of r is a finite number.
func (r Rect) Finite() bool {
	for _, v := range [4]float64{r.MinX, r.MaxX, r.MinY, r.MaxY} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}

// Lerp returns the point at fractions (fx, fy) of r, measured from
// MinX and MinY.
func (r Rect) Lerp(fx, fy float64) Point {
	return Point{
		X: r.MinX*(1-fx) + r.MaxX*fx,
		Y: r.MinY*(1-fy) + r.MaxY*fy,
	}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// Degenerate reports whether r has no area.
func (r Rect) Degenerate() bool {
	return !(r.Width() > 0) || !(r.Height() > 0)
}

// Bounds returns the smallest Rect containing every point. An empty
// slice yields the zero Rect.
func Bounds(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := Rect{MinX: pts[0].X, MaxX: pts[0].X, MinY: pts[0].Y, MaxY: pts[0].Y}
	for _, p := range pts[1:] {
		r.MinX = math.Min(r.MinX, p.X)
		r.MaxX = math.Max(r.MaxX, p.X)
		r.MinY = math.Min(r.MinY, p.Y)
		r.MaxY = math.Max(r.MaxY, p.Y)
	}
	return r
}

// Pad grows r by frac of its extent on every side. A flat axis is
// widened by 0.5 in each direction so it can still be drawn. Edges are
// clamped to the finite float64 range.
func (r Rect) Pad(frac float64) Rect {
	padAxis := func(lo, hi float64) (float64, float64) {
		if !(hi > lo) {
			return clampFinite(lo - 0.5), clampFinite(hi + 0.5)
		}
		d := 2 * (hi/2 - lo/2) * frac
		return clampFinite(lo - d), clampFinite(hi + d)
	}
	r.MinX, r.MaxX = padAxis(r.MinX, r.MaxX)
	r.MinY, r.MaxY = padAxis(r.MinY, r.MaxY)
	return r
}

func clampFinite(v float64) float64 {
	return math.Max(-math.MaxFloat64, math.Min(v, math.MaxFloat64))
}

// PointsInBrush returns the indices of pts that fall inside the ellipse
// centred at center with semi-axes (rx, ry). A non-positive radius
// selects nothing.
func PointsInBrush(center Point, rx, ry float64, pts []Point) *roaring.Bitmap {
	hits := roaring.New()
	if !(rx > 0) || !(ry > 0) {
		return hits
	}
	for i, p := range pts {
		dx := (p.X - center.X) / rx
		dy := (p.Y - center.Y) / ry
		if dx*dx+dy*dy <= 1 {
			hits.Add(uint32(i))
		}
	}
	return hits
}
