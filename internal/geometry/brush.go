package geometry

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// Brush size bounds, as fractions of the visible extent per axis.
const (
	MinBrushFraction     = 0.05
	MaxBrushFraction     = 0.2
	DefaultBrushFraction = 0.1
)

// Brush holds the relative size of the selection ellipse.
type Brush struct {
	Fraction float64
}

// NewBrush returns a brush with fraction clamped to the allowed range.
func NewBrush(fraction float64) Brush {
	return Brush{Fraction: clampFraction(fraction)}
}

// Grow doubles the brush size.
func (b Brush) Grow() Brush { return NewBrush(b.Fraction * 2) }

// Shrink halves the brush size.
func (b Brush) Shrink() Brush { return NewBrush(b.Fraction / 2) }

// Radii returns the ellipse semi-axes for the given visible limits.
// They are recomputed on every use, so panning or zooming the view
// changes the brush size in data units.
func (b Brush) Radii(view Rect) (rx, ry float64) {
	return view.HalfWidth() * b.Fraction, view.HalfHeight() * b.Fraction
}

// Select returns the indices of pts inside the brush centred at center.
func (b Brush) Select(center Point, view Rect, pts []Point) *roaring.Bitmap {
	rx, ry := b.Radii(view)
	return PointsInBrush(center, rx, ry, pts)
}

func clampFraction(f float64) float64 {
	if math.IsNaN(f) {
		return DefaultBrushFraction
	}
	return math.Min(math.Max(f, MinBrushFraction), MaxBrushFraction)
}
