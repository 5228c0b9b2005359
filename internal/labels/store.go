// Package labels holds per-point label assignments and the edge colors
// derived from them.
//
// The Store owns both arrays. Renderers read EdgeColors directly so
// every view paints from the same slice.
package labels

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// PaletteSize is the number of distinct display colors. Labels are
// displayed modulo this value.
const PaletteSize = 10

// Color is a display color token, normally "#rrggbb".
type Color string

// Palette is the fixed, ordered set of label colors.
type Palette [PaletteSize]Color

// DefaultPalette matches the matplotlib "tab10" cycle (C0..C9).
var DefaultPalette = Palette{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// Index normalizes a label to a palette slot in [0, PaletteSize).
func Index(label int) int {
	return ((label % PaletteSize) + PaletteSize) % PaletteSize
}

// Lookup returns the color shown for label.
func (p Palette) Lookup(label int) Color { return p[Index(label)] }

// Base returns the color of unlabeled points.
func (p Palette) Base() Color { return p[0] }

// Store holds the label mask and edge color assignment for N points.
type Store struct {
	palette Palette
	mask    []int
	edges   []Color
}

// NewStore creates a store for n unlabeled points.
func NewStore(n int, palette Palette) *Store {
	s := &Store{
		palette: palette,
		mask:    make([]int, n),
		edges:   make([]Color, n),
	}
	s.fillBase()
	return s
}

// Len returns the number of points.
func (s *Store) Len() int { return len(s.mask) }

// Palette returns the store's palette.
func (s *Store) Palette() Palette { return s.palette }

// Assign labels every index in hits with color. Only the touched edge
// colors are recomputed.
func (s *Store) Assign(hits *roaring.Bitmap, color int) {
	if hits == nil {
		return
	}
	c := s.palette.Lookup(color)
	n := uint32(len(s.mask))
	hits.Iterate(func(i uint32) bool {
		if i >= n {
			return false
		}
		s.mask[i] = color
		s.edges[i] = c
		return true
	})
}

// Reset clears every label and restores the base edge color.
func (s *Store) Reset() {
	for i := range s.mask {
		s.mask[i] = 0
	}
	s.fillBase()
}

func (s *Store) fillBase() {
	base := s.palette.Base()
	for i := range s.edges {
		s.edges[i] = base
	}
}

// Mask returns a copy of the label mask.
func (s *Store) Mask() []int {
	out := make([]int, len(s.mask))
	copy(out, s.mask)
	return out
}

// Label returns the label of point i.
func (s *Store) Label(i int) int { return s.mask[i] }

// EdgeColors returns the shared edge color slice. Callers must treat it
// as read-only.
func (s *Store) EdgeColors() []Color { return s.edges }

// Counts returns how many points fall in each palette slot.
func (s *Store) Counts() [PaletteSize]int {
	var counts [PaletteSize]int
	for _, l := range s.mask {
		counts[Index(l)]++
	}
	return counts
}
