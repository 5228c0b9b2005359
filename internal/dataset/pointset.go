// Package dataset builds the immutable Point Set a labeling session runs
// on: a time-domain series and its 2-D embedding, paired index by index.
package dataset

import (
	"errors"
	"fmt"

	"github.com/Mr-Dark-debug/timecluster/internal/geometry"
)

// ErrShapeMismatch is returned when the time series and the reduced data
// do not have the same N×2 shape.
var ErrShapeMismatch = errors.New("shape mismatch")

// DefaultFigSize is the nominal figure size (width, height).
var DefaultFigSize = [2]float64{16, 9}

// PointSet pairs every time-domain coordinate with its embedding
// coordinate. It is never modified after construction.
type PointSet struct {
	time    []geometry.Point
	embed   []geometry.Point
	figSize [2]float64
}

// Option configures a PointSet.
type Option func(*PointSet)

// WithFigSize overrides the nominal figure size.
func WithFigSize(w, h float64) Option {
	return func(ps *PointSet) { ps.figSize = [2]float64{w, h} }
}

// New builds a PointSet from two N×2 arrays. The time series is ordered
// as (time, value); the reduced data column order is arbitrary.
func New(timeSeries, reduced [][]float64, opts ...Option) (*PointSet, error) {
	ts, tsErr := shapeOf(timeSeries)
	rd, rdErr := shapeOf(reduced)
	if tsErr != nil || rdErr != nil || ts != rd {
		return nil, fmt.Errorf("%w: time_series and reduced_data must have the same dimensions, not %s and %s",
			ErrShapeMismatch, ts, rd)
	}
	if ts.rows > 0 && ts.cols != 2 {
		return nil, fmt.Errorf("%w: expected N×2 arrays, got %s", ErrShapeMismatch, ts)
	}

	ps := &PointSet{
		time:    toPoints(timeSeries),
		embed:   toPoints(reduced),
		figSize: DefaultFigSize,
	}
	for _, opt := range opts {
		opt(ps)
	}
	return ps, nil
}

// Len returns the number of points.
func (ps *PointSet) Len() int { return len(ps.time) }

// TimeCoords returns the (time, value) coordinates. Read-only.
func (ps *PointSet) TimeCoords() []geometry.Point { return ps.time }

// EmbedCoords returns the embedding coordinates. Read-only.
func (ps *PointSet) EmbedCoords() []geometry.Point { return ps.embed }

// FigSize returns the nominal figure size (width, height).
func (ps *PointSet) FigSize() [2]float64 { return ps.figSize }

type shape struct{ rows, cols int }

func (s shape) String() string { return fmt.Sprintf("(%d, %d)", s.rows, s.cols) }

// shapeOf reports the array shape; ragged rows are rejected.
func shapeOf(a [][]float64) (shape, error) {
	s := shape{rows: len(a)}
	if len(a) == 0 {
		return s, nil
	}
	s.cols = len(a[0])
	for i, row := range a {
		if len(row) != s.cols {
			return s, fmt.Errorf("row %d has %d columns, want %d", i, len(row), s.cols)
		}
	}
	return s, nil
}

func toPoints(a [][]float64) []geometry.Point {
	pts := make([]geometry.Point, len(a))
	for i, row := range a {
		pts[i] = geometry.Point{X: row[0], Y: row[1]}
	}
	return pts
}
