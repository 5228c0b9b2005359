package dataset

import (
	"fmt"
	"math"
	"os"

	"github.com/Mr-Dark-debug/timecluster/pkg/jsonutil"
)

// File is the on-disk JSON layout accepted by Load.
type File struct {
	TimeSeries  [][]float64 `json:"time_series"`
	ReducedData [][]float64 `json:"reduced_data"`
	FigSize     []float64   `json:"figsize,omitempty"`
}

// Load reads a PointSet from a JSON file. A figsize stored in the file
// takes precedence over opts.
func Load(path string, opts ...Option) (*PointSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading point file: %w", err)
	}

	var f File
	if err := jsonutil.UnmarshalStrict(data, &f); err != nil {
		return nil, fmt.Errorf("parsing point file %s: %w", path, err)
	}

	if len(f.FigSize) == 2 {
		opts = append(opts, WithFigSize(f.FigSize[0], f.FigSize[1]))
	}
	return New(f.TimeSeries, f.ReducedData, opts...)
}

// Demo generates a chirped sine wave over [0, 40π] and a 2-D embedding
// of its sliding windows. Each window is reduced to its whitened first
// and second differences. Point i pairs the window starting at i with
// the sample that follows it.
func Demo(numPoints, window int, opts ...Option) (*PointSet, error) {
	if window < 3 {
		window = 3
	}
	if numPoints <= window {
		return nil, fmt.Errorf("demo needs more than %d points, got %d", window, numPoints)
	}

	ts := make([]float64, numPoints)
	xs := make([]float64, numPoints)
	for i := range ts {
		ts[i] = 40 * math.Pi * float64(i) / float64(numPoints-1)
		xs[i] = math.Sin(ts[i] / (1 + ts[i]/250))
	}

	n := numPoints - window
	timeSeries := make([][]float64, n)
	reduced := make([][]float64, n)
	for i := 0; i < n; i++ {
		w := xs[i : i+window]
		first := w[window-1] - w[0]
		second := w[0] - 2*w[window/2] + w[window-1]
		reduced[i] = []float64{first, second}
		timeSeries[i] = []float64{ts[i+window], xs[i+window]}
	}
	whiten(reduced)

	return New(timeSeries, reduced, opts...)
}

// whiten scales every column to zero mean and unit variance in place.
func whiten(rows [][]float64) {
	for c := 0; c < 2; c++ {
		var mean float64
		for _, r := range rows {
			mean += r[c]
		}
		mean /= float64(len(rows))

		var variance float64
		for _, r := range rows {
			d := r[c] - mean
			variance += d * d
		}
		std := math.Sqrt(variance / float64(len(rows)))
		for _, r := range rows {
			r[c] -= mean
			if std > 0 {
				r[c] /= std
			}
		}
	}
}
