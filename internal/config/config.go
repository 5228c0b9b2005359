// Package config holds the display and interaction settings of a
// labeling session. Defaults can be overlaid from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/Mr-Dark-debug/timecluster/internal/dataset"
	"github.com/Mr-Dark-debug/timecluster/internal/engine"
	"github.com/Mr-Dark-debug/timecluster/internal/geometry"
	"github.com/Mr-Dark-debug/timecluster/internal/labels"
	"github.com/Mr-Dark-debug/timecluster/internal/render"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidPalette is returned when the palette does not have
	// exactly labels.PaletteSize valid colors.
	ErrInvalidPalette = errors.New("invalid palette")
	// ErrInvalidConfig covers every other out-of-range setting.
	ErrInvalidConfig = errors.New("invalid config")
)

// Config holds configuration for a labeling session.
type Config struct {
	// Palette lists the ten label colors, "#rrggbb".
	Palette []string `yaml:"palette"`

	// Line and Marker style both views.
	Line   render.LineStyle   `yaml:"line"`
	Marker render.MarkerStyle `yaml:"marker"`

	// FigSize is the nominal (width, height) of the figure. Only its
	// aspect ratio matters in a terminal.
	FigSize []float64 `yaml:"figsize"`

	// InitialColor and InitialBrush seed the brush state.
	InitialColor int     `yaml:"initial_color"`
	InitialBrush float64 `yaml:"initial_brush"`

	// DoubleClick is the longest gap between two presses on the same
	// cell that still counts as a double-click.
	DoubleClick time.Duration `yaml:"double_click"`
}

// DefaultConfig returns the stock settings.
func DefaultConfig() Config {
	palette := make([]string, labels.PaletteSize)
	for i, c := range labels.DefaultPalette {
		palette[i] = string(c)
	}
	return Config{
		Palette:      palette,
		Line:         render.DefaultLineStyle(),
		Marker:       render.DefaultMarkerStyle(),
		FigSize:      []float64{dataset.DefaultFigSize[0], dataset.DefaultFigSize[1]},
		InitialColor: 1,
		InitialBrush: geometry.DefaultBrushFraction,
		DoubleClick:  400 * time.Millisecond,
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every setting.
func (c Config) Validate() error {
	palette, err := c.PaletteColors()
	if err != nil {
		return err
	}
	if err := c.Line.Validate(palette); err != nil {
		return err
	}
	if err := c.Marker.Validate(palette); err != nil {
		return err
	}
	if len(c.FigSize) != 2 || !(c.FigSize[0] > 0) || !(c.FigSize[1] > 0) {
		return fmt.Errorf("%w: figsize must be two positive numbers, got %v", ErrInvalidConfig, c.FigSize)
	}
	if c.InitialBrush < geometry.MinBrushFraction || c.InitialBrush > geometry.MaxBrushFraction {
		return fmt.Errorf("%w: initial_brush %v outside [%v, %v]", ErrInvalidConfig,
			c.InitialBrush, geometry.MinBrushFraction, geometry.MaxBrushFraction)
	}
	if c.DoubleClick <= 0 {
		return fmt.Errorf("%w: double_click must be positive", ErrInvalidConfig)
	}
	return nil
}

// PaletteColors converts the configured palette.
func (c Config) PaletteColors() (labels.Palette, error) {
	var p labels.Palette
	if len(c.Palette) != labels.PaletteSize {
		return p, fmt.Errorf("%w: need %d colors, got %d", ErrInvalidPalette, labels.PaletteSize, len(c.Palette))
	}
	for i, s := range c.Palette {
		if len(s) != 7 || s[0] != '#' {
			return p, fmt.Errorf("%w: color %d %q is not #rrggbb", ErrInvalidPalette, i, s)
		}
		if _, err := colorful.Hex(s); err != nil {
			return p, fmt.Errorf("%w: color %d %q: %v", ErrInvalidPalette, i, s, err)
		}
		p[i] = labels.Color(s)
	}
	return p, nil
}

// FigSizePair returns FigSize as an array.
func (c Config) FigSizePair() [2]float64 {
	if len(c.FigSize) != 2 {
		return dataset.DefaultFigSize
	}
	return [2]float64{c.FigSize[0], c.FigSize[1]}
}

// InitialState returns the brush state a session starts in.
func (c Config) InitialState() engine.State {
	return engine.State{
		ActiveColor: labels.Index(c.InitialColor),
		Brush:       geometry.NewBrush(c.InitialBrush),
	}
}

// RenderOptions returns the renderer settings.
func (c Config) RenderOptions() render.Options {
	return render.Options{Line: c.Line, Marker: c.Marker}
}
