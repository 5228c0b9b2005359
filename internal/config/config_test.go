package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Mr-Dark-debug/timecluster/internal/labels"
	"github.com/Mr-Dark-debug/timecluster/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "timecluster.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	p, err := cfg.PaletteColors()
	require.NoError(t, err)
	assert.Equal(t, labels.DefaultPalette, p)

	st := cfg.InitialState()
	assert.Equal(t, 1, st.ActiveColor)
	assert.Equal(t, 0.1, st.Brush.Fraction)
	assert.Equal(t, [2]float64{16, 9}, cfg.FigSizePair())
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
line:
  dash: "--"
  color: C7
  alpha: 0.5
marker:
  shape: s
  fill: none
figsize: [4, 3]
double_click: 250ms
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, render.LineStyle{Dash: "--", Color: "C7", Alpha: 0.5}, cfg.Line)
	assert.Equal(t, "s", cfg.Marker.Shape)
	assert.Equal(t, [2]float64{4, 3}, cfg.FigSizePair())
	assert.Equal(t, 250*time.Millisecond, cfg.DoubleClick)
	assert.Equal(t, 1, cfg.InitialColor)
	assert.Len(t, cfg.Palette, labels.PaletteSize)
}

func TestLoadRejectsBadPalette(t *testing.T) {
	path := writeConfig(t, `palette: ["#000000", "#ffffff"]`)
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidPalette)

	cfg := DefaultConfig()
	cfg.Palette[3] = "red"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidPalette)

	cfg = DefaultConfig()
	cfg.Palette[0] = "#zzzzzz"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidPalette)
	_, err = cfg.PaletteColors()
	assert.ErrorIs(t, err, ErrInvalidPalette)

	cfg.Palette[0] = "#1F77B4"
	assert.NoError(t, cfg.Validate())
}

func TestValidateRejectsBadSettings(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Line.Dash = "-."
	assert.ErrorIs(t, cfg.Validate(), render.ErrInvalidStyle)

	cfg = DefaultConfig()
	cfg.FigSize = []float64{16}
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg = DefaultConfig()
	cfg.InitialBrush = 0.5
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg = DefaultConfig()
	cfg.DoubleClick = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "line: [unclosed"))
	assert.Error(t, err)
}

func TestInitialStateNormalizesColor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InitialColor = -3
	assert.Equal(t, 7, cfg.InitialState().ActiveColor)
}
