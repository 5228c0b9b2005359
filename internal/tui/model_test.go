package tui

import (
	"math"
	"testing"
	"time"

	"github.com/Mr-Dark-debug/timecluster/internal/config"
	"github.com/Mr-Dark-debug/timecluster/internal/dataset"
	"github.com/Mr-Dark-debug/timecluster/internal/geometry"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock advances only when told to.
type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

// Embedding points: two tight clusters in opposite corners.
var testEmbed = [][]float64{
	{0, 0}, {9, 9}, {0.2, 0.1}, {9.1, 9.2}, {8.9, 9.1},
}

func newTestModel(t *testing.T) (Model, *fakeClock) {
	t.Helper()
	ts := make([][]float64, len(testEmbed))
	for i := range ts {
		ts[i] = []float64{float64(i), math.Sin(float64(i))}
	}
	ps, err := dataset.New(ts, testEmbed)
	require.NoError(t, err)

	m, err := NewModel(ps, config.DefaultConfig())
	require.NoError(t, err)

	clock := &fakeClock{t: time.Unix(1000, 0)}
	m.now = clock.now

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(Model), clock
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(x, y int, b tea.MouseButton) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: b}
}

// screenCell returns the terminal cell showing data point p in the
// embedding view.
func screenCell(m Model, p geometry.Point) (int, int) {
	area := m.renderer.Layout().Embed
	l := m.embed.Limits()
	cx := int((p.X - l.MinX) / l.Width() * float64(area.W))
	cy := int((l.MaxY - p.Y) / l.Height() * float64(area.H))
	return area.X + cx, area.Y + cy
}

func doubleClickAt(t *testing.T, m Model, clock *fakeClock, x, y int) Model {
	t.Helper()
	m = send(t, m, press(x, y, tea.MouseButtonLeft))
	clock.advance(100 * time.Millisecond)
	m = send(t, m, press(x, y, tea.MouseButtonLeft))
	clock.advance(time.Second)
	return m
}

func TestNewModelStartsUnlabeled(t *testing.T) {
	m, _ := newTestModel(t)

	assert.Equal(t, []int{0, 0, 0, 0, 0}, m.LabelMask())
	assert.Equal(t, 1, m.State().ActiveColor)
	assert.Equal(t, 0.1, m.State().Brush.Fraction)
}

func TestDoubleClickLabelsCluster(t *testing.T) {
	m, clock := newTestModel(t)
	x, y := screenCell(m, geometry.Point{X: 0.1, Y: 0.05})

	m = doubleClickAt(t, m, clock, x, y)

	assert.Equal(t, []int{1, 0, 1, 0, 0}, m.LabelMask())
	assert.Contains(t, m.statusMsg, "labeled 2 points")
}

func TestSingleClickDoesNothing(t *testing.T) {
	m, clock := newTestModel(t)
	x, y := screenCell(m, geometry.Point{X: 0, Y: 0})
	before := m.renderer.Repaints()

	m = send(t, m, press(x, y, tea.MouseButtonLeft))
	clock.advance(time.Second)
	m = send(t, m, press(x, y, tea.MouseButtonLeft))

	assert.Equal(t, []int{0, 0, 0, 0, 0}, m.LabelMask())
	assert.Equal(t, before, m.renderer.Repaints())
}

func TestDoubleClickNeedsSameCellAndButton(t *testing.T) {
	m, clock := newTestModel(t)
	x, y := screenCell(m, geometry.Point{X: 0, Y: 0})

	m = send(t, m, press(x, y, tea.MouseButtonLeft))
	m = send(t, m, press(x+1, y, tea.MouseButtonLeft))
	clock.advance(time.Second)

	m = send(t, m, press(x, y, tea.MouseButtonRight))
	m = send(t, m, press(x, y, tea.MouseButtonRight))

	assert.Equal(t, []int{0, 0, 0, 0, 0}, m.LabelMask())
}

func TestDoubleClickOutsideEmbeddingIgnored(t *testing.T) {
	m, clock := newTestModel(t)
	l := m.renderer.Layout()

	m = doubleClickAt(t, m, clock, 2, 5)                 // side panel
	m = doubleClickAt(t, m, clock, l.Time.X+3, l.Time.Y) // time view
	m = doubleClickAt(t, m, clock, l.Embed.X+3, 0)       // header

	assert.Equal(t, []int{0, 0, 0, 0, 0}, m.LabelMask())
	assert.Equal(t, 1, m.State().ActiveColor)
}

func TestTripleClickIsOneDoubleClick(t *testing.T) {
	var c clickTracker
	now := time.Unix(0, 0)
	assert.False(t, c.press(now, 1, 1, tea.MouseButtonLeft, time.Second))
	assert.True(t, c.press(now.Add(10*time.Millisecond), 1, 1, tea.MouseButtonLeft, time.Second))
	assert.False(t, c.press(now.Add(20*time.Millisecond), 1, 1, tea.MouseButtonLeft, time.Second))
}

func TestKeysDriveBrushState(t *testing.T) {
	m, _ := newTestModel(t)

	m = send(t, m, key("n"))
	m = send(t, m, key("n"))
	assert.Equal(t, 3, m.State().ActiveColor)

	m = send(t, m, key("m"))
	assert.Equal(t, 2, m.State().ActiveColor)

	m = send(t, m, key(","))
	assert.Equal(t, 0.2, m.State().Brush.Fraction)

	m = send(t, m, key("."))
	m = send(t, m, key("."))
	assert.Equal(t, 0.05, m.State().Brush.Fraction)
	assert.Contains(t, m.View(), "Brush: 0.05")
}

func TestUnknownKeyDoesNotRepaint(t *testing.T) {
	m, _ := newTestModel(t)
	before := m.renderer.Repaints()

	m = send(t, m, key("x"))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, before, m.renderer.Repaints())
	assert.Equal(t, 1, m.State().ActiveColor)
}

func TestNavigationMovesEmbeddingView(t *testing.T) {
	m, _ := newTestModel(t)
	home := m.embed.Limits()
	before := m.renderer.Repaints()

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Greater(t, m.embed.Limits().MinX, home.MinX)
	assert.Equal(t, before+1, m.renderer.Repaints())

	m = send(t, m, key("+"))
	assert.Less(t, m.embed.Limits().Width(), home.Width())

	m = send(t, m, key("0"))
	assert.Equal(t, home, m.embed.Limits())

	l := m.renderer.Layout().Embed
	m = send(t, m, press(l.X+1, l.Y+1, tea.MouseButtonWheelUp))
	assert.Less(t, m.embed.Limits().Width(), home.Width())

	assert.Equal(t, 1, m.State().ActiveColor)
	assert.Equal(t, []int{0, 0, 0, 0, 0}, m.LabelMask())
}

// TestZoomShrinksBrushInDataUnits shows that the brush follows the
// visible limits: after zooming in, the same click reaches fewer points.
func TestZoomShrinksBrushInDataUnits(t *testing.T) {
	plain, clock := newTestModel(t)
	x, y := screenCell(plain, geometry.Point{X: 9, Y: 9})
	plain = doubleClickAt(t, plain, clock, x, y)
	assert.Equal(t, []int{0, 1, 0, 1, 1}, plain.LabelMask())

	zoomed, clock := newTestModel(t)
	for i := 0; i < 8; i++ {
		zoomed = send(t, zoomed, press(x, y, tea.MouseButtonWheelUp))
	}
	zoomed = doubleClickAt(t, zoomed, clock, x, y)
	assert.Equal(t, []int{0, 0, 0, 0, 0}, zoomed.LabelMask())
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)
	for _, msg := range []tea.KeyMsg{key("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(msg)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestView(t *testing.T) {
	m, _ := newTestModel(t)
	v := m.View()

	assert.Contains(t, v, "TIMECLUSTER")
	assert.Contains(t, v, "5 points")
	assert.Contains(t, v, "Color: 1")
	assert.Contains(t, v, "Embedding")

	fresh, err := NewModel(m.points, config.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, "Initializing...", fresh.View())
}

// TestSessionScenario replays: color up, label a cluster, grow the
// brush, label the other cluster, clear.
func TestSessionScenario(t *testing.T) {
	m, clock := newTestModel(t)

	m = send(t, m, key("n"))
	x, y := screenCell(m, geometry.Point{X: 0.1, Y: 0.05})
	m = doubleClickAt(t, m, clock, x, y)
	require.Equal(t, []int{2, 0, 2, 0, 0}, m.LabelMask())

	m = send(t, m, key(","))
	x, y = screenCell(m, geometry.Point{X: 9, Y: 9.1})
	m = doubleClickAt(t, m, clock, x, y)
	require.Equal(t, []int{2, 2, 2, 2, 2}, m.LabelMask())
	assert.Contains(t, m.View(), "5 labeled")

	m = send(t, m, key("b"))
	assert.Equal(t, []int{0, 0, 0, 0, 0}, m.LabelMask())
	assert.Equal(t, 2, m.State().ActiveColor)
	assert.Equal(t, "labels cleared", m.statusMsg)
}
