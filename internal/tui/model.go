package tui

import (
	"fmt"
	"log"
	"time"

	"github.com/Mr-Dark-debug/timecluster/internal/config"
	"github.com/Mr-Dark-debug/timecluster/internal/dataset"
	"github.com/Mr-Dark-debug/timecluster/internal/engine"
	"github.com/Mr-Dark-debug/timecluster/internal/geometry"
	"github.com/Mr-Dark-debug/timecluster/internal/labels"
	"github.com/Mr-Dark-debug/timecluster/internal/render"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Navigation steps for the embedding view.
const (
	panStep    = 0.1
	zoomFactor = 1.25
)

// ────────────────────────────────────────────────────────────
// Model
// ────────────────────────────────────────────────────────────

// Model is the root BubbleTea model of a labeling session. Input is
// translated into engine events; the renderer is repainted only when
// the engine asks for it or the view is navigated or resized.
type Model struct {
	points   *dataset.PointSet
	engine   *engine.Engine
	renderer *render.Renderer
	embed    *render.Viewport
	figSize  [2]float64

	clicks    clickTracker
	threshold time.Duration
	now       func() time.Time

	width  int
	height int

	// Status
	statusMsg string
}

// NewModel creates a session over points using cfg.
func NewModel(points *dataset.PointSet, cfg config.Config) (Model, error) {
	palette, err := cfg.PaletteColors()
	if err != nil {
		return Model{}, err
	}
	store := labels.NewStore(points.Len(), palette)
	eng := engine.New(points, store, cfg.InitialState())
	embed := render.NewViewport(points.EmbedCoords())

	r, err := render.New(points, store, embed, cfg.RenderOptions())
	if err != nil {
		return Model{}, fmt.Errorf("creating renderer: %w", err)
	}
	r.UpdateAxes(eng.State())

	return Model{
		points:    points,
		engine:    eng,
		renderer:  r,
		embed:     embed,
		figSize:   points.FigSize(),
		threshold: cfg.DoubleClick,
		now:       time.Now,
		statusMsg: fmt.Sprintf("%d points", points.Len()),
	}, nil
}

// LabelMask returns the labels assigned so far.
func (m Model) LabelMask() []int { return m.engine.Store().Mask() }

// State returns the current brush state.
func (m Model) State() engine.State { return m.engine.State() }

// ────────────────────────────────────────────────────────────
// Init / Update
// ────────────────────────────────────────────────────────────

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.renderer.Resize(render.NewLayout(m.width, m.height, m.figSize))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

// handleKey handles quitting and view navigation, then hands every
// other key to the engine.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// ── Global ──

	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	}

	// ── Navigation ──

	if m.navigate(key) {
		m.renderer.Repaint()
		return m, nil
	}

	// ── Labeling commands ──

	m.dispatch(engine.KeyEvent{Key: key})
	return m, nil
}

// navigate pans or zooms the embedding view. It reports whether key was
// a navigation key.
func (m Model) navigate(key string) bool {
	switch key {
	case "left":
		m.embed.Pan(-panStep, 0)
	case "right":
		m.embed.Pan(panStep, 0)
	case "up":
		m.embed.Pan(0, panStep)
	case "down":
		m.embed.Pan(0, -panStep)
	case "+", "=":
		m.embed.Zoom(zoomFactor, m.embed.Limits().Center())
	case "-":
		m.embed.Zoom(1/zoomFactor, m.embed.Limits().Center())
	case "0":
		m.embed.Reset()
	default:
		return false
	}
	return true
}

// handleMouse turns presses into pointer events. The wheel zooms the
// embedding view around the cursor.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	layout := m.renderer.Layout()
	onEmbed := layout.Embed.Contains(msg.X, msg.Y)

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		if !onEmbed || msg.Action != tea.MouseActionPress {
			return m, nil
		}
		factor := zoomFactor
		if msg.Button == tea.MouseButtonWheelDown {
			factor = 1 / zoomFactor
		}
		m.embed.Zoom(factor, m.cellData(layout.Embed, msg.X, msg.Y))
		m.renderer.Repaint()
		return m, nil
	}

	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	ev := engine.PointerEvent{
		DoubleClick: m.clicks.press(m.now(), msg.X, msg.Y, msg.Button, m.threshold),
		Button:      buttonOf(msg.Button),
		Target:      engine.SurfaceNone,
		Limits:      m.embed.Limits(),
	}
	if onEmbed {
		p := m.cellData(layout.Embed, msg.X, msg.Y)
		ev.Target = engine.SurfaceEmbedding
		ev.Data = &p
	} else if layout.Time.Contains(msg.X, msg.Y) {
		ev.Target = engine.SurfaceTime
	}

	m.dispatch(ev)
	return m, nil
}

// dispatch sends ev to the engine and redraws when asked to.
func (m *Model) dispatch(ev engine.Event) {
	out := m.engine.Handle(ev)
	if !out.Redraw {
		return
	}
	st := m.engine.State()
	if out.Reset {
		log.Printf("labels reset")
		m.statusMsg = "labels cleared"
	} else if _, ok := ev.(engine.PointerEvent); ok {
		m.statusMsg = fmt.Sprintf("labeled %d points with color %d", out.Labeled, st.ActiveColor)
		log.Print(m.statusMsg)
	}
	m.renderer.UpdateAxes(st)
}

func (m Model) cellData(area render.CellRect, x, y int) geometry.Point {
	return m.embed.CellToData(x-area.X, y-area.Y, area.W, area.H)
}

func buttonOf(b tea.MouseButton) engine.Button {
	switch b {
	case tea.MouseButtonLeft:
		return engine.ButtonPrimary
	case tea.MouseButtonMiddle:
		return engine.ButtonMiddle
	case tea.MouseButtonRight:
		return engine.ButtonSecondary
	default:
		return engine.ButtonNone
	}
}

// ────────────────────────────────────────────────────────────
// View
// ────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	header := renderHeader(&m)
	footer := renderFooter(&m)

	plots := lipgloss.JoinVertical(lipgloss.Left,
		m.renderer.TimeView(),
		m.renderer.EmbedView(),
	)
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderer.SidePanel(), plots)
	body = lipgloss.NewStyle().Height(m.height - 2).MaxHeight(m.height - 2).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
