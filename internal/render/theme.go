package render

import "github.com/charmbracelet/lipgloss"

// ────────────────────────────────────────────────────────────
// Chrome colors (GitHub Dark). Label colors come from the palette.
// ────────────────────────────────────────────────────────────

var (
	colorBg        = lipgloss.Color("#0d1117")
	colorText      = lipgloss.Color("#e6edf3")
	colorTextDim   = lipgloss.Color("#8b949e")
	colorTextMuted = lipgloss.Color("#484f58")
	colorBlue      = lipgloss.Color("#58a6ff")
	colorDivider   = lipgloss.Color("#30363d")
)

// Plot titles
var (
	plotTitleStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	plotRangeStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)
)

// Side panel
var (
	panelStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.Border{Right: "│"}, false, true, false, false).
			BorderForeground(colorDivider)

	readoutLabelStyle = lipgloss.NewStyle().
				Foreground(colorBlue)

	readoutValueStyle = lipgloss.NewStyle().
				Foreground(colorText)

	sectionStyle = lipgloss.NewStyle().
			Foreground(colorTextDim).
			Bold(true)

	legendKeyStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	legendDescStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)

	barEmptyStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)
)
