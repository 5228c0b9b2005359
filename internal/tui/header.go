package tui

import (
	"fmt"
	"strings"

	"github.com/Mr-Dark-debug/timecluster/internal/labels"
	"github.com/Mr-Dark-debug/timecluster/pkg/tickfmt"
	"github.com/charmbracelet/lipgloss"
)

// renderHeader produces the top bar:
//
//	TIMECLUSTER  |  997 points  |  412 labeled
func renderHeader(m *Model) string {
	brand := headerBrandStyle.Render("TIMECLUSTER")
	sep := headerSepStyle.Render(" │ ")

	counts := m.engine.Store().Counts()
	labeled := m.points.Len() - counts[0]

	parts := []string{
		brand,
		sep,
		headerMetaStyle.Render(fmt.Sprintf("%d points", m.points.Len())),
		sep,
		headerMetaStyle.Render(fmt.Sprintf("%d labeled", labeled)),
		sep,
		headerMetaStyle.Render(fmt.Sprintf("%d colors", labels.PaletteSize)),
	}

	return headerBarStyle.Width(m.width).MaxWidth(m.width).Render(strings.Join(parts, ""))
}

// renderFooter produces the bottom status bar with keyboard hints.
func renderFooter(m *Model) string {
	var left string
	if m.statusMsg != "" {
		left = statusStyle.Render(tickfmt.Truncate(m.statusMsg, m.width/2))
	}
	right := renderHints([]hint{
		{"2×click", "label"},
		{"←↑↓→", "pan"},
		{"+/-", "zoom"},
		{"0", "home"},
		{"q", "quit"},
	})

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return lipgloss.NewStyle().
		Background(colorBgSurface).
		Width(m.width).
		MaxWidth(m.width).
		Render(bar)
}

type hint struct {
	key  string
	desc string
}

func renderHints(hints []hint) string {
	var parts []string
	for _, h := range hints {
		parts = append(parts,
			hintKeyStyle.Render(h.key)+" "+hintDescStyle.Render(h.desc))
	}
	return strings.Join(parts, hintDescStyle.Render("  "))
}
