package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	ui "github.com/alexisbeaulieu97/elevate/internal/components"
	"github.com/alexisbeaulieu97/elevate/internal/touch"
	"github.com/alexisbeaulieu97/elevate/internal/tui/components"
)

// View renders the current state of the model.
func (m Model) View() string {
	st := newStyles(ui.GetTheme())
	body := overlay(m.scroll.View(), m.banner.View())
	return lipgloss.JoinVertical(lipgloss.Left, m.header(st), body, m.footer(st))
}

func (m Model) header(st styles) string {
	clip := lipgloss.NewStyle().MaxWidth(m.width)
	lines := []string{
		st.title.Render("ELEVATE • tap or scroll"),
		fmt.Sprintf("threshold %g units · cell %g×%g · scroll slop %g",
			m.cfg.Touch.Threshold, m.cfg.Touch.CellWidth, m.cfg.Touch.CellHeight, m.cfg.Touch.ScrollSlop),
		st.hint.Render("click taps · drag or wheel scrolls · swipe a banner up to dismiss · esc · q quits"),
		st.divider.Render(strings.Repeat("─", max(0, m.width))),
	}
	for i, line := range lines {
		lines[i] = clip.Render(line)
	}
	return strings.Join(lines, "\n")
}

func (m Model) footer(st styles) string {
	last := st.hint.Render("no touches yet")
	if e, ok := m.board.events.Last(); ok {
		last = outcomeStyle(st, e.Outcome).Render(e.String())
	}

	totals := components.NewSummary(components.SummaryData{Tallies: m.board.tallyList()}).Totals()
	counts := fmt.Sprintf("%s %d  %s %d  %s %d",
		st.fired.Render(components.OutcomeIcon(touch.OutcomeFired)), totals.Fired,
		st.suppressed.Render(components.OutcomeIcon(touch.OutcomeSuppressed)), totals.Suppressed,
		st.cancelled.Render(components.OutcomeIcon(touch.OutcomeCancelled)), totals.Cancelled)

	return strings.Join([]string{
		st.divider.Render(strings.Repeat("─", max(0, m.width))),
		last,
		counts,
	}, "\n")
}

// renderActivity is the last item of the list: per-control tallies.
func (m Model) renderActivity(width int) string {
	st := newStyles(ui.GetTheme())
	summary := components.NewSummary(components.SummaryData{Tallies: m.board.tallyList()}).View()
	if summary == "" {
		summary = st.hint.Render("Touch a control to see its outcomes here.")
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(
		lipgloss.JoinVertical(lipgloss.Left, st.section.Render("Activity"), summary),
	)
}

func outcomeStyle(st styles, o touch.Outcome) lipgloss.Style {
	switch o {
	case touch.OutcomeFired:
		return st.fired
	case touch.OutcomeSuppressed:
		return st.suppressed
	default:
		return st.cancelled
	}
}

// overlay draws the banner over the top rows of body, indented one column.
func overlay(body, banner string) string {
	if banner == "" {
		return body
	}
	lines := strings.Split(body, "\n")
	for i, line := range strings.Split(banner, "\n") {
		if i >= len(lines) {
			break
		}
		lines[i] = " " + line
	}
	return strings.Join(lines, "\n")
}
