package components

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/elevate/internal/touch"
)

// Tally counts the outcomes seen by one control.
type Tally struct {
	Label      string
	Fired      int
	Suppressed int
	Cancelled  int
}

// Record adds an outcome. OutcomeNone is ignored.
func (t *Tally) Record(o touch.Outcome) {
	switch o {
	case touch.OutcomeFired:
		t.Fired++
	case touch.OutcomeSuppressed:
		t.Suppressed++
	case touch.OutcomeCancelled:
		t.Cancelled++
	}
}

// Total is the number of finished touches.
func (t Tally) Total() int {
	return t.Fired + t.Suppressed + t.Cancelled
}

// SummaryData aggregates tallies for rendering.
type SummaryData struct {
	Tallies []Tally
}

// Summary renders one line per control that has seen a touch.
type Summary struct {
	data SummaryData
}

// NewSummary creates a new Summary component.
func NewSummary(data SummaryData) Summary {
	return Summary{data: data}
}

// Totals sums every tally.
func (s Summary) Totals() Tally {
	total := Tally{Label: "all"}
	for _, t := range s.data.Tallies {
		total.Fired += t.Fired
		total.Suppressed += t.Suppressed
		total.Cancelled += t.Cancelled
	}
	return total
}

// View renders the summary.
func (s Summary) View() string {
	width := 0
	for _, t := range s.data.Tallies {
		if t.Total() > 0 && len(t.Label) > width {
			width = len(t.Label)
		}
	}

	var lines []string
	for _, t := range s.data.Tallies {
		if t.Total() == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("%-*s  %s %d  %s %d  %s %d",
			width, t.Label,
			OutcomeIcon(touch.OutcomeFired), t.Fired,
			OutcomeIcon(touch.OutcomeSuppressed), t.Suppressed,
			OutcomeIcon(touch.OutcomeCancelled), t.Cancelled))
	}
	return strings.Join(lines, "\n")
}

// OutcomeIcon returns the glyph for a session outcome.
func OutcomeIcon(o touch.Outcome) string {
	switch o {
	case touch.OutcomeFired:
		return "✓"
	case touch.OutcomeSuppressed:
		return "↕"
	case touch.OutcomeCancelled:
		return "⊘"
	default:
		return "·"
	}
}
