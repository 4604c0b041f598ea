// Package tui is the interactive demo: a scrolling column of controls that
// respond to taps without getting in the way of scrolling.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/elevate/internal/banner"
	"github.com/alexisbeaulieu97/elevate/internal/config"
	"github.com/alexisbeaulieu97/elevate/internal/logger"
	"github.com/alexisbeaulieu97/elevate/internal/touch"
	"github.com/alexisbeaulieu97/elevate/internal/tui/components"
	"github.com/alexisbeaulieu97/elevate/internal/tui/scroll"
)

const (
	headerHeight = 4
	footerHeight = 3
	eventLimit   = 50
)

// board collects what touch callbacks produce during an Update. Callbacks
// run synchronously inside the dispatcher, so commands are queued here and
// returned once dispatch finishes.
type board struct {
	tallies map[string]*components.Tally
	order   []string
	events  *components.EventLog
	pending []tea.Cmd
}

func (b *board) record(c *control, outcome touch.Outcome, distance float64) {
	b.tallies[c.id].Record(outcome)
	b.events.Add(components.Event{Control: c.label, Outcome: outcome, Distance: distance})
}

func (b *board) tallyList() []components.Tally {
	out := make([]components.Tally, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, *b.tallies[id])
	}
	return out
}

func (b *board) drain() tea.Cmd {
	pending := b.pending
	b.pending = nil
	switch len(pending) {
	case 0:
		return nil
	case 1:
		return pending[0]
	}
	return tea.Batch(pending...)
}

// Model is the demo's bubbletea model.
type Model struct {
	cfg      *config.Config
	log      *logger.Logger
	scroll   *scroll.Container
	banner   *banner.Controller
	controls []*control
	board    *board

	width  int
	height int
}

// NewModel builds the demo from configuration.
func NewModel(cfg *config.Config, log *logger.Logger) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	log = log.Component("tui")

	m := Model{
		cfg: cfg,
		log: log,
		scroll: scroll.New(80, 24-headerHeight-footerHeight, scroll.Options{
			CellWidth:  cfg.Touch.CellWidth,
			CellHeight: cfg.Touch.CellHeight,
			ScrollSlop: cfg.Touch.ScrollSlop,
			Gap:        1,
			Logger:     log,
		}),
		banner:   banner.New(bannerOptions(cfg, log)),
		controls: catalog(),
		board: &board{
			tallies: map[string]*components.Tally{},
			events:  components.NewEventLog(eventLimit),
		},
		width:  80,
		height: 24,
	}

	for _, c := range m.controls {
		m.register(c)
	}
	m.scroll.Add(scroll.Item{ID: "activity", Render: m.renderActivity})
	m.layout()
	return m
}

func bannerOptions(cfg *config.Config, log *logger.Logger) banner.Options {
	duration := cfg.Banner.Duration
	if duration == 0 {
		// Zero in the file means banners stay until dismissed.
		duration = -1
	}
	return banner.Options{
		Duration:      duration,
		SwipeDistance: cfg.Banner.SwipeDistance,
		Threshold:     cfg.Touch.Threshold,
		CellWidth:     cfg.Touch.CellWidth,
		CellHeight:    cfg.Touch.CellHeight,
		ReduceMotion:  cfg.Banner.ReduceMotion,
		Logger:        log,
	}
}

// register wires a control's touch adapter and adds it to the scroll
// container.
func (m *Model) register(c *control) {
	b := m.board
	b.tallies[c.id] = &components.Tally{Label: c.label}
	b.order = append(b.order, c.id)

	item := scroll.Item{ID: c.id, Render: c.render}
	if !c.disabled() {
		c.adapter = touch.NewAdapter(touch.AdapterOptions{
			Threshold:        m.cfg.Touch.Threshold,
			OnPressedChanged: c.setPressed,
			OnTap: func(r touch.Release) {
				b.record(c, touch.OutcomeFired, r.Distance)
				b.pending = append(b.pending, banner.Show(c.tapped()))
			},
			OnSuppressed: func(r touch.Release) {
				b.record(c, touch.OutcomeSuppressed, r.Distance)
			},
			OnCancelled: func() {
				b.record(c, touch.OutcomeCancelled, 0)
			},
			Logger: m.log.WithFields(map[string]any{"control": c.id}),
		})
		c.reg = c.adapter.Registration()
		c.reg.Exclusive = c.exclusive()
		item.Participant = c.adapter
		item.Registration = c.reg
	}
	m.scroll.Add(item)
}

// layout sizes the scroll container and banner to the window.
func (m *Model) layout() {
	bodyHeight := max(1, m.height-headerHeight-footerHeight)
	m.scroll.SetSize(m.width, bodyHeight)
	m.scroll.SetOrigin(0, headerHeight)
	m.banner.SetWidth(max(10, m.width-2))
	m.banner.SetOrigin(1, headerHeight)
}

// Init shows the welcome banner.
func (m Model) Init() tea.Cmd {
	return banner.Show(banner.Item{
		Message: "Click a control to tap it. Drag or use the wheel to scroll.",
		Icon:    "☝",
	})
}

// Tallies returns the per-control outcome counts in display order.
func (m Model) Tallies() []components.Tally {
	return m.board.tallyList()
}

// Events returns the recent touch outcomes, newest last.
func (m Model) Events() []components.Event {
	return m.board.events.Entries()
}
