// Package banner presents transient notifications at the top of a bubbletea
// program.
//
// A Controller is owned by the enclosing model and driven entirely through
// messages: Show and Dismiss return commands, timers come back as messages,
// and Update applies them. Timers carry the generation they were scheduled
// for, so a timer that outlives its banner does nothing.
package banner

import (
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/elevate/internal/components"
	"github.com/alexisbeaulieu97/elevate/internal/logger"
	"github.com/alexisbeaulieu97/elevate/internal/touch"
)

const (
	DefaultDuration      = 5 * time.Second
	DefaultSwipeDistance = 50.0

	// clearDelay keeps the dismissed item around while it slides out.
	clearDelay    = 300 * time.Millisecond
	progressEvery = 100 * time.Millisecond
	fps           = 60
)

var (
	// Spring responses of 0.4s in and 0.3s out, both at 0.8 damping.
	showSpring    = harmonica.NewSpring(harmonica.FPS(fps), 2*math.Pi/0.4, 0.8)
	dismissSpring = harmonica.NewSpring(harmonica.FPS(fps), 2*math.Pi/0.3, 0.8)
)

// Item is one notification.
type Item struct {
	Message string
	Tone    components.NotificationTone
	// Icon overrides the tone's glyph.
	Icon string
	// Duration before auto-dismissal. Zero uses the controller default;
	// negative keeps the banner until it is dismissed.
	Duration time.Duration
	// OnClose runs once when this item is dismissed. It does not run when a
	// newer item replaces this one.
	OnClose func()
}

// ShowMsg asks the controller to present an item.
type ShowMsg struct {
	Item Item
}

// DismissMsg asks the controller to hide the current item.
type DismissMsg struct{}

type expireMsg struct{ gen int }

type clearMsg struct{ gen int }

type frameMsg struct{}

// Show returns a command that presents item.
func Show(item Item) tea.Cmd {
	return func() tea.Msg { return ShowMsg{Item: item} }
}

// Dismiss returns a command that hides the current item.
func Dismiss() tea.Cmd {
	return func() tea.Msg { return DismissMsg{} }
}

// Options configures a Controller.
type Options struct {
	// Duration is the default auto-dismiss delay. Negative disables
	// auto-dismissal for items that do not set their own.
	Duration time.Duration
	// SwipeDistance is the upward travel, in touch units, that dismisses.
	SwipeDistance float64
	// Threshold is the tap threshold for tap-to-dismiss.
	Threshold  float64
	CellWidth  float64
	CellHeight float64
	// ReduceMotion snaps the banner in and out instead of animating.
	ReduceMotion bool
	Logger       *logger.Logger
	// Now is the clock used for the timer bar.
	Now func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Duration == 0 {
		o.Duration = DefaultDuration
	}
	if o.SwipeDistance <= 0 {
		o.SwipeDistance = DefaultSwipeDistance
	}
	if o.CellWidth <= 0 {
		o.CellWidth = 8
	}
	if o.CellHeight <= 0 {
		o.CellHeight = 16
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// Controller owns the banner state.
type Controller struct {
	opts Options
	log  *logger.Logger

	item      *Item
	presented bool
	gen       int
	shownAt   time.Time
	duration  time.Duration

	pos, vel float64
	ticking  bool

	adapter  *touch.Adapter
	dragging bool
	startRow int
	dragRows int
	tapped   bool

	width            int
	originX, originY int
}

// New creates a hidden controller.
func New(opts Options) *Controller {
	opts = opts.withDefaults()
	c := &Controller{
		opts:  opts,
		log:   opts.Logger.Component("banner"),
		width: 60,
	}
	c.adapter = touch.NewAdapter(touch.AdapterOptions{
		Threshold: opts.Threshold,
		OnTap:     func(touch.Release) { c.tapped = true },
		Logger:    c.log,
	})
	return c
}

// Presented reports whether a banner is showing or sliding in.
func (c *Controller) Presented() bool {
	return c.presented
}

// Current returns the item being shown or sliding out.
func (c *Controller) Current() (Item, bool) {
	if c.item == nil {
		return Item{}, false
	}
	return *c.item, true
}

// Position is the slide-in progress, 0 hidden to 1 fully shown.
func (c *Controller) Position() float64 {
	return c.pos
}

// SetWidth sets the rendered width.
func (c *Controller) SetWidth(width int) {
	c.width = width
}

// SetOrigin places the banner's top-left corner on screen.
func (c *Controller) SetOrigin(x, y int) {
	c.originX, c.originY = x, y
}

// Update applies a banner message. Messages that are not for the banner are
// ignored.
func (c *Controller) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case ShowMsg:
		return c.present(msg.Item)
	case DismissMsg:
		return c.dismiss()
	case expireMsg:
		if msg.gen != c.gen || !c.presented {
			return nil
		}
		c.log.Debug("banner expired")
		return c.dismiss()
	case clearMsg:
		if msg.gen == c.gen && !c.presented {
			c.item = nil
		}
		return nil
	case frameMsg:
		c.ticking = false
		c.step()
		return c.tick()
	}
	return nil
}

func (c *Controller) present(item Item) tea.Cmd {
	// A touch that began on the previous item must not act on this one.
	c.CancelTouch()
	c.gen++
	c.item = &item
	c.shownAt = c.opts.Now()
	c.duration = item.Duration
	if c.duration == 0 {
		c.duration = c.opts.Duration
	}

	replaced := c.presented
	c.presented = true
	if c.opts.ReduceMotion {
		c.pos, c.vel = 1, 0
	}
	c.log.WithFields(map[string]any{
		"tone":     item.Tone.String(),
		"replaced": replaced,
	}).Debug("banner shown")

	cmds := []tea.Cmd{c.tick()}
	if c.duration > 0 {
		gen := c.gen
		cmds = append(cmds, tea.Tick(c.duration, func(time.Time) tea.Msg { return expireMsg{gen: gen} }))
	}
	return tea.Batch(cmds...)
}

func (c *Controller) dismiss() tea.Cmd {
	if !c.presented {
		return nil
	}
	c.CancelTouch()
	c.gen++
	c.presented = false
	if c.opts.ReduceMotion {
		c.pos, c.vel = 0, 0
	}
	if c.item != nil && c.item.OnClose != nil {
		c.item.OnClose()
	}
	c.log.Debug("banner dismissed")

	gen := c.gen
	return tea.Batch(
		c.tick(),
		tea.Tick(clearDelay, func(time.Time) tea.Msg { return clearMsg{gen: gen} }),
	)
}

func (c *Controller) target() float64 {
	if c.presented {
		return 1
	}
	return 0
}

// step advances the spring by one frame.
func (c *Controller) step() {
	spring := showSpring
	if !c.presented {
		spring = dismissSpring
	}
	target := c.target()
	c.pos, c.vel = spring.Update(c.pos, c.vel, target)
	if math.Abs(c.pos-target) < 1e-3 && math.Abs(c.vel) < 1e-3 {
		c.pos, c.vel = target, 0
	}
}

func (c *Controller) settled() bool {
	return c.pos == c.target() && c.vel == 0
}

// tick schedules the next frame while the spring moves or the timer bar
// runs. At most one frame is in flight.
func (c *Controller) tick() tea.Cmd {
	if c.ticking {
		return nil
	}
	var every time.Duration
	switch {
	case !c.settled():
		every = time.Second / fps
	case c.presented && c.duration > 0:
		every = progressEvery
	default:
		return nil
	}
	c.ticking = true
	return tea.Tick(every, func(time.Time) tea.Msg { return frameMsg{} })
}

// Progress is the remaining share of the auto-dismiss timer, or -1 when the
// banner has none.
func (c *Controller) Progress() float64 {
	if c.item == nil || c.duration <= 0 {
		return -1
	}
	if !c.presented {
		return 0
	}
	elapsed := c.opts.Now().Sub(c.shownAt)
	remaining := 1 - float64(elapsed)/float64(c.duration)
	return math.Max(0, math.Min(1, remaining))
}

func (c *Controller) render() []string {
	if c.item == nil {
		return nil
	}
	n := components.NewNotification(c.item.Message, components.NotificationOptions{
		Tone:     c.item.Tone,
		Icon:     c.item.Icon,
		Progress: c.Progress(),
	})
	return strings.Split(n.View(c.width), "\n")
}

// Height is the number of rows the banner currently occupies.
func (c *Controller) Height() int {
	return len(c.visible())
}

func (c *Controller) visible() []string {
	lines := c.render()
	rows := int(math.Round(c.pos*float64(len(lines)))) - c.dragRows
	if rows <= 0 {
		return nil
	}
	if rows > len(lines) {
		rows = len(lines)
	}
	// Slide from the top edge: the bottom of the banner appears first.
	return lines[len(lines)-rows:]
}

// View renders the visible part of the banner.
func (c *Controller) View() string {
	lines := c.visible()
	if len(lines) == 0 {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// HandleMouse handles pointer input over the banner and reports whether the
// event was consumed. Once a press lands on the banner the rest of that
// touch belongs to it, even above its top edge, so a swipe can travel over
// whatever the banner overlays.
func (c *Controller) HandleMouse(msg tea.MouseMsg) (bool, tea.Cmd) {
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		x, y := msg.X-c.originX, msg.Y-c.originY
		if !c.presented || x < 0 || y < 0 || x >= c.width || y >= c.Height() {
			return false, nil
		}
		c.dragging = true
		c.startRow = msg.Y
		c.dragRows = 0
		c.tapped = false
		c.adapter.OnTouchDown(c.point(msg))
		return true, nil

	case msg.Action == tea.MouseActionMotion:
		if !c.dragging {
			return false, nil
		}
		// Only upward travel moves the banner.
		c.dragRows = max(0, c.startRow-msg.Y)
		c.adapter.OnTouchMoved(c.point(msg))
		return true, nil

	case msg.Action == tea.MouseActionRelease:
		if !c.dragging {
			return false, nil
		}
		c.dragging = false
		c.dragRows = 0
		c.adapter.OnTouchUp(c.point(msg))

		travel := float64(c.startRow-msg.Y) * c.opts.CellHeight
		if c.tapped || travel > c.opts.SwipeDistance {
			c.log.WithFields(map[string]any{"tap": c.tapped, "travel": travel}).Debug("banner dismissed by touch")
			return true, c.dismiss()
		}
		return true, nil
	}
	return false, nil
}

// CancelTouch abandons a touch on the banner without dismissing it.
func (c *Controller) CancelTouch() {
	if !c.dragging {
		return
	}
	c.dragging = false
	c.dragRows = 0
	c.adapter.OnTouchCancelled()
}

func (c *Controller) point(msg tea.MouseMsg) touch.Point {
	return touch.Pt(
		float64(msg.X-c.originX)*c.opts.CellWidth,
		float64(msg.Y-c.originY)*c.opts.CellHeight,
	)
}
