// Package scroll hosts touch participants inside a vertically scrolling
// bubbletea viewport and arbitrates between taps and scrolls.
//
// Mouse events are delivered to the participant under the pointer in the
// same Update call that received them, unless the participant registered
// with DelaysTouches. A vertical drag past the scroll slop, a wheel event or
// a keyboard scroll during a touch hands the gesture to the container: the
// participant is told OnTouchCancelled and the viewport follows the pointer.
package scroll

import (
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/elevate/internal/logger"
	"github.com/alexisbeaulieu97/elevate/internal/touch"
)

// Defaults for Options.
const (
	DefaultCellWidth  = 8.0
	DefaultCellHeight = 16.0
	DefaultScrollSlop = 16.0
	DefaultWheelDelta = 3
)

// Options configures a Container.
type Options struct {
	// CellWidth and CellHeight convert terminal cells into touch units.
	CellWidth  float64
	CellHeight float64
	// ScrollSlop is the vertical travel, in touch units, after which a drag
	// becomes a scroll.
	ScrollSlop float64
	WheelDelta int
	// Gap is the number of blank rows between items.
	Gap    int
	Logger *logger.Logger
}

func (o Options) withDefaults() Options {
	if o.CellWidth <= 0 {
		o.CellWidth = DefaultCellWidth
	}
	if o.CellHeight <= 0 {
		o.CellHeight = DefaultCellHeight
	}
	if o.ScrollSlop <= 0 {
		o.ScrollSlop = DefaultScrollSlop
	}
	if o.WheelDelta <= 0 {
		o.WheelDelta = DefaultWheelDelta
	}
	if o.Gap < 0 {
		o.Gap = 0
	}
	return o
}

// Item is one row-block of the container.
type Item struct {
	ID           string
	Participant  touch.Participant
	Registration touch.Registration
	// Render draws the item at the given width.
	Render func(width int) string
}

type span struct {
	top, height int
}

// gesture is the container's view of the touch in flight.
type gesture struct {
	item        int
	startX      int
	startY      int
	startRow    int
	startOffset int
	lastY       int
	// delivered is true while the participant owns an open session.
	delivered bool
	claimed   bool
}

// Container is a scrollable column of touch participants.
type Container struct {
	opts  Options
	log   *logger.Logger
	vp    viewport.Model
	items []Item
	spans []span

	originX, originY int
	gesture          *gesture
}

// New creates an empty container of the given size.
func New(width, height int, opts Options) *Container {
	opts = opts.withDefaults()
	vp := viewport.New(width, height)
	vp.MouseWheelEnabled = false
	return &Container{
		opts: opts,
		log:  opts.Logger.Component("scroll"),
		vp:   vp,
	}
}

// Add appends an item.
func (c *Container) Add(item Item) {
	c.items = append(c.items, item)
	c.layout()
}

// Items returns the hosted items.
func (c *Container) Items() []Item {
	return c.items
}

// SetSize resizes the visible area.
func (c *Container) SetSize(width, height int) {
	c.vp.Width = width
	c.vp.Height = height
	c.layout()
}

// SetOrigin places the container's top-left corner on screen so mouse
// coordinates can be translated.
func (c *Container) SetOrigin(x, y int) {
	c.originX, c.originY = x, y
}

func (c *Container) Width() int  { return c.vp.Width }
func (c *Container) Height() int { return c.vp.Height }

// YOffset is the first visible content row.
func (c *Container) YOffset() int {
	return c.vp.YOffset
}

// ContentHeight is the total number of content rows.
func (c *Container) ContentHeight() int {
	if len(c.spans) == 0 {
		return 0
	}
	last := c.spans[len(c.spans)-1]
	return last.top + last.height
}

// ScrollTo moves the viewport, clamped to the content.
func (c *Container) ScrollTo(row int) {
	c.layout()
	c.vp.SetYOffset(row)
}

// Tracking reports whether a touch is in flight and whether the container
// has claimed it as a scroll.
func (c *Container) Tracking() (active, claimed bool) {
	if c.gesture == nil {
		return false, false
	}
	return true, c.gesture.claimed
}

// ItemAt returns the index of the item under a screen position, or -1.
func (c *Container) ItemAt(x, y int) int {
	lx, ly := x-c.originX, y-c.originY
	if lx < 0 || ly < 0 || lx >= c.vp.Width || ly >= c.vp.Height {
		return -1
	}
	row := ly + c.vp.YOffset
	for i, s := range c.spans {
		if row >= s.top && row < s.top+s.height {
			return i
		}
	}
	return -1
}

// HandleMouse routes a mouse event. It reports whether the container
// consumed the event.
func (c *Container) HandleMouse(msg tea.MouseMsg) bool {
	switch {
	case msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown:
		return c.handleWheel(msg)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		return c.handlePress(msg)
	case msg.Action == tea.MouseActionMotion:
		return c.handleMotion(msg)
	case msg.Action == tea.MouseActionRelease:
		return c.handleRelease(msg)
	}
	return false
}

// HandleKey forwards scrolling keys to the viewport. A keyboard scroll during
// a touch claims the gesture; during an exclusive touch the keys are
// swallowed and the viewport stays put.
func (c *Container) HandleKey(msg tea.KeyMsg) tea.Cmd {
	if c.exclusive() {
		return nil
	}
	before := c.vp.YOffset
	var cmd tea.Cmd
	c.vp, cmd = c.vp.Update(msg)
	if c.vp.YOffset != before && c.gesture != nil {
		c.claim("keyboard")
		c.reanchor()
	}
	return cmd
}

// Cancel ends any touch in flight as a cancellation.
func (c *Container) Cancel() {
	if c.gesture == nil {
		return
	}
	c.claim("cancel")
	c.gesture = nil
}

func (c *Container) handlePress(msg tea.MouseMsg) bool {
	if c.gesture != nil {
		// The release of the previous touch was lost.
		c.Cancel()
	}
	c.layout()
	index := c.ItemAt(msg.X, msg.Y)
	if index < 0 && !c.contains(msg.X, msg.Y) {
		return false
	}

	g := &gesture{
		item:        index,
		startX:      msg.X,
		startY:      msg.Y,
		startRow:    msg.Y - c.originY + c.vp.YOffset,
		startOffset: c.vp.YOffset,
		lastY:       msg.Y,
	}
	c.gesture = g

	if index < 0 {
		return true
	}
	item := c.items[index]
	if item.Participant != nil && !item.Registration.DelaysTouches {
		g.delivered = item.Participant.OnTouchDown(c.local(index, msg.X, g.startRow))
	}
	return true
}

func (c *Container) handleMotion(msg tea.MouseMsg) bool {
	g := c.gesture
	if g == nil {
		return false
	}
	g.lastY = msg.Y

	travel := float64(msg.Y-g.startY) * c.opts.CellHeight
	if !g.claimed && !c.exclusive() && math.Abs(travel) >= c.opts.ScrollSlop {
		c.claim("drag")
	}

	if g.claimed {
		c.vp.SetYOffset(g.startOffset - (msg.Y - g.startY))
		return true
	}
	if g.delivered {
		row := msg.Y - c.originY + c.vp.YOffset
		c.items[g.item].Participant.OnTouchMoved(c.local(g.item, msg.X, row))
	}
	return true
}

func (c *Container) handleRelease(msg tea.MouseMsg) bool {
	g := c.gesture
	if g == nil {
		return false
	}
	c.gesture = nil
	if g.claimed || g.item < 0 {
		return true
	}

	item := c.items[g.item]
	row := msg.Y - c.originY + c.vp.YOffset
	end := c.local(g.item, msg.X, row)
	switch {
	case g.delivered:
		item.Participant.OnTouchUp(end)
	case item.Participant != nil && item.Registration.DelaysTouches:
		// Nothing claimed the touch, so the held-back press is delivered now.
		if item.Participant.OnTouchDown(c.local(g.item, g.startX, g.startRow)) {
			item.Participant.OnTouchUp(end)
		}
	}
	return true
}

func (c *Container) handleWheel(msg tea.MouseMsg) bool {
	if c.gesture == nil && !c.contains(msg.X, msg.Y) {
		return false
	}
	if c.gesture != nil {
		if c.exclusive() {
			return true
		}
		c.claim("wheel")
	}

	delta := c.opts.WheelDelta
	if msg.Button == tea.MouseButtonWheelUp {
		delta = -delta
	}
	c.vp.SetYOffset(c.vp.YOffset + delta)
	if c.gesture != nil {
		c.reanchor()
	}
	return true
}

// reanchor makes the current offset and pointer row the reference for
// further drag scrolling, so a drag continues from where a wheel or key
// scroll left the viewport.
func (c *Container) reanchor() {
	c.gesture.startOffset = c.vp.YOffset
	c.gesture.startY = c.gesture.lastY
}

// claim hands the gesture to the container.
func (c *Container) claim(reason string) {
	g := c.gesture
	if g == nil || g.claimed {
		return
	}
	g.claimed = true
	if g.delivered {
		g.delivered = false
		c.items[g.item].Participant.OnTouchCancelled()
	}
	c.log.WithFields(map[string]any{"reason": reason, "item": c.itemID(g.item)}).Debug("scroll claimed touch")
}

func (c *Container) exclusive() bool {
	g := c.gesture
	return g != nil && g.item >= 0 && c.items[g.item].Registration.Exclusive
}

func (c *Container) contains(x, y int) bool {
	lx, ly := x-c.originX, y-c.originY
	return lx >= 0 && ly >= 0 && lx < c.vp.Width && ly < c.vp.Height
}

// local converts a screen column and content row into item-local touch units.
func (c *Container) local(index, x, row int) touch.Point {
	s := c.spans[index]
	return touch.Pt(
		float64(x-c.originX)*c.opts.CellWidth,
		float64(row-s.top)*c.opts.CellHeight,
	)
}

func (c *Container) itemID(index int) string {
	if index < 0 || index >= len(c.items) {
		return ""
	}
	return c.items[index].ID
}

// layout renders every item and records where each one starts.
func (c *Container) layout() string {
	c.spans = c.spans[:0]
	var b strings.Builder
	row := 0
	for i, item := range c.items {
		if i > 0 && c.opts.Gap > 0 {
			b.WriteString(strings.Repeat("\n", c.opts.Gap))
			row += c.opts.Gap
		}
		var rendered string
		if item.Render != nil {
			rendered = item.Render(c.vp.Width)
		}
		height := strings.Count(rendered, "\n") + 1
		c.spans = append(c.spans, span{top: row, height: height})
		b.WriteString(rendered)
		if i < len(c.items)-1 {
			b.WriteString("\n")
		}
		row += height
	}
	content := b.String()
	c.vp.SetContent(content)
	return content
}

// View renders the visible window.
func (c *Container) View() string {
	c.layout()
	return c.vp.View()
}
