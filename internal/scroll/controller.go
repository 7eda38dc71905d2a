// Package scroll tracks the position of a navigable viewport and exposes
// the previous/next affordances of the timeline view.
package scroll

import (
	"errors"
	"math"
	"sync"

	"github.com/goliatone/go-folio/internal/logging"
	"github.com/goliatone/go-folio/internal/timeline"
	"github.com/goliatone/go-folio/pkg/interfaces"
)

// Source is the viewport a controller reads metrics from and moves.
type Source = interfaces.Viewport

const (
	DefaultTolerance = 10
	DefaultStepRatio = 0.8
)

// ErrClosed is returned when starting a controller that was already closed.
var ErrClosed = errors.New("scroll: controller closed")

// Direction of an advance command.
type Direction int

const (
	Prev Direction = iota
	Next
)

func (d Direction) String() string {
	if d == Next {
		return "next"
	}
	return "prev"
}

// Anchor selects where the viewport is placed when the controller starts.
type Anchor int

const (
	// AnchorEnd starts at the maximal extent, where the newest items sit on
	// a reversed timeline.
	AnchorEnd Anchor = iota
	AnchorStart
)

// Options configure a Controller. Zero values select the defaults.
type Options struct {
	Axis      timeline.Axis
	Tolerance float64
	StepRatio float64
	Anchor    Anchor
	Logger    interfaces.Logger
}

// State is a snapshot of the controller.
type State struct {
	Position      float64 `json:"position" yaml:"position"`
	Progress      float64 `json:"progress" yaml:"progress"`
	CanScrollPrev bool    `json:"canScrollPrev" yaml:"canScrollPrev"`
	CanScrollNext bool    `json:"canScrollNext" yaml:"canScrollNext"`
}

// Controller is safe for concurrent use. Listeners run on the goroutine
// that triggered the change, after the controller lock is released.
type Controller struct {
	source Source
	opts   Options
	logger interfaces.Logger

	mu          sync.Mutex
	state       State
	listeners   []func(State)
	unsubscribe func()
	started     bool
	closed      bool
}

// New builds a controller over source. It does not touch the source until
// Start is called.
func New(source Source, opts Options) *Controller {
	if opts.Tolerance <= 0 {
		opts.Tolerance = DefaultTolerance
	}
	if opts.StepRatio <= 0 {
		opts.StepRatio = DefaultStepRatio
	}
	if opts.Axis == "" {
		opts.Axis = timeline.Horizontal
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Controller{
		source: source,
		opts:   opts,
		logger: logging.WithFields(logger, map[string]any{"axis": string(opts.Axis)}),
		state:  State{CanScrollNext: true},
	}
}

// Start places the viewport at the configured anchor, subscribes to
// position changes and computes the first state. Calling Start twice is a
// no-op.
func (c *Controller) Start() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.started {
		c.mu.Unlock()
		return nil
	}
	c.started = true
	c.mu.Unlock()

	if c.opts.Anchor == AnchorEnd {
		c.source.ScrollTo(c.source.ScrollExtent())
	}
	unsubscribe := c.source.Subscribe(func() { c.Recompute() })

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		unsubscribe()
		return ErrClosed
	}
	c.unsubscribe = unsubscribe
	c.mu.Unlock()

	state := c.Recompute()
	c.logger.Debug("scroll.controller.started", "position", state.Position, "progress", state.Progress)
	return nil
}

// Close releases the source subscription. It is safe to call more than once.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	unsubscribe := c.unsubscribe
	c.unsubscribe = nil
	c.listeners = nil
	c.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	c.logger.Debug("scroll.controller.closed")
}

// Recompute reads the source metrics and refreshes the state. A closed
// controller returns its last state without reading the source.
func (c *Controller) Recompute() State {
	if c.isClosed() {
		return c.State()
	}
	next := compute(c.source.Position(), c.source.ScrollExtent(), c.opts.Tolerance)

	c.mu.Lock()
	changed := next != c.state
	c.state = next
	listeners := append([]func(State){}, c.listeners...)
	c.mu.Unlock()

	if changed {
		for _, fn := range listeners {
			fn(next)
		}
	}
	return next
}

// Advance moves the viewport by one step in dir, clamped to the scrollable
// range, and returns the resulting state. After Close the viewport is left
// alone and the last state is returned.
func (c *Controller) Advance(dir Direction) State {
	if c.isClosed() {
		return c.State()
	}
	position := math.Abs(c.source.Position())
	extent := math.Max(c.source.ScrollExtent(), 0)
	step := c.opts.StepRatio * c.source.ViewportExtent()

	target := position + step
	if dir == Prev {
		target = position - step
	}
	target = clamp(target, 0, extent)

	c.source.ScrollTo(target)
	c.logger.Debug("scroll.controller.advanced", "direction", dir.String(), "target", target)
	return c.Recompute()
}

// HandleKey maps arrow keys of the controller's axis to Advance. It reports
// whether the key was handled; a closed controller handles none.
func (c *Controller) HandleKey(key string) bool {
	if c.isClosed() {
		return false
	}
	prev, next := "ArrowLeft", "ArrowRight"
	if c.opts.Axis == timeline.Vertical {
		prev, next = "ArrowUp", "ArrowDown"
	}
	switch key {
	case prev:
		c.Advance(Prev)
	case next:
		c.Advance(Next)
	default:
		return false
	}
	return true
}

// State returns the latest snapshot.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// OnChange registers fn to receive every state change until Close.
func (c *Controller) OnChange(fn func(State)) {
	if fn == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.listeners = append(c.listeners, fn)
	}
}

func compute(position, extent, tolerance float64) State {
	position = math.Abs(position)
	progress := 0.0
	if extent > 0 {
		progress = clamp(position/extent*100, 0, 100)
	}
	return State{
		Position:      position,
		Progress:      progress,
		CanScrollPrev: position > tolerance,
		CanScrollNext: position < extent-tolerance,
	}
}

func clamp(value, lo, hi float64) float64 {
	return math.Min(math.Max(value, lo), hi)
}
