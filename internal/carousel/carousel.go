// Package carousel implements a slide carousel: a navigation state machine,
// an auto-advance timer and a two-phase slide transition.
//
// The package does not render anything. It drives a Surface and reads its
// structure from a Container, and it expects every callback (timer fires,
// frame callbacks, completion reports) to run on one goroutine.
package carousel

import (
	"fmt"
	"io"
	"log/slog"
	"time"
)

const (
	DefaultInterval  = 2000 * time.Millisecond
	DefaultDirection = Forward
)

// Carousel is one carousel instance
type Carousel struct {
	surface Surface
	slides  []Element
	logger  *slog.Logger

	state     State
	listeners []Listener
	bound     *bindings
	sched     *scheduler
	trans     *coordinator
	closed    bool

	interval  time.Duration
	direction Direction
	extra     []Listener
}

// Option is a functional option for configuring a Carousel
type Option func(*Carousel)

// WithInterval sets the auto-advance delay
func WithInterval(d time.Duration) Option {
	return func(c *Carousel) {
		c.interval = d
	}
}

// WithDirection sets the auto-advance direction
func WithDirection(d Direction) Option {
	return func(c *Carousel) {
		c.direction = d
	}
}

// WithLogger sets the logger for the carousel
func WithLogger(logger *slog.Logger) Option {
	return func(c *Carousel) {
		c.logger = logger
	}
}

// WithListener registers a state listener after the built-in ones
func WithListener(l Listener) Option {
	return func(c *Carousel) {
		c.extra = append(c.extra, l)
	}
}

// New mounts a carousel on container. It fails when the container does not
// describe a usable carousel.
func New(container Container, surface Surface, clock Clock, opts ...Option) (*Carousel, error) {
	c := &Carousel{
		surface:   surface,
		interval:  DefaultInterval,
		direction: DefaultDirection,
		bound:     newBindings(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if c.interval <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInterval, c.interval)
	}
	if !c.direction.valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDirection, string(c.direction))
	}

	slides, ok := container.Section(SectionSlides)
	if !ok {
		return nil, ErrNoSlidesContainer
	}
	if len(slides) == 0 {
		return nil, ErrNoSlides
	}
	c.slides = slides

	c.trans = &coordinator{surface: surface, slides: slides, logger: c.logger}
	c.sched = &scheduler{
		clock:     clock,
		interval:  c.interval,
		direction: c.direction,
		navigate:  c.Navigate,
		logger:    c.logger,
	}

	c.Listen(c.update)

	if err := c.bindIndicators(container); err != nil {
		return nil, err
	}
	if err := c.bindControls(container); err != nil {
		return nil, err
	}
	for _, l := range c.extra {
		c.Listen(l)
	}

	surface.Place(PositionSlide(c.slides[c.state.Active], Center, false))
	c.highlight()

	if len(c.slides) > 1 {
		c.sched.schedule(NoDirection, false)
	}

	c.logger.Info("carousel mounted",
		"slides", len(c.slides),
		"indicators", len(c.bound.indicators),
		"controls", len(c.bound.controls),
		"interval", c.interval,
		"direction", string(c.direction),
	)
	return c, nil
}

// Len returns the number of slides
func (c *Carousel) Len() int {
	return len(c.slides)
}

// Slides returns the slide handles in order
func (c *Carousel) Slides() []Element {
	out := make([]Element, len(c.slides))
	copy(out, c.slides)
	return out
}

// Scheduled reports whether an auto-advance is pending
func (c *Carousel) Scheduled() bool {
	return c.sched.pending()
}

// Show moves to slide index. It is ignored while a transition is running.
// With NoDirection the transition infers the direction from the indexes.
func (c *Carousel) Show(index int, dir Direction) {
	if c.closed {
		return
	}
	if c.state.Navigating {
		c.logger.Debug("navigation dropped, transition in progress", "index", index)
		return
	}
	if index < 0 || index >= len(c.slides) {
		c.logger.Debug("navigation dropped, index out of range", "index", index, "slides", len(c.slides))
		return
	}

	c.setState(func(s *State) {
		s.Active = index
		s.Direction = dir
		s.Navigating = true
	})
}

// Navigate moves one slide in dir, wrapping around at both ends.
// Unknown directions are ignored.
func (c *Carousel) Navigate(dir Direction) {
	n := len(c.slides)
	var next int
	switch dir {
	case Forward:
		next = (c.state.Active + 1) % n
	case Backward:
		next = (c.state.Active - 1 + n) % n
	default:
		return
	}
	c.Show(next, dir)
}

// Next moves forward one slide
func (c *Carousel) Next() {
	c.Navigate(Forward)
}

// Prev moves backward one slide
func (c *Carousel) Prev() {
	c.Navigate(Backward)
}

// TransitionEnd reports that el finished its animated placement
func (c *Carousel) TransitionEnd(el Element) {
	if c.closed {
		return
	}
	if !c.trans.end(el) {
		return
	}
	c.setState(func(s *State) {
		s.Navigating = false
	})
	if len(c.slides) > 1 {
		c.sched.schedule(NoDirection, false)
	}
}

// Close cancels the pending auto-advance. Every later call is ignored.
func (c *Carousel) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.sched.cancel()
	c.logger.Info("carousel closed")
}

// update is the first listener: it starts a transition for every accepted
// show and moves the indicator marker whenever the active slide changes.
// Showing the active slide again leaves it in place but still runs a
// session so that Navigating is cleared.
func (c *Carousel) update(prev, next State) {
	if !prev.Navigating && next.Navigating {
		c.trans.begin(prev.Active, next.Active, next.Direction)
	}
	if prev.Active != next.Active {
		c.highlight()
	}
}
