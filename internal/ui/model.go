package ui

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"carousel/internal/carousel"
	"carousel/internal/config"
	"carousel/internal/deck"
)

// Model is the Bubble Tea model of the carousel screen
type Model struct {
	deck     *deck.Deck
	config   *config.Config
	carousel *carousel.Carousel
	surface  *Surface
	loop     *Loop
	queue    *cmdQueue
	logger   *slog.Logger

	keys   keyMap
	help   help.Model
	styles *Styles
	pager  Pager

	width   int
	height  int
	status  string
	pressed carousel.Element // control highlighted until the next state change
}

// Option configures a Model
type Option func(*Model)

// WithLogger sets the logger for the model and its carousel
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		m.logger = logger
	}
}

// WithPager replaces the ov pager
func WithPager(p Pager) Option {
	return func(m *Model) {
		m.pager = p
	}
}

// NewModel mounts a carousel on the deck. Configuration errors from the
// deck are returned unchanged.
func NewModel(d *deck.Deck, cfg *config.Config, opts ...Option) (*Model, error) {
	queue := &cmdQueue{}
	m := &Model{
		deck:    d,
		config:  cfg,
		queue:   queue,
		loop:    newLoop(queue),
		surface: newSurface(queue, cfg.FrameInterval()),
		keys:    newKeyMap(),
		help:    help.New(),
		styles:  NewStyles(),
		width:   80,
		height:  24,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if m.pager == nil {
		m.pager = &ovPager{}
	}
	m.help.ShowAll = cfg.UI.ShowHelp

	dir, err := cfg.Direction()
	if err != nil {
		return nil, err
	}

	m.surface.onEnd = func(el carousel.Element) {
		m.carousel.TransitionEnd(el)
	}

	c, err := carousel.New(d, m.surface, m.loop,
		carousel.WithInterval(cfg.Interval()),
		carousel.WithDirection(dir),
		carousel.WithLogger(m.logger),
		carousel.WithListener(m.onStateChange),
	)
	if err != nil {
		return nil, err
	}
	m.carousel = c

	_, hasPrev := c.ControlFor(carousel.ActionPrev)
	_, hasNext := c.ControlFor(carousel.ActionNext)
	m.keys.Prev.SetEnabled(hasPrev)
	m.keys.Next.SetEnabled(hasNext)
	m.keys.Jump.SetEnabled(len(c.Indicators()) > 0)

	return m, nil
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	if op, ok := m.pager.(*ovPager); ok {
		op.program = p
	}
}

// Carousel returns the mounted carousel
func (m *Model) Carousel() *carousel.Carousel {
	return m.carousel
}

// Init returns the commands queued while mounting
func (m *Model) Init() tea.Cmd {
	title := m.deck.Title
	if title == "" {
		title = "carousel"
	}
	return tea.Batch(tea.SetWindowTitle(title), m.queue.drain())
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			return m, tea.Batch(cmd, m.queue.drain())
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && m.config.UI.Mouse {
			if el, ok := m.hitTest(msg.X, msg.Y); ok {
				m.press(el)
			}
		}

	case timerMsg:
		m.loop.fire(msg.id)

	case frameMsg:
		m.surface.frame()

	case pagerMsg:
		if msg.err != nil {
			m.logger.Warn("pager failed", "slide", msg.slide, "error", msg.err)
			m.status = fmt.Sprintf("pager failed: %v", msg.err)
		}
	}

	return m, m.queue.drain()
}

// handleKey maps a key press to an action. It returns a command only for
// actions that leave the carousel screen.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.carousel.Close()
		return tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Prev):
		if el, ok := m.carousel.ControlFor(carousel.ActionPrev); ok {
			m.press(el)
		}

	case key.Matches(msg, m.keys.Next):
		if el, ok := m.carousel.ControlFor(carousel.ActionNext); ok {
			m.press(el)
		}

	case key.Matches(msg, m.keys.Jump):
		n, err := strconv.Atoi(msg.String())
		if err != nil {
			return nil
		}
		if el, ok := m.carousel.IndicatorFor(n - 1); ok {
			m.press(el)
		}

	case key.Matches(msg, m.keys.Open):
		return m.openActive()
	}
	return nil
}

// press activates a bound indicator or control
func (m *Model) press(el carousel.Element) {
	if !m.carousel.Press(el) {
		return
	}
	if n, ok := el.(*deck.Node); ok {
		if n.Kind == deck.KindControl {
			m.pressed = el
			m.logger.Debug("control pressed", "control", n.Index, "label", n.Label)
		} else {
			m.logger.Debug("indicator pressed", "indicator", n.Index, "label", n.Label)
		}
	}
	m.status = ""
}

// openActive shows the active slide in the pager
func (m *Model) openActive() tea.Cmd {
	index := m.carousel.State().Active
	slide := m.deck.Slide(index)
	if slide == nil {
		return nil
	}
	pager := m.pager
	return func() tea.Msg {
		return pagerMsg{slide: index, err: pager.Show(slide.Title, slide.Body)}
	}
}

// onStateChange runs after the carousel's own listeners
func (m *Model) onStateChange(prev, next carousel.State) {
	if prev.Navigating && !next.Navigating {
		m.pressed = nil
	}
	if prev.Active != next.Active {
		m.logger.Info("slide shown", "slide", next.Active, "direction", string(next.Direction))
	}
}
