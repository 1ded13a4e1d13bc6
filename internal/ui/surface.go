package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"carousel/internal/carousel"
)

// slideMotion is the horizontal placement of one element, in slide widths
type slideMotion struct {
	placed   bool
	offset   float64
	from     float64
	to       float64
	start    time.Time
	duration time.Duration
	moving   bool
	styled   bool // transition styling enabled
}

func (s *slideMotion) at(now time.Time) float64 {
	if !s.moving {
		return s.offset
	}
	elapsed := now.Sub(s.start)
	if elapsed >= s.duration {
		return s.to
	}
	p := float64(elapsed) / float64(s.duration)
	return s.from + (s.to-s.from)*p
}

// Surface is the terminal rendering surface. It animates placements at a
// fixed frame rate and reports every finished move through onEnd.
type Surface struct {
	queue      *cmdQueue
	now        func() time.Time
	frameEvery time.Duration
	onEnd      func(carousel.Element)

	order   []carousel.Element
	motions map[carousel.Element]*slideMotion
	active  map[carousel.Element]bool
	frames  []func()
	ticking bool
}

func newSurface(q *cmdQueue, frameEvery time.Duration) *Surface {
	return &Surface{
		queue:      q,
		now:        time.Now,
		frameEvery: frameEvery,
		motions:    make(map[carousel.Element]*slideMotion),
		active:     make(map[carousel.Element]bool),
	}
}

func (s *Surface) motion(el carousel.Element) *slideMotion {
	m, ok := s.motions[el]
	if !ok {
		m = &slideMotion{}
		s.motions[el] = m
		s.order = append(s.order, el)
	}
	return m
}

// Place implements carousel.Surface. An animated placement retargets a
// move already in progress without reporting it.
func (s *Surface) Place(p carousel.Placement) {
	m := s.motion(p.Element)
	now := s.now()
	target := p.Position.Offset()

	if !p.Animated() {
		m.placed = true
		m.offset = target
		m.moving = false
		return
	}

	from := target
	if m.placed {
		from = m.at(now)
	}
	m.placed = true
	m.from = from
	m.to = target
	m.offset = from
	m.start = now
	m.duration = p.Duration
	m.moving = true
	m.styled = true
	s.tick()
}

// StopTransition implements carousel.Surface
func (s *Surface) StopTransition(el carousel.Element) {
	if m, ok := s.motions[el]; ok {
		m.styled = false
	}
}

// SetActive implements carousel.Surface
func (s *Surface) SetActive(el carousel.Element, active bool) {
	if active {
		s.active[el] = true
		return
	}
	delete(s.active, el)
}

// RequestFrame implements carousel.Surface
func (s *Surface) RequestFrame(fn func()) {
	s.frames = append(s.frames, fn)
	s.tick()
}

// tick schedules the next frame unless one is already on its way
func (s *Surface) tick() {
	if s.ticking {
		return
	}
	s.ticking = true
	s.queue.push(tea.Tick(s.frameEvery, func(t time.Time) tea.Msg {
		return frameMsg(t)
	}))
}

// frame handles one frame boundary: callbacks queued before it run, moves
// advance, and finished moves are reported
func (s *Surface) frame() {
	s.ticking = false

	pending := s.frames
	s.frames = nil
	for _, fn := range pending {
		fn()
	}

	now := s.now()
	var finished []carousel.Element
	busy := false
	for _, el := range s.order {
		m := s.motions[el]
		if !m.moving {
			continue
		}
		if now.Sub(m.start) >= m.duration {
			m.offset = m.to
			m.moving = false
			finished = append(finished, el)
			continue
		}
		busy = true
	}

	for _, el := range finished {
		if s.onEnd != nil {
			s.onEnd(el)
		}
	}

	if busy || len(s.frames) > 0 {
		s.tick()
	}
}

// Offset returns where el is drawn, in slide widths. ok is false when el
// has never been placed.
func (s *Surface) Offset(el carousel.Element) (offset float64, ok bool) {
	m, ok := s.motions[el]
	if !ok || !m.placed {
		return 0, false
	}
	return m.at(s.now()), true
}

// Moving reports whether any element has transition styling enabled
func (s *Surface) Moving() bool {
	for _, m := range s.motions {
		if m.styled {
			return true
		}
	}
	return false
}

// Active reports whether el bears the active marker
func (s *Surface) Active(el carousel.Element) bool {
	return s.active[el]
}
