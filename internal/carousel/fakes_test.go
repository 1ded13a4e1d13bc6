package carousel

import (
	"fmt"
	"sort"
	"time"
)

type node struct {
	name string
	data map[string]string
}

func (n *node) Data(key string) (string, bool) {
	v, ok := n.data[key]
	return v, ok
}

func (n *node) String() string { return n.name }

type fakeContainer struct {
	sections map[string][]Element
}

func (f *fakeContainer) Section(name string) ([]Element, bool) {
	children, ok := f.sections[name]
	return children, ok
}

// newContainer builds a container with n slides and no optional sections
func newContainer(n int) *fakeContainer {
	slides := make([]Element, n)
	for i := range slides {
		slides[i] = &node{name: fmt.Sprintf("slide-%d", i)}
	}
	return &fakeContainer{sections: map[string][]Element{SectionSlides: slides}}
}

func (f *fakeContainer) withIndicators(slides ...string) *fakeContainer {
	children := make([]Element, 0, len(slides))
	for i, s := range slides {
		n := &node{name: fmt.Sprintf("indicator-%d", i), data: map[string]string{}}
		if s != "-" {
			n.data[AttrSlide] = s
		}
		children = append(children, n)
	}
	f.sections[SectionIndicators] = children
	return f
}

func (f *fakeContainer) withControls(actions ...string) *fakeContainer {
	children := make([]Element, 0, len(actions))
	for i, a := range actions {
		children = append(children, &node{
			name: fmt.Sprintf("control-%d", i),
			data: map[string]string{AttrNavigate: a},
		})
	}
	f.sections[SectionControls] = children
	return f
}

func (f *fakeContainer) slide(i int) Element {
	return f.sections[SectionSlides][i]
}

func (f *fakeContainer) indicator(i int) Element {
	return f.sections[SectionIndicators][i]
}

func (f *fakeContainer) control(i int) Element {
	return f.sections[SectionControls][i]
}

// fakeSurface records every command and queues frame callbacks
type fakeSurface struct {
	placements []Placement
	stopped    []Element
	active     map[Element]bool
	frames     []func()
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{active: make(map[Element]bool)}
}

func (s *fakeSurface) Place(p Placement)         { s.placements = append(s.placements, p) }
func (s *fakeSurface) StopTransition(el Element) { s.stopped = append(s.stopped, el) }
func (s *fakeSurface) RequestFrame(fn func())    { s.frames = append(s.frames, fn) }

func (s *fakeSurface) SetActive(el Element, active bool) {
	if active {
		s.active[el] = true
		return
	}
	delete(s.active, el)
}

// frame runs the callbacks queued before this boundary
func (s *fakeSurface) frame() {
	pending := s.frames
	s.frames = nil
	for _, fn := range pending {
		fn()
	}
}

func (s *fakeSurface) reset() {
	s.placements = nil
	s.stopped = nil
}

func (s *fakeSurface) marked() []Element {
	var out []Element
	for el := range s.active {
		out = append(out, el)
	}
	sort.Slice(out, func(i, j int) bool {
		return fmt.Sprint(out[i]) < fmt.Sprint(out[j])
	})
	return out
}

type fakeTimer struct {
	clock   *fakeClock
	delay   time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// fakeClock hands out timers that fire only when the test says so
type fakeClock struct {
	timers []*fakeTimer
}

func (c *fakeClock) AfterFunc(d time.Duration, fn func()) Timer {
	t := &fakeTimer{clock: c, delay: d, fn: fn}
	c.timers = append(c.timers, t)
	return t
}

func (c *fakeClock) pending() []*fakeTimer {
	var out []*fakeTimer
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			out = append(out, t)
		}
	}
	return out
}

// fire runs every pending timer
func (c *fakeClock) fire() {
	for _, t := range c.pending() {
		t.fired = true
		t.fn()
	}
}
