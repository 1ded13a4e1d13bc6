package carousel

import (
	"fmt"
	"strconv"
)

// Action is a navigation action a control can declare
type Action string

const (
	ActionPrev Action = "prev"
	ActionNext Action = "next"
)

// Indicator binds an indicator element to a slide index
type Indicator struct {
	Element Element
	Slide   int
}

// Control binds a control element to a navigation action
type Control struct {
	Element Element
	Action  Action
}

// bindings holds the indicator and control wiring built at construction
type bindings struct {
	indicators []Indicator
	controls   []Control

	bySlide   map[int]Element
	byElement map[Element]func()
	marked    Element
}

func newBindings() *bindings {
	return &bindings{
		bySlide:   make(map[int]Element),
		byElement: make(map[Element]func()),
	}
}

// bindIndicators reads the optional indicators section
func (c *Carousel) bindIndicators(container Container) error {
	children, ok := container.Section(SectionIndicators)
	if !ok {
		return nil
	}
	if len(children) == 0 {
		return ErrEmptyIndicators
	}

	for i, el := range children {
		raw, ok := el.Data(AttrSlide)
		if !ok {
			return fmt.Errorf("%w (indicator %d)", ErrIndicatorMissingSlide, i)
		}
		index, err := strconv.Atoi(raw)
		if err != nil || index < 0 || index >= len(c.slides) {
			return fmt.Errorf("%w: %q (indicator %d)", ErrIndicatorInvalidSlide, raw, i)
		}
		if _, dup := c.bound.bySlide[index]; dup {
			return fmt.Errorf("%w: slide %d", ErrIndicatorDuplicate, index)
		}

		c.bound.indicators = append(c.bound.indicators, Indicator{Element: el, Slide: index})
		c.bound.bySlide[index] = el
		c.bound.byElement[el] = func() { c.Show(index, NoDirection) }
	}
	return nil
}

// bindControls reads the optional controls section
func (c *Carousel) bindControls(container Container) error {
	children, ok := container.Section(SectionControls)
	if !ok {
		return nil
	}
	if len(children) == 0 {
		return ErrEmptyControls
	}

	for i, el := range children {
		raw, _ := el.Data(AttrNavigate)
		action := Action(raw)

		var fn func()
		switch action {
		case ActionPrev:
			fn = c.Prev
		case ActionNext:
			fn = c.Next
		default:
			return fmt.Errorf("%w: %q (control %d)", ErrControlInvalidAction, raw, i)
		}

		c.bound.controls = append(c.bound.controls, Control{Element: el, Action: action})
		c.bound.byElement[el] = fn
	}
	return nil
}

// highlight moves the active marker to the indicator of the active slide
func (c *Carousel) highlight() {
	if c.bound.marked != nil {
		c.surface.SetActive(c.bound.marked, false)
		c.bound.marked = nil
	}
	if el, ok := c.bound.bySlide[c.state.Active]; ok {
		c.surface.SetActive(el, true)
		c.bound.marked = el
	}
}

// Press activates a bound indicator or control. It reports whether el is
// bound to this carousel.
func (c *Carousel) Press(el Element) bool {
	fn, ok := c.bound.byElement[el]
	if !ok {
		return false
	}
	fn()
	return true
}

// Indicators returns the indicator bindings in document order
func (c *Carousel) Indicators() []Indicator {
	out := make([]Indicator, len(c.bound.indicators))
	copy(out, c.bound.indicators)
	return out
}

// Controls returns the control bindings in document order
func (c *Carousel) Controls() []Control {
	out := make([]Control, len(c.bound.controls))
	copy(out, c.bound.controls)
	return out
}

// IndicatorFor returns the indicator bound to a slide
func (c *Carousel) IndicatorFor(slide int) (Element, bool) {
	el, ok := c.bound.bySlide[slide]
	return el, ok
}

// ControlFor returns the first control declaring the action
func (c *Carousel) ControlFor(action Action) (Element, bool) {
	for _, ctl := range c.bound.controls {
		if ctl.Action == action {
			return ctl.Element, true
		}
	}
	return nil, false
}
