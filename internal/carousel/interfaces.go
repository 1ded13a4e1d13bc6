package carousel

import "time"

// Section names looked up on the container
const (
	SectionSlides     = "slides"
	SectionIndicators = "indicators"
	SectionControls   = "controls"
)

// Data attribute names declared by indicators and controls
const (
	AttrSlide    = "slide"
	AttrNavigate = "navigate"
)

// Element is an opaque handle for a slide, indicator or control.
// Implementations must be comparable; completion reports are matched by
// identity.
type Element interface {
	// Data returns a declared attribute of the element
	Data(key string) (string, bool)
}

// Container supplies the structural elements of one carousel
type Container interface {
	// Section returns the ordered children of a named sub-container.
	// ok is false when the sub-container does not exist.
	Section(name string) (children []Element, ok bool)
}

// Surface is the rendering collaborator
type Surface interface {
	// Place issues a placement. Animated placements must eventually be
	// reported back through Carousel.TransitionEnd, once per element.
	Place(p Placement)
	// StopTransition disables transition styling on an element
	StopTransition(el Element)
	// SetActive toggles the active marker on an indicator
	SetActive(el Element, active bool)
	// RequestFrame runs fn at the next rendering frame boundary
	RequestFrame(fn func())
}

// Timer is a pending callback armed by a Clock
type Timer interface {
	Stop() bool
}

// Clock arms timers. Callbacks must run on the goroutine that drives the
// carousel.
type Clock interface {
	AfterFunc(d time.Duration, fn func()) Timer
}
