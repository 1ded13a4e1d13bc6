package carousel

import "errors"

// Configuration errors returned by New. Construction aborts on any of them.
var (
	ErrNoSlidesContainer     = errors.New("carousel: no slides container found")
	ErrNoSlides              = errors.New("carousel: no slides found")
	ErrEmptyIndicators       = errors.New("carousel: empty indicator container found")
	ErrIndicatorMissingSlide = errors.New("carousel: indicator found without slide number")
	ErrIndicatorInvalidSlide = errors.New("carousel: wrong indicator slide value")
	ErrIndicatorDuplicate    = errors.New("carousel: slide bound to more than one indicator")
	ErrEmptyControls         = errors.New("carousel: empty control container found")
	ErrControlInvalidAction  = errors.New("carousel: control found with invalid navigation action")
	ErrInvalidDirection      = errors.New("carousel: invalid direction")
	ErrInvalidInterval       = errors.New("carousel: interval must be positive")
)
