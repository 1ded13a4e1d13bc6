package carousel

import "time"

// TransitionDuration is how long an animated placement takes
const TransitionDuration = 300 * time.Millisecond

// Position is a symbolic slide placement
type Position string

const (
	Center Position = "center"
	Left   Position = "left"  // fully off-screen left
	Right  Position = "right" // fully off-screen right
)

// Offset returns the horizontal offset in slide widths
func (p Position) Offset() float64 {
	switch p {
	case Left:
		return -1
	case Right:
		return 1
	}
	return 0
}

// Placement is a positioning command for a rendering surface
type Placement struct {
	Element  Element
	Position Position
	// Duration is zero when the placement is immediate
	Duration time.Duration
}

// Animated reports whether the surface should animate the move
func (p Placement) Animated() bool {
	return p.Duration > 0
}

// PositionSlide builds the placement for a slide
func PositionSlide(el Element, pos Position, animate bool) Placement {
	p := Placement{Element: el, Position: pos}
	if animate {
		p.Duration = TransitionDuration
	}
	return p
}

// entrySide is where a slide waits before entering in the given direction
func entrySide(d Direction) Position {
	if d == Forward {
		return Right
	}
	return Left
}

// exitSide is where a slide leaves to in the given direction
func exitSide(d Direction) Position {
	if d == Forward {
		return Left
	}
	return Right
}
