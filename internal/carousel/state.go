package carousel

import (
	"fmt"
	"strings"
)

// Direction is the way the carousel moves between slides
type Direction string

const (
	// NoDirection lets the transition infer the direction from the indexes
	NoDirection Direction = ""
	Forward     Direction = "forwards"
	Backward    Direction = "backwards"
)

// ParseDirection converts a configuration value to a Direction
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "forwards", "forward":
		return Forward, nil
	case "backwards", "backward":
		return Backward, nil
	}
	return NoDirection, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

func (d Direction) valid() bool {
	return d == Forward || d == Backward
}

// State is a snapshot of the navigation state machine
type State struct {
	Active     int
	Direction  Direction // retained after the transition finishes
	Navigating bool
}

// Listener receives every state change, before and after
type Listener func(prev, next State)

// update is a partial state change applied by setState
type update func(s *State)

// setState replaces the state and broadcasts the change to every listener
// in registration order
func (c *Carousel) setState(fn update) {
	prev := c.state
	next := c.state
	fn(&next)
	c.state = next

	c.logger.Debug("carousel state changed",
		"active", next.Active,
		"direction", string(next.Direction),
		"navigating", next.Navigating,
	)

	for _, l := range c.listeners {
		l(prev, next)
	}
}

// Listen registers a listener for state changes
func (c *Carousel) Listen(l Listener) {
	if l == nil {
		return
	}
	c.listeners = append(c.listeners, l)
}

// State returns the current state
func (c *Carousel) State() State {
	return c.state
}
