package carousel

import "log/slog"

// coordinator moves the leaving and entering slides for one navigation
// session and reports when both have finished
type coordinator struct {
	surface Surface
	slides  []Element
	logger  *slog.Logger

	leaving  Element
	entering Element
	inFlight bool
}

// begin starts a session from slide prev to slide next
func (t *coordinator) begin(prev, next int, dir Direction) {
	if !dir.valid() {
		// does not account for wrap-around
		if next > prev {
			dir = Forward
		} else {
			dir = Backward
		}
	}

	leaving := t.slides[prev]
	entering := t.slides[next]

	t.leaving = leaving
	t.entering = entering
	t.inFlight = true

	t.logger.Debug("transition started", "from", prev, "to", next, "direction", string(dir))

	if prev == next {
		// the slide stays where it is; the animated placement only
		// produces the completion report that ends the session
		t.surface.RequestFrame(func() {
			t.surface.RequestFrame(func() {
				t.surface.Place(PositionSlide(entering, Center, true))
			})
		})
		return
	}

	t.surface.Place(PositionSlide(entering, entrySide(dir), false))

	// The immediate placement needs two frames to be committed before the
	// animated one starts.
	t.surface.RequestFrame(func() {
		t.surface.RequestFrame(func() {
			t.surface.Place(PositionSlide(leaving, exitSide(dir), true))
			t.surface.Place(PositionSlide(entering, Center, true))
		})
	})
}

// end records that el finished moving. It returns true when the session
// is complete.
func (t *coordinator) end(el Element) bool {
	if !t.inFlight {
		return false
	}

	t.surface.StopTransition(el)

	if el == t.leaving {
		t.leaving = nil
	}
	if el == t.entering {
		t.entering = nil
	}
	if t.leaving != nil || t.entering != nil {
		return false
	}

	t.inFlight = false
	t.logger.Debug("transition finished")
	return true
}
