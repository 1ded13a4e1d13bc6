package carousel

import (
	"log/slog"
	"time"
)

// scheduler owns the single auto-advance timer
type scheduler struct {
	clock     Clock
	interval  time.Duration
	direction Direction
	navigate  func(Direction)
	logger    *slog.Logger

	timer Timer
	seq   uint64
}

// schedule cancels any pending advance and arms a new one. An empty
// direction uses the configured default.
func (s *scheduler) schedule(dir Direction, immediate bool) {
	delay := s.interval
	if immediate {
		delay = 0
	}
	if dir == NoDirection {
		dir = s.direction
	}

	s.cancel()

	s.seq++
	seq := s.seq
	t := s.clock.AfterFunc(delay, func() {
		// a stale callback must not clear a newer timer
		if seq != s.seq {
			return
		}
		s.seq++
		s.timer = nil
		s.logger.Debug("auto-advance fired", "direction", string(dir))
		s.navigate(dir)
	})
	s.timer = t

	s.logger.Debug("auto-advance scheduled", "delay", delay, "direction", string(dir))
}

// cancel stops the pending advance, if any
func (s *scheduler) cancel() {
	if s.timer == nil {
		return
	}
	s.timer.Stop()
	s.timer = nil
	s.seq++
}

func (s *scheduler) pending() bool {
	return s.timer != nil
}
