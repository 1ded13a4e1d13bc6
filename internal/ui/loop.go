package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"carousel/internal/carousel"
)

// cmdQueue collects commands issued while a message is being handled.
// Update drains it before returning.
type cmdQueue struct {
	cmds []tea.Cmd
}

func (q *cmdQueue) push(cmd tea.Cmd) {
	q.cmds = append(q.cmds, cmd)
}

// drain returns the queued commands as one batch
func (q *cmdQueue) drain() tea.Cmd {
	if len(q.cmds) == 0 {
		return nil
	}
	cmds := q.cmds
	q.cmds = nil
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

// Loop implements carousel.Clock on top of Bubble Tea ticks. Callbacks run
// inside Update, never on the tick goroutine.
type Loop struct {
	queue   *cmdQueue
	nextID  uint64
	pending map[uint64]func()
}

func newLoop(q *cmdQueue) *Loop {
	return &Loop{queue: q, pending: make(map[uint64]func())}
}

// AfterFunc implements carousel.Clock
func (l *Loop) AfterFunc(d time.Duration, fn func()) carousel.Timer {
	l.nextID++
	id := l.nextID
	l.pending[id] = fn
	l.queue.push(tea.Tick(d, func(time.Time) tea.Msg {
		return timerMsg{id: id}
	}))
	return &loopTimer{loop: l, id: id}
}

// fire runs the callback for id unless it was stopped
func (l *Loop) fire(id uint64) {
	fn, ok := l.pending[id]
	if !ok {
		return
	}
	delete(l.pending, id)
	fn()
}

// Pending returns the number of armed timers
func (l *Loop) Pending() int {
	return len(l.pending)
}

type loopTimer struct {
	loop *Loop
	id   uint64
}

// Stop cancels the timer. The tick still arrives and is ignored.
func (t *loopTimer) Stop() bool {
	if _, ok := t.loop.pending[t.id]; !ok {
		return false
	}
	delete(t.loop.pending, t.id)
	return true
}
