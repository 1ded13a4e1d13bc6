package ui

import "time"

// timerMsg is delivered when a Loop timer's delay elapses
type timerMsg struct {
	id uint64
}

// frameMsg marks a rendering frame boundary
type frameMsg time.Time

// pagerMsg contains the result of showing a slide in the pager
type pagerMsg struct {
	slide int
	err   error
}
