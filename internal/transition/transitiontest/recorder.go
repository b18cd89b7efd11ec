// Package transitiontest provides a deterministic scheduler for testing timer-driven models.
package transitiontest

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Recorder is a transition.Scheduler that never sleeps. It records every
// requested delay and returns a command that yields the message immediately.
type Recorder struct {
	Delays []time.Duration
}

// Schedule records d and returns a command delivering fn's message without waiting.
func (r *Recorder) Schedule(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	r.Delays = append(r.Delays, d)
	return func() tea.Msg {
		return fn(time.Time{})
	}
}

// Last returns the most recently requested delay, or zero when nothing was scheduled.
func (r *Recorder) Last() time.Duration {
	if len(r.Delays) == 0 {
		return 0
	}
	return r.Delays[len(r.Delays)-1]
}

// Count returns how many timers were requested.
func (r *Recorder) Count() int { return len(r.Delays) }
