// Package transition implements timer-driven finite-state machines for Bubble Tea models.
//
// A Machine holds a current state and a table mapping states to the state that
// follows them after a fixed delay. Entering a state with a table entry
// schedules a FiredMsg; delivering that message back to the machine advances
// it. Cancel, or entering any other state, invalidates outstanding timers so
// late messages are dropped instead of mutating a torn-down view.
package transition

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Scheduler arranges for fn to be called after d and its result delivered as a message.
// tea.Tick satisfies it; tests substitute a recording scheduler.
type Scheduler func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd

// Step is the delayed transition out of a state.
type Step[S comparable] struct {
	Next  S
	After time.Duration
}

// Table maps a state to its delayed successor. States without an entry are stable.
type Table[S comparable] map[S]Step[S]

// FiredMsg is delivered when a scheduled transition's delay elapses.
type FiredMsg struct {
	ID  int
	Gen int
}

//nolint:gochecknoglobals // Machine IDs must be unique across the process.
var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// Option configures a Machine.
type Option func(*options)

type options struct {
	schedule Scheduler
}

// WithScheduler overrides the timer used for delayed transitions.
func WithScheduler(s Scheduler) Option {
	return func(o *options) {
		if s != nil {
			o.schedule = s
		}
	}
}

// Apply resolves opts into a Scheduler, defaulting to tea.Tick.
// Packages with their own repeating timers use it to share the machine's clock.
func Apply(opts ...Option) Scheduler {
	o := options{schedule: tea.Tick}
	for _, opt := range opts {
		opt(&o)
	}
	return o.schedule
}

// Machine is a finite-state machine whose transitions fire on timers.
type Machine[S comparable] struct {
	id       int
	gen      int
	state    S
	table    Table[S]
	schedule Scheduler
}

// New returns a machine resting in initial. The table is not copied and must not be mutated.
func New[S comparable](initial S, table Table[S], opts ...Option) Machine[S] {
	return Machine[S]{
		id:       nextID(),
		state:    initial,
		table:    table,
		schedule: Apply(opts...),
	}
}

// ID returns the machine's identifier, carried by every FiredMsg it schedules.
func (m Machine[S]) ID() int { return m.id }

// State returns the current state.
func (m Machine[S]) State() S { return m.state }

// Enter moves to state s, cancelling any pending transition, and schedules
// the table's successor for s if there is one.
func (m *Machine[S]) Enter(s S) tea.Cmd {
	m.gen++
	m.state = s
	step, ok := m.table[s]
	if !ok {
		return nil
	}
	id, gen := m.id, m.gen
	return m.schedule(step.After, func(time.Time) tea.Msg {
		return FiredMsg{ID: id, Gen: gen}
	})
}

// Cancel drops any pending transition without changing state.
func (m *Machine[S]) Cancel() {
	m.gen++
}

// Update advances the machine when msg is its current pending FiredMsg.
// It reports the state entered and the command scheduling the next transition, if any.
func (m *Machine[S]) Update(msg tea.Msg) (entered S, ok bool, cmd tea.Cmd) {
	fired, isFired := msg.(FiredMsg)
	if !isFired || fired.ID != m.id || fired.Gen != m.gen {
		return entered, false, nil
	}
	step, has := m.table[m.state]
	if !has {
		return entered, false, nil
	}
	cmd = m.Enter(step.Next)
	return m.state, true, cmd
}
