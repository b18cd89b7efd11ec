// Package observe publishes viewport metrics to visual components.
//
// The page viewport is the subject; the navbar and the reveal tracker are
// observers. Components only see Metrics, so scroll- and intersection-driven
// behaviour can be exercised without a terminal.
package observe

// Metrics describes the visible window over the page, in lines.
type Metrics struct {
	Offset        int
	Height        int
	ContentHeight int
}

// Fraction returns how far the page has been scrolled, in [0,1].
// A page that fits entirely in the window reports 0.
func (m Metrics) Fraction() float64 {
	scrollable := m.ContentHeight - m.Height
	if scrollable <= 0 {
		return 0
	}
	f := float64(m.Offset) / float64(scrollable)
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

// Observer receives metrics whenever the viewport changes.
type Observer interface {
	Observe(Metrics)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Metrics)

// Observe calls f(m).
func (f ObserverFunc) Observe(m Metrics) { f(m) }

type subscription struct {
	id  int
	obs Observer
}

// Subject fans metrics out to its observers in subscription order.
type Subject struct {
	subs   []subscription
	nextID int
	last   Metrics
	seen   bool
}

// NewSubject returns a subject with no observers.
func NewSubject() *Subject {
	return &Subject{}
}

// Subscribe registers o and returns the function that removes it.
// If metrics were already published, o receives the latest immediately.
func (s *Subject) Subscribe(o Observer) (unsubscribe func()) {
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscription{id: id, obs: o})
	if s.seen {
		o.Observe(s.last)
	}
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish records m and notifies every observer.
func (s *Subject) Publish(m Metrics) {
	s.last, s.seen = m, true
	for _, sub := range s.subs {
		sub.obs.Observe(m)
	}
}

// Last returns the most recently published metrics.
func (s *Subject) Last() Metrics { return s.last }

// Len returns the number of active observers.
func (s *Subject) Len() int { return len(s.subs) }
