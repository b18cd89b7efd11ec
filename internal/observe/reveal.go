package observe

// Element is a block of the page occupying lines [Top, Bottom).
type Element struct {
	ID     string
	Top    int
	Bottom int
}

// intersects reports whether the element overlaps the visible window.
func (e Element) intersects(m Metrics) bool {
	return e.Top < m.Offset+m.Height && e.Bottom > m.Offset
}

// RevealTracker marks elements as revealed the first time they intersect the
// window. A revealed element stays revealed; its animation never replays.
type RevealTracker struct {
	elements []Element
	revealed map[string]bool
	onReveal func(id string)
}

// NewRevealTracker returns a tracker that calls onReveal once per element. onReveal may be nil.
func NewRevealTracker(onReveal func(id string)) *RevealTracker {
	return &RevealTracker{
		revealed: make(map[string]bool),
		onReveal: onReveal,
	}
}

// SetElements replaces the tracked layout. Reveal state survives re-layout.
func (r *RevealTracker) SetElements(els []Element) {
	r.elements = append(r.elements[:0], els...)
}

// Observe implements Observer.
func (r *RevealTracker) Observe(m Metrics) {
	if m.Height <= 0 {
		return
	}
	for _, e := range r.elements {
		if r.revealed[e.ID] || !e.intersects(m) {
			continue
		}
		r.revealed[e.ID] = true
		if r.onReveal != nil {
			r.onReveal(e.ID)
		}
	}
}

// Revealed reports whether id has entered the window at least once.
func (r *RevealTracker) Revealed(id string) bool {
	return r.revealed[id]
}

// Count returns how many elements have been revealed.
func (r *RevealTracker) Count() int { return len(r.revealed) }
