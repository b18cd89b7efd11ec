package observe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Fraction(t *testing.T) {
	tests := []struct {
		name string
		m    Metrics
		want float64
	}{
		{name: "top", m: Metrics{Offset: 0, Height: 10, ContentHeight: 110}, want: 0},
		{name: "middle", m: Metrics{Offset: 50, Height: 10, ContentHeight: 110}, want: 0.5},
		{name: "bottom", m: Metrics{Offset: 100, Height: 10, ContentHeight: 110}, want: 1},
		{name: "past bottom clamps", m: Metrics{Offset: 200, Height: 10, ContentHeight: 110}, want: 1},
		{name: "nothing to scroll", m: Metrics{Offset: 0, Height: 40, ContentHeight: 20}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.m.Fraction(), 1e-9)
		})
	}
}

func TestSubject_SubscribeAndUnsubscribe(t *testing.T) {
	s := NewSubject()
	var got []int
	unsub := s.Subscribe(ObserverFunc(func(m Metrics) { got = append(got, m.Offset) }))
	require.Equal(t, 1, s.Len())

	s.Publish(Metrics{Offset: 3})
	s.Publish(Metrics{Offset: 7})
	unsub()
	s.Publish(Metrics{Offset: 9})

	assert.Equal(t, []int{3, 7}, got)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 9, s.Last().Offset)
}

func TestSubject_LateSubscriberReceivesLatest(t *testing.T) {
	s := NewSubject()
	s.Publish(Metrics{Offset: 42})

	var got Metrics
	s.Subscribe(ObserverFunc(func(m Metrics) { got = m }))
	assert.Equal(t, 42, got.Offset)
}

func TestRevealTracker_FiresOncePerElement(t *testing.T) {
	var fired []string
	r := NewRevealTracker(func(id string) { fired = append(fired, id) })
	r.SetElements([]Element{
		{ID: "about", Top: 0, Bottom: 5},
		{ID: "skills", Top: 20, Bottom: 30},
		{ID: "contact", Top: 60, Bottom: 70},
	})

	r.Observe(Metrics{Offset: 0, Height: 10, ContentHeight: 70})
	assert.Equal(t, []string{"about"}, fired)

	r.Observe(Metrics{Offset: 22, Height: 10, ContentHeight: 70})
	r.Observe(Metrics{Offset: 0, Height: 10, ContentHeight: 70})
	r.Observe(Metrics{Offset: 22, Height: 10, ContentHeight: 70})
	assert.Equal(t, []string{"about", "skills"}, fired)

	assert.True(t, r.Revealed("about"))
	assert.True(t, r.Revealed("skills"))
	assert.False(t, r.Revealed("contact"))
	assert.Equal(t, 2, r.Count())
}

func TestRevealTracker_EdgeIntersection(t *testing.T) {
	r := NewRevealTracker(nil)
	r.SetElements([]Element{{ID: "below", Top: 10, Bottom: 12}})

	r.Observe(Metrics{Offset: 0, Height: 10})
	assert.False(t, r.Revealed("below"), "element starting at the window's bottom edge is not visible")

	r.Observe(Metrics{Offset: 1, Height: 10})
	assert.True(t, r.Revealed("below"))
}

func TestRevealTracker_StateSurvivesRelayout(t *testing.T) {
	r := NewRevealTracker(nil)
	r.SetElements([]Element{{ID: "hero", Top: 0, Bottom: 4}})
	r.Observe(Metrics{Offset: 0, Height: 10})

	r.SetElements([]Element{{ID: "hero", Top: 50, Bottom: 54}})
	assert.True(t, r.Revealed("hero"))
}

func TestRevealTracker_IgnoresEmptyWindow(t *testing.T) {
	r := NewRevealTracker(nil)
	r.SetElements([]Element{{ID: "hero", Top: 0, Bottom: 4}})
	r.Observe(Metrics{})
	assert.False(t, r.Revealed("hero"))
}
