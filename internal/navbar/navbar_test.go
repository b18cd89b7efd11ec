package navbar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokulananth1/portfolio/internal/observe"
	"github.com/gokulananth1/portfolio/internal/spring"
)

type mapLocator map[string]int

func (l mapLocator) Locate(id string) (int, bool) {
	line, ok := l[id]
	return line, ok
}

func newTestNavbar() (*Navbar, *observe.Subject) {
	subject := observe.NewSubject()
	n := New(subject, Options{
		Threshold: 20,
		Spring:    spring.Params{FPS: 60, Frequency: 10, DampingRatio: 1, RestDelta: 0.001},
	})
	return n, subject
}

func TestNavbar_ScrolledThreshold(t *testing.T) {
	tests := []struct {
		offset int
		want   bool
	}{
		{offset: 0, want: false},
		{offset: 20, want: false},
		{offset: 21, want: true},
		{offset: 25, want: true},
	}
	for _, tt := range tests {
		n, subject := newTestNavbar()
		subject.Publish(observe.Metrics{Offset: tt.offset, Height: 10, ContentHeight: 200})
		assert.Equal(t, tt.want, n.Scrolled(), "offset %d", tt.offset)
	}
}

func TestNavbar_ProgressIsSmoothed(t *testing.T) {
	n, subject := newTestNavbar()
	subject.Publish(observe.Metrics{Offset: 95, Height: 10, ContentHeight: 200})

	assert.InDelta(t, 0.5, n.Fraction(), 1e-9)
	assert.InDelta(t, 0.0, n.Progress(), 1e-9, "bar does not jump to the raw value")
	assert.False(t, n.Settled())

	n.Step()
	assert.Greater(t, n.Progress(), 0.0)
	assert.Less(t, n.Progress(), 0.5)

	settled := false
	for i := 0; i < 600 && !settled; i++ {
		settled = n.Step()
	}
	assert.True(t, settled)
	assert.True(t, n.Settled())
	assert.InDelta(t, 0.5, n.Progress(), 1e-9)
}

func TestNavbar_CloseUnsubscribes(t *testing.T) {
	n, subject := newTestNavbar()
	require.Equal(t, 1, subject.Len())

	n.Close()
	n.Close()
	assert.Equal(t, 0, subject.Len())

	subject.Publish(observe.Metrics{Offset: 100, Height: 10, ContentHeight: 200})
	assert.False(t, n.Scrolled())
}

func TestNavbar_Navigate(t *testing.T) {
	n, _ := newTestNavbar()
	loc := mapLocator{"about": 12, "contact": 140}

	line, ok := n.Navigate("About", loc)
	assert.True(t, ok)
	assert.Equal(t, 12, line)

	line, ok = n.Navigate("CONTACT", loc)
	assert.True(t, ok)
	assert.Equal(t, 140, line)

	_, ok = n.Navigate("Skills", loc)
	assert.False(t, ok, "missing section is a no-op")

	assert.NotPanics(t, func() {
		_, ok = n.Navigate("About", nil)
	})
	assert.False(t, ok)
}

func TestNavbar_ViewListsEntries(t *testing.T) {
	n, _ := newTestNavbar()
	v := n.View("GOKUL", 120)
	for _, e := range []string{"ABOUT", "SKILLS", "PROJECTS", "ACTIVITIES", "CONTACT", "GOKUL"} {
		assert.Contains(t, v, e)
	}
}
