package loader

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokulananth1/portfolio/internal/transition"
	"github.com/gokulananth1/portfolio/internal/transition/transitiontest"
)

const (
	testInterval = 20 * time.Millisecond
	testDelay    = 500 * time.Millisecond
)

func newTestLoader(rec *transitiontest.Recorder) Model {
	return New("GOKUL", testInterval, testDelay, transition.WithScheduler(rec.Schedule))
}

// run feeds the loader its own commands until it stops producing them.
// It returns every counter value observed and the number of CompleteMsgs emitted.
func run(t *testing.T, m Model) (Model, []int, int) {
	t.Helper()
	var counts []int
	completes := 0
	cmd := m.Init()
	for i := 0; cmd != nil; i++ {
		require.Less(t, i, 1000, "loader never stopped")
		msg := cmd()
		if _, ok := msg.(CompleteMsg); ok {
			completes++
			break
		}
		m, cmd = m.Update(msg)
		counts = append(counts, m.Count())
	}
	return m, counts, completes
}

func TestLoader_CountsByOneToMax(t *testing.T) {
	rec := &transitiontest.Recorder{}
	m, counts, completes := run(t, newTestLoader(rec))

	require.NotEmpty(t, counts)
	for i := 1; i < len(counts); i++ {
		step := counts[i] - counts[i-1]
		assert.True(t, step == 1 || (step == 0 && counts[i] == Max), "step %d at %d", step, i)
	}
	for _, c := range counts {
		assert.LessOrEqual(t, c, Max)
	}
	assert.Equal(t, Max, m.Count())
	assert.Equal(t, 1, completes)
	assert.Equal(t, Done, m.Phase())
}

func TestLoader_TimerDurations(t *testing.T) {
	rec := &transitiontest.Recorder{}
	run(t, newTestLoader(rec))

	require.Equal(t, Max+1, rec.Count(), "one tick per increment plus the completion delay")
	for _, d := range rec.Delays[:Max] {
		assert.Equal(t, testInterval, d)
	}
	assert.Equal(t, testDelay, rec.Last())
}

func TestLoader_CompletesOnlyOnce(t *testing.T) {
	rec := &transitiontest.Recorder{}
	m := newTestLoader(rec)
	cmd := m.Init()
	var fired tea.Msg
	for cmd != nil {
		msg := cmd()
		if _, ok := msg.(transition.FiredMsg); ok {
			fired = msg
		}
		if _, ok := msg.(CompleteMsg); ok {
			break
		}
		m, cmd = m.Update(msg)
	}
	require.NotNil(t, fired)

	// Redelivering the completion timer must not complete again.
	_, cmd = m.Update(fired)
	assert.Nil(t, cmd)
}

func TestLoader_StopCancelsTicksAndCompletion(t *testing.T) {
	rec := &transitiontest.Recorder{}
	m := newTestLoader(rec)

	msg := m.Init()()
	m, _ = m.Update(msg)
	require.Equal(t, 1, m.Count())

	m.Stop()
	m, cmd := m.Update(msg)
	assert.Nil(t, cmd)
	assert.Equal(t, 1, m.Count())
}

func TestLoader_StopWhileSettling(t *testing.T) {
	rec := &transitiontest.Recorder{}
	m := newTestLoader(rec)
	cmd := m.Init()
	for m.Phase() != Settling {
		m, cmd = m.Update(cmd())
	}
	pending := cmd()
	m.Stop()

	_, next := m.Update(pending)
	assert.Nil(t, next, "completion must not fire after teardown")
}

func TestLoader_IgnoresOtherLoadersTicks(t *testing.T) {
	rec := &transitiontest.Recorder{}
	a := newTestLoader(rec)
	b := newTestLoader(rec)

	b, cmd := b.Update(a.Init()())
	assert.Nil(t, cmd)
	assert.Equal(t, 0, b.Count())
}

func TestLoader_ViewShowsPercent(t *testing.T) {
	rec := &transitiontest.Recorder{}
	m := newTestLoader(rec)
	m, _ = m.Update(m.Init()())
	assert.Contains(t, m.View(), "1%")
	assert.Contains(t, m.View(), "GOKUL")
}
