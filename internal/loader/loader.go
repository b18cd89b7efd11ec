// Package loader implements the counting splash shown before the page appears.
package loader

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gokulananth1/portfolio/internal/transition"
)

// Max is the value at which counting stops.
const Max = 100

const barWidth = 40

// Phase is the loader's lifecycle.
type Phase int

const (
	Counting Phase = iota
	Settling
	Done
)

// CompleteMsg is emitted exactly once, CompleteDelay after the counter reaches Max.
type CompleteMsg struct{}

// tickMsg advances the counter of the loader with the matching id.
type tickMsg struct {
	id  int
	gen int
}

//nolint:gochecknoglobals // Loader IDs must be unique across the process.
var lastID int64

// Model is the loader's Bubble Tea model.
type Model struct {
	id       int
	gen      int
	count    int
	interval time.Duration
	schedule transition.Scheduler
	phase    transition.Machine[Phase]
	bar      progress.Model
	banner   string
}

// New returns a loader at zero that ticks every interval and completes delay after reaching Max.
func New(banner string, interval, delay time.Duration, opts ...transition.Option) Model {
	return Model{
		id:       int(atomic.AddInt64(&lastID, 1)),
		interval: interval,
		schedule: transition.Apply(opts...),
		phase: transition.New(Counting, transition.Table[Phase]{
			Settling: {Next: Done, After: delay},
		}, opts...),
		bar:    progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage(), progress.WithWidth(barWidth)),
		banner: banner,
	}
}

// Init starts the repeating tick.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	id, gen := m.id, m.gen
	return m.schedule(m.interval, func(time.Time) tea.Msg {
		return tickMsg{id: id, gen: gen}
	})
}

// Count returns the current counter value.
func (m Model) Count() int { return m.count }

// Phase returns where the loader is in its lifecycle.
func (m Model) Phase() Phase { return m.phase.State() }

// Stop cancels the tick and any pending completion. Messages already in flight are ignored.
func (m *Model) Stop() {
	m.gen++
	m.phase.Cancel()
}

// Update implements the tick and completion transitions.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch x := msg.(type) {
	case tickMsg:
		if x.id != m.id || x.gen != m.gen || m.phase.State() != Counting {
			return m, nil
		}
		if m.count < Max {
			m.count++
		}
		if m.count >= Max {
			return m, m.phase.Enter(Settling)
		}
		return m, m.tick()

	case transition.FiredMsg:
		entered, ok, cmd := m.phase.Update(x)
		if !ok {
			return m, nil
		}
		if entered == Done {
			return m, func() tea.Msg { return CompleteMsg{} }
		}
		return m, cmd
	}
	return m, nil
}

// View renders the banner, the percentage and a bar bound to the counter.
func (m Model) View() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Render(m.banner)
	accent := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#a855f7")).Render(".")
	pct := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(fmt.Sprintf("%d%%", m.count))
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("INITIALIZING")

	pad := barWidth - lipgloss.Width(label) - lipgloss.Width(pct)
	if pad < 1 {
		pad = 1
	}
	var b strings.Builder
	b.WriteString(title + accent)
	b.WriteString("\n\n")
	b.WriteString(label + strings.Repeat(" ", pad) + pct)
	b.WriteString("\n")
	b.WriteString(m.bar.ViewAs(float64(m.count) / Max))
	return b.String()
}
