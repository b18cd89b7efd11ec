// Package navbar tracks scroll position for the top bar and resolves menu navigation.
package navbar

import (
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/gokulananth1/portfolio/internal/content"
	"github.com/gokulananth1/portfolio/internal/observe"
	"github.com/gokulananth1/portfolio/internal/spring"
)

// Locator finds the line where a section starts.
type Locator interface {
	Locate(id string) (line int, ok bool)
}

// Options tunes the navbar.
type Options struct {
	// Threshold is the offset past which the bar switches to its scrolled style.
	// The comparison is strict: an offset equal to Threshold is not scrolled.
	Threshold int
	Spring    spring.Params
}

// Navbar observes viewport metrics for as long as it is open.
type Navbar struct {
	threshold   int
	scrolled    bool
	raw         float64
	progress    spring.Value
	bar         progress.Model
	entries     []string
	unsubscribe func()
}

// New subscribes a navbar to subject. Call Close to unsubscribe.
func New(subject *observe.Subject, opts Options) *Navbar {
	n := &Navbar{
		threshold: opts.Threshold,
		progress:  spring.New(opts.Spring, 0),
		bar:       progress.New(progress.WithGradient("#a855f7", "#3b82f6"), progress.WithoutPercentage()),
		entries:   content.NavEntries(),
	}
	n.unsubscribe = subject.Subscribe(n)
	return n
}

// Observe implements observe.Observer.
func (n *Navbar) Observe(m observe.Metrics) {
	n.scrolled = m.Offset > n.threshold
	n.raw = m.Fraction()
	n.progress.SetTarget(n.raw)
}

// Close stops observing. It is safe to call more than once.
func (n *Navbar) Close() {
	if n.unsubscribe != nil {
		n.unsubscribe()
		n.unsubscribe = nil
	}
}

// Scrolled reports whether the page is past the style threshold.
func (n *Navbar) Scrolled() bool { return n.scrolled }

// Fraction is the raw scroll fraction.
func (n *Navbar) Fraction() float64 { return n.raw }

// Progress is the spring-smoothed fraction the bar is drawn at.
func (n *Navbar) Progress() float64 { return n.progress.Current() }

// Step advances the progress spring one frame and reports whether it has settled.
func (n *Navbar) Step() bool { return n.progress.Step() }

// Settled reports whether the bar has caught up with the scroll position.
func (n *Navbar) Settled() bool { return n.progress.Settled() }

// Entries returns the menu labels.
func (n *Navbar) Entries() []string { return n.entries }

// Navigate resolves the section whose id is label lower-cased. A label with
// no matching section is a no-op and reports false.
func (n *Navbar) Navigate(label string, loc Locator) (line int, ok bool) {
	if loc == nil {
		return 0, false
	}
	return loc.Locate(content.SectionID(label))
}

// View renders the bar at width: brand, menu entries with their shortcut digits, and the progress line.
func (n *Navbar) View(brand string, width int) string {
	style := lipgloss.NewStyle().Padding(0, 1)
	if n.scrolled {
		style = style.Background(lipgloss.Color("#0f172a")).Foreground(lipgloss.Color("#e2e8f0"))
	} else {
		style = style.Foreground(lipgloss.Color("#94a3b8"))
	}
	brandStyled := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Render(brand) +
		lipgloss.NewStyle().Foreground(lipgloss.Color("#a855f7")).Render(".")

	items := make([]string, 0, len(n.entries))
	for i, e := range n.entries {
		key := lipgloss.NewStyle().Foreground(lipgloss.Color("#a855f7")).Render(string(rune('1' + i)))
		items = append(items, key+" "+strings.ToUpper(e))
	}
	menu := strings.Join(items, "  ")

	inner := width - 2
	if inner < 1 {
		inner = 1
	}
	pad := inner - lipgloss.Width(brandStyled) - lipgloss.Width(menu)
	if pad < 1 {
		pad = 1
	}
	line := style.Width(width).Render(brandStyled + strings.Repeat(" ", pad) + menu)

	n.bar.Width = width
	return line + "\n" + n.bar.ViewAs(n.Progress())
}
