package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gokulananth1/portfolio/internal/contact"
	"github.com/gokulananth1/portfolio/internal/observe"
)

// handleKey processes key bindings and returns updated model and command.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) { // nolint:gocyclo,cyclop
	if m.editing {
		return m.handleEditingKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize(m.width, m.height)
		return m, nil

	case key.Matches(msg, m.keys.Up):
		return m, m.scrollBy(-1)
	case key.Matches(msg, m.keys.Down):
		return m, m.scrollBy(1)
	case key.Matches(msg, m.keys.PageUp):
		return m, m.scrollBy(-m.page.Height)
	case key.Matches(msg, m.keys.PageDown):
		return m, m.scrollBy(m.page.Height)
	case key.Matches(msg, m.keys.End):
		return m, m.scrollBy(m.layout.total)

	case key.Matches(msg, m.keys.Top):
		return m, m.smoothScrollTo(0)

	case key.Matches(msg, m.keys.Explore):
		cmd, _ := m.navigate("Projects")
		return m, cmd

	case key.Matches(msg, m.keys.Resume):
		return m, m.openAsset(m.content.Assets.Resume)
	case key.Matches(msg, m.keys.CV):
		return m, m.openAsset(m.content.Assets.CV)

	case key.Matches(msg, m.keys.Write):
		scroll, _ := m.navigate("Contact")
		focus := m.startEditing()
		return m, tea.Batch(scroll, focus)
	}

	entries := m.navbar.Entries()
	for i, b := range m.keys.Sections {
		if key.Matches(msg, b) && i < len(entries) {
			cmd, _ := m.navigate(entries[i])
			return m, cmd
		}
	}
	for i, b := range m.keys.Social {
		if key.Matches(msg, b) && i < len(m.content.Social) {
			return m, m.open(m.content.Social[i].URL)
		}
	}
	return m, nil
}

func (m Model) handleEditingKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m.quit()
	case key.Matches(msg, m.keys.Escape):
		m.stopEditing()
		m.refresh()
		return m, nil
	case key.Matches(msg, m.keys.NextField):
		cmd := m.focusInput((m.inputs.focus + 1) % inputCount)
		m.refresh()
		return m, cmd
	case key.Matches(msg, m.keys.PrevField):
		cmd := m.focusInput((m.inputs.focus + inputCount - 1) % inputCount)
		m.refresh()
		return m, cmd
	case key.Matches(msg, m.keys.Submit):
		cmd := m.form.Submit()
		if cmd == nil {
			return m, nil
		}
		m.refresh()
		return m, tea.Batch(cmd, m.spinner.Tick)
	}
	return m.updateInputs(msg)
}

// updateInputs forwards msg to the focused widget and copies its value into the form.
func (m Model) updateInputs(msg tea.Msg) (Model, tea.Cmd) {
	if m.form.Status() == contact.Sending {
		return m, nil
	}
	var cmd tea.Cmd
	switch m.inputs.focus {
	case 0:
		m.inputs.name, cmd = m.inputs.name.Update(msg)
		m.form.SetName(m.inputs.name.Value())
	case 1:
		m.inputs.email, cmd = m.inputs.email.Update(msg)
		m.form.SetEmail(m.inputs.email.Value())
	default:
		m.inputs.message, cmd = m.inputs.message.Update(msg)
		m.form.SetMessage(m.inputs.message.Value())
	}
	m.refresh()
	return m, cmd
}

func (m *Model) startEditing() tea.Cmd {
	m.editing = true
	cmd := m.focusInput(m.inputs.focus)
	m.refresh()
	return cmd
}

func (m *Model) stopEditing() {
	m.editing = false
	m.inputs.name.Blur()
	m.inputs.email.Blur()
	m.inputs.message.Blur()
}

func (m *Model) focusInput(i int) tea.Cmd {
	m.inputs.focus = i
	m.inputs.name.Blur()
	m.inputs.email.Blur()
	m.inputs.message.Blur()
	switch i {
	case 0:
		return m.inputs.name.Focus()
	case 1:
		return m.inputs.email.Focus()
	default:
		return m.inputs.message.Focus()
	}
}

func (m *Model) clearInputs() {
	m.inputs.name.SetValue("")
	m.inputs.email.SetValue("")
	m.inputs.message.Reset()
}

// resize lays the page out for a new terminal size.
func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width
	m.page.Width = width
	m.page.Height = max(1, height-navbarLines-lipgloss.Height(m.footerView()))
	w := contentWidth(width)
	m.inputs.name.Width = w - 6
	m.inputs.email.Width = w - 6
	m.inputs.message.SetWidth(w - 4)
	m.refresh()
}

func contentWidth(width int) int {
	return max(pageMinWidth, min(width, pageMaxWidth))
}

// refresh rebuilds the page, publishes the viewport metrics and recomposes if anything was revealed.
func (m *Model) refresh() {
	if m.phase != phaseContent || m.width == 0 {
		return
	}
	m.layout = computeLayout(m.buildBlocks(contentWidth(m.width)))
	m.reveal.SetElements(m.layout.elements)
	m.page.SetContent(m.layout.compose(m.reveal.Revealed))
	m.publish()
}

// publish notifies observers of the current viewport and redraws newly revealed blocks.
func (m *Model) publish() {
	before := m.reveal.Count()
	m.subject.Publish(m.metrics())
	if m.reveal.Count() != before {
		m.page.SetContent(m.layout.compose(m.reveal.Revealed))
	}
}

func (m Model) metrics() observe.Metrics {
	return observe.Metrics{Offset: m.page.YOffset, Height: m.page.Height, ContentHeight: m.layout.total}
}

func (m *Model) maxOffset() int {
	return max(0, m.layout.total-m.page.Height)
}

// scrollBy moves the page immediately, cancelling any smooth scroll.
func (m *Model) scrollBy(lines int) tea.Cmd {
	offset := min(max(0, m.page.YOffset+lines), m.maxOffset())
	m.page.SetYOffset(offset)
	m.scroll.Jump(float64(m.page.YOffset))
	m.smoothScrolling = false
	m.publish()
	return m.animate()
}

// smoothScrollTo glides the page to line.
func (m *Model) smoothScrollTo(line int) tea.Cmd {
	target := min(max(0, line), m.maxOffset())
	m.scroll.Jump(float64(m.page.YOffset))
	m.scroll.SetTarget(float64(target))
	m.smoothScrolling = true
	return m.animate()
}

// navigate smooth-scrolls to the section named by a menu label. Unknown labels do nothing.
func (m *Model) navigate(label string) (tea.Cmd, bool) {
	line, ok := m.navbar.Navigate(label, m.layout)
	if !ok {
		return nil, false
	}
	return m.smoothScrollTo(line - scrollMargin), true
}

// animate starts the frame loop if it is not already running.
func (m *Model) animate() tea.Cmd {
	if m.animating || (!m.smoothScrolling && m.navbar.Settled()) {
		return nil
	}
	m.animating = true
	m.frameGen++
	return m.frame()
}

func (m Model) frame() tea.Cmd {
	gen := m.frameGen
	fps := max(1, m.cfg.Navbar.FPS)
	return m.schedule(time.Second/time.Duration(fps), func(time.Time) tea.Msg {
		return frameMsg{gen: gen}
	})
}

func (m Model) open(url string) tea.Cmd {
	openURL := m.openURL
	return func() tea.Msg {
		return openedMsg{Target: url, Err: openURL(url)}
	}
}

func (m Model) openAsset(name string) tea.Cmd {
	r := m.resolver
	return func() tea.Msg {
		return openedMsg{Target: name, Err: r.Open(name)}
	}
}
