package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.phase == phaseLoading {
		if m.width == 0 {
			return m.loader.View()
		}
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.loader.View())
	}
	if m.width == 0 {
		return ""
	}

	nav := m.navbar.View(m.content.Profile.Banner, m.width)
	margin := max(0, (m.width-contentWidth(m.width))/2)
	page := lipgloss.NewStyle().MarginLeft(margin).Render(m.page.View())
	return nav + "\n" + pinFooter(page, m.footerView(), m.page.Height)
}

// footerView is the status note above the key help.
func (m Model) footerView() string {
	note := textStyle(colorFaint).Render(m.note)
	if m.editing {
		return note + "\n" + m.help.View(editingHelp{k: m.keys})
	}
	return note + "\n" + m.help.View(m.keys)
}

// pinFooter pads content to height lines so the footer sits on the bottom rows.
func pinFooter(content, footer string, height int) string {
	lines := strings.Count(content, "\n") + 1
	pad := max(0, height-lines)
	var b strings.Builder
	b.WriteString(content)
	b.WriteString(strings.Repeat("\n", pad+1))
	b.WriteString(footer)
	return b.String()
}
