package tui

import (
	"math"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/gokulananth1/portfolio/internal/contact"
	"github.com/gokulananth1/portfolio/internal/loader"
	"github.com/gokulananth1/portfolio/internal/transition"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) { // nolint:ireturn,gocyclo,cyclop
	switch x := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(x.Width, x.Height)
		return m, m.animate()

	case loader.CompleteMsg:
		m.loader.Stop()
		m.phase = phaseContent
		m.refresh()
		return m, m.animate()

	case tea.KeyMsg:
		if m.phase == phaseLoading {
			if x.String() == "ctrl+c" {
				return m.quit()
			}
			return m, nil
		}
		return m.handleKey(x)

	case tea.MouseMsg:
		if m.phase != phaseContent {
			return m, nil
		}
		switch x.Button { //nolint:exhaustive // only the wheel scrolls
		case tea.MouseButtonWheelUp:
			return m, m.scrollBy(-wheelLines)
		case tea.MouseButtonWheelDown:
			return m, m.scrollBy(wheelLines)
		}
		return m, nil

	case frameMsg:
		if x.gen != m.frameGen {
			return m, nil
		}
		return m, m.stepFrame()

	case transition.FiredMsg:
		if m.phase == phaseLoading {
			var cmd tea.Cmd
			m.loader, cmd = m.loader.Update(x)
			return m, cmd
		}
		return m.updateForm(x)

	case contact.HandoffMsg:
		if x.Err != nil {
			logrus.Debugf("no mail client accepted %s: %v", x.Link, x.Err)
		}
		return m, nil

	case spinner.TickMsg:
		if m.form.Status() != contact.Sending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(x)
		m.refresh()
		return m, cmd

	case openedMsg:
		if x.Err != nil {
			logrus.Debugf("open %s: %v", x.Target, x.Err)
			m.note = "could not open " + x.Target
		} else {
			m.note = "opened " + x.Target
		}
		return m, nil
	}

	if m.phase == phaseLoading {
		var cmd tea.Cmd
		m.loader, cmd = m.loader.Update(msg)
		return m, cmd
	}
	if m.editing {
		return m.updateInputs(msg)
	}
	return m, nil
}

// updateForm advances the contact form on its timers and mirrors its state into the widgets.
func (m Model) updateForm(msg tea.Msg) (Model, tea.Cmd) {
	before := m.form.Status()
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	if before != contact.Success && m.form.Status() == contact.Success {
		m.clearInputs()
	}
	m.refresh()
	return m, cmd
}

// stepFrame advances the scroll and progress springs, scheduling another frame until both rest.
func (m *Model) stepFrame() tea.Cmd {
	settled := true
	if m.smoothScrolling {
		done := m.scroll.Step()
		m.page.SetYOffset(int(math.Round(m.scroll.Current())))
		if done {
			m.smoothScrolling = false
		}
		m.publish()
		settled = done
	}
	if !m.navbar.Step() {
		settled = false
	}
	if settled {
		m.animating = false
		return nil
	}
	return m.frame()
}

func (m *Model) quit() (Model, tea.Cmd) {
	m.quitting = true
	m.teardown()
	return *m, tea.Quit
}

// teardown cancels every timer and subscription the model owns.
func (m *Model) teardown() {
	m.loader.Stop()
	m.form.Reset()
	m.navbar.Close()
	m.frameGen++
	m.animating = false
}
