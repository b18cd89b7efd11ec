package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/gokulananth1/portfolio/internal/contact"
	"github.com/gokulananth1/portfolio/internal/content"
)

func textStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

func cardStyle(border string, width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(0, 1).
		Width(width - 2)
}

// buildBlocks renders every section at width w.
func (m Model) buildBlocks(w int) []block {
	p := m.content
	var blocks []block
	for _, s := range p.Sections {
		switch s.ID {
		case content.SectionHome:
			hero := newBlock(s.ID, renderHero(p.Profile, w))
			hero.always = true
			blocks = append(blocks, hero)
		case content.SectionAbout:
			blocks = append(blocks,
				newBlock(s.ID, renderHeader(s, w)),
				newBlock("about/profile", m.renderProfile(w)),
				newBlock("about/objective", renderObjective(p.Profile, w)),
			)
		case content.SectionSkills:
			blocks = append(blocks, newBlock(s.ID, renderHeader(s, w)))
			for i, sk := range p.Skills {
				blocks = append(blocks, newBlock(fmt.Sprintf("skills/%d", i), renderSkill(sk, w)))
			}
		case content.SectionProjects:
			blocks = append(blocks, newBlock(s.ID, renderHeader(s, w)))
			for i, pr := range p.Projects {
				blocks = append(blocks, newBlock(fmt.Sprintf("projects/%d", i), renderProject(pr, w)))
			}
		case content.SectionExperience:
			blocks = append(blocks,
				newBlock(s.ID, renderHeader(s, w)),
				newBlock("experience/education", renderEducation(p.Education, w)),
				newBlock("experience/events", renderEvents(p.Events, w)),
			)
		case content.SectionActivities:
			blocks = append(blocks, newBlock(s.ID, renderHeader(s, w)))
			for i, a := range p.Activities {
				blocks = append(blocks, newBlock(fmt.Sprintf("activities/%d", i), renderActivity(a, w)))
			}
		case content.SectionContact:
			blocks = append(blocks,
				newBlock(s.ID, renderHeader(s, w)),
				newBlock("contact/links", m.renderSocial(w)),
				newBlock("contact/form", m.renderForm(w)),
			)
		}
	}
	footer := newBlock("footer/credits", renderFooterCredits(p.Profile, w))
	footer.always = true
	return append(blocks, footer)
}

func renderHeader(s content.Section, w int) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorWhite)).Render(s.Title)
	rule := textStyle(colorAccent).Render(strings.Repeat("━", min(len(s.Title), w)))
	out := title + "\n" + rule
	if s.Subtitle != "" {
		out += "\n" + textStyle(colorMuted).Width(w).Render(s.Subtitle)
	}
	return out
}

func renderHero(p content.Profile, w int) string {
	badge := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colorAccent)).
		Foreground(lipgloss.Color("#d8b4fe")).
		Padding(0, 1).
		Render(strings.ToUpper(p.Badge))
	name := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorWhite)).Render(p.Name)
	role := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorAccent)).Render(p.Role)
	headline := textStyle(colorMuted).Width(w).Render(p.Headline)
	actions := keyHint("p", "EXPLORE PROJECTS") + "   " + keyHint("r", "DOWNLOAD RESUME")
	return lipgloss.JoinVertical(lipgloss.Left, badge, "", name, role, "", headline, "", actions)
}

func keyHint(k, label string) string {
	return textStyle(colorAccent).Render("["+k+"]") + " " + lipgloss.NewStyle().Bold(true).Render(label)
}

func (m Model) renderProfile(w int) string {
	p := m.content.Profile
	img := m.resolver.Image(m.content.Assets.ProfileImage, m.content.Assets.ProfileImageFallback)
	cgpa := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorAccent)).Render(p.CGPA)
	lines := []string{
		textStyle(colorFaint).Render("portrait: ") + textStyle(colorMuted).Render(img),
		cgpa + " " + textStyle(colorMuted).Render("PURSUING CGPA"),
	}
	return cardStyle(colorFaint, w).Render(strings.Join(lines, "\n"))
}

func renderObjective(p content.Profile, w int) string {
	motto := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorAccent)).Render(p.Motto)
	body := textStyle(colorText).Width(w).Render(p.Objective)
	traits := make([]string, 0, len(p.Traits))
	for _, t := range p.Traits {
		traits = append(traits, cardStyle(colorBlue, w/2).Render(
			lipgloss.NewStyle().Bold(true).Render(t.Title)+"\n"+textStyle(colorMuted).Render(strings.ToUpper(t.Note)),
		))
	}
	return lipgloss.JoinVertical(lipgloss.Left, motto, "", body, "", lipgloss.JoinHorizontal(lipgloss.Top, traits...))
}

func renderSkill(s content.SkillCategory, w int) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(s.Color)).Render(s.Category)
	chips := make([]string, 0, len(s.Skills))
	for _, sk := range s.Skills {
		chips = append(chips, textStyle(colorText).Render(sk))
	}
	sep := textStyle(colorFaint).Render(" · ")
	body := lipgloss.NewStyle().Width(w - 4).Render(strings.Join(chips, sep))
	return cardStyle(s.Color, w).Render(title + "\n" + body)
}

func renderProject(p content.Project, w int) string {
	tag := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Accent[0])).Render(p.Tag)
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorWhite)).Render(p.Title)
	desc := textStyle(colorMuted).Width(w - 4).Render(p.Description)
	tags := textStyle(p.Accent[1]).Width(w - 4).Render("#" + strings.Join(p.Tags, "  #"))
	return cardStyle(p.Accent[0], w).Render(lipgloss.JoinVertical(lipgloss.Left, tag, title, "", desc, "", tags))
}

func renderEducation(items []content.Education, w int) string {
	heading := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorBlue)).Render("EDUCATION")
	rows := []string{heading}
	for _, e := range items {
		left := lipgloss.NewStyle().Bold(true).Render(e.Title) + "\n" + textStyle(colorMuted).Render(e.Institution)
		right := textStyle(colorBlue).Render(e.Score) + "\n" + textStyle(colorFaint).Render(e.Year)
		pad := w - 4 - lipgloss.Width(left) - lipgloss.Width(right)
		if pad < 1 {
			pad = 1
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", pad), lipgloss.NewStyle().Align(lipgloss.Right).Render(right))
		rows = append(rows, cardStyle(colorBlue, w).Render(row))
	}
	return strings.Join(rows, "\n")
}

func renderEvents(items []content.Event, w int) string {
	heading := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorAccent)).Render("WORKSHOPS & EVENTS")
	rows := []string{heading}
	for _, e := range items {
		body := lipgloss.NewStyle().Bold(true).Render(e.Title) + "\n" +
			textStyle(colorAccent).Render(e.Venue+" • "+e.Date) + "\n" +
			textStyle(colorMuted).Width(w-4).Render(e.Description)
		rows = append(rows, cardStyle(colorAccent, w).Render(body))
	}
	return strings.Join(rows, "\n")
}

func renderActivity(a content.Activity, w int) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(a.Color)).Render(a.Title)
	desc := textStyle(colorMuted).Width(w - 4).Render(a.Description)
	return cardStyle(a.Color, w).Render(title + "\n" + desc)
}

func (m Model) renderSocial(w int) string {
	items := make([]string, 0, len(m.content.Social))
	for i, s := range m.content.Social {
		k := "?"
		if i < len(m.keys.Social) {
			k = m.keys.Social[i].Help().Key
		}
		items = append(items, keyHint(k, s.Label))
	}
	return lipgloss.NewStyle().Width(w).Render(strings.Join(items, "   "))
}

func (m Model) renderForm(w int) string {
	label := func(i int, s string) string {
		st := textStyle(colorMuted)
		if m.editing && m.inputs.focus == i {
			st = st.Foreground(lipgloss.Color(colorAccent)).Bold(true)
		}
		return st.Render(strings.ToUpper(s))
	}

	var status string
	switch m.form.Status() {
	case contact.Idle:
		status = keyHint("ctrl+s", "LAUNCH")
		if !m.editing {
			status = keyHint("c", "WRITE A MESSAGE")
		}
	case contact.Sending:
		status = m.spinner.View() + " " + textStyle(colorMuted).Render("SENDING")
	case contact.Success:
		status = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorSuccess)).Render("✓ SENT")
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		label(0, "Full Name"), m.inputs.name.View(), "",
		label(1, "Email"), m.inputs.email.View(), "",
		label(2, "Message"), m.inputs.message.View(), "",
		status,
	)
	return cardStyle(colorAccent, w).Render(body)
}

func renderFooterCredits(p content.Profile, w int) string {
	name := lipgloss.NewStyle().Bold(true).Render(p.Name)
	credits := textStyle(colorFaint).Render(fmt.Sprintf("© %d DESIGNED & ENGINEERED BY %s.", time.Now().Year(), p.Name))
	return lipgloss.NewStyle().Width(w).Align(lipgloss.Center).Render(name + "\n" + credits)
}
