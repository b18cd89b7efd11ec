package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/browser"

	"github.com/gokulananth1/portfolio/internal/assets"
	"github.com/gokulananth1/portfolio/internal/config"
	"github.com/gokulananth1/portfolio/internal/contact"
	"github.com/gokulananth1/portfolio/internal/content"
	"github.com/gokulananth1/portfolio/internal/loader"
	"github.com/gokulananth1/portfolio/internal/navbar"
	"github.com/gokulananth1/portfolio/internal/observe"
	"github.com/gokulananth1/portfolio/internal/spring"
	"github.com/gokulananth1/portfolio/internal/transition"
)

// phase is the top-level view: the loader runs once, then the page replaces it.
type phase int

const (
	phaseLoading phase = iota
	phaseContent
)

// Options configures the root model.
type Options struct {
	Config  config.Config
	Content content.Portfolio
	// SkipLoader starts directly on the page.
	SkipLoader bool
	// OpenURL opens external links. Defaults to the system browser.
	OpenURL func(url string) error
	// Mail receives the contact form's mailto handoff. Defaults to the system handler.
	Mail contact.MailOpener
	// BaseDir is the directory relative asset paths resolve against.
	BaseDir string
	// Timers overrides the scheduler for every timer in the UI.
	Timers []transition.Option
}

// formInputs are the contact form's editable widgets.
type formInputs struct {
	name    textinput.Model
	email   textinput.Model
	message textarea.Model
	focus   int
}

// Model is the root Bubble Tea model.
type Model struct {
	cfg      config.Config
	content  content.Portfolio
	resolver assets.Resolver
	openURL  func(string) error
	schedule transition.Scheduler

	phase  phase
	loader loader.Model

	// viewport observation
	subject *observe.Subject
	navbar  *navbar.Navbar
	reveal  *observe.RevealTracker
	page    viewport.Model
	layout  layout

	// smooth scrolling and frame loop
	scroll          spring.Value
	smoothScrolling bool
	animating       bool
	frameGen        int

	// contact form
	form    contact.Form
	inputs  formInputs
	editing bool
	spinner spinner.Model

	// ui state
	help     help.Model
	keys     keyMap
	note     string
	width    int
	height   int
	quitting bool
}

// NewModel constructs a Model with initial state.
func NewModel(opts Options) Model {
	cfg := opts.Config
	openURL := opts.OpenURL
	if openURL == nil {
		openURL = browser.OpenURL
	}
	mail := opts.Mail
	if mail == nil {
		mail = contact.BrowserOpener{}
	}
	baseDir := opts.BaseDir
	if baseDir == "" {
		baseDir = "."
	}

	params := springParams(cfg)
	subject := observe.NewSubject()
	reveal := observe.NewRevealTracker(nil)
	subject.Subscribe(reveal)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(colorAccent))

	m := Model{
		cfg:      cfg,
		content:  opts.Content,
		resolver: assets.NewResolver(cfg.AssetsDir, baseDir),
		openURL:  openURL,
		schedule: transition.Apply(opts.Timers...),
		phase:    phaseLoading,
		loader:   loader.New(opts.Content.Profile.Banner, cfg.Loader.TickInterval, cfg.Loader.CompleteDelay, opts.Timers...),
		subject:  subject,
		navbar:   navbar.New(subject, navbar.Options{Threshold: cfg.Navbar.ScrollThreshold, Spring: params}),
		reveal:   reveal,
		page:     viewport.New(0, 0),
		scroll:   spring.New(params, 0),
		form: contact.New(contact.Options{
			Recipient:  cfg.Contact.Recipient,
			SendDelay:  cfg.Contact.SendDelay,
			ResetDelay: cfg.Contact.ResetDelay,
			Opener:     mail,
		}, opts.Timers...),
		inputs:  newFormInputs(),
		spinner: sp,
		help:    help.New(),
		keys:    newKeyMap(),
	}
	if opts.SkipLoader {
		m.phase = phaseContent
	}
	return m
}

func springParams(cfg config.Config) spring.Params {
	return spring.Params{
		FPS:          cfg.Navbar.FPS,
		Frequency:    cfg.Navbar.SpringFrequency,
		DampingRatio: cfg.Navbar.SpringDamping,
		RestDelta:    cfg.Navbar.RestDelta,
	}
}

func newFormInputs() formInputs {
	name := textinput.New()
	name.Placeholder = "Gokul A"
	name.Prompt = ""
	email := textinput.New()
	email.Placeholder = "name@email.com"
	email.Prompt = ""
	msg := textarea.New()
	msg.Placeholder = "Let's build something great."
	msg.ShowLineNumbers = false
	msg.SetHeight(messageLines)
	return formInputs{name: name, email: email, message: msg}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.phase == phaseLoading {
		return m.loader.Init()
	}
	return nil
}
