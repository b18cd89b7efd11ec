// Package contact implements the contact form's submit flow.
//
// The form never talks to a server. Submitting a complete form shows a
// short "sending" state, then hands a pre-filled mailto URI to the local mail
// client, clears the fields and shows "sent" for a while before returning to idle.
package contact

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/gokulananth1/portfolio/internal/transition"
	"github.com/gokulananth1/portfolio/internal/validate"
)

// Status is the form's submission state.
type Status int

const (
	Idle Status = iota
	Sending
	Success
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Sending:
		return "sending"
	case Success:
		return "success"
	default:
		return "unknown"
	}
}

// Fields are the form's inputs. Email mirrors a browser's native email-input check.
type Fields struct {
	Name    string `json:"name" validate:"notblank"`
	Email   string `json:"email" validate:"notblank,email"`
	Message string `json:"message" validate:"notblank"`
}

// Complete reports whether the fields may be submitted.
func (f Fields) Complete() bool {
	return validate.Struct(f) == nil
}

// HandoffMsg reports that a mailto URI was passed to the opener.
// Err is informational only; a missing mail client is not surfaced to the user.
type HandoffMsg struct {
	Link string
	Err  error
}

// Options configures a Form.
type Options struct {
	Recipient  string
	SendDelay  time.Duration
	ResetDelay time.Duration
	Opener     MailOpener
}

// Form is the contact form's state.
type Form struct {
	fields    Fields
	pending   Fields
	recipient string
	opener    MailOpener
	machine   transition.Machine[Status]
	lastLink  string
}

// New returns an idle, empty form.
func New(o Options, opts ...transition.Option) Form {
	opener := o.Opener
	if opener == nil {
		opener = BrowserOpener{}
	}
	return Form{
		recipient: o.Recipient,
		opener:    opener,
		machine: transition.New(Idle, transition.Table[Status]{
			Sending: {Next: Success, After: o.SendDelay},
			Success: {Next: Idle, After: o.ResetDelay},
		}, opts...),
	}
}

// Status returns the submission state.
func (f Form) Status() Status { return f.machine.State() }

// Fields returns the current input values.
func (f Form) Fields() Fields { return f.fields }

// LastLink returns the most recent mailto URI handed off, if any.
func (f Form) LastLink() string { return f.lastLink }

// SetName updates the name field.
func (f *Form) SetName(v string) { f.fields.Name = v }

// SetEmail updates the email field.
func (f *Form) SetEmail(v string) { f.fields.Email = v }

// SetMessage updates the message field.
func (f *Form) SetMessage(v string) { f.fields.Message = v }

// Submit starts sending when the form is idle and complete. Otherwise it does
// nothing and returns nil; there is no error message beyond the field hints.
func (f *Form) Submit() tea.Cmd {
	if f.machine.State() != Idle || !f.fields.Complete() {
		return nil
	}
	f.pending = f.fields
	return f.machine.Enter(Sending)
}

// Reset cancels pending transitions, e.g. when the form leaves the screen.
func (f *Form) Reset() {
	f.machine.Cancel()
}

// Update advances the form on its own timer messages.
func (f Form) Update(msg tea.Msg) (Form, tea.Cmd) {
	entered, ok, next := f.machine.Update(msg)
	if !ok {
		return f, nil
	}
	if entered != Success {
		return f, next
	}
	link := MailtoLink(f.recipient, f.pending)
	f.lastLink = link
	f.fields = Fields{}
	f.pending = Fields{}
	return f, tea.Batch(f.handoff(link), next)
}

func (f Form) handoff(link string) tea.Cmd {
	opener := f.opener
	return func() tea.Msg {
		err := opener.Open(link)
		if err != nil {
			logrus.Debugf("mail handoff failed: %v", err)
		}
		return HandoffMsg{Link: link, Err: err}
	}
}
