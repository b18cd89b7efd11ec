package contact

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/pkg/browser"
)

// SubjectPrefix starts every inquiry's subject line.
const SubjectPrefix = "Portfolio Inquiry from "

// MailOpener hands a mailto URI to whatever composes mail on this machine.
type MailOpener interface {
	Open(uri string) error
}

// MailOpenerFunc adapts a function to MailOpener.
type MailOpenerFunc func(uri string) error

// Open calls f(uri).
func (f MailOpenerFunc) Open(uri string) error { return f(uri) }

// BrowserOpener opens URIs with the platform's default handler.
type BrowserOpener struct{}

// Open implements MailOpener.
func (BrowserOpener) Open(uri string) error {
	return browser.OpenURL(uri)
}

// Subject returns the subject line for an inquiry from name.
func Subject(name string) string {
	return SubjectPrefix + name
}

// Body formats the message body.
func Body(f Fields) string {
	return fmt.Sprintf("Name: %s\nEmail: %s\n\nMessage:\n%s", f.Name, f.Email, f.Message)
}

// MailtoLink builds the pre-filled mailto URI for f addressed to recipient.
func MailtoLink(recipient string, f Fields) string {
	return "mailto:" + recipient +
		"?subject=" + encodeComponent(Subject(f.Name)) +
		"&body=" + encodeComponent(Body(f))
}

// encodeComponent percent-encodes s for use inside a URI query value, with
// spaces as %20 rather than '+', which mail clients do not decode.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
