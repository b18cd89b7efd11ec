// Package assets resolves the static files the portfolio links to.
package assets

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/browser"
	"github.com/sirupsen/logrus"
)

// Resolver locates assets the way a page does: names with a leading slash are
// relative to the site root, other names to the page's own directory.
type Resolver struct {
	Root string
	Base string
}

// NewResolver returns a resolver for a site rooted at root, with the page living in base.
func NewResolver(root, base string) Resolver {
	return Resolver{Root: root, Base: base}
}

// Path resolves name to a filesystem path.
func (r Resolver) Path(name string) string {
	if strings.HasPrefix(name, "/") {
		return filepath.Join(r.Root, strings.TrimPrefix(name, "/"))
	}
	return filepath.Join(r.Base, name)
}

// Image resolves primary, substituting fallback once if primary is missing.
// When neither exists the primary path is returned unchanged; there is no further retry.
func (r Resolver) Image(primary, fallback string) string {
	p := r.Path(primary)
	if exists(p) || fallback == "" {
		return p
	}
	f := r.Path(fallback)
	if exists(f) {
		logrus.Debugf("asset %q missing, using fallback %q", p, f)
		return f
	}
	logrus.Debugf("asset %q and fallback %q both missing", p, f)
	return p
}

// Open hands the asset to the platform's default viewer.
func (r Resolver) Open(name string) error {
	return browser.OpenFile(r.Path(name))
}

func exists(path string) bool {
	st, err := os.Stat(path)
	return err == nil && !st.IsDir()
}
