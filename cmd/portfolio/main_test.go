package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/gokulananth1/portfolio/internal/config"
	"github.com/gokulananth1/portfolio/internal/contact"
	"github.com/gokulananth1/portfolio/internal/content"
)

//nolint:gochecknoglobals // test binary path is set in TestMain
var testBinaryPath string

// TestMain builds the CLI binary once for the entire package and reuses it.
func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "portfolio-test-")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create temp dir: %v\n", err)
		os.Exit(1) //nolint:gocritic // Mkdir failed, nothing to cleanup
	}
	defer os.RemoveAll(dir)

	bin := filepath.Join(dir, "portfolio-test")
	cmd := exec.Command("go", "build", "-o", bin, ".")
	if out, err := cmd.CombinedOutput(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to build test binary: %v\nOutput: %s\n", err, string(out))
		os.Exit(1) //nolint:gocritic // Binary failed, nothing to cleanup
	}
	testBinaryPath = bin

	code := m.Run()
	os.Exit(code)
}

// newCmd runs the binary with HOME pointed at home so the default config path stays inside the test.
func newCmd(t *testing.T, home string, args ...string) *exec.Cmd {
	t.Helper()
	if testBinaryPath == "" {
		t.Fatalf("test binary not built")
	}
	cmd := exec.Command(testBinaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home)
	return cmd
}

func stdout(t *testing.T, cmd *exec.Cmd) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.Stdout = &out
	err := cmd.Run()
	return out.String(), err
}

func TestCLI_HelpOutput(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains []string
	}{
		{
			name:     "root help",
			args:     []string{"--help"},
			contains: []string{"portfolio", "export", "mailto", "config", "--no-loader", "--assets-dir", "--verbose"},
		},
		{
			name:     "export help",
			args:     []string{"export", "--help"},
			contains: []string{"JSON or YAML", "--format"},
		},
		{
			name:     "mailto help",
			args:     []string{"mailto", "--help"},
			contains: []string{"--name", "--email", "--message"},
		},
		{
			name:     "config help",
			args:     []string{"config", "--help"},
			contains: []string{"init", "show"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := newCmd(t, t.TempDir(), tt.args...).CombinedOutput()
			require.NoError(t, err)
			for _, expected := range tt.contains {
				assert.Contains(t, string(output), expected)
			}
		})
	}
}

func TestCLI_Version(t *testing.T) {
	output, err := newCmd(t, t.TempDir(), "--version").CombinedOutput()
	require.NoError(t, err)
	assert.Contains(t, string(output), "commit:")
}

func TestCLI_ExportJSON(t *testing.T) {
	out, err := stdout(t, newCmd(t, t.TempDir(), "export"))
	require.NoError(t, err)

	var got content.Portfolio
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, content.Default(), got)
}

func TestCLI_ExportYAML(t *testing.T) {
	out, err := stdout(t, newCmd(t, t.TempDir(), "export", "--format", "yaml"))
	require.NoError(t, err)

	var got content.Portfolio
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, content.Default().Profile, got.Profile)
	assert.Len(t, got.Projects, len(content.Default().Projects))
}

func TestCLI_ExportUnknownFormat(t *testing.T) {
	_, err := stdout(t, newCmd(t, t.TempDir(), "export", "--format", "xml"))
	require.Error(t, err)
}

func TestCLI_MailtoMatchesForm(t *testing.T) {
	out, err := stdout(t, newCmd(t, t.TempDir(),
		"mailto", "--name", "Jane Doe", "--email", "jane@x.com", "--message", "Hello & goodbye"))
	require.NoError(t, err)

	link := strings.TrimSpace(out)
	fields := contact.Fields{Name: "Jane Doe", Email: "jane@x.com", Message: "Hello & goodbye"}
	assert.Equal(t, contact.MailtoLink(config.Default().Contact.Recipient, fields), link)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, contact.Body(fields), u.Query().Get("body"))
}

func TestCLI_MailtoUsesConfiguredRecipient(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := config.Default()
	cfg.Contact.Recipient = "someone@example.com"
	require.NoError(t, config.Save(path, cfg))

	out, err := stdout(t, newCmd(t, t.TempDir(),
		"--config", path, "mailto", "--name", "Jane", "--email", "jane@x.com", "--message", "Hi"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "mailto:someone@example.com?"))
}

func TestCLI_MailtoRequiresAllFields(t *testing.T) {
	tests := [][]string{
		{"mailto", "--email", "jane@x.com", "--message", "Hi"},
		{"mailto", "--name", "Jane", "--message", "Hi"},
		{"mailto", "--name", "Jane", "--email", "jane@x.com", "--message", "   "},
		{"mailto", "--name", "Jane", "--email", "nope", "--message", "Hi"},
	}
	for _, args := range tests {
		out, err := stdout(t, newCmd(t, t.TempDir(), args...))
		require.Error(t, err, args)
		assert.Empty(t, out)
	}
}

func TestCLI_ConfigInit(t *testing.T) {
	home := t.TempDir()
	out, err := stdout(t, newCmd(t, home, "config", "init"))
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote default config")

	path := filepath.Join(home, ".config", "portfolio", "config.yaml")
	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), got)

	_, err = stdout(t, newCmd(t, home, "config", "init"))
	require.Error(t, err, "refuses to overwrite without --force")

	_, err = stdout(t, newCmd(t, home, "config", "init", "--force"))
	require.NoError(t, err)
}

func TestCLI_ConfigShowHealsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("navbar:\n  fps: -1\n"), 0o600))

	out, err := stdout(t, newCmd(t, t.TempDir(), "--config", path, "config", "show"))
	require.NoError(t, err)

	var got config.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, config.Default().Navbar, got.Navbar)
}
