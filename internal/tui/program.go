package tui

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

// Run starts the Bubble Tea program and blocks until the user quits or ctx is cancelled.
// While the UI owns the terminal, logs go to logFile, or nowhere when it is empty.
func Run(ctx context.Context, opts Options, logFile string) error {
	// Silence logs during the TUI to avoid corrupting the view.
	prevOut := logrus.StandardLogger().Out
	defer logrus.SetOutput(prevOut)
	if logFile == "" {
		logrus.SetOutput(io.Discard)
	} else {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logrus.SetOutput(f)
	}

	model := NewModel(opts)
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if m, ok := final.(Model); ok {
		m.teardown()
	}
	return err
}
