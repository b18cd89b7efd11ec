package tui

// Message types for Bubble Tea update loop.

// frameMsg advances spring animations by one frame.
type frameMsg struct{ gen int }

// openedMsg reports that a link or file was handed to the platform.
type openedMsg struct {
	Target string
	Err    error
}
