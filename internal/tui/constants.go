package tui

// Package-level constants to avoid magic numbers and improve readability.
const (
	// navbarLines is the menu row plus the scroll progress row.
	navbarLines = 2
	// pageMaxWidth caps the readable column on wide terminals.
	pageMaxWidth = 100
	pageMinWidth = 30
	// wheelLines is how far one mouse-wheel notch scrolls.
	wheelLines = 3
	// messageLines is the height of the message textarea.
	messageLines = 5
	inputCount   = 3
	// scrollMargin leaves a line above a section when navigating to it.
	scrollMargin = 1
)

// Colors, mostly the page's slate/purple palette.
const (
	colorText    = "#e2e8f0"
	colorMuted   = "#94a3b8"
	colorFaint   = "#475569"
	colorAccent  = "#a855f7"
	colorBlue    = "#3b82f6"
	colorSuccess = "#10b981"
	colorWhite   = "#ffffff"
)
