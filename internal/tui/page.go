package tui

import (
	"strings"

	"github.com/gokulananth1/portfolio/internal/observe"
)

// block is one reveal element: it appears the first time it scrolls into view.
type block struct {
	id    string
	lines []string
	// always blocks are visible from the start (the hero animates on mount, not on scroll).
	always bool
}

func newBlock(id, rendered string) block {
	return block{id: id, lines: strings.Split(rendered, "\n")}
}

// layout positions blocks on the page.
type layout struct {
	blocks   []block
	elements []observe.Element
	sections map[string]int
	total    int
}

// computeLayout stacks blocks top to bottom, one blank line apart.
// A block whose id has no '/' starts a section.
func computeLayout(blocks []block) layout {
	l := layout{blocks: blocks, sections: make(map[string]int)}
	line := 0
	for i, b := range blocks {
		if i > 0 {
			line++
		}
		l.elements = append(l.elements, observe.Element{ID: b.id, Top: line, Bottom: line + len(b.lines)})
		if !strings.Contains(b.id, "/") {
			l.sections[b.id] = line
		}
		line += len(b.lines)
	}
	l.total = line
	return l
}

// Locate implements navbar.Locator.
func (l layout) Locate(id string) (int, bool) {
	line, ok := l.sections[id]
	return line, ok
}

// compose renders the page, blanking blocks that have not been revealed yet.
func (l layout) compose(revealed func(id string) bool) string {
	var b strings.Builder
	for i, blk := range l.blocks {
		if i > 0 {
			b.WriteString("\n\n")
		}
		if blk.always || revealed(blk.id) {
			b.WriteString(strings.Join(blk.lines, "\n"))
			continue
		}
		b.WriteString(strings.Repeat("\n", len(blk.lines)-1))
	}
	return b.String()
}
