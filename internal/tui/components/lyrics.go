package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mvanholt/croon/internal/tui/styles"
)

// Lyrics displays lyrics for the current track
type Lyrics struct {
	offset int
}

// NewLyrics creates a new Lyrics component
func NewLyrics() *Lyrics {
	return &Lyrics{}
}

// ScrollDown scrolls the lyrics down
func (l *Lyrics) ScrollDown() {
	l.offset++
}

// ScrollUp scrolls the lyrics up
func (l *Lyrics) ScrollUp() {
	if l.offset > 0 {
		l.offset--
	}
}

// Reset scrolls back to the top.
func (l *Lyrics) Reset() {
	l.offset = 0
}

// Render renders the lyrics panel
func (l *Lyrics) Render(text string, loading bool, width, height int, focused bool) string {
	title := styles.PanelTitle("Lyrics", focused)

	var content string
	switch {
	case loading:
		content = styles.Muted.Render("Fetching lyrics...")
	case text == "":
		content = styles.Muted.Render("No track playing")
	default:
		content = l.renderLyrics(text, width-4, height-4)
	}

	panel := styles.Panel(focused).
		Width(width).
		Height(height)

	return panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		content,
	))
}

func (l *Lyrics) renderLyrics(text string, width, maxLines int) string {
	lines := wrapLines(text, width)

	if maxLines < 1 {
		maxLines = 1
	}
	if l.offset > len(lines)-maxLines {
		l.offset = len(lines) - maxLines
	}
	if l.offset < 0 {
		l.offset = 0
	}

	end := l.offset + maxLines
	if end > len(lines) {
		end = len(lines)
	}
	visible := lines[l.offset:end]

	out := make([]string, 0, len(visible)+1)
	out = append(out, visible...)
	if end < len(lines) {
		out = append(out, styles.Dim.Render(fmt.Sprintf("    ... %d more lines", len(lines)-end)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, out...)
}

// wrapLines splits text into lines no wider than width.
func wrapLines(text string, width int) []string {
	if width < 1 {
		width = 1
	}

	var out []string
	for _, line := range strings.Split(text, "\n") {
		if len(line) <= width {
			out = append(out, line)
			continue
		}
		for len(line) > width {
			cut := strings.LastIndex(line[:width], " ")
			if cut <= 0 {
				cut = width
			}
			out = append(out, line[:cut])
			line = strings.TrimLeft(line[cut:], " ")
		}
		out = append(out, line)
	}
	return out
}
