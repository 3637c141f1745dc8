package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/mvanholt/croon/internal/core"
	"github.com/mvanholt/croon/internal/tui/styles"
)

// Queue displays the playback queue
type Queue struct {
	offset int
	cursor int
}

// NewQueue creates a new Queue component
func NewQueue() *Queue {
	return &Queue{}
}

// CursorDown moves the selection cursor down
func (q *Queue) CursorDown(queueLen int) {
	if q.cursor < queueLen-1 {
		q.cursor++
	}
}

// CursorUp moves the selection cursor up
func (q *Queue) CursorUp() {
	if q.cursor > 0 {
		q.cursor--
	}
}

// SetCursor moves the selection cursor to the given index.
func (q *Queue) SetCursor(i int) {
	if i < 0 {
		i = 0
	}
	q.cursor = i
}

// Cursor returns the selection cursor index
func (q *Queue) Cursor() int {
	return q.cursor
}

// ClampCursor keeps the cursor within the queue after mutations.
func (q *Queue) ClampCursor(queueLen int) {
	if q.cursor >= queueLen {
		q.cursor = queueLen - 1
	}
	if q.cursor < 0 {
		q.cursor = 0
	}
}

// Render renders the queue panel
func (q *Queue) Render(tracks []core.Track, currentIndex, width, height int, focused bool) string {
	title := styles.PanelTitle("Queue", focused)

	var content string
	if len(tracks) == 0 {
		content = styles.Muted.Render("Queue is empty")
	} else {
		content = q.renderTracks(tracks, currentIndex, width-4, height-4, focused)
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

func (q *Queue) renderTracks(tracks []core.Track, currentIndex, width, maxLines int, focused bool) string {
	visibleCount := maxLines - 1 // Leave room for "more" indicator
	if visibleCount < 1 {
		visibleCount = 1
	}

	// Keep the cursor visible
	if q.cursor < q.offset {
		q.offset = q.cursor
	}
	if q.cursor >= q.offset+visibleCount {
		q.offset = q.cursor - visibleCount + 1
	}
	if q.offset >= len(tracks) {
		q.offset = 0
	}

	start := q.offset
	end := start + visibleCount
	if end > len(tracks) {
		end = len(tracks)
	}

	lines := make([]string, 0, end-start+1)

	// Fixed overhead: "XX. " (4) + "▶ " or "  " (2) + " — " (3) = 9 chars
	const overhead = 9

	for i := start; i < end; i++ {
		track := tracks[i]

		num := fmt.Sprintf("%2d.", i+1)

		// Calculate available space for title + artist
		available := width - overhead
		title, artist := fitTitleArtist(track.Title, track.Artist, available)

		marker := " "
		if i == currentIndex {
			marker = "▶"
		}

		var line string
		switch {
		case i == currentIndex:
			line = styles.Playing.Render(fmt.Sprintf("%s %s %s — %s", num, marker, title, artist))
		default:
			line = fmt.Sprintf("%s %s %s — %s",
				styles.Dim.Render(num),
				marker,
				title,
				styles.Muted.Render(artist))
		}

		if focused && i == q.cursor {
			line = lipgloss.NewStyle().Background(styles.Surface).Render(line)
		}

		lines = append(lines, line)
	}

	// Show "more" indicator
	if end < len(tracks) {
		more := styles.Dim.Render(fmt.Sprintf("    ... and %d more", len(tracks)-end))
		lines = append(lines, more)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// fitTitleArtist truncates title and artist to fit the available width.
func fitTitleArtist(title, artist string, available int) (string, string) {
	if len(title)+len(artist) <= available {
		return title, artist
	}

	// Give artist at least 1/3 of space (min 10 chars)
	minArtist := available / 3
	if minArtist < 10 {
		minArtist = 10
	}
	if minArtist > available-10 {
		minArtist = available - 10
	}

	artistSpace := minArtist
	if len(artist) < artistSpace {
		artistSpace = len(artist)
	}
	titleSpace := available - artistSpace

	return truncate(title, titleSpace), truncate(artist, artistSpace)
}

func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
