package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/mvanholt/croon/internal/core"
	"github.com/mvanholt/croon/internal/tui/styles"
)

// NowPlaying displays the currently playing track
type NowPlaying struct{}

// NewNowPlaying creates a new NowPlaying component
func NewNowPlaying() *NowPlaying {
	return &NowPlaying{}
}

// Render renders the now playing panel
func (n *NowPlaying) Render(track *core.Track, state *core.PlaybackState, shuffle bool, repeat core.RepeatMode, width, height int, focused bool) string {
	title := styles.PanelTitle("Now Playing", focused)

	var content string
	if track == nil {
		content = styles.Muted.Render("Nothing playing")
	} else {
		content = n.renderTrack(track, state, shuffle, repeat, width-4)
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

func (n *NowPlaying) renderTrack(track *core.Track, state *core.PlaybackState, shuffle bool, repeat core.RepeatMode, width int) string {
	playing := state != nil && state.IsPlaying

	// Status icon and track title
	icon := styles.StatusIcon(playing)
	titleStyle := styles.Title.Width(width - 4)
	title := titleStyle.Render(track.Title)

	// Artist and album
	artist := styles.Subtitle.Render(track.Artist)
	album := styles.Dim.Render(track.Album)

	// Progress bar
	var position, duration float64
	if state != nil {
		position = state.Position
		duration = state.Duration
	}
	progressWidth := width - 14 // Account for times on either side
	if progressWidth < 10 {
		progressWidth = 10
	}
	var percent float64
	if state != nil {
		percent = state.ProgressPercent()
	}
	progressBar := styles.ProgressBar(percent, progressWidth)
	progress := fmt.Sprintf("%s %s %s", FormatSeconds(position), progressBar, FormatSeconds(duration))

	// Mode and volume indicators
	modes := n.renderModes(state, shuffle, repeat)

	return lipgloss.JoinVertical(lipgloss.Left,
		icon+" "+title,
		"  "+artist,
		"  "+album,
		"",
		progress,
		"",
		modes,
	)
}

func (n *NowPlaying) renderModes(state *core.PlaybackState, shuffle bool, repeat core.RepeatMode) string {
	var parts []string

	if shuffle {
		parts = append(parts, styles.Playing.Render("🔀 shuffle"))
	} else {
		parts = append(parts, styles.Dim.Render("🔀 shuffle"))
	}

	repeatLabel := "🔁 " + repeat.String()
	if repeat == core.RepeatOff {
		parts = append(parts, styles.Dim.Render(repeatLabel))
	} else {
		parts = append(parts, styles.Playing.Render(repeatLabel))
	}

	if state != nil {
		parts = append(parts, styles.Muted.Render(fmt.Sprintf("🔊 %d%%", state.Volume)))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, joinWith(parts, "  ")...)
}

func joinWith(parts []string, sep string) []string {
	out := make([]string, 0, len(parts)*2)
	for i, p := range parts {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, p)
	}
	return out
}

// FormatSeconds renders a second count as m:ss.
func FormatSeconds(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
