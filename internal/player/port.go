// Package player drives the external media player process. The session
// and TUI only ever see the Port interface; the mpv implementation
// lives behind it.
package player

import "github.com/mvanholt/croon/internal/core"

// SeekMode selects how a Seek offset is interpreted.
type SeekMode string

const (
	SeekRelative SeekMode = "relative"
	SeekAbsolute SeekMode = "absolute"
)

// Port is the control surface of the external player. Commands and
// accessors never surface errors: the player being absent, idle, or
// between tracks degrades to no-ops and safe defaults (0 for numbers,
// false for booleans), so callers never branch on failure.
type Port interface {
	// Play loads the given source URL and starts playback, replacing
	// whatever is currently loaded.
	Play(url string)
	Pause(paused bool)
	TogglePause()
	Stop()
	Seek(seconds float64, mode SeekMode)

	// SetVolume clamps to 0-100 before applying.
	SetVolume(level int)
	Volume() int

	Position() float64
	Duration() float64
	IsPlaying() bool
	IsPaused() bool

	// Media returns the URL of the loaded source, or "" when idle.
	Media() string
}

// Snapshot collects the port's accessors into a single state value.
func Snapshot(p Port) *core.PlaybackState {
	return &core.PlaybackState{
		Media:     p.Media(),
		Position:  p.Position(),
		Duration:  p.Duration(),
		Volume:    p.Volume(),
		IsPlaying: p.IsPlaying(),
		IsPaused:  p.IsPaused(),
	}
}
