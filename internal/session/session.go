// Package session holds the playback state for one running instance:
// the queue, the shuffle/repeat modes, and the sequencing logic that
// decides what plays next. It drives the playback port but does not
// own the player process.
//
// All mutation is expected to happen on a single logical thread (the
// UI event loop); background work like searches never touches the
// session directly, so no locking is done here.
package session

import (
	"math/rand"
	"time"

	"github.com/mvanholt/croon/internal/core"
	"github.com/mvanholt/croon/internal/player"
)

// Session is the playback session. The zero value is not usable; use New.
type Session struct {
	port player.Port
	rng  *rand.Rand

	tracks  []core.Track
	current int // -1 when nothing is selected

	shuffle       bool
	repeat        core.RepeatMode
	history       []int // indices played in the current shuffle cycle, oldest first
	pool          *indexPool
	originalOrder []core.Track // queue order snapshotted when shuffle was enabled
}

// Option configures a Session at construction time.
type Option func(*Session)

// WithRand sets the random source used for shuffle draws. Tests use
// this to make shuffle deterministic.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) { s.rng = rng }
}

// WithRepeat sets the initial repeat mode.
func WithRepeat(mode core.RepeatMode) Option {
	return func(s *Session) { s.repeat = mode }
}

// WithShuffle enables shuffle from the start.
func WithShuffle(enabled bool) Option {
	return func(s *Session) {
		if enabled && !s.shuffle {
			s.ToggleShuffle()
		}
	}
}

// New creates an empty session bound to the given playback port.
func New(port player.Port, opts ...Option) *Session {
	s := &Session{
		port:    port,
		current: -1,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		pool:    newIndexPool(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Port returns the playback port the session drives.
func (s *Session) Port() player.Port {
	return s.port
}

// Tracks returns a copy of the queue in play order.
func (s *Session) Tracks() []core.Track {
	out := make([]core.Track, len(s.tracks))
	copy(out, s.tracks)
	return out
}

// Len returns the number of queued tracks.
func (s *Session) Len() int {
	return len(s.tracks)
}

// IsEmpty returns true if the queue has no tracks.
func (s *Session) IsEmpty() bool {
	return len(s.tracks) == 0
}

// CurrentIndex returns the cursor position, -1 when nothing is selected.
func (s *Session) CurrentIndex() int {
	return s.current
}

// Current returns the currently selected track, or nil.
func (s *Session) Current() *core.Track {
	if s.current < 0 || s.current >= len(s.tracks) {
		return nil
	}
	t := s.tracks[s.current]
	return &t
}
