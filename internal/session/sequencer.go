package session

import (
	"github.com/mvanholt/croon/internal/core"
	"github.com/mvanholt/croon/internal/player"
)

// Playback thresholds, in seconds. Variables rather than constants so
// callers can tune them.
var (
	// RestartThreshold: past this position, Retreat restarts the
	// current track instead of moving to the previous one.
	RestartThreshold = 3.0

	// AutoAdvanceThreshold: with less than this remaining, the poll
	// loop treats the track as finished and advances.
	AutoAdvanceThreshold = 0.5
)

// Advance moves playback forward: user "next" or auto-advance at end
// of track. Empty queues and invalid cursors degrade to no-ops.
func (s *Session) Advance() {
	if len(s.tracks) == 0 {
		return
	}

	if s.repeat == core.RepeatOne {
		s.PlayIndex(s.current)
		return
	}

	if s.shuffle {
		if s.pool.empty() {
			// Full cycle played: start a new one. The first draw of
			// the new cycle may repeat the last track by chance.
			s.history = s.history[:0]
			s.pool.refill(len(s.tracks))
		}
		next, ok := s.pool.draw(s.rng)
		if !ok {
			return
		}
		s.history = append(s.history, next)
		s.PlayIndex(next)
		return
	}

	next := s.current + 1
	if next >= len(s.tracks) {
		if s.repeat != core.RepeatAll {
			// End of queue: stop, cursor stays where it was.
			s.port.Stop()
			return
		}
		next = 0
	}
	s.PlayIndex(next)
}

// Retreat moves playback backward: user "previous". More than
// RestartThreshold seconds into a track it restarts the track in
// place, whatever the mode; otherwise it steps back per mode rules.
func (s *Session) Retreat() {
	if len(s.tracks) == 0 {
		return
	}

	if s.port.Position() > RestartThreshold {
		s.port.Seek(0, player.SeekAbsolute)
		return
	}

	if s.shuffle {
		if len(s.history) > 1 {
			popped := s.history[len(s.history)-1]
			s.history = s.history[:len(s.history)-1]
			s.pool.add(popped)
			s.PlayIndex(s.history[len(s.history)-1])
			return
		}
		// No history to go back to: replay the current track.
		s.PlayIndex(s.current)
		return
	}

	prev := s.current - 1
	if prev < 0 {
		if s.repeat == core.RepeatAll {
			prev = len(s.tracks) - 1
		} else {
			prev = 0
		}
	}
	s.PlayIndex(prev)
}

// ShouldAutoAdvance reports whether the given player snapshot means
// the current track is about to end and the session should advance.
// Evaluated once per poll tick by the UI loop.
func (s *Session) ShouldAutoAdvance(state *core.PlaybackState) bool {
	if state == nil || state.IsPaused || state.Duration <= 0 {
		return false
	}
	if len(s.tracks) == 0 || s.current < 0 {
		return false
	}
	return state.Duration-state.Position < AutoAdvanceThreshold
}
