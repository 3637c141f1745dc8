package session

import "github.com/mvanholt/croon/internal/core"

// Shuffle reports whether shuffle mode is on.
func (s *Session) Shuffle() bool {
	return s.shuffle
}

// Repeat returns the current repeat mode.
func (s *Session) Repeat() core.RepeatMode {
	return s.repeat
}

// CycleRepeat advances the repeat mode (off → all → one → off) and
// returns the new mode.
func (s *Session) CycleRepeat() core.RepeatMode {
	s.repeat = s.repeat.Next()
	return s.repeat
}

// ToggleShuffle flips shuffle mode.
//
// Enabling snapshots the queue order and seeds the shuffle history
// with the current track, so the first Advance never re-picks it.
// Disabling restores the snapshot and repoints the cursor at the track
// that was playing, located by ID; if it was removed while shuffled,
// the cursor falls back to index 0. History never survives a disable,
// so re-enabling always starts a fresh cycle.
func (s *Session) ToggleShuffle() bool {
	s.shuffle = !s.shuffle

	if s.shuffle {
		s.originalOrder = make([]core.Track, len(s.tracks))
		copy(s.originalOrder, s.tracks)

		s.history = s.history[:0]
		if s.current >= 0 {
			s.history = append(s.history, s.current)
		}
		s.pool.rebuild(len(s.tracks), s.history)
		return s.shuffle
	}

	// An empty snapshot means shuffle was enabled before anything was
	// queued; restoring it would throw away tracks added since.
	if len(s.originalOrder) > 0 {
		var playing *core.Track
		if s.current >= 0 && s.current < len(s.tracks) {
			t := s.tracks[s.current]
			playing = &t
		}

		s.tracks = s.originalOrder

		if playing != nil {
			s.current = 0
			for i, t := range s.tracks {
				if t.ID == playing.ID {
					s.current = i
					break
				}
			}
		}
	}
	s.originalOrder = nil

	s.history = s.history[:0]
	s.pool.clear()
	return s.shuffle
}
