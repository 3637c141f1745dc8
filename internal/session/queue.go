package session

import "github.com/mvanholt/croon/internal/core"

// Add appends a track to the end of the queue. It always succeeds.
func (s *Session) Add(track core.Track) {
	s.tracks = append(s.tracks, track)
	if s.shuffle {
		s.pool.add(len(s.tracks) - 1)
	}
}

// Remove deletes the track at index i. Out-of-bounds indices are a
// no-op. Removing before the cursor shifts it left so it keeps
// pointing at the same track; removing the current track stops
// playback and clears the cursor.
func (s *Session) Remove(i int) (core.Track, bool) {
	if i < 0 || i >= len(s.tracks) {
		return core.Track{}, false
	}

	removed := s.tracks[i]
	s.tracks = append(s.tracks[:i], s.tracks[i+1:]...)

	switch {
	case i < s.current:
		s.current--
	case i == s.current:
		s.port.Stop()
		s.current = -1
	}

	if s.shuffle {
		s.pool.rebuild(len(s.tracks), s.history)
	}
	return removed, true
}

// Clear empties the queue and stops playback.
func (s *Session) Clear() {
	s.tracks = s.tracks[:0]
	s.current = -1
	s.history = s.history[:0]
	s.pool.clear()
	s.port.Stop()
}

// Move relocates the track at from to position to, using pop-then-
// reinsert semantics. Either index out of bounds is a no-op. The
// cursor is rebased so it keeps pointing at the same logical track.
func (s *Session) Move(from, to int) bool {
	n := len(s.tracks)
	if from < 0 || from >= n || to < 0 || to >= n {
		return false
	}

	track := s.tracks[from]
	s.tracks = append(s.tracks[:from], s.tracks[from+1:]...)
	s.tracks = append(s.tracks[:to], append([]core.Track{track}, s.tracks[to:]...)...)

	switch {
	case from == s.current:
		s.current = to
	case from < s.current && s.current <= to:
		s.current--
	case to <= s.current && s.current < from:
		s.current++
	}

	if s.shuffle {
		s.pool.rebuild(len(s.tracks), s.history)
	}
	return true
}

// PlayIndex selects the track at index i and starts playing it.
// Out-of-bounds indices are a no-op.
func (s *Session) PlayIndex(i int) {
	if i < 0 || i >= len(s.tracks) {
		return
	}
	s.current = i
	s.port.Play(s.tracks[i].WatchURL())
}
