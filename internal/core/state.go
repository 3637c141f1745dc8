package core

// PlaybackState is a point-in-time snapshot of the external player, as
// reported by the playback port. All fields carry safe zero defaults
// when the player is idle or not yet started.
type PlaybackState struct {
	Media     string  `json:"media"` // URL of the loaded source, "" when idle
	Position  float64 `json:"position"`
	Duration  float64 `json:"duration"`
	Volume    int     `json:"volume"`
	IsPlaying bool    `json:"is_playing"`
	IsPaused  bool    `json:"is_paused"`
}

// HasMedia returns true if the player has a source loaded.
func (s *PlaybackState) HasMedia() bool {
	return s != nil && s.Media != ""
}

// Remaining returns the seconds left in the current track, or 0 when
// the duration is unknown.
func (s *PlaybackState) Remaining() float64 {
	if s == nil || s.Duration <= 0 {
		return 0
	}
	r := s.Duration - s.Position
	if r < 0 {
		return 0
	}
	return r
}

// ProgressPercent returns playback progress as a percentage (0-100).
func (s *PlaybackState) ProgressPercent() float64 {
	if s == nil || s.Duration <= 0 {
		return 0
	}
	p := s.Position / s.Duration * 100
	if p > 100 {
		return 100
	}
	return p
}
