package core

import "testing"

func TestWatchURL(t *testing.T) {
	track := Track{ID: "dQw4w9WgXcQ"}
	want := "https://music.youtube.com/watch?v=dQw4w9WgXcQ"
	if got := track.WatchURL(); got != want {
		t.Errorf("WatchURL() = %q, want %q", got, want)
	}
}

func TestSanitizedFillsUnknowns(t *testing.T) {
	track := Track{ID: "abc"}
	got := track.Sanitized()

	if got.Title != UnknownTitle {
		t.Errorf("Title = %q, want %q", got.Title, UnknownTitle)
	}
	if got.Artist != UnknownArtist {
		t.Errorf("Artist = %q, want %q", got.Artist, UnknownArtist)
	}
	if got.Album != UnknownAlbum {
		t.Errorf("Album = %q, want %q", got.Album, UnknownAlbum)
	}
	if got.Duration != UnknownDuration {
		t.Errorf("Duration = %q, want %q", got.Duration, UnknownDuration)
	}
}

func TestSanitizedKeepsValues(t *testing.T) {
	track := Track{ID: "abc", Title: "Aja", Artist: "Steely Dan", Album: "Aja", Duration: "7:57"}
	if got := track.Sanitized(); got != track {
		t.Errorf("Sanitized() = %+v, want unchanged", got)
	}
}

func TestRepeatModeCycle(t *testing.T) {
	tests := []struct {
		mode RepeatMode
		want RepeatMode
	}{
		{RepeatOff, RepeatAll},
		{RepeatAll, RepeatOne},
		{RepeatOne, RepeatOff},
	}
	for _, tt := range tests {
		if got := tt.mode.Next(); got != tt.want {
			t.Errorf("%v.Next() = %v, want %v", tt.mode, got, tt.want)
		}
	}
}

func TestParseRepeatMode(t *testing.T) {
	tests := []struct {
		in   string
		want RepeatMode
	}{
		{"off", RepeatOff},
		{"all", RepeatAll},
		{"one", RepeatOne},
		{"", RepeatOff},
		{"bogus", RepeatOff},
	}
	for _, tt := range tests {
		if got := ParseRepeatMode(tt.in); got != tt.want {
			t.Errorf("ParseRepeatMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestProgressPercent(t *testing.T) {
	var nilState *PlaybackState
	if got := nilState.ProgressPercent(); got != 0 {
		t.Errorf("nil state percent = %v, want 0", got)
	}

	state := &PlaybackState{Position: 30, Duration: 120}
	if got := state.ProgressPercent(); got != 25 {
		t.Errorf("ProgressPercent() = %v, want 25", got)
	}

	idle := &PlaybackState{Position: 30, Duration: 0}
	if got := idle.ProgressPercent(); got != 0 {
		t.Errorf("zero duration percent = %v, want 0", got)
	}
}

func TestRemaining(t *testing.T) {
	state := &PlaybackState{Position: 100, Duration: 180}
	if got := state.Remaining(); got != 80 {
		t.Errorf("Remaining() = %v, want 80", got)
	}
}
