package session

import (
	"math/rand"
	"testing"

	"github.com/mvanholt/croon/internal/core"
	"github.com/mvanholt/croon/internal/player"
)

// fakePort records the playback commands the session issues.
type fakePort struct {
	played   []string
	stops    int
	seeks    []float64
	seekMode player.SeekMode
	position float64
	duration float64
	volume   int
	playing  bool
	paused   bool
}

func (f *fakePort) Play(url string) {
	f.played = append(f.played, url)
	f.playing = true
	f.paused = false
}
func (f *fakePort) Pause(paused bool)  { f.paused = paused }
func (f *fakePort) TogglePause()       { f.paused = !f.paused }
func (f *fakePort) Stop()              { f.stops++; f.playing = false }
func (f *fakePort) SetVolume(level int) { f.volume = level }
func (f *fakePort) Volume() int        { return f.volume }
func (f *fakePort) Position() float64  { return f.position }
func (f *fakePort) Duration() float64  { return f.duration }
func (f *fakePort) IsPlaying() bool    { return f.playing }
func (f *fakePort) IsPaused() bool     { return f.paused }
func (f *fakePort) Media() string      { return "" }

func (f *fakePort) Seek(seconds float64, mode player.SeekMode) {
	f.seeks = append(f.seeks, seconds)
	f.seekMode = mode
}

func mkTracks(ids ...string) []core.Track {
	out := make([]core.Track, len(ids))
	for i, id := range ids {
		out[i] = core.Track{ID: id, Title: "Track " + id, Artist: "Artist", Album: "Album", Duration: "3:00"}
	}
	return out
}

// newSession builds a session over the given track IDs with a
// deterministic random source.
func newSession(ids ...string) (*Session, *fakePort) {
	port := &fakePort{}
	s := New(port, WithRand(rand.New(rand.NewSource(1))))
	for _, t := range mkTracks(ids...) {
		s.Add(t)
	}
	return s, port
}

func TestAddAndCurrent(t *testing.T) {
	s, _ := newSession("a", "b")

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	if s.CurrentIndex() != -1 {
		t.Errorf("CurrentIndex() = %d, want -1 before anything plays", s.CurrentIndex())
	}
	if s.Current() != nil {
		t.Error("Current() != nil with no selection")
	}

	s.PlayIndex(1)
	if got := s.Current(); got == nil || got.ID != "b" {
		t.Errorf("Current() = %+v, want track b", got)
	}
}

func TestPlayIndexOutOfBounds(t *testing.T) {
	s, port := newSession("a")

	s.PlayIndex(-1)
	s.PlayIndex(1)

	if len(port.played) != 0 {
		t.Errorf("played %v, want nothing for out-of-bounds indices", port.played)
	}
	if s.CurrentIndex() != -1 {
		t.Errorf("CurrentIndex() = %d, want -1", s.CurrentIndex())
	}
}

func TestPlayIndexUsesWatchURL(t *testing.T) {
	s, port := newSession("abc123")

	s.PlayIndex(0)

	want := "https://music.youtube.com/watch?v=abc123"
	if len(port.played) != 1 || port.played[0] != want {
		t.Errorf("played %v, want [%s]", port.played, want)
	}
}

func TestRemoveBeforeCursor(t *testing.T) {
	s, _ := newSession("a", "b", "c")
	s.PlayIndex(2)

	removed, ok := s.Remove(0)
	if !ok || removed.ID != "a" {
		t.Fatalf("Remove(0) = %+v, %v", removed, ok)
	}
	if s.CurrentIndex() != 1 {
		t.Errorf("CurrentIndex() = %d, want 1 (cursor follows track c)", s.CurrentIndex())
	}
	if got := s.Current(); got == nil || got.ID != "c" {
		t.Errorf("Current() = %+v, want track c", got)
	}
}

func TestRemoveAtCursorStopsPlayback(t *testing.T) {
	s, port := newSession("a", "b", "c")
	s.PlayIndex(1)

	if _, ok := s.Remove(1); !ok {
		t.Fatal("Remove(1) failed")
	}
	if s.CurrentIndex() != -1 {
		t.Errorf("CurrentIndex() = %d, want -1 after removing current", s.CurrentIndex())
	}
	if port.stops != 1 {
		t.Errorf("stops = %d, want 1", port.stops)
	}
}

func TestRemoveAfterCursor(t *testing.T) {
	s, port := newSession("a", "b", "c")
	s.PlayIndex(0)

	s.Remove(2)

	if s.CurrentIndex() != 0 {
		t.Errorf("CurrentIndex() = %d, want 0", s.CurrentIndex())
	}
	if port.stops != 0 {
		t.Errorf("stops = %d, want 0", port.stops)
	}
}

func TestRemoveOutOfBounds(t *testing.T) {
	s, _ := newSession("a")

	if _, ok := s.Remove(-1); ok {
		t.Error("Remove(-1) succeeded")
	}
	if _, ok := s.Remove(1); ok {
		t.Error("Remove(1) succeeded")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestClear(t *testing.T) {
	s, port := newSession("a", "b")
	s.PlayIndex(0)

	s.Clear()

	if !s.IsEmpty() {
		t.Error("queue not empty after Clear")
	}
	if s.CurrentIndex() != -1 {
		t.Errorf("CurrentIndex() = %d, want -1", s.CurrentIndex())
	}
	if port.stops != 1 {
		t.Errorf("stops = %d, want 1", port.stops)
	}
}

func TestMove(t *testing.T) {
	tests := []struct {
		name        string
		ids         []string
		current     int
		from, to    int
		wantOrder   []string
		wantCurrent int
	}{
		{
			// The worked example: moving A past the cursor shifts C left.
			name:        "move before cursor to after",
			ids:         []string{"A", "B", "C", "D"},
			current:     2,
			from:        0,
			to:          3,
			wantOrder:   []string{"B", "C", "D", "A"},
			wantCurrent: 1,
		},
		{
			name:        "move the current track",
			ids:         []string{"A", "B", "C"},
			current:     0,
			from:        0,
			to:          2,
			wantOrder:   []string{"B", "C", "A"},
			wantCurrent: 2,
		},
		{
			name:        "move from after cursor to before",
			ids:         []string{"A", "B", "C", "D"},
			current:     1,
			from:        3,
			to:          0,
			wantOrder:   []string{"D", "A", "B", "C"},
			wantCurrent: 2,
		},
		{
			name:        "move entirely after cursor",
			ids:         []string{"A", "B", "C", "D"},
			current:     0,
			from:        2,
			to:          3,
			wantOrder:   []string{"A", "B", "D", "C"},
			wantCurrent: 0,
		},
		{
			name:        "from equals to",
			ids:         []string{"A", "B", "C"},
			current:     1,
			from:        1,
			to:          1,
			wantOrder:   []string{"A", "B", "C"},
			wantCurrent: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newSession(tt.ids...)
			s.PlayIndex(tt.current)

			if !s.Move(tt.from, tt.to) {
				t.Fatalf("Move(%d, %d) failed", tt.from, tt.to)
			}

			got := s.Tracks()
			for i, id := range tt.wantOrder {
				if got[i].ID != id {
					t.Errorf("track[%d] = %s, want %s", i, got[i].ID, id)
				}
			}
			if s.CurrentIndex() != tt.wantCurrent {
				t.Errorf("CurrentIndex() = %d, want %d", s.CurrentIndex(), tt.wantCurrent)
			}
		})
	}
}

func TestMoveOutOfBounds(t *testing.T) {
	s, _ := newSession("a", "b")
	s.PlayIndex(0)

	if s.Move(-1, 1) {
		t.Error("Move(-1, 1) succeeded")
	}
	if s.Move(0, 2) {
		t.Error("Move(0, 2) succeeded")
	}
	if got := s.Tracks(); got[0].ID != "a" || got[1].ID != "b" {
		t.Errorf("queue reordered by failed move: %v", got)
	}
	if s.CurrentIndex() != 0 {
		t.Errorf("CurrentIndex() = %d, want 0", s.CurrentIndex())
	}
}
