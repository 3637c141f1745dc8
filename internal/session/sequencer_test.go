package session

import (
	"testing"

	"github.com/mvanholt/croon/internal/core"
	"github.com/mvanholt/croon/internal/player"
)

func TestAdvanceSequential(t *testing.T) {
	s, _ := newSession("a", "b", "c")
	s.PlayIndex(0)

	s.Advance()
	if s.CurrentIndex() != 1 {
		t.Errorf("CurrentIndex() = %d, want 1", s.CurrentIndex())
	}
	s.Advance()
	if s.CurrentIndex() != 2 {
		t.Errorf("CurrentIndex() = %d, want 2", s.CurrentIndex())
	}
}

func TestAdvanceAtEndStops(t *testing.T) {
	s, port := newSession("a", "b")
	s.PlayIndex(1)

	s.Advance()

	if s.CurrentIndex() != 1 {
		t.Errorf("CurrentIndex() = %d, want unchanged 1", s.CurrentIndex())
	}
	if port.stops != 1 {
		t.Errorf("stops = %d, want 1 (end of queue)", port.stops)
	}
	if len(port.played) != 2 {
		t.Errorf("played %d tracks, want 2 (nothing new at end)", len(port.played))
	}
}

func TestAdvanceRepeatAllWraps(t *testing.T) {
	s, _ := newSession("a", "b")
	s.PlayIndex(1)
	s.CycleRepeat() // all

	s.Advance()

	if s.CurrentIndex() != 0 {
		t.Errorf("CurrentIndex() = %d, want wrap to 0", s.CurrentIndex())
	}
}

func TestAdvanceRepeatOneReplays(t *testing.T) {
	s, port := newSession("a", "b")
	s.PlayIndex(1)
	s.CycleRepeat() // all
	s.CycleRepeat() // one

	s.Advance()

	if s.CurrentIndex() != 1 {
		t.Errorf("CurrentIndex() = %d, want unchanged 1", s.CurrentIndex())
	}
	if len(port.played) != 2 || port.played[1] != port.played[0] {
		t.Errorf("played = %v, want the same track twice", port.played)
	}
}

func TestAdvanceEmptyQueue(t *testing.T) {
	s, port := newSession()

	s.Advance()

	if len(port.played) != 0 || port.stops != 0 {
		t.Error("Advance on empty queue touched the port")
	}
}

func TestShuffleCoversAllIndicesBeforeRepeating(t *testing.T) {
	s, _ := newSession("a", "b", "c", "d", "e")
	s.ToggleShuffle()

	seen := make(map[int]bool)
	for i := 0; i < s.Len(); i++ {
		s.Advance()
		idx := s.CurrentIndex()
		if seen[idx] {
			t.Fatalf("index %d selected twice within one shuffle cycle", idx)
		}
		seen[idx] = true
	}
	if len(seen) != 5 {
		t.Errorf("cycle covered %d indices, want 5", len(seen))
	}

	// The next draw starts a fresh cycle rather than stalling.
	s.Advance()
	if s.CurrentIndex() < 0 || s.CurrentIndex() >= 5 {
		t.Errorf("post-cycle CurrentIndex() = %d out of range", s.CurrentIndex())
	}
	if len(s.history) != 1 {
		t.Errorf("history = %v, want reset to single entry", s.history)
	}
}

func TestShuffleSkipsSeededCurrent(t *testing.T) {
	s, _ := newSession("a", "b", "c")
	s.PlayIndex(0)
	s.ToggleShuffle()

	// Two advances must cover the two tracks that were not playing.
	s.Advance()
	first := s.CurrentIndex()
	s.Advance()
	second := s.CurrentIndex()

	if first == 0 || second == 0 {
		t.Errorf("advance picked the seeded current index 0 within the cycle (%d, %d)", first, second)
	}
	if first == second {
		t.Errorf("advance repeated index %d within the cycle", first)
	}
}

func TestRetreatRestartsWhenPastThreshold(t *testing.T) {
	for _, mode := range []core.RepeatMode{core.RepeatOff, core.RepeatAll, core.RepeatOne} {
		s, port := newSession("a", "b")
		s.PlayIndex(1)
		for s.Repeat() != mode {
			s.CycleRepeat()
		}
		port.position = 5.0

		s.Retreat()

		if s.CurrentIndex() != 1 {
			t.Errorf("mode %v: CurrentIndex() = %d, want unchanged 1", mode, s.CurrentIndex())
		}
		if len(port.seeks) != 1 || port.seeks[0] != 0 || port.seekMode != player.SeekAbsolute {
			t.Errorf("mode %v: seeks = %v (%v), want absolute seek to 0", mode, port.seeks, port.seekMode)
		}
	}
}

func TestRetreatBelowThresholdMovesBack(t *testing.T) {
	s, port := newSession("a", "b")
	s.PlayIndex(1)
	port.position = 2.0

	s.Retreat()

	if s.CurrentIndex() != 0 {
		t.Errorf("CurrentIndex() = %d, want 0", s.CurrentIndex())
	}
	if len(port.seeks) != 0 {
		t.Errorf("seeks = %v, want none", port.seeks)
	}
}

func TestRetreatAtStartClampsToZero(t *testing.T) {
	s, port := newSession("a", "b")
	s.PlayIndex(0)
	port.position = 1.0

	s.Retreat()

	if s.CurrentIndex() != 0 {
		t.Errorf("CurrentIndex() = %d, want clamp to 0", s.CurrentIndex())
	}
}

func TestRetreatRepeatAllWrapsToLast(t *testing.T) {
	s, _ := newSession("a", "b", "c")
	s.PlayIndex(0)
	s.CycleRepeat() // all

	s.Retreat()

	if s.CurrentIndex() != 2 {
		t.Errorf("CurrentIndex() = %d, want wrap to 2", s.CurrentIndex())
	}
}

func TestRetreatShuffleWalksHistory(t *testing.T) {
	s, _ := newSession("a", "b", "c", "d")
	s.ToggleShuffle()

	s.Advance()
	first := s.CurrentIndex()
	s.Advance()

	s.Retreat()

	if s.CurrentIndex() != first {
		t.Errorf("CurrentIndex() = %d, want previous shuffle pick %d", s.CurrentIndex(), first)
	}
	// The popped index is unplayed again and may be drawn in this cycle.
	if len(s.pool.remaining) != 3 {
		t.Errorf("pool size = %d, want 3 after un-playing one index", len(s.pool.remaining))
	}
}

func TestRetreatShuffleSingleHistoryReplays(t *testing.T) {
	s, port := newSession("a", "b")
	s.PlayIndex(0)
	s.ToggleShuffle()

	s.Retreat()

	if s.CurrentIndex() != 0 {
		t.Errorf("CurrentIndex() = %d, want replayed 0", s.CurrentIndex())
	}
	if len(port.played) != 2 {
		t.Errorf("played = %v, want replay of current", port.played)
	}
}

func TestRetreatEmptyQueue(t *testing.T) {
	s, port := newSession()

	s.Retreat()

	if len(port.played) != 0 && port.stops != 0 {
		t.Error("Retreat on empty queue touched the port")
	}
}

func TestShouldAutoAdvance(t *testing.T) {
	s, _ := newSession("a", "b")
	s.PlayIndex(0)

	tests := []struct {
		name  string
		state *core.PlaybackState
		want  bool
	}{
		{"near end", &core.PlaybackState{Position: 179.8, Duration: 180}, true},
		{"mid track", &core.PlaybackState{Position: 90, Duration: 180}, false},
		{"paused near end", &core.PlaybackState{Position: 179.8, Duration: 180, IsPaused: true}, false},
		{"no duration yet", &core.PlaybackState{Position: 0, Duration: 0}, false},
		{"nil state", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.ShouldAutoAdvance(tt.state); got != tt.want {
				t.Errorf("ShouldAutoAdvance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestShouldAutoAdvanceNeedsCurrentTrack(t *testing.T) {
	s, _ := newSession("a")

	state := &core.PlaybackState{Position: 179.8, Duration: 180}
	if s.ShouldAutoAdvance(state) {
		t.Error("ShouldAutoAdvance() = true with no current track")
	}
}
