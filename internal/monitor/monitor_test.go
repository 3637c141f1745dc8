package monitor

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/mvanholt/croon/internal/core"
	"github.com/mvanholt/croon/internal/player"
)

func state(media string, pos, dur float64, playing bool, volume int) *core.PlaybackState {
	return &core.PlaybackState{
		Media:     media,
		Position:  pos,
		Duration:  dur,
		Volume:    volume,
		IsPlaying: playing,
		IsPaused:  !playing,
	}
}

func eventTypes(events []Event) []EventType {
	types := make([]EventType, len(events))
	for i, e := range events {
		types[i] = e.Type
	}
	return types
}

func TestDiffStatesFirstPoll(t *testing.T) {
	events := diffStates(nil, state("https://example.com/a", 10, 200, true, 80))
	if len(events) != 1 || events[0].Type != EventTrackChange {
		t.Fatalf("events = %v, want single track change", eventTypes(events))
	}

	events = diffStates(nil, state("", 0, 0, false, 80))
	if len(events) != 0 {
		t.Errorf("idle first poll: got %d events, want 0", len(events))
	}
}

func TestDiffStatesTrackComplete(t *testing.T) {
	prev := state("https://example.com/a", 196, 200, true, 80)
	curr := state("https://example.com/b", 0, 180, true, 80)

	events := diffStates(prev, curr)
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Type != EventTrackComplete {
		t.Errorf("event type = %v, want EventTrackComplete", events[0].Type)
	}
}

func TestDiffStatesTrackSkip(t *testing.T) {
	prev := state("https://example.com/a", 42, 200, true, 80)
	curr := state("https://example.com/b", 0, 180, true, 80)

	events := diffStates(prev, curr)
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Type != EventTrackSkip {
		t.Errorf("event type = %v, want EventTrackSkip", events[0].Type)
	}
}

func TestDiffStatesPauseResume(t *testing.T) {
	playing := state("https://example.com/a", 42, 200, true, 80)
	paused := state("https://example.com/a", 42, 200, false, 80)

	events := diffStates(playing, paused)
	if len(events) != 1 || events[0].Type != EventPause {
		t.Errorf("pause: events = %v", eventTypes(events))
	}

	events = diffStates(paused, playing)
	if len(events) != 1 || events[0].Type != EventResume {
		t.Errorf("resume: events = %v", eventTypes(events))
	}
}

func TestDiffStatesVolumeChange(t *testing.T) {
	prev := state("https://example.com/a", 42, 200, true, 80)
	curr := state("https://example.com/a", 43, 200, true, 60)

	events := diffStates(prev, curr)
	if len(events) != 1 || events[0].Type != EventVolumeChange {
		t.Fatalf("events = %v, want single volume change", eventTypes(events))
	}
	if events[0].Current.Volume != 60 {
		t.Errorf("Current.Volume = %d, want 60", events[0].Current.Volume)
	}
}

func TestStateHashIgnoresPosition(t *testing.T) {
	a := state("https://example.com/a", 10, 200, true, 80)
	b := state("https://example.com/a", 11, 200, true, 80)

	if stateHash(a) != stateHash(b) {
		t.Error("position change altered hash")
	}

	c := state("https://example.com/b", 10, 200, true, 80)
	if stateHash(a) == stateHash(c) {
		t.Error("media change did not alter hash")
	}
}

func TestFormatterLine(t *testing.T) {
	f := NewFormatter(WithEmoji(false))
	e := Event{
		Type:      EventTrackChange,
		Timestamp: time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
		Current:   state("https://example.com/a", 0, 200, true, 80),
	}

	got := f.Format(e)
	want := "Now playing: https://example.com/a"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}

	f = NewFormatter(WithEmoji(false), WithTimestamp(true))
	got = f.Format(e)
	if !strings.HasPrefix(got, "09:30:00 ") {
		t.Errorf("Format() = %q, want timestamp prefix", got)
	}
}

func TestFormatterTemplate(t *testing.T) {
	f := NewFormatter(WithTemplate("{{.Type}} {{.Media}} vol={{.Volume}}"))
	e := Event{
		Type:      EventVolumeChange,
		Timestamp: time.Now(),
		Current:   state("https://example.com/a", 42, 200, true, 65),
	}

	got := f.Format(e)
	want := "volume_change https://example.com/a vol=65"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

// idlePort is a port with nothing loaded.
type idlePort struct{}

func (idlePort) Play(string)                   {}
func (idlePort) Pause(bool)                    {}
func (idlePort) TogglePause()                  {}
func (idlePort) Stop()                         {}
func (idlePort) Seek(float64, player.SeekMode) {}
func (idlePort) SetVolume(int)                 {}
func (idlePort) Volume() int                   { return 0 }
func (idlePort) Position() float64             { return 0 }
func (idlePort) Duration() float64             { return 0 }
func (idlePort) IsPlaying() bool               { return false }
func (idlePort) IsPaused() bool                { return false }
func (idlePort) Media() string                 { return "" }

func TestWatcherStopIsIdempotent(t *testing.T) {
	w := NewWatcher(idlePort{}, 10*time.Millisecond)

	done := make(chan error, 1)
	go func() { done <- w.Start(context.Background()) }()

	w.Stop()
	w.Stop() // second call must not panic

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Start() = %v, want nil", err)
		}
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop")
	}
}
