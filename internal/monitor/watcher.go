package monitor

import (
	"context"
	"sync"
	"time"

	"github.com/mitchellh/hashstructure/v2"

	"github.com/mvanholt/croon/internal/core"
	"github.com/mvanholt/croon/internal/player"
)

// EventType represents the type of playback event.
type EventType int

const (
	EventTrackChange EventType = iota
	EventTrackComplete
	EventTrackSkip
	EventPause
	EventResume
	EventVolumeChange
)

// Event represents a playback state change.
type Event struct {
	Type      EventType
	Timestamp time.Time
	Previous  *core.PlaybackState
	Current   *core.PlaybackState
}

// Watcher polls a player for state changes and emits events.
type Watcher struct {
	port     player.Port
	interval time.Duration
	events   chan Event
	done     chan struct{}
	stopOnce sync.Once
}

// NewWatcher creates a new state watcher.
func NewWatcher(port player.Port, interval time.Duration) *Watcher {
	if interval == 0 {
		interval = time.Second
	}
	return &Watcher{
		port:     port,
		interval: interval,
		events:   make(chan Event, 16),
		done:     make(chan struct{}),
	}
}

// Events returns the channel of playback events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Start begins polling for state changes.
func (w *Watcher) Start(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	defer close(w.events)

	prev := player.Snapshot(w.port)
	prevHash := stateHash(prev)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.done:
			return nil
		case <-ticker.C:
			curr := player.Snapshot(w.port)

			// Position advances every tick, so hash everything but
			// position to cheaply skip polls with no real change.
			currHash := stateHash(curr)
			if currHash == prevHash {
				prev = curr
				continue
			}

			events := diffStates(prev, curr)
			for _, e := range events {
				select {
				case w.events <- e:
				default:
					// Drop event if channel is full
				}
			}

			prev = curr
			prevHash = currHash
		}
	}
}

// Stop halts polling. Safe to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() { close(w.done) })
}

// hashableState is the subset of playback state that matters for
// event detection.
type hashableState struct {
	Media     string
	Volume    int
	IsPlaying bool
}

// stateHash returns a hash of the event-relevant parts of a state.
func stateHash(s *core.PlaybackState) uint64 {
	if s == nil {
		return 0
	}
	h, err := hashstructure.Hash(hashableState{
		Media:     s.Media,
		Volume:    s.Volume,
		IsPlaying: s.IsPlaying,
	}, hashstructure.FormatV2, nil)
	if err != nil {
		return 0
	}
	return h
}

// diffStates compares two states and returns detected events.
func diffStates(prev, curr *core.PlaybackState) []Event {
	if curr == nil {
		return nil
	}

	now := time.Now()
	var events []Event

	// First poll - no previous state
	if prev == nil {
		if curr.HasMedia() {
			events = append(events, Event{
				Type:      EventTrackChange,
				Timestamp: now,
				Current:   curr,
			})
		}
		return events
	}

	// Track change detection
	if prev.Media != curr.Media {
		eventType := EventTrackChange

		// Check if it was a completion vs skip
		if prev.HasMedia() && wasCompleted(prev) {
			eventType = EventTrackComplete
		} else if prev.HasMedia() {
			eventType = EventTrackSkip
		}

		events = append(events, Event{
			Type:      eventType,
			Timestamp: now,
			Previous:  prev,
			Current:   curr,
		})
	}

	// Pause/Resume detection
	if prev.IsPlaying && !curr.IsPlaying {
		events = append(events, Event{
			Type:      EventPause,
			Timestamp: now,
			Previous:  prev,
			Current:   curr,
		})
	} else if !prev.IsPlaying && curr.IsPlaying {
		events = append(events, Event{
			Type:      EventResume,
			Timestamp: now,
			Previous:  prev,
			Current:   curr,
		})
	}

	// Volume change detection
	if prev.Volume != curr.Volume {
		events = append(events, Event{
			Type:      EventVolumeChange,
			Timestamp: now,
			Previous:  prev,
			Current:   curr,
		})
	}

	return events
}

// wasCompleted returns true if the track likely finished naturally.
func wasCompleted(state *core.PlaybackState) bool {
	if state.Duration <= 0 {
		return false
	}
	// Consider completed if progress is >= 95% of duration
	return state.Position >= state.Duration*0.95
}
