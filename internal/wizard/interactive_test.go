package wizard

import "testing"

func TestNeedsQuery(t *testing.T) {
	if !NeedsQuery(nil) {
		t.Error("NeedsQuery(nil) = false, want true")
	}
	if NeedsQuery([]string{"aja"}) {
		t.Error("NeedsQuery with args = true, want false")
	}
}

func TestPromptTrackWithoutSearchFunc(t *testing.T) {
	picker := NewInteractive(nil)

	if picker.CanInteract() {
		t.Error("CanInteract() = true without a search function")
	}

	track, err := picker.PromptTrack()
	if track != nil || err != nil {
		t.Errorf("PromptTrack() = (%v, %v), want (nil, nil)", track, err)
	}
}
