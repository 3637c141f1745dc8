package wizard

import (
	"os"

	"golang.org/x/term"

	"github.com/mvanholt/croon/internal/core"
)

// Interactive drives the terminal track picker for commands that fall
// back to prompting when no query was given.
type Interactive struct {
	searchFunc SearchFunc
}

// NewInteractive creates a picker backed by the given search function.
func NewInteractive(fn SearchFunc) *Interactive {
	return &Interactive{searchFunc: fn}
}

// IsTerminal returns true if stdout is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// CanInteract reports whether a prompt can be shown.
func (i *Interactive) CanInteract() bool {
	return i.searchFunc != nil && IsTerminal()
}

// PromptTrack launches the track picker. Returns the selected track,
// or nil if cancelled or prompting is not possible.
func (i *Interactive) PromptTrack() (*core.Track, error) {
	if !i.CanInteract() {
		return nil, nil
	}
	return RunSearch(i.searchFunc)
}

// NeedsQuery returns true if a search query is required but missing.
func NeedsQuery(args []string) bool {
	return len(args) == 0
}
