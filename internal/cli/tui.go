package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mvanholt/croon/internal/core"
	"github.com/mvanholt/croon/internal/player"
	"github.com/mvanholt/croon/internal/session"
	"github.com/mvanholt/croon/internal/tui"
)

var tuiRefresh int

var tuiCmd = &cobra.Command{
	Use:     "ui",
	Aliases: []string{"tui"},
	Short:   "Launch interactive player",
	Long: `Launch the interactive terminal player.

The player provides a live view with:
  • Now Playing - current track, progress, modes
  • Queue - tracks with the playing one marked
  • Lyrics - lyrics for the current track

Keyboard shortcuts:
  q, Ctrl+C    Quit
  ?            Help
  /            Search
  Space        Play/Pause
  n            Next track
  p            Previous track
  s            Shuffle
  r            Repeat
  Tab          Switch panel`,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().IntVar(&tuiRefresh, "refresh", 0, "Refresh interval in milliseconds (default from config)")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	mpv, err := startPlayer()
	if err != nil {
		return err
	}
	defer func() { _ = mpv.Close() }()

	sess := newSession(mpv)
	cat := newCatalogClient()

	refresh := cfg.TUI.RefreshInterval
	if tuiRefresh > 0 {
		refresh = tuiRefresh
	}

	return tui.Run(sess, cat,
		time.Duration(refresh)*time.Millisecond,
		cfg.Catalog.SearchLimit,
		cfg.TUI.Theme)
}

// startPlayer spawns the configured media player.
func startPlayer() (*player.MPV, error) {
	mpv, err := player.Start(player.Options{
		Binary:    cfg.Player.Binary,
		Socket:    cfg.Player.Socket,
		ExtraArgs: cfg.Player.ExtraArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start player: %w", err)
	}
	mpv.SetVolume(cfg.Defaults.Volume)
	return mpv, nil
}

// newSession creates a session seeded with configured defaults.
func newSession(port player.Port) *session.Session {
	return session.New(port,
		session.WithRepeat(core.ParseRepeatMode(cfg.Defaults.Repeat)),
		session.WithShuffle(cfg.Defaults.Shuffle),
	)
}
