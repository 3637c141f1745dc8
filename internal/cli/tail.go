package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mvanholt/croon/internal/errors"
	"github.com/mvanholt/croon/internal/monitor"
	"github.com/mvanholt/croon/internal/player"
)

var (
	tailSocket    string
	tailNoEmoji   bool
	tailTimestamp bool
	tailRelative  bool
	tailFormat    string
	tailInterval  time.Duration
)

var tailCmd = &cobra.Command{
	Use:   "tail",
	Short: "Follow playback changes in real-time",
	Long: `Attach to a running player and print state changes as they happen.

Events tracked:
  - Track changes (new song started)
  - Track completions (song finished)
  - Track skips (song skipped before completion)
  - Pause/Resume
  - Volume changes`,
	RunE: runTail,
}

func init() {
	tailCmd.Flags().StringVarP(&tailSocket, "socket", "s", "", "player socket path (default from config)")
	tailCmd.Flags().BoolVar(&tailNoEmoji, "no-emoji", false, "disable emoji output")
	tailCmd.Flags().BoolVarP(&tailTimestamp, "timestamp", "t", false, "show timestamps")
	tailCmd.Flags().BoolVarP(&tailRelative, "relative", "r", false, "show relative timestamps")
	tailCmd.Flags().StringVarP(&tailFormat, "format", "f", "", "custom format template")
	tailCmd.Flags().DurationVarP(&tailInterval, "interval", "i", time.Second, "poll interval")

	rootCmd.AddCommand(tailCmd)
}

func runTail(cmd *cobra.Command, args []string) error {
	mpv, err := attachPlayer(tailSocket)
	if err != nil {
		return err
	}
	defer func() { _ = mpv.Close() }()

	formatter := monitor.NewFormatter(
		monitor.WithEmoji(!tailNoEmoji),
		monitor.WithTimestamp(tailTimestamp || tailRelative),
		monitor.WithRelativeTime(tailRelative),
		monitor.WithTemplate(tailFormat),
	)

	// Handle Ctrl+C gracefully
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		cancel()
	}()

	watcher := monitor.NewWatcher(mpv, tailInterval)
	defer watcher.Stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- watcher.Start(ctx)
	}()

	// Print events as they arrive
	for {
		select {
		case event, ok := <-watcher.Events():
			if !ok {
				return nil
			}
			fmt.Println(formatter.Format(event))

		case err := <-errCh:
			if err == context.Canceled {
				return nil
			}
			return err
		}
	}
}

// attachPlayer connects to an already-running player socket. An empty
// override falls back to the configured socket, then the default path.
func attachPlayer(override string) (*player.MPV, error) {
	socket := override
	if socket == "" {
		socket = cfg.Player.Socket
	}
	if socket == "" {
		socket = player.DefaultSocket()
	}

	mpv, err := player.Attach(socket)
	if err != nil {
		return nil, errors.WithSuggestion(
			fmt.Errorf("failed to attach to player at %s: %w", socket, err),
			"Start a session with 'croon ui' or 'croon play <query>' first")
	}
	return mpv, nil
}
