package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mvanholt/croon/internal/player"
)

// Playback controls that attach to a running player. Queue-level
// operations (next, previous, shuffle) live in the interactive player;
// these commands only drive the transport.

var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause playback",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withAttachedPlayer(func(mpv *player.MPV) error {
			mpv.Pause(true)
			if !JSONOutput() {
				fmt.Println("⏸ Paused")
			}
			return nil
		})
	},
}

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Resume playback",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withAttachedPlayer(func(mpv *player.MPV) error {
			mpv.Pause(false)
			if !JSONOutput() {
				fmt.Println("▶ Resumed")
			}
			return nil
		})
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop playback",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withAttachedPlayer(func(mpv *player.MPV) error {
			mpv.Stop()
			if !JSONOutput() {
				fmt.Println("⏹ Stopped")
			}
			return nil
		})
	},
}

var volumeCmd = &cobra.Command{
	Use:   "volume [level]",
	Short: "Get or set the volume",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withAttachedPlayer(func(mpv *player.MPV) error {
			if len(args) == 0 {
				fmt.Printf("%d\n", mpv.Volume())
				return nil
			}

			level, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid volume: %s", args[0])
			}
			if level < 0 || level > 100 {
				return fmt.Errorf("volume must be between 0 and 100")
			}

			mpv.SetVolume(level)
			if !JSONOutput() {
				fmt.Printf("🔊 Volume: %d%%\n", level)
			}
			return nil
		})
	},
}

var seekCmd = &cobra.Command{
	Use:   "seek <seconds>",
	Short: "Seek relative to the current position",
	Long: `Seek forward or backward in the current track.

Examples:
  croon seek 30    # Forward 30 seconds
  croon seek -10   # Back 10 seconds`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withAttachedPlayer(func(mpv *player.MPV) error {
			seconds, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid offset: %s", args[0])
			}
			mpv.Seek(seconds, player.SeekRelative)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(pauseCmd)
	rootCmd.AddCommand(resumeCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(volumeCmd)
	rootCmd.AddCommand(seekCmd)
}

func withAttachedPlayer(fn func(*player.MPV) error) error {
	mpv, err := attachPlayer("")
	if err != nil {
		return err
	}
	defer func() { _ = mpv.Close() }()
	return fn(mpv)
}
