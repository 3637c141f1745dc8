package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mvanholt/croon/internal/player"
)

var statusSocket string

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current playback status",
	Long:  `Attach to a running player and print its current state.`,
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().StringVarP(&statusSocket, "socket", "s", "", "player socket path (default from config)")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	mpv, err := attachPlayer(statusSocket)
	if err != nil {
		return err
	}
	defer func() { _ = mpv.Close() }()

	state := player.Snapshot(mpv)

	if JSONOutput() {
		return json.NewEncoder(os.Stdout).Encode(state)
	}

	if !state.HasMedia() {
		fmt.Println("Nothing playing")
		return nil
	}

	icon := "⏸"
	if state.IsPlaying {
		icon = "▶"
	}

	fmt.Printf("%s %s\n", icon, state.Media)
	fmt.Printf("  %s %s %s\n",
		FormatDuration(int(state.Position)),
		FormatProgress(int(state.Position), int(state.Duration), 30),
		FormatDuration(int(state.Duration)))
	fmt.Printf("  volume: %d%%\n", state.Volume)

	return nil
}
