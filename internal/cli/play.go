package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mvanholt/croon/internal/catalog"
	"github.com/mvanholt/croon/internal/core"
	"github.com/mvanholt/croon/internal/tui"
	"github.com/mvanholt/croon/internal/wizard"
)

var playPick bool

var playCmd = &cobra.Command{
	Use:   "play [query]",
	Short: "Search for a song and start playing",
	Long: `Search the catalog and start playing the best match, then open
the interactive player.

Without arguments, opens an interactive track picker.

Examples:
  croon play "bohemian rhapsody"  # Play the first match
  croon play --pick "aja"         # Choose from matches interactively
  croon play                      # Open the track picker`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVarP(&playPick, "pick", "p", false, "choose from search results interactively")
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	cat := newCatalogClient()

	track, err := resolveTrack(cmd.Context(), cat, args)
	if err != nil {
		return err
	}
	if track == nil {
		// Picker cancelled
		return nil
	}

	mpv, err := startPlayer()
	if err != nil {
		return err
	}
	defer func() { _ = mpv.Close() }()

	sess := newSession(mpv)
	sess.Add(*track)
	sess.PlayIndex(0)

	return tui.Run(sess, cat,
		time.Duration(cfg.TUI.RefreshInterval)*time.Millisecond,
		cfg.Catalog.SearchLimit,
		cfg.TUI.Theme)
}

// resolveTrack picks the track to play from args, the picker, or both.
func resolveTrack(ctx context.Context, cat *catalog.Client, args []string) (*core.Track, error) {
	searchFn := func(query string) ([]core.Track, error) {
		sctx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
		return cat.Search(sctx, query, cfg.Catalog.SearchLimit)
	}

	if wizard.NeedsQuery(args) || playPick {
		picker := wizard.NewInteractive(searchFn)
		if !picker.CanInteract() {
			return nil, fmt.Errorf("a search query is required when not running in a terminal")
		}
		return picker.PromptTrack()
	}

	query := strings.Join(args, " ")
	results, err := searchFn(query)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("no results found for '%s'", query)
	}
	return &results[0], nil
}
