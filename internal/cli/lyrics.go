package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var lyricsCmd = &cobra.Command{
	Use:   "lyrics <query>",
	Short: "Show lyrics for a song",
	Long: `Search the catalog and print lyrics for the best match.

Examples:
  croon lyrics "hotel california"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLyrics,
}

func init() {
	rootCmd.AddCommand(lyricsCmd)
}

func runLyrics(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	query := strings.Join(args, " ")
	cat := newCatalogClient()

	results, err := cat.Search(ctx, query, 1)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	if len(results) == 0 {
		return fmt.Errorf("no results found for '%s'", query)
	}

	track := results[0]
	text := cat.Lyrics(ctx, track.ID)

	if JSONOutput() {
		return json.NewEncoder(os.Stdout).Encode(map[string]string{
			"id":     track.ID,
			"title":  track.Title,
			"artist": track.Artist,
			"lyrics": text,
		})
	}

	fmt.Printf("%s — %s\n\n", track.Title, track.Artist)
	fmt.Println(text)
	return nil
}
