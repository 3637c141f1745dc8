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

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the music catalog",
	Long: `Search the catalog for songs matching a query.

Examples:
  croon search "bohemian rhapsody"
  croon search --limit 5 "miles davis"
  croon search --json "aja"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "l", 0, "maximum number of results (default from config)")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	limit := cfg.Catalog.SearchLimit
	if searchLimit > 0 {
		limit = searchLimit
	}

	query := strings.Join(args, " ")
	cat := newCatalogClient()

	results, err := cat.Search(ctx, query, limit)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if JSONOutput() {
		return json.NewEncoder(os.Stdout).Encode(results)
	}

	if len(results) == 0 {
		fmt.Printf("No results found for '%s'\n", query)
		return nil
	}

	table := NewTable("#", "TITLE", "ARTIST", "ALBUM", "DURATION")
	for i, track := range results {
		table.Row(
			fmt.Sprintf("%d", i+1),
			TruncateString(track.Title, 40),
			TruncateString(track.Artist, 30),
			TruncateString(track.Album, 30),
			track.Duration,
		)
	}
	table.Flush()

	return nil
}
