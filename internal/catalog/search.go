package catalog

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mvanholt/croon/internal/core"
)

// DefaultSearchLimit bounds a search when the caller passes no limit.
const DefaultSearchLimit = 20

// Search queries the catalog for songs. Results are normalized to
// Track values with fallback display fields and deduplicated by ID,
// preserving catalog order.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]core.Track, error) {
	if query == "" {
		return nil, fmt.Errorf("search query cannot be empty")
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	params := map[string]string{
		"q":     query,
		"type":  "songs",
		"limit": strconv.Itoa(limit),
	}

	var resp searchResponse
	if err := c.Get(ctx, BuildURL("/v1/search", params), &resp); err != nil {
		return nil, err
	}

	tracks := make([]core.Track, 0, len(resp.Results))
	seen := make(map[string]bool, len(resp.Results))
	for _, item := range resp.Results {
		if seen[item.VideoID] {
			continue
		}
		seen[item.VideoID] = true

		track := core.Track{
			ID:       item.VideoID,
			Title:    item.Title,
			Duration: item.Duration,
		}
		if len(item.Artists) > 0 {
			track.Artist = item.Artists[0].Name
		}
		if item.Album != nil {
			track.Album = item.Album.Name
		}
		tracks = append(tracks, track.Sanitized())
	}
	return tracks, nil
}
