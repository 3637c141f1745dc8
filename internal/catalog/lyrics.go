package catalog

import (
	"context"
	"fmt"
	"sync"
)

// Placeholder lyrics. Negative results are cached like positive ones
// so a song without lyrics is only asked about once.
const (
	LyricsUnavailable = "♪ Lyrics not available for this song ♪"
	LyricsNotFound    = "♪ Lyrics text not found ♪"
)

// lyricsCache is an in-memory cache keyed by track ID. Lyric fetches
// run off the UI loop, so reads and writes may be concurrent.
type lyricsCache struct {
	mu      sync.RWMutex
	entries map[string]string
}

func newLyricsCache() *lyricsCache {
	return &lyricsCache{entries: make(map[string]string)}
}

func (lc *lyricsCache) get(id string) (string, bool) {
	lc.mu.RLock()
	defer lc.mu.RUnlock()
	text, ok := lc.entries[id]
	return text, ok
}

func (lc *lyricsCache) put(id, text string) {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	lc.entries[id] = text
}

// Lyrics fetches the lyrics for a track, consulting the cache first.
// Catalog failures produce a transient error message that is NOT
// cached, so a later retry can still succeed.
func (c *Client) Lyrics(ctx context.Context, trackID string) string {
	if text, ok := c.lyrics.get(trackID); ok {
		return text
	}

	var watch watchResponse
	err := c.Get(ctx, BuildURL("/v1/watch", map[string]string{"videoId": trackID}), &watch)
	if err != nil {
		return fmt.Sprintf("✗ Error fetching lyrics: %v", err)
	}
	if watch.LyricsID == "" {
		c.lyrics.put(trackID, LyricsUnavailable)
		return LyricsUnavailable
	}

	var lyrics lyricsResponse
	err = c.Get(ctx, BuildURL("/v1/lyrics", map[string]string{"browseId": watch.LyricsID}), &lyrics)
	if err != nil {
		return fmt.Sprintf("✗ Error fetching lyrics: %v", err)
	}
	if lyrics.Lyrics == "" {
		c.lyrics.put(trackID, LyricsNotFound)
		return LyricsNotFound
	}

	c.lyrics.put(trackID, lyrics.Lyrics)
	return lyrics.Lyrics
}
