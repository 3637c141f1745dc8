package core

// Fallback values for tracks whose catalog entry is missing fields.
const (
	UnknownTitle    = "Unknown"
	UnknownArtist   = "Unknown Artist"
	UnknownAlbum    = "Unknown Album"
	UnknownDuration = "N/A"
)

// watchBase is the catalog's canonical watch-page URL prefix. A track's
// playable source is always derived from its ID against this base.
const watchBase = "https://music.youtube.com/watch?v="

// Track represents a playable song from the catalog. Tracks are value
// types and are never mutated after construction; the ID is the unique
// key used for dedup and for re-locating a track after queue edits.
type Track struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Album    string `json:"album"`
	Duration string `json:"duration"`
}

// WatchURL returns the URL handed to the playback port for this track.
func (t Track) WatchURL() string {
	return watchBase + t.ID
}

// Sanitized returns a copy with empty display fields replaced by the
// fallback values.
func (t Track) Sanitized() Track {
	if t.Title == "" {
		t.Title = UnknownTitle
	}
	if t.Artist == "" {
		t.Artist = UnknownArtist
	}
	if t.Album == "" {
		t.Album = UnknownAlbum
	}
	if t.Duration == "" {
		t.Duration = UnknownDuration
	}
	return t
}
