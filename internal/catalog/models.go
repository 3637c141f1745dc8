package catalog

import "fmt"

// APIError is an error response from the catalog API.
type APIError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("catalog API error %d: %s", e.Status, e.Message)
}

// searchResponse is the payload of /v1/search.
type searchResponse struct {
	Results []searchItem `json:"results"`
}

type searchItem struct {
	VideoID  string `json:"videoId"`
	Title    string `json:"title"`
	Duration string `json:"duration"`
	Artists  []struct {
		Name string `json:"name"`
	} `json:"artists"`
	Album *struct {
		Name string `json:"name"`
	} `json:"album"`
}

// watchResponse is the payload of /v1/watch: per-track metadata, of
// which only the lyrics reference is used here.
type watchResponse struct {
	LyricsID string `json:"lyricsId"`
}

// lyricsResponse is the payload of /v1/lyrics.
type lyricsResponse struct {
	Lyrics string `json:"lyrics"`
	Source string `json:"source"`
}
