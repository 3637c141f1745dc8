package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error types for common failure scenarios.
var (
	ErrPlayerNotRunning   = errors.New("player not running")
	ErrPlayerUnresponsive = errors.New("player not responding")
	ErrTrackNotFound      = errors.New("track not found")
	ErrQueueEmpty         = errors.New("queue is empty")
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	ErrRateLimited        = errors.New("rate limited")
	ErrNetworkError       = errors.New("network error")
	ErrTimeout            = errors.New("request timeout")
	ErrConfigNotFound     = errors.New("config file not found")
	ErrInvalidConfig      = errors.New("invalid configuration")
)

// CroonError wraps an error with a user-friendly suggestion.
type CroonError struct {
	Err        error
	Suggestion string
}

func (e *CroonError) Error() string {
	return e.Err.Error()
}

func (e *CroonError) Unwrap() error {
	return e.Err
}

// WithSuggestion wraps an error with a helpful suggestion.
func WithSuggestion(err error, suggestion string) error {
	return &CroonError{
		Err:        err,
		Suggestion: suggestion,
	}
}

// GetSuggestion returns a suggestion for the given error.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	// Check if it's already a CroonError with suggestion
	var croonErr *CroonError
	if errors.As(err, &croonErr) && croonErr.Suggestion != "" {
		return croonErr.Suggestion
	}

	errStr := strings.ToLower(err.Error())

	// Player errors
	if errors.Is(err, ErrPlayerNotRunning) || strings.Contains(errStr, "player not running") ||
		strings.Contains(errStr, "no such file or directory") && strings.Contains(errStr, "sock") {
		return "Start a session with 'croon ui' or 'croon play <query>'"
	}

	if errors.Is(err, ErrPlayerUnresponsive) || strings.Contains(errStr, "not responding") {
		return "The media player may have crashed. Quit and start a new session"
	}

	if strings.Contains(errStr, "executable file not found") {
		return "Install mpv and make sure it is on your PATH, or set player.binary in your config"
	}

	// Queue errors
	if errors.Is(err, ErrQueueEmpty) || strings.Contains(errStr, "queue is empty") {
		return "Add tracks with 'croon play <query>' or the search overlay"
	}

	// Rate limiting
	if errors.Is(err, ErrRateLimited) || strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "429") {
		return "Too many requests. Wait a moment and try again"
	}

	// Network errors
	if errors.Is(err, ErrNetworkError) || errors.Is(err, ErrTimeout) ||
		strings.Contains(errStr, "network") || strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "connection refused") {
		return "Check your internet connection and try again"
	}

	// Config errors
	if errors.Is(err, ErrConfigNotFound) || errors.Is(err, ErrInvalidConfig) ||
		strings.Contains(errStr, "config") {
		return "Run 'croon config init' to create a configuration file"
	}

	// Server errors
	if errors.Is(err, ErrCatalogUnavailable) || strings.Contains(errStr, "500") ||
		strings.Contains(errStr, "server error") {
		return "The catalog is having issues. Try again in a moment"
	}

	return ""
}

// Format returns a formatted error message with suggestion if available.
func Format(err error) string {
	if err == nil {
		return ""
	}

	suggestion := GetSuggestion(err)
	if suggestion != "" {
		return fmt.Sprintf("Error: %s\n\nSuggestion: %s", err.Error(), suggestion)
	}

	return fmt.Sprintf("Error: %s", err.Error())
}
