package tmdb

import (
	"fmt"
	"net/http"

	"github.com/mmcdole/marquee/internal/domain"
)

// APIError is a non-2xx response from the TMDB API
type APIError struct {
	HTTPStatus int    // HTTP status of the response
	Code       int    // TMDB status_code, 0 if the body was not a TMDB error
	Message    string // TMDB status_message or a synthesized message
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("unexpected status code: %d", e.HTTPStatus)
}

// Unwrap maps well-known statuses onto domain sentinel errors
func (e *APIError) Unwrap() error {
	switch e.HTTPStatus {
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusTooManyRequests:
		return domain.ErrRateLimited
	}
	return nil
}

func retryable(status int) bool {
	return status == http.StatusTooManyRequests || (status >= 500 && status < 600)
}
