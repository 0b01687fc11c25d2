package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrNotFound indicates the requested movie or resource does not exist
	ErrNotFound = errors.New("resource not found")

	// ErrServerOffline indicates the metadata service is unreachable
	ErrServerOffline = errors.New("movie service is unreachable")

	// ErrUnauthorized indicates the API key was rejected
	ErrUnauthorized = errors.New("api key is invalid")

	// ErrRateLimited indicates the service refused the request due to rate limiting
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrNotConfigured indicates no API key has been configured
	ErrNotConfigured = errors.New("api key is not configured")
)
