package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/mmcdole/marquee/internal/domain"
)

const (
	// DefaultBaseURL is the TMDB v3 API root
	DefaultBaseURL = "https://api.themoviedb.org/3"

	defaultTimeout   = 15 * time.Second
	defaultRateLimit = 20
	defaultRateBurst = 10
	baseRetryDelay   = 500 * time.Millisecond
)

// Client implements domain.MovieSource against the TMDB v3 REST API
type Client struct {
	baseURL    string
	apiKey     string
	language   string
	retries    int
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithRetries enables retrying 5xx and 429 responses n times with exponential backoff.
// Requests are attempted exactly once by default.
func WithRetries(n int) Option {
	return func(c *Client) {
		if n >= 0 {
			c.retries = n
		}
	}
}

// WithRateLimit caps outbound requests per second. rps <= 0 disables limiting.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithLanguage sets the language query parameter sent with every request
func WithLanguage(lang string) Option {
	return func(c *Client) {
		c.language = lang
	}
}

// NewClient creates a new TMDB API client
func NewClient(baseURL, apiKey string, logger *slog.Logger, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, domain.ErrNotConfigured
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q", baseURL)
	}
	if logger == nil {
		logger = slog.Default()
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		limiter: rate.NewLimiter(defaultRateLimit, defaultRateBurst),
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the API root the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// doRequest performs a GET against the API and decodes the JSON body into dest.
// 5xx and 429 responses are retried only when retries are enabled.
func (c *Client) doRequest(ctx context.Context, path string, query url.Values, dest any) error {
	if query == nil {
		query = url.Values{}
	}
	query.Set("api_key", c.apiKey)
	if c.language != "" {
		query.Set("language", c.language)
	}
	reqURL := c.baseURL + path + "?" + query.Encode()

	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if attempt > 0 {
			delay := baseRetryDelay * time.Duration(1<<(attempt-1)) // 500ms, 1s, 2s
			c.logger.Debug("retrying request", "attempt", attempt, "delay", delay, "path", path)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return err
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		c.logger.Debug("tmdb request", "path", path, "attempt", attempt)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.logger.Error("tmdb request failed", "path", path, "error", err)
			return fmt.Errorf("%w: %v", domain.ErrServerOffline, err)
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return fmt.Errorf("failed to read response: %w", err)
		}

		if resp.StatusCode == http.StatusOK {
			if err := json.Unmarshal(body, dest); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}
			return nil
		}

		apiErr := decodeAPIError(resp.StatusCode, body)
		if retryable(resp.StatusCode) && attempt < c.retries {
			lastErr = apiErr
			c.logger.Warn("tmdb server error, will retry",
				"status", resp.StatusCode,
				"attempt", attempt,
				"maxRetries", c.retries,
				"path", path,
			)
			continue
		}

		c.logger.Error("tmdb request error", "status", resp.StatusCode, "path", path, "message", apiErr.Message)
		return apiErr
	}

	return lastErr
}

func decodeAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{HTTPStatus: status}
	var er errorResponse
	if err := json.Unmarshal(body, &er); err == nil && er.StatusMessage != "" {
		apiErr.Code = er.StatusCode
		apiErr.Message = er.StatusMessage
	}
	return apiErr
}

func pageQuery(page int) url.Values {
	if page < 1 {
		page = 1
	}
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	return query
}

func (c *Client) getPage(ctx context.Context, path string, query url.Values) (*domain.MoviePage, error) {
	var resp PagedResponse
	if err := c.doRequest(ctx, path, query, &resp); err != nil {
		return nil, err
	}
	return MapPage(resp), nil
}

// PopularMovies returns one page of popular movies
func (c *Client) PopularMovies(ctx context.Context, page int) (*domain.MoviePage, error) {
	return c.getPage(ctx, "/movie/popular", pageQuery(page))
}

// SearchMovies returns one page of title search results.
// A blank query returns popular movies instead.
func (c *Client) SearchMovies(ctx context.Context, query string, page int) (*domain.MoviePage, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return c.PopularMovies(ctx, page)
	}
	q := pageQuery(page)
	q.Set("query", query)
	return c.getPage(ctx, "/search/movie", q)
}

// DiscoverByGenre returns one page of movies tagged with the genre
func (c *Client) DiscoverByGenre(ctx context.Context, genreID, page int) (*domain.MoviePage, error) {
	q := pageQuery(page)
	q.Set("with_genres", strconv.Itoa(genreID))
	return c.getPage(ctx, "/discover/movie", q)
}

// MovieDetails returns the full record for a movie
func (c *Client) MovieDetails(ctx context.Context, id int) (*domain.MovieDetails, error) {
	var resp MovieDetailResponse
	if err := c.doRequest(ctx, "/movie/"+strconv.Itoa(id), nil, &resp); err != nil {
		return nil, err
	}
	return MapDetails(resp), nil
}

// Genres returns the movie genre catalog
func (c *Client) Genres(ctx context.Context) ([]domain.Genre, error) {
	var resp GenreListResponse
	if err := c.doRequest(ctx, "/genre/movie/list", nil, &resp); err != nil {
		return nil, err
	}
	return MapGenres(resp.Genres), nil
}

// ErrInvalidWindow is returned for trending windows other than day and week
var ErrInvalidWindow = errors.New("invalid trending time window")

// TrendingMovies returns at most limit trending movies for the window
func (c *Client) TrendingMovies(ctx context.Context, window domain.TimeWindow, limit int) ([]domain.Movie, error) {
	if !window.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidWindow, window)
	}
	var resp PagedResponse
	if err := c.doRequest(ctx, "/trending/movie/"+string(window), nil, &resp); err != nil {
		return nil, err
	}
	return truncate(MapMovies(resp.Results), limit), nil
}

// SimilarMovies returns at most limit movies similar to id
func (c *Client) SimilarMovies(ctx context.Context, id, page, limit int) ([]domain.Movie, error) {
	var resp PagedResponse
	path := fmt.Sprintf("/movie/%d/similar", id)
	if err := c.doRequest(ctx, path, pageQuery(page), &resp); err != nil {
		return nil, err
	}
	return truncate(MapMovies(resp.Results), limit), nil
}

// truncate keeps the first limit movies; limit <= 0 keeps all
func truncate(movies []domain.Movie, limit int) []domain.Movie {
	if limit > 0 && len(movies) > limit {
		return movies[:limit]
	}
	return movies
}

var _ domain.MovieSource = (*Client)(nil)
