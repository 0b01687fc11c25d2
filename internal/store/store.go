// Package store holds the view model shared by every page of the application.
//
// The Store is owned by the Bubble Tea event loop. Actions mutate state
// synchronously and return a tea.Cmd that performs the network call off-loop;
// the resulting message is applied with Update. Every mutation therefore
// happens on the loop goroutine and the Store needs no locking.
package store

import (
	"log/slog"
	"time"

	"github.com/mmcdole/marquee/internal/domain"
)

// Status is the lifecycle of the primary movie list
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusLoaded
	StatusErrored
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusErrored:
		return "errored"
	default:
		return "idle"
	}
}

// Fallback messages used when a failure carries no text of its own
const (
	msgFetchMoviesFailed  = "Failed to fetch movies"
	msgFetchDetailsFailed = "Failed to fetch movie details"
	msgFetchGenresFailed  = "Failed to fetch genres"
)

// State is a snapshot of the view model
type State struct {
	Movies         []domain.Movie
	TrendingMovies []domain.Movie
	SimilarMovies  []domain.Movie
	MovieDetails   *domain.MovieDetails // nil until a detail fetch resolves
	Genres         []domain.Genre

	SelectedGenre int // 0 when no genre filter is active
	SearchQuery   string
	CurrentPage   int
	TotalPages    int
	TotalResults  int

	IsLoading             bool
	IsTrendingLoading     bool
	IsSimilarLoading      bool
	IsPaginationDebounced bool

	Error  string // "" when there is no error
	Status Status
}

// Options tunes store timing
type Options struct {
	MinLoading        time.Duration // Minimum time the loading indicator stays up
	PaginationLockout time.Duration // Page changes ignored for this long after one is accepted
	RequestTimeout    time.Duration // Per-request deadline
	MaxPages          int           // Cap applied to server-reported page counts
}

// DefaultOptions returns the standard timings
func DefaultOptions() Options {
	return Options{
		MinLoading:        600 * time.Millisecond,
		PaginationLockout: time.Second,
		RequestTimeout:    30 * time.Second,
		MaxPages:          100,
	}
}

// Defaults for the side-channel fetches
const (
	DefaultTrendingLimit = 10
	DefaultSimilarLimit  = 6
)

// Store is the single source of truth for movie data and filter state
type Store struct {
	source domain.MovieSource
	logger *slog.Logger
	opts   Options

	state State

	// Latest request token per concern; results carrying older tokens are dropped
	listSeq     uint64
	detailSeq   uint64
	trendingSeq uint64
	similarSeq  uint64

	listPending   bool
	detailPending bool
}

// New creates a store backed by source
func New(source domain.MovieSource, logger *slog.Logger, opts Options) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	defaults := DefaultOptions()
	if opts.MinLoading < 0 {
		opts.MinLoading = 0
	}
	if opts.PaginationLockout < 0 {
		opts.PaginationLockout = 0
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = defaults.RequestTimeout
	}
	if opts.MaxPages <= 0 {
		opts.MaxPages = defaults.MaxPages
	}
	return &Store{
		source: source,
		logger: logger,
		opts:   opts,
		state: State{
			CurrentPage: 1,
			TotalPages:  1,
		},
	}
}

// State returns a snapshot of the current view model
func (s *Store) State() State {
	st := s.state
	st.IsLoading = s.listPending || s.detailPending
	return st
}

// GenreName returns the catalog name for id, or "" if unknown
func (s *Store) GenreName(id int) string {
	for _, g := range s.state.Genres {
		if g.ID == id {
			return g.Name
		}
	}
	return ""
}

// HasActiveFilter reports whether a search or genre filter is applied
func (s *Store) HasActiveFilter() bool {
	return s.state.SearchQuery != "" || s.state.SelectedGenre != 0
}

// errorMessage converts a failure into display text
func errorMessage(err error, fallback string) string {
	if err == nil || err.Error() == "" {
		return fallback
	}
	return err.Error()
}
