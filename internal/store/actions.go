package store

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/marquee/internal/domain"
)

// FetchMovies loads a page of the primary list.
// The source is chosen by priority: genre filter, then search query, then popular.
func (s *Store) FetchMovies(page int) tea.Cmd {
	if page < 1 {
		page = 1
	}

	s.listSeq++
	s.listPending = true
	s.state.Error = ""
	s.state.Status = StatusLoading

	seq := s.listSeq
	source := s.source
	genre, query := s.state.SelectedGenre, s.state.SearchQuery
	timeout, minLoading := s.opts.RequestTimeout, s.opts.MinLoading

	s.logger.Debug("fetching movies", "seq", seq, "page", page, "genre", genre, "query", query)

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		start := time.Now()
		var (
			result *domain.MoviePage
			err    error
		)
		switch {
		case genre != 0:
			result, err = source.DiscoverByGenre(ctx, genre, page)
		case query != "":
			result, err = source.SearchMovies(ctx, query, page)
		default:
			result, err = source.PopularMovies(ctx, page)
		}
		holdFor(start, minLoading)

		return MoviesLoadedMsg{Seq: seq, Page: result, Err: err}
	}
}

// SearchForMovies runs a title search from page 1.
// A blank query clears the search and reloads the current listing.
func (s *Store) SearchForMovies(query string) tea.Cmd {
	query = strings.TrimSpace(query)
	if query == "" {
		s.state.SearchQuery = ""
		return s.FetchMovies(1)
	}

	s.state.SearchQuery = query
	s.state.SelectedGenre = 0
	s.state.CurrentPage = 1
	return s.FetchMovies(1)
}

// SetSearchQuery sets the query without fetching
func (s *Store) SetSearchQuery(query string) {
	s.state.SearchQuery = query
}

// SetSelectedGenre switches to a genre listing from page 1. Zero clears the filter.
func (s *Store) SetSelectedGenre(genreID int) tea.Cmd {
	if genreID < 0 {
		genreID = 0
	}
	s.state.SearchQuery = ""
	s.state.SelectedGenre = genreID
	return s.FetchMovies(1)
}

// SetCurrentPage moves to page and locks pagination for the lockout window.
// Requests for the current page, out-of-range pages, or while locked are ignored.
func (s *Store) SetCurrentPage(page int) tea.Cmd {
	if s.state.IsPaginationDebounced || page == s.state.CurrentPage {
		return nil
	}
	if page < 1 || page > s.state.TotalPages {
		s.logger.Debug("page out of range", "page", page, "totalPages", s.state.TotalPages)
		return nil
	}

	s.state.IsPaginationDebounced = true
	s.state.CurrentPage = page

	unlock := tea.Tick(s.opts.PaginationLockout, func(time.Time) tea.Msg {
		return PaginationUnlockedMsg{}
	})
	return tea.Batch(s.FetchMovies(page), unlock)
}

// ResetFilters clears search and genre and reloads page 1
func (s *Store) ResetFilters() tea.Cmd {
	s.state.SearchQuery = ""
	s.state.SelectedGenre = 0
	s.state.CurrentPage = 1
	return s.FetchMovies(1)
}

// GetMovieDetails loads the full record for a movie
func (s *Store) GetMovieDetails(id int) tea.Cmd {
	s.detailSeq++
	s.detailPending = true
	s.state.MovieDetails = nil
	s.state.Error = ""

	seq := s.detailSeq
	source := s.source
	timeout, minLoading := s.opts.RequestTimeout, s.opts.MinLoading

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		start := time.Now()
		details, err := source.MovieDetails(ctx, id)
		holdFor(start, minLoading)

		return DetailsLoadedMsg{Seq: seq, MovieID: id, Details: details, Err: err}
	}
}

// LoadGenres loads the genre catalog
func (s *Store) LoadGenres() tea.Cmd {
	source := s.source
	timeout := s.opts.RequestTimeout

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		genres, err := source.Genres(ctx)
		return GenresLoadedMsg{Genres: genres, Err: err}
	}
}

// FetchTrending loads the trending strip. Failures are logged and never surface as Error.
func (s *Store) FetchTrending(window domain.TimeWindow, limit int) tea.Cmd {
	if window == "" {
		window = domain.TimeWindowDay
	}
	if limit <= 0 {
		limit = DefaultTrendingLimit
	}

	s.trendingSeq++
	s.state.IsTrendingLoading = true

	seq := s.trendingSeq
	source := s.source
	timeout := s.opts.RequestTimeout

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		movies, err := source.TrendingMovies(ctx, window, limit)
		return TrendingLoadedMsg{Seq: seq, Movies: movies, Err: err}
	}
}

// FetchSimilarMovies loads recommendations for a movie. Failures are logged and never surface as Error.
func (s *Store) FetchSimilarMovies(id, limit int) tea.Cmd {
	if limit <= 0 {
		limit = DefaultSimilarLimit
	}

	s.similarSeq++
	s.state.IsSimilarLoading = true
	s.state.SimilarMovies = nil

	seq := s.similarSeq
	source := s.source
	timeout := s.opts.RequestTimeout

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		movies, err := source.SimilarMovies(ctx, id, 1, limit)
		return SimilarLoadedMsg{Seq: seq, MovieID: id, Movies: movies, Err: err}
	}
}

// Update applies a store result message. It reports whether msg belonged to the store.
func (s *Store) Update(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case MoviesLoadedMsg:
		s.applyMovies(msg)
	case DetailsLoadedMsg:
		s.applyDetails(msg)
	case GenresLoadedMsg:
		s.applyGenres(msg)
	case TrendingLoadedMsg:
		s.applyTrending(msg)
	case SimilarLoadedMsg:
		s.applySimilar(msg)
	case PaginationUnlockedMsg:
		s.state.IsPaginationDebounced = false
	default:
		return false
	}
	return true
}

func (s *Store) applyMovies(msg MoviesLoadedMsg) {
	if msg.Seq != s.listSeq {
		s.logger.Debug("dropping superseded movie list", "seq", msg.Seq, "latest", s.listSeq)
		return
	}
	s.listPending = false

	if msg.Err != nil || msg.Page == nil {
		s.state.Error = errorMessage(msg.Err, msgFetchMoviesFailed)
		s.state.Status = StatusErrored
		s.logger.Warn("movie list fetch failed", "error", s.state.Error)
		return
	}

	totalPages := min(msg.Page.TotalPages, s.opts.MaxPages)
	if totalPages < 1 {
		totalPages = 1
	}
	page := msg.Page.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	movies := msg.Page.Results
	if movies == nil {
		movies = []domain.Movie{}
	}

	s.state.Movies = movies
	s.state.CurrentPage = page
	s.state.TotalPages = totalPages
	s.state.TotalResults = msg.Page.TotalResults
	s.state.Status = StatusLoaded
}

func (s *Store) applyDetails(msg DetailsLoadedMsg) {
	if msg.Seq != s.detailSeq {
		s.logger.Debug("dropping superseded movie details", "movie", msg.MovieID, "seq", msg.Seq, "latest", s.detailSeq)
		return
	}
	s.detailPending = false

	if msg.Err != nil || msg.Details == nil {
		s.state.Error = errorMessage(msg.Err, msgFetchDetailsFailed)
		s.logger.Warn("movie details fetch failed", "movie", msg.MovieID, "error", s.state.Error)
		return
	}
	s.state.MovieDetails = msg.Details
}

func (s *Store) applyGenres(msg GenresLoadedMsg) {
	if msg.Err != nil {
		s.state.Error = errorMessage(msg.Err, msgFetchGenresFailed)
		s.logger.Warn("genre fetch failed", "error", s.state.Error)
		return
	}
	s.state.Genres = msg.Genres
}

func (s *Store) applyTrending(msg TrendingLoadedMsg) {
	if msg.Seq != s.trendingSeq {
		return
	}
	s.state.IsTrendingLoading = false
	if msg.Err != nil {
		s.logger.Error("failed to fetch trending movies", "error", msg.Err)
		return
	}
	s.state.TrendingMovies = msg.Movies
}

func (s *Store) applySimilar(msg SimilarLoadedMsg) {
	if msg.Seq != s.similarSeq {
		return
	}
	s.state.IsSimilarLoading = false
	if msg.Err != nil {
		s.logger.Error("failed to fetch similar movies", "movie", msg.MovieID, "error", msg.Err)
		return
	}
	s.state.SimilarMovies = msg.Movies
}

// holdFor blocks until at least d has passed since start
func holdFor(start time.Time, d time.Duration) {
	if remaining := d - time.Since(start); remaining > 0 {
		time.Sleep(remaining)
	}
}
