package store

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/domain/mocks"
)

func testOptions() Options {
	return Options{
		MinLoading:        0,
		PaginationLockout: time.Millisecond,
		RequestTimeout:    time.Second,
		MaxPages:          100,
	}
}

func newTestStore(source domain.MovieSource) *Store {
	return New(source, slog.New(slog.NewTextHandler(io.Discard, nil)), testOptions())
}

// run executes cmd and applies every resulting message, flattening batches
func run(s *Store, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			run(s, c)
		}
		return
	}
	s.Update(msg)
}

func moviePage(page, totalPages int, ids ...int) *domain.MoviePage {
	results := make([]domain.Movie, len(ids))
	for i, id := range ids {
		results[i] = domain.Movie{ID: id, Title: "Movie"}
	}
	return &domain.MoviePage{Page: page, Results: results, TotalPages: totalPages, TotalResults: totalPages * 20}
}

func TestInitialState(t *testing.T) {
	s := newTestStore(&mocks.MovieSource{})
	st := s.State()

	assert.Empty(t, st.Movies)
	assert.Equal(t, 1, st.CurrentPage)
	assert.Equal(t, 1, st.TotalPages)
	assert.False(t, st.IsLoading)
	assert.Empty(t, st.Error)
	assert.Nil(t, st.MovieDetails)
	assert.Equal(t, StatusIdle, st.Status)
}

func TestFetchMoviesSuccess(t *testing.T) {
	source := &mocks.MovieSource{}
	source.On("PopularMovies", mock.Anything, 1).Return(&domain.MoviePage{
		Page:         1,
		Results:      []domain.Movie{{ID: 1, Title: "Heat"}},
		TotalPages:   5,
		TotalResults: 100,
	}, nil)

	s := newTestStore(source)
	cmd := s.FetchMovies(1)

	st := s.State()
	assert.True(t, st.IsLoading)
	assert.Equal(t, StatusLoading, st.Status)

	run(s, cmd)

	st = s.State()
	assert.Len(t, st.Movies, 1)
	assert.Equal(t, 1, st.CurrentPage)
	assert.Equal(t, 5, st.TotalPages)
	assert.Equal(t, 100, st.TotalResults)
	assert.False(t, st.IsLoading)
	assert.Equal(t, StatusLoaded, st.Status)
	source.AssertExpectations(t)
}

func TestFetchMoviesFailureKeepsPriorMovies(t *testing.T) {
	source := &mocks.MovieSource{}
	source.On("PopularMovies", mock.Anything, 1).Return(moviePage(1, 5, 1, 2, 3), nil)
	source.On("PopularMovies", mock.Anything, 2).Return(nil, errors.New("network down"))

	s := newTestStore(source)
	run(s, s.FetchMovies(1))
	before := s.State().Movies

	run(s, s.FetchMovies(2))

	st := s.State()
	assert.Equal(t, "network down", st.Error)
	assert.False(t, st.IsLoading)
	assert.Equal(t, before, st.Movies)
	assert.Equal(t, StatusErrored, st.Status)
}

func TestFetchMoviesFallbackMessage(t *testing.T) {
	source := &mocks.MovieSource{}
	source.On("PopularMovies", mock.Anything, 1).Return(nil, errors.New(""))

	s := newTestStore(source)
	run(s, s.FetchMovies(1))

	assert.Equal(t, "Failed to fetch movies", s.State().Error)
}

func TestFetchMoviesClearsPreviousError(t *testing.T) {
	source := &mocks.MovieSource{}
	source.On("PopularMovies", mock.Anything, 1).Return(nil, errors.New("boom")).Once()
	source.On("PopularMovies", mock.Anything, 1).Return(moviePage(1, 1, 7), nil).Once()

	s := newTestStore(source)
	run(s, s.FetchMovies(1))
	require.Equal(t, "boom", s.State().Error)

	cmd := s.FetchMovies(1)
	assert.Empty(t, s.State().Error, "error is cleared when a fetch starts")
	run(s, cmd)
	assert.Empty(t, s.State().Error)
}

func TestFetchMoviesSourcePriority(t *testing.T) {
	tests := []struct {
		name  string
		setup func(s *Store)
		on    func(m *mocks.MovieSource)
	}{
		{
			name:  "popular by default",
			setup: func(s *Store) {},
			on: func(m *mocks.MovieSource) {
				m.On("PopularMovies", mock.Anything, 3).Return(moviePage(3, 5), nil)
			},
		},
		{
			name:  "search when a query is set",
			setup: func(s *Store) { s.SetSearchQuery("alien") },
			on: func(m *mocks.MovieSource) {
				m.On("SearchMovies", mock.Anything, "alien", 3).Return(moviePage(3, 5), nil)
			},
		},
		{
			name: "genre wins over search",
			setup: func(s *Store) {
				s.state.SelectedGenre = 878
				s.SetSearchQuery("alien")
			},
			on: func(m *mocks.MovieSource) {
				m.On("DiscoverByGenre", mock.Anything, 878, 3).Return(moviePage(3, 5), nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := &mocks.MovieSource{}
			tt.on(source)

			s := newTestStore(source)
			tt.setup(s)
			run(s, s.FetchMovies(3))

			source.AssertExpectations(t)
			assert.Equal(t, 3, s.State().CurrentPage)
		})
	}
}

func TestTotalPagesCappedAtMax(t *testing.T) {
	source := &mocks.MovieSource{}
	source.On("PopularMovies", mock.Anything, 1).Return(&domain.MoviePage{Page: 1, TotalPages: 500, TotalResults: 10000}, nil)

	s := newTestStore(source)
	run(s, s.FetchMovies(1))

	st := s.State()
	assert.Equal(t, 100, st.TotalPages)
	assert.Equal(t, 10000, st.TotalResults)
	assert.NotNil(t, st.Movies)
}

func TestSetSelectedGenreClearsSearch(t *testing.T) {
	source := &mocks.MovieSource{}
	source.On("DiscoverByGenre", mock.Anything, 28, 1).Return(moviePage(1, 10, 5), nil)

	s := newTestStore(source)
	s.SetSearchQuery("dune")
	run(s, s.SetSelectedGenre(28))

	st := s.State()
	assert.Empty(t, st.SearchQuery)
	assert.Equal(t, 28, st.SelectedGenre)
	source.AssertCalled(t, "DiscoverByGenre", mock.Anything, 28, 1)
	source.AssertNotCalled(t, "SearchMovies", mock.Anything, mock.Anything, mock.Anything)
}

func TestSetSelectedGenreZeroClearsFilter(t *testing.T) {
	source := &mocks.MovieSource{}
	source.On("PopularMovies", mock.Anything, 1).Return(moviePage(1, 10), nil)

	s := newTestStore(source)
	s.state.SelectedGenre = 28
	run(s, s.SetSelectedGenre(0))

	assert.Zero(t, s.State().SelectedGenre)
	source.AssertExpectations(t)
}

func TestSearchForMoviesClearsGenre(t *testing.T) {
	source := &mocks.MovieSource{}
	source.On("SearchMovies", mock.Anything, "dune", 1).Return(moviePage(1, 2, 1, 2), nil)

	s := newTestStore(source)
	s.state.SelectedGenre = 28
	s.state.CurrentPage = 4
	run(s, s.SearchForMovies("  dune  "))

	st := s.State()
	assert.Equal(t, "dune", st.SearchQuery)
	assert.Zero(t, st.SelectedGenre)
	assert.Equal(t, 1, st.CurrentPage)
	source.AssertExpectations(t)
}

func TestSearchForMoviesBlankFallsBackToPopular(t *testing.T) {
	source := &mocks.MovieSource{}
	source.On("PopularMovies", mock.Anything, 1).Return(moviePage(1, 3, 9), nil)

	s := newTestStore(source)
	s.SetSearchQuery("old query")
	run(s, s.SearchForMovies("   "))

	assert.Empty(t, s.State().SearchQuery)
	source.AssertExpectations(t)
	source.AssertNotCalled(t, "SearchMovies", mock.Anything, mock.Anything, mock.Anything)
}

func TestSetSearchQueryDoesNotFetch(t *testing.T) {
	source := &mocks.MovieSource{}
	s := newTestStore(source)

	s.SetSearchQuery("jaws")

	assert.Equal(t, "jaws", s.State().SearchQuery)
	assert.False(t, s.State().IsLoading)
	source.AssertExpectations(t)
}

func TestSetCurrentPageSamePageIsNoop(t *testing.T) {
	source := &mocks.MovieSource{}
	s := newTestStore(source)

	assert.Nil(t, s.SetCurrentPage(1))
	assert.False(t, s.State().IsPaginationDebounced)
	source.AssertNotCalled(t, "PopularMovies", mock.Anything, mock.Anything)
}

func TestSetCurrentPageLockout(t *testing.T) {
	source := &mocks.MovieSource{}
	source.On("PopularMovies", mock.Anything, 1).Return(moviePage(1, 5), nil)
	source.On("PopularMovies", mock.Anything, 2).Return(moviePage(2, 5), nil)
	source.On("PopularMovies", mock.Anything, 3).Return(moviePage(3, 5), nil)

	s := newTestStore(source)
	run(s, s.FetchMovies(1))

	cmd := s.SetCurrentPage(2)
	require.NotNil(t, cmd)
	assert.True(t, s.State().IsPaginationDebounced)
	assert.Equal(t, 2, s.State().CurrentPage)

	// Locked: a second page change is ignored
	assert.Nil(t, s.SetCurrentPage(3))
	assert.Equal(t, 2, s.State().CurrentPage)

	run(s, cmd)
	assert.False(t, s.State().IsPaginationDebounced)
	assert.Equal(t, 2, s.State().CurrentPage)

	// Unlocked: page changes are accepted again
	run(s, s.SetCurrentPage(3))
	assert.Equal(t, 3, s.State().CurrentPage)
	source.AssertNumberOfCalls(t, "PopularMovies", 3)
}

func TestSetCurrentPageOutOfRange(t *testing.T) {
	source := &mocks.MovieSource{}
	source.On("PopularMovies", mock.Anything, 1).Return(moviePage(1, 5), nil)

	s := newTestStore(source)
	run(s, s.FetchMovies(1))

	assert.Nil(t, s.SetCurrentPage(0))
	assert.Nil(t, s.SetCurrentPage(6))
	assert.False(t, s.State().IsPaginationDebounced)
	source.AssertNumberOfCalls(t, "PopularMovies", 1)
}

func TestResetFilters(t *testing.T) {
	source := &mocks.MovieSource{}
	source.On("PopularMovies", mock.Anything, 1).Return(moviePage(1, 5, 1), nil)

	s := newTestStore(source)
	s.state.SearchQuery = "heat"
	s.state.SelectedGenre = 80
	s.state.CurrentPage = 3
	require.True(t, s.HasActiveFilter())

	run(s, s.ResetFilters())

	st := s.State()
	assert.Empty(t, st.SearchQuery)
	assert.Zero(t, st.SelectedGenre)
	assert.Equal(t, 1, st.CurrentPage)
	assert.False(t, s.HasActiveFilter())
	source.AssertExpectations(t)
}

func TestSupersededListResponseIsDropped(t *testing.T) {
	source := &mocks.MovieSource{}
	source.On("PopularMovies", mock.Anything, 1).Return(moviePage(1, 50, 1, 2, 3), nil)
	source.On("SearchMovies", mock.Anything, "up", 1).Return(moviePage(1, 2, 42), nil)

	s := newTestStore(source)
	stale := s.FetchMovies(1)
	fresh := s.SearchForMovies("up")

	// Responses arrive out of order
	run(s, fresh)
	run(s, stale)

	st := s.State()
	require.Len(t, st.Movies, 1)
	assert.Equal(t, 42, st.Movies[0].ID)
	assert.Equal(t, 2, st.TotalPages)
	assert.False(t, st.IsLoading)
}

func TestGetMovieDetails(t *testing.T) {
	details := &domain.MovieDetails{ID: 550, Title: "Fight Club", Runtime: 139}
	source := &mocks.MovieSource{}
	source.On("MovieDetails", mock.Anything, 550).Return(details, nil)

	s := newTestStore(source)
	s.state.MovieDetails = &domain.MovieDetails{ID: 1}
	s.state.Error = "old"

	cmd := s.GetMovieDetails(550)
	st := s.State()
	assert.Nil(t, st.MovieDetails)
	assert.Empty(t, st.Error)
	assert.True(t, st.IsLoading)

	run(s, cmd)
	st = s.State()
	assert.Same(t, details, st.MovieDetails)
	assert.False(t, st.IsLoading)
}

func TestGetMovieDetailsFailure(t *testing.T) {
	source := &mocks.MovieSource{}
	source.On("MovieDetails", mock.Anything, 1).Return(nil, errors.New(""))
	source.On("MovieDetails", mock.Anything, 2).Return(nil, domain.ErrNotFound)

	s := newTestStore(source)

	run(s, s.GetMovieDetails(1))
	assert.Equal(t, "Failed to fetch movie details", s.State().Error)
	assert.Nil(t, s.State().MovieDetails)

	run(s, s.GetMovieDetails(2))
	assert.Equal(t, domain.ErrNotFound.Error(), s.State().Error)
	assert.False(t, s.State().IsLoading)
}

func TestSupersededDetailsAreDropped(t *testing.T) {
	source := &mocks.MovieSource{}
	source.On("MovieDetails", mock.Anything, 1).Return(&domain.MovieDetails{ID: 1}, nil)
	source.On("MovieDetails", mock.Anything, 2).Return(&domain.MovieDetails{ID: 2}, nil)

	s := newTestStore(source)
	first := s.GetMovieDetails(1)
	second := s.GetMovieDetails(2)

	run(s, second)
	run(s, first)

	require.NotNil(t, s.State().MovieDetails)
	assert.Equal(t, 2, s.State().MovieDetails.ID)
}

func TestLoadGenres(t *testing.T) {
	genres := []domain.Genre{{ID: 28, Name: "Action"}, {ID: 35, Name: "Comedy"}}
	source := &mocks.MovieSource{}
	source.On("Genres", mock.Anything).Return(genres, nil)

	s := newTestStore(source)
	run(s, s.LoadGenres())

	assert.Equal(t, genres, s.State().Genres)
	assert.Equal(t, "Comedy", s.GenreName(35))
	assert.Empty(t, s.GenreName(99))
}

func TestLoadGenresFailureSetsError(t *testing.T) {
	source := &mocks.MovieSource{}
	source.On("Genres", mock.Anything).Return(nil, errors.New(""))

	s := newTestStore(source)
	run(s, s.LoadGenres())

	assert.Equal(t, "Failed to fetch genres", s.State().Error)
	assert.Empty(t, s.State().Genres)
}

func TestFetchTrending(t *testing.T) {
	trending := []domain.Movie{{ID: 1}, {ID: 2}}
	source := &mocks.MovieSource{}
	source.On("TrendingMovies", mock.Anything, domain.TimeWindowWeek, 5).Return(trending, nil)

	s := newTestStore(source)
	cmd := s.FetchTrending(domain.TimeWindowWeek, 5)
	assert.True(t, s.State().IsTrendingLoading)

	run(s, cmd)
	assert.Equal(t, trending, s.State().TrendingMovies)
	assert.False(t, s.State().IsTrendingLoading)
}

func TestFetchTrendingDefaults(t *testing.T) {
	source := &mocks.MovieSource{}
	source.On("TrendingMovies", mock.Anything, domain.TimeWindowDay, DefaultTrendingLimit).Return([]domain.Movie{}, nil)

	s := newTestStore(source)
	run(s, s.FetchTrending("", 0))

	source.AssertExpectations(t)
}

func TestSideChannelFailuresNeverTouchError(t *testing.T) {
	source := &mocks.MovieSource{}
	source.On("PopularMovies", mock.Anything, 1).Return(nil, errors.New("network down"))
	source.On("TrendingMovies", mock.Anything, domain.TimeWindowDay, 10).Return(nil, errors.New("trending down"))
	source.On("SimilarMovies", mock.Anything, 7, 1, 6).Return(nil, errors.New("similar down"))

	s := newTestStore(source)

	// No prior error: failures stay invisible
	run(s, s.FetchTrending(domain.TimeWindowDay, 10))
	run(s, s.FetchSimilarMovies(7, 6))
	assert.Empty(t, s.State().Error)

	// Existing error is left as it was
	run(s, s.FetchMovies(1))
	require.Equal(t, "network down", s.State().Error)
	run(s, s.FetchTrending(domain.TimeWindowDay, 10))
	run(s, s.FetchSimilarMovies(7, 6))

	st := s.State()
	assert.Equal(t, "network down", st.Error)
	assert.False(t, st.IsTrendingLoading)
	assert.False(t, st.IsSimilarLoading)
	assert.Empty(t, st.TrendingMovies)
	assert.Empty(t, st.SimilarMovies)
}

func TestFetchSimilarMovies(t *testing.T) {
	similar := []domain.Movie{{ID: 10}, {ID: 11}, {ID: 12}}
	source := &mocks.MovieSource{}
	source.On("SimilarMovies", mock.Anything, 550, 1, DefaultSimilarLimit).Return(similar, nil)
	source.On("SimilarMovies", mock.Anything, 13, 1, DefaultSimilarLimit).Return([]domain.Movie{{ID: 99}}, nil)

	s := newTestStore(source)
	run(s, s.FetchSimilarMovies(550, 0))
	assert.Equal(t, similar, s.State().SimilarMovies)

	// Switching movies clears the previous recommendations while loading
	cmd := s.FetchSimilarMovies(13, 0)
	assert.Empty(t, s.State().SimilarMovies)
	assert.True(t, s.State().IsSimilarLoading)
	run(s, cmd)
	assert.Equal(t, []domain.Movie{{ID: 99}}, s.State().SimilarMovies)
}

func TestMinLoadingTime(t *testing.T) {
	source := &mocks.MovieSource{}
	source.On("PopularMovies", mock.Anything, 1).Return(moviePage(1, 1), nil)

	opts := testOptions()
	opts.MinLoading = 30 * time.Millisecond
	s := New(source, nil, opts)

	start := time.Now()
	run(s, s.FetchMovies(1))
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestUpdateIgnoresForeignMessages(t *testing.T) {
	s := newTestStore(&mocks.MovieSource{})
	assert.False(t, s.Update(tea.KeyMsg{}))
	assert.True(t, s.Update(PaginationUnlockedMsg{}))
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "idle", StatusIdle.String())
	assert.Equal(t, "loading", StatusLoading.String())
	assert.Equal(t, "loaded", StatusLoaded.String())
	assert.Equal(t, "errored", StatusErrored.String())
}
