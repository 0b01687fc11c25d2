// Package mocks provides testify mocks of the domain interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mmcdole/marquee/internal/domain"
)

// MovieSource is a mock of domain.MovieSource
type MovieSource struct {
	mock.Mock
}

func (m *MovieSource) page(args mock.Arguments) (*domain.MoviePage, error) {
	if p, ok := args.Get(0).(*domain.MoviePage); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MovieSource) movies(args mock.Arguments) ([]domain.Movie, error) {
	if movies, ok := args.Get(0).([]domain.Movie); ok {
		return movies, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MovieSource) PopularMovies(ctx context.Context, page int) (*domain.MoviePage, error) {
	return m.page(m.Called(ctx, page))
}

func (m *MovieSource) SearchMovies(ctx context.Context, query string, page int) (*domain.MoviePage, error) {
	return m.page(m.Called(ctx, query, page))
}

func (m *MovieSource) DiscoverByGenre(ctx context.Context, genreID, page int) (*domain.MoviePage, error) {
	return m.page(m.Called(ctx, genreID, page))
}

func (m *MovieSource) MovieDetails(ctx context.Context, id int) (*domain.MovieDetails, error) {
	args := m.Called(ctx, id)
	if d, ok := args.Get(0).(*domain.MovieDetails); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MovieSource) Genres(ctx context.Context) ([]domain.Genre, error) {
	args := m.Called(ctx)
	if genres, ok := args.Get(0).([]domain.Genre); ok {
		return genres, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MovieSource) TrendingMovies(ctx context.Context, window domain.TimeWindow, limit int) ([]domain.Movie, error) {
	return m.movies(m.Called(ctx, window, limit))
}

func (m *MovieSource) SimilarMovies(ctx context.Context, id, page, limit int) ([]domain.Movie, error) {
	return m.movies(m.Called(ctx, id, page, limit))
}

var _ domain.MovieSource = (*MovieSource)(nil)
