package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/mmcdole/marquee/internal/domain"
)

// DefaultGenreTTL is how long a cached genre catalog is trusted
const DefaultGenreTTL = 7 * 24 * time.Hour

// CatalogService fronts a MovieSource with the genre cache and request logging.
// It implements domain.MovieSource so the store never sees the difference.
type CatalogService struct {
	source   domain.MovieSource
	genres   domain.GenreCache
	genreTTL time.Duration
	logger   *slog.Logger
	now      func() time.Time
}

// NewCatalogService creates a new catalog service. A nil cache disables genre caching.
func NewCatalogService(source domain.MovieSource, genres domain.GenreCache, genreTTL time.Duration, logger *slog.Logger) *CatalogService {
	if logger == nil {
		logger = slog.Default()
	}
	if genreTTL <= 0 {
		genreTTL = DefaultGenreTTL
	}
	return &CatalogService{
		source:   source,
		genres:   genres,
		genreTTL: genreTTL,
		logger:   logger,
		now:      time.Now,
	}
}

// PopularMovies returns one page of popular movies
func (s *CatalogService) PopularMovies(ctx context.Context, page int) (*domain.MoviePage, error) {
	result, err := s.source.PopularMovies(ctx, page)
	if err != nil {
		s.logger.Error("failed to get popular movies", "page", page, "error", err)
		return nil, err
	}
	s.logger.Debug("loaded popular movies", "page", result.Page, "count", len(result.Results))
	return result, nil
}

// SearchMovies returns one page of title search results
func (s *CatalogService) SearchMovies(ctx context.Context, query string, page int) (*domain.MoviePage, error) {
	result, err := s.source.SearchMovies(ctx, query, page)
	if err != nil {
		s.logger.Error("failed to search movies", "query", query, "page", page, "error", err)
		return nil, err
	}
	s.logger.Debug("search complete", "query", query, "page", result.Page, "total", result.TotalResults)
	return result, nil
}

// DiscoverByGenre returns one page of movies in a genre
func (s *CatalogService) DiscoverByGenre(ctx context.Context, genreID, page int) (*domain.MoviePage, error) {
	result, err := s.source.DiscoverByGenre(ctx, genreID, page)
	if err != nil {
		s.logger.Error("failed to discover movies", "genre", genreID, "page", page, "error", err)
		return nil, err
	}
	s.logger.Debug("loaded genre movies", "genre", genreID, "page", result.Page, "count", len(result.Results))
	return result, nil
}

// MovieDetails returns the full record for a movie
func (s *CatalogService) MovieDetails(ctx context.Context, id int) (*domain.MovieDetails, error) {
	details, err := s.source.MovieDetails(ctx, id)
	if err != nil {
		s.logger.Error("failed to get movie details", "id", id, "error", err)
		return nil, err
	}
	return details, nil
}

// Genres returns the genre catalog, served from cache while it is fresh.
// A stale cached catalog is still returned if the refresh fails.
func (s *CatalogService) Genres(ctx context.Context) ([]domain.Genre, error) {
	var stale []domain.Genre
	if s.genres != nil {
		if cached, ok := s.genres.GetGenres(); ok && len(cached.Genres) > 0 {
			if s.now().Sub(cached.FetchedAt) < s.genreTTL {
				s.logger.Debug("cache hit", "key", "genres", "count", len(cached.Genres))
				return cached.Genres, nil
			}
			stale = cached.Genres
		}
	}

	genres, err := s.source.Genres(ctx)
	if err != nil {
		if stale != nil {
			s.logger.Warn("genre refresh failed, serving stale catalog", "error", err)
			return stale, nil
		}
		s.logger.Error("failed to get genres", "error", err)
		return nil, err
	}

	if s.genres != nil {
		if err := s.genres.SaveGenres(domain.CachedGenres{Genres: genres, FetchedAt: s.now()}); err != nil {
			s.logger.Warn("failed to cache genres", "error", err)
		}
	}
	s.logger.Info("loaded genres", "count", len(genres))
	return genres, nil
}

// RefreshGenres drops the cached catalog so the next Genres call refetches
func (s *CatalogService) RefreshGenres() {
	if s.genres != nil {
		s.genres.InvalidateGenres()
	}
}

// TrendingMovies returns trending movies for the window
func (s *CatalogService) TrendingMovies(ctx context.Context, window domain.TimeWindow, limit int) ([]domain.Movie, error) {
	movies, err := s.source.TrendingMovies(ctx, window, limit)
	if err != nil {
		s.logger.Error("failed to get trending movies", "window", window, "error", err)
		return nil, err
	}
	return movies, nil
}

// SimilarMovies returns movies similar to id
func (s *CatalogService) SimilarMovies(ctx context.Context, id, page, limit int) ([]domain.Movie, error) {
	movies, err := s.source.SimilarMovies(ctx, id, page, limit)
	if err != nil {
		s.logger.Error("failed to get similar movies", "id", id, "error", err)
		return nil, err
	}
	return movies, nil
}

var _ domain.MovieSource = (*CatalogService)(nil)
