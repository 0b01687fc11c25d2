package tmdb

import (
	"github.com/mmcdole/marquee/internal/domain"
)

// MapMovies converts TMDB movie results to domain movies
func MapMovies(results []MovieResult) []domain.Movie {
	movies := make([]domain.Movie, 0, len(results))
	for _, r := range results {
		movies = append(movies, mapMovie(r))
	}
	return movies
}

func mapMovie(r MovieResult) domain.Movie {
	genreIDs := r.GenreIDs
	if genreIDs == nil {
		genreIDs = []int{}
	}
	return domain.Movie{
		ID:           r.ID,
		Title:        r.Title,
		PosterPath:   deref(r.PosterPath),
		BackdropPath: deref(r.BackdropPath),
		ReleaseDate:  r.ReleaseDate,
		Overview:     r.Overview,
		VoteAverage:  r.VoteAverage,
		VoteCount:    r.VoteCount,
		GenreIDs:     genreIDs,
	}
}

// MapPage converts a paged response to a domain movie page
func MapPage(resp PagedResponse) *domain.MoviePage {
	return &domain.MoviePage{
		Page:         resp.Page,
		Results:      MapMovies(resp.Results),
		TotalPages:   resp.TotalPages,
		TotalResults: resp.TotalResults,
	}
}

// MapGenres converts TMDB genres to domain genres
func MapGenres(results []GenreResult) []domain.Genre {
	genres := make([]domain.Genre, 0, len(results))
	for _, g := range results {
		genres = append(genres, domain.Genre{ID: g.ID, Name: g.Name})
	}
	return genres
}

// MapDetails converts the detail response to domain movie details
func MapDetails(r MovieDetailResponse) *domain.MovieDetails {
	details := &domain.MovieDetails{
		ID:           r.ID,
		Title:        r.Title,
		PosterPath:   deref(r.PosterPath),
		BackdropPath: deref(r.BackdropPath),
		ReleaseDate:  r.ReleaseDate,
		Overview:     r.Overview,
		VoteAverage:  r.VoteAverage,
		VoteCount:    r.VoteCount,
		Genres:       MapGenres(r.Genres),
		Budget:       r.Budget,
		Revenue:      r.Revenue,
		Status:       r.Status,
		Tagline:      deref(r.Tagline),
	}
	if r.Runtime != nil {
		details.Runtime = *r.Runtime
	}

	details.ProductionCompanies = make([]domain.ProductionCompany, 0, len(r.ProductionCompanies))
	for _, c := range r.ProductionCompanies {
		details.ProductionCompanies = append(details.ProductionCompanies, domain.ProductionCompany{
			ID:       c.ID,
			Name:     c.Name,
			LogoPath: deref(c.LogoPath),
		})
	}
	return details
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
