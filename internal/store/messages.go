package store

import "github.com/mmcdole/marquee/internal/domain"

// Result messages produced by store commands and applied by Store.Update

// MoviesLoadedMsg carries the result of a primary list fetch
type MoviesLoadedMsg struct {
	Seq  uint64
	Page *domain.MoviePage
	Err  error
}

// DetailsLoadedMsg carries the result of a detail fetch
type DetailsLoadedMsg struct {
	Seq     uint64
	MovieID int
	Details *domain.MovieDetails
	Err     error
}

// GenresLoadedMsg carries the genre catalog
type GenresLoadedMsg struct {
	Genres []domain.Genre
	Err    error
}

// TrendingLoadedMsg carries the trending side-channel result
type TrendingLoadedMsg struct {
	Seq    uint64
	Movies []domain.Movie
	Err    error
}

// SimilarLoadedMsg carries the similar-movies side-channel result
type SimilarLoadedMsg struct {
	Seq     uint64
	MovieID int
	Movies  []domain.Movie
	Err     error
}

// PaginationUnlockedMsg ends the pagination lockout
type PaginationUnlockedMsg struct{}
