package domain

import "context"

// MovieSource provides read-only access to movie metadata.
// Every call is independent; implementations do not retry unless configured to.
type MovieSource interface {
	// PopularMovies returns one page of the default popular listing
	PopularMovies(ctx context.Context, page int) (*MoviePage, error)

	// SearchMovies returns one page of title search results.
	// A blank query is equivalent to PopularMovies.
	SearchMovies(ctx context.Context, query string, page int) (*MoviePage, error)

	// DiscoverByGenre returns one page of movies tagged with the genre
	DiscoverByGenre(ctx context.Context, genreID, page int) (*MoviePage, error)

	// MovieDetails returns the full record for a movie
	MovieDetails(ctx context.Context, id int) (*MovieDetails, error)

	// Genres returns the genre catalog
	Genres(ctx context.Context) ([]Genre, error)

	// TrendingMovies returns at most limit trending movies for the window
	TrendingMovies(ctx context.Context, window TimeWindow, limit int) ([]Movie, error)

	// SimilarMovies returns at most limit movies similar to id from the given page
	SimilarMovies(ctx context.Context, id, page, limit int) ([]Movie, error)
}

// GenreCache stores the genre catalog between sessions.
type GenreCache interface {
	GetGenres() (CachedGenres, bool)
	SaveGenres(genres CachedGenres) error
	InvalidateGenres()
	Close() error
}
