package domain

import (
	"strconv"
	"time"
)

// Movie is a summary snapshot of a movie from one list response
type Movie struct {
	ID           int     // TMDB movie ID
	Title        string  // Display title
	PosterPath   string  // Relative image path ("" when absent)
	BackdropPath string  // Relative image path ("" when absent)
	ReleaseDate  string  // ISO date (YYYY-MM-DD), may be empty
	Overview     string  // Plot synopsis
	VoteAverage  float64 // 0-10 audience rating
	VoteCount    int     // Number of votes behind VoteAverage
	GenreIDs     []int   // Genre IDs from the genre catalog
}

// Year returns the release year, or 0 if the release date is unknown
func (m Movie) Year() int {
	return yearOf(m.ReleaseDate)
}

// Genre is an entry from the genre catalog
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ProductionCompany is a studio credited on a movie
type ProductionCompany struct {
	ID       int
	Name     string
	LogoPath string // Relative image path ("" when absent)
}

// MovieDetails is the full record for a single movie.
// It carries every Movie field except the genre IDs, which are replaced by named genres.
type MovieDetails struct {
	ID           int
	Title        string
	PosterPath   string
	BackdropPath string
	ReleaseDate  string
	Overview     string
	VoteAverage  float64
	VoteCount    int

	Genres              []Genre
	Runtime             int   // Minutes, 0 when unknown
	Budget              int64 // USD, 0 when unknown
	Revenue             int64 // USD, 0 when unknown
	Status              string
	Tagline             string
	ProductionCompanies []ProductionCompany
}

// Year returns the release year, or 0 if the release date is unknown
func (d MovieDetails) Year() int {
	return yearOf(d.ReleaseDate)
}

// Summary returns the summary view of the details
func (d MovieDetails) Summary() Movie {
	ids := make([]int, len(d.Genres))
	for i, g := range d.Genres {
		ids[i] = g.ID
	}
	return Movie{
		ID:           d.ID,
		Title:        d.Title,
		PosterPath:   d.PosterPath,
		BackdropPath: d.BackdropPath,
		ReleaseDate:  d.ReleaseDate,
		Overview:     d.Overview,
		VoteAverage:  d.VoteAverage,
		VoteCount:    d.VoteCount,
		GenreIDs:     ids,
	}
}

// MoviePage is one page of a paged list response
type MoviePage struct {
	Page         int
	Results      []Movie
	TotalPages   int
	TotalResults int
}

// TimeWindow selects the trending aggregation period
type TimeWindow string

const (
	TimeWindowDay  TimeWindow = "day"
	TimeWindowWeek TimeWindow = "week"
)

// Valid reports whether the window is one the API understands
func (w TimeWindow) Valid() bool {
	return w == TimeWindowDay || w == TimeWindowWeek
}

// CachedGenres is a genre catalog snapshot with the time it was fetched
type CachedGenres struct {
	Genres    []Genre   `json:"genres"`
	FetchedAt time.Time `json:"fetchedAt"`
}

func yearOf(date string) int {
	if len(date) < 4 {
		return 0
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return year
}
