package tmdb

// PagedResponse is the envelope for every list endpoint
type PagedResponse struct {
	Page         int           `json:"page"`
	Results      []MovieResult `json:"results"`
	TotalPages   int           `json:"total_pages"`
	TotalResults int           `json:"total_results"`
}

// MovieResult is a movie summary inside a paged response
type MovieResult struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	PosterPath   *string `json:"poster_path"`
	BackdropPath *string `json:"backdrop_path"`
	ReleaseDate  string  `json:"release_date"`
	Overview     string  `json:"overview"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int     `json:"vote_count"`
	GenreIDs     []int   `json:"genre_ids"`
	Popularity   float64 `json:"popularity,omitempty"`
	MediaType    string  `json:"media_type,omitempty"` // trending only
}

// MovieDetailResponse is the flat object returned by /movie/{id}
type MovieDetailResponse struct {
	ID                  int             `json:"id"`
	Title               string          `json:"title"`
	PosterPath          *string         `json:"poster_path"`
	BackdropPath        *string         `json:"backdrop_path"`
	ReleaseDate         string          `json:"release_date"`
	Overview            string          `json:"overview"`
	VoteAverage         float64         `json:"vote_average"`
	VoteCount           int             `json:"vote_count"`
	Genres              []GenreResult   `json:"genres"`
	Runtime             *int            `json:"runtime"`
	Budget              int64           `json:"budget"`
	Revenue             int64           `json:"revenue"`
	Status              string          `json:"status"`
	Tagline             *string         `json:"tagline"`
	ProductionCompanies []CompanyResult `json:"production_companies"`
	Homepage            string          `json:"homepage,omitempty"`
	IMDBID              string          `json:"imdb_id,omitempty"`
}

// GenreResult is a genre entry
type GenreResult struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// GenreListResponse is the body of /genre/movie/list
type GenreListResponse struct {
	Genres []GenreResult `json:"genres"`
}

// CompanyResult is a production company entry
type CompanyResult struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	LogoPath      *string `json:"logo_path"`
	OriginCountry string  `json:"origin_country,omitempty"`
}

// errorResponse is the body TMDB returns alongside non-2xx statuses
type errorResponse struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
	Success       bool   `json:"success"`
}
