package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// Section headings
const (
	SimilarLoadingTitle = "Similar Movies"
	SimilarTitle        = "Similar Movies You Might Enjoy"
)

// SimilarMovies lists recommendations under a movie's details
type SimilarMovies struct {
	movies  []domain.Movie
	loading bool
	loader  string
	cursor  int // -1 when no card is selected
	width   int
}

// NewSimilarMovies creates an empty recommendations section
func NewSimilarMovies() SimilarMovies {
	return SimilarMovies{cursor: -1, loader: "Loading..."}
}

// SetState updates the recommendations and loading flag.
// A different list clears the selection.
func (s *SimilarMovies) SetState(movies []domain.Movie, loading bool) {
	if !sameMovies(s.movies, movies) {
		s.cursor = -1
	}
	s.movies = movies
	s.loading = loading
}

// SetLoader sets the text rendered while recommendations load
func (s *SimilarMovies) SetLoader(view string) {
	s.loader = view
}

// SetWidth sets the rendered width
func (s *SimilarMovies) SetWidth(width int) {
	s.width = width
}

// Next selects the following card, wrapping around
func (s *SimilarMovies) Next() {
	if len(s.movies) == 0 {
		return
	}
	s.cursor = (s.cursor + 1) % len(s.movies)
}

// Prev selects the preceding card, wrapping around
func (s *SimilarMovies) Prev() {
	if len(s.movies) == 0 {
		return
	}
	if s.cursor <= 0 {
		s.cursor = len(s.movies) - 1
		return
	}
	s.cursor--
}

// Selected returns the selected recommendation, or nil
func (s SimilarMovies) Selected() *domain.Movie {
	if s.cursor < 0 || s.cursor >= len(s.movies) {
		return nil
	}
	m := s.movies[s.cursor]
	return &m
}

// View renders the section; it is empty when there is nothing to recommend
func (s SimilarMovies) View() string {
	if s.loading {
		return styles.TitleStyle.Render(SimilarLoadingTitle) + "\n" + s.loader
	}
	if len(s.movies) == 0 {
		return ""
	}

	cols := max(1, s.width/CardWidth)
	var rows []string
	for start := 0; start < len(s.movies); start += cols {
		var cards []string
		for i := start; i < min(start+cols, len(s.movies)); i++ {
			cards = append(cards, renderCard(s.movies[i], i == s.cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	return styles.TitleStyle.Render(SimilarTitle) + "\n" + lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func sameMovies(a, b []domain.Movie) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}
