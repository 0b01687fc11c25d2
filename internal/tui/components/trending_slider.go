package components

import (
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/format"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// DefaultSlideInterval is the autoplay period of the trending slider
const DefaultSlideInterval = 5 * time.Second

const overviewLines = 3

var lastSliderID atomic.Int64

// SlideMsg advances the slider when its autoplay period elapses
type SlideMsg struct {
	ID  int64
	Gen int
}

// TrendingSlider shows one trending movie at a time
type TrendingSlider struct {
	id       int64
	movies   []domain.Movie
	current  int
	interval time.Duration
	gen      int
	width    int
}

// NewTrendingSlider creates a slider that autoplays every interval.
// A non-positive interval disables autoplay.
func NewTrendingSlider(interval time.Duration) TrendingSlider {
	return TrendingSlider{
		id:       lastSliderID.Add(1),
		interval: interval,
	}
}

// SetMovies replaces the slides and restarts autoplay from the first one
func (s *TrendingSlider) SetMovies(movies []domain.Movie) tea.Cmd {
	s.movies = movies
	s.current = 0
	return s.schedule()
}

// SetWidth sets the rendered width
func (s *TrendingSlider) SetWidth(width int) {
	s.width = width
}

// Len returns the number of slides
func (s TrendingSlider) Len() int {
	return len(s.movies)
}

// Index returns the visible slide index
func (s TrendingSlider) Index() int {
	return s.current
}

// Current returns the visible movie, or nil when there are no slides
func (s TrendingSlider) Current() *domain.Movie {
	if len(s.movies) == 0 {
		return nil
	}
	m := s.movies[s.current]
	return &m
}

// Next shows the following slide, wrapping around, and restarts autoplay
func (s *TrendingSlider) Next() tea.Cmd {
	if len(s.movies) == 0 {
		return nil
	}
	s.current = (s.current + 1) % len(s.movies)
	return s.schedule()
}

// Prev shows the preceding slide, wrapping around, and restarts autoplay
func (s *TrendingSlider) Prev() tea.Cmd {
	if len(s.movies) == 0 {
		return nil
	}
	s.current = (s.current - 1 + len(s.movies)) % len(s.movies)
	return s.schedule()
}

// Update advances on the slider's own autoplay tick
func (s *TrendingSlider) Update(msg tea.Msg) tea.Cmd {
	m, ok := msg.(SlideMsg)
	if !ok || m.ID != s.id || m.Gen != s.gen {
		return nil
	}
	return s.Next()
}

// schedule starts a new autoplay period, invalidating any pending tick
func (s *TrendingSlider) schedule() tea.Cmd {
	s.gen++
	if len(s.movies) <= 1 || s.interval <= 0 {
		return nil
	}
	id, gen := s.id, s.gen
	return tea.Tick(s.interval, func(time.Time) tea.Msg {
		return SlideMsg{ID: id, Gen: gen}
	})
}

// View renders the visible slide, or nothing when there are no slides
func (s TrendingSlider) View() string {
	if len(s.movies) == 0 {
		return ""
	}
	m := s.movies[s.current]

	inner := max(20, s.width-styles.SliderStyle.GetHorizontalFrameSize())

	rating := styles.BadgeStyle.Render("★ "+format.Rating(m.VoteAverage)) + " " +
		styles.SubtitleStyle.Render(format.Votes(m.VoteCount)+" votes")

	overview := strings.Split(styles.WordWrap(m.Overview, inner), "\n")
	if len(overview) > overviewLines {
		overview = overview[:overviewLines]
		overview[overviewLines-1] = styles.Truncate(overview[overviewLines-1]+" ...", inner)
	}
	for len(overview) < overviewLines {
		overview = append(overview, "")
	}

	lines := []string{
		styles.DimBadgeStyle.Render("TRENDING"),
		styles.TitleStyle.Render(styles.Truncate(m.Title, inner)),
		styles.SubtitleStyle.Render(format.Date(m.ReleaseDate)),
		rating,
		strings.Join(overview, "\n"),
		s.dots(),
	}

	return styles.SliderStyle.Width(inner + styles.SliderStyle.GetHorizontalPadding()).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (s TrendingSlider) dots() string {
	dots := make([]string, len(s.movies))
	for i := range s.movies {
		if i == s.current {
			dots[i] = styles.AccentStyle.Render("●")
		} else {
			dots[i] = styles.DimStyle.Render("○")
		}
	}
	return strings.Join(dots, " ")
}
