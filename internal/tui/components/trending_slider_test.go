package components

import (
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/marquee/internal/domain"
)

func trendingMovies() []domain.Movie {
	return []domain.Movie{
		{ID: 1, Title: "Dune: Part Two", ReleaseDate: "2024-02-27", VoteAverage: 8.2, VoteCount: 4521, Overview: "Paul Atreides unites with the Fremen."},
		{ID: 2, Title: "Godzilla x Kong", ReleaseDate: "2024-03-27", VoteAverage: 7.1, VoteCount: 980},
		{ID: 3, Title: "Civil War", ReleaseDate: "2024-04-10", VoteAverage: 7.0, VoteCount: 12},
	}
}

func TestTrendingSliderHiddenWhenEmpty(t *testing.T) {
	s := NewTrendingSlider(time.Millisecond)
	assert.Nil(t, s.SetMovies(nil))
	assert.Empty(t, s.View())
	assert.Nil(t, s.Current())
	assert.Nil(t, s.Next())
	assert.Nil(t, s.Prev())
}

func TestTrendingSliderView(t *testing.T) {
	s := NewTrendingSlider(time.Millisecond)
	s.SetWidth(80)
	s.SetMovies(trendingMovies())

	view := ansi.Strip(s.View())
	assert.Contains(t, view, "TRENDING")
	assert.Contains(t, view, "Dune: Part Two")
	assert.Contains(t, view, "February 27, 2024")
	assert.Contains(t, view, "★ 8.2")
	assert.Contains(t, view, "4,521 votes")
	assert.Contains(t, view, "Paul Atreides")
	assert.Contains(t, view, "● ○ ○")
}

func TestTrendingSliderManualNavigationWraps(t *testing.T) {
	s := NewTrendingSlider(time.Millisecond)
	s.SetMovies(trendingMovies())

	s.Prev()
	assert.Equal(t, 2, s.Index())
	s.Next()
	assert.Equal(t, 0, s.Index())
	s.Next()
	require.NotNil(t, s.Current())
	assert.Equal(t, 2, s.Current().ID)
}

func TestTrendingSliderAutoplay(t *testing.T) {
	s := NewTrendingSlider(time.Millisecond)
	cmd := s.SetMovies(trendingMovies())
	require.NotNil(t, cmd)

	tick := cmd()
	next := s.Update(tick)
	assert.Equal(t, 1, s.Index())
	require.NotNil(t, next, "autoplay reschedules itself")

	// A stale tick from before a manual move is ignored
	s.Next()
	assert.Nil(t, s.Update(next()))
	assert.Equal(t, 2, s.Index())
}

func TestTrendingSliderIgnoresOtherSliders(t *testing.T) {
	a := NewTrendingSlider(time.Millisecond)
	b := NewTrendingSlider(time.Millisecond)
	a.SetMovies(trendingMovies())
	cmd := b.SetMovies(trendingMovies())

	assert.Nil(t, a.Update(cmd()))
	assert.Equal(t, 0, a.Index())
}

func TestTrendingSliderNoAutoplay(t *testing.T) {
	tests := []struct {
		name     string
		interval time.Duration
		movies   []domain.Movie
	}{
		{name: "single slide", interval: time.Millisecond, movies: trendingMovies()[:1]},
		{name: "disabled", interval: 0, movies: trendingMovies()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewTrendingSlider(tt.interval)
			assert.Nil(t, s.SetMovies(tt.movies))
		})
	}
}
