package components

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimilarMoviesView(t *testing.T) {
	s := NewSimilarMovies()
	s.SetWidth(CardWidth * 3)
	s.SetLoader("LOADER")

	assert.Empty(t, s.View())

	s.SetState(nil, true)
	view := ansi.Strip(s.View())
	assert.Contains(t, view, SimilarLoadingTitle)
	assert.Contains(t, view, "LOADER")

	s.SetState(sampleMovies(4), false)
	view = ansi.Strip(s.View())
	assert.Contains(t, view, SimilarTitle)
	assert.Contains(t, view, "Movie 1")
	assert.Contains(t, view, "Movie 4")
}

func TestSimilarMoviesSelection(t *testing.T) {
	s := NewSimilarMovies()
	assert.Nil(t, s.Selected())
	s.Next()
	assert.Nil(t, s.Selected(), "no selection without movies")

	s.SetState(sampleMovies(3), false)
	s.Prev()
	require.NotNil(t, s.Selected())
	assert.Equal(t, 3, s.Selected().ID)

	s.Next()
	assert.Equal(t, 1, s.Selected().ID)
	s.Next()
	assert.Equal(t, 2, s.Selected().ID)

	// Same list keeps the selection
	s.SetState(sampleMovies(3), false)
	assert.Equal(t, 2, s.Selected().ID)

	// A new list clears it
	s.SetState(sampleMovies(2), false)
	assert.Nil(t, s.Selected())
}
