package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/marquee/internal/domain"
)

var testGenres = []domain.Genre{
	{ID: 28, Name: "Action"},
	{ID: 12, Name: "Adventure"},
	{ID: 35, Name: "Comedy"},
	{ID: 18, Name: "Drama"},
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestGenrePickerShowPositionsCursorOnActive(t *testing.T) {
	p := NewGenrePicker()
	p.Show(testGenres, 35)

	require.True(t, p.IsVisible())
	assert.Equal(t, []string{AllGenresLabel, "Action", "Adventure", "Comedy", "Drama"}, p.Visible())

	handled, sel := p.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, handled)
	require.NotNil(t, sel)
	assert.Equal(t, 35, *sel)
	assert.False(t, p.IsVisible())
}

func TestGenrePickerNavigation(t *testing.T) {
	p := NewGenrePicker()
	p.Show(testGenres, 0)

	p.HandleKey(tea.KeyMsg{Type: tea.KeyUp})
	p.HandleKey(tea.KeyMsg{Type: tea.KeyDown})
	p.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlN})

	_, sel := p.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, sel)
	assert.Equal(t, 12, *sel)
}

func TestGenrePickerAllGenresClearsFilter(t *testing.T) {
	p := NewGenrePicker()
	p.Show(testGenres, 18)

	for range 5 {
		p.HandleKey(tea.KeyMsg{Type: tea.KeyUp})
	}
	_, sel := p.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, sel)
	assert.Equal(t, 0, *sel)
}

func TestGenrePickerFiltering(t *testing.T) {
	p := NewGenrePicker()
	p.Show(testGenres, 0)

	p.HandleKey(runes("d"))
	p.HandleKey(runes("r"))
	p.HandleKey(runes("a"))
	assert.Equal(t, "dra", p.Query())
	assert.Equal(t, []string{"Drama"}, p.Visible())

	p.HandleKey(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "dr", p.Query())
	assert.ElementsMatch(t, []string{"Adventure", "Drama"}, p.Visible())

	p.HandleKey(runes("a"))
	_, sel := p.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, sel)
	assert.Equal(t, 18, *sel)
}

func TestGenrePickerNoMatches(t *testing.T) {
	p := NewGenrePicker()
	p.Show(testGenres, 0)

	p.HandleKey(runes("zzz"))
	assert.Empty(t, p.Visible())
	assert.Contains(t, p.View(), "No matching genres")

	handled, sel := p.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, handled)
	assert.Nil(t, sel)
	assert.True(t, p.IsVisible())
}

func TestGenrePickerEscape(t *testing.T) {
	p := NewGenrePicker()
	p.Show(testGenres, 0)
	p.HandleKey(runes("com"))

	handled, sel := p.HandleKey(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, handled)
	assert.Nil(t, sel)
	assert.True(t, p.IsVisible(), "first esc clears the query")
	assert.Empty(t, p.Query())

	p.HandleKey(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, p.IsVisible())
}

func TestGenrePickerHiddenIgnoresKeys(t *testing.T) {
	p := NewGenrePicker()
	handled, sel := p.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, handled)
	assert.Nil(t, sel)
	assert.Empty(t, p.View())
}
