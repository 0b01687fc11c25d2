package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// openMovie switches to the detail page and loads the movie and its recommendations
func (m *Model) openMovie(id int) tea.Cmd {
	m.Page = PageDetail
	m.detailID = id
	m.SearchBar.Blur()
	m.GenrePicker.Hide()

	cmd := tea.Batch(
		m.Store.GetMovieDetails(id),
		m.Store.FetchSimilarMovies(id, m.opts.SimilarLimit),
	)
	m.sync()
	return cmd
}

// goHome returns to the movie list. Without a search or genre filter the
// current page is fetched again.
func (m *Model) goHome() tea.Cmd {
	m.Page = PageHome
	m.detailID = 0

	if m.Store.HasActiveFilter() {
		m.sync()
		return nil
	}
	cmd := m.Store.FetchMovies(m.Store.State().CurrentPage)
	m.sync()
	return cmd
}

// DetailID returns the movie shown on the detail page, or 0 on the home page
func (m Model) DetailID() int {
	return m.detailID
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
