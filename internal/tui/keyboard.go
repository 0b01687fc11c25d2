package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, Keys.ForceQuit) {
		return m, tea.Quit
	}

	if m.State == StateHelp {
		if key.Matches(msg, Keys.Escape, Keys.Help, Keys.Quit) {
			m.State = StateBrowsing
		}
		return m, nil
	}

	// Route to active modal or input if any
	if handled, newModel, cmd := m.routeToInput(msg); handled {
		return newModel, cmd
	}

	// Global keys
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, Keys.Help):
		m.State = StateHelp
		return m, nil
	}

	if m.Page == PageDetail {
		return m.handleDetailKey(msg)
	}
	return m.handleHomeKey(msg)
}

// routeToInput gives the genre picker, search bar, and quick filter first
// claim on keys while they are active
func (m Model) routeToInput(msg tea.KeyMsg) (bool, Model, tea.Cmd) {
	if m.GenrePicker.IsVisible() {
		_, selection := m.GenrePicker.HandleKey(msg)
		if selection == nil {
			return true, m, nil
		}
		m.SearchBar.SetValue("")
		m.MovieList.ClearFilter()
		cmd := m.Store.SetSelectedGenre(*selection)
		m.sync()
		return true, m, cmd
	}

	if m.Page != PageHome {
		return false, m, nil
	}

	if m.SearchBar.Focused() {
		if key.Matches(msg, Keys.Escape) {
			m.SearchBar.Blur()
			return true, m, nil
		}
		cmd, event := m.SearchBar.Update(msg)
		if msg.Type == tea.KeyEnter {
			m.SearchBar.Blur()
		}
		if event != nil {
			search := m.runSearch(event.Query)
			return true, m, tea.Batch(cmd, search)
		}
		return true, m, cmd
	}

	if m.MovieList.IsFilterTyping() {
		var cmd tea.Cmd
		m.MovieList, cmd = m.MovieList.Update(msg)
		return true, m, cmd
	}

	return false, m, nil
}

func (m Model) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st := m.Store.State()

	switch {
	case key.Matches(msg, Keys.Search):
		cmd := m.SearchBar.Focus()
		return m, cmd

	case key.Matches(msg, Keys.Genres):
		m.GenrePicker.Show(st.Genres, st.SelectedGenre)
		if len(st.Genres) == 0 {
			// Retry a catalog load that failed at startup
			cmd := m.Store.LoadGenres()
			return m, cmd
		}
		return m, nil

	case key.Matches(msg, Keys.Filter):
		cmd := m.MovieList.ToggleFilter()
		return m, cmd

	case key.Matches(msg, Keys.Reset):
		m.SearchBar.SetValue("")
		m.MovieList.ClearFilter()
		cmd := m.Store.ResetFilters()
		m.sync()
		return m, cmd

	case key.Matches(msg, Keys.NextPage):
		cmd := m.Store.SetCurrentPage(st.CurrentPage + 1)
		m.sync()
		return m, cmd

	case key.Matches(msg, Keys.PrevPage):
		cmd := m.Store.SetCurrentPage(st.CurrentPage - 1)
		m.sync()
		return m, cmd

	case key.Matches(msg, Keys.NextSlide):
		cmd := m.Trending.Next()
		return m, cmd

	case key.Matches(msg, Keys.PrevSlide):
		cmd := m.Trending.Prev()
		return m, cmd

	case key.Matches(msg, Keys.Trending):
		if movie := m.Trending.Current(); movie != nil {
			cmd := m.openMovie(movie.ID)
			return m, cmd
		}
		return m, nil

	case key.Matches(msg, Keys.Enter):
		if movie := m.MovieList.Selected(); movie != nil {
			cmd := m.openMovie(movie.ID)
			return m, cmd
		}
		return m, nil

	case key.Matches(msg, Keys.Escape):
		if m.MovieList.IsFiltering() {
			m.MovieList.ClearFilter()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.MovieList, cmd = m.MovieList.Update(msg)
	return m, cmd
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Back):
		cmd := m.goHome()
		return m, cmd

	case key.Matches(msg, Keys.NextSimilar):
		m.Similar.Next()
		m.sync()
		return m, nil

	case key.Matches(msg, Keys.PrevSimilar):
		m.Similar.Prev()
		m.sync()
		return m, nil

	case key.Matches(msg, Keys.Enter):
		if movie := m.Similar.Selected(); movie != nil {
			cmd := m.openMovie(movie.ID)
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.Details, cmd = m.Details.Update(msg)
	return m, cmd
}
