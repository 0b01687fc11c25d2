package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/marquee/internal/format"
	"github.com/mmcdole/marquee/internal/store"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// PageTitle returns the home page heading for the current filters
func PageTitle(st store.State, genreName string) string {
	switch {
	case st.SearchQuery != "":
		return fmt.Sprintf("Search Results for %q", st.SearchQuery)
	case st.SelectedGenre != 0 && genreName != "":
		return genreName + " Movies"
	case st.SelectedGenre != 0:
		return "Genre Movies"
	default:
		return "Popular Movies"
	}
}

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	if m.State == StateHelp {
		return m.renderHelp()
	}

	if m.GenrePicker.IsVisible() {
		return lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			m.GenrePicker.View())
	}

	var content string
	if m.Page == PageDetail {
		content = m.renderDetail()
	} else {
		content = m.renderHome()
	}

	body := lipgloss.NewStyle().
		Padding(0, HorizontalMargin).
		Height(m.Height - FooterHeight).
		MaxHeight(m.Height - FooterHeight).
		Render(content)

	return body + "\n" + m.renderFooter()
}

func (m Model) renderHome() string {
	st := m.Store.State()

	header := styles.PageTitleStyle.Render(PageTitle(st, m.Store.GenreName(st.SelectedGenre)))
	if st.TotalResults > 0 {
		header += styles.DimStyle.Render(fmt.Sprintf("  %s results", format.Votes(st.TotalResults)))
	}

	sections := []string{header, ""}
	if m.showTrending() {
		sections = append(sections, m.Trending.View(), "")
	}
	sections = append(sections,
		m.SearchBar.View(),
		"",
		lipgloss.NewStyle().Height(m.listHeight()).MaxHeight(m.listHeight()).Render(m.MovieList.View()),
	)
	if m.Pagination.Visible() {
		sections = append(sections, "", m.Pagination.View())
	}

	return strings.Join(sections, "\n")
}

func (m Model) renderDetail() string {
	header := styles.AccentStyle.Render("← Back to Movies")
	if pct := m.Details.ScrollPercent(); pct > 0 && pct < 1 {
		header += styles.DimStyle.Render(fmt.Sprintf("  %3.0f%%", pct*100))
	}
	return header + "\n\n" + m.Details.View()
}

// renderFooter renders the help line, with a spinner while the list loads
func (m Model) renderFooter() string {
	var keys help.KeyMap = Keys
	if m.Page == PageDetail {
		keys = detailHelp{Keys}
	}

	var left string
	if st := m.Store.State(); st.IsLoading {
		left = m.Spinner.View() + " "
	}
	return lipgloss.NewStyle().Padding(0, HorizontalMargin).Render(left + m.Help.ShortHelpView(keys.ShortHelp()))
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	content := styles.ModalTitleStyle.Render("Keyboard shortcuts") + "\n" +
		m.Help.FullHelpView(Keys.FullHelp()) + "\n\n" +
		styles.DimStyle.Render("Press ? or esc to return...")

	return lipgloss.Place(m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(content))
}
