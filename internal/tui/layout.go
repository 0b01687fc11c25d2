package tui

import "github.com/charmbracelet/lipgloss"

// Vertical chrome on the home page
const (
	HeaderHeight     = 2 // Page title and a blank line
	SearchHeight     = 2 // Search input and a blank line
	PaginationHeight = 2 // Blank line and page numbers
	FooterHeight     = 1 // Help line

	// Below this terminal height the trending slider is hidden
	MinHeightForTrending = 30

	HorizontalMargin = 2
)

// showTrending reports whether the trending slider fits on screen
func (m Model) showTrending() bool {
	return m.Trending.Len() > 0 && m.Height >= MinHeightForTrending
}

// contentWidth is the usable width inside the page margins
func (m Model) contentWidth() int {
	return max(1, m.Width-2*HorizontalMargin)
}

// listHeight is the space left for the movie grid on the home page
func (m Model) listHeight() int {
	h := m.Height - HeaderHeight - SearchHeight - PaginationHeight - FooterHeight
	if m.showTrending() {
		h -= lipgloss.Height(m.Trending.View()) + 1
	}
	return max(1, h)
}

// detailHeight is the space left for the details pane
func (m Model) detailHeight() int {
	return max(1, m.Height-HeaderHeight-FooterHeight)
}

// updateLayout updates component sizes based on window size
func (m *Model) updateLayout() {
	if m.Width == 0 || m.Height == 0 {
		return
	}

	width := m.contentWidth()
	m.Help.Width = width
	m.SearchBar.SetWidth(width)
	m.Trending.SetWidth(width)
	m.MovieList.SetSize(width, m.listHeight())
	m.Similar.SetWidth(width)
	m.Details.SetFooter(m.Similar.View())
	m.Details.SetSize(width, m.detailHeight())
}
