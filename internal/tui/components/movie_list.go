package components

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/format"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// Card layout
const (
	CardWidth  = 32 // Outer width including border and padding
	CardHeight = 5  // Three content lines plus border
)

// Empty-state text
const (
	NoMoviesText  = "No movies found. Try a different search."
	NoMatchesText = "No movies on this page match the filter."
)

// MovieList is the grid of movie cards on the home page
type MovieList struct {
	movies   []domain.Movie
	filtered []int // indices into movies, nil when unfiltered

	cursor int
	offset int // first visible row

	width  int
	height int

	loading bool
	err     string
	loader  string

	filterActive bool
	filterInput  textinput.Model
}

// NewMovieList creates an empty grid
func NewMovieList() MovieList {
	ti := textinput.New()
	ti.Placeholder = "type to filter this page..."
	ti.Prompt = "Filter: "
	ti.PromptStyle = styles.PromptStyle
	ti.TextStyle = styles.InputStyle
	ti.CharLimit = 100

	return MovieList{
		filterInput: ti,
		loader:      "Loading...",
	}
}

// SetMovies replaces the grid contents and resets the cursor.
// The same movies in the same order keep the cursor where it is.
func (l *MovieList) SetMovies(movies []domain.Movie) {
	if sameMovies(l.movies, movies) {
		l.movies = movies
		return
	}
	l.movies = movies
	l.cursor = 0
	l.offset = 0
	if l.filterActive {
		l.applyFilter()
	}
}

// Movies returns the unfiltered grid contents
func (l MovieList) Movies() []domain.Movie {
	return l.movies
}

// SetStatus updates the loading flag and error text
func (l *MovieList) SetStatus(loading bool, err string) {
	l.loading = loading
	l.err = err
}

// SetLoader sets the text rendered while the first page loads
func (l *MovieList) SetLoader(view string) {
	l.loader = view
}

// SetSize updates the component dimensions
func (l *MovieList) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.filterInput.Width = max(10, width-12)
	l.ensureVisible()
}

// Columns returns the number of cards per row
func (l MovieList) Columns() int {
	return max(1, l.width/CardWidth)
}

func (l MovieList) visibleRows() int {
	h := l.height
	if l.filterActive {
		h--
	}
	return max(1, h/CardHeight)
}

// Count returns the number of cards currently shown
func (l MovieList) Count() int {
	if l.filtered != nil {
		return len(l.filtered)
	}
	return len(l.movies)
}

func (l MovieList) mapIndex(i int) int {
	if l.filtered != nil {
		return l.filtered[i]
	}
	return i
}

// Cursor returns the cursor position among the shown cards
func (l MovieList) Cursor() int {
	return l.cursor
}

// Selected returns the movie under the cursor, or nil
func (l MovieList) Selected() *domain.Movie {
	if l.cursor < 0 || l.cursor >= l.Count() {
		return nil
	}
	m := l.movies[l.mapIndex(l.cursor)]
	return &m
}

// ToggleFilter opens the quick filter, or refocuses it when already open
func (l *MovieList) ToggleFilter() tea.Cmd {
	l.filterActive = true
	return l.filterInput.Focus()
}

// IsFiltering reports whether a quick filter is applied
func (l MovieList) IsFiltering() bool {
	return l.filterActive
}

// IsFilterTyping reports whether the filter input has focus
func (l MovieList) IsFilterTyping() bool {
	return l.filterActive && l.filterInput.Focused()
}

// ClearFilter closes the quick filter and shows every card
func (l *MovieList) ClearFilter() {
	l.filterActive = false
	l.filtered = nil
	l.filterInput.SetValue("")
	l.filterInput.Blur()
	l.cursor = 0
	l.offset = 0
}

// applyFilter ranks the current page against the filter text
func (l *MovieList) applyFilter() {
	query := strings.TrimSpace(l.filterInput.Value())
	l.cursor = 0
	l.offset = 0
	if query == "" {
		l.filtered = nil
		return
	}

	titles := make([]string, len(l.movies))
	for i, m := range l.movies {
		titles[i] = m.Title
	}

	ranks := fuzzy.RankFindFold(query, titles)
	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].Distance < ranks[j].Distance
	})

	l.filtered = make([]int, len(ranks))
	for i, r := range ranks {
		l.filtered[i] = r.OriginalIndex
	}
}

func (l *MovieList) ensureVisible() {
	row := l.cursor / l.Columns()
	rows := l.visibleRows()
	if row < l.offset {
		l.offset = row
	}
	if row >= l.offset+rows {
		l.offset = row - rows + 1
	}
}

// Update handles cursor movement and quick-filter typing
func (l MovieList) Update(msg tea.Msg) (MovieList, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	if l.IsFilterTyping() {
		switch keyMsg.String() {
		case "esc":
			l.ClearFilter()
			return l, nil
		case "enter":
			l.filterInput.Blur()
			return l, nil
		case "backspace":
			if l.filterInput.Value() == "" {
				l.ClearFilter()
				return l, nil
			}
		}
		var cmd tea.Cmd
		l.filterInput, cmd = l.filterInput.Update(keyMsg)
		l.applyFilter()
		return l, cmd
	}

	count := l.Count()
	if count == 0 {
		return l, nil
	}
	cols := l.Columns()

	switch keyMsg.String() {
	case "left", "h":
		if l.cursor%cols > 0 {
			l.cursor--
		}
	case "right", "l":
		if l.cursor%cols < cols-1 && l.cursor < count-1 {
			l.cursor++
		}
	case "up", "k":
		if l.cursor-cols >= 0 {
			l.cursor -= cols
		}
	case "down", "j":
		switch {
		case l.cursor+cols < count:
			l.cursor += cols
		case l.cursor/cols < (count-1)/cols:
			l.cursor = count - 1
		}
	case "home":
		l.cursor = 0
	case "end":
		l.cursor = count - 1
	}
	l.ensureVisible()
	return l, nil
}

// View renders the grid or the appropriate empty state
func (l MovieList) View() string {
	if l.err != "" {
		return styles.ErrorStyle.Render("Error: " + l.err)
	}
	if l.loading && len(l.movies) == 0 {
		return l.loader
	}
	if len(l.movies) == 0 {
		return styles.DimStyle.Render(NoMoviesText)
	}

	var sections []string
	if l.filterActive {
		sections = append(sections, l.filterInput.View())
	}

	count := l.Count()
	if count == 0 {
		sections = append(sections, styles.DimStyle.Render(NoMatchesText))
		return strings.Join(sections, "\n")
	}

	cols := l.Columns()
	start := l.offset * cols
	end := min(count, start+l.visibleRows()*cols)

	var rows []string
	for rowStart := start; rowStart < end; rowStart += cols {
		var cards []string
		for i := rowStart; i < min(rowStart+cols, end); i++ {
			cards = append(cards, renderCard(l.movies[l.mapIndex(i)], i == l.cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	sections = append(sections, lipgloss.JoinVertical(lipgloss.Left, rows...))

	return strings.Join(sections, "\n")
}

func renderCard(m domain.Movie, selected bool) string {
	inner := CardWidth - 4
	style := styles.CardStyle
	if selected {
		style = styles.CardSelectedStyle
	}

	title := styles.TitleStyle.Render(styles.Truncate(m.Title, inner))
	rating := styles.RatingStyle.Render("★ " + format.Rating(m.VoteAverage))
	date := styles.DimStyle.Render(styles.Truncate(format.Date(m.ReleaseDate), inner))

	return style.Width(inner + 2).Render(title + "\n" + rating + "\n" + date)
}
