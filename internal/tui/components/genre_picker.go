package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// AllGenresLabel is the entry that clears the genre filter
const AllGenresLabel = "All Genres"

const pickerWidth = 28

// GenrePicker is a popup for choosing a genre filter.
// Typing narrows the list; entry 0 always clears the filter.
type GenrePicker struct {
	visible  bool
	options  []domain.Genre // "All Genres" first, then the catalog
	filtered []int          // indices into options, nil when unfiltered
	query    string
	cursor   int
	active   int
}

// NewGenrePicker creates a hidden picker
func NewGenrePicker() GenrePicker {
	return GenrePicker{}
}

// Show displays the picker for the catalog, highlighting the active genre
func (m *GenrePicker) Show(genres []domain.Genre, active int) {
	m.visible = true
	m.options = append([]domain.Genre{{ID: 0, Name: AllGenresLabel}}, genres...)
	m.filtered = nil
	m.query = ""
	m.active = active
	m.cursor = 0
	for i, g := range m.options {
		if g.ID == active {
			m.cursor = i
			break
		}
	}
}

// Hide dismisses the picker
func (m *GenrePicker) Hide() {
	m.visible = false
}

// IsVisible returns whether the picker is shown
func (m GenrePicker) IsVisible() bool {
	return m.visible
}

// Query returns the current filter text
func (m GenrePicker) Query() string {
	return m.query
}

// HandleKey processes a key press, returns (handled, selection).
// If selection is non-nil, the user confirmed a genre ID (0 for all genres).
func (m *GenrePicker) HandleKey(msg tea.KeyMsg) (handled bool, selection *int) {
	if !m.visible {
		return false, nil
	}

	switch msg.String() {
	case "down", "ctrl+n":
		if m.cursor < m.count()-1 {
			m.cursor++
		}
		return true, nil
	case "up", "ctrl+p":
		if m.cursor > 0 {
			m.cursor--
		}
		return true, nil
	case "enter":
		if m.count() == 0 {
			return true, nil
		}
		id := m.options[m.index(m.cursor)].ID
		m.visible = false
		return true, &id
	case "esc":
		if m.query != "" {
			m.setQuery("")
			return true, nil
		}
		m.visible = false
		return true, nil
	case "backspace":
		if m.query != "" {
			r := []rune(m.query)
			m.setQuery(string(r[:len(r)-1]))
		}
		return true, nil
	}

	if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
		m.setQuery(m.query + string(msg.Runes))
	}
	return true, nil // consume all keys when visible
}

func (m *GenrePicker) setQuery(q string) {
	m.query = q
	m.cursor = 0
	if strings.TrimSpace(q) == "" {
		m.filtered = nil
		return
	}

	names := make([]string, len(m.options))
	for i, g := range m.options {
		names[i] = strings.ToLower(g.Name)
	}
	matches := fuzzy.Find(strings.ToLower(q), names)
	m.filtered = make([]int, len(matches))
	for i, match := range matches {
		m.filtered[i] = match.Index
	}
}

func (m GenrePicker) count() int {
	if m.filtered != nil {
		return len(m.filtered)
	}
	return len(m.options)
}

func (m GenrePicker) index(i int) int {
	if m.filtered != nil {
		return m.filtered[i]
	}
	return i
}

// Visible returns the genre names currently listed, in display order
func (m GenrePicker) Visible() []string {
	names := make([]string, m.count())
	for i := range names {
		names[i] = m.options[m.index(i)].Name
	}
	return names
}

// View renders the picker
func (m GenrePicker) View() string {
	if !m.visible {
		return ""
	}

	var lines []string
	if m.query != "" {
		lines = append(lines, styles.PromptStyle.Render("/ ")+styles.InputStyle.Render(m.query))
	}

	if m.count() == 0 {
		lines = append(lines, styles.DimStyle.Render(styles.Pad("No matching genres", pickerWidth)))
	}

	for i := 0; i < m.count(); i++ {
		g := m.options[m.index(i)]
		prefix := "  "
		if g.ID == m.active {
			prefix = "✓ "
		}
		text := styles.Pad(prefix+g.Name, pickerWidth)

		switch {
		case i == m.cursor:
			lines = append(lines, styles.SelectedItemStyle.Render(text))
		case g.ID == m.active:
			lines = append(lines, styles.ActiveItemStyle.Render(text))
		default:
			lines = append(lines, styles.NormalItemStyle.Render(text))
		}
	}

	return styles.ModalStyle.Render(
		styles.ModalTitleStyle.Render("Filter by genre") + "\n" + strings.Join(lines, "\n"),
	)
}
