package components

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/marquee/internal/debounce"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// SearchEvent is emitted when the search input settles or is submitted
type SearchEvent struct {
	Query string
}

// SearchBar is a debounced title search input
type SearchBar struct {
	input     textinput.Model
	debouncer *debounce.Debouncer
	width     int
}

// NewSearchBar creates a search bar that settles after delay
func NewSearchBar(delay time.Duration) SearchBar {
	ti := textinput.New()
	ti.Placeholder = "Search for movies..."
	ti.Prompt = "Search: "
	ti.PromptStyle = styles.PromptStyle
	ti.TextStyle = styles.InputStyle
	ti.CharLimit = 100

	return SearchBar{
		input:     ti,
		debouncer: debounce.New(delay),
	}
}

// Focus gives the input keyboard focus
func (s *SearchBar) Focus() tea.Cmd {
	return s.input.Focus()
}

// Blur removes keyboard focus
func (s *SearchBar) Blur() {
	s.input.Blur()
}

// Focused reports whether the input has focus
func (s SearchBar) Focused() bool {
	return s.input.Focused()
}

// Value returns the raw input text
func (s SearchBar) Value() string {
	return s.input.Value()
}

// SetValue replaces the input text without emitting a search
func (s *SearchBar) SetValue(v string) {
	s.debouncer.Cancel()
	s.input.SetValue(v)
}

// SetWidth sets the rendered width
func (s *SearchBar) SetWidth(width int) {
	s.width = width
	s.input.Width = max(10, width-lipgloss.Width(s.input.Prompt)-2)
}

// Update handles typing, Enter, and settled debounce ticks.
// It returns an event when a search should run.
func (s *SearchBar) Update(msg tea.Msg) (tea.Cmd, *SearchEvent) {
	if value, ok := s.debouncer.Settled(msg); ok {
		return nil, &SearchEvent{Query: value}
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !s.input.Focused() {
		return nil, nil
	}

	if keyMsg.Type == tea.KeyEnter {
		s.debouncer.Cancel()
		return nil, &SearchEvent{Query: s.input.Value()}
	}

	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(keyMsg)
	if s.input.Value() != before {
		return tea.Batch(s.debouncer.Trigger(s.input.Value()), cmd), nil
	}
	return cmd, nil
}

// View renders the input
func (s SearchBar) View() string {
	return s.input.View()
}
