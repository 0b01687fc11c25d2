package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application
type KeyMap struct {
	// Navigation
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Enter key.Binding
	Back  key.Binding

	// Pagination and trending
	NextPage  key.Binding
	PrevPage  key.Binding
	NextSlide key.Binding
	PrevSlide key.Binding
	Trending  key.Binding

	// Recommendations on the detail page
	NextSimilar key.Binding
	PrevSimilar key.Binding

	// Actions
	Search    key.Binding
	Genres    key.Binding
	Filter    key.Binding
	Reset     key.Binding
	Help      key.Binding
	Escape    key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "right"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open movie"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back to movies"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("n", "]"),
			key.WithHelp("n/]", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("p", "["),
			key.WithHelp("p/[", "previous page"),
		),
		NextSlide: key.NewBinding(
			key.WithKeys(">", "."),
			key.WithHelp(">", "next trending"),
		),
		PrevSlide: key.NewBinding(
			key.WithKeys("<", ","),
			key.WithHelp("<", "previous trending"),
		),
		Trending: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "open trending"),
		),
		NextSimilar: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next similar"),
		),
		PrevSimilar: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "previous similar"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Genres: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "genres"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "filter page"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset filters"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close/cancel"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// Keys is the global keymap instance
var Keys = DefaultKeyMap()

// ShortHelp returns the bindings shown in the footer
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Genres, k.NextPage, k.PrevPage, k.Enter, k.Help, k.Quit}
}

// FullHelp returns the bindings shown on the help screen
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Enter, k.Back},
		{k.Search, k.Genres, k.Filter, k.Reset, k.NextPage, k.PrevPage},
		{k.NextSlide, k.PrevSlide, k.Trending, k.NextSimilar, k.PrevSimilar},
		{k.Help, k.Escape, k.Quit},
	}
}

// detailHelp is the footer keymap on the detail page
type detailHelp struct{ KeyMap }

func (k detailHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.NextSimilar, k.Enter, k.Help, k.Quit}
}
