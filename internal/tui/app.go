package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/marquee/internal/debounce"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/store"
	"github.com/mmcdole/marquee/internal/tmdb"
	"github.com/mmcdole/marquee/internal/tui/components"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StateHelp
)

// Page is the screen currently shown
type Page int

const (
	PageHome Page = iota
	PageDetail
)

// Options configures the UI
type Options struct {
	SearchDebounce time.Duration
	SlideInterval  time.Duration
	TrendingWindow domain.TimeWindow
	TrendingLimit  int
	SimilarLimit   int
	ImageBaseURL   string
}

// DefaultOptions returns the standard UI settings
func DefaultOptions() Options {
	return Options{
		SearchDebounce: debounce.DefaultDelay,
		SlideInterval:  components.DefaultSlideInterval,
		TrendingWindow: domain.TimeWindowDay,
		TrendingLimit:  store.DefaultTrendingLimit,
		SimilarLimit:   store.DefaultSimilarLimit,
		ImageBaseURL:   tmdb.DefaultImageBaseURL,
	}
}

// Model is the main Bubble Tea model for the application
type Model struct {
	// Application state
	State ApplicationState
	Page  Page
	Ready bool

	// View model shared by every page
	Store *store.Store
	opts  Options

	// Home page
	SearchBar   components.SearchBar
	GenrePicker components.GenrePicker
	MovieList   components.MovieList
	Pagination  components.Pagination
	Trending    components.TrendingSlider

	// Detail page
	Details  components.MovieDetails
	Similar  components.SimilarMovies
	detailID int

	Spinner spinner.Model
	Help    help.Model

	// Dimensions
	Width  int
	Height int
}

// NewModel creates a new application model over st
func NewModel(st *store.Store, opts Options) Model {
	if opts.TrendingWindow == "" {
		opts.TrendingWindow = domain.TimeWindowDay
	}
	if opts.ImageBaseURL == "" {
		opts.ImageBaseURL = tmdb.DefaultImageBaseURL
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.SpinnerStyle

	h := help.New()
	h.Styles.ShortKey = styles.HelpKeyStyle
	h.Styles.ShortDesc = styles.HelpDescStyle
	h.Styles.FullKey = styles.HelpKeyStyle
	h.Styles.FullDesc = styles.HelpDescStyle

	m := Model{
		State:       StateBrowsing,
		Page:        PageHome,
		Store:       st,
		opts:        opts,
		SearchBar:   components.NewSearchBar(opts.SearchDebounce),
		GenrePicker: components.NewGenrePicker(),
		MovieList:   components.NewMovieList(),
		Pagination:  components.NewPagination(),
		Trending:    components.NewTrendingSlider(opts.SlideInterval),
		Details:     components.NewMovieDetails(opts.ImageBaseURL),
		Similar:     components.NewSimilarMovies(),
		Spinner:     sp,
		Help:        h,
	}
	m.sync()
	return m
}

// Init loads the first page, the trending strip, and the genre catalog
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.Store.FetchMovies(1),
		m.Store.FetchTrending(m.opts.TrendingWindow, m.opts.TrendingLimit),
		m.Store.LoadGenres(),
		m.Spinner.Tick,
	)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		m.sync()
		return m, cmd

	case debounce.SettledMsg:
		_, event := m.SearchBar.Update(msg)
		if event != nil {
			cmd := m.runSearch(event.Query)
			return m, cmd
		}
		return m, nil

	case components.SlideMsg:
		cmd := m.Trending.Update(msg)
		return m, cmd

	case store.TrendingLoadedMsg:
		if !m.Store.Update(msg) {
			return m, nil
		}
		cmd := m.Trending.SetMovies(m.Store.State().TrendingMovies)
		m.sync()
		return m, cmd
	}

	if m.Store.Update(msg) {
		m.sync()
	}
	return m, nil
}

// runSearch turns a settled or submitted query into a fetch.
// A blank query clears the search and reloads the unfiltered listing.
func (m *Model) runSearch(query string) tea.Cmd {
	m.MovieList.ClearFilter()
	var cmd tea.Cmd
	if isBlank(query) {
		m.Store.SetSearchQuery("")
		cmd = m.Store.FetchMovies(1)
	} else {
		cmd = m.Store.SearchForMovies(query)
	}
	m.sync()
	return cmd
}

// sync pushes the store snapshot into the components
func (m *Model) sync() {
	st := m.Store.State()
	loader := m.Spinner.View() + " " + styles.DimStyle.Render("Loading movies...")

	m.MovieList.SetLoader(loader)
	m.MovieList.SetMovies(st.Movies)
	m.MovieList.SetStatus(st.IsLoading, st.Error)
	m.Pagination.SetPages(st.CurrentPage, st.TotalPages)

	m.Similar.SetLoader(m.Spinner.View())
	m.Similar.SetState(st.SimilarMovies, st.IsSimilarLoading)

	m.Details.SetLoader(m.Spinner.View() + " " + styles.DimStyle.Render("Loading movie..."))
	m.Details.SetState(st.MovieDetails, st.IsLoading, st.Error)
	m.Details.SetFooter(m.Similar.View())
	m.updateLayout()
}
