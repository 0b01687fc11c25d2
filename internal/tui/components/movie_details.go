package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/format"
	"github.com/mmcdole/marquee/internal/tmdb"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// Detail page state text
const (
	BackHint         = "Back to Movies (esc)"
	NotFoundText     = "Movie not found"
	NoOverviewText   = "No overview available."
	unknownStatusTxt = "Unknown"
)

// MovieDetails renders the full record of one movie in a scrollable pane
type MovieDetails struct {
	viewport     viewport.Model
	imageBaseURL string

	details *domain.MovieDetails
	loading bool
	err     string
	loader  string
	footer  string

	width int
}

// NewMovieDetails creates an empty details pane
func NewMovieDetails(imageBaseURL string) MovieDetails {
	return MovieDetails{
		viewport:     viewport.New(0, 0),
		imageBaseURL: imageBaseURL,
		loader:       "Loading...",
	}
}

// SetSize updates the pane dimensions
func (d *MovieDetails) SetSize(width, height int) {
	d.width = width
	d.viewport.Width = width
	d.viewport.Height = max(1, height)
	d.refresh()
}

// SetState updates the record and its loading and error state.
// A different record scrolls back to the top.
func (d *MovieDetails) SetState(details *domain.MovieDetails, loading bool, err string) {
	if details != d.details {
		d.viewport.GotoTop()
	}
	d.details = details
	d.loading = loading
	d.err = err
	d.refresh()
}

// SetLoader sets the text rendered while the record loads
func (d *MovieDetails) SetLoader(view string) {
	d.loader = view
}

// SetFooter sets content rendered below the record, such as recommendations
func (d *MovieDetails) SetFooter(footer string) {
	d.footer = footer
	d.refresh()
}

// Update scrolls the pane
func (d MovieDetails) Update(msg tea.Msg) (MovieDetails, tea.Cmd) {
	var cmd tea.Cmd
	d.viewport, cmd = d.viewport.Update(msg)
	return d, cmd
}

// ScrollPercent reports how far the pane is scrolled
func (d MovieDetails) ScrollPercent() float64 {
	return d.viewport.ScrollPercent()
}

func (d *MovieDetails) refresh() {
	if d.details == nil {
		d.viewport.SetContent("")
		return
	}
	content := d.renderContent()
	if d.footer != "" {
		content += "\n\n" + d.footer
	}
	d.viewport.SetContent(content)
}

// View renders the loading, error, not-found, or content state
func (d MovieDetails) View() string {
	switch {
	case d.loading && d.details == nil:
		return d.loader
	case d.err != "":
		return styles.ErrorStyle.Render(d.err) + "\n\n" + styles.AccentStyle.Render("← "+BackHint)
	case d.details == nil:
		return NotFoundText + "\n\n" + styles.AccentStyle.Render("← "+BackHint)
	}
	return d.viewport.View()
}

func (d MovieDetails) renderContent() string {
	m := d.details
	width := max(20, d.width)

	var b strings.Builder
	b.WriteString(styles.PageTitleStyle.Render(m.Title))
	b.WriteString("\n")
	if m.Tagline != "" {
		b.WriteString(styles.TaglineStyle.Render(styles.WordWrap(m.Tagline, width)))
		b.WriteString("\n")
	}

	if len(m.Genres) > 0 {
		badges := make([]string, len(m.Genres))
		for i, g := range m.Genres {
			badges[i] = styles.DimBadgeStyle.Render(g.Name)
		}
		b.WriteString("\n" + strings.Join(badges, " ") + "\n")
	}

	status := m.Status
	if status == "" {
		status = unknownStatusTxt
	}
	rating := styles.RatingStyle.Render("★") + fmt.Sprintf(" %s / 10 ", format.Rating(m.VoteAverage)) +
		styles.DimStyle.Render(fmt.Sprintf("(%s votes)", format.Votes(m.VoteCount)))

	b.WriteString("\n")
	for _, row := range [][2]string{
		{"Release Date", format.Date(m.ReleaseDate)},
		{"Runtime", format.Runtime(m.Runtime)},
		{"Status", status},
		{"Rating", rating},
		{"Budget", format.Money(m.Budget)},
		{"Revenue", format.Money(m.Revenue)},
	} {
		b.WriteString(styles.LabelStyle.Render(row[0]) + "  " + row[1] + "\n")
	}

	overview := m.Overview
	if overview == "" {
		overview = NoOverviewText
	}
	b.WriteString("\n" + styles.TitleStyle.Render("Overview") + "\n")
	b.WriteString(styles.WordWrap(overview, width) + "\n")

	if len(m.ProductionCompanies) > 0 {
		b.WriteString("\n" + styles.TitleStyle.Render("Production Companies") + "\n")
		for _, c := range m.ProductionCompanies {
			b.WriteString("  " + c.Name)
			if c.LogoPath != "" {
				b.WriteString(" " + styles.DimStyle.Render(tmdb.ImageURL(d.imageBaseURL, c.LogoPath, tmdb.ImageSizeSmall)))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n" + styles.LabelStyle.Render("Poster") + "  " +
		styles.AccentStyle.Render(tmdb.ImageURL(d.imageBaseURL, m.PosterPath, tmdb.ImageSizeLarge)))

	return b.String()
}
