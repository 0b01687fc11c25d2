package components

import (
	"strconv"
	"strings"

	"github.com/mmcdole/marquee/internal/tui/styles"
)

// maxPagesShown is the width of the page-number window
const maxPagesShown = 5

// PageNumbers returns the window of page numbers centred on current
func PageNumbers(current, total int) []int {
	if total < 1 {
		return nil
	}
	start := max(1, current-2)
	end := min(total, start+maxPagesShown-1)
	if end-start+1 < maxPagesShown {
		start = max(1, end-maxPagesShown+1)
	}

	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	return pages
}

// Pagination renders page navigation for a paged list
type Pagination struct {
	current int
	total   int
}

// NewPagination creates a pagination bar
func NewPagination() Pagination {
	return Pagination{current: 1, total: 1}
}

// SetPages updates the current and total page counts
func (p *Pagination) SetPages(current, total int) {
	p.current = current
	p.total = total
}

// Visible reports whether there is more than one page
func (p Pagination) Visible() bool {
	return p.total > 1
}

// View renders « 1 … 4 5 [6] 7 8 … 100 »
func (p Pagination) View() string {
	if !p.Visible() {
		return ""
	}

	var parts []string

	if p.current <= 1 {
		parts = append(parts, styles.DisabledPageStyle.Render("«"))
	} else {
		parts = append(parts, styles.PageStyle.Render("«"))
	}

	if p.current > 3 {
		parts = append(parts, styles.PageStyle.Render("1"))
		if p.current > 4 {
			parts = append(parts, styles.DimStyle.Render("…"))
		}
	}

	for _, page := range PageNumbers(p.current, p.total) {
		label := strconv.Itoa(page)
		if page == p.current {
			parts = append(parts, styles.CurrentPageStyle.Render(label))
		} else {
			parts = append(parts, styles.PageStyle.Render(label))
		}
	}

	if p.current < p.total-2 {
		if p.current < p.total-3 {
			parts = append(parts, styles.DimStyle.Render("…"))
		}
		parts = append(parts, styles.PageStyle.Render(strconv.Itoa(p.total)))
	}

	if p.current >= p.total {
		parts = append(parts, styles.DisabledPageStyle.Render("»"))
	} else {
		parts = append(parts, styles.PageStyle.Render("»"))
	}

	return strings.Join(parts, " ")
}
