package browse

import "github.com/justchokingaround/reel/internal/tmdb"

// Pager tracks the current page against a known page count.
// Pages are 1-based. The zero value is on page 1 with no known total.
type Pager struct {
	page       int
	totalPages int
}

// Page returns the current page.
func (p *Pager) Page() int {
	if p.page < 1 {
		return 1
	}
	return p.page
}

// TotalPages returns the known page count, capped at tmdb.MaxPages.
func (p *Pager) TotalPages() int {
	return p.totalPages
}

// SetTotalPages records the count reported by the latest response.
func (p *Pager) SetTotalPages(total int) {
	p.totalPages = tmdb.ClampTotalPages(total)
}

// Reset returns to page 1. The page count is kept until the next response.
func (p *Pager) Reset() {
	p.page = 1
}

// CanGo reports whether page is within [1, TotalPages].
func (p *Pager) CanGo(page int) bool {
	return page >= 1 && page <= p.totalPages
}

// GoTo moves to page and reports whether it moved. Out-of-range or
// same-page requests are no-ops.
func (p *Pager) GoTo(page int) bool {
	if !p.CanGo(page) || page == p.Page() {
		return false
	}
	p.page = page
	return true
}

// Next advances one page if possible.
func (p *Pager) Next() bool {
	return p.GoTo(p.Page() + 1)
}

// Prev goes back one page if possible.
func (p *Pager) Prev() bool {
	return p.GoTo(p.Page() - 1)
}

// HasNext reports whether Next would move.
func (p *Pager) HasNext() bool {
	return p.CanGo(p.Page() + 1)
}

// HasPrev reports whether Prev would move.
func (p *Pager) HasPrev() bool {
	return p.CanGo(p.Page() - 1)
}
