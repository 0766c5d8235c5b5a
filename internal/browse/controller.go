package browse

import (
	"context"
	"strings"

	"github.com/justchokingaround/reel/internal/tmdb"
)

// Source is the part of the catalog a result screen fetches from.
type Source interface {
	SearchMovies(ctx context.Context, query string, page int) (*tmdb.Page, error)
	DiscoverMovies(ctx context.Context, page int, genreIDs []int) (*tmdb.Page, error)
}

// Mode selects how a controller fetches.
type Mode int

const (
	// ModeSearch fetches only for a non-empty query and never pages past 1.
	ModeSearch Mode = iota
	// ModeBrowse searches for a non-empty query and discovers by genre
	// otherwise, with full paging.
	ModeBrowse
)

// State is the fetch-cycle state of a controller.
type State int

const (
	Idle State = iota
	Loading
	Loaded
	Errored
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Errored:
		return "errored"
	default:
		return "idle"
	}
}

// Request is a snapshot of what to fetch. It is safe to run off the UI loop.
type Request struct {
	Token  uint64
	Ctx    context.Context
	Query  string
	Page   int
	Genres []int
}

// Discover reports whether the request goes to the discover endpoint.
func (r Request) Discover() bool {
	return r.Query == ""
}

// Run performs the request against src.
func (r Request) Run(src Source) (*tmdb.Page, error) {
	if r.Discover() {
		return src.DiscoverMovies(r.Ctx, r.Page, r.Genres)
	}
	return src.SearchMovies(r.Ctx, r.Query, r.Page)
}

// Controller holds the query, genre filter, paging and latest results of a
// result screen. It is driven from a single goroutine; only Request.Run
// leaves it.
type Controller struct {
	mode   Mode
	query  string
	genres GenreSelection
	pager  Pager
	seq    Sequencer

	state   State
	results []tmdb.Movie
	total   int
	err     error

	sortKey   SortKey
	sortOrder SortOrder
}

// NewController creates a controller in the Idle state.
func NewController(mode Mode) *Controller {
	return &Controller{mode: mode}
}

// Mode returns the fetch mode.
func (c *Controller) Mode() Mode { return c.mode }

// State returns the current fetch-cycle state.
func (c *Controller) State() State { return c.state }

// Err is the failure of the last accepted response, if any.
func (c *Controller) Err() error { return c.err }

// Query is the trimmed query text.
func (c *Controller) Query() string { return c.query }

// Page is the current page.
func (c *Controller) Page() int { return c.pager.Page() }

// TotalPages is the page count of the last accepted response.
func (c *Controller) TotalPages() int { return c.pager.TotalPages() }

// TotalResults is the result count reported by the API.
func (c *Controller) TotalResults() int { return c.total }

// Pager exposes paging predicates for rendering.
func (c *Controller) Pager() *Pager { return &c.pager }

// Genres returns the selected genres.
func (c *Controller) Genres() GenreSelection { return c.genres }

// Sort returns the current sort key and order.
func (c *Controller) Sort() (SortKey, SortOrder) { return c.sortKey, c.sortOrder }

// SetQuery changes the query and resets to page 1. It reports whether
// the query actually changed.
func (c *Controller) SetQuery(q string) bool {
	q = strings.TrimSpace(q)
	if q == c.query {
		return false
	}
	c.query = q
	c.pager.Reset()
	return true
}

// ToggleGenre flips a genre in the filter and resets to page 1.
func (c *Controller) ToggleGenre(id int) {
	c.genres.Toggle(id)
	c.pager.Reset()
}

// ClearGenres empties the filter and resets to page 1. It reports whether
// anything was selected.
func (c *Controller) ClearGenres() bool {
	if c.genres.Len() == 0 {
		return false
	}
	c.genres.Clear()
	c.pager.Reset()
	return true
}

// GoToPage moves to page. Pages outside [1, TotalPages] are ignored, as is
// any paging in ModeSearch.
func (c *Controller) GoToPage(page int) bool {
	if c.mode == ModeSearch {
		return false
	}
	return c.pager.GoTo(page)
}

// NextPage advances one page.
func (c *Controller) NextPage() bool { return c.GoToPage(c.Page() + 1) }

// PrevPage goes back one page.
func (c *Controller) PrevPage() bool { return c.GoToPage(c.Page() - 1) }

// SetSort changes the client-side ordering. No fetch is needed.
func (c *Controller) SetSort(key SortKey, order SortOrder) {
	c.sortKey = key
	c.sortOrder = order
}

// NeedsFetch reports whether the current inputs call for a request.
func (c *Controller) NeedsFetch() bool {
	return c.query != "" || c.mode == ModeBrowse
}

// Begin starts a fetch cycle for the current inputs. Any in-flight request
// is cancelled and its token retired. When there is nothing to fetch (an
// empty query in ModeSearch) the controller goes Idle and ok is false.
func (c *Controller) Begin(parent context.Context) (req Request, ok bool) {
	if !c.NeedsFetch() {
		c.seq.Cancel()
		c.state = Idle
		c.results = nil
		c.total = 0
		c.err = nil
		c.pager.SetTotalPages(0)
		return Request{}, false
	}

	token, ctx := c.seq.Issue(parent)
	c.state = Loading
	c.err = nil

	req = Request{
		Token: token,
		Ctx:   ctx,
		Query: c.query,
		Page:  c.pager.Page(),
	}
	if req.Discover() {
		req.Genres = c.genres.IDs()
	}
	return req, true
}

// Complete applies a response. Responses for any token other than the
// latest issued are dropped and Complete returns false.
func (c *Controller) Complete(token uint64, page *tmdb.Page, err error) bool {
	if !c.seq.IsCurrent(token) {
		return false
	}
	c.seq.Done(token)

	if err != nil {
		c.state = Errored
		c.err = err
		c.results = nil
		c.total = 0
		return true
	}

	c.state = Loaded
	c.err = nil
	if page == nil {
		c.results = nil
		c.total = 0
		c.pager.SetTotalPages(0)
		return true
	}

	c.results = page.Results
	c.total = page.TotalResults
	c.pager.SetTotalPages(page.TotalPages)
	if c.mode == ModeSearch && c.pager.TotalPages() > 1 {
		c.pager.SetTotalPages(1)
	}
	return true
}

// Cancel aborts any in-flight request. A later Complete for it is dropped.
// State is left as is so the screen still shows what it had.
func (c *Controller) Cancel() {
	c.seq.Cancel()
	if c.state == Loading {
		c.state = Idle
	}
}

// Results is the raw page as fetched.
func (c *Controller) Results() []tmdb.Movie {
	return c.results
}

// PostFiltered reports whether the genre filter is applied client-side to
// the fetched page rather than by the API.
func (c *Controller) PostFiltered() bool {
	return c.mode == ModeBrowse && c.query != "" && c.genres.Len() > 0
}

// Visible is the derived list to render: post-filtered when needed, then
// sorted. The fetched page is never modified.
func (c *Controller) Visible() []tmdb.Movie {
	movies := c.results
	if c.PostFiltered() {
		movies = FilterByGenres(movies, c.genres.IDs())
	}
	return SortMovies(movies, c.sortKey, c.sortOrder)
}

// NavContext captures the ids of Visible in order.
func (c *Controller) NavContext() NavContext {
	visible := c.Visible()
	ids := make([]int, 0, len(visible))
	for _, m := range visible {
		ids = append(ids, m.ID)
	}
	return NewNavContext(ids)
}
