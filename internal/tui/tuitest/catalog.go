package tuitest

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/justchokingaround/reel/internal/tmdb"
)

// SearchCall records one SearchMovies invocation.
type SearchCall struct {
	Query string
	Page  int
}

// DiscoverCall records one DiscoverMovies invocation.
type DiscoverCall struct {
	Page   int
	Genres []int
}

// FakeCatalog is an in-memory catalog for screen tests.
type FakeCatalog struct {
	mu sync.Mutex

	// Search maps a query to its response; unknown queries get an empty page.
	Search   map[string]*tmdb.Page
	Discover func(page int, genres []int) *tmdb.Page
	Details  map[int]*tmdb.MovieDetail
	Genres   []tmdb.Genre
	// Err, when set, fails every call.
	Err error

	SearchCalls   []SearchCall
	DiscoverCalls []DiscoverCall
	DetailCalls   []int
	GenreCalls    int
}

func (f *FakeCatalog) SearchMovies(ctx context.Context, query string, page int) (*tmdb.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SearchCalls = append(f.SearchCalls, SearchCall{Query: query, Page: page})
	if f.Err != nil {
		return nil, f.Err
	}
	if p, ok := f.Search[query]; ok {
		return p, nil
	}
	return &tmdb.Page{Page: page, TotalPages: 0}, nil
}

func (f *FakeCatalog) DiscoverMovies(ctx context.Context, page int, genreIDs []int) (*tmdb.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.DiscoverCalls = append(f.DiscoverCalls, DiscoverCall{Page: page, Genres: genreIDs})
	if f.Err != nil {
		return nil, f.Err
	}
	if f.Discover != nil {
		return f.Discover(page, genreIDs), nil
	}
	return &tmdb.Page{Page: page}, nil
}

func (f *FakeCatalog) GetMovieDetails(ctx context.Context, id int) (*tmdb.MovieDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.DetailCalls = append(f.DetailCalls, id)
	if f.Err != nil {
		return nil, f.Err
	}
	if d, ok := f.Details[id]; ok {
		return d, nil
	}
	return nil, &tmdb.RequestError{
		Op:            "movie details",
		Kind:          tmdb.NotFound,
		StatusCode:    http.StatusNotFound,
		StatusMessage: "The resource you requested could not be found.",
	}
}

func (f *FakeCatalog) GetMovieGenres(ctx context.Context) ([]tmdb.Genre, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.GenreCalls++
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Genres, nil
}

func (f *FakeCatalog) ImageURL(path string) string {
	if path == "" {
		return "https://picsum.photos/200/300"
	}
	return "https://image.tmdb.org/t/p/w500" + path
}

func (f *FakeCatalog) MovieURL(id int) string {
	return fmt.Sprintf("https://www.themoviedb.org/movie/%d", id)
}

// Drain runs cmd and returns the messages it produces, flattening batches.
// Commands that do not answer quickly (blink and tick timers) are dropped.
func Drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()

	select {
	case msg := <-ch:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, sub := range batch {
				out = append(out, Drain(sub)...)
			}
			return out
		}
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	case <-time.After(50 * time.Millisecond):
		return nil
	}
}
