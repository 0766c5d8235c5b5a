package browse

import (
	"sort"

	"github.com/justchokingaround/reel/internal/tmdb"
)

// FilterByGenres keeps the movies whose genre ids intersect genreIDs,
// preserving order. An empty genreIDs returns a copy of movies.
func FilterByGenres(movies []tmdb.Movie, genreIDs []int) []tmdb.Movie {
	if len(genreIDs) == 0 {
		out := make([]tmdb.Movie, len(movies))
		copy(out, movies)
		return out
	}

	want := make(map[int]struct{}, len(genreIDs))
	for _, id := range genreIDs {
		want[id] = struct{}{}
	}

	out := make([]tmdb.Movie, 0, len(movies))
	for _, m := range movies {
		for _, id := range m.GenreIDs {
			if _, ok := want[id]; ok {
				out = append(out, m)
				break
			}
		}
	}
	return out
}

// GenreSelection is the set of genre ids checked in the gallery.
type GenreSelection struct {
	ids map[int]struct{}
}

// Toggle adds or removes id.
func (g *GenreSelection) Toggle(id int) {
	if g.ids == nil {
		g.ids = make(map[int]struct{})
	}
	if _, ok := g.ids[id]; ok {
		delete(g.ids, id)
		return
	}
	g.ids[id] = struct{}{}
}

// Has reports whether id is selected.
func (g GenreSelection) Has(id int) bool {
	_, ok := g.ids[id]
	return ok
}

// Len is the number of selected genres.
func (g GenreSelection) Len() int {
	return len(g.ids)
}

// Clear deselects everything.
func (g *GenreSelection) Clear() {
	g.ids = nil
}

// IDs returns the selected ids in ascending order.
func (g GenreSelection) IDs() []int {
	ids := make([]int, 0, len(g.ids))
	for id := range g.ids {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
