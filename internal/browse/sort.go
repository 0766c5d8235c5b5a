package browse

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/justchokingaround/reel/internal/tmdb"
)

// SortKey selects the field movies are ordered by.
type SortKey string

const (
	// SortNone keeps the order the API returned.
	SortNone        SortKey = ""
	SortTitle       SortKey = "title"
	SortReleaseDate SortKey = "release_date"
	SortPopularity  SortKey = "popularity"
	SortRating      SortKey = "rating"
)

// SortKeys lists the selectable keys in cycling order.
var SortKeys = []SortKey{SortNone, SortTitle, SortReleaseDate, SortPopularity, SortRating}

// Label is the display name of the key.
func (k SortKey) Label() string {
	switch k {
	case SortTitle:
		return "Title"
	case SortReleaseDate:
		return "Release Date"
	case SortPopularity:
		return "Popularity"
	case SortRating:
		return "Rating"
	default:
		return "Relevance"
	}
}

// Next returns the key after k in SortKeys.
func (k SortKey) Next() SortKey {
	for i, key := range SortKeys {
		if key == k {
			return SortKeys[(i+1)%len(SortKeys)]
		}
	}
	return SortNone
}

// SortOrder is ascending or descending.
type SortOrder int

const (
	Ascending SortOrder = iota
	Descending
)

func (o SortOrder) String() string {
	if o == Descending {
		return "desc"
	}
	return "asc"
}

// Toggle flips the order.
func (o SortOrder) Toggle() SortOrder {
	if o == Descending {
		return Ascending
	}
	return Descending
}

// ParseSortKey accepts the key names used on the command line.
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "relevance":
		return SortNone, nil
	case "title":
		return SortTitle, nil
	case "release_date", "release", "date", "year":
		return SortReleaseDate, nil
	case "popularity", "popular":
		return SortPopularity, nil
	case "rating", "vote_average", "votes":
		return SortRating, nil
	}
	return SortNone, fmt.Errorf("unknown sort key %q (want title, release_date, popularity or rating)", s)
}

// ParseSortOrder accepts "asc" or "desc".
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	}
	return Ascending, fmt.Errorf("unknown sort order %q (want asc or desc)", s)
}

// SortMovies returns a sorted copy of movies; the input is never modified.
// Ascending is stable. Descending is the exact reverse of ascending, so
// ties appear in reverse input order.
func SortMovies(movies []tmdb.Movie, key SortKey, order SortOrder) []tmdb.Movie {
	out := make([]tmdb.Movie, len(movies))
	copy(out, movies)

	if key == SortNone {
		return out
	}

	less := lessFunc(key)
	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j])
	})

	if order == Descending {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

func lessFunc(key SortKey) func(a, b tmdb.Movie) bool {
	switch key {
	case SortTitle:
		col := collate.New(language.English, collate.IgnoreCase, collate.IgnoreDiacritics)
		return func(a, b tmdb.Movie) bool {
			return col.CompareString(a.Title, b.Title) < 0
		}
	case SortReleaseDate:
		// ISO dates order lexically; missing dates sort first.
		return func(a, b tmdb.Movie) bool {
			return a.ReleaseDate < b.ReleaseDate
		}
	case SortPopularity:
		return func(a, b tmdb.Movie) bool {
			return a.Popularity < b.Popularity
		}
	case SortRating:
		return func(a, b tmdb.Movie) bool {
			return a.VoteAverage < b.VoteAverage
		}
	}
	return func(a, b tmdb.Movie) bool { return false }
}
