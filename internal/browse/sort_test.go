package browse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justchokingaround/reel/internal/tmdb"
)

func sampleMovies() []tmdb.Movie {
	return []tmdb.Movie{
		{ID: 1, Title: "heat", ReleaseDate: "1995-12-15", Popularity: 40, VoteAverage: 8.3, GenreIDs: []int{28, 80}},
		{ID: 2, Title: "Alien", ReleaseDate: "1979-05-25", Popularity: 60, VoteAverage: 8.1, GenreIDs: []int{27, 878}},
		{ID: 3, Title: "Élite Squad", ReleaseDate: "2007-10-12", Popularity: 40, VoteAverage: 8.0, GenreIDs: []int{28}},
		{ID: 4, Title: "Brazil", ReleaseDate: "", Popularity: 12, VoteAverage: 8.1, GenreIDs: []int{35, 878}},
		{ID: 5, Title: "Collateral", ReleaseDate: "2004-08-06", Popularity: 40, VoteAverage: 7.5, GenreIDs: nil},
	}
}

func ids(movies []tmdb.Movie) []int {
	out := make([]int, 0, len(movies))
	for _, m := range movies {
		out = append(out, m.ID)
	}
	return out
}

func TestSortMovies(t *testing.T) {
	tests := []struct {
		name  string
		key   SortKey
		order SortOrder
		want  []int
	}{
		{name: "none keeps api order", key: SortNone, order: Ascending, want: []int{1, 2, 3, 4, 5}},
		{name: "title ignores case and accents", key: SortTitle, order: Ascending, want: []int{2, 4, 5, 3, 1}},
		{name: "release date puts missing first", key: SortReleaseDate, order: Ascending, want: []int{4, 2, 1, 5, 3}},
		{name: "popularity ties keep input order", key: SortPopularity, order: Ascending, want: []int{4, 1, 3, 5, 2}},
		{name: "popularity desc reverses ties", key: SortPopularity, order: Descending, want: []int{2, 5, 3, 1, 4}},
		{name: "rating desc", key: SortRating, order: Descending, want: []int{1, 4, 2, 3, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(SortMovies(sampleMovies(), tt.key, tt.order)))
		})
	}
}

func TestSortMovies_DescIsReverseOfAsc(t *testing.T) {
	for _, key := range SortKeys[1:] {
		t.Run(string(key), func(t *testing.T) {
			asc := ids(SortMovies(sampleMovies(), key, Ascending))
			desc := ids(SortMovies(sampleMovies(), key, Descending))
			require.Len(t, desc, len(asc))
			for i := range asc {
				assert.Equal(t, asc[i], desc[len(desc)-1-i])
			}
		})
	}
}

func TestSortMovies_DoesNotMutateInput(t *testing.T) {
	in := sampleMovies()
	_ = SortMovies(in, SortTitle, Descending)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(in))
}

func TestSortMovies_Empty(t *testing.T) {
	assert.Empty(t, SortMovies(nil, SortRating, Descending))
}

func TestParseSort(t *testing.T) {
	key, err := ParseSortKey("Rating")
	require.NoError(t, err)
	assert.Equal(t, SortRating, key)

	key, err = ParseSortKey("year")
	require.NoError(t, err)
	assert.Equal(t, SortReleaseDate, key)

	_, err = ParseSortKey("runtime")
	assert.Error(t, err)

	order, err := ParseSortOrder("DESC")
	require.NoError(t, err)
	assert.Equal(t, Descending, order)

	_, err = ParseSortOrder("up")
	assert.Error(t, err)
}

func TestSortKey_Next(t *testing.T) {
	key := SortNone
	seen := []SortKey{}
	for range SortKeys {
		key = key.Next()
		seen = append(seen, key)
	}
	assert.Equal(t, []SortKey{SortTitle, SortReleaseDate, SortPopularity, SortRating, SortNone}, seen)
	assert.Equal(t, Ascending, Descending.Toggle())
}
