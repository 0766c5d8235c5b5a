package browse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterByGenres(t *testing.T) {
	tests := []struct {
		name   string
		genres []int
		want   []int
	}{
		{name: "empty selection is identity", genres: nil, want: []int{1, 2, 3, 4, 5}},
		{name: "single genre", genres: []int{28}, want: []int{1, 3}},
		{name: "any overlap matches", genres: []int{878, 80}, want: []int{1, 2, 4}},
		{name: "no overlap", genres: []int{99}, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(FilterByGenres(sampleMovies(), tt.genres)))
		})
	}
}

func TestFilterByGenres_DoesNotAlias(t *testing.T) {
	in := sampleMovies()
	out := FilterByGenres(in, nil)
	out[0].Title = "changed"
	assert.Equal(t, "heat", in[0].Title)
}

func TestGenreSelection(t *testing.T) {
	var sel GenreSelection
	assert.Equal(t, 0, sel.Len())
	assert.False(t, sel.Has(28))

	sel.Toggle(28)
	sel.Toggle(12)
	sel.Toggle(35)
	assert.Equal(t, []int{12, 28, 35}, sel.IDs())
	assert.True(t, sel.Has(12))

	sel.Toggle(12)
	assert.Equal(t, []int{28, 35}, sel.IDs())

	sel.Clear()
	assert.Equal(t, []int{}, sel.IDs())
}
