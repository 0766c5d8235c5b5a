package common

import (
	"context"

	"github.com/justchokingaround/reel/internal/browse"
	"github.com/justchokingaround/reel/internal/tmdb"
)

// Catalog is everything the screens need from the movie API.
// *tmdb.Client implements it.
type Catalog interface {
	browse.Source
	GetMovieDetails(ctx context.Context, id int) (*tmdb.MovieDetail, error)
	GetMovieGenres(ctx context.Context) ([]tmdb.Genre, error)
	ImageURL(path string) string
	MovieURL(id int) string
}

var _ Catalog = (*tmdb.Client)(nil)
