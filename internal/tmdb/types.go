package tmdb

import "time"

// Movie is a summary entry as returned by the search and discover endpoints.
type Movie struct {
	ID            int     `json:"id"`
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title"`
	Overview      string  `json:"overview"`
	PosterPath    string  `json:"poster_path"`
	ReleaseDate   string  `json:"release_date"`
	VoteAverage   float64 `json:"vote_average"`
	VoteCount     int     `json:"vote_count"`
	Popularity    float64 `json:"popularity"`
	GenreIDs      []int   `json:"genre_ids"`
}

// Year returns the release year, or "" when the date is missing or unparseable.
func (m Movie) Year() string {
	return releaseYear(m.ReleaseDate)
}

// Genre is a TMDB movie genre.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// MovieDetail is the response of GET /movie/{id}.
type MovieDetail struct {
	ID            int     `json:"id"`
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title"`
	Tagline       string  `json:"tagline"`
	Overview      string  `json:"overview"`
	PosterPath    string  `json:"poster_path"`
	ReleaseDate   string  `json:"release_date"`
	Runtime       *int    `json:"runtime"`
	VoteAverage   float64 `json:"vote_average"`
	VoteCount     int     `json:"vote_count"`
	Popularity    float64 `json:"popularity"`
	Genres        []Genre `json:"genres"`
	Homepage      string  `json:"homepage"`
	IMDbID        string  `json:"imdb_id"`
	Status        string  `json:"status"`
}

// Year returns the release year, or "" when the date is missing or unparseable.
func (d MovieDetail) Year() string {
	return releaseYear(d.ReleaseDate)
}

// GenreNames returns the resolved genre names in API order.
func (d MovieDetail) GenreNames() []string {
	names := make([]string, 0, len(d.Genres))
	for _, g := range d.Genres {
		names = append(names, g.Name)
	}
	return names
}

// Page is one page of movie results.
type Page struct {
	Page         int     `json:"page"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
	Results      []Movie `json:"results"`
}

// IDs returns the result ids in order.
func (p *Page) IDs() []int {
	if p == nil {
		return nil
	}
	ids := make([]int, 0, len(p.Results))
	for _, m := range p.Results {
		ids = append(ids, m.ID)
	}
	return ids
}

type genreListResponse struct {
	Genres []Genre `json:"genres"`
}

// errorResponse is TMDB's error body.
type errorResponse struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
	Success       *bool  `json:"success,omitempty"`
}

func releaseYear(date string) string {
	if date == "" {
		return ""
	}
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return ""
	}
	return t.Format("2006")
}
