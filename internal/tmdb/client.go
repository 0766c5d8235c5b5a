package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/justchokingaround/reel/internal/config"
	tmdbhttp "github.com/justchokingaround/reel/internal/tmdb/http"
)

// MaxPages is the deepest page TMDB serves for list endpoints.
const MaxPages = 500

// ClampTotalPages caps a reported page count at MaxPages.
func ClampTotalPages(total int) int {
	if total > MaxPages {
		return MaxPages
	}
	if total < 0 {
		return 0
	}
	return total
}

// Client talks to the TMDB v3 API.
type Client struct {
	baseURL        string
	imageBaseURL   string
	placeholderURL string
	webURL         string
	httpClient     *tmdbhttp.Client
	logger         *slog.Logger

	genresMu sync.Mutex
	genres   []Genre
}

// NewClient creates a catalog client from configuration.
func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}

	httpClient := tmdbhttp.NewClient(tmdbhttp.ClientConfig{
		Timeout:   cfg.TMDB.Timeout,
		UserAgent: "reel/1.0",
		Token:     cfg.TMDB.Token,
		Debug:     cfg.Advanced.Debug,
		Logger:    logger,
	})

	return &Client{
		baseURL:        strings.TrimRight(cfg.TMDB.BaseURL, "/"),
		imageBaseURL:   strings.TrimRight(cfg.TMDB.ImageBaseURL, "/"),
		placeholderURL: cfg.TMDB.PlaceholderURL,
		webURL:         strings.TrimRight(cfg.TMDB.WebURL, "/"),
		httpClient:     httpClient,
		logger:         logger,
	}
}

// SearchMovies runs a free-text search. A blank query fails with
// ErrEmptyQuery without touching the network.
func (c *Client) SearchMovies(ctx context.Context, query string, page int) (*Page, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	params := map[string]string{
		"query": query,
		"page":  strconv.Itoa(normalizePage(page)),
	}

	var result Page
	if err := c.get(ctx, "search", "/search/movie", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DiscoverMovies lists movies by popularity, restricted to genreIDs when
// the set is non-empty.
func (c *Client) DiscoverMovies(ctx context.Context, page int, genreIDs []int) (*Page, error) {
	params := map[string]string{
		"page":    strconv.Itoa(normalizePage(page)),
		"sort_by": "popularity.desc",
	}
	if len(genreIDs) > 0 {
		ids := make([]string, 0, len(genreIDs))
		for _, id := range genreIDs {
			ids = append(ids, strconv.Itoa(id))
		}
		params["with_genres"] = strings.Join(ids, ",")
	}

	var result Page
	if err := c.get(ctx, "discover", "/discover/movie", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetMovieDetails fetches one movie. A 404 surfaces as a NotFound error.
func (c *Client) GetMovieDetails(ctx context.Context, id int) (*MovieDetail, error) {
	var result MovieDetail
	if err := c.get(ctx, "movie details", fmt.Sprintf("/movie/%d", id), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetMovieGenres returns the genre list. The first successful answer is
// kept for the lifetime of the client.
func (c *Client) GetMovieGenres(ctx context.Context) ([]Genre, error) {
	c.genresMu.Lock()
	defer c.genresMu.Unlock()

	if c.genres != nil {
		return c.genres, nil
	}

	var result genreListResponse
	if err := c.get(ctx, "genres", "/genre/movie/list", nil, &result); err != nil {
		return nil, err
	}
	if result.Genres == nil {
		result.Genres = []Genre{}
	}
	c.genres = result.Genres
	return c.genres, nil
}

// ImageURL resolves a poster path, falling back to the placeholder image.
func (c *Client) ImageURL(path string) string {
	if path == "" {
		return c.placeholderURL
	}
	return c.imageBaseURL + path
}

// MovieURL is the public TMDB page of a movie.
func (c *Client) MovieURL(id int) string {
	return fmt.Sprintf("%s/movie/%d", c.webURL, id)
}

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func (c *Client) get(ctx context.Context, op, endpoint string, params map[string]string, result interface{}) error {
	fullURL := c.baseURL + endpoint
	reqID := uuid.NewString()
	logger := c.logger.With("request_id", reqID, "op", op)

	logger.Debug("tmdb request", "endpoint", endpoint, "params", params)

	resp, err := c.httpClient.Get(ctx, fullURL, params)
	if err != nil {
		var statusErr *tmdbhttp.StatusError
		if !errors.As(err, &statusErr) {
			logger.Warn("tmdb request failed", "error", err)
			return &RequestError{Op: op, Kind: NetworkFailure, Err: err}
		}

		reqErr := &RequestError{Op: op, Kind: ProviderError, StatusCode: statusErr.StatusCode, Err: err}
		if statusErr.StatusCode == nethttp.StatusNotFound {
			reqErr.Kind = NotFound
		}
		var body errorResponse
		if json.Unmarshal(statusErr.Body, &body) == nil && body.StatusMessage != "" {
			reqErr.StatusMessage = body.StatusMessage
		}
		logger.Warn("tmdb error response", "status", statusErr.StatusCode, "message", reqErr.StatusMessage)
		return reqErr
	}

	if err := json.Unmarshal(resp.Body(), result); err != nil {
		logger.Warn("tmdb payload not decodable", "error", err)
		return &RequestError{Op: op, Kind: MalformedPayload, StatusCode: resp.StatusCode(), Err: err}
	}

	logger.Debug("tmdb response", "status", resp.StatusCode(), "elapsed", resp.Time())
	return nil
}
