package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/justchokingaround/reel/internal/browse"
	"github.com/justchokingaround/reel/internal/tmdb"
	"github.com/justchokingaround/reel/internal/tui/utils"
)

const requestTimeout = 30 * time.Second

// newCatalog builds a TMDB client, failing early without a token.
func newCatalog() (*tmdb.Client, error) {
	if err := cfg.RequireToken(); err != nil {
		return nil, err
	}
	return tmdb.NewClient(cfg, logger), nil
}

// searchCmd searches movies by title
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search movies by title",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		page, _ := cmd.Flags().GetInt("page")
		sortFlag, _ := cmd.Flags().GetString("sort")
		orderFlag, _ := cmd.Flags().GetString("order")

		key, err := browse.ParseSortKey(sortFlag)
		if err != nil {
			return err
		}
		order, err := browse.ParseSortOrder(orderFlag)
		if err != nil {
			return err
		}

		client, err := newCatalog()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
		defer cancel()

		logger.Info("searching", "query", query, "page", page)
		result, err := client.SearchMovies(ctx, query, page)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}

		if len(result.Results) == 0 {
			fmt.Printf("No movies found for %q\n", query)
			return nil
		}
		result.Results = browse.SortMovies(result.Results, key, order)
		printPage(os.Stdout, result)
		return nil
	},
}

// discoverCmd lists popular movies, optionally restricted to genres
var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "List popular movies, optionally filtered by genre ids",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		page, _ := cmd.Flags().GetInt("page")
		genres, _ := cmd.Flags().GetIntSlice("genre")

		client, err := newCatalog()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
		defer cancel()

		logger.Info("discovering", "page", page, "genres", genres)
		result, err := client.DiscoverMovies(ctx, page, genres)
		if err != nil {
			return fmt.Errorf("discover failed: %w", err)
		}
		printPage(os.Stdout, result)
		return nil
	},
}

// movieCmd prints the full detail of one movie
var movieCmd = &cobra.Command{
	Use:   "movie <id>",
	Short: "Show details for a movie",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil || id <= 0 {
			return fmt.Errorf("invalid movie id %q", args[0])
		}

		client, err := newCatalog()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
		defer cancel()

		detail, err := client.GetMovieDetails(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to load movie %d: %w", id, err)
		}
		printDetail(os.Stdout, detail, client)
		return nil
	},
}

// genresCmd lists the genre ids accepted by discover --genre
var genresCmd = &cobra.Command{
	Use:   "genres",
	Short: "List movie genres",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newCatalog()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
		defer cancel()

		genres, err := client.GetMovieGenres(ctx)
		if err != nil {
			return fmt.Errorf("failed to load genres: %w", err)
		}
		for _, g := range genres {
			fmt.Printf("%6d  %s\n", g.ID, g.Name)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().Int("page", 1, "results page")
	searchCmd.Flags().String("sort", "", "sort this page by: title, release_date, popularity, rating")
	searchCmd.Flags().String("order", "desc", "sort order: asc or desc")

	discoverCmd.Flags().Int("page", 1, "results page")
	discoverCmd.Flags().IntSlice("genre", nil, "genre id to require (repeatable; see 'reel genres')")
}

func printPage(w io.Writer, page *tmdb.Page) {
	fmt.Fprintf(w, "Page %d of %d (%s results)\n\n",
		page.Page, page.TotalPages, humanize.Comma(int64(page.TotalResults)))

	for i, m := range page.Results {
		title := m.Title
		if year := m.Year(); year != "" {
			title += " (" + year + ")"
		}
		fmt.Fprintf(w, "%d. %s\n", i+1, title)
		fmt.Fprintf(w, "   ID: %d\n", m.ID)
		if m.VoteCount > 0 {
			fmt.Fprintf(w, "   Rating: %s\n", utils.FormatRatingWithVotes(m.VoteAverage, m.VoteCount))
		}
		fmt.Fprintln(w)
	}
}

func printDetail(w io.Writer, d *tmdb.MovieDetail, client *tmdb.Client) {
	title := d.Title
	if year := d.Year(); year != "" {
		title += " (" + year + ")"
	}
	fmt.Fprintln(w, title)
	if d.Tagline != "" {
		fmt.Fprintf(w, "\"%s\"\n", d.Tagline)
	}
	fmt.Fprintln(w)

	overview := d.Overview
	if strings.TrimSpace(overview) == "" {
		overview = "No overview available."
	}
	for _, line := range utils.WrapText(overview, 80) {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Rating:       %s\n", utils.FormatRatingWithVotes(d.VoteAverage, d.VoteCount))
	fmt.Fprintf(w, "Runtime:      %s\n", utils.FormatRuntime(d.Runtime))
	fmt.Fprintf(w, "Genres:       %s\n", utils.JoinOrNA(d.GenreNames()))
	fmt.Fprintf(w, "Release Date: %s\n", utils.OrNA(d.ReleaseDate))
	fmt.Fprintf(w, "Poster:       %s\n", client.ImageURL(d.PosterPath))
	fmt.Fprintf(w, "TMDB:         %s\n", client.MovieURL(d.ID))
}
