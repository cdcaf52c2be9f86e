package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/SheedNova/Film-App/internal/core"
	"github.com/SheedNova/Film-App/internal/httpclient"
)

const (
	defaultBaseURL = "https://api.themoviedb.org/3"
	imageBaseURL   = "https://image.tmdb.org/t/p/"
)

// ErrNoResults is returned by SearchMovie when no movie matches the query.
var ErrNoResults = errors.New("no matching movies")

// StatusError is a non-200 answer from the TMDb API.
type StatusError struct {
	StatusCode int    // HTTP status
	Message    string // TMDb's status_message, or the raw body when unparseable
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("tmdb API error %d: %s", e.StatusCode, e.Message)
}

// Client is a TMDb API v3 client. Every call is a fresh request: no cache,
// no retry, so what the caller sees is exactly what the API said just now.
type Client struct {
	baseURL  string
	apiKey   string
	language string
	http     *httpclient.Client
	logger   *slog.Logger
}

var _ core.MovieSource = (*Client)(nil)

// New creates a new TMDb client.
func New(apiKey, language string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:  defaultBaseURL,
		apiKey:   apiKey,
		language: language,
		http:     httpclient.New(httpclient.DefaultConfig(), logger),
		logger:   logger,
	}
}

// NewForTest creates a TMDb client with a custom base URL for testing.
// Exported because it is used by cross-package tests (e.g. internal/mcp).
func NewForTest(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:  baseURL,
		apiKey:   "test-key",
		language: "en-US",
		http:     httpclient.New(httpclient.DefaultConfig(), logger),
		logger:   logger,
	}
}

// SearchMovie searches for movies by title and returns the first result,
// or ErrNoResults when the API answers with an empty result list.
func (c *Client) SearchMovie(ctx context.Context, query string) (core.MovieSummary, error) {
	params := url.Values{
		"query":    {query},
		"language": {c.language},
	}

	var resp searchResponse
	if err := c.get(ctx, "/search/movie", params, &resp); err != nil {
		return core.MovieSummary{}, fmt.Errorf("search movies: %w", err)
	}
	if len(resp.Results) == 0 {
		return core.MovieSummary{}, ErrNoResults
	}

	return summarize(resp.Results[0]), nil
}

// MovieDetail retrieves the assembled record for a movie by TMDb ID. The
// videos, images, credits, and similar sub-resources ride along in the same
// request via append_to_response. Language is deliberately left off so the
// API does not filter backdrops down to captioned ones.
func (c *Client) MovieDetail(ctx context.Context, id int) (*core.MovieDetail, error) {
	params := url.Values{"append_to_response": {"videos,images,credits,similar"}}

	var details MovieDetails
	path := fmt.Sprintf("/movie/%d", id)
	if err := c.get(ctx, path, params, &details); err != nil {
		return nil, fmt.Errorf("get movie %d: %w", id, err)
	}

	return assembleDetail(&details), nil
}

// Images retrieves the backdrop still URLs for a movie.
func (c *Client) Images(ctx context.Context, id int) ([]string, error) {
	var resp imagesResponse
	path := fmt.Sprintf("/movie/%d/images", id)
	if err := c.get(ctx, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("get images for %d: %w", id, err)
	}

	return stillURLs(resp.Backdrops), nil
}

// Videos retrieves the trailer for a movie, or nil when none qualifies.
func (c *Client) Videos(ctx context.Context, id int) (*core.Trailer, error) {
	var resp videosResponse
	path := fmt.Sprintf("/movie/%d/videos", id)
	if err := c.get(ctx, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("get videos for %d: %w", id, err)
	}

	return pickTrailer(resp.Results), nil
}

// Similar retrieves movies similar to a given movie ID.
func (c *Client) Similar(ctx context.Context, id int) ([]core.MovieSummary, error) {
	var resp similarResponse
	path := fmt.Sprintf("/movie/%d/similar", id)
	if err := c.get(ctx, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("get similar for %d: %w", id, err)
	}

	return similarSummaries(resp.Results), nil
}

// PosterURL returns the full URL for an image path at the given size.
func PosterURL(posterPath, size string) string {
	if posterPath == "" {
		return ""
	}
	return imageBaseURL + size + posterPath
}

// get performs an authenticated GET request to the TMDb API and decodes the
// JSON response. Non-200 answers become a *StatusError carrying TMDb's own
// status_message when the body has one.
func (c *Client) get(ctx context.Context, path string, params url.Values, result any) error {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}

	q := u.Query()
	q.Set("api_key", c.apiKey)
	for k, vs := range params {
		for _, v := range vs {
			q.Set(k, v)
		}
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		var ae apiError
		if err := json.Unmarshal(body, &ae); err == nil && ae.StatusMessage != "" {
			return &StatusError{StatusCode: resp.StatusCode, Message: ae.StatusMessage}
		}
		return &StatusError{StatusCode: resp.StatusCode, Message: string(body)}
	}

	return json.NewDecoder(resp.Body).Decode(result)
}
