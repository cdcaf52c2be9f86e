package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/SheedNova/Film-App/internal/board"
	"github.com/SheedNova/Film-App/internal/core"
	"github.com/SheedNova/Film-App/internal/metadata/tmdb"
)

// Deps holds backend dependencies for MCP tool handlers.
type Deps struct {
	Source core.MovieSource
}

// Server wraps an MCP SDK server with Filmboard tool handlers. The server
// carries one board session: favorites accumulate for the lifetime of the
// process and vanish with it.
type Server struct {
	server *mcpsdk.Server
	deps   Deps
	logger *slog.Logger

	mu    sync.Mutex
	state board.State
}

// NewServer creates an MCP server with all Filmboard tools registered.
func NewServer(deps Deps, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    "filmboard",
			Version: "0.1.0",
		},
		&mcpsdk.ServerOptions{Logger: logger},
	)

	srv := &Server{server: s, deps: deps, logger: logger}
	srv.registerTools()
	return srv
}

// ServeStdio runs the MCP server over stdin/stdout.
func (s *Server) ServeStdio(ctx context.Context) error {
	return s.server.Run(ctx, &mcpsdk.StdioTransport{})
}

// MCPServer returns the underlying MCP SDK server (for testing).
func (s *Server) MCPServer() *mcpsdk.Server {
	return s.server
}

// update applies a board transition under the lock and returns the result.
func (s *Server) update(fn func(board.State) board.State) board.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = fn(s.state)
	return s.state
}

// snapshot returns the current board state.
func (s *Server) snapshot() board.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// registerTools registers all 6 Filmboard tools on the MCP server.
func (s *Server) registerTools() {
	s.server.AddTool(searchMovieTool(), s.handleSearchMovie)
	s.server.AddTool(getMovieDetailsTool(), s.handleGetMovieDetails)
	s.server.AddTool(similarMoviesTool(), s.handleSimilarMovies)
	s.server.AddTool(toggleFavoriteTool(), s.handleToggleFavorite)
	s.server.AddTool(removeFavoriteTool(), s.handleRemoveFavorite)
	s.server.AddTool(listFavoritesTool(), s.handleListFavorites)
}

// Tool definitions.

func searchMovieTool() *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name:        "search_movie",
		Description: "Search for a movie by title and bring the best match onto the board. Returns the full assembled record: release date, rating, runtime, genres, overview, poster and still URLs, trailer, top cast, and similar titles.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"query": map[string]any{
					"type":        "string",
					"description": "The movie title to search for",
				},
			},
			"required": []any{"query"},
		},
	}
}

func getMovieDetailsTool() *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name:        "get_movie_details",
		Description: "Bring a movie onto the board by its TMDb ID. Returns the same assembled record as search_movie.",
		InputSchema: tmdbIDSchema("The TMDb ID of the movie"),
	}
}

func similarMoviesTool() *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name:        "similar_movies",
		Description: "List titles similar to a movie, by its TMDb ID. Returns up to eight summaries with IDs, titles, poster URLs, and ratings.",
		InputSchema: tmdbIDSchema("The TMDb ID of the movie to find similar titles for"),
	}
}

func toggleFavoriteTool() *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name:        "toggle_favorite",
		Description: "Toggle a title in the favorites list: added when absent, removed when present. Returns the updated list.",
		InputSchema: titleSchema("The movie title to toggle"),
	}
}

func removeFavoriteTool() *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name:        "remove_favorite",
		Description: "Remove a title from the favorites list. Removing a title that is not listed is a no-op. Returns the updated list.",
		InputSchema: titleSchema("The movie title to remove"),
	}
}

func listFavoritesTool() *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name:        "list_favorites",
		Description: "List the favorite titles picked so far in this session, in the order they were added.",
		InputSchema: map[string]any{
			"type":       "object",
			"properties": map[string]any{},
		},
	}
}

func tmdbIDSchema(desc string) map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"tmdb_id": map[string]any{
				"type":        "integer",
				"description": desc,
			},
		},
		"required": []any{"tmdb_id"},
	}
}

func titleSchema(desc string) map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": desc,
			},
		},
		"required": []any{"title"},
	}
}

// Tool handlers. Each parses arguments, calls the source, returns JSON text content.

func (s *Server) handleSearchMovie(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	if s.deps.Source == nil {
		return toolError("movie source not configured"), nil
	}

	query, err := extractStringFromArgs(req.Params.Arguments, "query")
	if err != nil {
		return toolError(err.Error()), nil
	}

	summary, err := s.deps.Source.SearchMovie(ctx, query)
	if err != nil {
		if errors.Is(err, tmdb.ErrNoResults) {
			s.update(func(st board.State) board.State { return st.Cleared() })
			return toolError("No results found. Try a different title!"), nil
		}
		return toolError(fmt.Sprintf("tmdb search failed: %v", err)), nil
	}

	detail, err := s.deps.Source.MovieDetail(ctx, summary.ID)
	if err != nil {
		return toolError(fmt.Sprintf("tmdb get movie failed: %v", err)), nil
	}

	s.update(func(st board.State) board.State { return st.WithMovie(detail) })
	return toolJSON(detail)
}

func (s *Server) handleGetMovieDetails(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	if s.deps.Source == nil {
		return toolError("movie source not configured"), nil
	}

	tmdbID, err := extractIntFromArgs(req.Params.Arguments, "tmdb_id")
	if err != nil {
		return toolError(err.Error()), nil
	}

	detail, err := s.deps.Source.MovieDetail(ctx, tmdbID)
	if err != nil {
		return toolError(fmt.Sprintf("tmdb get movie failed: %v", err)), nil
	}

	s.update(func(st board.State) board.State { return st.WithMovie(detail) })
	return toolJSON(detail)
}

func (s *Server) handleSimilarMovies(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	if s.deps.Source == nil {
		return toolError("movie source not configured"), nil
	}

	tmdbID, err := extractIntFromArgs(req.Params.Arguments, "tmdb_id")
	if err != nil {
		return toolError(err.Error()), nil
	}

	movies, err := s.deps.Source.Similar(ctx, tmdbID)
	if err != nil {
		return toolError(fmt.Sprintf("tmdb similar failed: %v", err)), nil
	}
	return toolJSON(movies)
}

func (s *Server) handleToggleFavorite(_ context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	title, err := extractStringFromArgs(req.Params.Arguments, "title")
	if err != nil {
		return toolError(err.Error()), nil
	}

	added := !s.snapshot().Favorites.Has(title)
	st := s.update(func(st board.State) board.State { return st.ToggleFavorite(title) })

	return toolJSON(map[string]any{
		"title":     title,
		"favorited": added,
		"favorites": st.Favorites.Titles(),
	})
}

func (s *Server) handleRemoveFavorite(_ context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	title, err := extractStringFromArgs(req.Params.Arguments, "title")
	if err != nil {
		return toolError(err.Error()), nil
	}

	st := s.update(func(st board.State) board.State { return st.RemoveFavorite(title) })

	return toolJSON(map[string]any{
		"title":     title,
		"favorites": st.Favorites.Titles(),
	})
}

func (s *Server) handleListFavorites(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	st := s.snapshot()

	return toolJSON(map[string]any{
		"favorites": st.Favorites.Titles(),
		"count":     st.Favorites.Len(),
	})
}

// Helper functions.

// toolJSON marshals v to JSON and returns it as text content.
func toolJSON(v any) (*mcpsdk.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return toolError(fmt.Sprintf("marshal result: %v", err)), nil
	}
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: string(data)}},
	}, nil
}

// toolError returns a tool result indicating an error.
func toolError(msg string) *mcpsdk.CallToolResult {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: msg}},
		IsError: true,
	}
}

// extractIntFromArgs extracts an integer argument from raw JSON arguments.
func extractIntFromArgs(raw json.RawMessage, key string) (int, error) {
	var args map[string]any
	if err := json.Unmarshal(raw, &args); err != nil {
		return 0, fmt.Errorf("invalid arguments: %w", err)
	}

	val, ok := args[key]
	if !ok {
		return 0, fmt.Errorf("%s is required", key)
	}

	switch v := val.(type) {
	case float64:
		return int(v), nil
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("%s must be a number: %w", key, err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%s must be a number, got %T", key, val)
	}
}

// extractStringFromArgs extracts a string argument from raw JSON arguments.
func extractStringFromArgs(raw json.RawMessage, key string) (string, error) {
	var args map[string]any
	if err := json.Unmarshal(raw, &args); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}

	val, ok := args[key]
	if !ok {
		return "", fmt.Errorf("%s is required", key)
	}

	s, ok := val.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("%s must be a non-empty string", key)
	}
	return s, nil
}
