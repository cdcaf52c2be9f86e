package core

import "context"

// MovieSource defines the interface for movie metadata providers (TMDb)
type MovieSource interface {
	// SearchMovie searches by title and returns the first matching summary
	SearchMovie(ctx context.Context, query string) (MovieSummary, error)

	// MovieDetail fetches the full record for a movie, including cast,
	// stills, trailer, and similar titles, in one combined request
	MovieDetail(ctx context.Context, id int) (*MovieDetail, error)

	// Images fetches backdrop still URLs for a movie
	Images(ctx context.Context, id int) ([]string, error)

	// Videos fetches the trailer for a movie, or nil when none exists
	Videos(ctx context.Context, id int) (*Trailer, error)

	// Similar fetches titles similar to a movie
	Similar(ctx context.Context, id int) ([]MovieSummary, error)
}

// Frontend defines the interface for user-facing frontends (Telegram, MCP)
type Frontend interface {
	// Start starts the frontend
	Start(ctx context.Context) error

	// Stop stops the frontend
	Stop(ctx context.Context) error

	// Name returns the frontend name (e.g., "telegram", "mcp")
	Name() string
}

// MovieSummary is a minimal movie record, as returned by search
type MovieSummary struct {
	ID        int     `json:"id"`         // TMDb movie ID
	Title     string  `json:"title"`      // Display title
	PosterURL string  `json:"poster_url"` // Full poster URL, empty when the API has none
	Rating    float64 `json:"rating"`     // Average vote (0-10)
}

// MovieDetail is the assembled display model for one movie. Every field is
// already defaulted and formatted, so frontends render it without nil checks.
type MovieDetail struct {
	ID          int            `json:"id"`                  // TMDb movie ID
	Title       string         `json:"title"`               // Display title, "N/A" when missing
	ReleaseDate string         `json:"release_date"`        // "2016-12-09", "N/A" when missing
	Rating      string         `json:"rating"`              // "7.9/10"
	Runtime     string         `json:"runtime"`             // "128 min"
	Genres      []string       `json:"genres"`              // Genre names, may be empty
	Tagline     string         `json:"tagline,omitempty"`   // Empty when the movie has none
	Overview    string         `json:"overview"`            // Plot summary, defaulted when missing
	PosterURL   string         `json:"poster_url"`          // Full poster URL, empty when the API has none
	Backdrops   []string       `json:"backdrops"`           // Still URLs, at most nine
	Trailer     *Trailer       `json:"trailer,omitempty"`   // Nil when no trailer matched
	Cast        []CastMember   `json:"cast"`                // Top billing first, at most ten
	Similar     []MovieSummary `json:"similar"`             // At most eight
}

// CastMember is one top-billed cast entry
type CastMember struct {
	Name       string `json:"name"`        // Actor name
	Character  string `json:"character"`   // Role played
	ProfileURL string `json:"profile_url"` // Headshot URL, empty when the API has none
}

// Trailer identifies a playable trailer on a hosting platform
type Trailer struct {
	Site string `json:"site"` // Hosting platform, e.g. "YouTube"
	Key  string `json:"key"`  // Platform-specific video key
}

// WatchURL returns the external watch URL for the trailer
func (t Trailer) WatchURL() string {
	if t.Key == "" {
		return ""
	}
	return "https://www.youtube.com/watch?v=" + t.Key
}
