package tmdb

// Movie represents a movie from TMDb search results.
type Movie struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date"`
	PosterPath  string  `json:"poster_path"`
	VoteAverage float64 `json:"vote_average"`
	GenreIDs    []int   `json:"genre_ids"`
}

// MovieDetails represents detailed movie information, including the
// sub-resources pulled in by append_to_response.
type MovieDetails struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date"`
	PosterPath  string  `json:"poster_path"`
	VoteAverage float64 `json:"vote_average"`
	Runtime     int     `json:"runtime"`
	Tagline     string  `json:"tagline"`
	Genres      []Genre `json:"genres"`

	Videos  videosResponse  `json:"videos"`
	Images  imagesResponse  `json:"images"`
	Credits creditsResponse `json:"credits"`
	Similar similarResponse `json:"similar"`
}

// Genre represents a movie genre.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Video is one entry from the movie videos sub-resource.
type Video struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Site     string `json:"site"`
	Type     string `json:"type"`
	Official bool   `json:"official"`
}

// Image is one entry from the movie images sub-resource.
type Image struct {
	FilePath string `json:"file_path"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

// CastCredit is one cast entry from the movie credits sub-resource,
// ordered by billing.
type CastCredit struct {
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
	Order       int    `json:"order"`
}

// searchResponse is the TMDb paginated search response.
type searchResponse struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

// videosResponse wraps the videos sub-resource, inline or standalone.
type videosResponse struct {
	Results []Video `json:"results"`
}

// imagesResponse wraps the images sub-resource, inline or standalone.
type imagesResponse struct {
	Backdrops []Image `json:"backdrops"`
	Posters   []Image `json:"posters"`
}

// creditsResponse wraps the credits sub-resource.
type creditsResponse struct {
	Cast []CastCredit `json:"cast"`
}

// similarResponse wraps the similar-movies endpoint response.
type similarResponse struct {
	Page    int     `json:"page"`
	Results []Movie `json:"results"`
}

// apiError is TMDb's error envelope, returned with any non-200 status.
type apiError struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
}
