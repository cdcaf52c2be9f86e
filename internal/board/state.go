// Package board holds the session state shared by every frontend: the movie
// currently on display and the favorites picked so far. State is a value;
// each transition returns a new State and never mutates the old one, so a
// frontend holds exactly one and swaps it wholesale.
package board

import "github.com/SheedNova/Film-App/internal/core"

// State is one session's complete state.
type State struct {
	Movie     *core.MovieDetail // Movie on display, nil when none
	Favorites Favorites         // Survives searches, failed ones included
}

// WithMovie returns a State showing detail. Favorites carry over.
func (s State) WithMovie(detail *core.MovieDetail) State {
	s.Movie = detail
	return s
}

// Cleared returns a State with nothing on display, for when a search fails
// or matches no movie. Favorites carry over untouched.
func (s State) Cleared() State {
	s.Movie = nil
	return s
}

// ToggleFavorite returns a State with title toggled in the favorites set.
func (s State) ToggleFavorite(title string) State {
	s.Favorites = s.Favorites.Toggle(title)
	return s
}

// RemoveFavorite returns a State with title removed from the favorites set.
func (s State) RemoveFavorite(title string) State {
	s.Favorites = s.Favorites.Remove(title)
	return s
}
