package main

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/SheedNova/Film-App/internal/core"
	"github.com/SheedNova/Film-App/internal/metadata/tmdb"
)

// mockSource implements core.MovieSource for testing.
type mockSource struct {
	summary   core.MovieSummary
	searchErr error
	detail    *core.MovieDetail
	detailErr error

	searchedQuery string
	detailID      int
}

func (m *mockSource) SearchMovie(_ context.Context, query string) (core.MovieSummary, error) {
	m.searchedQuery = query
	return m.summary, m.searchErr
}

func (m *mockSource) MovieDetail(_ context.Context, id int) (*core.MovieDetail, error) {
	m.detailID = id
	return m.detail, m.detailErr
}

func (m *mockSource) Images(_ context.Context, _ int) ([]string, error) { return nil, nil }

func (m *mockSource) Videos(_ context.Context, _ int) (*core.Trailer, error) { return nil, nil }

func (m *mockSource) Similar(_ context.Context, _ int) ([]core.MovieSummary, error) {
	return nil, nil
}

func newTestBrowseModel() browseModel {
	return newBrowseModel(context.Background(), &mockSource{})
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func testDetail() *core.MovieDetail {
	return &core.MovieDetail{
		ID:          313369,
		Title:       "La La Land",
		ReleaseDate: "2016-12-09",
		Rating:      "7.9/10",
		Runtime:     "128 min",
		Genres:      []string{"Comedy", "Drama"},
		Overview:    "Mia, an aspiring actress, serves lattes to movie stars.",
		Trailer:     &core.Trailer{Site: "YouTube", Key: "0pdqf4P9MB8"},
		Cast:        []core.CastMember{{Name: "Ryan Gosling", Character: "Sebastian Wilder"}},
		Similar:     []core.MovieSummary{{ID: 244786, Title: "Whiplash", Rating: 8.4}},
	}
}

func TestBrowseModel_Init(t *testing.T) {
	m := newTestBrowseModel()

	cmd := m.Init()
	if cmd == nil {
		t.Error("Init should return the blink command")
	}
}

func TestBrowseModel_InitialState(t *testing.T) {
	m := newTestBrowseModel()

	if m.searching {
		t.Error("should not be searching initially")
	}
	if m.ready {
		t.Error("should not be ready before WindowSizeMsg")
	}
	if m.focus != focusSearch {
		t.Error("search input should be focused initially")
	}
	if m.state.Movie != nil {
		t.Error("board should start empty")
	}
	if m.state.Favorites.Len() != 0 {
		t.Error("favorites should start empty")
	}
}

func TestBrowseModel_WindowSize(t *testing.T) {
	m := newTestBrowseModel()

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	bm := updated.(browseModel)

	if !bm.ready {
		t.Error("should be ready after WindowSizeMsg")
	}
	if bm.width != 100 {
		t.Errorf("width = %d, want 100", bm.width)
	}
	if bm.favWidth != 32 {
		t.Errorf("favWidth = %d, want 32 (capped)", bm.favWidth)
	}
}

func TestBrowseModel_NarrowWindowHidesRail(t *testing.T) {
	m := newTestBrowseModel()

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 50, Height: 20})
	bm := updated.(browseModel)

	if bm.favWidth != 0 {
		t.Errorf("favWidth = %d, want 0 on a narrow terminal", bm.favWidth)
	}
}

func TestBrowseModel_CtrlC(t *testing.T) {
	m := newTestBrowseModel()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Error("ctrl+c should return a quit command")
	}
}

func TestBrowseModel_EmptyInput(t *testing.T) {
	m := newTestBrowseModel()
	m.ready = true

	m.textinput.SetValue("")
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	bm := updated.(browseModel)

	if cmd != nil {
		t.Error("empty input should not produce a command")
	}
	if bm.searching {
		t.Error("empty input should not start a search")
	}
}

func TestBrowseModel_StartSearch(t *testing.T) {
	m := newTestBrowseModel()
	m.ready = true

	m.textinput.SetValue("la la land")
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	bm := updated.(browseModel)

	if !bm.searching {
		t.Error("should be searching after enter")
	}
	if cmd == nil {
		t.Error("should return a command to fetch the movie")
	}
	if bm.textinput.Value() != "" {
		t.Error("input should be cleared after submitting")
	}
}

func TestBrowseModel_EnterIgnoredWhileSearching(t *testing.T) {
	m := newTestBrowseModel()
	m.ready = true
	m.searching = true

	m.textinput.SetValue("another query")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if cmd != nil {
		t.Error("should not start a second search while one is running")
	}
}

func TestBrowseModel_ReceiveResult(t *testing.T) {
	m := newTestBrowseModel()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(browseModel)
	m.searching = true

	updated, _ = m.Update(searchResultMsg{detail: testDetail()})
	bm := updated.(browseModel)

	if bm.searching {
		t.Error("should not be searching after a result")
	}
	if bm.state.Movie == nil || bm.state.Movie.Title != "La La Land" {
		t.Errorf("board should show the fetched movie, got %+v", bm.state.Movie)
	}
}

func TestBrowseModel_ReceiveNoResults(t *testing.T) {
	m := newTestBrowseModel()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(browseModel)
	m.state = m.state.WithMovie(testDetail()).ToggleFavorite("Keeper")
	m.searching = true

	updated, _ = m.Update(searchResultMsg{err: tmdb.ErrNoResults})
	bm := updated.(browseModel)

	if bm.state.Movie != nil {
		t.Error("empty search should clear the shown movie")
	}
	if !bm.state.Favorites.Has("Keeper") {
		t.Error("favorites should survive an empty search")
	}
	if !strings.Contains(bm.status, "No results found") {
		t.Errorf("status should say no results, got %q", bm.status)
	}
}

func TestBrowseModel_ReceiveNetworkError(t *testing.T) {
	m := newTestBrowseModel()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(browseModel)
	m.state = m.state.WithMovie(testDetail())
	m.searching = true

	updated, _ = m.Update(searchResultMsg{err: errors.New("connection refused")})
	bm := updated.(browseModel)

	if bm.state.Movie == nil {
		t.Error("board should keep the shown movie on a network error")
	}
	if !strings.Contains(bm.status, "connection refused") {
		t.Errorf("status should carry the error, got %q", bm.status)
	}
}

func TestBrowseModel_TabSwitchesFocus(t *testing.T) {
	m := newTestBrowseModel()
	m.ready = true

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	bm := updated.(browseModel)
	if bm.focus != focusFavorites {
		t.Error("tab should move focus to the favorites rail")
	}

	updated, _ = bm.Update(tea.KeyMsg{Type: tea.KeyTab})
	bm = updated.(browseModel)
	if bm.focus != focusSearch {
		t.Error("tab should move focus back to search")
	}
}

func TestBrowseModel_ToggleFavorite(t *testing.T) {
	m := newTestBrowseModel()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(browseModel)
	m.state = m.state.WithMovie(testDetail())
	m.focus = focusFavorites

	updated, _ = m.Update(keyRune('f'))
	bm := updated.(browseModel)
	if !bm.state.Favorites.Has("La La Land") {
		t.Error("f should add the shown movie to favorites")
	}
	if !strings.Contains(bm.status, "Added La La Land to favorites!") {
		t.Errorf("unexpected status: %q", bm.status)
	}

	updated, _ = bm.Update(keyRune('f'))
	bm = updated.(browseModel)
	if bm.state.Favorites.Has("La La Land") {
		t.Error("second f should remove the movie from favorites")
	}
	if !strings.Contains(bm.status, "Removed La La Land from favorites!") {
		t.Errorf("unexpected status: %q", bm.status)
	}
}

func TestBrowseModel_ToggleFavorite_NoMovie(t *testing.T) {
	m := newTestBrowseModel()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(browseModel)
	m.focus = focusFavorites

	updated, _ = m.Update(keyRune('f'))
	bm := updated.(browseModel)

	if bm.state.Favorites.Len() != 0 {
		t.Error("nothing to favorite without a shown movie")
	}
	if !strings.Contains(bm.status, searchFirstText) {
		t.Errorf("unexpected status: %q", bm.status)
	}
}

func TestBrowseModel_RemoveSelectedFavorite(t *testing.T) {
	m := newTestBrowseModel()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(browseModel)
	m.state = m.state.ToggleFavorite("First").ToggleFavorite("Second")
	m.focus = focusFavorites
	m.favCursor = 0

	updated, _ = m.Update(keyRune('d'))
	bm := updated.(browseModel)

	if bm.state.Favorites.Has("First") {
		t.Error("d should remove the selected favorite")
	}
	if !bm.state.Favorites.Has("Second") {
		t.Error("other favorites should be untouched")
	}
}

func TestBrowseModel_RemoveLastFavoriteClampsCursor(t *testing.T) {
	m := newTestBrowseModel()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(browseModel)
	m.state = m.state.ToggleFavorite("First").ToggleFavorite("Second")
	m.focus = focusFavorites
	m.favCursor = 1

	updated, _ = m.Update(keyRune('x'))
	bm := updated.(browseModel)

	if bm.favCursor != 0 {
		t.Errorf("cursor should clamp to 0, got %d", bm.favCursor)
	}

	updated, _ = bm.Update(keyRune('x'))
	bm = updated.(browseModel)
	if bm.state.Favorites.Len() != 0 {
		t.Error("both favorites should be removed")
	}

	// A removal on an empty list is a no-op.
	updated, _ = bm.Update(keyRune('x'))
	bm = updated.(browseModel)
	if bm.state.Favorites.Len() != 0 {
		t.Error("removal on empty list should do nothing")
	}
}

func TestBrowseModel_FavoritesCursorNavigation(t *testing.T) {
	m := newTestBrowseModel()
	m.ready = true
	m.state = m.state.ToggleFavorite("A").ToggleFavorite("B").ToggleFavorite("C")
	m.focus = focusFavorites

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	bm := updated.(browseModel)
	updated, _ = bm.Update(tea.KeyMsg{Type: tea.KeyDown})
	bm = updated.(browseModel)
	if bm.favCursor != 2 {
		t.Errorf("cursor = %d, want 2", bm.favCursor)
	}

	updated, _ = bm.Update(tea.KeyMsg{Type: tea.KeyDown})
	bm = updated.(browseModel)
	if bm.favCursor != 2 {
		t.Errorf("cursor should stop at the last entry, got %d", bm.favCursor)
	}

	updated, _ = bm.Update(tea.KeyMsg{Type: tea.KeyUp})
	bm = updated.(browseModel)
	if bm.favCursor != 1 {
		t.Errorf("cursor = %d, want 1", bm.favCursor)
	}
}

func TestBrowseModel_QuitFromFavorites(t *testing.T) {
	m := newTestBrowseModel()
	m.ready = true
	m.focus = focusFavorites

	_, cmd := m.Update(keyRune('q'))
	if cmd == nil {
		t.Error("q should quit from the favorites rail")
	}
}

func TestBrowseModel_TypingQInSearch(t *testing.T) {
	m := newTestBrowseModel()
	m.ready = true

	updated, _ := m.Update(keyRune('q'))
	bm := updated.(browseModel)

	if bm.textinput.Value() != "q" {
		t.Errorf("q should type into the search input, got %q", bm.textinput.Value())
	}
}

func TestBrowseModel_SearchCommand(t *testing.T) {
	source := &mockSource{
		summary: core.MovieSummary{ID: 313369, Title: "La La Land"},
		detail:  testDetail(),
	}
	m := newBrowseModel(context.Background(), source)

	msg := m.searchMovie("la la land")()
	res, ok := msg.(searchResultMsg)
	if !ok {
		t.Fatalf("expected searchResultMsg, got %T", msg)
	}
	if res.err != nil {
		t.Fatalf("unexpected error: %v", res.err)
	}
	if res.detail.Title != "La La Land" {
		t.Errorf("unexpected detail: %+v", res.detail)
	}
	if source.searchedQuery != "la la land" {
		t.Errorf("query = %q", source.searchedQuery)
	}
	if source.detailID != 313369 {
		t.Errorf("detail fetched for %d, want the first match", source.detailID)
	}
}

func TestBrowseModel_SearchCommandError(t *testing.T) {
	source := &mockSource{searchErr: tmdb.ErrNoResults}
	m := newBrowseModel(context.Background(), source)

	msg := m.searchMovie("zzzzzz")()
	res := msg.(searchResultMsg)

	if !errors.Is(res.err, tmdb.ErrNoResults) {
		t.Errorf("expected ErrNoResults, got %v", res.err)
	}
	if source.detailID != 0 {
		t.Error("detail fetch should be skipped when the search fails")
	}
}

func TestBrowseModel_RenderDetail(t *testing.T) {
	m := newTestBrowseModel()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(browseModel)
	m.state = m.state.WithMovie(testDetail()).ToggleFavorite("La La Land")

	out := m.renderDetail()
	for _, want := range []string{
		"La La Land",
		"7.9/10",
		"128 min",
		"Comedy, Drama",
		"https://www.youtube.com/watch?v=0pdqf4P9MB8",
		"Ryan Gosling",
		"Whiplash",
		"❤",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("detail panel missing %q", want)
		}
	}
}

func TestBrowseModel_RenderDetailEmpty(t *testing.T) {
	m := newTestBrowseModel()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(browseModel)

	out := m.renderDetail()
	if !strings.Contains(out, "Search for a movie") {
		t.Errorf("empty board should show the hint, got %q", out)
	}
}

func TestBrowseModel_ViewNotReady(t *testing.T) {
	m := newTestBrowseModel()

	view := m.View()
	if view != "Initializing..." {
		t.Errorf("expected 'Initializing...', got %q", view)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"a very long movie title", 10, "a very lo…"},
		{"anything", 0, ""},
		{"héllo wörld", 6, "héllo…"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}
