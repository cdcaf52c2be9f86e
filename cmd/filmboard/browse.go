package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/SheedNova/Film-App/internal/board"
	"github.com/SheedNova/Film-App/internal/config"
	"github.com/SheedNova/Film-App/internal/core"
	"github.com/SheedNova/Film-App/internal/metadata/tmdb"
)

// newBrowseCmd returns the "browse" subcommand for the interactive board.
func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive movie board",
		Long: "Open the Filmboard TUI. Type a title and press Enter to search;\n" +
			"Tab moves to the favorites rail, f toggles the shown movie as a\n" +
			"favorite, d removes the selected favorite, q or Ctrl+C quits.",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runBrowse()
		},
	}
}

// runBrowse initializes the TMDB client and starts the Bubble Tea board TUI.
func runBrowse() error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	logger := config.SetupLogger(cfg.App.LogLevel)
	source := initTMDB(cfg, logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	p := tea.NewProgram(newBrowseModel(ctx, source), tea.WithAltScreen())

	// Bridge OS signal cancellation into the Bubble Tea event loop.
	go func() {
		<-ctx.Done()
		p.Send(tea.Quit())
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run browser: %w", err)
	}
	return nil
}

// searchResultMsg carries the fetched movie back to the TUI.
type searchResultMsg struct {
	detail *core.MovieDetail
	err    error
}

// Status line texts.
const (
	noResultsText   = "No results found. Try a different title!"
	searchFirstText = "Search for a movie first."
)

// focusArea tracks which pane receives key input.
type focusArea int

const (
	focusSearch focusArea = iota
	focusFavorites
)

// browseModel is the Bubble Tea model for the movie board.
type browseModel struct {
	ctx       context.Context
	source    core.MovieSource
	state     board.State
	viewport  viewport.Model
	textinput textinput.Model
	spinner   spinner.Model
	focus     focusArea
	favCursor int
	searching bool
	status    string // rendered feedback line, transient
	width     int
	height    int
	favWidth  int
	ready     bool
}

// newBrowseModel creates a browseModel with search input and spinner.
func newBrowseModel(ctx context.Context, source core.MovieSource) browseModel {
	ti := textinput.New()
	ti.Placeholder = "Search for a movie..."
	ti.Focus()
	ti.CharLimit = 200

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styleInfo

	return browseModel{
		ctx:       ctx,
		source:    source,
		textinput: ti,
		spinner:   s,
	}
}

// Init starts the text input blink cursor.
func (m browseModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages and user input.
func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleResize(msg)

	case tea.KeyMsg:
		model, cmd, handled := m.handleKey(msg)
		if handled {
			return model, cmd
		}

	case searchResultMsg:
		m.handleResult(msg)
		return m, nil

	case spinner.TickMsg:
		if m.searching {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	if m.focus == focusSearch && !m.searching {
		var tiCmd tea.Cmd
		m.textinput, tiCmd = m.textinput.Update(msg)
		cmds = append(cmds, tiCmd)
	}

	if m.ready {
		var vpCmd tea.Cmd
		m.viewport, vpCmd = m.viewport.Update(msg)
		cmds = append(cmds, vpCmd)
	}

	return m, tea.Batch(cmds...)
}

// handleResize adjusts the detail panel and favorites rail on terminal resize.
func (m *browseModel) handleResize(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height

	m.favWidth = m.width / 3
	if m.favWidth > 32 {
		m.favWidth = 32
	}
	if m.width < 64 {
		m.favWidth = 0 // too narrow for the rail
	}
	vpWidth := m.width - m.favWidth

	headerHeight := 1
	feedbackHeight := 1
	inputHeight := 2
	helpHeight := 1
	vpHeight := m.height - headerHeight - feedbackHeight - inputHeight - helpHeight
	if vpHeight < 1 {
		vpHeight = 1
	}

	if !m.ready {
		m.viewport = viewport.New(vpWidth, vpHeight)
		m.viewport.SetContent(m.renderDetail())
		m.ready = true
	} else {
		m.viewport.Width = vpWidth
		m.viewport.Height = vpHeight
		m.viewport.SetContent(m.renderDetail())
	}
	m.textinput.Width = m.width - 4
}

// handleKey dispatches key events based on the focused pane.
func (m *browseModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	key := msg.String()
	if key == "ctrl+c" {
		return *m, tea.Quit, true
	}
	if m.focus == focusFavorites {
		return m.handleFavoritesKey(key)
	}
	return m.handleSearchKey(key)
}

// handleSearchKey handles keys while the search input is focused.
func (m *browseModel) handleSearchKey(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "tab":
		m.focus = focusFavorites
		m.textinput.Blur()
		m.clampFavCursor()
		m.syncBoard()
		return *m, nil, true
	case "enter":
		return m.handleEnter()
	}
	return *m, nil, false
}

// handleFavoritesKey handles keys while the favorites rail is focused.
func (m *browseModel) handleFavoritesKey(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "q":
		return *m, tea.Quit, true
	case "tab", "esc", "enter":
		m.focus = focusSearch
		m.textinput.Focus()
		return *m, nil, true
	case "up", "k":
		if m.favCursor > 0 {
			m.favCursor--
		}
		return *m, nil, true
	case "down", "j":
		if m.favCursor < m.state.Favorites.Len()-1 {
			m.favCursor++
		}
		return *m, nil, true
	case "f":
		m.toggleShownFavorite()
		return *m, nil, true
	case "d", "x":
		m.removeSelectedFavorite()
		return *m, nil, true
	}
	return *m, nil, true
}

// handleEnter starts a search for the typed query.
func (m *browseModel) handleEnter() (tea.Model, tea.Cmd, bool) {
	if m.searching {
		return *m, nil, true
	}
	query := strings.TrimSpace(m.textinput.Value())
	if query == "" {
		return *m, nil, true
	}
	m.textinput.SetValue("")
	m.searching = true
	m.status = ""
	return *m, tea.Batch(m.searchMovie(query), m.spinner.Tick), true
}

// handleResult applies the fetch outcome to the board.
func (m *browseModel) handleResult(msg searchResultMsg) {
	m.searching = false
	switch {
	case errors.Is(msg.err, tmdb.ErrNoResults):
		m.state = m.state.Cleared()
		m.status = styleDim.Render(noResultsText)
	case msg.err != nil:
		// Board keeps whatever it was showing.
		m.status = styleError.Render("Error: " + msg.err.Error())
		return
	default:
		m.state = m.state.WithMovie(msg.detail)
		m.status = ""
	}
	m.syncBoard()
}

// toggleShownFavorite toggles the displayed movie in the favorites list.
func (m *browseModel) toggleShownFavorite() {
	if m.state.Movie == nil {
		m.status = styleDim.Render(searchFirstText)
		return
	}
	title := m.state.Movie.Title
	had := m.state.Favorites.Has(title)
	m.state = m.state.ToggleFavorite(title)
	if had {
		m.status = styleDim.Render(fmt.Sprintf("Removed %s from favorites!", title))
	} else {
		m.status = styleSuccess.Render(fmt.Sprintf("Added %s to favorites!", title))
	}
	m.clampFavCursor()
	m.syncBoard()
}

// removeSelectedFavorite removes the favorite under the cursor.
func (m *browseModel) removeSelectedFavorite() {
	titles := m.state.Favorites.Titles()
	if len(titles) == 0 {
		return
	}
	title := titles[m.favCursor]
	m.state = m.state.RemoveFavorite(title)
	m.status = styleDim.Render(fmt.Sprintf("Removed %s from favorites!", title))
	m.clampFavCursor()
	m.syncBoard()
}

// clampFavCursor keeps the cursor inside the favorites list.
func (m *browseModel) clampFavCursor() {
	n := m.state.Favorites.Len()
	if m.favCursor >= n {
		m.favCursor = n - 1
	}
	if m.favCursor < 0 {
		m.favCursor = 0
	}
}

// syncBoard re-renders the detail panel after a state transition.
func (m *browseModel) syncBoard() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderDetail())
	m.viewport.GotoTop()
}

// View renders the board: detail panel, favorites rail, feedback line, input.
func (m browseModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("5")).
		Render("Filmboard")

	boardRow := m.viewport.View()
	if m.favWidth > 0 {
		boardRow = lipgloss.JoinHorizontal(lipgloss.Top, m.viewport.View(), m.renderFavorites())
	}

	feedback := m.status
	if m.searching {
		feedback = m.spinner.View() + styleDim.Render(" Searching...")
	}

	inputBorder := lipgloss.NewStyle().
		BorderTop(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("8")).
		PaddingTop(0)

	help := styleDim.Render("enter: search • tab: favorites • f: toggle favorite • d: remove • q: quit")

	return title + "\n" +
		boardRow + "\n" +
		feedback + "\n" +
		inputBorder.Render(m.textinput.View()) + "\n" +
		help
}

// renderDetail formats the shown movie for the detail panel.
func (m browseModel) renderDetail() string {
	if m.state.Movie == nil {
		return styleDim.Render("Search for a movie to fill the board.")
	}
	d := m.state.Movie

	var sb strings.Builder
	heading := styleTitle.Render(d.Title)
	if m.state.Favorites.Has(d.Title) {
		heading += styleError.Render(" ❤")
	}
	sb.WriteString(heading + "\n")
	if d.Tagline != "" {
		sb.WriteString(styleDim.Render(d.Tagline) + "\n")
	}
	sb.WriteString("\n")

	sb.WriteString(styleLabel.Render("Release: ") + styleText.Render(d.ReleaseDate) + "\n")
	sb.WriteString(styleLabel.Render("Rating:  ") + styleText.Render(d.Rating) + "\n")
	sb.WriteString(styleLabel.Render("Runtime: ") + styleText.Render(d.Runtime) + "\n")
	if len(d.Genres) > 0 {
		sb.WriteString(styleLabel.Render("Genres:  ") + styleText.Render(strings.Join(d.Genres, ", ")) + "\n")
	}
	if d.PosterURL != "" {
		sb.WriteString(styleLabel.Render("Poster:  ") + styleDim.Render(d.PosterURL) + "\n")
	}
	sb.WriteString("\n")

	wrap := lipgloss.NewStyle().Width(m.viewport.Width - 2)
	sb.WriteString(wrap.Render(styleText.Render(d.Overview)) + "\n\n")

	if d.Trailer != nil {
		sb.WriteString(styleLabel.Render("Trailer: ") + styleInfo.Render(d.Trailer.WatchURL()) + "\n\n")
	}

	if len(d.Cast) > 0 {
		sb.WriteString(styleTitle.Render("Top cast") + "\n")
		for _, c := range d.Cast {
			line := "  " + styleText.Render(c.Name)
			if c.Character != "" {
				line += styleDim.Render(" as " + c.Character)
			}
			sb.WriteString(line + "\n")
		}
		sb.WriteString("\n")
	}

	if len(d.Backdrops) > 0 {
		sb.WriteString(styleTitle.Render("Stills") + "\n")
		for _, u := range d.Backdrops {
			sb.WriteString(styleDim.Render("  "+u) + "\n")
		}
		sb.WriteString("\n")
	}

	if len(d.Similar) > 0 {
		sb.WriteString(styleTitle.Render("Similar") + "\n")
		for i, s := range d.Similar {
			sb.WriteString(fmt.Sprintf("  %d. ", i+1) + styleText.Render(s.Title) +
				styleDim.Render(fmt.Sprintf(" (%.1f/10)", s.Rating)) + "\n")
		}
	}

	return sb.String()
}

// renderFavorites formats the favorites rail.
func (m browseModel) renderFavorites() string {
	var sb strings.Builder
	sb.WriteString(styleTitle.Render("Favorites") + "\n")

	titles := m.state.Favorites.Titles()
	if len(titles) == 0 {
		sb.WriteString(styleDim.Render("Nothing saved yet."))
	}
	for i, t := range titles {
		cursor := "  "
		line := styleText.Render(truncate(t, m.favWidth-5))
		if m.focus == focusFavorites && i == m.favCursor {
			cursor = styleInfo.Render("> ")
			line = styleTitle.Render(truncate(t, m.favWidth-5))
		}
		sb.WriteString(cursor + line + "\n")
	}

	rail := lipgloss.NewStyle().
		Width(m.favWidth - 2).
		PaddingLeft(1).
		BorderLeft(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("8"))
	return rail.Render(sb.String())
}

// truncate shortens s to max runes, ellipsized.
func truncate(s string, max int) string {
	if max < 1 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

// searchMovie returns a command that resolves the query to a full movie record.
// Two sequential calls: search for the first match, then fetch its detail.
func (m browseModel) searchMovie(query string) tea.Cmd {
	return func() tea.Msg {
		summary, err := m.source.SearchMovie(m.ctx, query)
		if err != nil {
			return searchResultMsg{err: err}
		}
		detail, err := m.source.MovieDetail(m.ctx, summary.ID)
		if err != nil {
			return searchResultMsg{err: err}
		}
		return searchResultMsg{detail: detail}
	}
}
