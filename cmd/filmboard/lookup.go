package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SheedNova/Film-App/internal/config"
	"github.com/SheedNova/Film-App/internal/core"
	"github.com/SheedNova/Film-App/internal/metadata/tmdb"
)

func newLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup [title]",
		Short: "Look up a movie and print its board",
		Long:  "Search for a movie and print the assembled record without entering interactive mode.",
		Example: `  filmboard lookup "la la land"
  filmboard lookup inception`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			return runLookup(query)
		},
	}
}

func runLookup(query string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	logger := config.SetupLogger(cfg.App.LogLevel)
	source := initTMDB(cfg, logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	p := tea.NewProgram(newLookupModel(ctx, source, query))
	m, err := p.Run()
	if err != nil {
		return fmt.Errorf("run lookup: %w", err)
	}

	lm, ok := m.(lookupModel)
	if !ok {
		return fmt.Errorf("unexpected model type from tea program")
	}
	// An empty result set was already reported as a friendly message.
	if lm.err != nil && !errors.Is(lm.err, tmdb.ErrNoResults) {
		return lm.err
	}
	return nil
}

// lookupResultMsg carries the fetched movie back to the TUI.
type lookupResultMsg struct {
	detail *core.MovieDetail
	err    error
}

type lookupModel struct {
	ctx     context.Context
	source  core.MovieSource
	query   string
	spinner spinner.Model
	detail  *core.MovieDetail
	err     error
	done    bool
}

func newLookupModel(ctx context.Context, source core.MovieSource, query string) lookupModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styleInfo
	return lookupModel{
		ctx:     ctx,
		source:  source,
		query:   query,
		spinner: s,
	}
}

func (m lookupModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch())
}

func (m lookupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case lookupResultMsg:
		m.detail = msg.detail
		m.err = msg.err
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m lookupModel) View() string {
	if m.done {
		switch {
		case errors.Is(m.err, tmdb.ErrNoResults):
			return styleDim.Render(noResultsText) + "\n"
		case m.err != nil:
			return styleError.Render("Error: "+m.err.Error()) + "\n"
		default:
			return renderLookupDetail(m.detail)
		}
	}
	return m.spinner.View() + styleDim.Render(" Searching...") + "\n"
}

// renderLookupDetail formats the assembled record as a printable block.
func renderLookupDetail(d *core.MovieDetail) string {
	var sb strings.Builder

	sb.WriteString(styleHeader.Render(d.Title) + "\n")
	if d.Tagline != "" {
		sb.WriteString(styleDim.Render(d.Tagline) + "\n\n")
	}

	sb.WriteString(styleLabel.Render("Release: ") + styleText.Render(d.ReleaseDate) + "\n")
	sb.WriteString(styleLabel.Render("Rating:  ") + styleText.Render(d.Rating) + "\n")
	sb.WriteString(styleLabel.Render("Runtime: ") + styleText.Render(d.Runtime) + "\n")
	if len(d.Genres) > 0 {
		sb.WriteString(styleLabel.Render("Genres:  ") + styleText.Render(strings.Join(d.Genres, ", ")) + "\n")
	}
	if d.PosterURL != "" {
		sb.WriteString(styleLabel.Render("Poster:  ") + styleDim.Render(d.PosterURL) + "\n")
	}
	sb.WriteString("\n" + styleText.Render(d.Overview) + "\n")

	if d.Trailer != nil {
		sb.WriteString("\n" + styleLabel.Render("Trailer: ") + styleInfo.Render(d.Trailer.WatchURL()) + "\n")
	}

	if len(d.Cast) > 0 {
		sb.WriteString("\n" + styleTitle.Render("Top cast") + "\n")
		for _, c := range d.Cast {
			line := "  " + styleText.Render(c.Name)
			if c.Character != "" {
				line += styleDim.Render(" as " + c.Character)
			}
			sb.WriteString(line + "\n")
		}
	}

	if len(d.Backdrops) > 0 {
		sb.WriteString("\n" + styleTitle.Render("Stills") + "\n")
		for _, u := range d.Backdrops {
			sb.WriteString(styleDim.Render("  "+u) + "\n")
		}
	}

	if len(d.Similar) > 0 {
		sb.WriteString("\n" + styleTitle.Render("Similar") + "\n")
		for i, s := range d.Similar {
			sb.WriteString(fmt.Sprintf("  %d. ", i+1) + styleText.Render(s.Title) +
				styleDim.Render(fmt.Sprintf(" (%.1f/10)", s.Rating)) + "\n")
		}
	}

	return sb.String()
}

// fetch resolves the query to a full movie record: search, then detail.
func (m lookupModel) fetch() tea.Cmd {
	return func() tea.Msg {
		summary, err := m.source.SearchMovie(m.ctx, m.query)
		if err != nil {
			return lookupResultMsg{err: err}
		}
		detail, err := m.source.MovieDetail(m.ctx, summary.ID)
		if err != nil {
			return lookupResultMsg{err: err}
		}
		return lookupResultMsg{detail: detail}
	}
}
