package main

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/lipgloss"

	"github.com/SheedNova/Film-App/internal/config"
	"github.com/SheedNova/Film-App/internal/metadata/tmdb"
)

// Lipgloss styles used across commands.
var (
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // red
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
	styleInfo    = lipgloss.NewStyle().Foreground(lipgloss.Color("12")) // blue
	styleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))  // gray

	styleTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true) // cyan bold
	styleText  = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))            // white
	styleLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))             // gray labels

	styleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("5")).
			MarginBottom(1)
)

// loadConfig loads and validates the configuration file.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return cfg, nil
}

// initTMDB creates the TMDB client from configuration.
func initTMDB(cfg *config.Config, logger *slog.Logger) *tmdb.Client {
	return tmdb.New(cfg.TMDb.APIKey, cfg.TMDb.Language, logger)
}
