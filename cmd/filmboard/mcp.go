package main

import (
	"github.com/spf13/cobra"

	"github.com/SheedNova/Film-App/internal/config"
	mcpserver "github.com/SheedNova/Film-App/internal/mcp"
)

// newMCPCmd returns the "mcp" subcommand.
// It starts an MCP server over stdin/stdout so MCP clients can search
// movies and manage a session favorites list through Filmboard tools.
func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Start the MCP server over stdio",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			logger := config.SetupLogger(cfg.App.LogLevel)

			deps := mcpserver.Deps{
				Source: initTMDB(cfg, logger),
			}

			srv := mcpserver.NewServer(deps, logger)
			return srv.ServeStdio(cmd.Context())
		},
	}
}
