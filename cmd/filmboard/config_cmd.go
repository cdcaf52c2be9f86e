package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SheedNova/Film-App/internal/config"
)

// newConfigCmd returns the "config" subcommand group for configuration management.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
	}

	cmd.AddCommand(newConfigValidateCmd(), newConfigInitCmd())
	return cmd
}

// newConfigValidateCmd returns the "config validate" subcommand that checks config file validity.
func newConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration file",
		RunE: func(_ *cobra.Command, _ []string) error {
			_, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			fmt.Println(styleSuccess.Render("✓ Configuration is valid"))
			return nil
		},
	}
}

// newConfigInitCmd returns the "config init" subcommand that writes a starter config.
func newConfigInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a commented starter configuration file",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := config.WriteStarter(configPath, force); err != nil {
				return err
			}
			fmt.Println(styleSuccess.Render("✓ Wrote " + configPath))
			fmt.Println(styleDim.Render("Fill in tmdb.api_key before running filmboard."))
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}
