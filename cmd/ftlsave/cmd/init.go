/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ssargent/ftlsave/pkg/config"
)

func newInitCmd(a *app) *cobra.Command {
	var (
		savesDir string
		force    bool
	)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with a generated API key",
		Long: `Create the ftlsave config file and generate an API key for the
inspection server.

Examples:
  ftlsave init --saves-dir="$HOME/Documents/My Games/FasterThanLight"
  ftlsave init --config=./ftlsave.yaml --force`,
		Args: cobra.NoArgs,
		// the config may not exist yet
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			if config.ConfigExists(a.configPath) && !force {
				cmd.Printf("Config already exists at %s. Use --force to overwrite.\n", a.configPath)
				return nil
			}

			cfg, err := config.BootstrapConfig(a.configPath, savesDir)
			if err != nil {
				return err
			}
			cmd.Printf("Config written to %s\n", a.configPath)
			cmd.Printf("Saves directory: %s\n", cfg.SavesDir)
			cmd.Printf("API key: %s\n", cfg.Server.APIKey[:8]+"...")
			return nil
		},
	}

	initCmd.Flags().StringVar(&savesDir, "saves-dir", "", "directory the game writes saves to")
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config")
	return initCmd
}
