/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ssargent/ftlsave/pkg/blueprint"
	"github.com/ssargent/ftlsave/pkg/config"
	"github.com/ssargent/ftlsave/pkg/logging"
	"github.com/ssargent/ftlsave/pkg/savefile"
	"github.com/ssargent/ftlsave/pkg/storage"
)

// app carries the state shared by every subcommand of one invocation
type app struct {
	configPath string
	blueprints string
	logLevel   string
	backupDir  string

	cfg     *config.Config
	logger  *slog.Logger
	catalog *blueprint.Catalog
	backups *storage.BackupStore
}

// load resolves the configuration and logger. A missing config file is not
// an error; defaults apply.
func (a *app) load() error {
	var (
		cfg *config.Config
		err error
	)
	switch {
	case strings.EqualFold(filepath.Ext(a.configPath), ".ini"):
		cfg, err = config.LoadINI(a.configPath)
	case config.ConfigExists(a.configPath):
		cfg, err = config.LoadConfig(a.configPath)
	default:
		cfg = config.DefaultConfig()
	}
	if err != nil {
		return err
	}

	if a.blueprints != "" {
		cfg.Blueprints = a.blueprints
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if a.backupDir != "" {
		cfg.BackupDir = a.backupDir
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}

func (a *app) lookup() (*blueprint.Catalog, error) {
	if a.catalog != nil {
		return a.catalog, nil
	}
	catalog, err := blueprint.LoadCatalog(a.cfg.Blueprints)
	if err != nil {
		return nil, fmt.Errorf("failed to load blueprints: %w", err)
	}
	ships, layouts, drones := catalog.Stats()
	a.logger.Debug("blueprints loaded",
		"path", a.cfg.Blueprints,
		"ships", ships,
		"layouts", layouts,
		"drones", drones,
	)
	a.catalog = catalog
	return catalog, nil
}

func (a *app) openBackups() (*storage.BackupStore, error) {
	if a.backups != nil {
		return a.backups, nil
	}
	if err := os.MkdirAll(a.cfg.BackupDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create backup dir: %w", err)
	}
	store, err := storage.NewBackupStore(a.cfg.BackupDir)
	if err != nil {
		return nil, err
	}
	a.backups = store
	return store, nil
}

// service builds a save-file service, with a backup store when withBackups
// is set
func (a *app) service(withBackups bool) (*savefile.Service, error) {
	catalog, err := a.lookup()
	if err != nil {
		return nil, err
	}
	if !withBackups {
		return savefile.NewService(catalog, nil, a.logger), nil
	}
	store, err := a.openBackups()
	if err != nil {
		return nil, err
	}
	return savefile.NewService(catalog, store, a.logger, savefile.WithBackupLimit(a.cfg.BackupKeep)), nil
}

func (a *app) close() error {
	if a.backups == nil {
		return nil
	}
	err := a.backups.Close()
	a.backups = nil
	return err
}

// newRootCmd builds the command tree. The caller must close the returned
// app once the command has run.
func newRootCmd() (*cobra.Command, *app) {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "ftlsave",
		Short: "ftlsave - FTL saved-game toolkit",
		Long: `ftlsave reads, verifies and edits FTL saved games (formats 2, 7, 8, 9
and 11), keeps backups of every file it rewrites and can serve an
inspection API or watch a save directory.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", config.GetDefaultConfigPath(), "config file (.yaml or legacy .ini)")
	rootCmd.PersistentFlags().StringVarP(&a.blueprints, "blueprints", "b", "", "blueprint catalog (overrides config)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&a.backupDir, "backup-dir", "", "backup store directory (overrides config)")

	rootCmd.AddCommand(
		newInitCmd(a),
		newDumpCmd(a),
		newVerifyCmd(a),
		newSetCmd(a),
		newBackupCmd(a),
		newServeCmd(a),
		newWatchCmd(a),
	)
	return rootCmd, a
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	rootCmd, a := newRootCmd()
	err := rootCmd.Execute()
	if cerr := a.close(); cerr != nil {
		fmt.Fprintf(os.Stderr, "Error: closing backup store: %v\n", cerr)
		os.Exit(1)
	}
	if err != nil {
		os.Exit(1)
	}
}
