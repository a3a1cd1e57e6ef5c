/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/segmentio/ksuid"
	"github.com/spf13/cobra"
)

func newBackupCmd(a *app) *cobra.Command {
	backupCmd := &cobra.Command{
		Use:   "backup",
		Short: "Manage save file backups",
	}

	var format string
	listCmd := &cobra.Command{
		Use:   "list <file>",
		Short: "List the backups of a save file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			format, err := resolveFormat(format, out)
			if err != nil {
				return err
			}
			svc, err := a.service(true)
			if err != nil {
				return err
			}
			backups, err := svc.Backups(args[0])
			if err != nil {
				return err
			}
			if format == formatJSON {
				return outputJSON(out, backups)
			}
			return outputBackupsTable(out, backups)
		},
	}
	listCmd.Flags().StringVarP(&format, "format", "o", formatAuto, "output format: auto, table or json")

	createCmd := &cobra.Command{
		Use:   "create <file>",
		Short: "Store a backup of a save file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service(true)
			if err != nil {
				return err
			}
			id, err := svc.Snapshot(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id.String())
			return nil
		},
	}

	restoreCmd := &cobra.Command{
		Use:   "restore <file> <id>",
		Short: "Replace a save file with one of its backups",
		Long: `Replace a save file with a stored backup. The file being replaced is
itself backed up first, so a restore can be undone.

Example:
  ftlsave backup restore continue.sav 2fTt4l0hL3Ck1DQe8gB5qVxR9Zs`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := ksuid.Parse(args[1])
			if err != nil {
				return fmt.Errorf("invalid backup id %q: %w", args[1], err)
			}
			svc, err := a.service(true)
			if err != nil {
				return err
			}
			if err := svc.Restore(args[0], id); err != nil {
				return err
			}
			cmd.Printf("Restored %s from %s\n", args[0], id)
			return nil
		},
	}

	var keep int
	pruneCmd := &cobra.Command{
		Use:   "prune <file>",
		Short: "Delete all but the newest backups of a save file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("keep") {
				keep = a.cfg.BackupKeep
			}
			if keep < 0 {
				return fmt.Errorf("invalid --keep %d", keep)
			}
			svc, err := a.service(true)
			if err != nil {
				return err
			}
			removed, err := svc.Prune(args[0], keep)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d backup(s) of %s\n", removed, args[0])
			return nil
		},
	}
	pruneCmd.Flags().IntVar(&keep, "keep", 0, "backups to keep (default from config backup_keep)")

	backupCmd.AddCommand(listCmd, createCmd, restoreCmd, pruneCmd)
	return backupCmd
}
