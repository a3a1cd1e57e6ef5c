/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ssargent/ftlsave/pkg/savegame"
)

func newDumpCmd(a *app) *cobra.Command {
	var format string

	dumpCmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Print a summary of a save file",
		Long: `Decode a save file and print its ship, resources and map state.

Examples:
  ftlsave dump continue.sav
  ftlsave dump continue.sav --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			format, err := resolveFormat(format, out)
			if err != nil {
				return err
			}
			svc, err := a.service(false)
			if err != nil {
				return err
			}
			state, err := svc.Load(args[0])
			if err != nil {
				return err
			}

			summary := savegame.Summarize(state)
			if format == formatJSON {
				return outputJSON(out, summary)
			}
			return outputSummaryTable(out, summary)
		},
	}

	dumpCmd.Flags().StringVarP(&format, "format", "o", formatAuto, "output format: auto, table or json")
	return dumpCmd
}
