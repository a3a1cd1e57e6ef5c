/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ssargent/ftlsave/pkg/savefile"
)

func newVerifyCmd(a *app) *cobra.Command {
	var format string

	verifyCmd := &cobra.Command{
		Use:   "verify <file>...",
		Short: "Check that save files survive a decode/encode round trip",
		Long: `Decode each file, encode it again and compare the bytes. Trailing
bytes the decoder could not interpret are reported but not compared.

The command fails if any file does not decode or does not round-trip.

Example:
  ftlsave verify continue.sav continue.sav.bak`,
		Args: cobra.MinimumNArgs(1),
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

			var reports []*savefile.Report
			failed := 0
			for _, path := range args {
				report, err := svc.Verify(path)
				if err != nil {
					a.logger.Error("verify failed", "path", path, "error", err)
					failed++
					continue
				}
				if !report.Match {
					failed++
				}
				reports = append(reports, report)
			}

			if format == formatJSON {
				err = outputJSON(out, reports)
			} else {
				err = outputReportTable(out, reports)
			}
			if err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed verification", failed, len(args))
			}
			return nil
		},
	}

	verifyCmd.Flags().StringVarP(&format, "format", "o", formatAuto, "output format: auto, table or json")
	return verifyCmd
}
