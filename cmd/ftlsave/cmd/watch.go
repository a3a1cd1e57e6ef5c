/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ssargent/ftlsave/pkg/watch"
)

func newWatchCmd(a *app) *cobra.Command {
	var (
		dir     string
		noStore bool
	)

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Follow the save directory and back up every save",
		Long: `Watch the save directory for writes to .sav files. Each new save is
decoded, summarised in the log and stored in the backup store.

Examples:
  ftlsave watch
  ftlsave watch --dir "$HOME/Documents/My Games/FasterThanLight"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" {
				dir = a.cfg.SavesDir
			}
			svc, err := a.service(!noStore)
			if err != nil {
				return err
			}

			w := watch.New(dir, svc, a.cfg.Watch.Debounce, a.logger)
			if err := w.Start(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			for {
				select {
				case <-ctx.Done():
					return w.Stop()
				case r, ok := <-w.Results():
					if !ok {
						return nil
					}
					if r.Err != nil {
						cmd.PrintErrf("%s: %v\n", r.Path, r.Err)
						continue
					}
					cmd.Printf("%s: %s, sector %d, hull %d, scrap %d\n",
						r.Path, r.Summary.ShipName, r.Summary.Sector, r.Summary.Hull, r.Summary.Scrap)
				}
			}
		},
	}

	watchCmd.Flags().StringVar(&dir, "dir", "", "save directory (overrides config)")
	watchCmd.Flags().BoolVar(&noStore, "no-backup", false, "do not store backups")
	return watchCmd
}
