/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ssargent/ftlsave/pkg/savefile"
)

// parseAssignment splits a name=value argument
func parseAssignment(arg string) (string, int, error) {
	name, raw, ok := strings.Cut(arg, "=")
	if !ok || name == "" {
		return "", 0, fmt.Errorf("expected name=value, got %q", arg)
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return "", 0, fmt.Errorf("invalid value for %s: %w", name, err)
	}
	return name, value, nil
}

func newSetCmd(a *app) *cobra.Command {
	setCmd := &cobra.Command{
		Use:   "set <file> <name=value>...",
		Short: "Change resource counters on the player ship",
		Long: fmt.Sprintf(`Change one or more resource counters of the player ship and write the
save back. The previous file is stored in the backup store first.

Fields: %s

Example:
  ftlsave set continue.sav scrap=999 fuel=20`, strings.Join(savefile.EditableFields(), ", ")),
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			type assignment struct {
				name  string
				value int
			}
			var assignments []assignment
			for _, arg := range args[1:] {
				name, value, err := parseAssignment(arg)
				if err != nil {
					return err
				}
				assignments = append(assignments, assignment{name, value})
			}

			svc, err := a.service(true)
			if err != nil {
				return err
			}
			state, err := svc.Load(path)
			if err != nil {
				return err
			}
			for _, as := range assignments {
				old, err := savefile.SetField(state, as.name, as.value)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d -> %d\n", as.name, old, as.value)
			}
			return svc.Save(path, state)
		},
	}
	return setCmd
}
