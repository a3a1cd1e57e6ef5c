/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/ssargent/ftlsave/pkg/savefile"
	"github.com/ssargent/ftlsave/pkg/savegame"
	"github.com/ssargent/ftlsave/pkg/storage"
)

const (
	formatAuto  = "auto"
	formatTable = "table"
	formatJSON  = "json"
)

// resolveFormat turns "auto" into table on a terminal and json otherwise
func resolveFormat(format string, out io.Writer) (string, error) {
	switch format {
	case formatTable, formatJSON:
		return format, nil
	case formatAuto, "":
		if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			return formatTable, nil
		}
		return formatJSON, nil
	}
	return "", fmt.Errorf("unknown output format %q (want auto, table or json)", format)
}

func outputJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatList(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}

// outputSummaryTable displays a save summary
func outputSummaryTable(out io.Writer, s savegame.Summary) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "Format:\t%d\n", s.Format)
	fmt.Fprintf(w, "Difficulty:\t%s\n", s.Difficulty)
	fmt.Fprintf(w, "Ship:\t%s (%s)\n", s.ShipName, s.ShipBlueprint)
	fmt.Fprintf(w, "Sector:\t%d\n", s.Sector)
	fmt.Fprintf(w, "Hull:\t%d\n", s.Hull)
	fmt.Fprintf(w, "Fuel:\t%d\n", s.Fuel)
	fmt.Fprintf(w, "Missiles:\t%d\n", s.Missiles)
	fmt.Fprintf(w, "Drone parts:\t%d\n", s.DroneParts)
	fmt.Fprintf(w, "Scrap:\t%d\n", s.Scrap)
	fmt.Fprintf(w, "Crew:\t%s\n", formatList(s.Crew))
	fmt.Fprintf(w, "Systems:\t%s\n", formatList(s.Systems))
	fmt.Fprintf(w, "Weapons:\t%s\n", formatList(s.Weapons))
	fmt.Fprintf(w, "Drones:\t%s\n", formatList(s.Drones))
	fmt.Fprintf(w, "Augments:\t%s\n", formatList(s.Augments))
	fmt.Fprintf(w, "Cargo:\t%s\n", formatList(s.Cargo))
	fmt.Fprintf(w, "Beacons:\t%d\n", s.Beacons)
	if s.NearbyShip != "" {
		fmt.Fprintf(w, "Nearby ship:\t%s\n", s.NearbyShip)
	}
	fmt.Fprintf(w, "Projectiles:\t%d\n", s.Projectiles)
	fmt.Fprintf(w, "Flagship stage:\t%d\n", s.FlagshipStage)
	if s.MysteryBytes > 0 {
		fmt.Fprintf(w, "Mystery bytes:\t%d\n", s.MysteryBytes)
	}
	return w.Flush()
}

// outputReportTable displays round-trip results, one file per row
func outputReportTable(out io.Writer, reports []*savefile.Report) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FILE\tFORMAT\tSIZE\tMYSTERY\tRESULT")
	for _, r := range reports {
		result := "ok"
		if !r.Match {
			result = fmt.Sprintf("differs at offset %d (0x%x)", r.FirstDiff, r.FirstDiff)
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\n", r.Path, r.Format, r.Size, r.MysteryBytes, result)
	}
	return w.Flush()
}

// outputBackupsTable displays stored snapshots, oldest first
func outputBackupsTable(out io.Writer, backups []storage.Backup) error {
	if len(backups) == 0 {
		fmt.Fprintln(out, "No backups found")
		return nil
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCREATED\tSIZE")
	for _, b := range backups {
		fmt.Fprintf(w, "%s\t%s\t%d\n", b.ID, b.Created.Local().Format(time.RFC3339), b.Size)
	}
	return w.Flush()
}
