package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/mobilitydb/meos-go/pkg/meos/ais"
)

var (
	aisOut      string
	aisMaxShips int
	aisGeodetic bool
)

var aisCmd = &cobra.Command{
	Use:   "ais <records.csv>",
	Short: "Assemble ship trips from AIS records",
	Long: `Read AIS records with the columns t, mmsi, latitude, longitude and sog,
build one trip per ship and print its length and time-weighted average speed.

Example:
  meosctl ais --geodetic --out trips.csv aisinput.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runAIS,
}

func init() {
	rootCmd.AddCommand(aisCmd)
	aisCmd.Flags().StringVarP(&aisOut, "out", "o", "", "write the trips as CSV to this file")
	aisCmd.Flags().IntVar(&aisMaxShips, "max-ships", 0, "fail when the input holds more ships (0 means no limit)")
	aisCmd.Flags().BoolVar(&aisGeodetic, "geodetic", false, "build geography trips so lengths are in metres")
}

func runAIS(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	records, stats, err := ais.ReadRecords(f)
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}
	if stats.Skipped > 0 {
		warn(cmd.ErrOrStderr(), "skipped %d malformed records", stats.Skipped)
	}

	trips, err := ais.Assemble(cmd.Context(), records, ais.Options{
		MaxShips: aisMaxShips,
		Geodetic: aisGeodetic,
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	defer ais.FreeAll(trips)

	out := cmd.OutOrStdout()
	if len(trips) == 0 {
		fmt.Fprintln(out, "No trips")
		return nil
	}

	table := tablewriter.NewWriter(out)
	table.Header("MMSI", "Reports", "Instants", "Start", "End", "Length", "Avg SOG")
	for _, t := range trips {
		s, err := ais.Summarize(t)
		if err != nil {
			return fmt.Errorf("mmsi %d: %w", t.MMSI, err)
		}
		if err := table.Append(
			strconv.FormatInt(s.MMSI, 10),
			strconv.Itoa(s.Reports),
			strconv.Itoa(s.Instants),
			s.Start.Format(time.DateTime),
			s.End.Format(time.DateTime),
			strconv.FormatFloat(s.Length, 'f', 3, 64),
			strconv.FormatFloat(s.AvgSOG, 'f', 2, 64),
		); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	if aisOut != "" {
		w, err := os.Create(aisOut)
		if err != nil {
			return err
		}
		if err := ais.WriteTrips(w, trips, maxDecimals()); err != nil {
			_ = w.Close()
			return err
		}
		if err := w.Close(); err != nil {
			return err
		}
		success(cmd.ErrOrStderr(), "wrote %d trips to %s", len(trips), aisOut)
	}
	return nil
}
