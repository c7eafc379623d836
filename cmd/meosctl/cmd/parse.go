package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mobilitydb/meos-go/pkg/meos"
)

var (
	parseType      string
	parseFormat    string
	parsePrecision int
	parseBBox      bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <literal>",
	Short: "Parse a temporal value and print it in another format",
	Long: `Parse a temporal value given as WKT or MF-JSON and print it as WKT, EWKT,
MF-JSON or hex-encoded WKB.

Example:
  meosctl parse --type tfloat --format mfjson "[1@2001-01-01, 3@2001-01-03]"`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseType, "type", "t", "tfloat", "temporal type: "+strings.Join(typeNames, ", "))
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "wkt", "output format: wkt, ewkt, mfjson, hexwkb or info")
	parseCmd.Flags().IntVar(&parsePrecision, "precision", 0, "MF-JSON decimals (0 selects --max-decimals)")
	parseCmd.Flags().BoolVar(&parseBBox, "bbox", false, "include the bounding box in MF-JSON output")
}

func runParse(cmd *cobra.Command, args []string) error {
	t, err := parseTemporal(parseType, args[0])
	if err != nil {
		return err
	}
	defer t.Free()

	out := cmd.OutOrStdout()
	var s string
	switch strings.ToLower(parseFormat) {
	case "wkt":
		s, err = t.WKT(maxDecimals())
	case "ewkt":
		s, err = t.EWKT(maxDecimals())
	case "mfjson":
		s, err = t.MFJSON(meos.MFJSONOptions{WithBBox: parseBBox, Format: meos.JSONPretty, Precision: parsePrecision})
	case "hexwkb":
		s, err = t.HexWKB()
	case "info":
		return describe(cmd, t)
	default:
		return fmt.Errorf("unknown format %q", parseFormat)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(out, s)
	return nil
}

func describe(cmd *cobra.Command, t temporal) error {
	n, err := t.NumInstants()
	if err != nil {
		return err
	}
	d, err := t.Duration(true)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	label(out, "type", t.TempType())
	label(out, "subtype", t.Subtype())
	label(out, "interp", t.Interpolation())
	label(out, "instants", n)
	label(out, "duration", d)
	return nil
}
