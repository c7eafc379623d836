package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mobilitydb/meos-go/pkg/meos"
)

var nadType string

var nadCmd = &cobra.Command{
	Use:   "nad <a> <b>",
	Short: "Print the nearest approach distance of two temporal values",
	Long: `Print the smallest distance between two temporal numbers or points over
the time they share.

Example:
  meosctl nad --type tgeompoint "[Point(1 1)@2001-01-01, Point(3 3)@2001-01-03]" "Point(2 1)@2001-01-02"`,
	Args: cobra.ExactArgs(2),
	RunE: runNad,
}

func init() {
	rootCmd.AddCommand(nadCmd)
	nadCmd.Flags().StringVarP(&nadType, "type", "t", "tfloat", "temporal type: tint, tfloat, tgeompoint or tgeogpoint")
}

func runNad(cmd *cobra.Command, args []string) error {
	var (
		d   float64
		err error
	)
	switch strings.ToLower(nadType) {
	case "tint":
		d, err = nad(meos.ParseTInt, args)
	case "tfloat":
		d, err = nad(meos.ParseTFloat, args)
	case "tgeompoint":
		d, err = nad(meos.ParseTGeomPoint, args)
	case "tgeogpoint":
		d, err = nad(meos.ParseTGeogPoint, args)
	default:
		return fmt.Errorf("nad: unsupported type %q", nadType)
	}
	if errors.Is(err, meos.ErrEmpty) {
		warn(cmd.ErrOrStderr(), "the values share no time")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), d)
	return nil
}

func nad[V meos.Metric](parse func(string) (*meos.Temporal[V], error), args []string) (float64, error) {
	a, err := parse(args[0])
	if err != nil {
		return 0, err
	}
	defer a.Free()
	b, err := parse(args[1])
	if err != nil {
		return 0, err
	}
	defer b.Free()
	return meos.NearestApproachDistance(a, b)
}
