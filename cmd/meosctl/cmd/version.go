package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mobilitydb/meos-go/pkg/meos"
)

var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Print wrapper and native library versions",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{nativeOptional: "true"},
	RunE:        runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	label(out, "wrapper", meos.WrapperVersion())
	if !meos.NativeBuilt() {
		label(out, "native", meos.NativePinned+" (not linked)")
		return nil
	}
	label(out, "native", meos.NativeVersion())
	label(out, "timezone", lib.Config().Timezone)
	return nil
}
