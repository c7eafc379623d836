package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mobilitydb/meos-go/pkg/meos"
	"github.com/mobilitydb/meos-go/pkg/meos/logging"
)

// nativeOptional marks commands that also run when the binary does not
// link the native library.
const nativeOptional = "meosctl/native-optional"

var (
	cfgFile string
	noColor bool
	verbose bool

	lib    *meos.Library
	logger logging.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "meosctl",
	Short: "Inspect and convert MEOS temporal values",
	Long: `meosctl parses, converts and measures temporal values with the MEOS library.

Settings are read from the config file, then MEOS_* environment variables,
then flags.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: openLibrary,
}

// Execute adds all child commands to the root command, runs it and
// finalizes the native library.
func Execute() error {
	err := rootCmd.Execute()
	if cerr := closeLibrary(); err == nil {
		err = cerr
	}
	return err
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.meosctl/config.yaml)")
	flags.String("timezone", meos.DefaultTimezone, "session timezone used to read and print timestamps")
	flags.Int("max-decimals", 0, "decimals in text output (0 selects the library default)")
	flags.BoolVar(&noColor, "no-color", false, "disable colored output")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log native errors and lifecycle events")

	_ = viper.BindPFlag("timezone", flags.Lookup("timezone"))
	_ = viper.BindPFlag("max_decimals", flags.Lookup("max-decimals"))
}

// initConfig reads in the config file and MEOS_* environment variables.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".meosctl"))
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("MEOS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "warning: reading config: %v\n", err)
		}
	}

	color.NoColor = color.NoColor || noColor
}

func newLogger() logging.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return logging.New(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// openLibrary initializes the native library once per process. It stays
// open across commands until Execute returns.
func openLibrary(cmd *cobra.Command, _ []string) error {
	logger = newLogger()
	if lib != nil {
		return nil
	}
	cfg := meos.Config{
		Timezone:    viper.GetString("timezone"),
		MaxDecimals: viper.GetInt("max_decimals"),
		Logger:      logger,
	}
	var err error
	if lib, err = meos.Open(cfg); err != nil {
		if errors.Is(err, meos.ErrNotBuilt) && cmd.Annotations[nativeOptional] != "" {
			return nil
		}
		return fmt.Errorf("open meos: %w", err)
	}
	return nil
}

func closeLibrary() error {
	if lib == nil {
		return nil
	}
	err := lib.Close()
	lib = nil
	return err
}

// maxDecimals returns the precision text output uses.
func maxDecimals() int {
	if lib != nil {
		return lib.Config().MaxDecimals
	}
	return viper.GetInt("max_decimals")
}
