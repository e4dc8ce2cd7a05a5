package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// log is the shared command logger. It starts as a no-op so helpers never
// panic before Initialize runs.
var log = zap.NewNop().Sugar()

var rootCmd = &cobra.Command{
	Use:   "builder-generator",
	Short: "Generate compile-time-safe fluent builders for Go structs",
	Long: `builder-generator synthesizes typestate builders: one Go type per
combination of already-set required fields, with setters moving between
them. The build method only exists on the all-fields-set type, so an
incomplete construction is a compile error instead of a runtime one.

Record definitions come from a YAML schema file or from Go structs
annotated with //builder:generate directives and builder:"..." tags.

Examples:
  builder-generator gen --schema builders.yaml --output ./generated
  builder-generator gen --package ./examples/store
  builder-generator check --schema builders.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(cmd); err != nil {
			return err
		}

		return initLogger(viper.GetBool("json-log"), viper.GetBool("verbose"))
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Config file (default: .buildergen.yaml in the working directory)")
	rootCmd.PersistentFlags().Bool("json-log", false, "Emit structured JSON logs instead of console output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(checkCmd)
}

// Execute runs the root command. Errors are logged here so main stays a
// one-liner.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		log.Errorw("command failed", "error", err)
	}

	_ = log.Sync()

	return err
}

// initConfig wires viper to the persistent flags and an optional config
// file. Precedence: flags, then BUILDERGEN_* environment, then file.
func initConfig(cmd *cobra.Command) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}

	viper.SetEnvPrefix("BUILDERGEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".buildergen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	if err := viper.ReadInConfig(); err != nil {
		// A missing default config file is fine; an explicit one is not.
		var notFound viper.ConfigFileNotFoundError
		if viper.GetString("config") != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	return nil
}

// initLogger replaces the no-op logger with a real one.
func initLogger(jsonOutput, verbose bool) error {
	var cfg zap.Config

	if jsonOutput {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.OutputPaths = []string{"stdout"}
	}

	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log = logger.Sugar()

	return nil
}
