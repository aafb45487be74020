package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

var logLevel string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "regdefgen",
	Short: "Compile YAML register definitions into C++ accessor headers",
	Long: `regdefgen reads register definition documents (namespaces, registers,
fields and enumerated values) and generates typed bit-field accessors for the
mei::registers framework. Each document names its own output file.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")
}

// newLogger builds the stderr logger for the configured level.
func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	var level slog.Level

	if err := level.UnmarshalText([]byte(strings.ToUpper(logLevel))); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})), nil
}
