// Package root contains the root command for the application
package root

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Andrew-0807/ExcelProcessor/internal/config"
	"github.com/Andrew-0807/ExcelProcessor/internal/logging"
	"github.com/Andrew-0807/ExcelProcessor/internal/rawtable"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration
	Cfg *config.Config

	// SharedFlags holds the common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "borderou",
		Short: "A CLI tool to clean Borderou POS exports and build accounting import files.",
		Long: `borderou is a CLI tool that processes Borderou POS register exports.
It locates the financial columns of a raw export, normalizes the rows,
and expands them into per-VAT-rate accounting import files.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to borderou!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv(Log)

			cfg, err := config.InitializeConfig()
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			Cfg = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)

			delim := []rune(cfg.CSV.Delimiter)[0]
			if delim != ',' {
				Log.WithField("delimiter", cfg.CSV.Delimiter).Debug("Setting CSV delimiter from configuration")
			}
			rawtable.SetDelimiter(delim)
		},
	}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file (or directory for pipeline)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (or directory for pipeline)")
}

// GetLogger returns the shared logger wrapped in the Logger interface used
// by the internal packages.
func GetLogger() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}
