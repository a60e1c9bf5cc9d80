package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/bmpkit/cmd/bmpctl/logger"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	jsonOut    bool
	strict     bool
	logDir     string
	configFile string
)

var rootCmd = &cobra.Command{
	Use:   "bmpctl",
	Short: "Inspect bitmap file headers and pack binary integers",
	Long: `bmpctl decodes the fixed 30-byte header prefix of bitmap (BMP) files
and converts between integers and byte sequences using compact layout
strings such as "<ccIIIIIIHH".

Settings can also come from BMPCTL_* environment variables or a YAML file
passed with --config.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		BoolVar(&strict, "strict", false, "Reject signatures other than BM, BA, CI, CP, IC and PT")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "Write JSON logs to a dated file in this directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to a YAML config file")
}

// setup resolves configuration and starts logging before any subcommand runs.
func setup(cmd *cobra.Command, _ []string) error {
	if err := loadConfig(cmd); err != nil {
		return err
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	if err := logger.Init(logger.Options{
		Enabled: verbose || logDir != "",
		LogDir:  logDir,
		Level:   level,
	}); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	logger.L.Debug("configuration resolved",
		"command", cmd.Name(), "strict", strict, "json", jsonOut, "config", configFile)
	return nil
}

func execute() {
	err := rootCmd.Execute()
	_ = logger.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
