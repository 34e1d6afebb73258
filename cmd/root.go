// Package cmd provides CLI commands for bibparse.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func setupLogger() {
	viper.SetEnvPrefix("bibparse")
	viper.SetDefault("log_level", "INFO")
	if err := viper.BindEnv("log_level"); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	var level slog.Level
	switch strings.ToUpper(viper.GetString("log_level")) {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN", "WARNING":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	logger := slog.New(handler)

	slog.SetDefault(logger)
}

var rootCmd = &cobra.Command{
	Use:   "bibparse",
	Short: "Parse bibliographic citation files into a common record model",
	Long: `Bibparse reads citation exports in RIS, PubMed/MEDLINE, EndNote XML, and
CSV form and normalizes them into one canonical citation record.

Examples:
  bibparse parse -i refs.ris -o refs.json
  bibparse parse --format csv --delimiter ';' -i export.csv
  cat pubmed.nbib | bibparse parse
  bibparse detect -i mystery.txt
  bibparse check -i refs.ris`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	setupLogger()
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(formatsCmd)
	rootCmd.AddCommand(profilesCmd)
}
