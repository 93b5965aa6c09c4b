package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/rmoran/noticeguide/internal/config"
	"github.com/rmoran/noticeguide/internal/guidance"
	"github.com/rmoran/noticeguide/internal/logger"
	"github.com/rmoran/noticeguide/internal/record"
)

// commandOptions is the resolved per-invocation setup shared by all
// subcommands: effective config, language, and logger.
type commandOptions struct {
	cfg  *config.Config
	lang guidance.Language
	log  *logger.ConsoleLogger
}

// resolveOptions merges the persistent flags with the config file. Flags win
// over the file, which wins over defaults.
func resolveOptions(cmd *cobra.Command) (*commandOptions, error) {
	configPath, _ := cmd.Flags().GetString("config")
	langFlag, _ := cmd.Flags().GetString("lang")
	logLevel, _ := cmd.Flags().GetString("log-level")

	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
	} else {
		cfg, err = config.LoadConfigFromDir(".")
	}
	if err != nil {
		return nil, err
	}

	lang := guidance.ParseLanguage(cfg.Language)
	if langFlag != "" {
		lang = guidance.ParseLanguage(langFlag)
	}

	if logLevel == "" {
		logLevel = cfg.LogLevel
	}

	return &commandOptions{
		cfg:  cfg,
		lang: lang,
		log:  logger.NewConsoleLogger(os.Stderr, logLevel),
	}, nil
}

// loadRecord reads an analysis-record JSON file. The record's shape is not
// validated here: the engine tolerates any JSON object, so only unreadable
// files and non-object top levels are errors.
func loadRecord(path string) (record.AnalysisRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read record file: %w", err)
	}

	var rec record.AnalysisRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to parse record file: %w", err)
	}
	return rec, nil
}

// stdoutIsTerminal reports whether stdout is an interactive terminal,
// enabling colored rendering.
func stdoutIsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd())
}

// printJSON writes v as indented JSON to the command's output.
func printJSON(cmd *cobra.Command, v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
