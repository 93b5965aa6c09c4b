package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for noticeguide
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "noticeguide",
		Short: "Derive response guidance from a legal-notice analysis record",
		Long: `Noticeguide turns the analysis record extracted from a legal notice
into actionable guidance: a classified document family, a localized
action plan, a response-letter outline, and a sorted deadline timeline.

The analysis record is a JSON file produced by the upstream document
extraction service. Noticeguide never contacts a network or database;
everything is derived locally from the record you pass in.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("config", "", "path to a noticeguide config file")
	cmd.PersistentFlags().String("lang", "", "output language: en or es (overrides config)")
	cmd.PersistentFlags().String("log-level", "", "log verbosity: trace, debug, info, warn, error")

	// Add subcommands
	cmd.AddCommand(NewDeriveCommand())
	cmd.AddCommand(NewTimelineCommand())
	cmd.AddCommand(NewOutlineCommand())
	cmd.AddCommand(NewRemindersCommand())

	return cmd
}
