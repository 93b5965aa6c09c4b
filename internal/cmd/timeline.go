package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rmoran/noticeguide/internal/display"
	"github.com/rmoran/noticeguide/internal/timeline"
)

// NewTimelineCommand creates and returns the timeline subcommand
func NewTimelineCommand() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "timeline <record.json>",
		Short: "List the document's deadline signals in date order",
		Long: `Extract the deadline signals from an analysis record, validate their
dates, and print them sorted: dated entries first in ascending order,
undated entries last.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolveOptions(cmd)
			if err != nil {
				return err
			}

			rec, err := loadRecord(args[0])
			if err != nil {
				return err
			}

			rows := timeline.Derive(rec, time.Now())
			opts.log.LogDebug(fmt.Sprintf("derived %d timeline rows", len(rows)))

			if jsonOutput || opts.cfg.JSONOutput {
				return printJSON(cmd, rows)
			}
			display.RenderTimeline(cmd.OutOrStdout(), rows, stdoutIsTerminal())
			return nil
		},
		SilenceUsage: true,
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "emit JSON instead of rendered text")

	return cmd
}
