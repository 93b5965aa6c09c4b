package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rmoran/noticeguide/internal/display"
	"github.com/rmoran/noticeguide/internal/timeline"
)

// NewRemindersCommand creates and returns the reminders subcommand
func NewRemindersCommand() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "reminders <record.json>",
		Short: "List the document's scheduled reminders",
		Long: `Extract the reminder entries from an analysis record. Entries without
a valid reminder date are dropped.`,
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

			reminders := timeline.Reminders(rec)

			if jsonOutput || opts.cfg.JSONOutput {
				return printJSON(cmd, reminders)
			}
			display.RenderReminders(cmd.OutOrStdout(), reminders)
			return nil
		},
		SilenceUsage: true,
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "emit JSON instead of rendered text")

	return cmd
}
