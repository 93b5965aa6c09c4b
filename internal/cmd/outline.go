package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rmoran/noticeguide/internal/classify"
	"github.com/rmoran/noticeguide/internal/display"
	"github.com/rmoran/noticeguide/internal/guidance"
	"github.com/rmoran/noticeguide/internal/record"
)

// NewOutlineCommand creates and returns the outline subcommand
func NewOutlineCommand() *cobra.Command {
	var docType string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "outline <record.json>",
		Short: "Generate a response-letter outline for a document",
		Long: `Produce the skeleton of a written response for the document's family:
a subject line plus ordered section prompts. Known facts such as the
case number are filled in; unknown ones keep placeholder tokens.`,
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

			fields := record.Normalize(rec)
			family := classify.ClassifyFamily(docType)
			outline := guidance.BuildOutline(family, fields, opts.lang)

			if jsonOutput || opts.cfg.JSONOutput {
				return printJSON(cmd, outline)
			}
			display.RenderOutline(cmd.OutOrStdout(), outline, stdoutIsTerminal())
			return nil
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&docType, "type", "", "document-type label from case state")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "emit JSON instead of rendered text")

	return cmd
}
