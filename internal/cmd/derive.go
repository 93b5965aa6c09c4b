package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rmoran/noticeguide/internal/classify"
	"github.com/rmoran/noticeguide/internal/display"
	"github.com/rmoran/noticeguide/internal/guidance"
)

// NewDeriveCommand creates and returns the derive subcommand
func NewDeriveCommand() *cobra.Command {
	var docType string
	var deadline string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "derive <record.json>",
		Short: "Derive the action instruction for a document",
		Long: `Run the full derivation pipeline on an analysis record: classify the
document family, compute response routing signals and the required-action
plan, and produce the localized action instruction.

The document-type label and response deadline normally come from the
case's persisted state; pass them with --type and --deadline.`,
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

			family := classify.ClassifyFamily(docType)
			opts.log.LogDebug(fmt.Sprintf("classified %q as family %s", docType, family))

			instructions := guidance.BuildInstructions(rec, docType, deadline, opts.lang, time.Now())

			if jsonOutput || opts.cfg.JSONOutput {
				return printJSON(cmd, instructions)
			}
			for _, inst := range instructions {
				display.RenderInstruction(cmd.OutOrStdout(), inst, stdoutIsTerminal())
			}
			return nil
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&docType, "type", "", "document-type label from case state")
	cmd.Flags().StringVar(&deadline, "deadline", "", "response deadline as an ISO date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "emit JSON instead of rendered text")

	return cmd
}
