package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hbuddenberg/tuxido/internal/adapters/outbound/parser"
	"github.com/hbuddenberg/tuxido/internal/adapters/outbound/tui"
	"github.com/hbuddenberg/tuxido/internal/domain/fix"
)

func newFixCmd() *cobra.Command {
	var (
		dryRun     bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "fix <file>",
		Short: "Apply deterministic fixes to a Textual app file",
		Long:  "Remove unused imports and add missing widget IDs. Fixes are written back to the file unless --dry-run is set.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := args[0]

			source, err := readSource(cmd, file)
			if err != nil {
				return err
			}

			fixer := fix.New(parser.New())
			fixed, summary := fixer.FixAll(source)

			if !dryRun && file != "-" && fixed != source {
				if err := os.WriteFile(file, []byte(fixed), 0644); err != nil {
					return fmt.Errorf("writing %s: %w", file, err)
				}
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(summary)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderFixes(&summary))
			if dryRun && summary.TotalFixes > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "  (dry run, nothing written)")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show fixes without writing the file")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output fix summary as JSON")

	return cmd
}
