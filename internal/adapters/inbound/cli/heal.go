package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hbuddenberg/tuxido/internal/adapters/outbound/tui"
	"github.com/hbuddenberg/tuxido/internal/application"
)

func newHealCmd() *cobra.Command {
	var (
		maxIterations int
		dryRun        bool
		jsonOutput    bool
	)

	cmd := &cobra.Command{
		Use:   "heal <file>",
		Short: "Self-heal validation issues in a Textual app file",
		Long:  "Validate the file, iteratively apply correction rules to the issues found, and re-validate. The healed source is written back unless --dry-run is set.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := args[0]
			projectPath := "."
			if file != "-" {
				projectPath = filepath.Dir(file)
			}

			validator, cfg, err := buildValidator(projectPath)
			if err != nil {
				return err
			}

			source, err := readSource(cmd, file)
			if err != nil {
				return err
			}

			if maxIterations == 0 {
				maxIterations = cfg.MaxHealIterations
			}

			svc := application.NewHealService(validator)
			outcome, err := svc.Heal(cmd.Context(), source, filepath.Base(file), maxIterations)
			if err != nil {
				return fmt.Errorf("healing failed: %w", err)
			}

			if !dryRun && file != "-" && outcome.Source != source {
				if err := os.WriteFile(file, []byte(outcome.Source), 0644); err != nil {
					return fmt.Errorf("writing %s: %w", file, err)
				}
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(outcome)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderHealing(&outcome.Report, outcome.Converged))
			if dryRun && outcome.Source != source {
				fmt.Fprintln(cmd.OutOrStdout(), "  (dry run, nothing written)")
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&maxIterations, "max-iterations", 0, "Healing iteration budget (default from config)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show healing result without writing the file")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output healing outcome as JSON")

	return cmd
}
