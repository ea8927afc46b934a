package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/hbuddenberg/tuxido/internal/adapters/outbound/gitinfo"
	"github.com/hbuddenberg/tuxido/internal/adapters/outbound/history"
	"github.com/hbuddenberg/tuxido/internal/adapters/outbound/report"
	"github.com/hbuddenberg/tuxido/internal/adapters/outbound/tui"
	"github.com/hbuddenberg/tuxido/internal/domain"
)

func newCheckCmd() *cobra.Command {
	var (
		depth       string
		timeoutSecs int
		jsonOutput  bool
		reportPath  string
		showHistory bool
	)

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a Textual app file",
		Long:  "Run the validation pipeline over a Python file. Use '-' to read from stdin. Fast depth runs syntax and static analysis; full depth adds structural and sandboxed checks.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := args[0]
			projectPath := "."
			if file != "-" {
				projectPath = filepath.Dir(file)
			}

			svc, cfg, err := buildValidator(projectPath)
			if err != nil {
				return err
			}

			if showHistory {
				entries, err := history.New().Load(projectPath)
				if err != nil {
					return fmt.Errorf("loading history: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
				return nil
			}

			source, err := readSource(cmd, file)
			if err != nil {
				return err
			}

			if depth == "" {
				depth = cfg.Depth
			}
			timeout := time.Duration(timeoutSecs) * time.Second
			if timeoutSecs == 0 {
				timeout = time.Duration(cfg.SandboxTimeoutSeconds) * time.Second
			}

			result, err := svc.Validate(cmd.Context(), source, filepath.Base(file), depth, timeout)
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}

			saveRun(projectPath, file, result)

			if reportPath != "" {
				if err := writeReport(result, file, reportPath); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", reportPath)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderResult(result, file))

			if result.Status == domain.StatusFail {
				return fmt.Errorf("validation failed with %d errors", result.Summary.Errors)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&depth, "depth", "", "Validation depth: fast or full (default from config)")
	cmd.Flags().IntVar(&timeoutSecs, "timeout", 0, "Sandbox timeout in seconds")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output result as JSON")
	cmd.Flags().StringVar(&reportPath, "report", "", "Write an HTML or Markdown report to this path")
	cmd.Flags().BoolVar(&showHistory, "history", false, "Show validation history")

	return cmd
}

// saveRun records the run in project history, stamped with the current
// commit when the project is a git repository. Best-effort.
func saveRun(projectPath, file string, result *domain.ValidationResult) {
	entry := domain.RunEntry{
		ID:        uuid.NewString(),
		File:      file,
		Status:    result.Status,
		Summary:   result.Summary,
		Timestamp: time.Now(),
	}

	if hash, ok := gitinfo.New().HeadCommit(projectPath); ok {
		entry.CommitHash = hash
	}

	_ = history.New().Save(projectPath, entry)
}

func writeReport(result *domain.ValidationResult, file, path string) error {
	var content string
	switch {
	case strings.HasSuffix(path, ".html"):
		html, err := report.HTML(result, file)
		if err != nil {
			return err
		}
		content = html
	case strings.HasSuffix(path, ".md"):
		content = report.Markdown(result, file)
	default:
		return fmt.Errorf("report path must end in .html or .md, got %s", path)
	}
	return report.Save(content, path)
}
