package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hbuddenberg/tuxido/internal/adapters/outbound/tui"
	"github.com/hbuddenberg/tuxido/internal/domain"
	"github.com/hbuddenberg/tuxido/internal/domain/generate"
)

func newGenerateCmd() *cobra.Command {
	var (
		text     string
		output   string
		appName  string
		validate bool
	)

	cmd := &cobra.Command{
		Use:   "generate [layout-file]",
		Short: "Generate a Textual app from an ASCII layout",
		Long:  "Turn an ASCII mockup (boxes, [Buttons], input fields) into a runnable Textual application. Pass the layout as a file argument or inline via --text.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			layout := text
			if len(args) > 0 {
				if layout != "" {
					return fmt.Errorf("pass either a layout file or --text, not both")
				}
				src, err := readSource(cmd, args[0])
				if err != nil {
					return err
				}
				layout = src
			}
			if layout == "" {
				return fmt.Errorf("no layout given: pass a file argument or --text")
			}

			code := generate.FromASCII(layout, appName)

			if validate {
				svc, _, err := buildValidator(".")
				if err != nil {
					return err
				}
				result, err := svc.Validate(cmd.Context(), code, output, domain.DepthFast, 0)
				if err != nil {
					return fmt.Errorf("validating generated code: %w", err)
				}
				if result.Status != domain.StatusPass {
					fmt.Fprint(cmd.ErrOrStderr(), tui.RenderResult(result, "generated"))
					return fmt.Errorf("generated code failed validation")
				}
			}

			if output == "" {
				fmt.Fprint(cmd.OutOrStdout(), code)
				return nil
			}
			if err := os.WriteFile(output, []byte(code), 0644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated app written to %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "ASCII layout given inline")
	cmd.Flags().StringVar(&output, "output", "", "Write generated code to this path instead of stdout")
	cmd.Flags().StringVar(&appName, "name", "GeneratedApp", "Class name for the generated app")
	cmd.Flags().BoolVar(&validate, "validate", false, "Validate the generated code before writing")

	return cmd
}
