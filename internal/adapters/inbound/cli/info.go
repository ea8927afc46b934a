package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hbuddenberg/tuxido/internal/adapters/outbound/oracle"
	"github.com/hbuddenberg/tuxido/internal/application"
)

func newInfoCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show runtime and framework information",
		RunE: func(cmd *cobra.Command, args []string) error {
			rc := oracle.New().Discover(version)
			info := application.BuildFrameworkInfo(rc)

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "tuxido    %s\n", info.Version)
			fmt.Fprintf(out, "runtime   %s\n", info.Runtime)
			fw := "not installed"
			if info.Framework != nil {
				fw = *info.Framework
			}
			fmt.Fprintf(out, "framework %s\n", fw)
			fmt.Fprintf(out, "platform  %s\n", info.Platform)
			fmt.Fprintf(out, "widgets   %d known\n", len(info.Widgets))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
