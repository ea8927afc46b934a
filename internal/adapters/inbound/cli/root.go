package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tuxido",
		Short:         "Validate and heal Textual TUI apps",
		Long:          "Tuxido validates agent-generated Textual applications through layered syntax, static, structural, and sandbox checks, and self-heals the issues it knows how to fix.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newFixCmd())
	cmd.AddCommand(newHealCmd())
	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newInfoCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
