package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hbuddenberg/tuxido/internal/adapters/outbound/config"
	"github.com/hbuddenberg/tuxido/internal/adapters/outbound/oracle"
	"github.com/hbuddenberg/tuxido/internal/adapters/outbound/parser"
	"github.com/hbuddenberg/tuxido/internal/adapters/outbound/sandbox"
	"github.com/hbuddenberg/tuxido/internal/application"
	"github.com/hbuddenberg/tuxido/internal/domain"
)

// readSource reads the file argument, or stdin when the argument is "-".
func readSource(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// buildValidator assembles the pipeline service with project config and
// discovered runtime context.
func buildValidator(projectPath string) (*application.ValidateService, domain.ProjectConfig, error) {
	cfg, err := config.New().Load(projectPath)
	if err != nil {
		return nil, domain.ProjectConfig{}, fmt.Errorf("loading config: %w", err)
	}

	rc := oracle.New().Discover(version)
	svc := application.NewValidateService(parser.New(), sandbox.New(), rc, cfg.ForbiddenImports)
	return svc, cfg, nil
}
