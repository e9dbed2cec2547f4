package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/forgekit/forge/internal/config"
	"github.com/forgekit/forge/internal/scaffold"
)

func CreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new project from a starter template",
		RunE:  runCreate,
	}

	config.BindCreateFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd)
	if err != nil {
		return err
	}

	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	if cfg.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	gen, err := scaffold.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("creating generator: %w", err)
	}

	outputs, err := gen.Generate()
	if err != nil {
		return fmt.Errorf("generating project: %w", err)
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	if dryRun {
		for _, out := range outputs {
			cmd.Printf("// %s\n%s\n", out.Path, out.Content)
		}
		return nil
	}

	for _, out := range outputs {
		path := filepath.Join(cfg.OutputDir, out.Path)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", path, err)
		}
		if err := os.WriteFile(path, []byte(out.Content), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		cmd.PrintErrf("Written: %s\n", path)
	}

	cmd.PrintErrf("Project %s created in %s\n", cfg.Project.ArtifactID, cfg.OutputDir)

	return nil
}
