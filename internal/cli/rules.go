package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/texide/texide/internal/logging"
	"github.com/texide/texide/pkg/lint"
)

type rulesFlags struct {
	format string
}

// ruleInfo is the JSON-output shape for a loaded rule's manifest.
type ruleInfo struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description,omitempty"`
}

func newRulesCommand() *cobra.Command {
	flags := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List loaded rule plugins",
		Long: `Load the configured plugins and list their manifests: name,
version, and description.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRules(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")

	return cmd
}

func runRules(cmd *cobra.Command, flags *rulesFlags) error {
	ctx := cmd.Context()

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	linter, err := lint.New(ctx, cfg, workDir)
	if err != nil {
		return fmt.Errorf("initialize linter: %w", err)
	}
	defer linter.Close(ctx)

	names := linter.LoadedRuleNames()

	if flags.format == "json" {
		return outputRulesJSON(linter, names)
	}

	logger := logging.Default()
	if len(names) == 0 {
		logger.Info("no rule plugins loaded")
		return nil
	}

	for _, name := range names {
		manifest, _ := linter.Manifest(name)
		logger.Info(name,
			logging.FieldVersion, manifest.Version,
			logging.FieldDescription, manifest.Description,
		)
	}
	return nil
}

func outputRulesJSON(linter *lint.Linter, names []string) error {
	infos := make([]ruleInfo, 0, len(names))
	for _, name := range names {
		manifest, _ := linter.Manifest(name)
		infos = append(infos, ruleInfo{
			Name:        manifest.Name,
			Version:     manifest.Version,
			Description: manifest.Description,
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}
