package validate

import (
	"fmt"
	"log/slog"

	"github.com/shopfront/sfp/internal/types"
	"github.com/shopfront/sfp/internal/utils"
	"github.com/spf13/cobra"
)

var specFile string

func NewValidateCmd() *cobra.Command {
	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a deployment spec without generating anything",
		Long: `Validate a deployment spec without generating anything

Checks the spec against every module's variable contract and reports all
violations at once.

All flags can be provided via environment variables (uppercase, with underscores):

FLAG                     | ENV_VAR
-------------------------|---------------------------
--spec                   | SPEC=deployment-spec.yaml
`,
		SilenceErrors: true,
		PreRunE:       preRunValidate,
		RunE:          runValidate,
	}

	validateCmd.Flags().StringVar(&specFile, "spec", "", "Path to the deployment spec YAML file")

	validateCmd.MarkFlagRequired("spec")

	return validateCmd
}

func preRunValidate(cmd *cobra.Command, args []string) error {
	if err := utils.BindEnvToFlags(cmd); err != nil {
		return err
	}

	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	spec, errs := types.NewDeploymentSpecFromFile(specFile)
	if len(errs) > 0 {
		for _, err := range errs {
			slog.Error("❌ spec violation", "error", err)
		}
		return fmt.Errorf("deployment spec %s failed validation with %d violation(s)", specFile, len(errs))
	}

	slog.Info("✅ deployment spec is valid", "file", specFile, "environment", spec.Environment)
	return nil
}
