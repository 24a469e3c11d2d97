package generate

import (
	"errors"
	"fmt"

	"github.com/shopfront/sfp/internal/generators/create_asset/app_infra"
	"github.com/shopfront/sfp/internal/types"
	"github.com/shopfront/sfp/internal/utils"
	"github.com/spf13/cobra"
)

var (
	specFile  string
	outputDir string
)

func NewGenerateCmd() *cobra.Command {
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the Terraform project for a deployment spec",
		Long: `Generate the Terraform project for a deployment spec

Renders the shared modules, the root composition, and the environment's
tfvars overlay into the output directory.

All flags can be provided via environment variables (uppercase, with underscores):

FLAG                     | ENV_VAR
-------------------------|---------------------------
--spec                   | SPEC=deployment-spec.yaml
--output-dir             | OUTPUT_DIR=terraform
`,
		SilenceErrors: true,
		PreRunE:       preRunGenerate,
		RunE:          runGenerate,
	}

	generateCmd.Flags().StringVar(&specFile, "spec", "", "Path to the deployment spec YAML file")
	generateCmd.Flags().StringVar(&outputDir, "output-dir", "terraform", "Directory the Terraform project is written to")

	generateCmd.MarkFlagRequired("spec")

	return generateCmd
}

func preRunGenerate(cmd *cobra.Command, args []string) error {
	if err := utils.BindEnvToFlags(cmd); err != nil {
		return err
	}

	return nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	spec, errs := types.NewDeploymentSpecFromFile(specFile)
	if len(errs) > 0 {
		return fmt.Errorf("deployment spec %s is invalid: %w", specFile, errors.Join(errs...))
	}

	appInfraAssetGenerator := app_infra.NewAppInfraAssetGenerator(app_infra.AppInfraOpts{
		Spec:      *spec,
		OutputDir: outputDir,
	})
	if err := appInfraAssetGenerator.Run(); err != nil {
		return fmt.Errorf("failed to generate infrastructure project: %v", err)
	}

	return nil
}
