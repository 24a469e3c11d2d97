package preview

import (
	"fmt"

	"github.com/shopfront/sfp/internal/generators/preview"
	"github.com/shopfront/sfp/internal/utils"
	"github.com/spf13/cobra"
)

var port string

func NewPreviewCmd() *cobra.Command {
	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "Serve rendered Terraform projects over HTTP",
		Long: `Serve rendered Terraform projects over HTTP

POST a deployment spec as JSON to /preview to receive the full rendered
project without writing anything to disk.

All flags can be provided via environment variables (uppercase, with underscores):

FLAG                     | ENV_VAR
-------------------------|---------------------------
--port                   | PORT=8080
`,
		SilenceErrors: true,
		PreRunE:       preRunPreview,
		RunE:          runPreview,
	}

	previewCmd.Flags().StringVar(&port, "port", "8080", "Port the preview server listens on")

	return previewCmd
}

func preRunPreview(cmd *cobra.Command, args []string) error {
	if err := utils.BindEnvToFlags(cmd); err != nil {
		return err
	}

	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	previewServer := preview.NewPreview(port)
	if err := previewServer.Run(); err != nil {
		return fmt.Errorf("failed to run preview server: %v", err)
	}

	return nil
}
