package discover

import (
	"fmt"

	"github.com/shopfront/sfp/internal/generators/discover"
	"github.com/shopfront/sfp/internal/services/ec2"
	"github.com/shopfront/sfp/internal/types"
	"github.com/shopfront/sfp/internal/utils"
	"github.com/spf13/cobra"
)

var (
	region      string
	environment string
	outputFile  string
)

func NewDiscoverCmd() *cobra.Command {
	discoverCmd := &cobra.Command{
		Use:   "discover",
		Short: "Discover account state and write a starter deployment spec",
		Long: `Discover account state and write a starter deployment spec

Inspects the target AWS account for availability zones and the VPC CIDRs
already in use, then writes a starter spec with environment-appropriate
defaults for review.

All flags can be provided via environment variables (uppercase, with underscores):

FLAG                     | ENV_VAR
-------------------------|---------------------------
--region                 | REGION=us-east-1
--environment            | ENVIRONMENT=dev
--output                 | OUTPUT=deployment-spec.yaml
`,
		SilenceErrors: true,
		PreRunE:       preRunDiscover,
		RunE:          runDiscover,
	}

	discoverCmd.Flags().StringVar(&region, "region", "", "The AWS region to target")
	discoverCmd.Flags().StringVar(&environment, "environment", "", fmt.Sprintf("The environment overlay to seed, one of %v", types.AllEnvironmentNames()))
	discoverCmd.Flags().StringVar(&outputFile, "output", "deployment-spec.yaml", "Path the starter spec is written to")

	discoverCmd.MarkFlagRequired("region")
	discoverCmd.MarkFlagRequired("environment")

	return discoverCmd
}

func preRunDiscover(cmd *cobra.Command, args []string) error {
	if err := utils.BindEnvToFlags(cmd); err != nil {
		return err
	}

	return nil
}

func runDiscover(cmd *cobra.Command, args []string) error {
	environmentName, err := types.ToEnvironmentName(environment)
	if err != nil {
		return err
	}

	ec2Service, err := ec2.NewEC2Service(region)
	if err != nil {
		return fmt.Errorf("failed to create EC2 service: %v", err)
	}

	discoverer := discover.NewDiscoverer(discover.DiscoverOpts{
		Region:      region,
		Environment: environmentName,
		OutputFile:  outputFile,
		EC2Service:  ec2Service,
	})
	if err := discoverer.Run(); err != nil {
		return fmt.Errorf("failed to discover account state: %v", err)
	}

	return nil
}
