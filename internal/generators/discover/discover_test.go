package discover

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/shopfront/sfp/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEC2 struct {
	vpcCidrs []string
	zones    []string
}

func (f *fakeEC2) DescribeVpcs(ctx context.Context) (*ec2.DescribeVpcsOutput, error) {
	vpcs := []ec2types.Vpc{}
	for _, cidr := range f.vpcCidrs {
		vpcs = append(vpcs, ec2types.Vpc{CidrBlock: aws.String(cidr)})
	}
	return &ec2.DescribeVpcsOutput{Vpcs: vpcs}, nil
}

func (f *fakeEC2) DescribeAvailabilityZones(ctx context.Context) (*ec2.DescribeAvailabilityZonesOutput, error) {
	zones := []ec2types.AvailabilityZone{}
	for _, zone := range f.zones {
		zones = append(zones, ec2types.AvailabilityZone{ZoneName: aws.String(zone)})
	}
	return &ec2.DescribeAvailabilityZonesOutput{AvailabilityZones: zones}, nil
}

func TestChooseVpcCidr(t *testing.T) {
	tests := []struct {
		name           string
		existingCidrs  []string
		expectedOutput string
	}{
		{
			name:           "empty account takes the first block",
			existingCidrs:  []string{},
			expectedOutput: "10.0.0.0/16",
		},
		{
			name:           "occupied blocks are skipped",
			existingCidrs:  []string{"10.0.0.0/16", "10.1.0.0/16"},
			expectedOutput: "10.2.0.0/16",
		},
		{
			name:           "a wide CIDR blocks its whole range",
			existingCidrs:  []string{"10.0.0.0/8"},
			expectedOutput: "",
		},
		{
			name:           "unparseable CIDRs are ignored",
			existingCidrs:  []string{"not-a-cidr"},
			expectedOutput: "10.0.0.0/16",
		},
		{
			name:           "non-10.x ranges do not interfere",
			existingCidrs:  []string{"172.31.0.0/16", "192.168.0.0/24"},
			expectedOutput: "10.0.0.0/16",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := chooseVpcCidr(tt.existingCidrs)
			if tt.expectedOutput == "" {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedOutput, result)
		})
	}
}

func TestSubnetCidrs(t *testing.T) {
	assert.Equal(t, []string{"10.2.0.0/24", "10.2.1.0/24"}, subnetCidrs("10.2.0.0/16", 2, 0))
	assert.Equal(t, []string{"10.2.10.0/24", "10.2.11.0/24", "10.2.12.0/24"}, subnetCidrs("10.2.0.0/16", 3, 10))
}

func TestDiscovererRun(t *testing.T) {
	t.Run("dev spec gets two zones and relaxed defaults", func(t *testing.T) {
		outputFile := filepath.Join(t.TempDir(), "spec.yaml")

		discoverer := NewDiscoverer(DiscoverOpts{
			Region:      "eu-west-2",
			Environment: types.EnvironmentDev,
			OutputFile:  outputFile,
			EC2Service: &fakeEC2{
				vpcCidrs: []string{"10.0.0.0/16"},
				zones:    []string{"eu-west-2c", "eu-west-2a", "eu-west-2b"},
			},
		})

		require.NoError(t, discoverer.Run())

		content, err := os.ReadFile(outputFile)
		require.NoError(t, err)
		spec := string(content)

		assert.Contains(t, spec, "environment: dev")
		assert.Contains(t, spec, "vpc_cidr: 10.1.0.0/16")
		assert.Contains(t, spec, "- eu-west-2a")
		assert.Contains(t, spec, "- eu-west-2b")
		assert.NotContains(t, spec, "- eu-west-2c")
		assert.Contains(t, spec, "enable_nat_gateway: false")
		assert.Contains(t, spec, "password: REPLACE_ME")
		assert.Contains(t, spec, "backup_retention_days: 7")
	})

	t.Run("prod spec gets three zones and the production posture", func(t *testing.T) {
		outputFile := filepath.Join(t.TempDir(), "spec.yaml")

		discoverer := NewDiscoverer(DiscoverOpts{
			Region:      "eu-west-2",
			Environment: types.EnvironmentProd,
			OutputFile:  outputFile,
			EC2Service: &fakeEC2{
				zones: []string{"eu-west-2a", "eu-west-2b", "eu-west-2c"},
			},
		})

		require.NoError(t, discoverer.Run())

		content, err := os.ReadFile(outputFile)
		require.NoError(t, err)
		spec := string(content)

		assert.Contains(t, spec, "environment: prod")
		assert.Contains(t, spec, "- eu-west-2c")
		assert.Contains(t, spec, "deletion_protection: true")
		assert.Contains(t, spec, "enable_nat_gateway: true")
		assert.Contains(t, spec, "enabled: true")
		assert.Contains(t, spec, "multi_az: true")
		assert.Contains(t, spec, "backup_retention_days: 30")
		assert.NotContains(t, spec, "password: REPLACE_ME")
	})

	t.Run("starter spec parses as a deployment spec", func(t *testing.T) {
		outputFile := filepath.Join(t.TempDir(), "spec.yaml")

		discoverer := NewDiscoverer(DiscoverOpts{
			Region:      "eu-west-2",
			Environment: types.EnvironmentDev,
			OutputFile:  outputFile,
			EC2Service:  &fakeEC2{zones: []string{"eu-west-2a", "eu-west-2b"}},
		})
		require.NoError(t, discoverer.Run())

		spec, errs := types.NewDeploymentSpecFromFile(outputFile)

		require.Empty(t, errs)
		assert.Equal(t, types.EnvironmentDev, spec.Environment)
		assert.Equal(t, 2, len(spec.Network.AvailabilityZones))
		assert.Equal(t, []string{"10.0.0.0/24", "10.0.1.0/24"}, spec.Network.PublicSubnetCidrs)
		assert.Equal(t, []string{"10.0.10.0/24", "10.0.11.0/24"}, spec.Network.PrivateSubnetCidrs)
	})
}
