package app_infra

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopfront/sfp/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSpec() types.DeploymentSpec {
	return types.DeploymentSpec{
		Environment: types.EnvironmentDev,
		Region:      "eu-west-2",
		NamePrefix:  "storefront-dev",
		Network: types.NetworkSpec{
			VpcCidr:            "10.0.0.0/16",
			AvailabilityZones:  []string{"eu-west-2a", "eu-west-2b"},
			PublicSubnetCidrs:  []string{"10.0.0.0/24", "10.0.1.0/24"},
			PrivateSubnetCidrs: []string{"10.0.10.0/24", "10.0.11.0/24"},
		},
		Compute: types.ComputeSpec{
			AmiID: "ami-0123456789abcdef0",
			Web:   types.TierSpec{InstanceType: "t3.micro", MinSize: 1, DesiredCapacity: 1, MaxSize: 2},
			App:   types.TierSpec{InstanceType: "t3.micro", MinSize: 1, DesiredCapacity: 1, MaxSize: 2},
		},
		Database: types.DatabaseSpec{
			Engine:              "postgres",
			EngineVersion:       "16.4",
			InstanceClass:       "db.t3.micro",
			AllocatedStorageGb:  20,
			DbName:              "storefront",
			Username:            "storefront_admin",
			Password:            types.NewSensitive("dev-only-password"),
			Port:                5432,
			BackupRetentionDays: 7,
		},
	}
}

func TestAppInfraAssetGeneratorRun(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "terraform")

	generator := NewAppInfraAssetGenerator(AppInfraOpts{
		Spec:      testSpec(),
		OutputDir: outputDir,
	})

	require.NoError(t, generator.Run())

	t.Run("writes the root composition files", func(t *testing.T) {
		for _, fileName := range []string{"main.tf", "providers.tf", "variables.tf", "outputs.tf"} {
			content, err := os.ReadFile(filepath.Join(outputDir, fileName))
			require.NoError(t, err, fileName)
			assert.NotEmpty(t, content, fileName)
		}
	})

	t.Run("writes the environment overlay", func(t *testing.T) {
		content, err := os.ReadFile(filepath.Join(outputDir, "environments", "dev.tfvars"))
		require.NoError(t, err)
		assert.Contains(t, string(content), "storefront-dev")
	})

	t.Run("writes every module", func(t *testing.T) {
		for _, moduleName := range []string{"network", "security", "compute", "load_balancer", "database"} {
			for _, fileName := range []string{"main.tf", "variables.tf", "outputs.tf"} {
				path := filepath.Join(outputDir, "modules", moduleName, fileName)
				content, err := os.ReadFile(path)
				require.NoError(t, err, path)
				assert.NotEmpty(t, content, path)
			}
		}
	})

	t.Run("writes the compute user data templates", func(t *testing.T) {
		for _, templateName := range []string{"web_user_data.sh.tpl", "app_user_data.sh.tpl"} {
			path := filepath.Join(outputDir, "modules", "compute", "templates", templateName)
			content, err := os.ReadFile(path)
			require.NoError(t, err, path)
			assert.NotEmpty(t, content, path)
		}
	})

	t.Run("writes a manifest describing the run", func(t *testing.T) {
		content, err := os.ReadFile(filepath.Join(outputDir, "manifest.json"))
		require.NoError(t, err)

		var manifest types.Manifest
		require.NoError(t, json.Unmarshal(content, &manifest))
		assert.Equal(t, types.EnvironmentDev, manifest.Environment)
		assert.Equal(t, "storefront-dev", manifest.NamePrefix)
		assert.Equal(t, "eu-west-2", manifest.Region)
		assert.False(t, manifest.GeneratedAt.IsZero())
	})
}
