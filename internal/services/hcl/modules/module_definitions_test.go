package modules

import (
	"testing"

	"github.com/shopfront/sfp/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func devSpec() types.DeploymentSpec {
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

func prodSpec() types.DeploymentSpec {
	spec := devSpec()
	spec.Environment = types.EnvironmentProd
	spec.NamePrefix = "storefront-prod"
	spec.DeletionProtection = true
	spec.Network.EnableNatGateway = true
	spec.Bastion = types.BastionSpec{Enabled: true, AllowedCidrs: []string{"203.0.113.0/24"}}
	spec.Database.Password = types.Sensitive{}
	spec.Database.MultiAz = true
	return spec
}

func TestGetRootVariableValues(t *testing.T) {
	t.Run("dev values include the inline password", func(t *testing.T) {
		values := GetRootVariableValues(devSpec())

		assert.Equal(t, "dev-only-password", values["db_password"])
		assert.Equal(t, "ami-0123456789abcdef0", values["ami_id"])
		assert.Equal(t, "eu-west-2", values["aws_region"])
		assert.Equal(t, 1, values["web_min_size"])
		assert.Equal(t, 5432, values["db_port"])
		assert.Equal(t, false, values["enable_bastion"])
	})

	t.Run("empty strings are omitted", func(t *testing.T) {
		values := GetRootVariableValues(devSpec())

		// No key pair configured, so the value never reaches tfvars.
		assert.NotContains(t, values, "key_name")
	})

	t.Run("prod values never include the password", func(t *testing.T) {
		values := GetRootVariableValues(prodSpec())

		assert.NotContains(t, values, "db_password")
		assert.Equal(t, true, values["enable_bastion"])
		assert.Equal(t, true, values["db_multi_az"])
		assert.Equal(t, true, values["enable_deletion_protection"])
	})
}

func TestGetRootVariableDefinitions(t *testing.T) {
	definitions := GetRootVariableDefinitions(devSpec())

	names := make(map[string]types.TerraformVariable)
	for _, def := range definitions {
		names[def.Name] = def
	}

	// Inputs wired from module outputs never surface as root variables.
	assert.NotContains(t, names, "db_endpoint")
	assert.NotContains(t, names, "bastion_subnet_id")
	assert.NotContains(t, names, "bastion_security_group_id")
	assert.NotContains(t, names, "private_subnet_ids")

	assert.Contains(t, names, "ami_id")
	assert.Contains(t, names, "aws_region")

	require.Contains(t, names, "db_password")
	assert.True(t, names["db_password"].Sensitive)
}

func TestModuleVariableDefinitionsIncludeWiredInputs(t *testing.T) {
	definitions := GetComputeModuleVariableDefinitions(devSpec())

	names := make([]string, 0, len(definitions))
	for _, def := range definitions {
		names = append(names, def.Name)
	}

	// The compute module still declares the inputs the root wires in for it.
	assert.Contains(t, names, "db_endpoint")
	assert.Contains(t, names, "bastion_subnet_id")
	assert.Contains(t, names, "web_instance_type")
	assert.Contains(t, names, "app_max_size")
}
