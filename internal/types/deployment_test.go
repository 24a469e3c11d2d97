package types

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDevSpec() DeploymentSpec {
	return DeploymentSpec{
		Environment: EnvironmentDev,
		Region:      "eu-west-2",
		NamePrefix:  "storefront-dev",
		Tags:        map[string]string{"Environment": "dev"},
		Network: NetworkSpec{
			VpcCidr:            "10.0.0.0/16",
			AvailabilityZones:  []string{"eu-west-2a", "eu-west-2b"},
			PublicSubnetCidrs:  []string{"10.0.0.0/24", "10.0.1.0/24"},
			PrivateSubnetCidrs: []string{"10.0.10.0/24", "10.0.11.0/24"},
		},
		Compute: ComputeSpec{
			AmiID: "ami-0123456789abcdef0",
			Web:   TierSpec{InstanceType: "t3.micro", MinSize: 1, DesiredCapacity: 1, MaxSize: 2},
			App:   TierSpec{InstanceType: "t3.micro", MinSize: 1, DesiredCapacity: 1, MaxSize: 2},
		},
		Database: DatabaseSpec{
			Engine:              "postgres",
			EngineVersion:       "16.4",
			InstanceClass:       "db.t3.micro",
			AllocatedStorageGb:  20,
			DbName:              "storefront",
			Username:            "storefront_admin",
			Password:            NewSensitive("dev-only-password"),
			Port:                5432,
			BackupRetentionDays: 7,
		},
	}
}

func validProdSpec() DeploymentSpec {
	spec := validDevSpec()
	spec.Environment = EnvironmentProd
	spec.NamePrefix = "storefront-prod"
	spec.DeletionProtection = true
	spec.Network.AvailabilityZones = []string{"eu-west-2a", "eu-west-2b", "eu-west-2c"}
	spec.Network.PublicSubnetCidrs = []string{"10.0.0.0/24", "10.0.1.0/24", "10.0.2.0/24"}
	spec.Network.PrivateSubnetCidrs = []string{"10.0.10.0/24", "10.0.11.0/24", "10.0.12.0/24"}
	spec.Network.EnableNatGateway = true
	spec.Bastion = BastionSpec{Enabled: true, AllowedCidrs: []string{"203.0.113.0/24"}}
	spec.Database.Password = Sensitive{}
	spec.Database.MultiAz = true
	spec.Database.BackupRetentionDays = 30
	return spec
}

func TestDeploymentSpecValidate(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(spec *DeploymentSpec)
		expectedError string
	}{
		{
			name:   "valid dev spec passes",
			mutate: func(spec *DeploymentSpec) {},
		},
		{
			name: "invalid environment is rejected",
			mutate: func(spec *DeploymentSpec) {
				spec.Environment = "sandbox"
			},
			expectedError: "environment must be one of",
		},
		{
			name: "missing region is rejected",
			mutate: func(spec *DeploymentSpec) {
				spec.Region = ""
			},
			expectedError: "region is required",
		},
		{
			name: "missing name prefix is rejected",
			mutate: func(spec *DeploymentSpec) {
				spec.NamePrefix = ""
			},
			expectedError: "name_prefix is required",
		},
		{
			name: "malformed vpc cidr is rejected",
			mutate: func(spec *DeploymentSpec) {
				spec.Network.VpcCidr = "10.0.0.0"
			},
			expectedError: "not a valid CIDR block",
		},
		{
			name: "subnet count must match zone count",
			mutate: func(spec *DeploymentSpec) {
				spec.Network.PublicSubnetCidrs = []string{"10.0.0.0/24"}
			},
			expectedError: "one CIDR per availability zone",
		},
		{
			name: "bastion without allowed cidrs is rejected",
			mutate: func(spec *DeploymentSpec) {
				spec.Bastion = BastionSpec{Enabled: true}
			},
			expectedError: "bastion.allowed_cidrs is required",
		},
		{
			name: "missing ami is rejected",
			mutate: func(spec *DeploymentSpec) {
				spec.Compute.AmiID = ""
			},
			expectedError: "compute.ami_id is required",
		},
		{
			name: "zero min size is rejected",
			mutate: func(spec *DeploymentSpec) {
				spec.Compute.Web.MinSize = 0
			},
			expectedError: "compute.web.min_size must be at least 1",
		},
		{
			name: "desired capacity above max is rejected",
			mutate: func(spec *DeploymentSpec) {
				spec.Compute.App.DesiredCapacity = 5
				spec.Compute.App.MaxSize = 3
			},
			expectedError: "min_size <= desired_capacity <= max_size",
		},
		{
			name: "undersized database storage is rejected",
			mutate: func(spec *DeploymentSpec) {
				spec.Database.AllocatedStorageGb = 10
			},
			expectedError: "allocated_storage_gb must be at least 20",
		},
		{
			name: "out of range database port is rejected",
			mutate: func(spec *DeploymentSpec) {
				spec.Database.Port = 70000
			},
			expectedError: "database.port must be between 1 and 65535",
		},
		{
			name: "missing password in dev is rejected",
			mutate: func(spec *DeploymentSpec) {
				spec.Database.Password = Sensitive{}
			},
			expectedError: "database.password is required for non-production",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := validDevSpec()
			tt.mutate(&spec)

			valid, errs := spec.Validate()

			if tt.expectedError == "" {
				assert.True(t, valid, "expected spec to be valid, got %v", errs)
				assert.Empty(t, errs)
				return
			}

			assert.False(t, valid)
			found := false
			for _, err := range errs {
				if strings.Contains(err.Error(), tt.expectedError) {
					found = true
				}
			}
			assert.True(t, found, "expected a violation containing %q, got %v", tt.expectedError, errs)
		})
	}
}

func TestDeploymentSpecValidateProductionPolicy(t *testing.T) {
	t.Run("valid prod spec passes", func(t *testing.T) {
		spec := validProdSpec()

		valid, errs := spec.Validate()

		assert.True(t, valid, "expected prod spec to be valid, got %v", errs)
	})

	t.Run("prod with inline password is rejected", func(t *testing.T) {
		spec := validProdSpec()
		spec.Database.Password = NewSensitive("leaked")

		valid, errs := spec.Validate()

		assert.False(t, valid)
		assert.Len(t, errs, 1)
		assert.Contains(t, errs[0].Error(), "must not be set")
	})

	t.Run("prod with single availability zone is rejected", func(t *testing.T) {
		spec := validProdSpec()
		spec.Network.AvailabilityZones = []string{"eu-west-2a"}
		spec.Network.PublicSubnetCidrs = []string{"10.0.0.0/24"}
		spec.Network.PrivateSubnetCidrs = []string{"10.0.10.0/24"}

		valid, errs := spec.Validate()

		assert.False(t, valid)
		assert.Contains(t, errs[0].Error(), "at least 2 zone(s)")
	})
}

func TestNewDeploymentSpecFromFile(t *testing.T) {
	t.Run("loads and validates a spec file", func(t *testing.T) {
		specYaml := `
environment: dev
region: eu-west-2
name_prefix: storefront-dev
tags:
  Environment: dev
network:
  vpc_cidr: 10.0.0.0/16
  availability_zones:
    - eu-west-2a
    - eu-west-2b
  public_subnet_cidrs:
    - 10.0.0.0/24
    - 10.0.1.0/24
  private_subnet_cidrs:
    - 10.0.10.0/24
    - 10.0.11.0/24
  enable_nat_gateway: false
compute:
  ami_id: ami-0123456789abcdef0
  web:
    instance_type: t3.micro
    min_size: 1
    desired_capacity: 1
    max_size: 2
  app:
    instance_type: t3.micro
    min_size: 1
    desired_capacity: 1
    max_size: 2
database:
  engine: postgres
  engine_version: "16.4"
  instance_class: db.t3.micro
  allocated_storage_gb: 20
  db_name: storefront
  username: storefront_admin
  password: dev-only-password
  port: 5432
  multi_az: false
  backup_retention_days: 7
`
		specPath := filepath.Join(t.TempDir(), "spec.yaml")
		require.NoError(t, os.WriteFile(specPath, []byte(specYaml), 0644))

		spec, errs := NewDeploymentSpecFromFile(specPath)

		require.Empty(t, errs)
		assert.Equal(t, EnvironmentDev, spec.Environment)
		assert.Equal(t, "storefront-dev", spec.NamePrefix)
		assert.Equal(t, "dev-only-password", spec.Database.Password.Reveal())
		assert.Equal(t, 2, len(spec.Network.AvailabilityZones))
	})

	t.Run("missing file returns an error", func(t *testing.T) {
		_, errs := NewDeploymentSpecFromFile(filepath.Join(t.TempDir(), "absent.yaml"))

		require.Len(t, errs, 1)
		assert.Contains(t, errs[0].Error(), "failed to read deployment spec file")
	})

	t.Run("invalid spec returns all violations", func(t *testing.T) {
		specPath := filepath.Join(t.TempDir(), "spec.yaml")
		require.NoError(t, os.WriteFile(specPath, []byte("environment: dev\n"), 0644))

		_, errs := NewDeploymentSpecFromFile(specPath)

		assert.Greater(t, len(errs), 1)
	})
}
