package modules

import (
	"github.com/shopfront/sfp/internal/services/hcl/aws"
	"github.com/shopfront/sfp/internal/types"
)

func GetDatabaseVariables() []ModuleVariable[types.DeploymentSpec] {
	vars := []ModuleVariable[types.DeploymentSpec]{
		{
			Name: "private_subnet_ids",
			Definition: types.TerraformVariable{
				Name:        "private_subnet_ids",
				Description: "Private subnets the database subnet group spans",
				Type:        "list(string)",
			},
			FromModuleOutput: "module.network.private_subnet_ids",
		},
		{
			Name: "database_security_group_id",
			Definition: types.TerraformVariable{
				Name:        "database_security_group_id",
				Description: "Security group attached to the database instance",
				Type:        "string",
			},
			FromModuleOutput: "module.security.database_security_group_id",
		},
		{
			Name: "db_engine",
			Definition: types.TerraformVariable{
				Name:        "db_engine",
				Description: "Database engine",
				Type:        "string",
			},
			ValueExtractor: func(spec types.DeploymentSpec) any {
				return spec.Database.Engine
			},
		},
		{
			Name: "db_engine_version",
			Definition: types.TerraformVariable{
				Name:        "db_engine_version",
				Description: "Database engine version",
				Type:        "string",
			},
			ValueExtractor: func(spec types.DeploymentSpec) any {
				return spec.Database.EngineVersion
			},
		},
		{
			Name: "db_instance_class",
			Definition: types.TerraformVariable{
				Name:        "db_instance_class",
				Description: "Instance class of the database",
				Type:        "string",
			},
			ValueExtractor: func(spec types.DeploymentSpec) any {
				return spec.Database.InstanceClass
			},
		},
		{
			Name: "db_allocated_storage",
			Definition: types.TerraformVariable{
				Name:        "db_allocated_storage",
				Description: "Allocated storage in GB",
				Type:        "number",
			},
			ValueExtractor: func(spec types.DeploymentSpec) any {
				return spec.Database.AllocatedStorageGb
			},
		},
		{
			Name: "db_name",
			Definition: types.TerraformVariable{
				Name:        "db_name",
				Description: "Name of the application database",
				Type:        "string",
			},
			ValueExtractor: func(spec types.DeploymentSpec) any {
				return spec.Database.DbName
			},
		},
		{
			Name: "db_username",
			Definition: types.TerraformVariable{
				Name:        "db_username",
				Description: "Master username of the database",
				Type:        "string",
			},
			ValueExtractor: func(spec types.DeploymentSpec) any {
				return spec.Database.Username
			},
		},
		{
			Name: "db_password",
			Definition: types.TerraformVariable{
				Name:        "db_password",
				Description: "Master password of the database. Never checked in for production overlays",
				Type:        "string",
				Sensitive:   true,
			},
			// Empty for production overlays: the value is deliberately absent
			// from generated tfvars and must be supplied at apply time.
			ValueExtractor: func(spec types.DeploymentSpec) any {
				return spec.Database.Password.Reveal()
			},
		},
		{
			Name: "db_port",
			Definition: types.TerraformVariable{
				Name:        "db_port",
				Description: "Port the database listens on",
				Type:        "number",
			},
			ValueExtractor: func(spec types.DeploymentSpec) any {
				return spec.Database.Port
			},
		},
		{
			Name: "db_multi_az",
			Definition: types.TerraformVariable{
				Name:        "db_multi_az",
				Description: "Whether the database runs with a standby replica in a second availability zone",
				Type:        "bool",
				Default:     false,
			},
			ValueExtractor: func(spec types.DeploymentSpec) any {
				return spec.Database.MultiAz
			},
		},
		{
			Name: "db_backup_retention_days",
			Definition: types.TerraformVariable{
				Name:        "db_backup_retention_days",
				Description: "Number of days automated backups are retained",
				Type:        "number",
			},
			ValueExtractor: func(spec types.DeploymentSpec) any {
				return spec.Database.BackupRetentionDays
			},
		},
		{
			Name: "enable_deletion_protection",
			Definition: types.TerraformVariable{
				Name:        "enable_deletion_protection",
				Description: "Whether the load balancer and database resist deletion",
				Type:        "bool",
				Default:     false,
			},
			ValueExtractor: func(spec types.DeploymentSpec) any {
				return spec.DeletionProtection
			},
		},
	}

	return append(vars, sharedNamingVariables()...)
}

func GetDatabaseModuleVariableDefinitions(spec types.DeploymentSpec) []types.TerraformVariable {
	return moduleVariableDefinitions(GetDatabaseVariables(), spec)
}

func GetDatabaseOutputs() []types.TerraformOutput {
	return []types.TerraformOutput{
		{
			Name:        "db_endpoint",
			Value:       aws.GetDbEndpointReference("main"),
			Description: "Connection endpoint of the database",
			Sensitive:   true,
		},
		{
			Name:        "db_identifier",
			Value:       aws.GetDbIdentifierReference("main"),
			Description: "Identifier of the database instance",
		},
	}
}
