package modules

import (
	"github.com/shopfront/sfp/internal/services/hcl/aws"
	"github.com/shopfront/sfp/internal/types"
)

func GetSecurityVariables() []ModuleVariable[types.DeploymentSpec] {
	vars := []ModuleVariable[types.DeploymentSpec]{
		{
			Name: "vpc_id",
			Definition: types.TerraformVariable{
				Name:        "vpc_id",
				Description: "ID of the VPC the security groups are scoped to",
				Type:        "string",
			},
			FromModuleOutput: "module.network.vpc_id",
		},
		{
			Name: "vpc_cidr",
			Definition: types.TerraformVariable{
				Name:        "vpc_cidr",
				Description: "CIDR block of the VPC, for intra-VPC rules",
				Type:        "string",
			},
			FromModuleOutput: "module.network.vpc_cidr",
		},
		{
			Name: "enable_bastion",
			Definition: types.TerraformVariable{
				Name:        "enable_bastion",
				Description: "Whether the bastion host and its security group are created",
				Type:        "bool",
				Default:     false,
			},
			ValueExtractor: func(spec types.DeploymentSpec) any {
				return spec.Bastion.Enabled
			},
		},
		{
			Name: "bastion_allowed_cidrs",
			Definition: types.TerraformVariable{
				Name:        "bastion_allowed_cidrs",
				Description: "CIDR blocks allowed to reach the bastion host over SSH",
				Type:        "list(string)",
				Default:     []string{},
			},
			ValueExtractor: func(spec types.DeploymentSpec) any {
				return spec.Bastion.AllowedCidrs
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
	}

	return append(vars, sharedNamingVariables()...)
}

func GetSecurityModuleVariableDefinitions(spec types.DeploymentSpec) []types.TerraformVariable {
	return moduleVariableDefinitions(GetSecurityVariables(), spec)
}

func GetSecurityOutputs() []types.TerraformOutput {
	return []types.TerraformOutput{
		{
			Name:        "alb_security_group_id",
			Value:       aws.GetSecurityGroupIdReference("alb"),
			Description: "ID of the load balancer security group",
		},
		{
			Name:        "web_security_group_id",
			Value:       aws.GetSecurityGroupIdReference("web"),
			Description: "ID of the web tier security group",
		},
		{
			Name:        "app_security_group_id",
			Value:       aws.GetSecurityGroupIdReference("app"),
			Description: "ID of the application tier security group",
		},
		{
			Name:        "database_security_group_id",
			Value:       aws.GetSecurityGroupIdReference("database"),
			Description: "ID of the database security group",
		},
		{
			Name:        "bastion_security_group_id",
			Value:       aws.GetConditionalSecurityGroupIdReference("bastion"),
			Description: "ID of the bastion security group, null when the bastion is disabled",
		},
	}
}
