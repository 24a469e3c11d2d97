package modules

import (
	"fmt"

	"github.com/shopfront/sfp/internal/services/hcl/aws"
	"github.com/shopfront/sfp/internal/types"
)

func GetComputeVariables() []ModuleVariable[types.DeploymentSpec] {
	vars := []ModuleVariable[types.DeploymentSpec]{
		{
			Name: "ami_id",
			Definition: types.TerraformVariable{
				Name:        "ami_id",
				Description: "AMI both tiers launch from",
				Type:        "string",
			},
			ValueExtractor: func(spec types.DeploymentSpec) any {
				return spec.Compute.AmiID
			},
		},
		{
			Name: "key_name",
			Definition: types.TerraformVariable{
				Name:        "key_name",
				Description: "Name of the EC2 key pair for instance access",
				Type:        "string",
				Default:     "",
			},
			ValueExtractor: func(spec types.DeploymentSpec) any {
				return spec.Compute.KeyName
			},
		},
		{
			Name: "db_endpoint",
			Definition: types.TerraformVariable{
				Name:        "db_endpoint",
				Description: "Connection endpoint of the application database, injected into instance user data",
				Type:        "string",
				Sensitive:   true,
			},
			FromModuleOutput: "module.database.db_endpoint",
		},
		{
			Name: "enable_bastion",
			Definition: types.TerraformVariable{
				Name:        "enable_bastion",
				Description: "Whether the bastion host is created",
				Type:        "bool",
				Default:     false,
			},
			ValueExtractor: func(spec types.DeploymentSpec) any {
				return spec.Bastion.Enabled
			},
		},
		{
			Name: "bastion_subnet_id",
			Definition: types.TerraformVariable{
				Name:        "bastion_subnet_id",
				Description: "Public subnet the bastion host is placed in",
				Type:        "string",
				Default:     "",
			},
			FromModuleOutput: "module.network.public_subnet_ids[0]",
		},
		{
			Name: "bastion_security_group_id",
			Definition: types.TerraformVariable{
				Name:        "bastion_security_group_id",
				Description: "Security group of the bastion host",
				Type:        "string",
				Default:     "",
			},
			FromModuleOutput: "module.security.bastion_security_group_id",
		},
	}

	for _, tier := range types.AllTiers() {
		vars = append(vars, tierVariables(tier)...)
	}

	return append(vars, sharedNamingVariables()...)
}

// tierVariables returns the per-tier parameter set. Web and app are fully
// independent parallel instantiations of the same pattern.
func tierVariables(tier types.Tier) []ModuleVariable[types.DeploymentSpec] {
	return []ModuleVariable[types.DeploymentSpec]{
		{
			Name: fmt.Sprintf("%s_instance_type", tier),
			Definition: types.TerraformVariable{
				Name:        fmt.Sprintf("%s_instance_type", tier),
				Description: fmt.Sprintf("Instance type of the %s tier", tier),
				Type:        "string",
			},
			ValueExtractor: func(spec types.DeploymentSpec) any {
				return spec.Compute.Tier(tier).InstanceType
			},
		},
		{
			Name: fmt.Sprintf("%s_min_size", tier),
			Definition: types.TerraformVariable{
				Name:        fmt.Sprintf("%s_min_size", tier),
				Description: fmt.Sprintf("Minimum fleet size of the %s tier", tier),
				Type:        "number",
			},
			ValueExtractor: func(spec types.DeploymentSpec) any {
				return spec.Compute.Tier(tier).MinSize
			},
		},
		{
			Name: fmt.Sprintf("%s_desired_capacity", tier),
			Definition: types.TerraformVariable{
				Name:        fmt.Sprintf("%s_desired_capacity", tier),
				Description: fmt.Sprintf("Desired fleet size of the %s tier", tier),
				Type:        "number",
			},
			ValueExtractor: func(spec types.DeploymentSpec) any {
				return spec.Compute.Tier(tier).DesiredCapacity
			},
		},
		{
			Name: fmt.Sprintf("%s_max_size", tier),
			Definition: types.TerraformVariable{
				Name:        fmt.Sprintf("%s_max_size", tier),
				Description: fmt.Sprintf("Maximum fleet size of the %s tier", tier),
				Type:        "number",
			},
			ValueExtractor: func(spec types.DeploymentSpec) any {
				return spec.Compute.Tier(tier).MaxSize
			},
		},
		{
			Name: fmt.Sprintf("%s_subnet_ids", tier),
			Definition: types.TerraformVariable{
				Name:        fmt.Sprintf("%s_subnet_ids", tier),
				Description: fmt.Sprintf("Subnets the %s tier's autoscaling group spans", tier),
				Type:        "list(string)",
			},
			FromModuleOutput: "module.network.private_subnet_ids",
		},
		{
			Name: fmt.Sprintf("%s_security_group_ids", tier),
			Definition: types.TerraformVariable{
				Name:        fmt.Sprintf("%s_security_group_ids", tier),
				Description: fmt.Sprintf("Security groups attached to %s tier instances", tier),
				Type:        "list(string)",
			},
			FromModuleOutput: fmt.Sprintf("[module.security.%s_security_group_id]", tier),
		},
	}
}

func GetComputeModuleVariableDefinitions(spec types.DeploymentSpec) []types.TerraformVariable {
	return moduleVariableDefinitions(GetComputeVariables(), spec)
}

func GetComputeOutputs() []types.TerraformOutput {
	return []types.TerraformOutput{
		{
			Name:        "web_asg_name",
			Value:       aws.GetAutoscalingGroupNameReference("web"),
			Description: "Name of the web tier autoscaling group",
		},
		{
			Name:        "app_asg_name",
			Value:       aws.GetAutoscalingGroupNameReference("app"),
			Description: "Name of the application tier autoscaling group",
		},
		{
			Name:        "web_launch_template_id",
			Value:       aws.GetLaunchTemplateIdReference("web"),
			Description: "ID of the web tier launch template",
		},
		{
			Name:        "app_launch_template_id",
			Value:       aws.GetLaunchTemplateIdReference("app"),
			Description: "ID of the application tier launch template",
		},
		{
			Name:        "bastion_public_ip",
			Value:       aws.GetBastionPublicIpReference("bastion"),
			Description: "Public IP of the bastion host, null when disabled",
		},
	}
}
