package modules

import (
	"github.com/shopfront/sfp/internal/services/hcl/aws"
	"github.com/shopfront/sfp/internal/types"
)

func GetLoadBalancerVariables() []ModuleVariable[types.DeploymentSpec] {
	vars := []ModuleVariable[types.DeploymentSpec]{
		{
			Name: "vpc_id",
			Definition: types.TerraformVariable{
				Name:        "vpc_id",
				Description: "ID of the VPC the target group is bound to",
				Type:        "string",
			},
			FromModuleOutput: "module.network.vpc_id",
		},
		{
			Name: "public_subnet_ids",
			Definition: types.TerraformVariable{
				Name:        "public_subnet_ids",
				Description: "Public subnets the load balancer spans",
				Type:        "list(string)",
			},
			FromModuleOutput: "module.network.public_subnet_ids",
		},
		{
			Name: "alb_security_group_id",
			Definition: types.TerraformVariable{
				Name:        "alb_security_group_id",
				Description: "Security group attached to the load balancer",
				Type:        "string",
			},
			FromModuleOutput: "module.security.alb_security_group_id",
		},
		{
			Name: "web_asg_name",
			Definition: types.TerraformVariable{
				Name:        "web_asg_name",
				Description: "Name of the web tier autoscaling group attached to the target group",
				Type:        "string",
			},
			FromModuleOutput: "module.compute.web_asg_name",
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

func GetLoadBalancerModuleVariableDefinitions(spec types.DeploymentSpec) []types.TerraformVariable {
	return moduleVariableDefinitions(GetLoadBalancerVariables(), spec)
}

func GetLoadBalancerOutputs() []types.TerraformOutput {
	return []types.TerraformOutput{
		{
			Name:        "alb_dns_name",
			Value:       aws.GetLoadBalancerDnsNameReference("main"),
			Description: "DNS name of the load balancer, consumed by external record management",
		},
		{
			Name:        "alb_zone_id",
			Value:       aws.GetLoadBalancerZoneIdReference("main"),
			Description: "Hosted zone ID of the load balancer, for alias records",
		},
		{
			Name:        "alb_arn",
			Value:       aws.GetLoadBalancerArnReference("main"),
			Description: "ARN of the load balancer",
		},
		{
			Name:        "target_group_arn",
			Value:       aws.GetTargetGroupArnReference("web"),
			Description: "ARN of the web tier target group",
		},
	}
}
