package modules

import (
	"github.com/shopfront/sfp/internal/services/hcl/aws"
	"github.com/shopfront/sfp/internal/types"
)

// sharedNamingVariables are declared by every module: the naming prefix and
// the base tag map.
func sharedNamingVariables() []ModuleVariable[types.DeploymentSpec] {
	return []ModuleVariable[types.DeploymentSpec]{
		{
			Name: "name_prefix",
			Definition: types.TerraformVariable{
				Name:        "name_prefix",
				Description: "Prefix applied to every resource name",
				Type:        "string",
			},
			ValueExtractor: func(spec types.DeploymentSpec) any {
				return spec.NamePrefix
			},
		},
		{
			Name: "tags",
			Definition: types.TerraformVariable{
				Name:        "tags",
				Description: "Base tags merged into every resource's tag map",
				Type:        "map(string)",
				Default:     map[string]string{},
			},
			ValueExtractor: func(spec types.DeploymentSpec) any {
				return spec.Tags
			},
		},
	}
}

func GetNetworkVariables() []ModuleVariable[types.DeploymentSpec] {
	vars := []ModuleVariable[types.DeploymentSpec]{
		{
			Name: "vpc_cidr",
			Definition: types.TerraformVariable{
				Name:        "vpc_cidr",
				Description: "CIDR block of the VPC",
				Type:        "string",
			},
			ValueExtractor: func(spec types.DeploymentSpec) any {
				return spec.Network.VpcCidr
			},
		},
		{
			Name: "availability_zones",
			Definition: types.TerraformVariable{
				Name:        "availability_zones",
				Description: "Availability zones the subnets spread across",
				Type:        "list(string)",
			},
			ValueExtractor: func(spec types.DeploymentSpec) any {
				return spec.Network.AvailabilityZones
			},
		},
		{
			Name: "public_subnet_cidrs",
			Definition: types.TerraformVariable{
				Name:        "public_subnet_cidrs",
				Description: "CIDR blocks of the public subnets, one per availability zone",
				Type:        "list(string)",
			},
			ValueExtractor: func(spec types.DeploymentSpec) any {
				return spec.Network.PublicSubnetCidrs
			},
		},
		{
			Name: "private_subnet_cidrs",
			Definition: types.TerraformVariable{
				Name:        "private_subnet_cidrs",
				Description: "CIDR blocks of the private subnets, one per availability zone",
				Type:        "list(string)",
			},
			ValueExtractor: func(spec types.DeploymentSpec) any {
				return spec.Network.PrivateSubnetCidrs
			},
		},
		{
			Name: "enable_nat_gateway",
			Definition: types.TerraformVariable{
				Name:        "enable_nat_gateway",
				Description: "Whether private subnets get outbound internet access through a NAT gateway",
				Type:        "bool",
				Default:     false,
			},
			ValueExtractor: func(spec types.DeploymentSpec) any {
				return spec.Network.EnableNatGateway
			},
		},
	}

	return append(vars, sharedNamingVariables()...)
}

// GetNetworkModuleVariableDefinitions returns the variables the network
// module declares in its own variables.tf.
func GetNetworkModuleVariableDefinitions(spec types.DeploymentSpec) []types.TerraformVariable {
	return moduleVariableDefinitions(GetNetworkVariables(), spec)
}

func GetNetworkOutputs() []types.TerraformOutput {
	return []types.TerraformOutput{
		{
			Name:        "vpc_id",
			Value:       aws.GetVpcIdReference("main"),
			Description: "ID of the VPC",
		},
		{
			Name:        "vpc_cidr",
			Value:       "aws_vpc.main.cidr_block",
			Description: "CIDR block of the VPC",
		},
		{
			Name:        "public_subnet_ids",
			Value:       aws.GetSubnetIdsReference("public"),
			Description: "IDs of the public subnets",
		},
		{
			Name:        "private_subnet_ids",
			Value:       aws.GetSubnetIdsReference("private"),
			Description: "IDs of the private subnets",
		},
	}
}
