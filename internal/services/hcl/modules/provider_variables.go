package modules

import (
	"github.com/shopfront/sfp/internal/types"
)

// GetProviderVariables returns the variables consumed by the provider
// configuration and shared by every module: region, naming prefix, and the
// base tag map merged into every resource.
func GetProviderVariables() []ModuleVariable[types.DeploymentSpec] {
	return []ModuleVariable[types.DeploymentSpec]{
		{
			Name: "aws_region",
			Definition: types.TerraformVariable{
				Name:        "aws_region",
				Description: "AWS region to deploy into",
				Type:        "string",
			},
			ValueExtractor: func(spec types.DeploymentSpec) any {
				return spec.Region
			},
		},
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
