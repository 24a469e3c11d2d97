package types

import "fmt"

// TerraformVariable describes a single `variable` block in a generated module
// or at the root level.
type TerraformVariable struct {
	Name        string
	Type        string
	Description string
	Sensitive   bool
	Default     any
}

// TerraformOutput describes a single `output` block. Value is an HCL
// expression referencing a resource declared in the same module.
type TerraformOutput struct {
	Name        string
	Value       string
	Description string
	Sensitive   bool
}

// TerraformModule holds the rendered files of one generated child module.
// Templates carries auxiliary non-HCL files (for example user data shell
// templates) keyed by their path relative to the module directory.
type TerraformModule struct {
	Name        string            `json:"name"`
	MainTf      string            `json:"main_tf"`
	VariablesTf string            `json:"variables_tf"`
	OutputsTf   string            `json:"outputs_tf"`
	Templates   map[string]string `json:"templates,omitempty"`
}

// TerraformProject is the full rendered output for one deployment spec:
// root composition files, the per-environment tfvars, and the child modules.
type TerraformProject struct {
	MainTf      string            `json:"main_tf"`
	ProvidersTf string            `json:"providers_tf"`
	VariablesTf string            `json:"variables_tf"`
	OutputsTf   string            `json:"outputs_tf"`
	Tfvars      string            `json:"tfvars"`
	Environment EnvironmentName   `json:"environment"`
	Modules     []TerraformModule `json:"modules"`
}

// EnvironmentName identifies a deployment environment overlay.
type EnvironmentName string

const (
	EnvironmentDev     EnvironmentName = "dev"
	EnvironmentStaging EnvironmentName = "staging"
	EnvironmentProd    EnvironmentName = "prod"
)

func (e EnvironmentName) IsValid() bool {
	switch e {
	case EnvironmentDev, EnvironmentStaging, EnvironmentProd:
		return true
	default:
		return false
	}
}

// IsProduction reports whether the environment carries production guarantees
// (no inline credentials, deletion protection expected, multi-AZ footprint).
func (e EnvironmentName) IsProduction() bool {
	return e == EnvironmentProd
}

// AllEnvironmentNames returns all possible EnvironmentName values as strings.
func AllEnvironmentNames() []string {
	return []string{
		string(EnvironmentDev),
		string(EnvironmentStaging),
		string(EnvironmentProd),
	}
}

func ToEnvironmentName(input string) (EnvironmentName, error) {
	e := EnvironmentName(input)
	if !e.IsValid() {
		return "", fmt.Errorf("invalid environment name: %q, must be one of %v", input, AllEnvironmentNames())
	}
	return e, nil
}

// Tier is an independently scaled application layer.
type Tier string

const (
	TierWeb Tier = "web"
	TierApp Tier = "app"
)

func AllTiers() []Tier {
	return []Tier{TierWeb, TierApp}
}
