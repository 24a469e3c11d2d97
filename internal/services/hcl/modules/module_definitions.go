package modules

import (
	"github.com/shopfront/sfp/internal/types"
)

type VariableDefinition interface {
	GetName() string
	GetDefinition() types.TerraformVariable
}

// ModuleVariable is a generic definition for module variables.
// R is the request type driving generation (here types.DeploymentSpec).
type ModuleVariable[R any] struct {
	Name             string
	Definition       types.TerraformVariable
	ValueExtractor   func(request R) any  // Extracts the concrete value from the deployment spec. If nil, it's not a root-level variable.
	Condition        func(request R) bool // Determines if this variable should be included (nil = always include).
	FromModuleOutput string               // If non-empty, the root composition wires this variable from the given expression instead of a root variable.
}

func (m ModuleVariable[R]) GetName() string {
	return m.Name
}

func (m ModuleVariable[R]) GetDefinition() types.TerraformVariable {
	return m.Definition
}

// ============================================================================
// Root composition
// ============================================================================

// GetRootVariableValues collects the tfvars values for one environment
// overlay across every module plus the provider variables.
func GetRootVariableValues(spec types.DeploymentSpec) map[string]any {
	return extractVariableValues(allModuleVariables(), spec)
}

// GetRootVariableDefinitions collects the root-level variable definitions
// from every module, deduplicated downstream by name.
func GetRootVariableDefinitions(spec types.DeploymentSpec) []types.TerraformVariable {
	return extractRootVariableDefinitions(allModuleVariables(), spec)
}

func allModuleVariables() []ModuleVariable[types.DeploymentSpec] {
	allVars := []ModuleVariable[types.DeploymentSpec]{}
	allVars = append(allVars, GetProviderVariables()...)
	allVars = append(allVars, GetNetworkVariables()...)
	allVars = append(allVars, GetSecurityVariables()...)
	allVars = append(allVars, GetComputeVariables()...)
	allVars = append(allVars, GetLoadBalancerVariables()...)
	allVars = append(allVars, GetDatabaseVariables()...)
	return allVars
}

// ============================================================================
// Helpers
// ============================================================================

// extractVariableValues extracts root-level variable values from a collection of variable definitions.
// It filters by condition, skips variables without value extractors, and only includes non-empty values.
func extractVariableValues[R any](allVars []ModuleVariable[R], request R) map[string]any {
	values := make(map[string]any)

	for _, varDef := range allVars {
		if varDef.Condition != nil && !varDef.Condition(request) {
			continue
		}

		// Variables with nil ValueExtractor are not root-level variables.
		if varDef.ValueExtractor == nil {
			continue
		}

		value := varDef.ValueExtractor(request)

		// Only include non-empty values
		switch v := value.(type) {
		case string:
			if v != "" {
				values[varDef.Name] = v
			}
		case []string:
			if len(v) > 0 {
				values[varDef.Name] = v
			}
		case map[string]string:
			if len(v) > 0 {
				values[varDef.Name] = v
			}
		case bool:
			values[varDef.Name] = v
		case int:
			values[varDef.Name] = v
		}
	}

	return values
}

// extractRootVariableDefinitions extracts root-level variable definitions.
// It filters by condition and skips variables without value extractors or those coming from module outputs.
func extractRootVariableDefinitions[R any](allVars []ModuleVariable[R], request R) []types.TerraformVariable {
	var definitions []types.TerraformVariable

	for _, varDef := range allVars {
		if varDef.Condition != nil && !varDef.Condition(request) {
			continue
		}

		// Variables wired from module outputs never surface at the root.
		if varDef.FromModuleOutput != "" {
			continue
		}

		definitions = append(definitions, varDef.Definition)
	}

	return definitions
}

// moduleVariableDefinitions returns every variable a module declares in its
// own variables.tf, including the ones the root wires from other modules'
// outputs.
func moduleVariableDefinitions[R any](vars []ModuleVariable[R], request R) []types.TerraformVariable {
	var definitions []types.TerraformVariable
	for _, varDef := range vars {
		if varDef.Condition != nil && !varDef.Condition(request) {
			continue
		}
		definitions = append(definitions, varDef.Definition)
	}
	return definitions
}
