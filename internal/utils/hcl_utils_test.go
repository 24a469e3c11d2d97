package utils

import (
	"testing"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/stretchr/testify/assert"
	"github.com/zclconf/go-cty/cty"
)

func TestFormatHclResourceName(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		expectedOutput string
	}{
		{
			name:           "hyphens become underscores",
			input:          "storefront-dev-web",
			expectedOutput: "storefront_dev_web",
		},
		{
			name:           "uppercase becomes lowercase",
			input:          "Storefront-Prod",
			expectedOutput: "storefront_prod",
		},
		{
			name:           "already snake_case is untouched",
			input:          "store_front",
			expectedOutput: "store_front",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedOutput, FormatHclResourceName(tt.input))
		})
	}
}

func renderAttribute(tokens hclwrite.Tokens) string {
	f := hclwrite.NewEmptyFile()
	f.Body().SetAttributeRaw("attr", tokens)
	return string(f.Bytes())
}

func TestTokensForTagsMerge(t *testing.T) {
	rendered := renderAttribute(TokensForTagsMerge("web"))

	assert.Contains(t, rendered, "merge(var.tags,")
	assert.Contains(t, rendered, "Name")
	assert.Contains(t, rendered, `"${var.name_prefix}-web"`)
}

func TestTokensForCountConditional(t *testing.T) {
	rendered := renderAttribute(TokensForCountConditional("enable_nat_gateway"))

	assert.Contains(t, rendered, "var.enable_nat_gateway ? 1 : 0")
}

func TestTokensForModuleOutput(t *testing.T) {
	rendered := renderAttribute(TokensForModuleOutput("network", "vpc_id"))

	assert.Contains(t, rendered, "module.network.vpc_id")
}

func TestTokensForFunctionCall(t *testing.T) {
	rendered := renderAttribute(TokensForFunctionCall(
		"base64encode",
		TokensForVarReference("user_data"),
	))

	assert.Contains(t, rendered, "base64encode(var.user_data)")
}

func TestTokensForStringList(t *testing.T) {
	rendered := renderAttribute(TokensForStringList([]string{"10.0.0.0/24", "10.0.1.0/24"}))

	assert.Contains(t, rendered, `"10.0.0.0/24"`)
	assert.Contains(t, rendered, `"10.0.1.0/24"`)
}

func TestAppendComment(t *testing.T) {
	f := hclwrite.NewEmptyFile()
	AppendComment(f.Body(), "supplied at apply time")

	assert.Contains(t, string(f.Bytes()), "# supplied at apply time")
}

func TestConvertToCtyValue(t *testing.T) {
	tests := []struct {
		name          string
		input         any
		expectedValue cty.Value
	}{
		{
			name:          "string",
			input:         "eu-west-2",
			expectedValue: cty.StringVal("eu-west-2"),
		},
		{
			name:          "bool",
			input:         true,
			expectedValue: cty.BoolVal(true),
		},
		{
			name:          "int",
			input:         5432,
			expectedValue: cty.NumberIntVal(5432),
		},
		{
			name:          "string slice",
			input:         []string{"a", "b"},
			expectedValue: cty.ListVal([]cty.Value{cty.StringVal("a"), cty.StringVal("b")}),
		},
		{
			name:          "empty string slice",
			input:         []string{},
			expectedValue: cty.ListValEmpty(cty.String),
		},
		{
			name:          "string map",
			input:         map[string]string{"Environment": "dev"},
			expectedValue: cty.MapVal(map[string]cty.Value{"Environment": cty.StringVal("dev")}),
		},
		{
			name:          "unsupported type",
			input:         struct{}{},
			expectedValue: cty.NilVal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ConvertToCtyValue(tt.input)
			assert.True(t, tt.expectedValue.RawEquals(result), "expected %v, got %v", tt.expectedValue, result)
		})
	}
}

func TestValidateCidrList(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		expectedOutput []string
		expectError    bool
	}{
		{
			name:           "single CIDR",
			input:          "10.0.0.0/24",
			expectedOutput: []string{"10.0.0.0/24"},
		},
		{
			name:           "multiple CIDRs with whitespace",
			input:          "10.0.0.0/24, 192.168.1.0/28",
			expectedOutput: []string{"10.0.0.0/24", "192.168.1.0/28"},
		},
		{
			name:        "empty input",
			input:       "",
			expectError: true,
		},
		{
			name:        "malformed CIDR",
			input:       "10.0.0.0",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ValidateCidrList(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedOutput, result)
		})
	}
}
