package utils

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// FormatHclResourceName ensures that resources are all 'snake_case'.
func FormatHclResourceName(resourceName string) string {
	return strings.ToLower(strings.ReplaceAll(resourceName, "-", "_"))
}

// TokensForStringTemplate creates properly formatted tokens for a template string (string with ${} interpolations)
func TokensForStringTemplate(template string) hclwrite.Tokens {
	return hclwrite.Tokens{
		&hclwrite.Token{Type: hclsyntax.TokenOQuote, Bytes: []byte(`"`)},
		&hclwrite.Token{Type: hclsyntax.TokenQuotedLit, Bytes: []byte(template)},
		&hclwrite.Token{Type: hclsyntax.TokenCQuote, Bytes: []byte(`"`)},
	}
}

// TokensForResourceReference creates tokens for a resource reference (e.g., "aws_vpc.main.id")
func TokensForResourceReference(ref string) hclwrite.Tokens {
	return hclwrite.Tokens{
		&hclwrite.Token{Type: hclsyntax.TokenIdent, Bytes: []byte(ref)},
	}
}

// TokensForVarReference creates tokens for a Terraform variable reference (e.g., "var.my_variable")
func TokensForVarReference(varName string) hclwrite.Tokens {
	return hclwrite.Tokens{
		&hclwrite.Token{Type: hclsyntax.TokenIdent, Bytes: []byte("var." + varName)},
	}
}

// TokensForModuleOutput creates tokens for a module output reference (e.g., "module.network.vpc_id")
func TokensForModuleOutput(moduleName, outputName string) hclwrite.Tokens {
	return TokensForResourceReference(fmt.Sprintf("module.%s.%s", moduleName, outputName))
}

// TokensForList creates tokens for an array literal of raw expressions
func TokensForList(items []string) hclwrite.Tokens {
	tokens := hclwrite.Tokens{
		&hclwrite.Token{Type: hclsyntax.TokenOBrack, Bytes: []byte("[")},
	}

	for i, item := range items {
		tokens = append(tokens, &hclwrite.Token{Type: hclsyntax.TokenIdent, Bytes: []byte(item)})
		if i < len(items)-1 {
			tokens = append(tokens, &hclwrite.Token{Type: hclsyntax.TokenComma, Bytes: []byte(",")})
		}
	}

	tokens = append(tokens, &hclwrite.Token{Type: hclsyntax.TokenCBrack, Bytes: []byte("]")})
	return tokens
}

// TokensForStringList creates tokens for a list of quoted strings (e.g., ["item1", "item2"])
func TokensForStringList(items []string) hclwrite.Tokens {
	values := make([]cty.Value, len(items))
	for i, item := range items {
		values[i] = cty.StringVal(item)
	}

	return hclwrite.TokensForValue(cty.ListVal(values))
}

// TokensForFunctionCall creates tokens for a function call
// e.g., base64encode("${var.key}:${var.secret}")
func TokensForFunctionCall(functionName string, args ...hclwrite.Tokens) hclwrite.Tokens {
	tokens := hclwrite.Tokens{
		&hclwrite.Token{Type: hclsyntax.TokenIdent, Bytes: []byte(functionName)},
		&hclwrite.Token{Type: hclsyntax.TokenOParen, Bytes: []byte("(")},
	}

	for i, arg := range args {
		if i > 0 {
			tokens = append(tokens, &hclwrite.Token{Type: hclsyntax.TokenComma, Bytes: []byte(", ")})
		}
		tokens = append(tokens, arg...)
	}

	tokens = append(tokens, &hclwrite.Token{Type: hclsyntax.TokenCParen, Bytes: []byte(")")})
	return tokens
}

// TokensForMap creates tokens for a map/object with string keys and token values
// e.g., { key1 = value1, key2 = value2 }
func TokensForMap(entries map[string]hclwrite.Tokens) hclwrite.Tokens {
	tokens := hclwrite.Tokens{
		&hclwrite.Token{Type: hclsyntax.TokenOBrace, Bytes: []byte("{")},
		&hclwrite.Token{Type: hclsyntax.TokenNewline, Bytes: []byte("\n")},
	}

	for key, valueTokens := range entries {
		tokens = append(tokens, &hclwrite.Token{Type: hclsyntax.TokenIdent, Bytes: []byte(key)})
		tokens = append(tokens, &hclwrite.Token{Type: hclsyntax.TokenEqual, Bytes: []byte(" = ")})
		tokens = append(tokens, valueTokens...)
		tokens = append(tokens, &hclwrite.Token{Type: hclsyntax.TokenNewline, Bytes: []byte("\n")})
	}

	tokens = append(tokens, &hclwrite.Token{Type: hclsyntax.TokenCBrace, Bytes: []byte("}")})
	return tokens
}

// TokensForConditional creates tokens for a ternary expression (condition ? trueVal : falseVal)
func TokensForConditional(condition, trueResult, falseResult hclwrite.Tokens) hclwrite.Tokens {
	tokens := hclwrite.Tokens{}
	tokens = append(tokens, condition...)
	tokens = append(tokens, &hclwrite.Token{Type: hclsyntax.TokenQuestion, Bytes: []byte(" ? ")})
	tokens = append(tokens, trueResult...)
	tokens = append(tokens, &hclwrite.Token{Type: hclsyntax.TokenColon, Bytes: []byte(" : ")})
	tokens = append(tokens, falseResult...)
	return tokens
}

// TokensForTagsMerge creates tokens for the tag contract applied to every
// generated resource: merge(var.tags, { Name = "<name_prefix>-<suffix>" }).
// The Name entry interpolates the name_prefix variable at apply time.
func TokensForTagsMerge(nameSuffix string) hclwrite.Tokens {
	nameTokens := TokensForStringTemplate(fmt.Sprintf("${var.name_prefix}-%s", nameSuffix))
	return TokensForFunctionCall(
		"merge",
		TokensForVarReference("tags"),
		TokensForMap(map[string]hclwrite.Tokens{"Name": nameTokens}),
	)
}

// TokensForCountConditional creates tokens for the `count = var.x ? 1 : 0`
// meta-argument used to toggle optional resources.
func TokensForCountConditional(boolVarName string) hclwrite.Tokens {
	return TokensForConditional(
		TokensForVarReference(boolVarName),
		hclwrite.TokensForValue(cty.NumberIntVal(1)),
		hclwrite.TokensForValue(cty.NumberIntVal(0)),
	)
}

// AppendComment appends a full-line `# ...` comment to a file body. Used for
// the production tfvars credential note.
func AppendComment(body *hclwrite.Body, comment string) {
	body.AppendUnstructuredTokens(hclwrite.Tokens{
		&hclwrite.Token{Type: hclsyntax.TokenComment, Bytes: []byte("# " + comment + "\n")},
	})
}

// ConvertToCtyValue converts common Go types to cty.Value, returning
// cty.NilVal for unsupported types.
func ConvertToCtyValue(value any) cty.Value {
	switch v := value.(type) {
	case string:
		return cty.StringVal(v)
	case bool:
		return cty.BoolVal(v)
	case int:
		return cty.NumberIntVal(int64(v))
	case int64:
		return cty.NumberIntVal(v)
	case float64:
		return cty.NumberFloatVal(v)
	case []string:
		if len(v) == 0 {
			return cty.ListValEmpty(cty.String)
		}
		values := make([]cty.Value, len(v))
		for i, s := range v {
			values[i] = cty.StringVal(s)
		}
		return cty.ListVal(values)
	case map[string]string:
		if len(v) == 0 {
			return cty.MapValEmpty(cty.String)
		}
		values := make(map[string]cty.Value, len(v))
		for key, s := range v {
			values[key] = cty.StringVal(s)
		}
		return cty.MapVal(values)
	default:
		return cty.NilVal
	}
}
