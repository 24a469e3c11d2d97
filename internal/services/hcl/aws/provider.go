package aws

import (
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/shopfront/sfp/internal/utils"
)

func GenerateRequiredProviderTokens() (string, hclwrite.Tokens) {
	awsProvider := map[string]hclwrite.Tokens{
		"source":  utils.TokensForStringTemplate("hashicorp/aws"),
		"version": utils.TokensForStringTemplate("~> 6.0"),
	}

	return "aws", utils.TokensForMap(awsProvider)
}

// GenerateProviderBlockWithVar produces a provider block whose region comes
// from the root aws_region variable, so the same composition serves every
// environment overlay.
func GenerateProviderBlockWithVar() *hclwrite.Block {
	providerBlock := hclwrite.NewBlock("provider", []string{"aws"})
	providerBlock.Body().SetAttributeRaw("region", utils.TokensForVarReference("aws_region"))

	defaultTagsBlock := providerBlock.Body().AppendNewBlock("default_tags", nil)
	defaultTagsBlock.Body().SetAttributeRaw("tags", utils.TokensForVarReference("tags"))

	return providerBlock
}
