package aws

import (
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/shopfront/sfp/internal/utils"
	"github.com/zclconf/go-cty/cty"
)

// GenerateEIPResource generates an elastic IP toggled by a bool variable,
// allocated only when the NAT gateway is enabled for the environment.
func GenerateEIPResource(tfResourceName, enableVarName string) *hclwrite.Block {
	eipBlock := hclwrite.NewBlock("resource", []string{"aws_eip", tfResourceName})
	eipBlock.Body().SetAttributeRaw("count", utils.TokensForCountConditional(enableVarName))
	eipBlock.Body().AppendNewline()
	eipBlock.Body().SetAttributeValue("domain", cty.StringVal("vpc"))
	eipBlock.Body().SetAttributeRaw("tags", utils.TokensForTagsMerge("nat-eip"))

	return eipBlock
}

// GenerateNATGatewayResource generates a NAT gateway toggled by a bool
// variable, placed in the first public subnet.
func GenerateNATGatewayResource(tfResourceName, enableVarName, allocationIdRef, subnetIdRef string) *hclwrite.Block {
	natGatewayBlock := hclwrite.NewBlock("resource", []string{"aws_nat_gateway", tfResourceName})
	natGatewayBlock.Body().SetAttributeRaw("count", utils.TokensForCountConditional(enableVarName))
	natGatewayBlock.Body().AppendNewline()
	natGatewayBlock.Body().SetAttributeRaw("allocation_id", utils.TokensForResourceReference(allocationIdRef))
	natGatewayBlock.Body().SetAttributeRaw("subnet_id", utils.TokensForResourceReference(subnetIdRef))
	natGatewayBlock.Body().AppendNewline()
	natGatewayBlock.Body().SetAttributeRaw("tags", utils.TokensForTagsMerge("nat"))

	return natGatewayBlock
}
