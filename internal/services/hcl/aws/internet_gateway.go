package aws

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/shopfront/sfp/internal/utils"
)

func GenerateInternetGatewayResource(tfResourceName, vpcIdRef string) *hclwrite.Block {
	internetGatewayBlock := hclwrite.NewBlock("resource", []string{"aws_internet_gateway", tfResourceName})
	internetGatewayBlock.Body().SetAttributeRaw("vpc_id", utils.TokensForResourceReference(vpcIdRef))
	internetGatewayBlock.Body().AppendNewline()
	internetGatewayBlock.Body().SetAttributeRaw("tags", utils.TokensForTagsMerge("igw"))

	return internetGatewayBlock
}

func GetInternetGatewayReference(tfResourceName string) string {
	return fmt.Sprintf("aws_internet_gateway.%s.id", tfResourceName)
}
