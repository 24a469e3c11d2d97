package aws

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/shopfront/sfp/internal/utils"
	"github.com/zclconf/go-cty/cty"
)

func GenerateVpcResource(tfResourceName, cidrVarName string) *hclwrite.Block {
	vpcBlock := hclwrite.NewBlock("resource", []string{"aws_vpc", tfResourceName})
	vpcBlock.Body().SetAttributeRaw("cidr_block", utils.TokensForVarReference(cidrVarName))
	vpcBlock.Body().SetAttributeValue("enable_dns_support", cty.BoolVal(true))
	vpcBlock.Body().SetAttributeValue("enable_dns_hostnames", cty.BoolVal(true))
	vpcBlock.Body().AppendNewline()
	vpcBlock.Body().SetAttributeRaw("tags", utils.TokensForTagsMerge("vpc"))

	return vpcBlock
}

func GetVpcIdReference(tfResourceName string) string {
	return fmt.Sprintf("aws_vpc.%s.id", tfResourceName)
}
