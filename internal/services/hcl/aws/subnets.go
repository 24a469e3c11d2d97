package aws

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/shopfront/sfp/internal/utils"
	"github.com/zclconf/go-cty/cty"
)

// GenerateSubnetResourceWithCount generates a subnet resource with a `count`
// meta-argument iterating over a list variable of CIDR ranges, one subnet per
// availability zone.
func GenerateSubnetResourceWithCount(tfResourceName, subnetCidrsVarName, availabilityZonesVarName, vpcIdRef, nameSuffix string, mapPublicIp bool) *hclwrite.Block {
	subnetBlock := hclwrite.NewBlock("resource", []string{"aws_subnet", tfResourceName})
	body := subnetBlock.Body()

	body.SetAttributeRaw("count", utils.TokensForResourceReference(fmt.Sprintf("length(var.%s)", subnetCidrsVarName)))
	body.AppendNewline()

	body.SetAttributeRaw("vpc_id", utils.TokensForResourceReference(vpcIdRef))
	body.SetAttributeRaw("cidr_block", utils.TokensForResourceReference(fmt.Sprintf("var.%s[count.index]", subnetCidrsVarName)))
	body.SetAttributeRaw("availability_zone", utils.TokensForResourceReference(fmt.Sprintf("var.%s[count.index]", availabilityZonesVarName)))
	if mapPublicIp {
		body.SetAttributeValue("map_public_ip_on_launch", cty.BoolVal(true))
	}
	body.AppendNewline()

	body.SetAttributeRaw("tags", utils.TokensForTagsMerge(fmt.Sprintf("%s-${count.index}", nameSuffix)))

	return subnetBlock
}

// GetSubnetIdsReference returns the splat expression for every subnet id in a
// counted subnet resource.
func GetSubnetIdsReference(tfResourceName string) string {
	return fmt.Sprintf("aws_subnet.%s[*].id", tfResourceName)
}
