package aws

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/shopfront/sfp/internal/utils"
	"github.com/zclconf/go-cty/cty"
)

func GenerateRouteTableResource(tfResourceName, vpcIdRef, nameSuffix string) *hclwrite.Block {
	routeTableBlock := hclwrite.NewBlock("resource", []string{"aws_route_table", tfResourceName})
	routeTableBlock.Body().SetAttributeRaw("vpc_id", utils.TokensForResourceReference(vpcIdRef))
	routeTableBlock.Body().AppendNewline()
	routeTableBlock.Body().SetAttributeRaw("tags", utils.TokensForTagsMerge(nameSuffix))

	return routeTableBlock
}

// GenerateRouteResource generates a default route (0.0.0.0/0) through the
// given gateway attribute (gateway_id for an IGW, nat_gateway_id for a NAT).
func GenerateRouteResource(tfResourceName, routeTableIdRef, gatewayAttribute, gatewayIdRef string) *hclwrite.Block {
	routeBlock := hclwrite.NewBlock("resource", []string{"aws_route", tfResourceName})
	routeBlock.Body().SetAttributeRaw("route_table_id", utils.TokensForResourceReference(routeTableIdRef))
	routeBlock.Body().SetAttributeValue("destination_cidr_block", cty.StringVal("0.0.0.0/0"))
	routeBlock.Body().SetAttributeRaw(gatewayAttribute, utils.TokensForResourceReference(gatewayIdRef))

	return routeBlock
}

// GenerateConditionalRouteResource is GenerateRouteResource with a count
// toggle, for routes that only exist when their gateway does.
func GenerateConditionalRouteResource(tfResourceName, enableVarName, routeTableIdRef, gatewayAttribute, gatewayIdRef string) *hclwrite.Block {
	routeBlock := hclwrite.NewBlock("resource", []string{"aws_route", tfResourceName})
	routeBlock.Body().SetAttributeRaw("count", utils.TokensForCountConditional(enableVarName))
	routeBlock.Body().AppendNewline()
	routeBlock.Body().SetAttributeRaw("route_table_id", utils.TokensForResourceReference(routeTableIdRef))
	routeBlock.Body().SetAttributeValue("destination_cidr_block", cty.StringVal("0.0.0.0/0"))
	routeBlock.Body().SetAttributeRaw(gatewayAttribute, utils.TokensForResourceReference(gatewayIdRef))

	return routeBlock
}

// GenerateRouteTableAssociationResource associates every subnet of a counted
// subnet resource with the given route table.
func GenerateRouteTableAssociationResource(tfResourceName, subnetResourceName, routeTableIdRef string) *hclwrite.Block {
	associationBlock := hclwrite.NewBlock("resource", []string{"aws_route_table_association", tfResourceName})
	associationBlock.Body().SetAttributeRaw("count", utils.TokensForResourceReference(fmt.Sprintf("length(aws_subnet.%s)", subnetResourceName)))
	associationBlock.Body().AppendNewline()
	associationBlock.Body().SetAttributeRaw("subnet_id", utils.TokensForResourceReference(fmt.Sprintf("aws_subnet.%s[count.index].id", subnetResourceName)))
	associationBlock.Body().SetAttributeRaw("route_table_id", utils.TokensForResourceReference(routeTableIdRef))

	return associationBlock
}
