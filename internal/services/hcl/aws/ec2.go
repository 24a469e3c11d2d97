package aws

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/shopfront/sfp/internal/utils"
	"github.com/zclconf/go-cty/cty"
)

// GenerateBastionInstanceResource generates the optional bastion host: a
// single public instance toggled by a bool variable.
func GenerateBastionInstanceResource(tfResourceName, enableVarName, amiIdVarName, instanceType, subnetIdRef, securityGroupIdVarName, keyNameVarName string) *hclwrite.Block {
	instanceBlock := hclwrite.NewBlock("resource", []string{"aws_instance", tfResourceName})
	body := instanceBlock.Body()

	body.SetAttributeRaw("count", utils.TokensForCountConditional(enableVarName))
	body.AppendNewline()

	body.SetAttributeRaw("ami", utils.TokensForVarReference(amiIdVarName))
	body.SetAttributeValue("instance_type", cty.StringVal(instanceType))
	body.SetAttributeRaw("subnet_id", utils.TokensForResourceReference(subnetIdRef))
	body.SetAttributeRaw("vpc_security_group_ids", utils.TokensForList([]string{"var." + securityGroupIdVarName}))
	body.SetAttributeRaw("key_name", utils.TokensForVarReference(keyNameVarName))
	body.SetAttributeValue("associate_public_ip_address", cty.BoolVal(true))
	body.AppendNewline()

	body.SetAttributeRaw("tags", utils.TokensForTagsMerge("bastion"))

	return instanceBlock
}

// GetBastionPublicIpReference returns the bastion's public IP, or null when
// the host is disabled.
func GetBastionPublicIpReference(tfResourceName string) string {
	return fmt.Sprintf("one(aws_instance.%s[*].public_ip)", tfResourceName)
}
