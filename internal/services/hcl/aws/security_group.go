package aws

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/shopfront/sfp/internal/utils"
	"github.com/zclconf/go-cty/cty"
)

// Well-known ports used by the generated security group rules.
const (
	HTTPPort    = 80
	HTTPSPort   = 443
	SSHPort     = 22
	AppTierPort = 8080
)

// SecurityGroupRule describes one ingress rule. Exactly one of
// SourceSecurityGroupRef (an HCL expression yielding a security group id),
// CidrBlocksRef (an HCL expression yielding a list of CIDRs), or CidrBlocks
// (literal CIDRs) should be set. When PortVarName is set the rule's ports
// come from that variable instead of the literal FromPort/ToPort.
type SecurityGroupRule struct {
	Description            string
	FromPort               int
	ToPort                 int
	PortVarName            string
	Protocol               string
	SourceSecurityGroupRef string
	CidrBlocksRef          string
	CidrBlocks             []string
}

// GenerateSecurityGroup generates a VPC-scoped security group with the given
// ingress rules, an allow-all egress rule, and the standard tag merge.
func GenerateSecurityGroup(tfResourceName, nameSuffix, description, vpcIdRef string, ingress []SecurityGroupRule) *hclwrite.Block {
	return generateSecurityGroup(tfResourceName, nameSuffix, description, vpcIdRef, "", ingress)
}

// GenerateConditionalSecurityGroup is GenerateSecurityGroup with a count
// toggle, for groups that only exist in some environments (bastion).
func GenerateConditionalSecurityGroup(tfResourceName, nameSuffix, description, vpcIdRef, enableVarName string, ingress []SecurityGroupRule) *hclwrite.Block {
	return generateSecurityGroup(tfResourceName, nameSuffix, description, vpcIdRef, enableVarName, ingress)
}

func generateSecurityGroup(tfResourceName, nameSuffix, description, vpcIdRef, enableVarName string, ingress []SecurityGroupRule) *hclwrite.Block {
	securityGroupBlock := hclwrite.NewBlock("resource", []string{"aws_security_group", tfResourceName})
	body := securityGroupBlock.Body()

	if enableVarName != "" {
		body.SetAttributeRaw("count", utils.TokensForCountConditional(enableVarName))
		body.AppendNewline()
	}

	body.SetAttributeRaw("name", utils.TokensForStringTemplate(fmt.Sprintf("${var.name_prefix}-%s", nameSuffix)))
	body.SetAttributeValue("description", cty.StringVal(description))
	body.SetAttributeRaw("vpc_id", utils.TokensForResourceReference(vpcIdRef))
	body.AppendNewline()

	for _, rule := range ingress {
		ingressBlock := hclwrite.NewBlock("ingress", nil)
		ingressBody := ingressBlock.Body()

		ingressBody.SetAttributeValue("description", cty.StringVal(rule.Description))
		if rule.PortVarName != "" {
			ingressBody.SetAttributeRaw("from_port", utils.TokensForVarReference(rule.PortVarName))
			ingressBody.SetAttributeRaw("to_port", utils.TokensForVarReference(rule.PortVarName))
		} else {
			ingressBody.SetAttributeValue("from_port", cty.NumberIntVal(int64(rule.FromPort)))
			ingressBody.SetAttributeValue("to_port", cty.NumberIntVal(int64(rule.ToPort)))
		}
		ingressBody.SetAttributeValue("protocol", cty.StringVal(rule.Protocol))

		switch {
		case rule.SourceSecurityGroupRef != "":
			ingressBody.SetAttributeRaw("security_groups", utils.TokensForList([]string{rule.SourceSecurityGroupRef}))
		case rule.CidrBlocksRef != "":
			ingressBody.SetAttributeRaw("cidr_blocks", utils.TokensForResourceReference(rule.CidrBlocksRef))
		default:
			ingressBody.SetAttributeRaw("cidr_blocks", utils.TokensForStringList(rule.CidrBlocks))
		}

		body.AppendBlock(ingressBlock)
		body.AppendNewline()
	}

	egressBlock := hclwrite.NewBlock("egress", nil)
	egressBody := egressBlock.Body()
	egressBody.SetAttributeValue("description", cty.StringVal("Allow all outbound traffic"))
	egressBody.SetAttributeValue("from_port", cty.NumberIntVal(0))
	egressBody.SetAttributeValue("to_port", cty.NumberIntVal(0))
	egressBody.SetAttributeValue("protocol", cty.StringVal("-1"))
	egressBody.SetAttributeValue("cidr_blocks", cty.ListVal([]cty.Value{cty.StringVal("0.0.0.0/0")}))
	body.AppendBlock(egressBlock)
	body.AppendNewline()

	body.SetAttributeRaw("tags", utils.TokensForTagsMerge(nameSuffix))

	return securityGroupBlock
}

// GenerateConditionalSecurityGroupRule generates a standalone
// aws_security_group_rule toggled by a boolean variable. Standalone rules let
// an always-present group accept traffic from a count-toggled one without
// referencing a resource that may not exist.
func GenerateConditionalSecurityGroupRule(tfResourceName, enableVarName, description string, port int, sourceSecurityGroupRef, targetSecurityGroupRef string) *hclwrite.Block {
	ruleBlock := hclwrite.NewBlock("resource", []string{"aws_security_group_rule", tfResourceName})
	body := ruleBlock.Body()

	body.SetAttributeRaw("count", utils.TokensForCountConditional(enableVarName))
	body.AppendNewline()

	body.SetAttributeValue("type", cty.StringVal("ingress"))
	body.SetAttributeValue("description", cty.StringVal(description))
	body.SetAttributeValue("from_port", cty.NumberIntVal(int64(port)))
	body.SetAttributeValue("to_port", cty.NumberIntVal(int64(port)))
	body.SetAttributeValue("protocol", cty.StringVal("tcp"))
	body.SetAttributeRaw("source_security_group_id", utils.TokensForResourceReference(sourceSecurityGroupRef))
	body.SetAttributeRaw("security_group_id", utils.TokensForResourceReference(targetSecurityGroupRef))

	return ruleBlock
}

func GetSecurityGroupIdReference(tfResourceName string) string {
	return fmt.Sprintf("aws_security_group.%s.id", tfResourceName)
}

// GetConditionalSecurityGroupIdReference returns the id of a count-toggled
// security group, or null when the group is disabled.
func GetConditionalSecurityGroupIdReference(tfResourceName string) string {
	return fmt.Sprintf("one(aws_security_group.%s[*].id)", tfResourceName)
}
