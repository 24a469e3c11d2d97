package aws

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/shopfront/sfp/internal/utils"
	"github.com/zclconf/go-cty/cty"
)

// GenerateAutoscalingGroupResource generates one tier's autoscaling group
// bound to that tier's launch template and subnets. Fleet size bounds come
// from the tier's min/desired/max variables.
func GenerateAutoscalingGroupResource(tfResourceName, tierName, launchTemplateIdRef, subnetIdsVarName, minSizeVarName, desiredCapacityVarName, maxSizeVarName string) *hclwrite.Block {
	asgBlock := hclwrite.NewBlock("resource", []string{"aws_autoscaling_group", tfResourceName})
	body := asgBlock.Body()

	body.SetAttributeRaw("name", utils.TokensForStringTemplate(fmt.Sprintf("${var.name_prefix}-%s-asg", tierName)))
	body.SetAttributeRaw("min_size", utils.TokensForVarReference(minSizeVarName))
	body.SetAttributeRaw("desired_capacity", utils.TokensForVarReference(desiredCapacityVarName))
	body.SetAttributeRaw("max_size", utils.TokensForVarReference(maxSizeVarName))
	body.SetAttributeRaw("vpc_zone_identifier", utils.TokensForVarReference(subnetIdsVarName))
	body.SetAttributeValue("health_check_type", cty.StringVal("EC2"))
	body.SetAttributeValue("health_check_grace_period", cty.NumberIntVal(300))
	body.AppendNewline()

	launchTemplateBlock := body.AppendNewBlock("launch_template", nil)
	launchTemplateBlock.Body().SetAttributeRaw("id", utils.TokensForResourceReference(launchTemplateIdRef))
	launchTemplateBlock.Body().SetAttributeValue("version", cty.StringVal("$Latest"))
	body.AppendNewline()

	// ASG tags use repeated tag blocks rather than a map attribute.
	tagBlock := body.AppendNewBlock("tag", nil)
	tagBody := tagBlock.Body()
	tagBody.SetAttributeValue("key", cty.StringVal("Name"))
	tagBody.SetAttributeRaw("value", utils.TokensForStringTemplate(fmt.Sprintf("${var.name_prefix}-%s-asg", tierName)))
	tagBody.SetAttributeValue("propagate_at_launch", cty.BoolVal(true))

	return asgBlock
}

func GetAutoscalingGroupNameReference(tfResourceName string) string {
	return fmt.Sprintf("aws_autoscaling_group.%s.name", tfResourceName)
}
