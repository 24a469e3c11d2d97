package aws

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/shopfront/sfp/internal/utils"
	"github.com/zclconf/go-cty/cty"
)

// GenerateLaunchTemplateResource generates one tier's launch template. The
// user data is rendered at apply time from a template file shipped alongside
// the module, with the database endpoint passed through as a template
// argument.
func GenerateLaunchTemplateResource(tfResourceName, tierName, amiIdVarName, instanceTypeVarName, securityGroupIdsVarName, keyNameVarName, userDataTemplatePath string, userDataArgs map[string]hclwrite.Tokens) *hclwrite.Block {
	launchTemplateBlock := hclwrite.NewBlock("resource", []string{"aws_launch_template", tfResourceName})
	body := launchTemplateBlock.Body()

	body.SetAttributeRaw("name_prefix", utils.TokensForStringTemplate(fmt.Sprintf("${var.name_prefix}-%s-", tierName)))
	body.SetAttributeRaw("image_id", utils.TokensForVarReference(amiIdVarName))
	body.SetAttributeRaw("instance_type", utils.TokensForVarReference(instanceTypeVarName))
	body.SetAttributeRaw("vpc_security_group_ids", utils.TokensForVarReference(securityGroupIdsVarName))
	body.SetAttributeRaw("key_name", utils.TokensForVarReference(keyNameVarName))
	body.AppendNewline()

	templatefileTokens := utils.TokensForFunctionCall(
		"templatefile",
		utils.TokensForStringTemplate(fmt.Sprintf("${path.module}/%s", userDataTemplatePath)),
		utils.TokensForMap(userDataArgs),
	)
	body.SetAttributeRaw("user_data", utils.TokensForFunctionCall("base64encode", templatefileTokens))
	body.AppendNewline()

	tagSpecBlock := body.AppendNewBlock("tag_specifications", nil)
	tagSpecBody := tagSpecBlock.Body()
	tagSpecBody.SetAttributeValue("resource_type", cty.StringVal("instance"))
	tagSpecBody.SetAttributeRaw("tags", utils.TokensForTagsMerge(tierName))

	return launchTemplateBlock
}

func GetLaunchTemplateIdReference(tfResourceName string) string {
	return fmt.Sprintf("aws_launch_template.%s.id", tfResourceName)
}
