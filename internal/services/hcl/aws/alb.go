package aws

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/shopfront/sfp/internal/utils"
	"github.com/zclconf/go-cty/cty"
)

// Target group health check policy. These are fixed across every
// environment: the overlays scale fleets and databases, never health
// semantics.
const (
	HealthCheckPath               = "/"
	HealthCheckMatcher            = "200"
	HealthCheckHealthyThreshold   = 2
	HealthCheckUnhealthyThreshold = 2
	HealthCheckTimeoutSeconds     = 5
	HealthCheckIntervalSeconds    = 30
)

// GenerateLoadBalancerResource generates an internet-facing application load
// balancer in the given subnets.
func GenerateLoadBalancerResource(tfResourceName, securityGroupIdVarName, subnetIdsVarName, deletionProtectionVarName string) *hclwrite.Block {
	lbBlock := hclwrite.NewBlock("resource", []string{"aws_lb", tfResourceName})
	body := lbBlock.Body()

	body.SetAttributeRaw("name", utils.TokensForStringTemplate("${var.name_prefix}-alb"))
	body.SetAttributeValue("internal", cty.BoolVal(false))
	body.SetAttributeValue("load_balancer_type", cty.StringVal("application"))
	body.SetAttributeRaw("security_groups", utils.TokensForList([]string{"var." + securityGroupIdVarName}))
	body.SetAttributeRaw("subnets", utils.TokensForVarReference(subnetIdsVarName))
	body.SetAttributeRaw("enable_deletion_protection", utils.TokensForVarReference(deletionProtectionVarName))
	body.AppendNewline()

	body.SetAttributeRaw("tags", utils.TokensForTagsMerge("alb"))

	return lbBlock
}

// GenerateTargetGroupResource generates the HTTP target group with the fixed
// health check policy.
func GenerateTargetGroupResource(tfResourceName, vpcIdVarName string) *hclwrite.Block {
	targetGroupBlock := hclwrite.NewBlock("resource", []string{"aws_lb_target_group", tfResourceName})
	body := targetGroupBlock.Body()

	body.SetAttributeRaw("name", utils.TokensForStringTemplate("${var.name_prefix}-web-tg"))
	body.SetAttributeValue("port", cty.NumberIntVal(80))
	body.SetAttributeValue("protocol", cty.StringVal("HTTP"))
	body.SetAttributeRaw("vpc_id", utils.TokensForVarReference(vpcIdVarName))
	body.AppendNewline()

	healthCheckBlock := body.AppendNewBlock("health_check", nil)
	healthCheckBody := healthCheckBlock.Body()
	healthCheckBody.SetAttributeValue("path", cty.StringVal(HealthCheckPath))
	healthCheckBody.SetAttributeValue("matcher", cty.StringVal(HealthCheckMatcher))
	healthCheckBody.SetAttributeValue("healthy_threshold", cty.NumberIntVal(HealthCheckHealthyThreshold))
	healthCheckBody.SetAttributeValue("unhealthy_threshold", cty.NumberIntVal(HealthCheckUnhealthyThreshold))
	healthCheckBody.SetAttributeValue("timeout", cty.NumberIntVal(HealthCheckTimeoutSeconds))
	healthCheckBody.SetAttributeValue("interval", cty.NumberIntVal(HealthCheckIntervalSeconds))
	body.AppendNewline()

	body.SetAttributeRaw("tags", utils.TokensForTagsMerge("web-tg"))

	return targetGroupBlock
}

// GenerateListenerResource generates the HTTP :80 listener forwarding all
// traffic to the target group.
func GenerateListenerResource(tfResourceName, loadBalancerArnRef, targetGroupArnRef string) *hclwrite.Block {
	listenerBlock := hclwrite.NewBlock("resource", []string{"aws_lb_listener", tfResourceName})
	body := listenerBlock.Body()

	body.SetAttributeRaw("load_balancer_arn", utils.TokensForResourceReference(loadBalancerArnRef))
	body.SetAttributeValue("port", cty.NumberIntVal(80))
	body.SetAttributeValue("protocol", cty.StringVal("HTTP"))
	body.AppendNewline()

	defaultActionBlock := body.AppendNewBlock("default_action", nil)
	defaultActionBody := defaultActionBlock.Body()
	defaultActionBody.SetAttributeValue("type", cty.StringVal("forward"))
	defaultActionBody.SetAttributeRaw("target_group_arn", utils.TokensForResourceReference(targetGroupArnRef))

	return listenerBlock
}

// GenerateAutoscalingAttachmentResource binds the externally created web ASG
// to the target group.
func GenerateAutoscalingAttachmentResource(tfResourceName, asgNameVarName, targetGroupArnRef string) *hclwrite.Block {
	attachmentBlock := hclwrite.NewBlock("resource", []string{"aws_autoscaling_attachment", tfResourceName})
	attachmentBlock.Body().SetAttributeRaw("autoscaling_group_name", utils.TokensForVarReference(asgNameVarName))
	attachmentBlock.Body().SetAttributeRaw("lb_target_group_arn", utils.TokensForResourceReference(targetGroupArnRef))

	return attachmentBlock
}

func GetLoadBalancerArnReference(tfResourceName string) string {
	return fmt.Sprintf("aws_lb.%s.arn", tfResourceName)
}

func GetLoadBalancerDnsNameReference(tfResourceName string) string {
	return fmt.Sprintf("aws_lb.%s.dns_name", tfResourceName)
}

func GetLoadBalancerZoneIdReference(tfResourceName string) string {
	return fmt.Sprintf("aws_lb.%s.zone_id", tfResourceName)
}

func GetTargetGroupArnReference(tfResourceName string) string {
	return fmt.Sprintf("aws_lb_target_group.%s.arn", tfResourceName)
}
