package aws

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/shopfront/sfp/internal/utils"
)

func GenerateDbSubnetGroupResource(tfResourceName, subnetIdsVarName string) *hclwrite.Block {
	subnetGroupBlock := hclwrite.NewBlock("resource", []string{"aws_db_subnet_group", tfResourceName})
	body := subnetGroupBlock.Body()

	body.SetAttributeRaw("name", utils.TokensForStringTemplate("${var.name_prefix}-db-subnets"))
	body.SetAttributeRaw("subnet_ids", utils.TokensForVarReference(subnetIdsVarName))
	body.AppendNewline()
	body.SetAttributeRaw("tags", utils.TokensForTagsMerge("db-subnets"))

	return subnetGroupBlock
}

// GenerateDbInstanceResource generates the RDS instance. Engine, sizing,
// multi-AZ, backup retention, and deletion protection all come from
// variables so the same module serves every overlay. The final snapshot is
// skipped only when deletion protection is off.
func GenerateDbInstanceResource(tfResourceName, subnetGroupNameRef, securityGroupIdVarName string) *hclwrite.Block {
	dbBlock := hclwrite.NewBlock("resource", []string{"aws_db_instance", tfResourceName})
	body := dbBlock.Body()

	body.SetAttributeRaw("identifier", utils.TokensForStringTemplate("${var.name_prefix}-db"))
	body.SetAttributeRaw("engine", utils.TokensForVarReference("db_engine"))
	body.SetAttributeRaw("engine_version", utils.TokensForVarReference("db_engine_version"))
	body.SetAttributeRaw("instance_class", utils.TokensForVarReference("db_instance_class"))
	body.SetAttributeRaw("allocated_storage", utils.TokensForVarReference("db_allocated_storage"))
	body.AppendNewline()

	body.SetAttributeRaw("db_name", utils.TokensForVarReference("db_name"))
	body.SetAttributeRaw("username", utils.TokensForVarReference("db_username"))
	body.SetAttributeRaw("password", utils.TokensForVarReference("db_password"))
	body.SetAttributeRaw("port", utils.TokensForVarReference("db_port"))
	body.AppendNewline()

	body.SetAttributeRaw("db_subnet_group_name", utils.TokensForResourceReference(subnetGroupNameRef))
	body.SetAttributeRaw("vpc_security_group_ids", utils.TokensForList([]string{"var." + securityGroupIdVarName}))
	body.AppendNewline()

	body.SetAttributeRaw("multi_az", utils.TokensForVarReference("db_multi_az"))
	body.SetAttributeRaw("backup_retention_period", utils.TokensForVarReference("db_backup_retention_days"))
	body.SetAttributeRaw("deletion_protection", utils.TokensForVarReference("enable_deletion_protection"))
	body.SetAttributeRaw("skip_final_snapshot", utils.TokensForResourceReference("!var.enable_deletion_protection"))
	body.AppendNewline()

	body.SetAttributeRaw("tags", utils.TokensForTagsMerge("db"))

	return dbBlock
}

func GetDbSubnetGroupNameReference(tfResourceName string) string {
	return fmt.Sprintf("aws_db_subnet_group.%s.name", tfResourceName)
}

func GetDbEndpointReference(tfResourceName string) string {
	return fmt.Sprintf("aws_db_instance.%s.endpoint", tfResourceName)
}

func GetDbIdentifierReference(tfResourceName string) string {
	return fmt.Sprintf("aws_db_instance.%s.identifier", tfResourceName)
}
