package hcl

import (
	_ "embed"
	"fmt"
	"slices"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/shopfront/sfp/internal/services/hcl/aws"
	"github.com/shopfront/sfp/internal/services/hcl/modules"
	"github.com/shopfront/sfp/internal/types"
	"github.com/shopfront/sfp/internal/utils"
	"github.com/zclconf/go-cty/cty"
)

//go:embed templates/web_user_data.sh.tpl
var webUserDataTemplate string

//go:embed templates/app_user_data.sh.tpl
var appUserDataTemplate string

// Generated module names, matching the module block labels in the root
// composition and the directories under modules/.
const (
	NetworkModuleName      = "network"
	SecurityModuleName     = "security"
	ComputeModuleName      = "compute"
	LoadBalancerModuleName = "load_balancer"
	DatabaseModuleName     = "database"
)

const (
	webUserDataTemplatePath = "templates/web_user_data.sh.tpl"
	appUserDataTemplatePath = "templates/app_user_data.sh.tpl"

	bastionInstanceType = "t3.micro"
)

type TerraformResourceNames struct {
	// network
	Vpc                     string
	PublicSubnets           string
	PrivateSubnets          string
	InternetGateway         string
	NatEip                  string
	NatGateway              string
	PublicRouteTable        string
	PrivateRouteTable       string
	PublicInternetRoute     string
	PrivateNatRoute         string
	PublicRouteAssociation  string
	PrivateRouteAssociation string

	// security
	AlbSecurityGroup      string
	WebSecurityGroup      string
	AppSecurityGroup      string
	DatabaseSecurityGroup string
	BastionSecurityGroup  string
	WebBastionSshRule     string
	AppBastionSshRule     string

	// compute
	WebTier string
	AppTier string
	Bastion string

	// load balancer
	LoadBalancer   string
	WebTargetGroup string
	WebListener    string
	WebAttachment  string

	// database
	DbSubnetGroup string
	DbInstance    string
}

// NewTerraformResourceNames returns the resource names the generated modules
// use. The module output definitions reference the same names, so these are
// fixed rather than configurable.
func NewTerraformResourceNames() TerraformResourceNames {
	return TerraformResourceNames{
		Vpc:                     "main",
		PublicSubnets:           "public",
		PrivateSubnets:          "private",
		InternetGateway:         "main",
		NatEip:                  "nat",
		NatGateway:              "main",
		PublicRouteTable:        "public",
		PrivateRouteTable:       "private",
		PublicInternetRoute:     "public_internet",
		PrivateNatRoute:         "private_nat",
		PublicRouteAssociation:  "public",
		PrivateRouteAssociation: "private",

		AlbSecurityGroup:      "alb",
		WebSecurityGroup:      "web",
		AppSecurityGroup:      "app",
		DatabaseSecurityGroup: "database",
		BastionSecurityGroup:  "bastion",
		WebBastionSshRule:     "web_bastion_ssh",
		AppBastionSshRule:     "app_bastion_ssh",

		WebTier: "web",
		AppTier: "app",
		Bastion: "bastion",

		LoadBalancer:   "main",
		WebTargetGroup: "web",
		WebListener:    "web",
		WebAttachment:  "web",

		DbSubnetGroup: "main",
		DbInstance:    "main",
	}
}

// AppInfraHCLService renders a deployment spec into a complete Terraform
// project: one shared set of modules plus the environment's tfvars overlay.
type AppInfraHCLService struct {
	ResourceNames TerraformResourceNames
}

func NewAppInfraHCLService() *AppInfraHCLService {
	return &AppInfraHCLService{
		ResourceNames: NewTerraformResourceNames(),
	}
}

func (ai *AppInfraHCLService) GenerateTerraformProject(spec types.DeploymentSpec) types.TerraformProject {
	requiredModules := []types.TerraformModule{
		{
			Name:        NetworkModuleName,
			MainTf:      ai.generateNetworkModuleMainTf(),
			VariablesTf: ai.generateVariablesTf(modules.GetNetworkModuleVariableDefinitions(spec)),
			OutputsTf:   ai.generateOutputsTf(modules.GetNetworkOutputs()),
		},
		{
			Name:        SecurityModuleName,
			MainTf:      ai.generateSecurityModuleMainTf(),
			VariablesTf: ai.generateVariablesTf(modules.GetSecurityModuleVariableDefinitions(spec)),
			OutputsTf:   ai.generateOutputsTf(modules.GetSecurityOutputs()),
		},
		{
			Name:        ComputeModuleName,
			MainTf:      ai.generateComputeModuleMainTf(),
			VariablesTf: ai.generateVariablesTf(modules.GetComputeModuleVariableDefinitions(spec)),
			OutputsTf:   ai.generateOutputsTf(modules.GetComputeOutputs()),
			Templates: map[string]string{
				webUserDataTemplatePath: webUserDataTemplate,
				appUserDataTemplatePath: appUserDataTemplate,
			},
		},
		{
			Name:        LoadBalancerModuleName,
			MainTf:      ai.generateLoadBalancerModuleMainTf(),
			VariablesTf: ai.generateVariablesTf(modules.GetLoadBalancerModuleVariableDefinitions(spec)),
			OutputsTf:   ai.generateOutputsTf(modules.GetLoadBalancerOutputs()),
		},
		{
			Name:        DatabaseModuleName,
			MainTf:      ai.generateDatabaseModuleMainTf(),
			VariablesTf: ai.generateVariablesTf(modules.GetDatabaseModuleVariableDefinitions(spec)),
			OutputsTf:   ai.generateOutputsTf(modules.GetDatabaseOutputs()),
		},
	}

	return types.TerraformProject{
		MainTf:      ai.generateRootMainTf(spec),
		ProvidersTf: ai.generateRootProvidersTf(),
		VariablesTf: ai.generateVariablesTf(modules.GetRootVariableDefinitions(spec)),
		OutputsTf:   ai.generateRootOutputsTf(),
		Tfvars:      ai.generateTfvars(spec),
		Environment: spec.Environment,
		Modules:     requiredModules,
	}
}

// ============================================================================
// Root-Level Generation
// ============================================================================

func (ai *AppInfraHCLService) generateRootMainTf(spec types.DeploymentSpec) string {
	f := hclwrite.NewEmptyFile()
	rootBody := f.Body()

	moduleDefinitions := []struct {
		name string
		vars []modules.ModuleVariable[types.DeploymentSpec]
	}{
		{NetworkModuleName, modules.GetNetworkVariables()},
		{SecurityModuleName, modules.GetSecurityVariables()},
		{ComputeModuleName, modules.GetComputeVariables()},
		{LoadBalancerModuleName, modules.GetLoadBalancerVariables()},
		{DatabaseModuleName, modules.GetDatabaseVariables()},
	}

	for i, moduleDef := range moduleDefinitions {
		if i > 0 {
			rootBody.AppendNewline()
		}

		moduleBlock := rootBody.AppendNewBlock("module", []string{moduleDef.name})
		moduleBody := moduleBlock.Body()

		moduleBody.SetAttributeValue("source", cty.StringVal(fmt.Sprintf("./modules/%s", moduleDef.name)))
		moduleBody.AppendNewline()

		seen := make(map[string]bool)
		for _, varDef := range moduleDef.vars {
			if varDef.Condition != nil && !varDef.Condition(spec) {
				continue
			}
			if seen[varDef.Name] {
				continue
			}
			seen[varDef.Name] = true

			if varDef.FromModuleOutput != "" {
				moduleBody.SetAttributeRaw(varDef.Name, utils.TokensForResourceReference(varDef.FromModuleOutput))
			} else {
				moduleBody.SetAttributeRaw(varDef.Name, utils.TokensForVarReference(varDef.Name))
			}
		}
	}

	return string(f.Bytes())
}

func (ai *AppInfraHCLService) generateRootProvidersTf() string {
	f := hclwrite.NewEmptyFile()
	rootBody := f.Body()

	terraformBlock := rootBody.AppendNewBlock("terraform", nil)
	terraformBody := terraformBlock.Body()
	terraformBody.SetAttributeValue("required_version", cty.StringVal(">= 1.5.0"))
	terraformBody.AppendNewline()

	requiredProvidersBlock := terraformBody.AppendNewBlock("required_providers", nil)
	requiredProvidersBlock.Body().SetAttributeRaw(aws.GenerateRequiredProviderTokens())
	rootBody.AppendNewline()

	rootBody.AppendBlock(aws.GenerateProviderBlockWithVar())
	rootBody.AppendNewline()

	return string(f.Bytes())
}

func (ai *AppInfraHCLService) generateVariablesTf(tfVariables []types.TerraformVariable) string {
	f := hclwrite.NewEmptyFile()
	rootBody := f.Body()

	seenVariables := make(map[string]bool)

	for _, v := range tfVariables {
		if seenVariables[v.Name] {
			continue
		}
		seenVariables[v.Name] = true

		variableBlock := rootBody.AppendNewBlock("variable", []string{v.Name})
		variableBody := variableBlock.Body()
		variableBody.SetAttributeRaw("type", utils.TokensForResourceReference(v.Type))

		if v.Description != "" {
			variableBody.SetAttributeValue("description", cty.StringVal(v.Description))
		}

		if v.Sensitive {
			variableBody.SetAttributeValue("sensitive", cty.BoolVal(true))
		}

		if v.Default != nil {
			if defaultValue := utils.ConvertToCtyValue(v.Default); defaultValue != cty.NilVal {
				variableBody.SetAttributeValue("default", defaultValue)
			}
		}
		rootBody.AppendNewline()
	}

	return string(f.Bytes())
}

func (ai *AppInfraHCLService) generateTfvars(spec types.DeploymentSpec) string {
	f := hclwrite.NewEmptyFile()
	rootBody := f.Body()

	values := modules.GetRootVariableValues(spec)

	varNames := make([]string, 0, len(values))
	for varName := range values {
		varNames = append(varNames, varName)
	}
	slices.Sort(varNames)

	for _, varName := range varNames {
		if value := utils.ConvertToCtyValue(values[varName]); value != cty.NilVal {
			rootBody.SetAttributeValue(varName, value)
		}
	}

	if spec.Environment.IsProduction() {
		rootBody.AppendNewline()
		utils.AppendComment(rootBody, "db_password is intentionally absent: production credentials are never")
		utils.AppendComment(rootBody, "written to disk. Supply it at apply time, for example:")
		utils.AppendComment(rootBody, `  terraform apply -var-file=environments/prod.tfvars -var "db_password=$DB_PASSWORD"`)
	}

	return string(f.Bytes())
}

func (ai *AppInfraHCLService) generateOutputsTf(tfOutputs []types.TerraformOutput) string {
	f := hclwrite.NewEmptyFile()
	rootBody := f.Body()

	for _, output := range tfOutputs {
		outputBlock := rootBody.AppendNewBlock("output", []string{output.Name})
		outputBody := outputBlock.Body()
		outputBody.SetAttributeRaw("value", utils.TokensForResourceReference(output.Value))

		if output.Description != "" {
			outputBody.SetAttributeValue("description", cty.StringVal(output.Description))
		}
		outputBody.SetAttributeValue("sensitive", cty.BoolVal(output.Sensitive))
		rootBody.AppendNewline()
	}

	return string(f.Bytes())
}

// generateRootOutputsTf re-exports the module outputs external tooling
// consumes: the load balancer endpoint for DNS records, the fleet names for
// deployment automation, and the database identifier for backup tooling.
func (ai *AppInfraHCLService) generateRootOutputsTf() string {
	rootOutputs := []types.TerraformOutput{
		{
			Name:        "vpc_id",
			Value:       fmt.Sprintf("module.%s.vpc_id", NetworkModuleName),
			Description: "ID of the VPC",
		},
		{
			Name:        "alb_dns_name",
			Value:       fmt.Sprintf("module.%s.alb_dns_name", LoadBalancerModuleName),
			Description: "DNS name of the load balancer, consumed by external record management",
		},
		{
			Name:        "alb_zone_id",
			Value:       fmt.Sprintf("module.%s.alb_zone_id", LoadBalancerModuleName),
			Description: "Hosted zone ID of the load balancer, for alias records",
		},
		{
			Name:        "web_asg_name",
			Value:       fmt.Sprintf("module.%s.web_asg_name", ComputeModuleName),
			Description: "Name of the web tier autoscaling group",
		},
		{
			Name:        "app_asg_name",
			Value:       fmt.Sprintf("module.%s.app_asg_name", ComputeModuleName),
			Description: "Name of the application tier autoscaling group",
		},
		{
			Name:        "bastion_public_ip",
			Value:       fmt.Sprintf("module.%s.bastion_public_ip", ComputeModuleName),
			Description: "Public IP of the bastion host, null when disabled",
		},
		{
			Name:        "db_endpoint",
			Value:       fmt.Sprintf("module.%s.db_endpoint", DatabaseModuleName),
			Description: "Connection endpoint of the database",
			Sensitive:   true,
		},
		{
			Name:        "db_identifier",
			Value:       fmt.Sprintf("module.%s.db_identifier", DatabaseModuleName),
			Description: "Identifier of the database instance",
		},
	}

	return ai.generateOutputsTf(rootOutputs)
}

// ============================================================================
// Network Module
// ============================================================================

func (ai *AppInfraHCLService) generateNetworkModuleMainTf() string {
	f := hclwrite.NewEmptyFile()
	rootBody := f.Body()

	vpcIdRef := aws.GetVpcIdReference(ai.ResourceNames.Vpc)

	rootBody.AppendBlock(aws.GenerateVpcResource(ai.ResourceNames.Vpc, "vpc_cidr"))
	rootBody.AppendNewline()

	rootBody.AppendBlock(aws.GenerateSubnetResourceWithCount(ai.ResourceNames.PublicSubnets, "public_subnet_cidrs", "availability_zones", vpcIdRef, "public", true))
	rootBody.AppendNewline()

	rootBody.AppendBlock(aws.GenerateSubnetResourceWithCount(ai.ResourceNames.PrivateSubnets, "private_subnet_cidrs", "availability_zones", vpcIdRef, "private", false))
	rootBody.AppendNewline()

	rootBody.AppendBlock(aws.GenerateInternetGatewayResource(ai.ResourceNames.InternetGateway, vpcIdRef))
	rootBody.AppendNewline()

	rootBody.AppendBlock(aws.GenerateEIPResource(ai.ResourceNames.NatEip, "enable_nat_gateway"))
	rootBody.AppendNewline()

	rootBody.AppendBlock(aws.GenerateNATGatewayResource(
		ai.ResourceNames.NatGateway,
		"enable_nat_gateway",
		fmt.Sprintf("aws_eip.%s[0].id", ai.ResourceNames.NatEip),
		fmt.Sprintf("aws_subnet.%s[0].id", ai.ResourceNames.PublicSubnets),
	))
	rootBody.AppendNewline()

	publicRouteTableIdRef := fmt.Sprintf("aws_route_table.%s.id", ai.ResourceNames.PublicRouteTable)
	rootBody.AppendBlock(aws.GenerateRouteTableResource(ai.ResourceNames.PublicRouteTable, vpcIdRef, "public-rt"))
	rootBody.AppendNewline()

	rootBody.AppendBlock(aws.GenerateRouteResource(
		ai.ResourceNames.PublicInternetRoute,
		publicRouteTableIdRef,
		"gateway_id",
		aws.GetInternetGatewayReference(ai.ResourceNames.InternetGateway),
	))
	rootBody.AppendNewline()

	rootBody.AppendBlock(aws.GenerateRouteTableAssociationResource(ai.ResourceNames.PublicRouteAssociation, ai.ResourceNames.PublicSubnets, publicRouteTableIdRef))
	rootBody.AppendNewline()

	privateRouteTableIdRef := fmt.Sprintf("aws_route_table.%s.id", ai.ResourceNames.PrivateRouteTable)
	rootBody.AppendBlock(aws.GenerateRouteTableResource(ai.ResourceNames.PrivateRouteTable, vpcIdRef, "private-rt"))
	rootBody.AppendNewline()

	rootBody.AppendBlock(aws.GenerateConditionalRouteResource(
		ai.ResourceNames.PrivateNatRoute,
		"enable_nat_gateway",
		privateRouteTableIdRef,
		"nat_gateway_id",
		fmt.Sprintf("aws_nat_gateway.%s[0].id", ai.ResourceNames.NatGateway),
	))
	rootBody.AppendNewline()

	rootBody.AppendBlock(aws.GenerateRouteTableAssociationResource(ai.ResourceNames.PrivateRouteAssociation, ai.ResourceNames.PrivateSubnets, privateRouteTableIdRef))
	rootBody.AppendNewline()

	return string(f.Bytes())
}

// ============================================================================
// Security Module
// ============================================================================

func (ai *AppInfraHCLService) generateSecurityModuleMainTf() string {
	f := hclwrite.NewEmptyFile()
	rootBody := f.Body()

	vpcIdRef := "var.vpc_id"

	rootBody.AppendBlock(aws.GenerateSecurityGroup(
		ai.ResourceNames.AlbSecurityGroup,
		"alb-sg",
		"Public entry point: HTTP and HTTPS from anywhere",
		vpcIdRef,
		[]aws.SecurityGroupRule{
			{
				Description: "HTTP from the internet",
				FromPort:    aws.HTTPPort,
				ToPort:      aws.HTTPPort,
				Protocol:    "tcp",
				CidrBlocks:  []string{"0.0.0.0/0"},
			},
			{
				Description: "HTTPS from the internet",
				FromPort:    aws.HTTPSPort,
				ToPort:      aws.HTTPSPort,
				Protocol:    "tcp",
				CidrBlocks:  []string{"0.0.0.0/0"},
			},
		},
	))
	rootBody.AppendNewline()

	albSecurityGroupIdRef := aws.GetSecurityGroupIdReference(ai.ResourceNames.AlbSecurityGroup)
	rootBody.AppendBlock(aws.GenerateSecurityGroup(
		ai.ResourceNames.WebSecurityGroup,
		"web-sg",
		"Web tier: HTTP from the load balancer only",
		vpcIdRef,
		[]aws.SecurityGroupRule{
			{
				Description:            "HTTP from the load balancer",
				FromPort:               aws.HTTPPort,
				ToPort:                 aws.HTTPPort,
				Protocol:               "tcp",
				SourceSecurityGroupRef: albSecurityGroupIdRef,
			},
		},
	))
	rootBody.AppendNewline()

	webSecurityGroupIdRef := aws.GetSecurityGroupIdReference(ai.ResourceNames.WebSecurityGroup)
	rootBody.AppendBlock(aws.GenerateSecurityGroup(
		ai.ResourceNames.AppSecurityGroup,
		"app-sg",
		"Application tier: traffic from the web tier only",
		vpcIdRef,
		[]aws.SecurityGroupRule{
			{
				Description:            "Application port from the web tier",
				FromPort:               aws.AppTierPort,
				ToPort:                 aws.AppTierPort,
				Protocol:               "tcp",
				SourceSecurityGroupRef: webSecurityGroupIdRef,
			},
		},
	))
	rootBody.AppendNewline()

	appSecurityGroupIdRef := aws.GetSecurityGroupIdReference(ai.ResourceNames.AppSecurityGroup)
	rootBody.AppendBlock(aws.GenerateSecurityGroup(
		ai.ResourceNames.DatabaseSecurityGroup,
		"db-sg",
		"Database: traffic from the application tier only",
		vpcIdRef,
		[]aws.SecurityGroupRule{
			{
				Description:            "Database port from the application tier",
				PortVarName:            "db_port",
				Protocol:               "tcp",
				SourceSecurityGroupRef: appSecurityGroupIdRef,
			},
		},
	))
	rootBody.AppendNewline()

	rootBody.AppendBlock(aws.GenerateConditionalSecurityGroup(
		ai.ResourceNames.BastionSecurityGroup,
		"bastion-sg",
		"Bastion host: SSH from the allow-listed CIDRs only",
		vpcIdRef,
		"enable_bastion",
		[]aws.SecurityGroupRule{
			{
				Description:   "SSH from operator networks",
				FromPort:      aws.SSHPort,
				ToPort:        aws.SSHPort,
				Protocol:      "tcp",
				CidrBlocksRef: "var.bastion_allowed_cidrs",
			},
		},
	))
	rootBody.AppendNewline()

	// Standalone rules so the always-present tier groups can reference the
	// count-toggled bastion group without breaking when it is absent.
	bastionSecurityGroupIdRef := fmt.Sprintf("aws_security_group.%s[0].id", ai.ResourceNames.BastionSecurityGroup)
	rootBody.AppendBlock(aws.GenerateConditionalSecurityGroupRule(
		ai.ResourceNames.WebBastionSshRule,
		"enable_bastion",
		"SSH from the bastion host",
		aws.SSHPort,
		bastionSecurityGroupIdRef,
		webSecurityGroupIdRef,
	))
	rootBody.AppendNewline()

	rootBody.AppendBlock(aws.GenerateConditionalSecurityGroupRule(
		ai.ResourceNames.AppBastionSshRule,
		"enable_bastion",
		"SSH from the bastion host",
		aws.SSHPort,
		bastionSecurityGroupIdRef,
		appSecurityGroupIdRef,
	))
	rootBody.AppendNewline()

	return string(f.Bytes())
}

// ============================================================================
// Compute Module
// ============================================================================

func (ai *AppInfraHCLService) generateComputeModuleMainTf() string {
	f := hclwrite.NewEmptyFile()
	rootBody := f.Body()

	rootBody.AppendBlock(aws.GenerateLaunchTemplateResource(
		ai.ResourceNames.WebTier,
		string(types.TierWeb),
		"ami_id",
		"web_instance_type",
		"web_security_group_ids",
		"key_name",
		webUserDataTemplatePath,
		map[string]hclwrite.Tokens{
			"app_port": hclwrite.TokensForValue(cty.NumberIntVal(aws.AppTierPort)),
		},
	))
	rootBody.AppendNewline()

	rootBody.AppendBlock(aws.GenerateAutoscalingGroupResource(
		ai.ResourceNames.WebTier,
		string(types.TierWeb),
		aws.GetLaunchTemplateIdReference(ai.ResourceNames.WebTier),
		"web_subnet_ids",
		"web_min_size",
		"web_desired_capacity",
		"web_max_size",
	))
	rootBody.AppendNewline()

	rootBody.AppendBlock(aws.GenerateLaunchTemplateResource(
		ai.ResourceNames.AppTier,
		string(types.TierApp),
		"ami_id",
		"app_instance_type",
		"app_security_group_ids",
		"key_name",
		appUserDataTemplatePath,
		map[string]hclwrite.Tokens{
			"db_endpoint": utils.TokensForVarReference("db_endpoint"),
		},
	))
	rootBody.AppendNewline()

	rootBody.AppendBlock(aws.GenerateAutoscalingGroupResource(
		ai.ResourceNames.AppTier,
		string(types.TierApp),
		aws.GetLaunchTemplateIdReference(ai.ResourceNames.AppTier),
		"app_subnet_ids",
		"app_min_size",
		"app_desired_capacity",
		"app_max_size",
	))
	rootBody.AppendNewline()

	rootBody.AppendBlock(aws.GenerateBastionInstanceResource(
		ai.ResourceNames.Bastion,
		"enable_bastion",
		"ami_id",
		bastionInstanceType,
		"var.bastion_subnet_id",
		"bastion_security_group_id",
		"key_name",
	))
	rootBody.AppendNewline()

	return string(f.Bytes())
}

// ============================================================================
// Load Balancer Module
// ============================================================================

func (ai *AppInfraHCLService) generateLoadBalancerModuleMainTf() string {
	f := hclwrite.NewEmptyFile()
	rootBody := f.Body()

	rootBody.AppendBlock(aws.GenerateLoadBalancerResource(
		ai.ResourceNames.LoadBalancer,
		"alb_security_group_id",
		"public_subnet_ids",
		"enable_deletion_protection",
	))
	rootBody.AppendNewline()

	rootBody.AppendBlock(aws.GenerateTargetGroupResource(ai.ResourceNames.WebTargetGroup, "vpc_id"))
	rootBody.AppendNewline()

	targetGroupArnRef := aws.GetTargetGroupArnReference(ai.ResourceNames.WebTargetGroup)
	rootBody.AppendBlock(aws.GenerateListenerResource(
		ai.ResourceNames.WebListener,
		aws.GetLoadBalancerArnReference(ai.ResourceNames.LoadBalancer),
		targetGroupArnRef,
	))
	rootBody.AppendNewline()

	rootBody.AppendBlock(aws.GenerateAutoscalingAttachmentResource(
		ai.ResourceNames.WebAttachment,
		"web_asg_name",
		targetGroupArnRef,
	))
	rootBody.AppendNewline()

	return string(f.Bytes())
}

// ============================================================================
// Database Module
// ============================================================================

func (ai *AppInfraHCLService) generateDatabaseModuleMainTf() string {
	f := hclwrite.NewEmptyFile()
	rootBody := f.Body()

	rootBody.AppendBlock(aws.GenerateDbSubnetGroupResource(ai.ResourceNames.DbSubnetGroup, "private_subnet_ids"))
	rootBody.AppendNewline()

	rootBody.AppendBlock(aws.GenerateDbInstanceResource(
		ai.ResourceNames.DbInstance,
		aws.GetDbSubnetGroupNameReference(ai.ResourceNames.DbSubnetGroup),
		"database_security_group_id",
	))
	rootBody.AppendNewline()

	return string(f.Bytes())
}
