package discover

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"net"
	"os"
	"slices"
	"strings"
	"text/template"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/shopfront/sfp/internal/types"
)

//go:embed assets
var assetsFS embed.FS

// EC2Api is the slice of the EC2 surface the discoverer needs.
type EC2Api interface {
	DescribeVpcs(ctx context.Context) (*ec2.DescribeVpcsOutput, error)
	DescribeAvailabilityZones(ctx context.Context) (*ec2.DescribeAvailabilityZonesOutput, error)
}

type DiscoverOpts struct {
	Region      string
	Environment types.EnvironmentName
	OutputFile  string
	EC2Service  EC2Api
}

// Discoverer inspects the target AWS account and writes a starter deployment
// spec: availability zones from the region, and a VPC CIDR chosen to avoid
// the CIDRs already in use.
type Discoverer struct {
	region      string
	environment types.EnvironmentName
	outputFile  string
	ec2Service  EC2Api
}

func NewDiscoverer(opts DiscoverOpts) *Discoverer {
	return &Discoverer{
		region:      opts.Region,
		environment: opts.Environment,
		outputFile:  opts.OutputFile,
		ec2Service:  opts.EC2Service,
	}
}

func (d *Discoverer) Run() error {
	slog.Info("🏁 discovering account state", "region", d.region, "environment", d.environment)

	ctx := context.Background()

	zones, err := d.availabilityZones(ctx)
	if err != nil {
		return fmt.Errorf("failed to discover availability zones: %w", err)
	}

	existingCidrs, err := d.existingVpcCidrs(ctx)
	if err != nil {
		return fmt.Errorf("failed to discover VPC CIDRs: %w", err)
	}

	vpcCidr, err := chooseVpcCidr(existingCidrs)
	if err != nil {
		return err
	}
	slog.Info("📋 selected VPC CIDR", "cidr", vpcCidr, "existing_vpcs", len(existingCidrs))

	zoneCount := 2
	if d.environment.IsProduction() {
		zoneCount = 3
	}
	if len(zones) < zoneCount {
		slog.Warn("fewer availability zones than the environment calls for", "wanted", zoneCount, "available", len(zones))
		zoneCount = len(zones)
	}
	zones = zones[:zoneCount]

	data := d.templateData(vpcCidr, zones)
	if err := d.renderSpec(data); err != nil {
		return err
	}

	slog.Info("✅ starter deployment spec written", "file", d.outputFile)
	return nil
}

func (d *Discoverer) availabilityZones(ctx context.Context) ([]string, error) {
	output, err := d.ec2Service.DescribeAvailabilityZones(ctx)
	if err != nil {
		return nil, err
	}

	zones := []string{}
	for _, zone := range output.AvailabilityZones {
		zones = append(zones, aws.ToString(zone.ZoneName))
	}
	slices.Sort(zones)

	if len(zones) == 0 {
		return nil, fmt.Errorf("no availability zones available in region %s", d.region)
	}

	return zones, nil
}

func (d *Discoverer) existingVpcCidrs(ctx context.Context) ([]string, error) {
	output, err := d.ec2Service.DescribeVpcs(ctx)
	if err != nil {
		return nil, err
	}

	cidrs := []string{}
	for _, vpc := range output.Vpcs {
		cidrs = append(cidrs, aws.ToString(vpc.CidrBlock))
	}

	return cidrs, nil
}

// chooseVpcCidr picks the first 10.x.0.0/16 block that does not overlap any
// CIDR already present in the account.
func chooseVpcCidr(existingCidrs []string) (string, error) {
	existing := []*net.IPNet{}
	for _, cidr := range existingCidrs {
		if _, network, err := net.ParseCIDR(cidr); err == nil {
			existing = append(existing, network)
		}
	}

	for octet := 0; octet < 255; octet++ {
		candidate := fmt.Sprintf("10.%d.0.0/16", octet)
		_, candidateNet, err := net.ParseCIDR(candidate)
		if err != nil {
			return "", err
		}

		overlaps := false
		for _, network := range existing {
			if network.Contains(candidateNet.IP) || candidateNet.Contains(network.IP) {
				overlaps = true
				break
			}
		}
		if !overlaps {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("no free 10.x.0.0/16 block found among %d existing VPC CIDRs", len(existingCidrs))
}

// subnetCidrs derives one /24 per availability zone from the VPC's /16,
// with private subnets offset to leave room for public growth.
func subnetCidrs(vpcCidr string, zoneCount int, offset int) []string {
	base := strings.TrimSuffix(vpcCidr, ".0.0/16")

	cidrs := make([]string, 0, zoneCount)
	for i := 0; i < zoneCount; i++ {
		cidrs = append(cidrs, fmt.Sprintf("%s.%d.0/24", base, offset+i))
	}
	return cidrs
}

type specTemplateData struct {
	Environment        types.EnvironmentName
	IsProduction       bool
	Region             string
	NamePrefix         string
	DeletionProtection bool

	VpcCidr            string
	AvailabilityZones  []string
	PublicSubnetCidrs  []string
	PrivateSubnetCidrs []string
	EnableNatGateway   bool

	BastionEnabled bool

	WebInstanceType    string
	WebMinSize         int
	WebDesiredCapacity int
	WebMaxSize         int
	AppInstanceType    string
	AppMinSize         int
	AppDesiredCapacity int
	AppMaxSize         int

	DbInstanceClass       string
	DbAllocatedStorageGb  int
	DbMultiAz             bool
	DbBackupRetentionDays int
}

func (d *Discoverer) templateData(vpcCidr string, zones []string) specTemplateData {
	data := specTemplateData{
		Environment:        d.environment,
		IsProduction:       d.environment.IsProduction(),
		Region:             d.region,
		NamePrefix:         fmt.Sprintf("storefront-%s", d.environment),
		VpcCidr:            vpcCidr,
		AvailabilityZones:  zones,
		PublicSubnetCidrs:  subnetCidrs(vpcCidr, len(zones), 0),
		PrivateSubnetCidrs: subnetCidrs(vpcCidr, len(zones), 10),

		WebInstanceType:       "t3.micro",
		WebMinSize:            1,
		WebDesiredCapacity:    1,
		WebMaxSize:            2,
		AppInstanceType:       "t3.micro",
		AppMinSize:            1,
		AppDesiredCapacity:    1,
		AppMaxSize:            2,
		DbInstanceClass:       "db.t3.micro",
		DbAllocatedStorageGb:  20,
		DbBackupRetentionDays: 7,
	}

	if d.environment.IsProduction() {
		data.DeletionProtection = true
		data.EnableNatGateway = true
		data.BastionEnabled = true
		data.WebInstanceType = "t3.small"
		data.WebMinSize = 2
		data.WebDesiredCapacity = 2
		data.WebMaxSize = 8
		data.AppInstanceType = "t3.medium"
		data.AppMinSize = 2
		data.AppDesiredCapacity = 4
		data.AppMaxSize = 10
		data.DbInstanceClass = "db.r6g.large"
		data.DbAllocatedStorageGb = 100
		data.DbMultiAz = true
		data.DbBackupRetentionDays = 30
	}

	return data
}

func (d *Discoverer) renderSpec(data specTemplateData) error {
	templateContent, err := assetsFS.ReadFile("assets/deployment_spec.yaml.go.tmpl")
	if err != nil {
		return fmt.Errorf("failed to read spec template: %w", err)
	}

	tmpl, err := template.New("deployment_spec").Parse(string(templateContent))
	if err != nil {
		return fmt.Errorf("failed to parse spec template: %w", err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to execute spec template: %w", err)
	}

	if err := os.WriteFile(d.outputFile, []byte(buf.String()), 0644); err != nil {
		return fmt.Errorf("failed to write spec file %s: %w", d.outputFile, err)
	}

	return nil
}
