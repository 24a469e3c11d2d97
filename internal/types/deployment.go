package types

import (
	"fmt"
	"net"
	"os"

	"github.com/goccy/go-yaml"
)

// DeploymentSpec is one environment overlay: the full parameter set needed to
// render the root composition and every module for a single environment.
type DeploymentSpec struct {
	Environment EnvironmentName   `yaml:"environment" json:"environment"`
	Region      string            `yaml:"region" json:"region"`
	NamePrefix  string            `yaml:"name_prefix" json:"name_prefix"`
	Tags        map[string]string `yaml:"tags,omitempty" json:"tags,omitempty"`

	// DeletionProtection guards both the load balancer and the database
	// instance. Environment posture, not a per-resource knob.
	DeletionProtection bool `yaml:"deletion_protection" json:"deletion_protection"`

	Network  NetworkSpec  `yaml:"network" json:"network"`
	Bastion  BastionSpec  `yaml:"bastion,omitempty" json:"bastion,omitempty"`
	Compute  ComputeSpec  `yaml:"compute" json:"compute"`
	Database DatabaseSpec `yaml:"database" json:"database"`
}

type NetworkSpec struct {
	VpcCidr            string   `yaml:"vpc_cidr" json:"vpc_cidr"`
	AvailabilityZones  []string `yaml:"availability_zones" json:"availability_zones"`
	PublicSubnetCidrs  []string `yaml:"public_subnet_cidrs" json:"public_subnet_cidrs"`
	PrivateSubnetCidrs []string `yaml:"private_subnet_cidrs" json:"private_subnet_cidrs"`
	EnableNatGateway   bool     `yaml:"enable_nat_gateway" json:"enable_nat_gateway"`
}

type BastionSpec struct {
	Enabled      bool     `yaml:"enabled" json:"enabled"`
	AllowedCidrs []string `yaml:"allowed_cidrs,omitempty" json:"allowed_cidrs,omitempty"`
}

type ComputeSpec struct {
	AmiID   string   `yaml:"ami_id" json:"ami_id"`
	KeyName string   `yaml:"key_name,omitempty" json:"key_name,omitempty"`
	Web     TierSpec `yaml:"web" json:"web"`
	App     TierSpec `yaml:"app" json:"app"`
}

type TierSpec struct {
	InstanceType    string `yaml:"instance_type" json:"instance_type"`
	MinSize         int    `yaml:"min_size" json:"min_size"`
	DesiredCapacity int    `yaml:"desired_capacity" json:"desired_capacity"`
	MaxSize         int    `yaml:"max_size" json:"max_size"`
}

func (t ComputeSpec) Tier(tier Tier) TierSpec {
	if tier == TierApp {
		return t.App
	}
	return t.Web
}

type DatabaseSpec struct {
	Engine              string    `yaml:"engine" json:"engine"`
	EngineVersion       string    `yaml:"engine_version" json:"engine_version"`
	InstanceClass       string    `yaml:"instance_class" json:"instance_class"`
	AllocatedStorageGb  int       `yaml:"allocated_storage_gb" json:"allocated_storage_gb"`
	DbName              string    `yaml:"db_name" json:"db_name"`
	Username            string    `yaml:"username" json:"username"`
	Password            Sensitive `yaml:"password,omitempty" json:"password,omitempty"`
	Port                int       `yaml:"port" json:"port"`
	MultiAz             bool      `yaml:"multi_az" json:"multi_az"`
	BackupRetentionDays int       `yaml:"backup_retention_days" json:"backup_retention_days"`
}

func NewDeploymentSpecFromFile(specYamlPath string) (*DeploymentSpec, []error) {
	data, err := os.ReadFile(specYamlPath)
	if err != nil {
		return nil, []error{fmt.Errorf("failed to read deployment spec file: %w", err)}
	}

	var spec DeploymentSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, []error{fmt.Errorf("failed to unmarshal YAML: %w", err)}
	}

	if valid, errs := spec.Validate(); !valid {
		return nil, errs
	}

	return &spec, nil
}

// Validate checks the overlay against every module's required-variable
// contract. All violations are collected rather than failing on the first.
func (d *DeploymentSpec) Validate() (bool, []error) {
	var errs []error

	if !d.Environment.IsValid() {
		errs = append(errs, fmt.Errorf("environment must be one of %v, got %q", AllEnvironmentNames(), d.Environment))
	}
	if d.Region == "" {
		errs = append(errs, fmt.Errorf("region is required"))
	}
	if d.NamePrefix == "" {
		errs = append(errs, fmt.Errorf("name_prefix is required"))
	}

	errs = append(errs, d.Network.validate(d.Environment)...)
	errs = append(errs, d.Bastion.validate()...)
	errs = append(errs, d.Compute.validate()...)
	errs = append(errs, d.Database.validate(d.Environment)...)

	return len(errs) == 0, errs
}

func (n NetworkSpec) validate(env EnvironmentName) []error {
	var errs []error

	if _, _, err := net.ParseCIDR(n.VpcCidr); err != nil {
		errs = append(errs, fmt.Errorf("network.vpc_cidr %q is not a valid CIDR block", n.VpcCidr))
	}

	minZones := 1
	if env.IsProduction() {
		// A single-AZ production footprint is a misconfiguration, not a choice.
		minZones = 2
	}
	if len(n.AvailabilityZones) < minZones {
		errs = append(errs, fmt.Errorf("network.availability_zones requires at least %d zone(s) for environment %q, got %d", minZones, env, len(n.AvailabilityZones)))
	}

	if len(n.PublicSubnetCidrs) != len(n.AvailabilityZones) {
		errs = append(errs, fmt.Errorf("network.public_subnet_cidrs must have one CIDR per availability zone: %d CIDRs for %d zones", len(n.PublicSubnetCidrs), len(n.AvailabilityZones)))
	}
	if len(n.PrivateSubnetCidrs) != len(n.AvailabilityZones) {
		errs = append(errs, fmt.Errorf("network.private_subnet_cidrs must have one CIDR per availability zone: %d CIDRs for %d zones", len(n.PrivateSubnetCidrs), len(n.AvailabilityZones)))
	}

	for _, cidr := range append(append([]string{}, n.PublicSubnetCidrs...), n.PrivateSubnetCidrs...) {
		if _, _, err := net.ParseCIDR(cidr); err != nil {
			errs = append(errs, fmt.Errorf("subnet CIDR %q is not a valid CIDR block", cidr))
		}
	}

	return errs
}

func (b BastionSpec) validate() []error {
	var errs []error

	if b.Enabled && len(b.AllowedCidrs) == 0 {
		errs = append(errs, fmt.Errorf("bastion.allowed_cidrs is required when the bastion host is enabled: an open bastion is not generatable"))
	}
	for _, cidr := range b.AllowedCidrs {
		if _, _, err := net.ParseCIDR(cidr); err != nil {
			errs = append(errs, fmt.Errorf("bastion.allowed_cidrs entry %q is not a valid CIDR block", cidr))
		}
	}

	return errs
}

func (c ComputeSpec) validate() []error {
	var errs []error

	if c.AmiID == "" {
		errs = append(errs, fmt.Errorf("compute.ami_id is required"))
	}

	for _, tier := range AllTiers() {
		spec := c.Tier(tier)
		if spec.InstanceType == "" {
			errs = append(errs, fmt.Errorf("compute.%s.instance_type is required", tier))
		}
		if spec.MinSize < 1 {
			errs = append(errs, fmt.Errorf("compute.%s.min_size must be at least 1, got %d", tier, spec.MinSize))
		}
		if spec.MinSize > spec.DesiredCapacity || spec.DesiredCapacity > spec.MaxSize {
			errs = append(errs, fmt.Errorf("compute.%s fleet bounds must satisfy min_size <= desired_capacity <= max_size, got %d <= %d <= %d", tier, spec.MinSize, spec.DesiredCapacity, spec.MaxSize))
		}
	}

	return errs
}

func (db DatabaseSpec) validate(env EnvironmentName) []error {
	var errs []error

	if db.Engine == "" {
		errs = append(errs, fmt.Errorf("database.engine is required"))
	}
	if db.InstanceClass == "" {
		errs = append(errs, fmt.Errorf("database.instance_class is required"))
	}
	if db.DbName == "" {
		errs = append(errs, fmt.Errorf("database.db_name is required"))
	}
	if db.Username == "" {
		errs = append(errs, fmt.Errorf("database.username is required"))
	}
	if db.AllocatedStorageGb < 20 {
		errs = append(errs, fmt.Errorf("database.allocated_storage_gb must be at least 20, got %d", db.AllocatedStorageGb))
	}
	if db.Port <= 0 || db.Port > 65535 {
		errs = append(errs, fmt.Errorf("database.port must be between 1 and 65535, got %d", db.Port))
	}

	// Credential policy: production overlays must never carry a literal
	// password, it is supplied out of band at apply time. Non-production
	// overlays must carry one so the rendered tfvars is applyable as-is.
	if env.IsProduction() && db.Password.IsSet() {
		errs = append(errs, fmt.Errorf("database.password must not be set for environment %q: supply it at apply time from a secret manager", env))
	}
	if !env.IsProduction() && !db.Password.IsSet() {
		errs = append(errs, fmt.Errorf("database.password is required for non-production environment %q", env))
	}

	return errs
}
