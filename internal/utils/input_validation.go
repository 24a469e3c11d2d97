package utils

import (
	"fmt"
	"net"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ValidateCidrList validates a comma-separated list of CIDR blocks
// (e.g. "10.0.0.0/24,192.168.1.0/28") and returns them as a slice.
func ValidateCidrList(cidrsStr string) ([]string, error) {
	if cidrsStr == "" {
		return nil, fmt.Errorf("at least one CIDR block is required")
	}

	cidrs := []string{}
	for cidr := range strings.SplitSeq(cidrsStr, ",") {
		cidr = strings.TrimSpace(cidr)
		if _, _, err := net.ParseCIDR(cidr); err != nil {
			return nil, fmt.Errorf("invalid CIDR block: %s. Expected format: '10.0.0.0/24'", cidr)
		}
		cidrs = append(cidrs, cidr)
	}

	return cidrs, nil
}

// sets flag values from corresponding environment variables if flags weren't explicitly provided
func BindEnvToFlags(cmd *cobra.Command) error {
	v := viper.New()

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		flagName := f.Name

		// Convert flag name to environment variable name
		// e.g., "vpc-id" -> "VPC_ID"
		envVarName := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))

		v.BindEnv(flagName, envVarName)

		// If the flag wasn't explicitly set via command line
		// AND
		// there's a value available from environment,
		// THEN
		// set the flag value from the environment
		if !f.Changed && v.IsSet(flagName) {
			val := v.Get(flagName)
			cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val))
		}
	})

	return nil
}
