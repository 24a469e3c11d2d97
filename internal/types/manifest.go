package types

import "time"

// Manifest records how a generated project was produced, written alongside
// the Terraform files as manifest.json.
type Manifest struct {
	Environment EnvironmentName `json:"environment"`
	NamePrefix  string          `json:"name_prefix"`
	Region      string          `json:"region"`
	Version     string          `json:"version"`
	GeneratedAt time.Time       `json:"generated_at"`
}
