package app_infra

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/shopfront/sfp/internal/build_info"
	"github.com/shopfront/sfp/internal/services/hcl"
	"github.com/shopfront/sfp/internal/types"
)

type AppInfraOpts struct {
	Spec      types.DeploymentSpec
	OutputDir string
}

// AppInfraAssetGenerator renders a deployment spec into a Terraform project
// on disk: shared modules, root composition, and the environment's tfvars
// overlay under environments/.
type AppInfraAssetGenerator struct {
	spec       types.DeploymentSpec
	outputDir  string
	hclService *hcl.AppInfraHCLService
}

func NewAppInfraAssetGenerator(opts AppInfraOpts) *AppInfraAssetGenerator {
	return &AppInfraAssetGenerator{
		spec:       opts.Spec,
		outputDir:  opts.OutputDir,
		hclService: hcl.NewAppInfraHCLService(),
	}
}

func (ag *AppInfraAssetGenerator) Run() error {
	slog.Info("🏁 generating infrastructure project", "environment", ag.spec.Environment, "directory", ag.outputDir)

	project := ag.hclService.GenerateTerraformProject(ag.spec)

	slog.Info("📁 creating project directory", "directory", ag.outputDir)
	if err := os.MkdirAll(ag.outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}

	if err := ag.writeRootFiles(project); err != nil {
		return fmt.Errorf("failed to write root files: %w", err)
	}

	if err := ag.writeTfvars(project); err != nil {
		return fmt.Errorf("failed to write tfvars overlay: %w", err)
	}

	if err := ag.writeModules(project); err != nil {
		return fmt.Errorf("failed to write modules: %w", err)
	}

	if err := ag.writeManifest(); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	slog.Info("✅ infrastructure project generated", "directory", ag.outputDir)

	return nil
}

func (ag *AppInfraAssetGenerator) writeRootFiles(project types.TerraformProject) error {
	rootFiles := map[string]string{
		"main.tf":      project.MainTf,
		"providers.tf": project.ProvidersTf,
		"variables.tf": project.VariablesTf,
		"outputs.tf":   project.OutputsTf,
	}

	for fileName, content := range rootFiles {
		filePath := filepath.Join(ag.outputDir, fileName)
		if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
			return fmt.Errorf("failed to write file %s: %w", filePath, err)
		}
	}

	return nil
}

func (ag *AppInfraAssetGenerator) writeTfvars(project types.TerraformProject) error {
	environmentsDir := filepath.Join(ag.outputDir, "environments")
	if err := os.MkdirAll(environmentsDir, 0755); err != nil {
		return fmt.Errorf("failed to create environments directory: %w", err)
	}

	tfvarsPath := filepath.Join(environmentsDir, fmt.Sprintf("%s.tfvars", project.Environment))
	if err := os.WriteFile(tfvarsPath, []byte(project.Tfvars), 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", tfvarsPath, err)
	}

	slog.Info("📋 generated environment overlay", "file", tfvarsPath)
	return nil
}

func (ag *AppInfraAssetGenerator) writeModules(project types.TerraformProject) error {
	for _, module := range project.Modules {
		moduleDir := filepath.Join(ag.outputDir, "modules", module.Name)
		if err := os.MkdirAll(moduleDir, 0755); err != nil {
			return fmt.Errorf("failed to create module directory %s: %w", moduleDir, err)
		}

		moduleFiles := map[string]string{
			"main.tf":      module.MainTf,
			"variables.tf": module.VariablesTf,
			"outputs.tf":   module.OutputsTf,
		}

		for fileName, content := range moduleFiles {
			filePath := filepath.Join(moduleDir, fileName)
			if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
				return fmt.Errorf("failed to write file %s: %w", filePath, err)
			}
		}

		for relPath, content := range module.Templates {
			templatePath := filepath.Join(moduleDir, relPath)
			if err := os.MkdirAll(filepath.Dir(templatePath), 0755); err != nil {
				return fmt.Errorf("failed to create template directory: %w", err)
			}
			if err := os.WriteFile(templatePath, []byte(content), 0644); err != nil {
				return fmt.Errorf("failed to write file %s: %w", templatePath, err)
			}
		}

		slog.Info("📋 generated module", "module", module.Name)
	}

	return nil
}

func (ag *AppInfraAssetGenerator) writeManifest() error {
	manifest := types.Manifest{
		Environment: ag.spec.Environment,
		NamePrefix:  ag.spec.NamePrefix,
		Region:      ag.spec.Region,
		Version:     build_info.Version,
		GeneratedAt: time.Now().UTC(),
	}

	manifestPath := filepath.Join(ag.outputDir, "manifest.json")
	manifestBytes, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	if err := os.WriteFile(manifestPath, manifestBytes, 0644); err != nil {
		return fmt.Errorf("failed to write manifest file: %w", err)
	}

	slog.Info("✅ generated manifest file", "file", manifestPath)
	return nil
}
