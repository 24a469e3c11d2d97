package preview

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopfront/sfp/internal/services/hcl"
	"github.com/shopfront/sfp/internal/types"
)

// Preview serves rendered Terraform projects over HTTP so tooling and UIs
// can inspect what a deployment spec produces without touching disk.
type Preview struct {
	port       string
	hclService *hcl.AppInfraHCLService
}

func NewPreview(port string) *Preview {
	return &Preview{
		port:       port,
		hclService: hcl.NewAppInfraHCLService(),
	}
}

func (p *Preview) Run() error {
	fmt.Println("Running preview server...")

	e := echo.New()
	e.HideBanner = true

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"status":    "healthy",
			"service":   "sfp-preview",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	e.POST("/preview", p.handlePreview)

	serverAddr := fmt.Sprintf("localhost:%s", p.port)
	fmt.Printf("Starting preview server on %s\n", serverAddr)
	e.Logger.Fatal(e.Start(serverAddr))

	return nil
}

func (p *Preview) handlePreview(c echo.Context) error {
	var spec types.DeploymentSpec

	if err := c.Bind(&spec); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"error":   "Invalid request body",
			"message": err.Error(),
		})
	}

	if valid, errs := spec.Validate(); !valid {
		messages := make([]string, 0, len(errs))
		for _, err := range errs {
			messages = append(messages, err.Error())
		}
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{
			"error":   "Deployment spec failed validation",
			"details": messages,
		})
	}

	project := p.hclService.GenerateTerraformProject(spec)

	return c.JSON(http.StatusOK, project)
}
