package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"

	"github.com/MKhiriev/appservice-config/internal/adapter"
	"github.com/MKhiriev/appservice-config/models"
)

// App settings through which App Service configures custom containers.
const (
	SettingDockerImage    = "DOCKER_CUSTOM_IMAGE_NAME"
	SettingRegistryServer = "DOCKER_REGISTRY_SERVER_URL"
)

func (s *configService) Extract(ctx context.Context, app adapter.WebApp, plan adapter.ServicePlan) (*models.AppConfig, error) {
	if app == nil {
		return nil, ErrNilWebApp
	}

	subscriptionID, err := subscriptionOf(app.ID())
	if err != nil {
		return nil, err
	}

	cfg := &models.AppConfig{
		AppName:        app.Name(),
		ResourceGroup:  app.ResourceGroup(),
		SubscriptionID: subscriptionID,
		Region:         app.Region(),
	}

	if app.IsDocker() {
		settings, err := app.AppSettings(ctx)
		if err != nil {
			return nil, fmt.Errorf("read app settings of %s: %w", app.Name(), err)
		}
		cfg.Runtime = dockerRuntimeOf(app, settings)
	} else {
		cfg.Runtime = models.NativeRuntimeFrom(app.Runtime())
	}

	if plan != nil {
		if entity := plan.Entity(); entity != nil {
			cfg.PricingTier = entity.PricingTier
			cfg.ServicePlanName = plan.Name()
			cfg.ServicePlanResourceGroup = entity.ResourceGroup
		}
	}

	s.logger.Debug().
		Str("app", cfg.AppName).
		Str("os", cfg.Runtime.OperatingSystem().String()).
		Str("plan", cfg.ServicePlanName).
		Msg("extracted web app configuration")

	return cfg, nil
}

// dockerRuntimeOf prefers the image app setting over the image in the fx
// version. The registry has no such fallback and stays empty when its setting
// is blank.
func dockerRuntimeOf(app adapter.WebApp, settings map[string]string) *models.DockerRuntime {
	runtime := &models.DockerRuntime{}

	if image := settings[SettingDockerImage]; !isBlank(image) {
		runtime.Image = image
	} else {
		runtime.Image = app.DockerImageName()
	}

	if registry := settings[SettingRegistryServer]; !isBlank(registry) {
		runtime.RegistryURL = registry
	}

	return runtime
}

func subscriptionOf(resourceID string) (string, error) {
	id, err := arm.ParseResourceID(resourceID)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrInvalidResourceID, resourceID, err)
	}
	return id.SubscriptionID, nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
