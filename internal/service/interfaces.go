package service

import (
	"context"

	"github.com/MKhiriev/appservice-config/internal/adapter"
	"github.com/MKhiriev/appservice-config/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/config_service_mock.go -package=mock

// ConfigService reconciles web app configurations: it reads live state into
// an [models.AppConfig], builds defaults and fills blanks of one
// configuration from another.
type ConfigService interface {
	// Extract reads app and its plan into a configuration. plan may be nil.
	Extract(ctx context.Context, app adapter.WebApp, plan adapter.ServicePlan) (*models.AppConfig, error)

	// BuildDefault returns a default configuration whose region is one the
	// subscription supports.
	BuildDefault(ctx context.Context, subscriptionID, resourceGroup, appName string, packaging models.Packaging, javaVersion models.JavaVersion) (*models.AppConfig, error)

	// Merge fills every unset field of to with from's value, one level deep
	// into the runtime. to is modified in place.
	Merge(to, from *models.AppConfig)
}

// DefaultConfigFactory produces the starting configuration of a new web app.
type DefaultConfigFactory interface {
	BuildDefaultWebAppConfig(resourceGroup, appName string, packaging models.Packaging, javaVersion models.JavaVersion) *models.AppConfig
}
