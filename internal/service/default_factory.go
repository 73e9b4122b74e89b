package service

import (
	"fmt"

	"github.com/MKhiriev/appservice-config/internal/config"
	"github.com/MKhiriev/appservice-config/models"
)

type defaultConfigFactory struct {
	region      models.Region
	pricingTier models.PricingTier
	os          models.OperatingSystem
	javaVersion models.JavaVersion
}

// NewDefaultConfigFactory parses the configured defaults once. Native
// runtimes only: a Docker default OS is rejected.
func NewDefaultConfigFactory(cfg config.Defaults) (DefaultConfigFactory, error) {
	pricingTier, err := models.ParsePricingTier(cfg.PricingTier)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefaults, err)
	}

	os, err := models.ParseOperatingSystem(cfg.OS)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefaults, err)
	}
	if os == models.Docker {
		return nil, fmt.Errorf("%w: default os cannot be %s", ErrInvalidDefaults, os)
	}

	javaVersion, err := models.ParseJavaVersion(cfg.JavaVersion)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefaults, err)
	}

	return &defaultConfigFactory{
		region:      models.NewRegion(cfg.Region),
		pricingTier: pricingTier,
		os:          os,
		javaVersion: javaVersion,
	}, nil
}

func (f *defaultConfigFactory) BuildDefaultWebAppConfig(resourceGroup, appName string, packaging models.Packaging, javaVersion models.JavaVersion) *models.AppConfig {
	if javaVersion == "" {
		javaVersion = f.javaVersion
	}

	cfg := &models.AppConfig{
		AppName:                  appName,
		ResourceGroup:            resourceGroup,
		Region:                   f.region,
		PricingTier:              f.pricingTier,
		ServicePlanResourceGroup: resourceGroup,
		Runtime: &models.NativeRuntime{
			OS:           f.os,
			WebContainer: webContainerFor(packaging),
			JavaVersion:  javaVersion,
		},
	}
	if appName != "" {
		cfg.ServicePlanName = "asp-" + appName
	}

	return cfg
}

func webContainerFor(packaging models.Packaging) models.WebContainer {
	switch packaging {
	case models.War:
		return models.Tomcat90
	case models.Ear:
		return models.JBossEAP7
	default:
		return models.JavaSE
	}
}
