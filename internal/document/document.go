package document

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/appservice-config/models"
)

type appConfigDocument struct {
	AppName                  string           `yaml:"appName,omitempty" json:"appName,omitempty"`
	ResourceGroup            string           `yaml:"resourceGroup,omitempty" json:"resourceGroup,omitempty"`
	SubscriptionID           string           `yaml:"subscriptionId,omitempty" json:"subscriptionId,omitempty"`
	Region                   string           `yaml:"region,omitempty" json:"region,omitempty"`
	PricingTier              string           `yaml:"pricingTier,omitempty" json:"pricingTier,omitempty"`
	ServicePlanName          string           `yaml:"servicePlanName,omitempty" json:"servicePlanName,omitempty"`
	ServicePlanResourceGroup string           `yaml:"servicePlanResourceGroup,omitempty" json:"servicePlanResourceGroup,omitempty"`
	Runtime                  *runtimeDocument `yaml:"runtime,omitempty" json:"runtime,omitempty"`
}

type runtimeDocument struct {
	OS           string `yaml:"os,omitempty" json:"os,omitempty"`
	Image        string `yaml:"image,omitempty" json:"image,omitempty"`
	RegistryURL  string `yaml:"registryUrl,omitempty" json:"registryUrl,omitempty"`
	WebContainer string `yaml:"webContainer,omitempty" json:"webContainer,omitempty"`
	JavaVersion  string `yaml:"javaVersion,omitempty" json:"javaVersion,omitempty"`
}

func toDocument(cfg *models.AppConfig) *appConfigDocument {
	doc := &appConfigDocument{
		AppName:                  cfg.AppName,
		ResourceGroup:            cfg.ResourceGroup,
		SubscriptionID:           cfg.SubscriptionID,
		Region:                   cfg.Region.String(),
		PricingTier:              cfg.PricingTier.String(),
		ServicePlanName:          cfg.ServicePlanName,
		ServicePlanResourceGroup: cfg.ServicePlanResourceGroup,
	}

	switch r := cfg.Runtime.(type) {
	case *models.DockerRuntime:
		if r != nil {
			doc.Runtime = &runtimeDocument{
				OS:          models.Docker.String(),
				Image:       r.Image,
				RegistryURL: r.RegistryURL,
			}
		}
	case *models.NativeRuntime:
		if r != nil {
			doc.Runtime = &runtimeDocument{
				OS:           r.OS.String(),
				WebContainer: r.WebContainer.String(),
				JavaVersion:  r.JavaVersion.String(),
			}
		}
	}

	return doc
}

func (d *appConfigDocument) toModel() (*models.AppConfig, error) {
	pricingTier, err := models.ParsePricingTier(d.PricingTier)
	if errors.Is(err, models.ErrInvalidPricingTier) {
		// sizes the resource provider reports but the parser does not know
		pricingTier, err = models.PricingTier{Size: strings.TrimSpace(d.PricingTier)}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	cfg := &models.AppConfig{
		AppName:                  d.AppName,
		ResourceGroup:            d.ResourceGroup,
		SubscriptionID:           d.SubscriptionID,
		Region:                   models.NewRegion(d.Region),
		PricingTier:              pricingTier,
		ServicePlanName:          d.ServicePlanName,
		ServicePlanResourceGroup: d.ServicePlanResourceGroup,
	}

	if d.Runtime != nil {
		cfg.Runtime, err = d.Runtime.toModel()
		if err != nil {
			return nil, fmt.Errorf("%w: runtime: %w", ErrInvalidDocument, err)
		}
	}

	return cfg, nil
}

func (d *runtimeDocument) toModel() (models.Runtime, error) {
	os, err := models.ParseOperatingSystem(d.OS)
	if err != nil {
		return nil, err
	}

	if os == models.Docker || d.Image != "" {
		if d.WebContainer != "" || d.JavaVersion != "" {
			return nil, fmt.Errorf("docker runtime cannot set webContainer or javaVersion")
		}
		return &models.DockerRuntime{Image: d.Image, RegistryURL: d.RegistryURL}, nil
	}
	if d.RegistryURL != "" {
		return nil, fmt.Errorf("registryUrl requires a docker runtime")
	}

	webContainer, err := models.ParseWebContainer(d.WebContainer)
	if errors.Is(err, models.ErrUnknownWebContainer) {
		webContainer, err = models.WebContainer(strings.TrimSpace(d.WebContainer)), nil
	}
	if err != nil {
		return nil, err
	}
	javaVersion, err := models.ParseJavaVersion(d.JavaVersion)
	if err != nil {
		return nil, err
	}

	return &models.NativeRuntime{
		OS:           os,
		WebContainer: webContainer,
		JavaVersion:  javaVersion,
	}, nil
}
