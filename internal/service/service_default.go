package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/appservice-config/models"
)

func (s *configService) BuildDefault(ctx context.Context, subscriptionID, resourceGroup, appName string, packaging models.Packaging, javaVersion models.JavaVersion) (*models.AppConfig, error) {
	cfg := s.factory.BuildDefaultWebAppConfig(resourceGroup, appName, packaging, javaVersion)

	regions, err := s.regions.ListSupportedRegions(ctx, subscriptionID)
	if err != nil {
		return nil, fmt.Errorf("list supported regions: %w", err)
	}

	region, err := selectSupportedRegion(regions, cfg.Region)
	if err != nil {
		return nil, fmt.Errorf("subscription %s: %w", subscriptionID, err)
	}

	if region != cfg.Region {
		s.logger.Info().
			Str("default", cfg.Region.String()).
			Str("selected", region.String()).
			Msg("default region is not supported by the subscription")
	}
	cfg.Region = region

	if cfg.SubscriptionID == "" {
		cfg.SubscriptionID = subscriptionID
	}

	return cfg, nil
}

// selectSupportedRegion keeps current when it is supported and falls back to
// the first supported region otherwise.
func selectSupportedRegion(supported []models.Region, current models.Region) (models.Region, error) {
	if len(supported) == 0 {
		return "", ErrNoSupportedRegions
	}
	if models.ContainsRegion(supported, current) {
		return current, nil
	}
	return supported[0], nil
}
