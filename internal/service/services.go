package service

import (
	"fmt"

	"github.com/MKhiriev/appservice-config/internal/adapter"
	"github.com/MKhiriev/appservice-config/internal/config"
	"github.com/MKhiriev/appservice-config/internal/logger"
)

type Services struct {
	ConfigService ConfigService
}

func NewServices(regions adapter.RegionCatalog, defaults config.Defaults, logger *logger.Logger) (*Services, error) {
	factory, err := NewDefaultConfigFactory(defaults)
	if err != nil {
		return nil, fmt.Errorf("create default config factory: %w", err)
	}

	return &Services{
		ConfigService: NewConfigService(regions, factory, logger),
	}, nil
}
