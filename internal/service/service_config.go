package service

import (
	"github.com/MKhiriev/appservice-config/internal/adapter"
	"github.com/MKhiriev/appservice-config/internal/logger"
)

type configService struct {
	regions adapter.RegionCatalog
	factory DefaultConfigFactory

	logger *logger.Logger
}

func NewConfigService(regions adapter.RegionCatalog, factory DefaultConfigFactory, log *logger.Logger) ConfigService {
	if log == nil {
		log = logger.Nop()
	}

	return &configService{
		regions: regions,
		factory: factory,
		logger:  log,
	}
}
