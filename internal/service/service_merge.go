package service

import "github.com/MKhiriev/appservice-config/models"

func (s *configService) Merge(to, from *models.AppConfig) {
	if to == nil || from == nil {
		return
	}

	to.FillBlanks(from)

	s.logger.Debug().Str("app", to.AppName).Msg("merged web app configuration")
}
