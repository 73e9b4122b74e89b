package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/appservice-config/internal/document"
	"github.com/MKhiriev/appservice-config/models"
)

// write saves cfg to path, or prints it when path is empty.
func (a *app) write(cmd *cobra.Command, cfg *models.AppConfig, path string) error {
	if path != "" {
		if err := document.Save(path, cfg); err != nil {
			return err
		}
		a.log.Info().Str("path", path).Msg("configuration written")
		return nil
	}

	format, err := document.ParseFormat(a.cfg.Output.Format)
	if err != nil {
		return err
	}
	if err := document.Encode(a.stdout(cmd), cfg, format); err != nil {
		return fmt.Errorf("print configuration: %w", err)
	}
	return nil
}
