package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/appservice-config/internal/document"
	"github.com/MKhiriev/appservice-config/internal/validators"
)

func newValidateCommand(a *app) *cobra.Command {
	var fields []string

	cmd := &cobra.Command{
		Use:   "validate FILE",
		Short: "Check a configuration document against App Service naming and runtime rules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := document.Load(args[0])
			if err != nil {
				return err
			}

			if err := validators.NewAppConfigValidator().Validate(cmd.Context(), cfg, fields...); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			a.log.Debug().Str("path", args[0]).Strs("fields", fields).Msg("document is valid")
			_, err = fmt.Fprintf(a.stdout(cmd), "%s: valid\n", args[0])
			return err
		},
	}
	cmd.Flags().StringSliceVar(&fields, "fields", nil, "Only validate these fields: app_name, resource_group, runtime, region")

	return cmd
}
