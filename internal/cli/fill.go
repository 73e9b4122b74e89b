package cli

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/appservice-config/internal/document"
)

func newFillCommand(a *app) *cobra.Command {
	var (
		flags = &webAppFlags{}
		path  string
	)

	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Complete a local configuration document with the live state of a web app",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			local, err := document.Load(path)
			if err != nil {
				return err
			}

			live, err := a.extract(cmd.Context(), flags.resourceGroup, flags.name)
			if err != nil {
				return err
			}

			services, err := a.services(nil)
			if err != nil {
				return err
			}
			services.ConfigService.Merge(local, live)

			return a.write(cmd, local, flags.output)
		},
	}
	flags.bind(cmd)
	cmd.Flags().StringVar(&path, "config", "", "Local configuration document to complete")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}
