package cli

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/appservice-config/models"
)

func newDefaultCommand(a *app) *cobra.Command {
	var (
		flags       = &webAppFlags{}
		packaging   string
		javaVersion string
	)

	cmd := &cobra.Command{
		Use:   "default",
		Short: "Build a default configuration for a new web app",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := models.ParsePackaging(packaging)
			if err != nil {
				return err
			}
			v, err := models.ParseJavaVersion(javaVersion)
			if err != nil {
				return err
			}

			subscriptionID, err := a.subscription()
			if err != nil {
				return err
			}
			azure, err := a.azure()
			if err != nil {
				return err
			}
			services, err := a.services(azure)
			if err != nil {
				return err
			}

			cfg, err := services.ConfigService.BuildDefault(cmd.Context(), subscriptionID, flags.resourceGroup, flags.name, p, v)
			if err != nil {
				return err
			}
			return a.write(cmd, cfg, flags.output)
		},
	}
	flags.bind(cmd)
	cmd.Flags().StringVar(&packaging, "packaging", string(models.Jar), "Artifact packaging: jar, war or ear")
	cmd.Flags().StringVar(&javaVersion, "java-version", "", "Java version, defaults to the configured default")

	return cmd
}
