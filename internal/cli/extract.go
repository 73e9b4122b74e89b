package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/appservice-config/internal/logger"
	"github.com/MKhiriev/appservice-config/models"
)

type webAppFlags struct {
	resourceGroup string
	name          string
	output        string
}

func (f *webAppFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.resourceGroup, "resource-group", "g", "", "Resource group of the web app")
	cmd.Flags().StringVarP(&f.name, "name", "n", "", "Name of the web app")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Write the configuration to this file (.yaml, .yml or .json)")
	_ = cmd.MarkFlagRequired("resource-group")
	_ = cmd.MarkFlagRequired("name")
}

func newExtractCommand(a *app) *cobra.Command {
	flags := &webAppFlags{}

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Read the configuration of an existing web app",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.extract(cmd.Context(), flags.resourceGroup, flags.name)
			if err != nil {
				return err
			}
			return a.write(cmd, cfg, flags.output)
		},
	}
	flags.bind(cmd)

	return cmd
}

func (a *app) extract(ctx context.Context, resourceGroup, name string) (*models.AppConfig, error) {
	subscriptionID, err := a.subscription()
	if err != nil {
		return nil, err
	}

	azure, err := a.azure()
	if err != nil {
		return nil, err
	}
	services, err := a.services(azure)
	if err != nil {
		return nil, err
	}

	webApp, err := azure.GetWebApp(ctx, subscriptionID, resourceGroup, name)
	if err != nil {
		return nil, fmt.Errorf("get web app %s/%s: %w", resourceGroup, name, err)
	}

	plan, err := azure.GetServicePlan(ctx, webApp)
	if err != nil {
		return nil, fmt.Errorf("get service plan of %s: %w", name, err)
	}
	if plan.Entity() == nil {
		logger.FromContext(ctx).Warn().
			Str("app", name).
			Str("plan", webApp.ServicePlanID()).
			Msg("service plan could not be resolved, pricing tier is left unset")
	}

	return services.ConfigService.Extract(ctx, webApp, plan)
}
