package adapter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appservice/armappservice/v2"

	"github.com/MKhiriev/appservice-config/internal/config"
	"github.com/MKhiriev/appservice-config/internal/logger"
	"github.com/MKhiriev/appservice-config/models"
)

// Option customizes the adapter.
type Option func(*azureAdapter)

// WithTransport replaces the HTTP transport of every ARM client the adapter
// creates.
func WithTransport(t policy.Transporter) Option {
	return func(a *azureAdapter) {
		a.options.Transport = t
	}
}

// WithLinuxWorkers controls whether ListSupportedRegions asks only for
// regions that host Linux workers. Enabled by default.
func WithLinuxWorkers(enabled bool) Option {
	return func(a *azureAdapter) {
		a.linuxWorkers = enabled
	}
}

type azureAdapter struct {
	credential   azcore.TokenCredential
	options      *arm.ClientOptions
	linuxWorkers bool
	logger       *logger.Logger

	mu        sync.Mutex
	factories map[string]*armappservice.ClientFactory
}

// NewAzureAdapter returns an [AppServiceAdapter] backed by Azure Resource
// Manager. Clients are created lazily, one factory per subscription.
func NewAzureAdapter(cfg config.Azure, credential azcore.TokenCredential, log *logger.Logger, opts ...Option) (AppServiceAdapter, error) {
	if credential == nil {
		return nil, ErrNilCredential
	}

	cloudCfg, err := CloudConfiguration(cfg.Cloud)
	if err != nil {
		return nil, err
	}

	if log == nil {
		log = logger.Nop()
	}

	a := &azureAdapter{
		credential: credential,
		options: &arm.ClientOptions{
			ClientOptions: policy.ClientOptions{Cloud: cloudCfg},
		},
		linuxWorkers: true,
		logger:       log,
		factories:    make(map[string]*armappservice.ClientFactory),
	}
	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

// NewDefaultCredential builds the azidentity default credential chain
// (environment, workload identity, managed identity, Azure CLI, ...) for the
// configured cloud and tenant.
func NewDefaultCredential(cfg config.Azure) (azcore.TokenCredential, error) {
	cloudCfg, err := CloudConfiguration(cfg.Cloud)
	if err != nil {
		return nil, err
	}

	cred, err := azidentity.NewDefaultAzureCredential(&azidentity.DefaultAzureCredentialOptions{
		ClientOptions: policy.ClientOptions{Cloud: cloudCfg},
		TenantID:      cfg.TenantID,
	})
	if err != nil {
		return nil, fmt.Errorf("create default azure credential: %w", err)
	}

	return cred, nil
}

// CloudConfiguration maps a configured cloud name to its azcore
// configuration. An empty name selects the public cloud.
func CloudConfiguration(name string) (cloud.Configuration, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", config.CloudPublic:
		return cloud.AzurePublic, nil
	case config.CloudChina:
		return cloud.AzureChina, nil
	case config.CloudUSGovernment:
		return cloud.AzureGovernment, nil
	default:
		return cloud.Configuration{}, fmt.Errorf("%w: %q", ErrUnknownCloud, name)
	}
}

func (a *azureAdapter) factory(subscriptionID string) (*armappservice.ClientFactory, error) {
	if subscriptionID == "" {
		return nil, ErrMissingSubscription
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if f, ok := a.factories[subscriptionID]; ok {
		return f, nil
	}

	f, err := armappservice.NewClientFactory(subscriptionID, a.credential, a.options)
	if err != nil {
		return nil, fmt.Errorf("create app service client factory: %w", err)
	}
	a.factories[subscriptionID] = f

	return f, nil
}

func (a *azureAdapter) GetWebApp(ctx context.Context, subscriptionID, resourceGroup, name string) (WebApp, error) {
	f, err := a.factory(subscriptionID)
	if err != nil {
		return nil, err
	}

	a.logger.Debug().
		Str("subscription", subscriptionID).
		Str("resource_group", resourceGroup).
		Str("name", name).
		Msg("reading web app")

	client := f.NewWebAppsClient()
	resp, err := client.Get(ctx, resourceGroup, name, nil)
	if err != nil {
		return nil, mapResponseError(fmt.Sprintf("get web app %s/%s", resourceGroup, name), err)
	}

	return newWebApp(resp.Site, func(ctx context.Context) (map[string]*string, error) {
		settings, err := client.ListApplicationSettings(ctx, resourceGroup, name, nil)
		if err != nil {
			return nil, mapResponseError(fmt.Sprintf("list app settings of %s/%s", resourceGroup, name), err)
		}
		return settings.Properties, nil
	}), nil
}

func (a *azureAdapter) GetServicePlan(ctx context.Context, app WebApp) (ServicePlan, error) {
	planID := app.ServicePlanID()
	if planID == "" {
		a.logger.Warn().Str("app", app.Name()).Msg("web app reports no service plan")
		return &servicePlan{}, nil
	}

	id, err := arm.ParseResourceID(planID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidResourceID, planID, err)
	}

	f, err := a.factory(id.SubscriptionID)
	if err != nil {
		return nil, err
	}

	resp, err := f.NewPlansClient().Get(ctx, id.ResourceGroupName, id.Name, nil)
	if err != nil {
		mapped := mapResponseError(fmt.Sprintf("get service plan %s/%s", id.ResourceGroupName, id.Name), err)
		if errors.Is(mapped, ErrNotFound) {
			a.logger.Warn().Err(err).Str("plan", id.Name).Msg("service plan not found")
			return &servicePlan{name: id.Name}, nil
		}
		return nil, mapped
	}

	return newServicePlan(resp.Plan), nil
}

func (a *azureAdapter) ListSupportedRegions(ctx context.Context, subscriptionID string) ([]models.Region, error) {
	f, err := a.factory(subscriptionID)
	if err != nil {
		return nil, err
	}

	var options *armappservice.WebSiteManagementClientListGeoRegionsOptions
	if a.linuxWorkers {
		options = &armappservice.WebSiteManagementClientListGeoRegionsOptions{LinuxWorkersEnabled: to.Ptr(true)}
	}
	pager := f.NewWebSiteManagementClient().NewListGeoRegionsPager(options)

	regions := make([]models.Region, 0)
	seen := make(map[models.Region]struct{})
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, mapResponseError(fmt.Sprintf("list regions of subscription %s", subscriptionID), err)
		}
		regions = appendGeoRegions(regions, seen, page.Value)
	}

	a.logger.Debug().Int("count", len(regions)).Str("subscription", subscriptionID).Msg("listed supported regions")

	return regions, nil
}
