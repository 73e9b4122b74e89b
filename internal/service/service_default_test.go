package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/appservice-config/internal/config"
	"github.com/MKhiriev/appservice-config/internal/logger"
	"github.com/MKhiriev/appservice-config/internal/mock"
	"github.com/MKhiriev/appservice-config/models"
)

func defaultConfig(region models.Region) *models.AppConfig {
	return &models.AppConfig{
		AppName:                  "demo",
		ResourceGroup:            "rg-demo",
		Region:                   region,
		PricingTier:              models.P1v2,
		ServicePlanName:          "asp-demo",
		ServicePlanResourceGroup: "rg-demo",
		Runtime: &models.NativeRuntime{
			OS:           models.Linux,
			WebContainer: models.JavaSE,
			JavaVersion:  models.Java17,
		},
	}
}

// ── BuildDefault ─────────────────────────────────────────────────────────────

func TestConfigService_BuildDefault_KeepsSupportedRegion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, regions, factory := newTestConfigService(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		factory.EXPECT().
			BuildDefaultWebAppConfig("rg-demo", "demo", models.Jar, models.Java17).
			Return(defaultConfig("westeurope")),
		regions.EXPECT().
			ListSupportedRegions(ctx, testSubscription).
			Return([]models.Region{"eastus", "westeurope"}, nil),
	)

	cfg, err := svc.BuildDefault(ctx, testSubscription, "rg-demo", "demo", models.Jar, models.Java17)
	require.NoError(t, err)

	assert.Equal(t, models.Region("westeurope"), cfg.Region)
	assert.Equal(t, testSubscription, cfg.SubscriptionID)
}

func TestConfigService_BuildDefault_FallsBackToFirstRegion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, regions, factory := newTestConfigService(t, ctrl)
	ctx := context.Background()

	factory.EXPECT().BuildDefaultWebAppConfig(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(defaultConfig("westeurope"))
	regions.EXPECT().ListSupportedRegions(ctx, testSubscription).
		Return([]models.Region{"eastus", "centralus"}, nil)

	cfg, err := svc.BuildDefault(ctx, testSubscription, "rg-demo", "demo", models.Jar, "")
	require.NoError(t, err)

	assert.Equal(t, models.Region("eastus"), cfg.Region)

	// Everything except the region comes from the factory.
	want := defaultConfig("eastus")
	want.SubscriptionID = testSubscription
	assert.Equal(t, want, cfg)
}

func TestConfigService_BuildDefault_NoRegions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, regions, factory := newTestConfigService(t, ctrl)

	factory.EXPECT().BuildDefaultWebAppConfig(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(defaultConfig("westeurope"))
	regions.EXPECT().ListSupportedRegions(gomock.Any(), testSubscription).Return(nil, nil)

	cfg, err := svc.BuildDefault(context.Background(), testSubscription, "rg-demo", "demo", models.Jar, "")
	require.ErrorIs(t, err, ErrNoSupportedRegions)
	assert.Nil(t, cfg)
}

func TestConfigService_BuildDefault_CatalogError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, regions, factory := newTestConfigService(t, ctrl)
	catalogErr := errors.New("unauthorized")

	factory.EXPECT().BuildDefaultWebAppConfig(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(defaultConfig("westeurope"))
	regions.EXPECT().ListSupportedRegions(gomock.Any(), testSubscription).Return(nil, catalogErr)

	cfg, err := svc.BuildDefault(context.Background(), testSubscription, "rg-demo", "demo", models.Jar, "")
	require.ErrorIs(t, err, catalogErr)
	assert.Nil(t, cfg)
}

// ── DefaultConfigFactory ─────────────────────────────────────────────────────

func testDefaults() config.Defaults {
	return config.Defaults{
		Region:      "West Europe",
		PricingTier: "P1v2",
		OS:          "linux",
		JavaVersion: "8",
	}
}

func TestDefaultConfigFactory_WebContainerByPackaging(t *testing.T) {
	factory, err := NewDefaultConfigFactory(testDefaults())
	require.NoError(t, err)

	tests := []struct {
		packaging models.Packaging
		want      models.WebContainer
	}{
		{models.Jar, models.JavaSE},
		{models.War, models.Tomcat90},
		{models.Ear, models.JBossEAP7},
		{"", models.JavaSE},
	}

	for _, tt := range tests {
		t.Run(string(tt.packaging), func(t *testing.T) {
			cfg := factory.BuildDefaultWebAppConfig("rg", "app", tt.packaging, models.Java17)
			runtime, ok := cfg.Runtime.(*models.NativeRuntime)
			require.True(t, ok)
			assert.Equal(t, tt.want, runtime.WebContainer)
			assert.Equal(t, models.Java17, runtime.JavaVersion)
		})
	}
}

func TestDefaultConfigFactory_Fields(t *testing.T) {
	factory, err := NewDefaultConfigFactory(testDefaults())
	require.NoError(t, err)

	cfg := factory.BuildDefaultWebAppConfig("rg-demo", "demo", models.Jar, "")

	assert.Equal(t, &models.AppConfig{
		AppName:                  "demo",
		ResourceGroup:            "rg-demo",
		Region:                   "westeurope",
		PricingTier:              models.P1v2,
		ServicePlanName:          "asp-demo",
		ServicePlanResourceGroup: "rg-demo",
		Runtime: &models.NativeRuntime{
			OS:           models.Linux,
			WebContainer: models.JavaSE,
			JavaVersion:  models.Java8,
		},
	}, cfg)
}

func TestDefaultConfigFactory_EmptyAppNameHasNoPlanName(t *testing.T) {
	factory, err := NewDefaultConfigFactory(testDefaults())
	require.NoError(t, err)

	cfg := factory.BuildDefaultWebAppConfig("rg", "", models.Jar, "")
	assert.Empty(t, cfg.ServicePlanName)
}

func TestNewDefaultConfigFactory_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*config.Defaults)
	}{
		{"pricing tier", func(d *config.Defaults) { d.PricingTier = "Z9" }},
		{"os", func(d *config.Defaults) { d.OS = "solaris" }},
		{"docker os", func(d *config.Defaults) { d.OS = "docker" }},
		{"java version", func(d *config.Defaults) { d.JavaVersion = "latest" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defaults := testDefaults()
			tt.modify(&defaults)

			factory, err := NewDefaultConfigFactory(defaults)
			require.ErrorIs(t, err, ErrInvalidDefaults)
			assert.Nil(t, factory)
		})
	}
}

// ── Services ─────────────────────────────────────────────────────────────────

func TestNewServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services, err := NewServices(mock.NewMockRegionCatalog(ctrl), testDefaults(), logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, services.ConfigService)

	_, err = NewServices(mock.NewMockRegionCatalog(ctrl), config.Defaults{PricingTier: "bogus"}, logger.Nop())
	require.ErrorIs(t, err, ErrInvalidDefaults)
}
