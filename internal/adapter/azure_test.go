// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"testing"

	azfake "github.com/Azure/azure-sdk-for-go/sdk/azcore/fake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/appservice-config/internal/config"
	"github.com/MKhiriev/appservice-config/internal/logger"
	"github.com/MKhiriev/appservice-config/models"
)

const (
	siteJSON = `{
		"id": "/subscriptions/sub-1/resourceGroups/rg-1/providers/Microsoft.Web/sites/app-1",
		"name": "app-1",
		"location": "West Europe",
		"kind": "app,linux",
		"properties": {
			"resourceGroup": "rg-1",
			"serverFarmId": "/subscriptions/sub-1/resourceGroups/plan-rg/providers/Microsoft.Web/serverfarms/plan-1",
			"reserved": true,
			"siteConfig": { "linuxFxVersion": "TOMCAT|9.0-java17" }
		}
	}`

	dockerSiteJSON = `{
		"id": "/subscriptions/sub-1/resourceGroups/rg-1/providers/Microsoft.Web/sites/app-1",
		"name": "app-1",
		"location": "eastus",
		"kind": "app,linux,container",
		"properties": {
			"serverFarmId": "/subscriptions/sub-1/resourceGroups/plan-rg/providers/Microsoft.Web/serverfarms/plan-1",
			"reserved": true,
			"siteConfig": { "linuxFxVersion": "DOCKER|bar:2" }
		}
	}`

	planJSON = `{
		"id": "/subscriptions/sub-1/resourceGroups/plan-rg/providers/Microsoft.Web/serverfarms/plan-1",
		"name": "plan-1",
		"location": "West Europe",
		"sku": { "name": "P1v2", "tier": "PremiumV2", "size": "P1v2" },
		"properties": { "resourceGroup": "plan-rg" }
	}`

	appSettingsJSON = `{
		"properties": {
			"DOCKER_CUSTOM_IMAGE_NAME": "foo:1",
			"DOCKER_REGISTRY_SERVER_URL": "https://acr.azurecr.io"
		}
	}`

	geoRegionsJSON = `{
		"value": [
			{ "name": "West Europe", "properties": { "displayName": "West Europe" } },
			{ "name": "East US" },
			{ "name": "West Europe" }
		]
	}`

	notFoundJSON = `{ "error": { "code": "ResourceNotFound", "message": "not found" } }`
)

// ── stub transport ───────────────────────────────────────────────────────────

type stubResponse struct {
	status int
	body   string
}

// stubTransport answers ARM requests from canned JSON keyed by
// "METHOD path-suffix"; unmatched requests get a 404.
type stubTransport struct {
	routes map[string]stubResponse

	mu      sync.Mutex
	calls   []string
	queries []url.Values
}

func (s *stubTransport) Do(req *http.Request) (*http.Response, error) {
	path := strings.ToLower(req.URL.Path)

	s.mu.Lock()
	s.calls = append(s.calls, req.Method+" "+path)
	s.queries = append(s.queries, req.URL.Query())
	s.mu.Unlock()

	resp := stubResponse{status: http.StatusNotFound, body: notFoundJSON}
	for key, r := range s.routes {
		method, suffix, _ := strings.Cut(key, " ")
		if req.Method == method && strings.HasSuffix(path, strings.ToLower(suffix)) {
			resp = r
			break
		}
	}

	return &http.Response{
		StatusCode: resp.status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(resp.body)),
		Request:    req,
	}, nil
}

func (s *stubTransport) count(prefix string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, c := range s.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

// lastQuery returns the query of the latest request whose path ends with
// suffix.
func (s *stubTransport) lastQuery(suffix string) url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := len(s.calls) - 1; i >= 0; i-- {
		if strings.HasSuffix(s.calls[i], strings.ToLower(suffix)) {
			return s.queries[i]
		}
	}
	return nil
}

func newStubAdapter(t *testing.T, routes map[string]stubResponse, opts ...Option) (AppServiceAdapter, *stubTransport) {
	t.Helper()
	transport := &stubTransport{routes: routes}

	a, err := NewAzureAdapter(config.Azure{}, &azfake.TokenCredential{}, logger.Nop(), append([]Option{WithTransport(transport)}, opts...)...)
	require.NoError(t, err)

	return a, transport
}

// ── NewAzureAdapter ──────────────────────────────────────────────────────────

func TestNewAzureAdapter_NilCredential(t *testing.T) {
	_, err := NewAzureAdapter(config.Azure{}, nil, logger.Nop())
	assert.ErrorIs(t, err, ErrNilCredential)
}

func TestNewAzureAdapter_UnknownCloud(t *testing.T) {
	_, err := NewAzureAdapter(config.Azure{Cloud: "mars"}, &azfake.TokenCredential{}, nil)
	assert.ErrorIs(t, err, ErrUnknownCloud)
}

func TestNewAzureAdapter_FactoryPerSubscription(t *testing.T) {
	a, err := NewAzureAdapter(config.Azure{}, &azfake.TokenCredential{}, nil)
	require.NoError(t, err)
	impl := a.(*azureAdapter)

	f1, err := impl.factory("sub-1")
	require.NoError(t, err)
	f2, err := impl.factory("sub-1")
	require.NoError(t, err)
	f3, err := impl.factory("sub-2")
	require.NoError(t, err)

	assert.Same(t, f1, f2)
	assert.NotSame(t, f1, f3)

	_, err = impl.factory("")
	assert.ErrorIs(t, err, ErrMissingSubscription)
}

func TestCloudConfiguration(t *testing.T) {
	for _, name := range []string{"", "public", "China", "usgovernment"} {
		_, err := CloudConfiguration(name)
		assert.NoError(t, err, name)
	}

	_, err := CloudConfiguration("germany")
	assert.ErrorIs(t, err, ErrUnknownCloud)
}

// ── GetWebApp ────────────────────────────────────────────────────────────────

func TestGetWebApp_NativeLinux(t *testing.T) {
	a, _ := newStubAdapter(t, map[string]stubResponse{
		"GET /sites/app-1": {http.StatusOK, siteJSON},
	})

	app, err := a.GetWebApp(context.Background(), "sub-1", "rg-1", "app-1")
	require.NoError(t, err)

	assert.Equal(t, "app-1", app.Name())
	assert.Equal(t, "/subscriptions/sub-1/resourceGroups/rg-1/providers/Microsoft.Web/sites/app-1", app.ID())
	assert.Equal(t, "rg-1", app.ResourceGroup())
	assert.Equal(t, models.Region("westeurope"), app.Region())
	assert.False(t, app.IsDocker())
	assert.Empty(t, app.DockerImageName())
	assert.Equal(t, models.RuntimeDescriptor{
		OS:           models.Linux,
		WebContainer: models.Tomcat90,
		JavaVersion:  models.Java17,
	}, app.Runtime())
}

func TestGetWebApp_ResourceGroupFromID(t *testing.T) {
	a, _ := newStubAdapter(t, map[string]stubResponse{
		"GET /sites/app-1": {http.StatusOK, dockerSiteJSON},
	})

	app, err := a.GetWebApp(context.Background(), "sub-1", "rg-1", "app-1")
	require.NoError(t, err)

	assert.Equal(t, "rg-1", app.ResourceGroup())
	assert.True(t, app.IsDocker())
	assert.Equal(t, "bar:2", app.DockerImageName())
}

func TestGetWebApp_NotFound(t *testing.T) {
	a, _ := newStubAdapter(t, nil)

	app, err := a.GetWebApp(context.Background(), "sub-1", "rg-1", "missing")

	assert.Nil(t, app)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetWebApp_AppSettingsLoadedOnce(t *testing.T) {
	a, transport := newStubAdapter(t, map[string]stubResponse{
		"GET /sites/app-1":                          {http.StatusOK, dockerSiteJSON},
		"POST /sites/app-1/config/appsettings/list": {http.StatusOK, appSettingsJSON},
	})

	app, err := a.GetWebApp(context.Background(), "sub-1", "rg-1", "app-1")
	require.NoError(t, err)

	settings, err := app.AppSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"DOCKER_CUSTOM_IMAGE_NAME":   "foo:1",
		"DOCKER_REGISTRY_SERVER_URL": "https://acr.azurecr.io",
	}, settings)

	_, err = app.AppSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, transport.count("POST"))
}

func TestGetWebApp_AppSettingsForbidden(t *testing.T) {
	a, _ := newStubAdapter(t, map[string]stubResponse{
		"GET /sites/app-1": {http.StatusOK, siteJSON},
		"POST /sites/app-1/config/appsettings/list": {http.StatusForbidden,
			`{ "error": { "code": "AuthorizationFailed", "message": "denied" } }`},
	})

	app, err := a.GetWebApp(context.Background(), "sub-1", "rg-1", "app-1")
	require.NoError(t, err)

	_, err = app.AppSettings(context.Background())
	assert.ErrorIs(t, err, ErrForbidden)
}

// ── GetServicePlan ───────────────────────────────────────────────────────────

func TestGetServicePlan_Success(t *testing.T) {
	a, _ := newStubAdapter(t, map[string]stubResponse{
		"GET /sites/app-1":        {http.StatusOK, siteJSON},
		"GET /serverfarms/plan-1": {http.StatusOK, planJSON},
	})
	ctx := context.Background()

	app, err := a.GetWebApp(ctx, "sub-1", "rg-1", "app-1")
	require.NoError(t, err)

	plan, err := a.GetServicePlan(ctx, app)
	require.NoError(t, err)

	assert.Equal(t, "plan-1", plan.Name())
	require.NotNil(t, plan.Entity())
	assert.Equal(t, &models.ServicePlanEntity{
		ResourceGroup: "plan-rg",
		PricingTier:   models.P1v2,
	}, plan.Entity())
}

func TestGetServicePlan_NotFoundYieldsNilEntity(t *testing.T) {
	a, _ := newStubAdapter(t, map[string]stubResponse{
		"GET /sites/app-1": {http.StatusOK, siteJSON},
	})
	ctx := context.Background()

	app, err := a.GetWebApp(ctx, "sub-1", "rg-1", "app-1")
	require.NoError(t, err)

	plan, err := a.GetServicePlan(ctx, app)
	require.NoError(t, err)
	assert.Equal(t, "plan-1", plan.Name())
	assert.Nil(t, plan.Entity())
}

func TestGetServicePlan_NoPlanID(t *testing.T) {
	a, transport := newStubAdapter(t, nil)

	plan, err := a.GetServicePlan(context.Background(), newWebApp(linuxSite("JAVA|17-java17"), nil))

	require.NoError(t, err)
	assert.Nil(t, plan.Entity())
	assert.Zero(t, transport.count("GET"))
}

// ── ListSupportedRegions ─────────────────────────────────────────────────────

func TestListSupportedRegions_NormalizesAndDeduplicates(t *testing.T) {
	a, transport := newStubAdapter(t, map[string]stubResponse{
		"GET /subscriptions/sub-1/providers/Microsoft.Web/geoRegions": {http.StatusOK, geoRegionsJSON},
	})

	regions, err := a.ListSupportedRegions(context.Background(), "sub-1")

	require.NoError(t, err)
	assert.Equal(t, []models.Region{"westeurope", "eastus"}, regions)
	assert.Equal(t, "true", transport.lastQuery("/geoRegions").Get("linuxWorkersEnabled"))
}

func TestListSupportedRegions_AllWorkers(t *testing.T) {
	a, transport := newStubAdapter(t, map[string]stubResponse{
		"GET /subscriptions/sub-1/providers/Microsoft.Web/geoRegions": {http.StatusOK, geoRegionsJSON},
	}, WithLinuxWorkers(false))

	_, err := a.ListSupportedRegions(context.Background(), "sub-1")

	require.NoError(t, err)
	query := transport.lastQuery("/geoRegions")
	require.NotNil(t, query)
	assert.False(t, query.Has("linuxWorkersEnabled"))
}

func TestListSupportedRegions_MissingSubscription(t *testing.T) {
	a, transport := newStubAdapter(t, nil)

	_, err := a.ListSupportedRegions(context.Background(), "")

	assert.ErrorIs(t, err, ErrMissingSubscription)
	assert.Zero(t, transport.count("GET"))
}

func TestListSupportedRegions_Unauthorized(t *testing.T) {
	a, _ := newStubAdapter(t, map[string]stubResponse{
		"GET /subscriptions/sub-1/providers/Microsoft.Web/geoRegions": {http.StatusUnauthorized,
			`{ "error": { "code": "InvalidAuthenticationToken", "message": "expired" } }`},
	})

	regions, err := a.ListSupportedRegions(context.Background(), "sub-1")

	assert.Nil(t, regions)
	assert.ErrorIs(t, err, ErrUnauthorized)
}
