// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the resource-management abstractions the
// configuration reconciler reads live state through.
//
// [WebApp] and [ServicePlan] are read-only handles over an App Service web
// app and its plan; [RegionCatalog] lists the regions a subscription can host
// web apps in. The package ships an Azure Resource Manager implementation
// ([NewAzureAdapter]) built on the armappservice SDK.
//
// Error values defined in errors.go are mapped from ARM response codes by
// mapResponseError so that callers can use [errors.Is] regardless of which
// SDK call failed (e.g. [ErrNotFound] for 404). The original SDK error stays
// in the chain.
package adapter

import (
	"context"

	"github.com/MKhiriev/appservice-config/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/app_service_adapter_mock.go -package=mock

// WebApp is a read-only handle over a live App Service web app.
type WebApp interface {
	// Name returns the web app name.
	Name() string

	// ID returns the fully qualified ARM resource id of the web app.
	ID() string

	// ResourceGroup returns the resource group the web app lives in.
	ResourceGroup() string

	// Region returns the normalized location of the web app.
	Region() models.Region

	// ServicePlanID returns the ARM id of the App Service plan (server farm)
	// hosting the web app, or an empty string if the app reports none.
	ServicePlanID() string

	// IsDocker reports whether the web app is deployed as a custom container.
	IsDocker() bool

	// DockerImageName returns the image reference from the app's fx version.
	// Empty for native web apps.
	DockerImageName() string

	// Runtime returns the OS, web container and Java version a native web
	// app reports. Fields that cannot be determined are left unset.
	Runtime() models.RuntimeDescriptor

	// AppSettings returns the web app's application settings. The first call
	// may reach the resource provider; errors are returned as-is wrapped.
	AppSettings(ctx context.Context) (map[string]string, error)
}

// ServicePlan is a read-only handle over the App Service plan of a web app.
type ServicePlan interface {
	// Name returns the plan name.
	Name() string

	// Entity returns the plan's resource group and pricing tier, or nil when
	// the plan could not be resolved.
	Entity() *models.ServicePlanEntity
}

// RegionCatalog lists the regions available for web apps.
type RegionCatalog interface {
	// ListSupportedRegions returns the regions subscriptionID can create web
	// apps in, in the order the resource provider reports them.
	ListSupportedRegions(ctx context.Context, subscriptionID string) ([]models.Region, error)
}

// AppServiceAdapter resolves web app and plan handles and lists regions.
type AppServiceAdapter interface {
	RegionCatalog

	// GetWebApp reads the web app resourceGroup/name in subscriptionID.
	// Returns [ErrNotFound] (wrapped) if it does not exist.
	GetWebApp(ctx context.Context, subscriptionID, resourceGroup, name string) (WebApp, error)

	// GetServicePlan reads the plan hosting app. A plan that does not exist
	// or an app without a plan id yields a handle with a nil Entity.
	GetServicePlan(ctx context.Context, app WebApp) (ServicePlan, error)
}
