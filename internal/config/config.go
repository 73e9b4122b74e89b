// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// StructuredConfig is the top-level configuration of the appservice-config
// tool. It is populated by merging CLI flags, environment variables, an
// optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Azure holds the subscription, tenant and cloud used to reach
	// Azure Resource Manager.
	Azure Azure `envPrefix:"AZURE_"`

	// Defaults holds the values default web app configurations start from.
	Defaults Defaults `envPrefix:"DEFAULTS_"`

	// Output controls how configuration documents are written.
	Output Output `envPrefix:"OUTPUT_"`

	// Log controls the verbosity of the structured logger.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the --config-file flag.
	JSONFilePath string `env:"CONFIG"`
}

// Azure holds Azure Resource Manager connection settings.
type Azure struct {
	// SubscriptionID is the subscription used when a command does not name
	// one explicitly.
	// Env: AZURE_SUBSCRIPTION_ID
	SubscriptionID string `env:"SUBSCRIPTION_ID"`

	// TenantID restricts credential acquisition to a single tenant.
	// Env: AZURE_TENANT_ID
	TenantID string `env:"TENANT_ID"`

	// Cloud selects the Azure cloud: "public", "china" or "usgovernment".
	// Env: AZURE_CLOUD
	Cloud string `env:"CLOUD"`
}

// Defaults holds the starting values of a default web app configuration.
type Defaults struct {
	// Region is the preferred location (e.g. "westeurope"). It is replaced
	// by the first supported region when the subscription does not offer it.
	// Env: DEFAULTS_REGION
	Region string `env:"REGION"`

	// PricingTier is the App Service plan SKU size (e.g. "P1v2").
	// Env: DEFAULTS_PRICING_TIER
	PricingTier string `env:"PRICING_TIER"`

	// OS is the operating system of native runtimes ("Linux" or "Windows").
	// Env: DEFAULTS_OS
	OS string `env:"OS"`

	// JavaVersion is used when the caller does not specify one (e.g. "Java 17").
	// Env: DEFAULTS_JAVA_VERSION
	JavaVersion string `env:"JAVA_VERSION"`
}

// Output controls document rendering.
type Output struct {
	// Format is "yaml" or "json".
	// Env: OUTPUT_FORMAT
	Format string `env:"FORMAT"`
}

// Log controls logging.
type Log struct {
	// Verbose enables debug-level logging.
	// Env: LOG_VERBOSE
	Verbose bool `env:"VERBOSE"`
}

// builtin is the lowest-priority configuration source.
func builtin() *StructuredConfig {
	return &StructuredConfig{
		Azure: Azure{
			Cloud: CloudPublic,
		},
		Defaults: Defaults{
			Region:      "westeurope",
			PricingTier: "P1v2",
			OS:          "Linux",
			JavaVersion: "Java 8",
		},
		Output: Output{
			Format: FormatYAML,
		},
	}
}

// Supported values of Azure.Cloud and Output.Format.
const (
	CloudPublic       = "public"
	CloudChina        = "china"
	CloudUSGovernment = "usgovernment"

	FormatYAML = "yaml"
	FormatJSON = "json"
)

// GetStructuredConfig loads, merges, and validates the tool configuration.
// Sources are combined so that the first one to set a field wins:
//  1. overrides (values of command-line flags, may be nil)
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig(overrides *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withOverrides(overrides).
		withEnv().
		withJSON().
		withBuiltin().
		build()
}
