// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads the environment layer of the configuration. Azure settings
// come from AZURE_* (AZURE_SUBSCRIPTION_ID, AZURE_TENANT_ID, AZURE_CLOUD),
// fallback app values from DEFAULTS_* (DEFAULTS_REGION, DEFAULTS_PRICING_TIER,
// DEFAULTS_OS, DEFAULTS_JAVA_VERSION), and the remaining settings from
// OUTPUT_FORMAT, LOG_VERBOSE and CONFIG, the path of a JSON config file.
//
// Unset variables leave their fields empty so lower layers can fill them.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("read environment config: %w", err)
	}
	return nil
}
