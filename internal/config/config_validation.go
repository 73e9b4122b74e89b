// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/appservice-config/models"
)

// validate checks that the final merged [StructuredConfig] can be used by the
// commands. All violations are reported together.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	switch strings.ToLower(cfg.Azure.Cloud) {
	case CloudPublic, CloudChina, CloudUSGovernment:
	default:
		errs = append(errs, fmt.Errorf("%w: cloud %q", ErrInvalidAzureConfigs, cfg.Azure.Cloud))
	}

	if strings.TrimSpace(cfg.Defaults.Region) == "" {
		errs = append(errs, fmt.Errorf("%w: empty region", ErrInvalidDefaultsConfigs))
	}
	if _, err := models.ParsePricingTier(cfg.Defaults.PricingTier); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidDefaultsConfigs, err))
	}
	if os, err := models.ParseOperatingSystem(cfg.Defaults.OS); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidDefaultsConfigs, err))
	} else if !os.IsNative() {
		errs = append(errs, fmt.Errorf("%w: default os must be Linux or Windows, got %q", ErrInvalidDefaultsConfigs, cfg.Defaults.OS))
	}
	if _, err := models.ParseJavaVersion(cfg.Defaults.JavaVersion); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidDefaultsConfigs, err))
	}

	switch strings.ToLower(cfg.Output.Format) {
	case FormatYAML, FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("%w: format %q", ErrInvalidOutputConfigs, cfg.Output.Format))
	}

	return errors.Join(errs...)
}
