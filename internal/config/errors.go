package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidAzureConfigs indicates an unsupported cloud name.
	ErrInvalidAzureConfigs = errors.New("invalid azure configuration")
	// ErrInvalidDefaultsConfigs indicates a default region, pricing tier,
	// operating system or java version that cannot be parsed.
	ErrInvalidDefaultsConfigs = errors.New("invalid defaults configuration")
	// ErrInvalidOutputConfigs indicates an unsupported output format.
	ErrInvalidOutputConfigs = errors.New("invalid output configuration")
)
