package validators

import (
	"context"
	"fmt"
	"regexp"

	"github.com/MKhiriev/appservice-config/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldAppName targets the web app name.
	FieldAppName = "app_name"

	// FieldResourceGroup targets the resource group of the web app.
	FieldResourceGroup = "resource_group"

	// FieldRuntime targets the runtime union.
	FieldRuntime = "runtime"

	// FieldRegion targets the location of the web app.
	FieldRegion = "region"
)

const (
	minAppNameLength       = 2
	maxAppNameLength       = 60
	maxResourceGroupLength = 90
)

var (
	appNamePattern       = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9-]*[A-Za-z0-9])?$`)
	resourceGroupPattern = regexp.MustCompile(`^[-\w.()]*[-\w()]$`)
)

// AppConfigValidator checks the naming and runtime rules App Service
// enforces on a web app configuration.
type AppConfigValidator struct {
}

func NewAppConfigValidator() Validator {
	return &AppConfigValidator{}
}

// Validate accepts models.AppConfig or *models.AppConfig. Without fields it
// validates app name, resource group, runtime and region; the first failing
// rule is returned.
func (v *AppConfigValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.AppConfig:
		return v.validateAppConfig(ctx, value, fields...)
	case *models.AppConfig:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateAppConfig(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *AppConfigValidator) validateAppConfig(_ context.Context, cfg models.AppConfig, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAppName, FieldResourceGroup, FieldRuntime, FieldRegion}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldAppName:
			err = validateAppName(cfg.AppName)
		case FieldResourceGroup:
			err = validateResourceGroup(cfg.ResourceGroup)
		case FieldRuntime:
			err = validateRuntime(cfg.Runtime)
		case FieldRegion:
			if cfg.Region == "" || models.NewRegion(cfg.Region.String()) != cfg.Region {
				err = fmt.Errorf("%w: %q", ErrInvalidRegion, cfg.Region)
			}
		default:
			err = fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func validateAppName(name string) error {
	if len(name) < minAppNameLength || len(name) > maxAppNameLength {
		return fmt.Errorf("%w: %q must be %d to %d characters long", ErrInvalidAppName, name, minAppNameLength, maxAppNameLength)
	}
	if !appNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q may contain only alphanumerics and hyphens and cannot start or end with a hyphen", ErrInvalidAppName, name)
	}
	return nil
}

func validateResourceGroup(name string) error {
	if name == "" || len(name) > maxResourceGroupLength {
		return fmt.Errorf("%w: %q must be 1 to %d characters long", ErrInvalidResourceGroup, name, maxResourceGroupLength)
	}
	if !resourceGroupPattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidResourceGroup, name)
	}
	return nil
}

func validateRuntime(runtime models.Runtime) error {
	switch r := runtime.(type) {
	case *models.DockerRuntime:
		if r == nil {
			return ErrMissingRuntime
		}
		if r.Image == "" {
			return ErrMissingDockerImage
		}
	case *models.NativeRuntime:
		if r == nil {
			return ErrMissingRuntime
		}
		if !r.OS.IsNative() {
			return fmt.Errorf("%w: got %q", ErrInvalidNativeOS, r.OS)
		}
	default:
		return ErrMissingRuntime
	}
	return nil
}
