package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidAppName       = errors.New("invalid app name")
	ErrInvalidResourceGroup = errors.New("invalid resource group")
	ErrInvalidRegion        = errors.New("invalid region")
	ErrMissingRuntime       = errors.New("runtime is required")
	ErrMissingDockerImage   = errors.New("docker runtime requires an image")
	ErrInvalidNativeOS      = errors.New("native runtime os must be Linux or Windows")
)
