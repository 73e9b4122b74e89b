package models

import "errors"

var (
	ErrUnknownOperatingSystem = errors.New("unknown operating system")
	ErrUnknownJavaVersion     = errors.New("unknown java version")
	ErrUnknownWebContainer    = errors.New("unknown web container")
	ErrUnknownPackaging       = errors.New("unknown packaging")
	ErrInvalidPricingTier     = errors.New("invalid pricing tier")
)
