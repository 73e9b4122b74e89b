package service

import "errors"

var (
	ErrNilWebApp          = errors.New("web app handle is nil")
	ErrInvalidResourceID  = errors.New("invalid resource id")
	ErrNoSupportedRegions = errors.New("no region is available")
	ErrInvalidDefaults    = errors.New("invalid default configuration")
)
