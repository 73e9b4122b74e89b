package adapter

import "errors"

var (
	ErrBadRequest      = errors.New("bad request")
	ErrUnauthorized    = errors.New("client unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("resource not found")
	ErrConflict        = errors.New("conflict")
	ErrTooManyRequests = errors.New("too many requests")
	ErrUpstream        = errors.New("resource provider error")

	ErrInvalidResourceID   = errors.New("invalid resource id")
	ErrUnknownCloud        = errors.New("unknown azure cloud")
	ErrMissingSubscription = errors.New("subscription id is required")
	ErrNilCredential       = errors.New("azure adapter: nil credential")
)
