package adapter

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
)

// mapResponseError classifies an SDK error by its HTTP status. The returned
// error wraps both the sentinel and the original error, so the ARM error code
// and request details remain reachable with errors.As.
func mapResponseError(op string, err error) error {
	if err == nil {
		return nil
	}

	var respErr *azcore.ResponseError
	if !errors.As(err, &respErr) {
		return fmt.Errorf("%s: %w", op, err)
	}

	var sentinel error
	switch respErr.StatusCode {
	case http.StatusBadRequest:
		sentinel = ErrBadRequest
	case http.StatusUnauthorized:
		sentinel = ErrUnauthorized
	case http.StatusForbidden:
		sentinel = ErrForbidden
	case http.StatusNotFound:
		sentinel = ErrNotFound
	case http.StatusConflict:
		sentinel = ErrConflict
	case http.StatusTooManyRequests:
		sentinel = ErrTooManyRequests
	default:
		sentinel = ErrUpstream
	}

	return fmt.Errorf("%s: %w: %w", op, sentinel, err)
}
