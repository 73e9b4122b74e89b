// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks web app configurations against the naming and
// runtime rules App Service enforces before a deployment is attempted.
//
// Validate accepts an optional list of field names (see the Field*
// constants) to restrict the check to part of a configuration, e.g. only the
// runtime of a document that does not name its app yet.
package validators

import "context"

// Validator validates a value, optionally restricted to the named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
