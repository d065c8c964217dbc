// Package common defines shared sentinel errors used across the
// salonbook layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// repository-level errors
	ErrorNotFound = errors.New("not found")

	// service-level errors
	ErrorValidation         = errors.New("validation error")
	ErrorInvalidCredentials = errors.New("invalid phone or password")
	ErrorRemote             = errors.New("remote store error")

	// an overlapping mutation for the same record was rejected
	ErrorBusy = errors.New("operation already in progress")
)
