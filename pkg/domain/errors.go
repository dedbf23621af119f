package domain

import "errors"

// ErrConfiguration is returned by Configure when a required parameter is missing or out of range.
// It is recoverable: the chain leaves the filter inactive and continues with the others.
var ErrConfiguration = errors.New("invalid filter configuration")

// ErrInvalidInput is returned by Update when the input trajectory violates the model invariants.
var ErrInvalidInput = errors.New("invalid trajectory")

// ErrNotConfigured is returned by Update when the filter has not been configured yet.
// It signals a defect in chain assembly.
var ErrNotConfigured = errors.New("filter not configured")
