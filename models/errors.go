package models

import (
	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("duplicate value")
)

// DB related errors
var ErrIgnoreRollBackError = errors.New("ignore rollback error")

// Project and selection related errors
var (
	ErrUnknownProject = errors.Wrap(NotFoundError, "unknown project")

	ErrProjectNameRequired = errors.Wrap(BadParameterError, "project name is required")

	ErrInvalidSelectionPayload = errors.Wrap(BadParameterError,
		"selection payload must be a list of intervention ids")
)

// Intervention catalog related errors
var (
	ErrUnknownIntervention = errors.Wrap(NotFoundError, "unknown intervention")

	ErrUnknownInterventionClass = errors.Wrap(BadParameterError, "unknown intervention class")
)
