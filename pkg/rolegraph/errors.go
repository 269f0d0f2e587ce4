package rolegraph

import "errors"

// Domain errors for role graph operations.
var (
	// ErrNotFound is returned when a link endpoint is not a known role.
	ErrNotFound = errors.New("rolegraph.not_found")

	// ErrInvalidName is returned when a role or domain name is empty or
	// contains the reserved domain separator.
	ErrInvalidName = errors.New("rolegraph.invalid_name")

	// ErrInvalidSeed is returned when a seed document cannot be parsed or applied.
	ErrInvalidSeed = errors.New("rolegraph.invalid_seed")

	// ErrInvalidConfig is returned when configuration values are out of range.
	ErrInvalidConfig = errors.New("rolegraph.invalid_config")

	// ErrSubjectNotInContext is returned when no subject is found in the context.
	ErrSubjectNotInContext = errors.New("rolegraph.subject_not_in_context")
)
