package models

import (
	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// UnAuthorizedError is rendered with the http status code 401
	UnAuthorizedError = errors.New("unauthorized")

	// ForbiddenError is rendered with the http status code 403
	ForbiddenError = errors.New("forbidden")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("duplicate value")
)

// Service order related errors
var (
	ErrOrderNotFound      = errors.Wrap(NotFoundError, "service order not found")
	ErrOrderWrongOrg      = errors.Wrap(ForbiddenError, "service order belongs to another organization")
	ErrUnknownOrderStatus = errors.Wrap(BadParameterError, "unknown service order status")
	ErrSameOrderStatus    = errors.Wrap(BadParameterError, "service order already has this status")
)

// Audit trail related errors
var (
	// ErrAuditNotRecorded is returned when both the validated write path and
	// the direct fallback failed. Callers must treat it as non-fatal for the
	// mutation that triggered the recording.
	ErrAuditNotRecorded = errors.New("audit event could not be recorded")
)
