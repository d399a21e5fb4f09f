// Package errors provides structured error handling with gRPC status mapping.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Storage errors
	CodeNotFound    Code = "NOT_FOUND"
	CodeConflict    Code = "CONFLICT"
	CodeUnavailable Code = "UNAVAILABLE"

	// Lifecycle errors
	CodeExpired Code = "EXPIRED"

	// Validation errors
	CodeUserIDRequired            Code = "USER_ID_REQUIRED"
	CodeEmailInvalid              Code = "EMAIL_INVALID"
	CodeIdentifierRequired        Code = "IDENTIFIER_REQUIRED"
	CodeTokenRequired             Code = "TOKEN_REQUIRED"
	CodeProviderTypeRequired      Code = "PROVIDER_TYPE_REQUIRED"
	CodeProviderIDRequired        Code = "PROVIDER_ID_REQUIRED"
	CodeProviderAccountIDRequired Code = "PROVIDER_ACCOUNT_ID_REQUIRED"
	CodeTTLInvalid                Code = "TTL_INVALID"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeUserIDRequired,
		CodeEmailInvalid,
		CodeIdentifierRequired,
		CodeTokenRequired,
		CodeProviderTypeRequired,
		CodeProviderIDRequired,
		CodeProviderAccountIDRequired,
		CodeTTLInvalid:
		return codes.InvalidArgument

	// FailedPrecondition - state doesn't allow the operation
	case CodeExpired:
		return codes.FailedPrecondition

	// NotFound - resource doesn't exist
	case CodeNotFound:
		return codes.NotFound

	// AlreadyExists - unique resource constraint
	case CodeConflict:
		return codes.AlreadyExists

	// Unavailable - storage or transport failure
	case CodeUnavailable:
		return codes.Unavailable

	default:
		return codes.Internal
	}
}
