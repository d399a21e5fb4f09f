// Package identity exposes the identity.v1 gRPC surface: user records,
// provider account links, sessions, and verification tokens. Handlers
// validate request shape, delegate to the managers and stores, and map
// domain errors onto gRPC status codes.
package identity
