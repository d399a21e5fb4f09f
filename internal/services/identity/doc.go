// Package identity groups the identity service: the canonical user
// aggregate, provider account linking, session lifecycle, verification
// tokens, their storage contracts, and the gRPC surface that exposes them.
package identity
