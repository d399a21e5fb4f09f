// Package storage defines the persistence contracts for identity state.
//
// Managers depend on these interfaces only; every cross-entity invariant
// (email uniqueness, provider-identity uniqueness, token single use, atomic
// session rotation) is enforced by the store's conditional writes rather
// than by in-process locks, so the guarantees hold across service replicas.
package storage
