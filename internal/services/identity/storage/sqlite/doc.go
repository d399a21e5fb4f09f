// Package sqlite provides a SQLite-backed identity storage implementation.
//
// Uniqueness invariants live in the schema: partial unique index on
// users(email), unique indexes on accounts(provider_id, provider_account_id),
// sessions(session_token), sessions(access_token), and
// verification_requests(identifier, token). Violations surface as
// storage.ErrConflict so managers can run their conflict-and-retry loops
// without inspecting driver errors.
package sqlite
