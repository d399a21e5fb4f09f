// Package verification manages single-use tokens proving control of an
// identifier, typically an email address awaiting confirmation.
package verification

import (
	"context"
	"errors"
	"strings"
	"time"

	apperrors "github.com/oakwell/identityd/internal/platform/errors"
	"github.com/oakwell/identityd/internal/platform/id"
	"github.com/oakwell/identityd/internal/services/identity/storage"
)

// Status reports the outcome of a token verification.
type Status int

const (
	// StatusUnknown is the zero value and never returned.
	StatusUnknown Status = iota
	// StatusOK means the token was valid and is now consumed.
	StatusOK
	// StatusExpired means the token matched but its expiry had passed. The
	// token is consumed either way so the same string can never verify later.
	StatusExpired
	// StatusNotFound means no such token exists, including tokens already
	// consumed by an earlier call.
	StatusNotFound
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusExpired:
		return "expired"
	case StatusNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Result is the outcome of a Verify call. Request is populated only when a
// record matched, expired or not.
type Result struct {
	Status  Status
	Request storage.VerificationRequest
}

// Manager owns the verification token lifecycle. Tokens are opaque secrets
// minted by the caller; the manager enforces single use and expiry over them.
type Manager struct {
	store storage.VerificationStore

	clock       func() time.Time
	idGenerator func() (string, error)
}

// NewManager creates a verification manager backed by the given store.
func NewManager(store storage.VerificationStore) *Manager {
	return &Manager{
		store:       store,
		clock:       time.Now,
		idGenerator: id.NewID,
	}
}

// WithClock overrides the time source.
func (m *Manager) WithClock(clock func() time.Time) *Manager {
	if clock != nil {
		m.clock = clock
	}
	return m
}

// WithIDGenerator overrides the record id source.
func (m *Manager) WithIDGenerator(idGenerator func() (string, error)) *Manager {
	if idGenerator != nil {
		m.idGenerator = idGenerator
	}
	return m
}

// Issue stores a verification token for an identifier with
// expiry = now + ttl.
//
// An unconsumed record for the same (identifier, token) pair fails with
// Conflict; the caller must mint a fresh token. A negative ttl is rejected.
func (m *Manager) Issue(ctx context.Context, identifier, token string, ttl time.Duration) (storage.VerificationRequest, error) {
	if m == nil || m.store == nil {
		return storage.VerificationRequest{}, apperrors.New(apperrors.CodeUnavailable, "verification manager is not configured")
	}
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return storage.VerificationRequest{}, apperrors.New(apperrors.CodeIdentifierRequired, "identifier is required")
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return storage.VerificationRequest{}, apperrors.New(apperrors.CodeTokenRequired, "token is required")
	}
	if ttl < 0 {
		return storage.VerificationRequest{}, apperrors.New(apperrors.CodeTTLInvalid, "ttl must not be negative")
	}

	requestID, err := m.idGenerator()
	if err != nil {
		return storage.VerificationRequest{}, err
	}
	now := m.clock().UTC()
	request := storage.VerificationRequest{
		ID:         requestID,
		Identifier: identifier,
		Token:      token,
		ExpiresAt:  now.Add(ttl),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := m.store.CreateVerificationRequest(ctx, request); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return storage.VerificationRequest{}, apperrors.Wrap(apperrors.CodeConflict, "verification token already exists", err)
		}
		return storage.VerificationRequest{}, err
	}
	return request, nil
}

// Verify consumes a token and reports whether it was still valid.
//
// The token is removed whenever it matches, valid or expired, so a given
// token string verifies at most once. Concurrent calls for the same token
// resolve to one StatusOK and the rest StatusNotFound.
func (m *Manager) Verify(ctx context.Context, identifier, token string) (Result, error) {
	if m == nil || m.store == nil {
		return Result{}, apperrors.New(apperrors.CodeUnavailable, "verification manager is not configured")
	}
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return Result{}, apperrors.New(apperrors.CodeIdentifierRequired, "identifier is required")
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return Result{}, apperrors.New(apperrors.CodeTokenRequired, "token is required")
	}

	request, err := m.store.ConsumeVerificationRequest(ctx, identifier, token)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return Result{Status: StatusNotFound}, nil
		}
		return Result{}, err
	}
	if !m.clock().UTC().Before(request.ExpiresAt) {
		return Result{Status: StatusExpired, Request: request}, nil
	}
	return Result{Status: StatusOK, Request: request}, nil
}

// Sweep removes unconsumed tokens whose expiry has passed and reports how
// many were deleted.
func (m *Manager) Sweep(ctx context.Context) (int64, error) {
	if m == nil || m.store == nil {
		return 0, apperrors.New(apperrors.CodeUnavailable, "verification manager is not configured")
	}
	return m.store.DeleteExpiredVerificationRequests(ctx, m.clock().UTC())
}
