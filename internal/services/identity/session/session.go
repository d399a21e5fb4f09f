// Package session manages the authenticated session lifecycle.
package session

import (
	"context"
	"errors"
	"strings"
	"time"

	apperrors "github.com/oakwell/identityd/internal/platform/errors"
	"github.com/oakwell/identityd/internal/platform/id"
	"github.com/oakwell/identityd/internal/services/identity/storage"
)

// ErrExpired indicates a session whose expiry has passed.
var ErrExpired = apperrors.New(apperrors.CodeExpired, "session has expired")

// Manager owns session issuance, resolution, rotation, and revocation.
//
// Token material is caller-supplied and treated as opaque; the manager never
// mints secrets. Expiry is enforced lazily: expired sessions surface as
// ErrExpired on read and are deleted opportunistically, so a session remains
// invalid even if the background sweep never runs.
type Manager struct {
	store storage.SessionStore

	clock       func() time.Time
	idGenerator func() (string, error)
}

// NewManager creates a session manager backed by the given store.
func NewManager(store storage.SessionStore) *Manager {
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

// WithIDGenerator overrides the session id source.
func (m *Manager) WithIDGenerator(idGenerator func() (string, error)) *Manager {
	if idGenerator != nil {
		m.idGenerator = idGenerator
	}
	return m
}

// IssueInput describes a session to create. Both tokens are opaque secrets
// minted by the caller.
type IssueInput struct {
	UserID       string
	TTL          time.Duration
	SessionToken string
	AccessToken  string
}

// Issue creates a session for a user with the given time to live.
//
// A negative ttl is rejected. A zero ttl is legal and produces a session that
// is already expired; callers exercising expiry paths depend on that. A token
// already held by another session fails with Conflict; the caller must mint a
// fresh one.
func (m *Manager) Issue(ctx context.Context, input IssueInput) (storage.Session, error) {
	if m == nil || m.store == nil {
		return storage.Session{}, apperrors.New(apperrors.CodeUnavailable, "session manager is not configured")
	}
	input.UserID = strings.TrimSpace(input.UserID)
	if input.UserID == "" {
		return storage.Session{}, apperrors.New(apperrors.CodeUserIDRequired, "user id is required")
	}
	if input.TTL < 0 {
		return storage.Session{}, apperrors.New(apperrors.CodeTTLInvalid, "ttl must not be negative")
	}
	input.SessionToken = strings.TrimSpace(input.SessionToken)
	if input.SessionToken == "" {
		return storage.Session{}, apperrors.New(apperrors.CodeTokenRequired, "session token is required")
	}
	input.AccessToken = strings.TrimSpace(input.AccessToken)
	if input.AccessToken == "" {
		return storage.Session{}, apperrors.New(apperrors.CodeTokenRequired, "access token is required")
	}

	sessionID, err := m.idGenerator()
	if err != nil {
		return storage.Session{}, err
	}
	now := m.clock().UTC()
	session := storage.Session{
		ID:           sessionID,
		UserID:       input.UserID,
		ExpiresAt:    now.Add(input.TTL),
		SessionToken: input.SessionToken,
		AccessToken:  input.AccessToken,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := m.store.CreateSession(ctx, session); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return storage.Session{}, apperrors.Wrap(apperrors.CodeConflict, "session token already in use", err)
		}
		return storage.Session{}, err
	}
	return session, nil
}

// Resolve returns the live session for a session token.
func (m *Manager) Resolve(ctx context.Context, sessionToken string) (storage.Session, error) {
	return m.resolve(ctx, sessionToken, storage.SessionStore.GetSessionByToken)
}

// ResolveAccess returns the live session for an access token.
func (m *Manager) ResolveAccess(ctx context.Context, accessToken string) (storage.Session, error) {
	return m.resolve(ctx, accessToken, storage.SessionStore.GetSessionByAccessToken)
}

func (m *Manager) resolve(ctx context.Context, token string, lookup func(storage.SessionStore, context.Context, string) (storage.Session, error)) (storage.Session, error) {
	if m == nil || m.store == nil {
		return storage.Session{}, apperrors.New(apperrors.CodeUnavailable, "session manager is not configured")
	}
	if strings.TrimSpace(token) == "" {
		return storage.Session{}, apperrors.New(apperrors.CodeTokenRequired, "token is required")
	}

	session, err := lookup(m.store, ctx, token)
	if err != nil {
		return storage.Session{}, err
	}
	if m.expired(session) {
		m.deleteQuietly(ctx, session.SessionToken)
		return storage.Session{}, ErrExpired
	}
	return session, nil
}

// Rotate replaces a session's access token and extends its expiry. The
// session token is stable across rotations; only the access token changes.
func (m *Manager) Rotate(ctx context.Context, sessionToken, newAccessToken string, ttl time.Duration) (storage.Session, error) {
	if m == nil || m.store == nil {
		return storage.Session{}, apperrors.New(apperrors.CodeUnavailable, "session manager is not configured")
	}
	if strings.TrimSpace(sessionToken) == "" {
		return storage.Session{}, apperrors.New(apperrors.CodeTokenRequired, "session token is required")
	}
	newAccessToken = strings.TrimSpace(newAccessToken)
	if newAccessToken == "" {
		return storage.Session{}, apperrors.New(apperrors.CodeTokenRequired, "new access token is required")
	}
	if ttl < 0 {
		return storage.Session{}, apperrors.New(apperrors.CodeTTLInvalid, "ttl must not be negative")
	}

	session, err := m.store.GetSessionByToken(ctx, sessionToken)
	if err != nil {
		return storage.Session{}, err
	}
	if m.expired(session) {
		m.deleteQuietly(ctx, session.SessionToken)
		return storage.Session{}, ErrExpired
	}

	now := m.clock().UTC()
	expiresAt := now.Add(ttl)
	if err := m.store.UpdateSessionTokens(ctx, session.ID, newAccessToken, expiresAt, now); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return storage.Session{}, apperrors.Wrap(apperrors.CodeConflict, "access token already in use", err)
		}
		return storage.Session{}, err
	}
	session.AccessToken = newAccessToken
	session.ExpiresAt = expiresAt
	session.UpdatedAt = now
	return session, nil
}

// Revoke deletes a session by session token. Revoking an absent session is
// a no-op.
func (m *Manager) Revoke(ctx context.Context, sessionToken string) error {
	if m == nil || m.store == nil {
		return apperrors.New(apperrors.CodeUnavailable, "session manager is not configured")
	}
	if strings.TrimSpace(sessionToken) == "" {
		return apperrors.New(apperrors.CodeTokenRequired, "session token is required")
	}
	return m.store.DeleteSession(ctx, sessionToken)
}

// Sweep removes sessions whose expiry has passed and reports how many were
// deleted.
func (m *Manager) Sweep(ctx context.Context) (int64, error) {
	if m == nil || m.store == nil {
		return 0, apperrors.New(apperrors.CodeUnavailable, "session manager is not configured")
	}
	return m.store.DeleteExpiredSessions(ctx, m.clock().UTC())
}

func (m *Manager) expired(session storage.Session) bool {
	return !m.clock().UTC().Before(session.ExpiresAt)
}

// deleteQuietly removes an expired session on the read path. Failure is
// ignored: the caller already received ErrExpired and the sweep will retry.
func (m *Manager) deleteQuietly(ctx context.Context, sessionToken string) {
	_ = m.store.DeleteSession(ctx, sessionToken)
}
