package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oakwell/identityd/internal/services/identity/storage"
)

const sessionColumns = "id, user_id, expires_at, session_token, access_token, created_at, updated_at"

func scanSession(row userScanner) (storage.Session, error) {
	var session storage.Session
	var expiresAt int64
	var createdAt int64
	var updatedAt int64
	if err := row.Scan(
		&session.ID,
		&session.UserID,
		&expiresAt,
		&session.SessionToken,
		&session.AccessToken,
		&createdAt,
		&updatedAt,
	); err != nil {
		return storage.Session{}, err
	}
	session.ExpiresAt = fromMillis(expiresAt)
	session.CreatedAt = fromMillis(createdAt)
	session.UpdatedAt = fromMillis(updatedAt)
	return session, nil
}

// CreateSession inserts a session record.
func (s *Store) CreateSession(ctx context.Context, session storage.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(session.ID) == "" {
		return fmt.Errorf("session id is required")
	}
	if strings.TrimSpace(session.UserID) == "" {
		return fmt.Errorf("session user id is required")
	}
	if strings.TrimSpace(session.SessionToken) == "" {
		return fmt.Errorf("session token is required")
	}
	if strings.TrimSpace(session.AccessToken) == "" {
		return fmt.Errorf("access token is required")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO sessions (id, user_id, expires_at, session_token, access_token, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		session.ID,
		session.UserID,
		toMillis(session.ExpiresAt),
		session.SessionToken,
		session.AccessToken,
		toMillis(session.CreatedAt),
		toMillis(session.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrConflict
		}
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

// GetSessionByToken fetches a session by its long-lived session token.
func (s *Store) GetSessionByToken(ctx context.Context, sessionToken string) (storage.Session, error) {
	return s.getSessionBy(ctx, "session_token", sessionToken)
}

// GetSessionByAccessToken fetches a session by its short-lived access token.
func (s *Store) GetSessionByAccessToken(ctx context.Context, accessToken string) (storage.Session, error) {
	return s.getSessionBy(ctx, "access_token", accessToken)
}

func (s *Store) getSessionBy(ctx context.Context, column, token string) (storage.Session, error) {
	if err := ctx.Err(); err != nil {
		return storage.Session{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Session{}, fmt.Errorf("storage is not configured")
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return storage.Session{}, fmt.Errorf("token is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT `+sessionColumns+` FROM sessions WHERE `+column+` = ?`,
		token,
	)
	session, err := scanSession(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Session{}, storage.ErrNotFound
		}
		return storage.Session{}, fmt.Errorf("get session: %w", err)
	}
	return session, nil
}

// UpdateSessionTokens replaces a session's access token and expiry in a
// single statement. A reader can never observe the new access token with the
// old expiry or vice versa.
func (s *Store) UpdateSessionTokens(ctx context.Context, sessionID, newAccessToken string, newExpiresAt, updatedAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return fmt.Errorf("session id is required")
	}
	newAccessToken = strings.TrimSpace(newAccessToken)
	if newAccessToken == "" {
		return fmt.Errorf("access token is required")
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE sessions SET access_token = ?, expires_at = ?, updated_at = ? WHERE id = ?`,
		newAccessToken,
		toMillis(newExpiresAt),
		toMillis(updatedAt),
		sessionID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrConflict
		}
		return fmt.Errorf("update session tokens: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update session tokens rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// DeleteSession removes a session by session token. Absent is not an error:
// revocation is idempotent.
func (s *Store) DeleteSession(ctx context.Context, sessionToken string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	sessionToken = strings.TrimSpace(sessionToken)
	if sessionToken == "" {
		return fmt.Errorf("session token is required")
	}

	if _, err := s.sqlDB.ExecContext(
		ctx,
		`DELETE FROM sessions WHERE session_token = ?`,
		sessionToken,
	); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// DeleteExpiredSessions removes sessions whose expiry has passed.
func (s *Store) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`DELETE FROM sessions WHERE expires_at <= ?`,
		toMillis(now),
	)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions rows affected: %w", err)
	}
	return affected, nil
}
