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

// CreateVerificationRequest inserts a verification token record.
func (s *Store) CreateVerificationRequest(ctx context.Context, request storage.VerificationRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(request.ID) == "" {
		return fmt.Errorf("verification request id is required")
	}
	if strings.TrimSpace(request.Identifier) == "" {
		return fmt.Errorf("identifier is required")
	}
	if strings.TrimSpace(request.Token) == "" {
		return fmt.Errorf("token is required")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO verification_requests (id, identifier, token, expires_at, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		request.ID,
		request.Identifier,
		request.Token,
		toMillis(request.ExpiresAt),
		toMillis(request.CreatedAt),
		toMillis(request.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrConflict
		}
		return fmt.Errorf("create verification request: %w", err)
	}
	return nil
}

// ConsumeVerificationRequest atomically deletes and returns the record for
// an (identifier, token) pair. The DELETE ... RETURNING form makes the
// find-and-consume a single statement, so exactly one of any number of
// concurrent callers receives the row; the rest observe ErrNotFound.
func (s *Store) ConsumeVerificationRequest(ctx context.Context, identifier, token string) (storage.VerificationRequest, error) {
	if err := ctx.Err(); err != nil {
		return storage.VerificationRequest{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.VerificationRequest{}, fmt.Errorf("storage is not configured")
	}
	identifier = strings.TrimSpace(identifier)
	token = strings.TrimSpace(token)
	if identifier == "" || token == "" {
		return storage.VerificationRequest{}, fmt.Errorf("identifier and token are required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`DELETE FROM verification_requests
		  WHERE identifier = ? AND token = ?
		  RETURNING id, identifier, token, expires_at, created_at, updated_at`,
		identifier,
		token,
	)

	var request storage.VerificationRequest
	var expiresAt int64
	var createdAt int64
	var updatedAt int64
	if err := row.Scan(
		&request.ID,
		&request.Identifier,
		&request.Token,
		&expiresAt,
		&createdAt,
		&updatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.VerificationRequest{}, storage.ErrNotFound
		}
		return storage.VerificationRequest{}, fmt.Errorf("consume verification request: %w", err)
	}
	request.ExpiresAt = fromMillis(expiresAt)
	request.CreatedAt = fromMillis(createdAt)
	request.UpdatedAt = fromMillis(updatedAt)
	return request, nil
}

// DeleteExpiredVerificationRequests removes unconsumed records whose expiry
// has passed.
func (s *Store) DeleteExpiredVerificationRequests(ctx context.Context, now time.Time) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`DELETE FROM verification_requests WHERE expires_at <= ?`,
		toMillis(now),
	)
	if err != nil {
		return 0, fmt.Errorf("delete expired verification requests: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete expired verification requests rows affected: %w", err)
	}
	return affected, nil
}
