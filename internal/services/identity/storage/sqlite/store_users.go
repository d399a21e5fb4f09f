package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oakwell/identityd/internal/services/identity/storage"
	"github.com/oakwell/identityd/internal/services/identity/user"
)

const userColumns = "id, name, email, email_verified, image, created_at, updated_at"

type userScanner interface {
	Scan(dest ...any) error
}

func scanUser(row userScanner) (user.User, error) {
	var u user.User
	var email sql.NullString
	var emailVerified sql.NullInt64
	var createdAt int64
	var updatedAt int64
	if err := row.Scan(&u.ID, &u.Name, &email, &emailVerified, &u.Image, &createdAt, &updatedAt); err != nil {
		return user.User{}, err
	}
	if email.Valid {
		u.Email = email.String
	}
	if emailVerified.Valid {
		value := fromMillis(emailVerified.Int64)
		u.EmailVerified = &value
	}
	u.CreatedAt = fromMillis(createdAt)
	u.UpdatedAt = fromMillis(updatedAt)
	return u, nil
}

// emailValue maps the empty string to NULL so the partial unique index only
// constrains users that actually carry an email.
func emailValue(email string) sql.NullString {
	if strings.TrimSpace(email) == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: email, Valid: true}
}

func timeValue(value *time.Time) sql.NullInt64 {
	if value == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: toMillis(*value), Valid: true}
}

// CreateUser inserts a user record.
func (s *Store) CreateUser(ctx context.Context, u user.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(u.ID) == "" {
		return fmt.Errorf("user id is required")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO users (id, name, email, email_verified, image, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		u.ID,
		u.Name,
		emailValue(u.Email),
		timeValue(u.EmailVerified),
		u.Image,
		toMillis(u.CreatedAt),
		toMillis(u.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrConflict
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// GetUser fetches a user record by ID.
func (s *Store) GetUser(ctx context.Context, userID string) (user.User, error) {
	if err := ctx.Err(); err != nil {
		return user.User{}, err
	}
	if s == nil || s.sqlDB == nil {
		return user.User{}, fmt.Errorf("storage is not configured")
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return user.User{}, fmt.Errorf("user id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`,
		userID,
	)
	found, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user.User{}, storage.ErrNotFound
		}
		return user.User{}, fmt.Errorf("get user: %w", err)
	}
	return found, nil
}

// GetUserByEmail fetches a user record by normalized email.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	if err := ctx.Err(); err != nil {
		return user.User{}, err
	}
	if s == nil || s.sqlDB == nil {
		return user.User{}, fmt.Errorf("storage is not configured")
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return user.User{}, fmt.Errorf("email is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`,
		email,
	)
	found, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user.User{}, storage.ErrNotFound
		}
		return user.User{}, fmt.Errorf("get user by email: %w", err)
	}
	return found, nil
}

// UpdateUser replaces the mutable profile fields of an existing user.
func (s *Store) UpdateUser(ctx context.Context, u user.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(u.ID) == "" {
		return fmt.Errorf("user id is required")
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE users
		    SET name = ?, email = ?, email_verified = ?, image = ?, updated_at = ?
		  WHERE id = ?`,
		u.Name,
		emailValue(u.Email),
		timeValue(u.EmailVerified),
		u.Image,
		toMillis(u.UpdatedAt),
		u.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrConflict
		}
		return fmt.Errorf("update user: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update user rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// DeleteUser removes a user and cascades to accounts and sessions.
//
// The deletes run in one transaction so a crash can never leave orphaned
// accounts or live sessions for a removed identity, independent of whether
// the connection has foreign-key enforcement enabled.
func (s *Store) DeleteUser(ctx context.Context, userID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return fmt.Errorf("user id is required")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("start transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM sessions WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("delete user sessions: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM accounts WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("delete user accounts: %w", err)
	}
	result, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, userID)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete user rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit user deletion: %w", err)
	}
	return nil
}

// ListUsers returns a page of user records ordered by id, using the last
// seen id as the page token.
func (s *Store) ListUsers(ctx context.Context, pageSize int, pageToken string) (storage.UserPage, error) {
	if err := ctx.Err(); err != nil {
		return storage.UserPage{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.UserPage{}, fmt.Errorf("storage is not configured")
	}
	if pageSize <= 0 {
		return storage.UserPage{}, fmt.Errorf("page size must be greater than zero")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT `+userColumns+` FROM users WHERE id > ? ORDER BY id LIMIT ?`,
		pageToken,
		pageSize+1,
	)
	if err != nil {
		return storage.UserPage{}, fmt.Errorf("list users: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var page storage.UserPage
	for rows.Next() {
		found, err := scanUser(rows)
		if err != nil {
			return storage.UserPage{}, fmt.Errorf("scan user: %w", err)
		}
		page.Users = append(page.Users, found)
	}
	if err := rows.Err(); err != nil {
		return storage.UserPage{}, fmt.Errorf("iterate users: %w", err)
	}

	if len(page.Users) > pageSize {
		page.Users = page.Users[:pageSize]
		page.NextPageToken = page.Users[pageSize-1].ID
	}
	return page, nil
}
