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

const accountColumns = `id, user_id, provider_type, provider_id, provider_account_id,
       refresh_token, access_token, access_token_expires, created_at, updated_at`

func scanAccount(row userScanner) (storage.Account, error) {
	var account storage.Account
	var accessTokenExpires sql.NullInt64
	var createdAt int64
	var updatedAt int64
	if err := row.Scan(
		&account.ID,
		&account.UserID,
		&account.ProviderType,
		&account.ProviderID,
		&account.ProviderAccountID,
		&account.RefreshToken,
		&account.AccessToken,
		&accessTokenExpires,
		&createdAt,
		&updatedAt,
	); err != nil {
		return storage.Account{}, err
	}
	if accessTokenExpires.Valid {
		value := fromMillis(accessTokenExpires.Int64)
		account.AccessTokenExpires = &value
	}
	account.CreatedAt = fromMillis(createdAt)
	account.UpdatedAt = fromMillis(updatedAt)
	return account, nil
}

func validateAccount(account storage.Account) error {
	if strings.TrimSpace(account.ID) == "" {
		return fmt.Errorf("account id is required")
	}
	if strings.TrimSpace(account.UserID) == "" {
		return fmt.Errorf("account user id is required")
	}
	if strings.TrimSpace(account.ProviderID) == "" {
		return fmt.Errorf("provider id is required")
	}
	if strings.TrimSpace(account.ProviderAccountID) == "" {
		return fmt.Errorf("provider account id is required")
	}
	return nil
}

func insertAccount(ctx context.Context, target interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}, account storage.Account) error {
	_, err := target.ExecContext(
		ctx,
		`INSERT INTO accounts (
		   id, user_id, provider_type, provider_id, provider_account_id,
		   refresh_token, access_token, access_token_expires, created_at, updated_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		account.ID,
		account.UserID,
		account.ProviderType,
		account.ProviderID,
		account.ProviderAccountID,
		account.RefreshToken,
		account.AccessToken,
		timeValue(account.AccessTokenExpires),
		toMillis(account.CreatedAt),
		toMillis(account.UpdatedAt),
	)
	return err
}

// GetAccountByProvider fetches an account by its provider identity.
func (s *Store) GetAccountByProvider(ctx context.Context, providerID, providerAccountID string) (storage.Account, error) {
	if err := ctx.Err(); err != nil {
		return storage.Account{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Account{}, fmt.Errorf("storage is not configured")
	}
	providerID = strings.TrimSpace(providerID)
	providerAccountID = strings.TrimSpace(providerAccountID)
	if providerID == "" || providerAccountID == "" {
		return storage.Account{}, fmt.Errorf("provider identity is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT `+accountColumns+` FROM accounts
		  WHERE provider_id = ? AND provider_account_id = ?`,
		providerID,
		providerAccountID,
	)
	account, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Account{}, storage.ErrNotFound
		}
		return storage.Account{}, fmt.Errorf("get account by provider: %w", err)
	}
	return account, nil
}

// LinkAccount inserts an account for an existing user.
func (s *Store) LinkAccount(ctx context.Context, account storage.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if err := validateAccount(account); err != nil {
		return err
	}

	if err := insertAccount(ctx, s.sqlDB, account); err != nil {
		if isUniqueViolation(err) {
			return storage.ErrConflict
		}
		return fmt.Errorf("link account: %w", err)
	}
	return nil
}

// CreateUserWithAccount inserts a user and its first account atomically.
func (s *Store) CreateUserWithAccount(ctx context.Context, u user.User, account storage.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(u.ID) == "" {
		return fmt.Errorf("user id is required")
	}
	if err := validateAccount(account); err != nil {
		return err
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("start transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(
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
	); err != nil {
		if isUniqueViolation(err) {
			return storage.ErrConflict
		}
		return fmt.Errorf("create user: %w", err)
	}

	if err := insertAccount(ctx, tx, account); err != nil {
		if isUniqueViolation(err) {
			return storage.ErrConflict
		}
		return fmt.Errorf("create account: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit user + account: %w", err)
	}
	return nil
}

// RefreshAccountTokens replaces stored provider tokens for an account.
// Empty replacement fields leave the stored values untouched.
func (s *Store) RefreshAccountTokens(ctx context.Context, accountID string, refresh storage.TokenRefresh, updatedAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return fmt.Errorf("account id is required")
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE accounts
		    SET refresh_token = CASE WHEN ?1 = '' THEN refresh_token ELSE ?1 END,
		        access_token = CASE WHEN ?2 = '' THEN access_token ELSE ?2 END,
		        access_token_expires = CASE WHEN ?2 = '' THEN access_token_expires ELSE ?3 END,
		        updated_at = ?4
		  WHERE id = ?5`,
		refresh.RefreshToken,
		refresh.AccessToken,
		timeValue(refresh.AccessTokenExpires),
		toMillis(updatedAt),
		accountID,
	)
	if err != nil {
		return fmt.Errorf("refresh account tokens: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("refresh account tokens rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// DeleteAccount removes the account for a provider identity. Absent is not
// an error: unlink is idempotent.
func (s *Store) DeleteAccount(ctx context.Context, providerID, providerAccountID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	providerID = strings.TrimSpace(providerID)
	providerAccountID = strings.TrimSpace(providerAccountID)
	if providerID == "" || providerAccountID == "" {
		return fmt.Errorf("provider identity is required")
	}

	if _, err := s.sqlDB.ExecContext(
		ctx,
		`DELETE FROM accounts WHERE provider_id = ? AND provider_account_id = ?`,
		providerID,
		providerAccountID,
	); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	return nil
}
