package storage

import (
	"context"
	"time"

	"github.com/oakwell/identityd/internal/platform/errors"
	"github.com/oakwell/identityd/internal/services/identity/user"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New(errors.CodeNotFound, "record not found")

// ErrConflict indicates a write violated a uniqueness constraint: duplicate
// email, duplicate provider identity, or duplicate session token.
var ErrConflict = errors.New(errors.CodeConflict, "record already exists")

// Account links a user to one external provider identity. The pair
// (ProviderID, ProviderAccountID) is globally unique.
type Account struct {
	ID                 string
	UserID             string
	ProviderType       string
	ProviderID         string
	ProviderAccountID  string
	RefreshToken       string
	AccessToken        string
	AccessTokenExpires *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Session is a live authenticated session. SessionToken is the long-lived
// browser secret; AccessToken is the short-lived API secret that rotation
// replaces. Both are unique across stored sessions.
type Session struct {
	ID           string
	UserID       string
	ExpiresAt    time.Time
	SessionToken string
	AccessToken  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// VerificationRequest is a single-use token proving control of an
// identifier. It carries no user reference: the user may not exist yet when
// the token is issued.
type VerificationRequest struct {
	ID         string
	Identifier string
	Token      string
	ExpiresAt  time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TokenRefresh carries replacement provider tokens for a stored account.
// Empty fields leave the stored values untouched.
type TokenRefresh struct {
	RefreshToken       string
	AccessToken        string
	AccessTokenExpires *time.Time
}

// UserPage describes a page of user records.
type UserPage struct {
	Users         []user.User
	NextPageToken string
}

// UserStore persists canonical user records.
type UserStore interface {
	// CreateUser inserts a user. It fails with ErrConflict when the email is
	// already claimed.
	CreateUser(ctx context.Context, u user.User) error
	GetUser(ctx context.Context, userID string) (user.User, error)
	GetUserByEmail(ctx context.Context, email string) (user.User, error)
	// UpdateUser replaces mutable profile fields. ErrNotFound when the id is
	// absent, ErrConflict when the new email is claimed by another user.
	UpdateUser(ctx context.Context, u user.User) error
	// DeleteUser removes a user and cascades to its accounts and sessions in
	// one transaction.
	DeleteUser(ctx context.Context, userID string) error
	ListUsers(ctx context.Context, pageSize int, pageToken string) (UserPage, error)
}

// AccountStore persists provider account links.
type AccountStore interface {
	GetAccountByProvider(ctx context.Context, providerID, providerAccountID string) (Account, error)
	// LinkAccount inserts an account for an existing user. ErrConflict when
	// the provider identity already maps to a user.
	LinkAccount(ctx context.Context, account Account) error
	// CreateUserWithAccount inserts a user and its first account atomically.
	// Either both rows commit or neither does.
	CreateUserWithAccount(ctx context.Context, u user.User, account Account) error
	// RefreshAccountTokens replaces stored provider tokens.
	RefreshAccountTokens(ctx context.Context, accountID string, refresh TokenRefresh, updatedAt time.Time) error
	// DeleteAccount removes the account for a provider identity. Deleting an
	// absent account is not an error.
	DeleteAccount(ctx context.Context, providerID, providerAccountID string) error
}

// SessionStore persists live sessions.
type SessionStore interface {
	// CreateSession inserts a session. ErrConflict when either token is
	// already in use.
	CreateSession(ctx context.Context, session Session) error
	GetSessionByToken(ctx context.Context, sessionToken string) (Session, error)
	GetSessionByAccessToken(ctx context.Context, accessToken string) (Session, error)
	// UpdateSessionTokens atomically replaces a session's access token and
	// expiry. No reader ever observes one field updated without the other.
	UpdateSessionTokens(ctx context.Context, sessionID, newAccessToken string, newExpiresAt, updatedAt time.Time) error
	// DeleteSession removes a session by session token; absent is not an error.
	DeleteSession(ctx context.Context, sessionToken string) error
	// DeleteExpiredSessions removes sessions whose expiry is at or before now.
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// VerificationStore persists single-use verification tokens.
type VerificationStore interface {
	// CreateVerificationRequest inserts a token. ErrConflict when an
	// unconsumed (identifier, token) pair already exists.
	CreateVerificationRequest(ctx context.Context, request VerificationRequest) error
	// ConsumeVerificationRequest atomically finds and deletes the matching
	// record, returning it. Among concurrent callers exactly one receives
	// the record; the rest receive ErrNotFound.
	ConsumeVerificationRequest(ctx context.Context, identifier, token string) (VerificationRequest, error)
	// DeleteExpiredVerificationRequests removes unconsumed records whose
	// expiry is at or before now.
	DeleteExpiredVerificationRequests(ctx context.Context, now time.Time) (int64, error)
}
