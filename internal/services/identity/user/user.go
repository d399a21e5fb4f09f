// Package user provides the canonical identity aggregate.
package user

import (
	"net/mail"
	"strings"
	"time"

	apperrors "github.com/oakwell/identityd/internal/platform/errors"
	"github.com/oakwell/identityd/internal/platform/id"
)

var (
	// ErrEmailInvalid indicates an email that does not parse as an address.
	ErrEmailInvalid = apperrors.New(apperrors.CodeEmailInvalid, "email is invalid")
)

// User represents a canonical identity record.
//
// Email and EmailVerified are optional: a user created from an OAuth profile
// without an email address is still a complete identity. When Email is set
// it is stored case-normalized and is unique across all users.
type User struct {
	ID            string
	Name          string
	Email         string
	EmailVerified *time.Time
	Image         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CreateUserInput describes the profile data needed to create a user.
type CreateUserInput struct {
	Name          string
	Email         string
	EmailVerified *time.Time
	Image         string
}

// NormalizeEmail lowercases and validates an email address. An empty input
// is returned unchanged: absence is legal, malformation is not.
func NormalizeEmail(email string) (string, error) {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return "", nil
	}
	parsed, err := mail.ParseAddress(trimmed)
	if err != nil {
		return "", ErrEmailInvalid
	}
	return strings.ToLower(parsed.Address), nil
}

// CreateUser creates a durable user identity from validated input.
//
// This is the canonical point where untrusted profile data becomes a stable
// identity; linking, session, and verification paths all build on the record
// produced here rather than re-validating profile fields downstream.
func CreateUser(input CreateUserInput, now func() time.Time, idGenerator func() (string, error)) (User, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}

	email, err := NormalizeEmail(input.Email)
	if err != nil {
		return User{}, err
	}

	userID, err := idGenerator()
	if err != nil {
		return User{}, err
	}

	createdAt := now().UTC()
	return User{
		ID:            userID,
		Name:          strings.TrimSpace(input.Name),
		Email:         email,
		EmailVerified: input.EmailVerified,
		Image:         strings.TrimSpace(input.Image),
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}, nil
}
