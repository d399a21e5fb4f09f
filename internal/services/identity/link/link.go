// Package link resolves external provider sign-ins to canonical users.
package link

import (
	"context"
	"errors"
	"strings"
	"time"

	apperrors "github.com/oakwell/identityd/internal/platform/errors"
	"github.com/oakwell/identityd/internal/platform/id"
	"github.com/oakwell/identityd/internal/services/identity/storage"
	"github.com/oakwell/identityd/internal/services/identity/user"
)

// maxAttempts bounds the conflict-and-retry loop. Conflicts only occur when
// another caller races the same provider identity or email, so the loop
// converges quickly or the racing winner's record is returned.
const maxAttempts = 3

// Outcome describes how a sign-in resolved to a user.
type Outcome int

const (
	// OutcomeUnknown is the zero value and never returned on success.
	OutcomeUnknown Outcome = iota
	// OutcomeCreated means a new user and account were created.
	OutcomeCreated
	// OutcomeLinked means the account was attached to an existing user.
	OutcomeLinked
	// OutcomeRefreshed means the account already existed and its provider
	// tokens were replaced.
	OutcomeRefreshed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeLinked:
		return "linked"
	case OutcomeRefreshed:
		return "refreshed"
	default:
		return "unknown"
	}
}

// Input carries one provider sign-in: the provider identity, the profile the
// provider reported, and the tokens it issued.
type Input struct {
	ProviderType      string
	ProviderID        string
	ProviderAccountID string
	Profile           user.CreateUserInput
	Tokens            storage.TokenRefresh
}

// Result is the resolved owner of a provider identity.
type Result struct {
	User    user.User
	Account storage.Account
	Outcome Outcome
}

// Manager owns the sign-in resolution flow. All uniqueness decisions are
// delegated to the store's constraints; the manager only reacts to conflicts.
type Manager struct {
	users    storage.UserStore
	accounts storage.AccountStore

	clock       func() time.Time
	idGenerator func() (string, error)
}

// NewManager creates a link manager backed by the given stores.
func NewManager(users storage.UserStore, accounts storage.AccountStore) *Manager {
	return &Manager{
		users:       users,
		accounts:    accounts,
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

// WithIDGenerator overrides the identifier source.
func (m *Manager) WithIDGenerator(idGenerator func() (string, error)) *Manager {
	if idGenerator != nil {
		m.idGenerator = idGenerator
	}
	return m
}

func validateInput(input Input) error {
	if strings.TrimSpace(input.ProviderType) == "" {
		return apperrors.New(apperrors.CodeProviderTypeRequired, "provider type is required")
	}
	if strings.TrimSpace(input.ProviderID) == "" {
		return apperrors.New(apperrors.CodeProviderIDRequired, "provider id is required")
	}
	if strings.TrimSpace(input.ProviderAccountID) == "" {
		return apperrors.New(apperrors.CodeProviderAccountIDRequired, "provider account id is required")
	}
	return nil
}

func hasTokens(tokens storage.TokenRefresh) bool {
	return tokens.RefreshToken != "" || tokens.AccessToken != ""
}

// LinkOrCreate resolves a provider sign-in to exactly one user.
//
// Resolution order: an account already mapped to this provider identity wins;
// failing that, a user owning the profile email gains a new account link;
// failing that, a fresh user and account are created atomically. When a
// concurrent caller wins any of those races the store reports a conflict and
// the flow re-reads, so every caller lands on the same user.
func (m *Manager) LinkOrCreate(ctx context.Context, input Input) (Result, error) {
	if m == nil || m.users == nil || m.accounts == nil {
		return Result{}, apperrors.New(apperrors.CodeUnavailable, "link manager is not configured")
	}
	if err := validateInput(input); err != nil {
		return Result{}, err
	}

	email, err := user.NormalizeEmail(input.Profile.Email)
	if err != nil {
		return Result{}, err
	}
	input.Profile.Email = email

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		result, err := m.resolve(ctx, input)
		if err == nil {
			return result, nil
		}
		if !errors.Is(err, storage.ErrConflict) {
			return Result{}, err
		}
		lastErr = err
	}
	return Result{}, apperrors.Wrap(apperrors.CodeConflict, "sign-in raced beyond retry budget", lastErr)
}

func (m *Manager) resolve(ctx context.Context, input Input) (Result, error) {
	account, err := m.accounts.GetAccountByProvider(ctx, input.ProviderID, input.ProviderAccountID)
	switch {
	case err == nil:
		return m.refreshExisting(ctx, account, input.Tokens)
	case !errors.Is(err, storage.ErrNotFound):
		return Result{}, err
	}

	if input.Profile.Email != "" {
		owner, err := m.users.GetUserByEmail(ctx, input.Profile.Email)
		switch {
		case err == nil:
			return m.linkToUser(ctx, owner, input)
		case !errors.Is(err, storage.ErrNotFound):
			return Result{}, err
		}
	}

	return m.createUserWithAccount(ctx, input)
}

// refreshExisting returns the account's current owner, replacing stored
// provider tokens when the sign-in carried new ones.
func (m *Manager) refreshExisting(ctx context.Context, account storage.Account, tokens storage.TokenRefresh) (Result, error) {
	outcome := OutcomeLinked
	if hasTokens(tokens) {
		now := m.clock().UTC()
		if err := m.accounts.RefreshAccountTokens(ctx, account.ID, tokens, now); err != nil {
			return Result{}, err
		}
		if tokens.RefreshToken != "" {
			account.RefreshToken = tokens.RefreshToken
		}
		if tokens.AccessToken != "" {
			account.AccessToken = tokens.AccessToken
			account.AccessTokenExpires = tokens.AccessTokenExpires
		}
		account.UpdatedAt = now
		outcome = OutcomeRefreshed
	}

	owner, err := m.users.GetUser(ctx, account.UserID)
	if err != nil {
		return Result{}, err
	}
	return Result{User: owner, Account: account, Outcome: outcome}, nil
}

func (m *Manager) linkToUser(ctx context.Context, owner user.User, input Input) (Result, error) {
	account, err := m.newAccount(owner.ID, input)
	if err != nil {
		return Result{}, err
	}
	if err := m.accounts.LinkAccount(ctx, account); err != nil {
		return Result{}, err
	}
	return Result{User: owner, Account: account, Outcome: OutcomeLinked}, nil
}

func (m *Manager) createUserWithAccount(ctx context.Context, input Input) (Result, error) {
	created, err := user.CreateUser(input.Profile, m.clock, m.idGenerator)
	if err != nil {
		return Result{}, err
	}
	account, err := m.newAccount(created.ID, input)
	if err != nil {
		return Result{}, err
	}
	if err := m.accounts.CreateUserWithAccount(ctx, created, account); err != nil {
		return Result{}, err
	}
	return Result{User: created, Account: account, Outcome: OutcomeCreated}, nil
}

func (m *Manager) newAccount(userID string, input Input) (storage.Account, error) {
	accountID, err := m.idGenerator()
	if err != nil {
		return storage.Account{}, err
	}
	now := m.clock().UTC()
	return storage.Account{
		ID:                 accountID,
		UserID:             userID,
		ProviderType:       strings.TrimSpace(input.ProviderType),
		ProviderID:         strings.TrimSpace(input.ProviderID),
		ProviderAccountID:  strings.TrimSpace(input.ProviderAccountID),
		RefreshToken:       input.Tokens.RefreshToken,
		AccessToken:        input.Tokens.AccessToken,
		AccessTokenExpires: input.Tokens.AccessTokenExpires,
		CreatedAt:          now,
		UpdatedAt:          now,
	}, nil
}

// Unlink removes the account mapped to a provider identity. Unlinking an
// identity that is not linked is a no-op.
func (m *Manager) Unlink(ctx context.Context, providerID, providerAccountID string) error {
	if m == nil || m.accounts == nil {
		return apperrors.New(apperrors.CodeUnavailable, "link manager is not configured")
	}
	if strings.TrimSpace(providerID) == "" {
		return apperrors.New(apperrors.CodeProviderIDRequired, "provider id is required")
	}
	if strings.TrimSpace(providerAccountID) == "" {
		return apperrors.New(apperrors.CodeProviderAccountIDRequired, "provider account id is required")
	}
	return m.accounts.DeleteAccount(ctx, providerID, providerAccountID)
}
