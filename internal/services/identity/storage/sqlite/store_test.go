package sqlite

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/oakwell/identityd/internal/services/identity/link"
	"github.com/oakwell/identityd/internal/services/identity/storage"
	"github.com/oakwell/identityd/internal/services/identity/user"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(t.TempDir() + "/identity.db")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})
	return store
}

func testUser(id, email string, now time.Time) user.User {
	return user.User{
		ID:        id,
		Name:      "Test User",
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func testAccount(id, userID, providerAccountID string, now time.Time) storage.Account {
	return storage.Account{
		ID:                id,
		UserID:            userID,
		ProviderType:      "oauth",
		ProviderID:        "github",
		ProviderAccountID: providerAccountID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open(" "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestOpenConfiguresConnection(t *testing.T) {
	store := openTestStore(t)

	var journalMode string
	if err := store.sqlDB.QueryRow("PRAGMA journal_mode").Scan(&journalMode); err != nil {
		t.Fatalf("query journal_mode: %v", err)
	}
	if journalMode != "wal" {
		t.Fatalf("journal_mode = %q, want wal", journalMode)
	}

	var foreignKeys int
	if err := store.sqlDB.QueryRow("PRAGMA foreign_keys").Scan(&foreignKeys); err != nil {
		t.Fatalf("query foreign_keys: %v", err)
	}
	if foreignKeys != 1 {
		t.Fatalf("foreign_keys = %d, want 1", foreignKeys)
	}

	var busyTimeout int
	if err := store.sqlDB.QueryRow("PRAGMA busy_timeout").Scan(&busyTimeout); err != nil {
		t.Fatalf("query busy_timeout: %v", err)
	}
	if busyTimeout != 5000 {
		t.Fatalf("busy_timeout = %d, want 5000", busyTimeout)
	}
}

func TestUserRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	now := time.Date(2026, time.April, 2, 9, 0, 0, 0, time.UTC)

	verified := now.Add(-time.Hour)
	created := user.User{
		ID:            "user-1",
		Name:          "Ada",
		Email:         "ada@example.com",
		EmailVerified: &verified,
		Image:         "https://example.com/ada.png",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := store.CreateUser(ctx, created); err != nil {
		t.Fatalf("create user: %v", err)
	}

	byID, err := store.GetUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if byID.Email != "ada@example.com" || byID.Name != "Ada" {
		t.Fatalf("unexpected user %+v", byID)
	}
	if byID.EmailVerified == nil || !byID.EmailVerified.Equal(verified) {
		t.Fatalf("email_verified = %v, want %v", byID.EmailVerified, verified)
	}

	byEmail, err := store.GetUserByEmail(ctx, "ada@example.com")
	if err != nil {
		t.Fatalf("get user by email: %v", err)
	}
	if byEmail.ID != "user-1" {
		t.Fatalf("id = %q, want user-1", byEmail.ID)
	}
}

func TestCreateUserDuplicateEmailConflicts(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	if err := store.CreateUser(ctx, testUser("user-1", "shared@example.com", now)); err != nil {
		t.Fatalf("create first user: %v", err)
	}
	err := store.CreateUser(ctx, testUser("user-2", "shared@example.com", now))
	if !errors.Is(err, storage.ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}
}

func TestCreateUserAllowsMultipleWithoutEmail(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	// NULL emails must not collide under the partial unique index.
	if err := store.CreateUser(ctx, testUser("user-1", "", now)); err != nil {
		t.Fatalf("create first user: %v", err)
	}
	if err := store.CreateUser(ctx, testUser("user-2", "", now)); err != nil {
		t.Fatalf("create second user: %v", err)
	}
}

func TestGetUserNotFound(t *testing.T) {
	store := openTestStore(t)
	_, err := store.GetUser(context.Background(), "missing")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestUpdateUser(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	if err := store.CreateUser(ctx, testUser("user-1", "a@example.com", now)); err != nil {
		t.Fatalf("create user: %v", err)
	}

	updated := testUser("user-1", "new@example.com", now)
	updated.Name = "Renamed"
	updated.UpdatedAt = now.Add(time.Minute)
	if err := store.UpdateUser(ctx, updated); err != nil {
		t.Fatalf("update user: %v", err)
	}

	found, err := store.GetUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if found.Name != "Renamed" || found.Email != "new@example.com" {
		t.Fatalf("unexpected user %+v", found)
	}

	if err := store.UpdateUser(ctx, testUser("missing", "x@example.com", now)); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestUpdateUserEmailConflict(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	if err := store.CreateUser(ctx, testUser("user-1", "first@example.com", now)); err != nil {
		t.Fatalf("create first user: %v", err)
	}
	if err := store.CreateUser(ctx, testUser("user-2", "second@example.com", now)); err != nil {
		t.Fatalf("create second user: %v", err)
	}

	stolen := testUser("user-2", "first@example.com", now)
	if err := store.UpdateUser(ctx, stolen); !errors.Is(err, storage.ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}
}

func TestDeleteUserCascades(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	if err := store.CreateUser(ctx, testUser("user-1", "a@example.com", now)); err != nil {
		t.Fatalf("create user: %v", err)
	}
	if err := store.LinkAccount(ctx, testAccount("acct-1", "user-1", "42", now)); err != nil {
		t.Fatalf("link account: %v", err)
	}
	session := storage.Session{
		ID:           "sess-1",
		UserID:       "user-1",
		ExpiresAt:    now.Add(time.Hour),
		SessionToken: "st-1",
		AccessToken:  "at-1",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := store.CreateSession(ctx, session); err != nil {
		t.Fatalf("create session: %v", err)
	}

	if err := store.DeleteUser(ctx, "user-1"); err != nil {
		t.Fatalf("delete user: %v", err)
	}

	if _, err := store.GetUser(ctx, "user-1"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("user err = %v, want ErrNotFound", err)
	}
	if _, err := store.GetAccountByProvider(ctx, "github", "42"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("account err = %v, want ErrNotFound", err)
	}
	if _, err := store.GetSessionByToken(ctx, "st-1"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("session err = %v, want ErrNotFound", err)
	}

	if err := store.DeleteUser(ctx, "user-1"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("second delete err = %v, want ErrNotFound", err)
	}
}

func TestListUsersPaging(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	for i := 0; i < 5; i++ {
		id := fmt.Sprintf("user-%d", i)
		if err := store.CreateUser(ctx, testUser(id, fmt.Sprintf("u%d@example.com", i), now)); err != nil {
			t.Fatalf("create user %d: %v", i, err)
		}
	}

	first, err := store.ListUsers(ctx, 2, "")
	if err != nil {
		t.Fatalf("list first page: %v", err)
	}
	if len(first.Users) != 2 || first.NextPageToken == "" {
		t.Fatalf("first page = %d users, token %q", len(first.Users), first.NextPageToken)
	}

	var seen []string
	token := ""
	for {
		page, err := store.ListUsers(ctx, 2, token)
		if err != nil {
			t.Fatalf("list page: %v", err)
		}
		for _, u := range page.Users {
			seen = append(seen, u.ID)
		}
		if page.NextPageToken == "" {
			break
		}
		token = page.NextPageToken
	}
	if len(seen) != 5 {
		t.Fatalf("paged through %d users, want 5", len(seen))
	}
}

func TestLinkAccountProviderIdentityUnique(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	if err := store.CreateUser(ctx, testUser("user-1", "a@example.com", now)); err != nil {
		t.Fatalf("create first user: %v", err)
	}
	if err := store.CreateUser(ctx, testUser("user-2", "b@example.com", now)); err != nil {
		t.Fatalf("create second user: %v", err)
	}

	if err := store.LinkAccount(ctx, testAccount("acct-1", "user-1", "42", now)); err != nil {
		t.Fatalf("link first account: %v", err)
	}
	err := store.LinkAccount(ctx, testAccount("acct-2", "user-2", "42", now))
	if !errors.Is(err, storage.ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}
}

func TestCreateUserWithAccountAtomic(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	u := testUser("user-1", "a@example.com", now)
	if err := store.CreateUserWithAccount(ctx, u, testAccount("acct-1", "user-1", "42", now)); err != nil {
		t.Fatalf("create user with account: %v", err)
	}

	// A second creation for the same provider identity must roll back the
	// user insert along with the account insert.
	loser := testUser("user-2", "b@example.com", now)
	err := store.CreateUserWithAccount(ctx, loser, testAccount("acct-2", "user-2", "42", now))
	if !errors.Is(err, storage.ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}
	if _, err := store.GetUser(ctx, "user-2"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("loser user err = %v, want ErrNotFound (partial write observed)", err)
	}
}

func TestRefreshAccountTokens(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	if err := store.CreateUser(ctx, testUser("user-1", "a@example.com", now)); err != nil {
		t.Fatalf("create user: %v", err)
	}
	account := testAccount("acct-1", "user-1", "42", now)
	account.RefreshToken = "refresh-old"
	account.AccessToken = "access-old"
	if err := store.LinkAccount(ctx, account); err != nil {
		t.Fatalf("link account: %v", err)
	}

	expires := now.Add(time.Hour)
	refresh := storage.TokenRefresh{AccessToken: "access-new", AccessTokenExpires: &expires}
	if err := store.RefreshAccountTokens(ctx, "acct-1", refresh, now.Add(time.Minute)); err != nil {
		t.Fatalf("refresh tokens: %v", err)
	}

	found, err := store.GetAccountByProvider(ctx, "github", "42")
	if err != nil {
		t.Fatalf("get account: %v", err)
	}
	if found.AccessToken != "access-new" {
		t.Fatalf("access token = %q, want access-new", found.AccessToken)
	}
	if found.RefreshToken != "refresh-old" {
		t.Fatalf("refresh token = %q, want refresh-old (empty field must not clobber)", found.RefreshToken)
	}
	if found.AccessTokenExpires == nil || !found.AccessTokenExpires.Equal(expires.Truncate(time.Millisecond)) {
		t.Fatalf("access token expires = %v, want %v", found.AccessTokenExpires, expires)
	}
}

func TestDeleteAccountIdempotent(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	if err := store.CreateUser(ctx, testUser("user-1", "a@example.com", now)); err != nil {
		t.Fatalf("create user: %v", err)
	}
	if err := store.LinkAccount(ctx, testAccount("acct-1", "user-1", "42", now)); err != nil {
		t.Fatalf("link account: %v", err)
	}

	if err := store.DeleteAccount(ctx, "github", "42"); err != nil {
		t.Fatalf("delete account: %v", err)
	}
	if err := store.DeleteAccount(ctx, "github", "42"); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}

func TestSessionTokensUnique(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	if err := store.CreateUser(ctx, testUser("user-1", "a@example.com", now)); err != nil {
		t.Fatalf("create user: %v", err)
	}

	base := storage.Session{
		ID:           "sess-1",
		UserID:       "user-1",
		ExpiresAt:    now.Add(time.Hour),
		SessionToken: "st-1",
		AccessToken:  "at-1",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := store.CreateSession(ctx, base); err != nil {
		t.Fatalf("create session: %v", err)
	}

	dupSession := base
	dupSession.ID = "sess-2"
	dupSession.AccessToken = "at-2"
	if err := store.CreateSession(ctx, dupSession); !errors.Is(err, storage.ErrConflict) {
		t.Fatalf("duplicate session token err = %v, want ErrConflict", err)
	}

	dupAccess := base
	dupAccess.ID = "sess-3"
	dupAccess.SessionToken = "st-3"
	if err := store.CreateSession(ctx, dupAccess); !errors.Is(err, storage.ErrConflict) {
		t.Fatalf("duplicate access token err = %v, want ErrConflict", err)
	}
}

func TestUpdateSessionTokens(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	if err := store.CreateUser(ctx, testUser("user-1", "a@example.com", now)); err != nil {
		t.Fatalf("create user: %v", err)
	}
	session := storage.Session{
		ID:           "sess-1",
		UserID:       "user-1",
		ExpiresAt:    now.Add(time.Hour),
		SessionToken: "st-1",
		AccessToken:  "at-1",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := store.CreateSession(ctx, session); err != nil {
		t.Fatalf("create session: %v", err)
	}

	newExpiry := now.Add(2 * time.Hour)
	if err := store.UpdateSessionTokens(ctx, "sess-1", "at-2", newExpiry, now.Add(time.Minute)); err != nil {
		t.Fatalf("update session tokens: %v", err)
	}

	found, err := store.GetSessionByAccessToken(ctx, "at-2")
	if err != nil {
		t.Fatalf("get session by new access token: %v", err)
	}
	if found.SessionToken != "st-1" || found.ID != "sess-1" {
		t.Fatalf("rotation changed identity: %+v", found)
	}
	if !found.ExpiresAt.Equal(newExpiry.Truncate(time.Millisecond)) {
		t.Fatalf("expires = %v, want %v", found.ExpiresAt, newExpiry)
	}
	if _, err := store.GetSessionByAccessToken(ctx, "at-1"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("old access token err = %v, want ErrNotFound", err)
	}

	if err := store.UpdateSessionTokens(ctx, "missing", "at-3", newExpiry, now); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("missing session err = %v, want ErrNotFound", err)
	}
}

func TestDeleteExpiredSessions(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	if err := store.CreateUser(ctx, testUser("user-1", "a@example.com", now)); err != nil {
		t.Fatalf("create user: %v", err)
	}
	expired := storage.Session{
		ID: "sess-old", UserID: "user-1", ExpiresAt: now.Add(-time.Minute),
		SessionToken: "st-old", AccessToken: "at-old", CreatedAt: now, UpdatedAt: now,
	}
	live := storage.Session{
		ID: "sess-live", UserID: "user-1", ExpiresAt: now.Add(time.Hour),
		SessionToken: "st-live", AccessToken: "at-live", CreatedAt: now, UpdatedAt: now,
	}
	if err := store.CreateSession(ctx, expired); err != nil {
		t.Fatalf("create expired session: %v", err)
	}
	if err := store.CreateSession(ctx, live); err != nil {
		t.Fatalf("create live session: %v", err)
	}

	removed, err := store.DeleteExpiredSessions(ctx, now)
	if err != nil {
		t.Fatalf("delete expired sessions: %v", err)
	}
	if removed != 1 {
		t.Fatalf("removed = %d, want 1", removed)
	}
	if _, err := store.GetSessionByToken(ctx, "st-live"); err != nil {
		t.Fatalf("live session lost: %v", err)
	}
}

func TestVerificationRequestPairUnique(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	request := storage.VerificationRequest{
		ID: "vr-1", Identifier: "a@b.com", Token: "tok1",
		ExpiresAt: now.Add(10 * time.Minute), CreatedAt: now, UpdatedAt: now,
	}
	if err := store.CreateVerificationRequest(ctx, request); err != nil {
		t.Fatalf("create verification request: %v", err)
	}

	dup := request
	dup.ID = "vr-2"
	if err := store.CreateVerificationRequest(ctx, dup); !errors.Is(err, storage.ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}
}

func TestConsumeVerificationRequestOnce(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	request := storage.VerificationRequest{
		ID: "vr-1", Identifier: "a@b.com", Token: "tok1",
		ExpiresAt: now.Add(10 * time.Minute), CreatedAt: now, UpdatedAt: now,
	}
	if err := store.CreateVerificationRequest(ctx, request); err != nil {
		t.Fatalf("create verification request: %v", err)
	}

	consumed, err := store.ConsumeVerificationRequest(ctx, "a@b.com", "tok1")
	if err != nil {
		t.Fatalf("consume: %v", err)
	}
	if consumed.ID != "vr-1" {
		t.Fatalf("consumed id = %q, want vr-1", consumed.ID)
	}

	if _, err := store.ConsumeVerificationRequest(ctx, "a@b.com", "tok1"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("replay err = %v, want ErrNotFound", err)
	}
}

func TestConsumeVerificationRequestSingleWinner(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	request := storage.VerificationRequest{
		ID: "vr-1", Identifier: "a@b.com", Token: "tok1",
		ExpiresAt: now.Add(10 * time.Minute), CreatedAt: now, UpdatedAt: now,
	}
	if err := store.CreateVerificationRequest(ctx, request); err != nil {
		t.Fatalf("create verification request: %v", err)
	}

	const attempts = 8
	var wg sync.WaitGroup
	results := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			_, results[slot] = store.ConsumeVerificationRequest(ctx, "a@b.com", "tok1")
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range results {
		switch {
		case err == nil:
			winners++
		case errors.Is(err, storage.ErrNotFound):
		default:
			t.Fatalf("unexpected consume error: %v", err)
		}
	}
	if winners != 1 {
		t.Fatalf("winners = %d, want exactly 1", winners)
	}
}

func TestDeleteExpiredVerificationRequests(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	stale := storage.VerificationRequest{
		ID: "vr-old", Identifier: "a@b.com", Token: "tok-old",
		ExpiresAt: now.Add(-time.Minute), CreatedAt: now.Add(-time.Hour), UpdatedAt: now.Add(-time.Hour),
	}
	fresh := storage.VerificationRequest{
		ID: "vr-new", Identifier: "a@b.com", Token: "tok-new",
		ExpiresAt: now.Add(10 * time.Minute), CreatedAt: now, UpdatedAt: now,
	}
	if err := store.CreateVerificationRequest(ctx, stale); err != nil {
		t.Fatalf("create stale request: %v", err)
	}
	if err := store.CreateVerificationRequest(ctx, fresh); err != nil {
		t.Fatalf("create fresh request: %v", err)
	}

	removed, err := store.DeleteExpiredVerificationRequests(ctx, now)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if removed != 1 {
		t.Fatalf("removed = %d, want 1", removed)
	}
	if _, err := store.ConsumeVerificationRequest(ctx, "a@b.com", "tok-new"); err != nil {
		t.Fatalf("fresh request lost: %v", err)
	}
}

func TestConcurrentFirstSignInsShareOneUser(t *testing.T) {
	store := openTestStore(t)
	manager := link.NewManager(store, store)
	ctx := context.Background()

	input := link.Input{
		ProviderType:      "oauth",
		ProviderID:        "github",
		ProviderAccountID: "42",
		Profile:           user.CreateUserInput{Name: "Ada", Email: "ada@example.com"},
	}

	const callers = 8
	var wg sync.WaitGroup
	results := make([]link.Result, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			results[slot], errs[slot] = manager.LinkOrCreate(ctx, input)
		}(i)
	}
	wg.Wait()

	created := 0
	userID := ""
	for i := 0; i < callers; i++ {
		if errs[i] != nil {
			t.Fatalf("caller %d: %v", i, errs[i])
		}
		if results[i].Outcome == link.OutcomeCreated {
			created++
		}
		if userID == "" {
			userID = results[i].User.ID
		}
		if results[i].User.ID != userID {
			t.Fatalf("caller %d resolved user %q, others got %q", i, results[i].User.ID, userID)
		}
	}
	if created != 1 {
		t.Fatalf("created outcomes = %d, want exactly 1", created)
	}

	page, err := store.ListUsers(ctx, 10, "")
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(page.Users) != 1 {
		t.Fatalf("user rows = %d, want 1", len(page.Users))
	}
	account, err := store.GetAccountByProvider(ctx, "github", "42")
	if err != nil {
		t.Fatalf("get account by provider: %v", err)
	}
	if account.UserID != userID {
		t.Fatalf("account owner = %q, want %q", account.UserID, userID)
	}
}
