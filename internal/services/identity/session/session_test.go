package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	apperrors "github.com/oakwell/identityd/internal/platform/errors"
	"github.com/oakwell/identityd/internal/services/identity/storage"
)

type fakeSessionStore struct {
	mu       sync.Mutex
	sessions map[string]storage.Session // keyed by session id
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]storage.Session)}
}

func (f *fakeSessionStore) CreateSession(ctx context.Context, session storage.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.sessions {
		if existing.SessionToken == session.SessionToken || existing.AccessToken == session.AccessToken {
			return storage.ErrConflict
		}
	}
	f.sessions[session.ID] = session
	return nil
}

func (f *fakeSessionStore) GetSessionByToken(ctx context.Context, sessionToken string) (storage.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, session := range f.sessions {
		if session.SessionToken == sessionToken {
			return session, nil
		}
	}
	return storage.Session{}, storage.ErrNotFound
}

func (f *fakeSessionStore) GetSessionByAccessToken(ctx context.Context, accessToken string) (storage.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, session := range f.sessions {
		if session.AccessToken == accessToken {
			return session, nil
		}
	}
	return storage.Session{}, storage.ErrNotFound
}

func (f *fakeSessionStore) UpdateSessionTokens(ctx context.Context, sessionID, newAccessToken string, newExpiresAt, updatedAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	session, ok := f.sessions[sessionID]
	if !ok {
		return storage.ErrNotFound
	}
	for id, existing := range f.sessions {
		if id != sessionID && existing.AccessToken == newAccessToken {
			return storage.ErrConflict
		}
	}
	session.AccessToken = newAccessToken
	session.ExpiresAt = newExpiresAt
	session.UpdatedAt = updatedAt
	f.sessions[sessionID] = session
	return nil
}

func (f *fakeSessionStore) DeleteSession(ctx context.Context, sessionToken string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, session := range f.sessions {
		if session.SessionToken == sessionToken {
			delete(f.sessions, id)
			return nil
		}
	}
	return nil
}

func (f *fakeSessionStore) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var removed int64
	for id, session := range f.sessions {
		if !session.ExpiresAt.After(now) {
			delete(f.sessions, id)
			removed++
		}
	}
	return removed, nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func issueInput(n string, ttl time.Duration) IssueInput {
	return IssueInput{
		UserID:       "user-1",
		TTL:          ttl,
		SessionToken: "st-" + n,
		AccessToken:  "at-" + n,
	}
}

func TestIssueAndResolve(t *testing.T) {
	store := newFakeSessionStore()
	now := time.Date(2026, time.April, 2, 9, 0, 0, 0, time.UTC)
	manager := NewManager(store).WithClock(fixedClock(now))
	ctx := context.Background()

	session, err := manager.Issue(ctx, issueInput("1", time.Hour))
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if session.SessionToken != "st-1" || session.AccessToken != "at-1" {
		t.Fatalf("tokens not stored as given: %+v", session)
	}
	if !session.ExpiresAt.Equal(now.Add(time.Hour)) {
		t.Fatalf("expires at = %v, want %v", session.ExpiresAt, now.Add(time.Hour))
	}

	resolved, err := manager.Resolve(ctx, session.SessionToken)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved.UserID != "user-1" {
		t.Fatalf("user = %q", resolved.UserID)
	}

	byAccess, err := manager.ResolveAccess(ctx, session.AccessToken)
	if err != nil {
		t.Fatalf("resolve by access token: %v", err)
	}
	if byAccess.ID != session.ID {
		t.Fatalf("resolved session %q, want %q", byAccess.ID, session.ID)
	}
}

func TestIssueValidation(t *testing.T) {
	tests := []struct {
		name  string
		input IssueInput
		want  apperrors.Code
	}{
		{
			name:  "missing user",
			input: IssueInput{UserID: "  ", TTL: time.Hour, SessionToken: "st", AccessToken: "at"},
			want:  apperrors.CodeUserIDRequired,
		},
		{
			name:  "negative ttl",
			input: IssueInput{UserID: "user-1", TTL: -time.Second, SessionToken: "st", AccessToken: "at"},
			want:  apperrors.CodeTTLInvalid,
		},
		{
			name:  "missing session token",
			input: IssueInput{UserID: "user-1", TTL: time.Hour, AccessToken: "at"},
			want:  apperrors.CodeTokenRequired,
		},
		{
			name:  "missing access token",
			input: IssueInput{UserID: "user-1", TTL: time.Hour, SessionToken: "st"},
			want:  apperrors.CodeTokenRequired,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			manager := NewManager(newFakeSessionStore())
			_, err := manager.Issue(context.Background(), tc.input)
			if apperrors.GetCode(err) != tc.want {
				t.Fatalf("code = %v, want %v", apperrors.GetCode(err), tc.want)
			}
		})
	}
}

func TestIssueDuplicateTokenConflicts(t *testing.T) {
	store := newFakeSessionStore()
	manager := NewManager(store)
	ctx := context.Background()

	input := issueInput("1", time.Hour)
	if _, err := manager.Issue(ctx, input); err != nil {
		t.Fatalf("issue: %v", err)
	}

	input.UserID = "user-2"
	if _, err := manager.Issue(ctx, input); apperrors.GetCode(err) != apperrors.CodeConflict {
		t.Fatalf("code = %v, want conflict", apperrors.GetCode(err))
	}
}

func TestZeroTTLSessionIsExpiredImmediately(t *testing.T) {
	store := newFakeSessionStore()
	now := time.Date(2026, time.April, 2, 9, 0, 0, 0, time.UTC)
	manager := NewManager(store).WithClock(fixedClock(now))
	ctx := context.Background()

	session, err := manager.Issue(ctx, issueInput("1", 0))
	if err != nil {
		t.Fatalf("issue with zero ttl: %v", err)
	}
	if _, err := manager.Resolve(ctx, session.SessionToken); !errors.Is(err, ErrExpired) {
		t.Fatalf("err = %v, want ErrExpired", err)
	}
}

func TestResolveDeletesExpiredSession(t *testing.T) {
	store := newFakeSessionStore()
	now := time.Date(2026, time.April, 2, 9, 0, 0, 0, time.UTC)
	clock := now
	manager := NewManager(store).WithClock(func() time.Time { return clock })
	ctx := context.Background()

	session, err := manager.Issue(ctx, issueInput("1", time.Minute))
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	clock = now.Add(2 * time.Minute)
	if _, err := manager.Resolve(ctx, session.SessionToken); !errors.Is(err, ErrExpired) {
		t.Fatalf("err = %v, want ErrExpired", err)
	}
	// The expired record is reaped on the read path, so the next lookup
	// reports absence rather than expiry.
	if _, err := manager.Resolve(ctx, session.SessionToken); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestRotateKeepsSessionTokenStable(t *testing.T) {
	store := newFakeSessionStore()
	now := time.Date(2026, time.April, 2, 9, 0, 0, 0, time.UTC)
	manager := NewManager(store).WithClock(fixedClock(now))
	ctx := context.Background()

	session, err := manager.Issue(ctx, issueInput("1", time.Hour))
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	rotated, err := manager.Rotate(ctx, session.SessionToken, "at-next", 2*time.Hour)
	if err != nil {
		t.Fatalf("rotate: %v", err)
	}
	if rotated.SessionToken != session.SessionToken {
		t.Fatal("rotation changed the session token")
	}
	if rotated.AccessToken != "at-next" {
		t.Fatalf("access token = %q, want at-next", rotated.AccessToken)
	}
	if !rotated.ExpiresAt.Equal(now.Add(2 * time.Hour)) {
		t.Fatalf("expires at = %v, want %v", rotated.ExpiresAt, now.Add(2*time.Hour))
	}

	if _, err := manager.ResolveAccess(ctx, session.AccessToken); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("old access token err = %v, want ErrNotFound", err)
	}
	if _, err := manager.ResolveAccess(ctx, rotated.AccessToken); err != nil {
		t.Fatalf("new access token: %v", err)
	}
}

func TestRotateRequiresNewAccessToken(t *testing.T) {
	manager := NewManager(newFakeSessionStore())
	_, err := manager.Rotate(context.Background(), "st-1", "  ", time.Hour)
	if apperrors.GetCode(err) != apperrors.CodeTokenRequired {
		t.Fatalf("code = %v, want token required", apperrors.GetCode(err))
	}
}

func TestRotateDuplicateAccessTokenConflicts(t *testing.T) {
	store := newFakeSessionStore()
	manager := NewManager(store)
	ctx := context.Background()

	if _, err := manager.Issue(ctx, issueInput("1", time.Hour)); err != nil {
		t.Fatalf("issue first: %v", err)
	}
	second, err := manager.Issue(ctx, issueInput("2", time.Hour))
	if err != nil {
		t.Fatalf("issue second: %v", err)
	}

	// at-1 is held by the first session.
	_, err = manager.Rotate(ctx, second.SessionToken, "at-1", time.Hour)
	if apperrors.GetCode(err) != apperrors.CodeConflict {
		t.Fatalf("code = %v, want conflict", apperrors.GetCode(err))
	}
}

func TestRotateExpiredSession(t *testing.T) {
	store := newFakeSessionStore()
	now := time.Date(2026, time.April, 2, 9, 0, 0, 0, time.UTC)
	clock := now
	manager := NewManager(store).WithClock(func() time.Time { return clock })
	ctx := context.Background()

	session, err := manager.Issue(ctx, issueInput("1", time.Minute))
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	clock = now.Add(time.Hour)
	if _, err := manager.Rotate(ctx, session.SessionToken, "at-next", time.Hour); !errors.Is(err, ErrExpired) {
		t.Fatalf("err = %v, want ErrExpired", err)
	}
}

func TestRotateMissingSession(t *testing.T) {
	manager := NewManager(newFakeSessionStore())
	_, err := manager.Rotate(context.Background(), "no-such-token", "at-next", time.Hour)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestRevokeIsIdempotent(t *testing.T) {
	store := newFakeSessionStore()
	manager := NewManager(store)
	ctx := context.Background()

	session, err := manager.Issue(ctx, issueInput("1", time.Hour))
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if err := manager.Revoke(ctx, session.SessionToken); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if err := manager.Revoke(ctx, session.SessionToken); err != nil {
		t.Fatalf("second revoke: %v", err)
	}
	if _, err := manager.Resolve(ctx, session.SessionToken); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestSweepRemovesOnlyExpired(t *testing.T) {
	store := newFakeSessionStore()
	now := time.Date(2026, time.April, 2, 9, 0, 0, 0, time.UTC)
	clock := now
	manager := NewManager(store).WithClock(func() time.Time { return clock })
	ctx := context.Background()

	if _, err := manager.Issue(ctx, issueInput("1", time.Minute)); err != nil {
		t.Fatalf("issue short session: %v", err)
	}
	live, err := manager.Issue(ctx, issueInput("2", time.Hour))
	if err != nil {
		t.Fatalf("issue long session: %v", err)
	}

	clock = now.Add(10 * time.Minute)
	removed, err := manager.Sweep(ctx)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if removed != 1 {
		t.Fatalf("removed = %d, want 1", removed)
	}
	if _, err := manager.Resolve(ctx, live.SessionToken); err != nil {
		t.Fatalf("live session lost: %v", err)
	}
}
