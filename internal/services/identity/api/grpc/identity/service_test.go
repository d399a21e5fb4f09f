package identity

import (
	"context"
	"sync"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	identityv1 "github.com/oakwell/identityd/api/gen/go/identity/v1"
	"github.com/oakwell/identityd/internal/services/identity/link"
	"github.com/oakwell/identityd/internal/services/identity/session"
	"github.com/oakwell/identityd/internal/services/identity/storage/sqlite"
	"github.com/oakwell/identityd/internal/services/identity/verification"
)

// testClock is a mutable time source shared by the service and its managers.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestService(t *testing.T) (*Service, *testClock) {
	t.Helper()
	store, err := sqlite.Open(t.TempDir() + "/identity.db")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})

	clock := &testClock{now: time.Date(2026, time.April, 2, 9, 0, 0, 0, time.UTC)}
	links := link.NewManager(store, store).WithClock(clock.Now)
	sessions := session.NewManager(store).WithClock(clock.Now)
	verifications := verification.NewManager(store).WithClock(clock.Now)
	svc := NewService(store, links, sessions, verifications).WithClock(clock.Now)
	return svc, clock
}

func wantStatus(t *testing.T, err error, want codes.Code) {
	t.Helper()
	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("err = %v, want gRPC status", err)
	}
	if st.Code() != want {
		t.Fatalf("status = %v (%s), want %v", st.Code(), st.Message(), want)
	}
}

func stringPtr(v string) *string { return &v }

func createUser(t *testing.T, svc *Service, email string) *identityv1.User {
	t.Helper()
	resp, err := svc.UpsertUser(context.Background(), &identityv1.UpsertUserRequest{
		Name:  stringPtr("Ada"),
		Email: stringPtr(email),
	})
	if err != nil {
		t.Fatalf("upsert user: %v", err)
	}
	return resp.GetUser()
}

func TestUpsertUserCreatesAndResolves(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created := createUser(t, svc, "Ada@Example.com")
	if created.GetId() == "" {
		t.Fatal("expected generated user id")
	}
	if created.GetEmail() != "ada@example.com" {
		t.Fatalf("email = %q, want normalized", created.GetEmail())
	}

	byID, err := svc.GetUserById(ctx, &identityv1.GetUserByIdRequest{UserId: created.GetId()})
	if err != nil {
		t.Fatalf("get user by id: %v", err)
	}
	if byID.GetUser().GetName() != "Ada" {
		t.Fatalf("name = %q", byID.GetUser().GetName())
	}

	byEmail, err := svc.GetUserByEmail(ctx, &identityv1.GetUserByEmailRequest{Email: "ADA@example.com"})
	if err != nil {
		t.Fatalf("get user by email: %v", err)
	}
	if byEmail.GetUser().GetId() != created.GetId() {
		t.Fatalf("resolved %q, want %q", byEmail.GetUser().GetId(), created.GetId())
	}
}

func TestUpsertUserUpdatesExisting(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created := createUser(t, svc, "ada@example.com")
	resp, err := svc.UpsertUser(ctx, &identityv1.UpsertUserRequest{
		UserId: created.GetId(),
		Name:   stringPtr("Ada Lovelace"),
	})
	if err != nil {
		t.Fatalf("upsert existing: %v", err)
	}
	if resp.GetUser().GetName() != "Ada Lovelace" {
		t.Fatalf("name = %q", resp.GetUser().GetName())
	}
	// Email was not in the update and must survive.
	if resp.GetUser().GetEmail() != "ada@example.com" {
		t.Fatalf("email = %q, want untouched", resp.GetUser().GetEmail())
	}
}

func TestUpsertUserRejectsMalformedEmail(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.UpsertUser(context.Background(), &identityv1.UpsertUserRequest{
		Email: stringPtr("not-an-email"),
	})
	wantStatus(t, err, codes.InvalidArgument)
}

func TestUpsertUserDuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)
	createUser(t, svc, "ada@example.com")
	_, err := svc.UpsertUser(context.Background(), &identityv1.UpsertUserRequest{
		Email: stringPtr("ada@example.com"),
	})
	wantStatus(t, err, codes.AlreadyExists)
}

func TestGetUserByIdMissing(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.GetUserById(context.Background(), &identityv1.GetUserByIdRequest{UserId: "missing"})
	wantStatus(t, err, codes.NotFound)
}

func TestUpdateUserClearsOptionalField(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created := createUser(t, svc, "ada@example.com")
	verified := timestamppb.New(time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC))
	resp, err := svc.UpdateUser(ctx, &identityv1.UpdateUserRequest{
		UserId:        created.GetId(),
		EmailVerified: verified,
		Image:         stringPtr("https://example.com/ada.png"),
	})
	if err != nil {
		t.Fatalf("update user: %v", err)
	}
	if resp.GetUser().GetEmailVerified() == nil {
		t.Fatal("email_verified not set")
	}

	cleared, err := svc.UpdateUser(ctx, &identityv1.UpdateUserRequest{
		UserId: created.GetId(),
		Image:  stringPtr(""),
	})
	if err != nil {
		t.Fatalf("clear image: %v", err)
	}
	if cleared.GetUser().GetImage() != "" {
		t.Fatalf("image = %q, want cleared", cleared.GetUser().GetImage())
	}
	if cleared.GetUser().GetEmailVerified() == nil {
		t.Fatal("email_verified must survive an unrelated update")
	}
}

func TestUpdateUserMissing(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.UpdateUser(context.Background(), &identityv1.UpdateUserRequest{
		UserId: "missing",
		Name:   stringPtr("x"),
	})
	wantStatus(t, err, codes.NotFound)
}

func TestDeleteUserCascades(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	linked, err := svc.LinkAccount(ctx, &identityv1.LinkAccountRequest{
		ProviderType:      "oauth",
		ProviderId:        "github",
		ProviderAccountId: "42",
		Profile:           &identityv1.Profile{Email: stringPtr("ada@example.com")},
	})
	if err != nil {
		t.Fatalf("link account: %v", err)
	}
	sessionResp, err := svc.CreateSession(ctx, &identityv1.CreateSessionRequest{
		UserId:       linked.GetUser().GetId(),
		TtlSeconds:   3600,
		SessionToken: "st-cascade",
		AccessToken:  "at-cascade",
	})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	if _, err := svc.DeleteUser(ctx, &identityv1.DeleteUserRequest{UserId: linked.GetUser().GetId()}); err != nil {
		t.Fatalf("delete user: %v", err)
	}

	_, err = svc.GetSessionByToken(ctx, &identityv1.GetSessionByTokenRequest{
		SessionToken: sessionResp.GetSession().GetSessionToken(),
	})
	wantStatus(t, err, codes.NotFound)

	// The provider identity is free again, so linking creates a new user.
	relinked, err := svc.LinkAccount(ctx, &identityv1.LinkAccountRequest{
		ProviderType:      "oauth",
		ProviderId:        "github",
		ProviderAccountId: "42",
		Profile:           &identityv1.Profile{Email: stringPtr("ada@example.com")},
	})
	if err != nil {
		t.Fatalf("relink account: %v", err)
	}
	if relinked.GetOutcome() != identityv1.LinkOutcome_LINK_OUTCOME_CREATED {
		t.Fatalf("outcome = %v, want created", relinked.GetOutcome())
	}
}

func TestListUsersPaging(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	emails := []string{"a@example.com", "b@example.com", "c@example.com"}
	for _, email := range emails {
		createUser(t, svc, email)
	}

	var seen int
	token := ""
	for {
		page, err := svc.ListUsers(ctx, &identityv1.ListUsersRequest{PageSize: 2, PageToken: token})
		if err != nil {
			t.Fatalf("list users: %v", err)
		}
		seen += len(page.GetUsers())
		if page.GetNextPageToken() == "" {
			break
		}
		token = page.GetNextPageToken()
	}
	if seen != len(emails) {
		t.Fatalf("listed %d users, want %d", seen, len(emails))
	}
}

func TestLinkAccountOutcomes(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	request := &identityv1.LinkAccountRequest{
		ProviderType:      "oauth",
		ProviderId:        "github",
		ProviderAccountId: "42",
		Profile:           &identityv1.Profile{Name: stringPtr("Ada"), Email: stringPtr("ada@example.com")},
	}

	first, err := svc.LinkAccount(ctx, request)
	if err != nil {
		t.Fatalf("first link: %v", err)
	}
	if first.GetOutcome() != identityv1.LinkOutcome_LINK_OUTCOME_CREATED {
		t.Fatalf("outcome = %v, want created", first.GetOutcome())
	}

	second, err := svc.LinkAccount(ctx, request)
	if err != nil {
		t.Fatalf("second link: %v", err)
	}
	if second.GetOutcome() != identityv1.LinkOutcome_LINK_OUTCOME_LINKED {
		t.Fatalf("outcome = %v, want linked", second.GetOutcome())
	}
	if second.GetUser().GetId() != first.GetUser().GetId() {
		t.Fatal("repeat sign-in resolved to a different user")
	}

	refreshed := &identityv1.LinkAccountRequest{
		ProviderType:      "oauth",
		ProviderId:        "github",
		ProviderAccountId: "42",
		AccessToken:       stringPtr("access-new"),
		Profile:           &identityv1.Profile{Email: stringPtr("ada@example.com")},
	}
	third, err := svc.LinkAccount(ctx, refreshed)
	if err != nil {
		t.Fatalf("refresh link: %v", err)
	}
	if third.GetOutcome() != identityv1.LinkOutcome_LINK_OUTCOME_REFRESHED {
		t.Fatalf("outcome = %v, want refreshed", third.GetOutcome())
	}
	if third.GetAccount().GetAccessToken() != "access-new" {
		t.Fatalf("access token = %q", third.GetAccount().GetAccessToken())
	}
}

func TestLinkAccountValidation(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.LinkAccount(context.Background(), &identityv1.LinkAccountRequest{
		ProviderId:        "github",
		ProviderAccountId: "42",
	})
	wantStatus(t, err, codes.InvalidArgument)
}

func TestUnlinkAccount(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.LinkAccount(ctx, &identityv1.LinkAccountRequest{
		ProviderType:      "oauth",
		ProviderId:        "github",
		ProviderAccountId: "42",
		Profile:           &identityv1.Profile{Email: stringPtr("ada@example.com")},
	}); err != nil {
		t.Fatalf("link: %v", err)
	}

	unlink := &identityv1.UnlinkAccountRequest{ProviderId: "github", ProviderAccountId: "42"}
	if _, err := svc.UnlinkAccount(ctx, unlink); err != nil {
		t.Fatalf("unlink: %v", err)
	}
	if _, err := svc.UnlinkAccount(ctx, unlink); err != nil {
		t.Fatalf("second unlink: %v", err)
	}

	_, err := svc.UnlinkAccount(ctx, &identityv1.UnlinkAccountRequest{ProviderAccountId: "42"})
	wantStatus(t, err, codes.InvalidArgument)
}

func TestSessionLifecycle(t *testing.T) {
	svc, clock := newTestService(t)
	ctx := context.Background()

	owner := createUser(t, svc, "ada@example.com")
	created, err := svc.CreateSession(ctx, &identityv1.CreateSessionRequest{
		UserId:       owner.GetId(),
		TtlSeconds:   3600,
		SessionToken: "st-1",
		AccessToken:  "at-1",
	})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if created.GetSession().GetSessionToken() != "st-1" || created.GetSession().GetAccessToken() != "at-1" {
		t.Fatalf("tokens not stored as given: %v", created.GetSession())
	}

	byToken, err := svc.GetSessionByToken(ctx, &identityv1.GetSessionByTokenRequest{
		SessionToken: created.GetSession().GetSessionToken(),
	})
	if err != nil {
		t.Fatalf("get session by token: %v", err)
	}
	if byToken.GetUser().GetId() != owner.GetId() {
		t.Fatalf("owner = %q, want %q", byToken.GetUser().GetId(), owner.GetId())
	}

	rotated, err := svc.RotateSession(ctx, &identityv1.RotateSessionRequest{
		SessionToken:   created.GetSession().GetSessionToken(),
		NewAccessToken: "at-2",
		TtlSeconds:     7200,
	})
	if err != nil {
		t.Fatalf("rotate session: %v", err)
	}
	if rotated.GetSession().GetSessionToken() != created.GetSession().GetSessionToken() {
		t.Fatal("rotation changed the session token")
	}
	if rotated.GetSession().GetAccessToken() == created.GetSession().GetAccessToken() {
		t.Fatal("rotation kept the old access token")
	}

	byAccess, err := svc.GetSessionByAccessToken(ctx, &identityv1.GetSessionByAccessTokenRequest{
		AccessToken: rotated.GetSession().GetAccessToken(),
	})
	if err != nil {
		t.Fatalf("get session by access token: %v", err)
	}
	if byAccess.GetSession().GetId() != created.GetSession().GetId() {
		t.Fatal("access token resolved a different session")
	}
	_, err = svc.GetSessionByAccessToken(ctx, &identityv1.GetSessionByAccessTokenRequest{
		AccessToken: created.GetSession().GetAccessToken(),
	})
	wantStatus(t, err, codes.NotFound)

	clock.Advance(3 * time.Hour)
	_, err = svc.GetSessionByToken(ctx, &identityv1.GetSessionByTokenRequest{
		SessionToken: created.GetSession().GetSessionToken(),
	})
	wantStatus(t, err, codes.FailedPrecondition)
}

func TestCreateSessionZeroTTLIsExpired(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	owner := createUser(t, svc, "ada@example.com")
	created, err := svc.CreateSession(ctx, &identityv1.CreateSessionRequest{
		UserId:       owner.GetId(),
		SessionToken: "st-1",
		AccessToken:  "at-1",
	})
	if err != nil {
		t.Fatalf("create session with zero ttl: %v", err)
	}
	_, err = svc.GetSessionByToken(ctx, &identityv1.GetSessionByTokenRequest{
		SessionToken: created.GetSession().GetSessionToken(),
	})
	wantStatus(t, err, codes.FailedPrecondition)
}

func TestCreateSessionNegativeTTL(t *testing.T) {
	svc, _ := newTestService(t)
	owner := createUser(t, svc, "ada@example.com")
	_, err := svc.CreateSession(context.Background(), &identityv1.CreateSessionRequest{
		UserId:       owner.GetId(),
		TtlSeconds:   -1,
		SessionToken: "st-1",
		AccessToken:  "at-1",
	})
	wantStatus(t, err, codes.InvalidArgument)
}

func TestCreateSessionRequiresTokens(t *testing.T) {
	svc, _ := newTestService(t)
	owner := createUser(t, svc, "ada@example.com")
	_, err := svc.CreateSession(context.Background(), &identityv1.CreateSessionRequest{
		UserId:     owner.GetId(),
		TtlSeconds: 3600,
	})
	wantStatus(t, err, codes.InvalidArgument)
}

func TestDeleteSessionIdempotent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	owner := createUser(t, svc, "ada@example.com")
	created, err := svc.CreateSession(ctx, &identityv1.CreateSessionRequest{
		UserId:       owner.GetId(),
		TtlSeconds:   3600,
		SessionToken: "st-1",
		AccessToken:  "at-1",
	})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	del := &identityv1.DeleteSessionRequest{SessionToken: created.GetSession().GetSessionToken()}
	if _, err := svc.DeleteSession(ctx, del); err != nil {
		t.Fatalf("delete session: %v", err)
	}
	if _, err := svc.DeleteSession(ctx, del); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}

func TestVerificationFlow(t *testing.T) {
	svc, clock := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateVerificationRequest(ctx, &identityv1.CreateVerificationRequestRequest{
		Identifier: "ada@example.com",
		Token:      "magic-token",
		TtlSeconds: 600,
	})
	if err != nil {
		t.Fatalf("create verification request: %v", err)
	}
	if created.GetVerificationRequest().GetIdentifier() != "ada@example.com" {
		t.Fatalf("identifier = %q", created.GetVerificationRequest().GetIdentifier())
	}

	verify := &identityv1.VerifyTokenRequest{Identifier: "ada@example.com", Token: "magic-token"}
	ok, err := svc.VerifyToken(ctx, verify)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if ok.GetStatus() != identityv1.VerifyStatus_VERIFY_STATUS_OK {
		t.Fatalf("status = %v, want ok", ok.GetStatus())
	}
	if ok.GetVerifiedAt() == nil {
		t.Fatal("verified_at missing")
	}

	replay, err := svc.VerifyToken(ctx, verify)
	if err != nil {
		t.Fatalf("replay verify: %v", err)
	}
	if replay.GetStatus() != identityv1.VerifyStatus_VERIFY_STATUS_NOT_FOUND {
		t.Fatalf("replay status = %v, want not found", replay.GetStatus())
	}

	// Expired tokens report EXPIRED once, then NOT_FOUND.
	if _, err := svc.CreateVerificationRequest(ctx, &identityv1.CreateVerificationRequestRequest{
		Identifier: "ada@example.com",
		Token:      "stale-token",
		TtlSeconds: 60,
	}); err != nil {
		t.Fatalf("create second request: %v", err)
	}
	clock.Advance(time.Hour)
	stale, err := svc.VerifyToken(ctx, &identityv1.VerifyTokenRequest{
		Identifier: "ada@example.com",
		Token:      "stale-token",
	})
	if err != nil {
		t.Fatalf("verify stale: %v", err)
	}
	if stale.GetStatus() != identityv1.VerifyStatus_VERIFY_STATUS_EXPIRED {
		t.Fatalf("status = %v, want expired", stale.GetStatus())
	}
}

func TestVerifyTokenValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.VerifyToken(ctx, &identityv1.VerifyTokenRequest{Token: "tok"})
	wantStatus(t, err, codes.InvalidArgument)
	_, err = svc.VerifyToken(ctx, &identityv1.VerifyTokenRequest{Identifier: "ada@example.com"})
	wantStatus(t, err, codes.InvalidArgument)
	_, err = svc.CreateVerificationRequest(ctx, &identityv1.CreateVerificationRequestRequest{
		Identifier: "ada@example.com",
		TtlSeconds: 60,
	})
	wantStatus(t, err, codes.InvalidArgument)
}

func TestNilRequestsRejected(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.UpsertUser(ctx, nil); err == nil {
		t.Fatal("expected error for nil upsert request")
	}
	if _, err := svc.LinkAccount(ctx, nil); err == nil {
		t.Fatal("expected error for nil link request")
	}
	if _, err := svc.CreateSession(ctx, nil); err == nil {
		t.Fatal("expected error for nil session request")
	}
	if _, err := svc.VerifyToken(ctx, nil); err == nil {
		t.Fatal("expected error for nil verify request")
	}
}
