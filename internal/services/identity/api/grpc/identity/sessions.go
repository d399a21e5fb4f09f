package identity

import (
	"context"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	identityv1 "github.com/oakwell/identityd/api/gen/go/identity/v1"
	"github.com/oakwell/identityd/internal/services/identity/session"
	"github.com/oakwell/identityd/internal/services/identity/storage"
	"github.com/oakwell/identityd/internal/services/identity/user"
)

// CreateSession issues a session for a user from caller-supplied tokens.
func (s *Service) CreateSession(ctx context.Context, in *identityv1.CreateSessionRequest) (*identityv1.CreateSessionResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "create session request is required")
	}
	if s == nil || s.sessions == nil {
		return nil, status.Error(codes.Internal, "session manager is not configured")
	}

	created, err := s.sessions.Issue(ctx, session.IssueInput{
		UserID:       in.GetUserId(),
		TTL:          time.Duration(in.GetTtlSeconds()) * time.Second,
		SessionToken: in.GetSessionToken(),
		AccessToken:  in.GetAccessToken(),
	})
	if err != nil {
		return nil, handleError(err)
	}
	return &identityv1.CreateSessionResponse{Session: sessionToProto(created)}, nil
}

// GetSessionByToken resolves a live session by its session token and returns
// the owning user alongside it.
func (s *Service) GetSessionByToken(ctx context.Context, in *identityv1.GetSessionByTokenRequest) (*identityv1.GetSessionByTokenResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get session request is required")
	}
	if s == nil || s.sessions == nil || s.users == nil {
		return nil, status.Error(codes.Internal, "session manager is not configured")
	}
	if strings.TrimSpace(in.GetSessionToken()) == "" {
		return nil, status.Error(codes.InvalidArgument, "session token is required")
	}

	found, owner, err := s.resolveSessionOwner(ctx, func() (storage.Session, error) {
		return s.sessions.Resolve(ctx, in.GetSessionToken())
	})
	if err != nil {
		return nil, err
	}
	return &identityv1.GetSessionByTokenResponse{
		Session: sessionToProto(found),
		User:    userToProto(owner),
	}, nil
}

// GetSessionByAccessToken resolves a live session by its access token and
// returns the owning user alongside it.
func (s *Service) GetSessionByAccessToken(ctx context.Context, in *identityv1.GetSessionByAccessTokenRequest) (*identityv1.GetSessionByAccessTokenResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get session request is required")
	}
	if s == nil || s.sessions == nil || s.users == nil {
		return nil, status.Error(codes.Internal, "session manager is not configured")
	}
	if strings.TrimSpace(in.GetAccessToken()) == "" {
		return nil, status.Error(codes.InvalidArgument, "access token is required")
	}

	found, owner, err := s.resolveSessionOwner(ctx, func() (storage.Session, error) {
		return s.sessions.ResolveAccess(ctx, in.GetAccessToken())
	})
	if err != nil {
		return nil, err
	}
	return &identityv1.GetSessionByAccessTokenResponse{
		Session: sessionToProto(found),
		User:    userToProto(owner),
	}, nil
}

func (s *Service) resolveSessionOwner(ctx context.Context, resolve func() (storage.Session, error)) (storage.Session, user.User, error) {
	found, err := resolve()
	if err != nil {
		return storage.Session{}, user.User{}, handleError(err)
	}
	owner, err := s.users.GetUser(ctx, found.UserID)
	if err != nil {
		return storage.Session{}, user.User{}, handleError(err)
	}
	return found, owner, nil
}

// RotateSession atomically replaces a session's access token and expiry. The
// session token never changes.
func (s *Service) RotateSession(ctx context.Context, in *identityv1.RotateSessionRequest) (*identityv1.RotateSessionResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "rotate session request is required")
	}
	if s == nil || s.sessions == nil {
		return nil, status.Error(codes.Internal, "session manager is not configured")
	}
	if strings.TrimSpace(in.GetSessionToken()) == "" {
		return nil, status.Error(codes.InvalidArgument, "session token is required")
	}

	rotated, err := s.sessions.Rotate(ctx, in.GetSessionToken(), in.GetNewAccessToken(), time.Duration(in.GetTtlSeconds())*time.Second)
	if err != nil {
		return nil, handleError(err)
	}
	return &identityv1.RotateSessionResponse{Session: sessionToProto(rotated)}, nil
}

// DeleteSession revokes a session. Revoking an absent session succeeds.
func (s *Service) DeleteSession(ctx context.Context, in *identityv1.DeleteSessionRequest) (*identityv1.DeleteSessionResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "delete session request is required")
	}
	if s == nil || s.sessions == nil {
		return nil, status.Error(codes.Internal, "session manager is not configured")
	}
	if strings.TrimSpace(in.GetSessionToken()) == "" {
		return nil, status.Error(codes.InvalidArgument, "session token is required")
	}

	if err := s.sessions.Revoke(ctx, in.GetSessionToken()); err != nil {
		return nil, handleError(err)
	}
	return &identityv1.DeleteSessionResponse{}, nil
}
