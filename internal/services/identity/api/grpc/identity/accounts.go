package identity

import (
	"context"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	identityv1 "github.com/oakwell/identityd/api/gen/go/identity/v1"
	"github.com/oakwell/identityd/internal/services/identity/link"
	"github.com/oakwell/identityd/internal/services/identity/storage"
	"github.com/oakwell/identityd/internal/services/identity/user"
)

// LinkAccount resolves a provider identity to exactly one user, creating the
// user and account when the identity is new.
func (s *Service) LinkAccount(ctx context.Context, in *identityv1.LinkAccountRequest) (*identityv1.LinkAccountResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "link account request is required")
	}
	if s == nil || s.links == nil {
		return nil, status.Error(codes.Internal, "link manager is not configured")
	}

	profile := in.GetProfile()
	input := link.Input{
		ProviderType:      in.GetProviderType(),
		ProviderID:        in.GetProviderId(),
		ProviderAccountID: in.GetProviderAccountId(),
		Profile: user.CreateUserInput{
			Name:          profile.GetName(),
			Email:         profile.GetEmail(),
			EmailVerified: timeFromTimestamp(profile.GetEmailVerified()),
			Image:         profile.GetImage(),
		},
		Tokens: storage.TokenRefresh{
			RefreshToken:       in.GetRefreshToken(),
			AccessToken:        in.GetAccessToken(),
			AccessTokenExpires: timeFromTimestamp(in.GetAccessTokenExpires()),
		},
	}

	result, err := s.links.LinkOrCreate(ctx, input)
	if err != nil {
		return nil, handleError(err)
	}
	return &identityv1.LinkAccountResponse{
		User:    userToProto(result.User),
		Account: accountToProto(result.Account),
		Outcome: linkOutcomeToProto(result.Outcome),
	}, nil
}

// UnlinkAccount removes the account mapped to a provider identity. Removing
// an absent account succeeds.
func (s *Service) UnlinkAccount(ctx context.Context, in *identityv1.UnlinkAccountRequest) (*identityv1.UnlinkAccountResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "unlink account request is required")
	}
	if s == nil || s.links == nil {
		return nil, status.Error(codes.Internal, "link manager is not configured")
	}
	if strings.TrimSpace(in.GetProviderId()) == "" {
		return nil, status.Error(codes.InvalidArgument, "provider id is required")
	}
	if strings.TrimSpace(in.GetProviderAccountId()) == "" {
		return nil, status.Error(codes.InvalidArgument, "provider account id is required")
	}

	if err := s.links.Unlink(ctx, in.GetProviderId(), in.GetProviderAccountId()); err != nil {
		return nil, handleError(err)
	}
	return &identityv1.UnlinkAccountResponse{}, nil
}
