package identity

import (
	"context"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	identityv1 "github.com/oakwell/identityd/api/gen/go/identity/v1"
	"github.com/oakwell/identityd/internal/services/identity/verification"
)

// CreateVerificationRequest stores a single-use verification token for an
// identifier.
func (s *Service) CreateVerificationRequest(ctx context.Context, in *identityv1.CreateVerificationRequestRequest) (*identityv1.CreateVerificationRequestResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "create verification request is required")
	}
	if s == nil || s.verifications == nil {
		return nil, status.Error(codes.Internal, "verification manager is not configured")
	}
	if strings.TrimSpace(in.GetIdentifier()) == "" {
		return nil, status.Error(codes.InvalidArgument, "identifier is required")
	}
	if strings.TrimSpace(in.GetToken()) == "" {
		return nil, status.Error(codes.InvalidArgument, "token is required")
	}

	request, err := s.verifications.Issue(ctx, in.GetIdentifier(), in.GetToken(), time.Duration(in.GetTtlSeconds())*time.Second)
	if err != nil {
		return nil, handleError(err)
	}
	return &identityv1.CreateVerificationRequestResponse{
		VerificationRequest: verificationRequestToProto(request),
	}, nil
}

// VerifyToken consumes a verification token and reports the terminal
// outcome. A matched token is consumed whether or not it had expired.
func (s *Service) VerifyToken(ctx context.Context, in *identityv1.VerifyTokenRequest) (*identityv1.VerifyTokenResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "verify token request is required")
	}
	if s == nil || s.verifications == nil {
		return nil, status.Error(codes.Internal, "verification manager is not configured")
	}
	if strings.TrimSpace(in.GetIdentifier()) == "" {
		return nil, status.Error(codes.InvalidArgument, "identifier is required")
	}
	if strings.TrimSpace(in.GetToken()) == "" {
		return nil, status.Error(codes.InvalidArgument, "token is required")
	}

	result, err := s.verifications.Verify(ctx, in.GetIdentifier(), in.GetToken())
	if err != nil {
		return nil, handleError(err)
	}
	response := &identityv1.VerifyTokenResponse{
		Status:     verifyStatusToProto(result.Status),
		Identifier: result.Request.Identifier,
	}
	if result.Status == verification.StatusOK {
		response.VerifiedAt = timestamppb.New(s.clock().UTC())
	}
	return response, nil
}
