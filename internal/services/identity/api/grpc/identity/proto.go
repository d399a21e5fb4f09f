package identity

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	identityv1 "github.com/oakwell/identityd/api/gen/go/identity/v1"
	"github.com/oakwell/identityd/internal/services/identity/link"
	"github.com/oakwell/identityd/internal/services/identity/storage"
	"github.com/oakwell/identityd/internal/services/identity/user"
	"github.com/oakwell/identityd/internal/services/identity/verification"
)

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func optionalTimestamp(value *time.Time) *timestamppb.Timestamp {
	if value == nil {
		return nil
	}
	return timestamppb.New(*value)
}

func timeFromTimestamp(ts *timestamppb.Timestamp) *time.Time {
	if ts == nil {
		return nil
	}
	value := ts.AsTime()
	return &value
}

func userToProto(u user.User) *identityv1.User {
	return &identityv1.User{
		Id:            u.ID,
		Name:          optionalString(u.Name),
		Email:         optionalString(u.Email),
		EmailVerified: optionalTimestamp(u.EmailVerified),
		Image:         optionalString(u.Image),
		CreatedAt:     timestamppb.New(u.CreatedAt),
		UpdatedAt:     timestamppb.New(u.UpdatedAt),
	}
}

func accountToProto(account storage.Account) *identityv1.Account {
	return &identityv1.Account{
		Id:                 account.ID,
		UserId:             account.UserID,
		ProviderType:       account.ProviderType,
		ProviderId:         account.ProviderID,
		ProviderAccountId:  account.ProviderAccountID,
		RefreshToken:       optionalString(account.RefreshToken),
		AccessToken:        optionalString(account.AccessToken),
		AccessTokenExpires: optionalTimestamp(account.AccessTokenExpires),
		CreatedAt:          timestamppb.New(account.CreatedAt),
		UpdatedAt:          timestamppb.New(account.UpdatedAt),
	}
}

func sessionToProto(session storage.Session) *identityv1.Session {
	return &identityv1.Session{
		Id:           session.ID,
		UserId:       session.UserID,
		ExpiresAt:    timestamppb.New(session.ExpiresAt),
		SessionToken: session.SessionToken,
		AccessToken:  session.AccessToken,
		CreatedAt:    timestamppb.New(session.CreatedAt),
		UpdatedAt:    timestamppb.New(session.UpdatedAt),
	}
}

func verificationRequestToProto(request storage.VerificationRequest) *identityv1.VerificationRequest {
	return &identityv1.VerificationRequest{
		Id:         request.ID,
		Identifier: request.Identifier,
		ExpiresAt:  timestamppb.New(request.ExpiresAt),
		CreatedAt:  timestamppb.New(request.CreatedAt),
		UpdatedAt:  timestamppb.New(request.UpdatedAt),
	}
}

func linkOutcomeToProto(outcome link.Outcome) identityv1.LinkOutcome {
	switch outcome {
	case link.OutcomeCreated:
		return identityv1.LinkOutcome_LINK_OUTCOME_CREATED
	case link.OutcomeLinked:
		return identityv1.LinkOutcome_LINK_OUTCOME_LINKED
	case link.OutcomeRefreshed:
		return identityv1.LinkOutcome_LINK_OUTCOME_REFRESHED
	default:
		return identityv1.LinkOutcome_LINK_OUTCOME_UNSPECIFIED
	}
}

func verifyStatusToProto(status verification.Status) identityv1.VerifyStatus {
	switch status {
	case verification.StatusOK:
		return identityv1.VerifyStatus_VERIFY_STATUS_OK
	case verification.StatusExpired:
		return identityv1.VerifyStatus_VERIFY_STATUS_EXPIRED
	case verification.StatusNotFound:
		return identityv1.VerifyStatus_VERIFY_STATUS_NOT_FOUND
	default:
		return identityv1.VerifyStatus_VERIFY_STATUS_UNSPECIFIED
	}
}
