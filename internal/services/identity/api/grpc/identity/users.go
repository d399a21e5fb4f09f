package identity

import (
	"context"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	identityv1 "github.com/oakwell/identityd/api/gen/go/identity/v1"
	"github.com/oakwell/identityd/internal/services/identity/user"
)

// UpsertUser creates a user when user_id is empty, otherwise applies a
// partial update to the existing user.
func (s *Service) UpsertUser(ctx context.Context, in *identityv1.UpsertUserRequest) (*identityv1.UpsertUserResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "upsert user request is required")
	}
	if s == nil || s.users == nil {
		return nil, status.Error(codes.Internal, "user store is not configured")
	}

	userID := strings.TrimSpace(in.GetUserId())
	if userID == "" {
		created, err := user.CreateUser(user.CreateUserInput{
			Name:          in.GetName(),
			Email:         in.GetEmail(),
			EmailVerified: timeFromTimestamp(in.GetEmailVerified()),
			Image:         in.GetImage(),
		}, s.clock, s.idGenerator)
		if err != nil {
			return nil, handleError(err)
		}
		if err := s.users.CreateUser(ctx, created); err != nil {
			return nil, handleError(err)
		}
		return &identityv1.UpsertUserResponse{User: userToProto(created)}, nil
	}

	updated, err := s.applyUserUpdate(ctx, userID, in.Name, in.Email, in.EmailVerified, in.Image)
	if err != nil {
		return nil, err
	}
	return &identityv1.UpsertUserResponse{User: userToProto(updated)}, nil
}

// GetUserById resolves a user by its opaque id.
func (s *Service) GetUserById(ctx context.Context, in *identityv1.GetUserByIdRequest) (*identityv1.GetUserByIdResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get user request is required")
	}
	if s == nil || s.users == nil {
		return nil, status.Error(codes.Internal, "user store is not configured")
	}
	userID := strings.TrimSpace(in.GetUserId())
	if userID == "" {
		return nil, status.Error(codes.InvalidArgument, "user id is required")
	}

	found, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, handleError(err)
	}
	return &identityv1.GetUserByIdResponse{User: userToProto(found)}, nil
}

// GetUserByEmail resolves a user by normalized email address.
func (s *Service) GetUserByEmail(ctx context.Context, in *identityv1.GetUserByEmailRequest) (*identityv1.GetUserByEmailResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get user by email request is required")
	}
	if s == nil || s.users == nil {
		return nil, status.Error(codes.Internal, "user store is not configured")
	}
	if strings.TrimSpace(in.GetEmail()) == "" {
		return nil, status.Error(codes.InvalidArgument, "email is required")
	}
	email, err := user.NormalizeEmail(in.GetEmail())
	if err != nil {
		return nil, handleError(err)
	}

	found, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, handleError(err)
	}
	return &identityv1.GetUserByEmailResponse{User: userToProto(found)}, nil
}

// UpdateUser applies a partial profile update to an existing user.
func (s *Service) UpdateUser(ctx context.Context, in *identityv1.UpdateUserRequest) (*identityv1.UpdateUserResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "update user request is required")
	}
	if s == nil || s.users == nil {
		return nil, status.Error(codes.Internal, "user store is not configured")
	}
	userID := strings.TrimSpace(in.GetUserId())
	if userID == "" {
		return nil, status.Error(codes.InvalidArgument, "user id is required")
	}

	updated, err := s.applyUserUpdate(ctx, userID, in.Name, in.Email, in.EmailVerified, in.Image)
	if err != nil {
		return nil, err
	}
	return &identityv1.UpdateUserResponse{User: userToProto(updated)}, nil
}

// DeleteUser removes a user and cascades to its accounts and sessions.
func (s *Service) DeleteUser(ctx context.Context, in *identityv1.DeleteUserRequest) (*identityv1.DeleteUserResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "delete user request is required")
	}
	if s == nil || s.users == nil {
		return nil, status.Error(codes.Internal, "user store is not configured")
	}
	userID := strings.TrimSpace(in.GetUserId())
	if userID == "" {
		return nil, status.Error(codes.InvalidArgument, "user id is required")
	}

	if err := s.users.DeleteUser(ctx, userID); err != nil {
		return nil, handleError(err)
	}
	return &identityv1.DeleteUserResponse{}, nil
}

// ListUsers returns a page of users ordered by id.
func (s *Service) ListUsers(ctx context.Context, in *identityv1.ListUsersRequest) (*identityv1.ListUsersResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "list users request is required")
	}
	if s == nil || s.users == nil {
		return nil, status.Error(codes.Internal, "user store is not configured")
	}

	page, err := s.users.ListUsers(ctx, s.listUsersPageSize(in.GetPageSize()), in.GetPageToken())
	if err != nil {
		return nil, handleError(err)
	}
	users := make([]*identityv1.User, 0, len(page.Users))
	for _, u := range page.Users {
		users = append(users, userToProto(u))
	}
	return &identityv1.ListUsersResponse{
		Users:         users,
		NextPageToken: page.NextPageToken,
	}, nil
}

// applyUserUpdate loads a user, overlays the fields the caller set, and
// persists the result. Unset fields keep their stored values; an optional
// field set to empty clears the stored value.
func (s *Service) applyUserUpdate(ctx context.Context, userID string, name, email *string, emailVerified *timestamppb.Timestamp, image *string) (user.User, error) {
	existing, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return user.User{}, handleError(err)
	}

	if name != nil {
		existing.Name = strings.TrimSpace(*name)
	}
	if email != nil {
		normalized, err := user.NormalizeEmail(*email)
		if err != nil {
			return user.User{}, handleError(err)
		}
		existing.Email = normalized
	}
	if emailVerified != nil {
		existing.EmailVerified = timeFromTimestamp(emailVerified)
	}
	if image != nil {
		existing.Image = strings.TrimSpace(*image)
	}
	existing.UpdatedAt = s.clock().UTC()

	if err := s.users.UpdateUser(ctx, existing); err != nil {
		return user.User{}, handleError(err)
	}
	return existing, nil
}
