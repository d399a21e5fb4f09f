package identity

import (
	"time"

	identityv1 "github.com/oakwell/identityd/api/gen/go/identity/v1"
	apperrors "github.com/oakwell/identityd/internal/platform/errors"
	"github.com/oakwell/identityd/internal/platform/grpc/pagination"
	"github.com/oakwell/identityd/internal/platform/id"
	"github.com/oakwell/identityd/internal/services/identity/link"
	"github.com/oakwell/identityd/internal/services/identity/session"
	"github.com/oakwell/identityd/internal/services/identity/storage"
	"github.com/oakwell/identityd/internal/services/identity/verification"
)

const (
	defaultListUsersPageSize = 20
	maxListUsersPageSize     = 100
)

// Service exposes identity.v1 gRPC operations.
type Service struct {
	identityv1.UnimplementedIdentityServiceServer

	users         storage.UserStore
	links         *link.Manager
	sessions      *session.Manager
	verifications *verification.Manager

	clock       func() time.Time
	idGenerator func() (string, error)
}

// NewService creates an identity service over the given stores and managers.
func NewService(users storage.UserStore, links *link.Manager, sessions *session.Manager, verifications *verification.Manager) *Service {
	return &Service{
		users:         users,
		links:         links,
		sessions:      sessions,
		verifications: verifications,
		clock:         time.Now,
		idGenerator:   id.NewID,
	}
}

// WithClock overrides the time source.
func (s *Service) WithClock(clock func() time.Time) *Service {
	if clock != nil {
		s.clock = clock
	}
	return s
}

// WithIDGenerator overrides the identifier source.
func (s *Service) WithIDGenerator(idGenerator func() (string, error)) *Service {
	if idGenerator != nil {
		s.idGenerator = idGenerator
	}
	return s
}

func (s *Service) listUsersPageSize(requested int32) int {
	return pagination.ClampPageSize(requested, pagination.PageSizeConfig{
		Default: defaultListUsersPageSize,
		Max:     maxListUsersPageSize,
	})
}

// handleError converts domain and storage errors into gRPC status errors.
func handleError(err error) error {
	return apperrors.HandleError(err)
}
