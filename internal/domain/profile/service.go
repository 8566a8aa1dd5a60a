package profile

import (
	"context"
	"strings"
	"time"

	"estatelink/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

// Notifier is the slice of the notification service the profile module uses.
type Notifier interface {
	NotifyAccountUpdated(ctx context.Context, userID int64)
}

// SessionRevoker invalidates all refresh tokens for a user. Used after a
// password change so stale sessions cannot be refreshed.
type SessionRevoker interface {
	RevokeAllForUser(ctx context.Context, userID int64) error
}

type Service struct {
	repo     Repository
	sessions SessionRevoker
	notifs   Notifier
}

func NewService(repo Repository, sessions SessionRevoker, notifs Notifier) *Service {
	return &Service{repo: repo, sessions: sessions, notifs: notifs}
}

// Get returns the profile of the given user.
func (s *Service) Get(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Update applies the provided fields to the user's profile.
func (s *Service) Update(ctx context.Context, userID int64, req *UpdateRequest) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		user.Phone = strings.TrimSpace(*req.Phone)
	}
	user.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.notifs.NotifyAccountUpdated(ctx, userID)
	return user, nil
}

// ChangePassword verifies the current password, stores the new hash and
// revokes every refresh token so other sessions have to log in again.
func (s *Service) ChangePassword(ctx context.Context, userID int64, req *ChangePasswordRequest) error {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)) != nil {
		return ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, user); err != nil {
		return err
	}

	_ = s.sessions.RevokeAllForUser(ctx, userID)
	return nil
}

// ListUsers returns a paginated user listing for the admin console.
func (s *Service) ListUsers(ctx context.Context, params *ListUsersParams) (*UserListResponse, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 || params.Limit > 100 {
		params.Limit = 20
	}

	users, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return &UserListResponse{
		Users: users,
		Total: total,
		Page:  params.Page,
		Limit: params.Limit,
	}, nil
}

// SetStatus suspends or reactivates a user account. Suspension also kills
// all refresh tokens so the user is cut off once the access token expires.
func (s *Service) SetStatus(ctx context.Context, adminID, userID int64, status string) (*domain.User, error) {
	if adminID == userID {
		return nil, ErrCannotSuspendSelf
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	user.Status = domain.UserStatus(status)
	user.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	if user.Status == domain.UserSuspended {
		_ = s.sessions.RevokeAllForUser(ctx, userID)
	}

	s.notifs.NotifyAccountUpdated(ctx, userID)
	return user, nil
}
