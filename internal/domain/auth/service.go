package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
	"time"

	"estatelink/internal/domain"
	"estatelink/internal/pkg/jwt"
	"estatelink/internal/pkg/mailer"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	maxFailedLoginAttempts = 5
	lockoutDuration        = 15 * time.Minute
)

// Service contains all business logic for authentication.
type Service struct {
	users         UserRepository
	refreshTokens RefreshTokenRepository
	blacklist     BlacklistRepository
	codes         CodeRepository
	jwt           *jwt.Service
	mail          mailer.Mailer
	refreshTTL    time.Duration
	verifyCodeTTL time.Duration
}

func NewService(
	users UserRepository,
	refreshTokens RefreshTokenRepository,
	blacklist BlacklistRepository,
	codes CodeRepository,
	jwtService *jwt.Service,
	mail mailer.Mailer,
	refreshTTL time.Duration,
	verifyCodeTTL time.Duration,
) *Service {
	return &Service{
		users:         users,
		refreshTokens: refreshTokens,
		blacklist:     blacklist,
		codes:         codes,
		jwt:           jwtService,
		mail:          mail,
		refreshTTL:    refreshTTL,
		verifyCodeTTL: verifyCodeTTL,
	}
}

// Register creates a manager or tenant account. Admin and staff accounts are
// provisioned elsewhere (seed, staff module).
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*domain.User, error) {
	role := domain.UserRole(strings.ToLower(strings.TrimSpace(req.Role)))
	if role != domain.RoleManager && role != domain.RoleTenant {
		return nil, ErrInvalidRole
	}

	existing, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hashed),
		Name:         req.Name,
		Phone:        req.Phone,
		Role:         role,
		Status:       domain.UserActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := s.RequestEmailVerification(ctx, user.Email); err != nil {
		return nil, err
	}
	_ = s.mail.SendWelcome(ctx, user.Email, user.Name)

	return user, nil
}

// Login checks credentials and issues a token pair. Failed attempts count
// towards a temporary lockout.
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if user.Status == domain.UserSuspended {
		return nil, ErrAccountSuspended
	}
	if user.IsLocked() {
		return nil, ErrAccountLocked
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		user.FailedLoginAttempts++
		if user.FailedLoginAttempts >= maxFailedLoginAttempts {
			until := time.Now().Add(lockoutDuration)
			user.LockedUntil = &until
			user.FailedLoginAttempts = 0
		}
		_ = s.users.Update(ctx, user)
		return nil, ErrInvalidCredentials
	}

	if user.FailedLoginAttempts != 0 || user.LockedUntil != nil {
		user.FailedLoginAttempts = 0
		user.LockedUntil = nil
		_ = s.users.Update(ctx, user)
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}
	return &LoginResponse{User: user, Tokens: tokens}, nil
}

// Refresh rotates the refresh token: the presented token is single-use and a
// fresh pair is issued.
func (s *Service) Refresh(ctx context.Context, rawToken string) (*TokenPair, error) {
	row, err := s.refreshTokens.GetByHash(ctx, hashToken(rawToken))
	if err != nil {
		return nil, err
	}
	if row == nil || row.UsedAt != nil || row.RevokedAt != nil || time.Now().After(row.ExpiresAt) {
		return nil, ErrInvalidToken
	}

	user, err := s.users.GetByID(ctx, row.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Status == domain.UserSuspended {
		return nil, ErrUnauthorized
	}

	if err := s.refreshTokens.MarkUsed(ctx, row.ID); err != nil {
		return nil, err
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}
	return &tokens, nil
}

// Logout revokes the current access token via the blacklist and invalidates
// all refresh tokens for the user.
func (s *Service) Logout(ctx context.Context, userID int64, jti string) error {
	if jti != "" {
		revoked := &domain.RevokedToken{
			JTI:       jti,
			UserID:    userID,
			ExpiresAt: time.Now().Add(s.jwt.AccessTTL()),
			CreatedAt: time.Now(),
		}
		if err := s.blacklist.Add(ctx, revoked); err != nil {
			return err
		}
	}
	return s.refreshTokens.RevokeAllForUser(ctx, userID)
}

// RequestEmailVerification issues a 6-digit code and mails it.
func (s *Service) RequestEmailVerification(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil || user.EmailVerified {
		// Do not leak whether the address exists
		return nil
	}

	code, err := numericCode(6)
	if err != nil {
		return err
	}
	if err := s.codes.Upsert(ctx, &VerificationCode{
		UserID:    user.ID,
		Purpose:   PurposeEmailVerify,
		CodeHash:  hashToken(code),
		ExpiresAt: time.Now().Add(s.verifyCodeTTL),
		CreatedAt: time.Now(),
	}); err != nil {
		return err
	}

	return s.mail.SendVerificationCode(ctx, user.Email, code)
}

// VerifyEmail confirms the emailed code.
func (s *Service) VerifyEmail(ctx context.Context, req *VerifyEmailRequest) error {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrCodeMismatch
	}

	stored, err := s.codes.Get(ctx, user.ID, PurposeEmailVerify)
	if err != nil {
		return err
	}
	if stored == nil || time.Now().After(stored.ExpiresAt) || stored.CodeHash != hashToken(req.Code) {
		return ErrCodeMismatch
	}

	user.EmailVerified = true
	user.UpdatedAt = time.Now()
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}
	return s.codes.Delete(ctx, user.ID, PurposeEmailVerify)
}

// RequestPasswordReset mails a reset token. Always succeeds from the
// caller's point of view to avoid account enumeration.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	token := uuid.NewString()
	if err := s.codes.Upsert(ctx, &VerificationCode{
		UserID:    user.ID,
		Purpose:   PurposePasswordReset,
		CodeHash:  hashToken(token),
		ExpiresAt: time.Now().Add(s.verifyCodeTTL),
		CreatedAt: time.Now(),
	}); err != nil {
		return err
	}

	return s.mail.SendPasswordReset(ctx, user.Email, fmt.Sprintf("%d:%s", user.ID, token))
}

// ConfirmPasswordReset sets a new password given a valid reset token and
// revokes every outstanding session.
func (s *Service) ConfirmPasswordReset(ctx context.Context, req *ResetConfirmRequest) error {
	var userID int64
	var token string
	if _, err := fmt.Sscanf(req.Token, "%d:%s", &userID, &token); err != nil {
		return ErrInvalidToken
	}

	stored, err := s.codes.Get(ctx, userID, PurposePasswordReset)
	if err != nil {
		return err
	}
	if stored == nil || time.Now().After(stored.ExpiresAt) || stored.CodeHash != hashToken(token) {
		return ErrInvalidToken
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrInvalidToken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hashed)
	user.UpdatedAt = time.Now()
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	_ = s.codes.Delete(ctx, userID, PurposePasswordReset)
	return s.refreshTokens.RevokeAllForUser(ctx, userID)
}

func (s *Service) issueTokens(ctx context.Context, user *domain.User) (TokenPair, error) {
	access, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return TokenPair{}, err
	}

	raw := uuid.NewString() + uuid.NewString()
	row := &domain.RefreshToken{
		UserID:    user.ID,
		TokenHash: hashToken(raw),
		ExpiresAt: time.Now().Add(s.refreshTTL),
		CreatedAt: time.Now(),
	}
	if err := s.refreshTokens.Create(ctx, row); err != nil {
		return TokenPair{}, err
	}

	return TokenPair{AccessToken: access, RefreshToken: raw}, nil
}

func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

func numericCode(digits int) (string, error) {
	max := big.NewInt(1)
	for i := 0; i < digits; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", digits, n), nil
}
