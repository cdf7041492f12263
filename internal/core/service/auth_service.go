package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/jobs4devs/vacancy-api/internal/api/metrics"
	"github.com/jobs4devs/vacancy-api/internal/core/domain"
	"github.com/jobs4devs/vacancy-api/internal/core/ports"
)

// AuthService implements registration and login. Tokens are HS256-signed and
// carry the account's custom claims as issued; lockout state lives behind the
// LockoutPolicy port.
type AuthService struct {
	repo      ports.UserRepository
	lockout   ports.LockoutPolicy
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, lockout ports.LockoutPolicy, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, lockout: lockout, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

// Register creates an account with the email confirmed and returns a token
// built the same way login builds one. New accounts start with no custom
// claims; claim grants happen outside this API.
func (s *AuthService) Register(ctx context.Context, email, password string) (*ports.TokenResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("user_id", created.ID).Msg("user registered")
	return s.issueToken(created)
}

// Login verifies credentials. A locked account is reported distinctly from
// bad credentials; every failed password attempt feeds the lockout counter
// and a successful login clears it.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.TokenResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	locked, err := s.lockout.IsLocked(ctx, email)
	if err != nil {
		return nil, err
	}
	if locked {
		metrics.LoginsTotal.WithLabelValues("locked").Inc()
		return nil, domain.ErrUserLockedOut
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			metrics.LoginsTotal.WithLabelValues("invalid").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		if err := s.lockout.RecordFailure(ctx, email); err != nil {
			s.logger.Warn().Err(err).Msg("failed to record login failure")
		}
		metrics.LoginsTotal.WithLabelValues("invalid").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	if err := s.lockout.Reset(ctx, email); err != nil {
		s.logger.Warn().Err(err).Msg("failed to reset lockout counter")
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")
	return s.issueToken(user)
}

// issueToken mints the signed bearer token and response envelope for an
// account. Claims reflect account state at issuance time only.
func (s *AuthService) issueToken(user *domain.User) (*ports.TokenResult, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":    user.ID,
		"email":  user.Email,
		"claims": user.Claims,
		"iat":    now.Unix(),
		"exp":    now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, err
	}

	return &ports.TokenResult{
		AccessToken: signed,
		ExpiresIn:   int64(s.tokenTTL.Seconds()),
		User: ports.TokenUser{
			ID:     user.ID,
			Email:  user.Email,
			Claims: user.Claims,
		},
	}, nil
}
