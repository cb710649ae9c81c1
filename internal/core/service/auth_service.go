package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskhub/todo-system/internal/core/domain"
	"github.com/taskhub/todo-system/internal/core/ports"
)

const defaultTokenTTL = 2 * time.Hour

// AuthService implements registration and login.
type AuthService struct {
	repo      ports.UserRepository
	cache     ports.TokenCache
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

// NewAuthService builds an AuthService. cache may be nil, in which case the
// last-issued token is persisted on the user record only.
func NewAuthService(repo ports.UserRepository, cache ports.TokenCache, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &AuthService{repo: repo, cache: cache, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

// Register creates a new account and issues a session token. The email is
// trimmed and lower-cased before the uniqueness check so that registration
// is case-insensitive.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	if input.FirstName == "" || input.LastName == "" || input.Email == "" || input.Password == "" {
		return nil, domain.Invalid("All fields are required")
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     email,
		Password:  string(hash),
		Picture:   input.Picture,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := s.generateToken(created)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("email", created.Email).Msg("user registered")

	return &ports.AuthResult{User: created, Token: token}, nil
}

// Login verifies the credentials and issues a fresh session token. An
// unknown email and a wrong password produce the same ErrInvalidCredentials
// so callers cannot probe which addresses are registered.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.Invalid("Email and password are required")
	}

	user, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	// The stored token is a cache, not the source of truth, so a failed
	// write degrades to a log line instead of failing the login.
	if err := s.repo.UpdateToken(ctx, user.ID, token); err != nil {
		s.logger.Warn().Err(err).Str("user_id", user.ID).Msg("failed to persist session token")
	} else {
		user.Token = token
	}
	if s.cache != nil {
		if err := s.cache.Store(ctx, user.ID, token, s.tokenTTL); err != nil {
			s.logger.Warn().Err(err).Str("user_id", user.ID).Msg("failed to cache session token")
		}
	}

	s.logger.Info().Str("user_id", user.ID).Msg("login successful")

	return &ports.AuthResult{User: user, Token: token}, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
