package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskhive/taskhive/internal/core/domain"
	"github.com/taskhive/taskhive/internal/core/ports"
)

// AuthService implements registration, login and password changes on top of
// the shared credential store. Every app in the suite constructs one with
// its own default member role.
type AuthService struct {
	repo       ports.AccountRepository
	hasher     ports.PasswordHasher
	tokens     ports.TokenService
	memberRole string
	logger     zerolog.Logger
}

func NewAuthService(repo ports.AccountRepository, hasher ports.PasswordHasher, tokens ports.TokenService, memberRole string, logger zerolog.Logger) *AuthService {
	if memberRole == "" {
		memberRole = domain.RoleCustomer
	}
	return &AuthService{
		repo:       repo,
		hasher:     hasher,
		tokens:     tokens,
		memberRole: memberRole,
		logger:     logger,
	}
}

func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.Account, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	account := &domain.Account{
		Username:     username,
		PasswordHash: hash,
		Role:         s.memberRole,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, account); err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", username).Str("role", account.Role).Msg("user registered")
	return account, nil
}

// Login verifies credentials and issues a session token. Unknown usernames
// and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	account, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Check(password, account.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(account.Username, account.Role)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info().Str("username", username).Msg("user logged in")
	return &ports.LoginResult{AccessToken: token, TokenType: "bearer"}, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, target, newPassword string) error {
	if target == "" || newPassword == "" {
		return domain.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.UpdatePassword(ctx, target, hash); err != nil {
		return err
	}

	s.logger.Info().Str("username", target).Msg("password changed")
	return nil
}

// EnsureDefaultAdmin guarantees at least one admin account exists before
// the server starts taking traffic. Called once during startup.
func (s *AuthService) EnsureDefaultAdmin(ctx context.Context, username, password string) error {
	count, err := s.repo.CountByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return fmt.Errorf("count admin accounts: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	now := time.Now().UTC()
	admin := &domain.Account{
		Username:     username,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, admin); err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return fmt.Errorf("default admin username %q is taken by a non-admin account: %w", username, err)
		}
		return err
	}

	s.logger.Warn().Str("username", username).Msg("default admin account created; change its password")
	return nil
}
