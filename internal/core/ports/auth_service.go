package ports

import (
	"context"

	"github.com/taskhive/taskhive/internal/core/domain"
)

// LoginResult carries the session token issued on successful login.
type LoginResult struct {
	AccessToken string
	TokenType   string
}

// AuthService covers the shared register/login/change-password flow.
type AuthService interface {
	// Register creates an account with the app's default member role.
	Register(ctx context.Context, username, password string) (*domain.Account, error)
	// Login verifies credentials and issues a token. Unknown usernames and
	// wrong passwords both come back as domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	// ChangePassword replaces the password of target. The caller decides
	// authorization before invoking this; unknown targets get
	// domain.ErrUserNotFound.
	ChangePassword(ctx context.Context, target, newPassword string) error
}
