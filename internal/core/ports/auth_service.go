package ports

import (
	"context"

	"github.com/hitss/task-manager/internal/core/domain"
)

// SignUpInput carries the fields required to register a new account.
type SignUpInput struct {
	Username string
	Email    string
	Password string
}

// SignInResult is returned after a successful credential check. Roles
// are the user's role set at issuance time, embedded in the token and
// echoed here for the client.
type SignInResult struct {
	Token    string
	Username string
	Roles    []domain.Role
}

// AuthService implements sign-up and sign-in.
type AuthService interface {
	SignUp(ctx context.Context, input SignUpInput) (*domain.User, error)
	SignIn(ctx context.Context, username, password string) (*SignInResult, error)
}
