package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/hitss/task-manager/internal/core/domain"
	"github.com/hitss/task-manager/internal/core/ports"
)

// AuthService implements sign-up and sign-in on top of the user store,
// bcrypt and the token issuer. The throttle and recorder are optional;
// pass nil to disable brute-force protection or auditing.
type AuthService struct {
	users    ports.UserRepository
	issuer   ports.TokenIssuer
	throttle ports.LoginThrottle
	audit    ports.AuditRecorder
	log      zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	issuer ports.TokenIssuer,
	throttle ports.LoginThrottle,
	audit ports.AuditRecorder,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{users: users, issuer: issuer, throttle: throttle, audit: audit, log: log}
}

// SignUp registers a new account with the default USER role. Username
// and email uniqueness are checked up front; the unique indexes on the
// store back the same guarantee under concurrent sign-ups.
func (s *AuthService) SignUp(ctx context.Context, input ports.SignUpInput) (*domain.User, error) {
	if taken, err := s.users.ExistsByUsername(ctx, input.Username); err != nil {
		return nil, err
	} else if taken {
		return nil, domain.ErrUsernameTaken
	}
	if taken, err := s.users.ExistsByEmail(ctx, input.Email); err != nil {
		return nil, err
	} else if taken {
		return nil, domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		Roles:        []domain.Role{domain.RoleUser},
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", created.Username).Msg("user registered")
	s.record(domain.AuditEvent{Username: created.Username, Action: domain.AuditSignUp, Outcome: "success"})
	return created, nil
}

// SignIn verifies credentials and mints a token carrying the user's
// current role set. Unknown usernames and bad passwords both surface as
// invalid credentials so the response does not reveal which was wrong.
func (s *AuthService) SignIn(ctx context.Context, username, password string) (*ports.SignInResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		blocked, err := s.throttle.Blocked(ctx, username)
		if err != nil {
			s.log.Warn().Err(err).Str("username", username).Msg("throttle check failed, allowing attempt")
		} else if blocked {
			s.record(domain.AuditEvent{Username: username, Action: domain.AuditSignIn, Outcome: "failure", Detail: "throttled"})
			return nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.noteFailure(ctx, username, "unknown user")
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.noteFailure(ctx, username, "wrong password")
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user.Username, user.Roles, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, username); err != nil {
			s.log.Warn().Err(err).Str("username", username).Msg("throttle reset failed")
		}
	}

	s.log.Info().Str("username", user.Username).Msg("user signed in")
	s.record(domain.AuditEvent{Username: user.Username, Action: domain.AuditSignIn, Outcome: "success"})

	return &ports.SignInResult{Token: token, Username: user.Username, Roles: user.Roles}, nil
}

// EnsureAdmin creates the initial admin account when it does not exist
// yet. Called once at startup; a no-op on every later boot.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, email, password string) error {
	if username == "" || password == "" {
		return nil
	}
	exists, err := s.users.ExistsByUsername(ctx, username)
	if err != nil || exists {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = s.users.Create(ctx, &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Roles:        []domain.Role{domain.RoleAdmin, domain.RoleUser},
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	s.log.Info().Str("username", username).Msg("seeded admin account")
	return nil
}

func (s *AuthService) noteFailure(ctx context.Context, username, detail string) {
	if s.throttle != nil {
		if err := s.throttle.RecordFailure(ctx, username); err != nil {
			s.log.Warn().Err(err).Str("username", username).Msg("throttle record failed")
		}
	}
	s.record(domain.AuditEvent{Username: username, Action: domain.AuditSignIn, Outcome: "failure", Detail: detail})
}

func (s *AuthService) record(e domain.AuditEvent) {
	if s.audit == nil {
		return
	}
	e.Timestamp = time.Now().UTC()
	s.audit.Record(e)
}
