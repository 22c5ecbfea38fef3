package ports

import (
	"time"

	"github.com/hitss/task-manager/internal/core/domain"
)

// TokenIssuer mints signed, time-bounded tokens for verified identities.
type TokenIssuer interface {
	Issue(username string, roles []domain.Role, now time.Time) (string, error)
}

// TokenValidator turns an incoming token into a verified principal. It
// is pure: no store lookups, no side effects. Expired tokens fail with
// domain.ErrTokenExpired, everything else with domain.ErrTokenInvalid.
type TokenValidator interface {
	Validate(token string, now time.Time) (*domain.Principal, error)
}
