package ports

import "context"

// LoginThrottle guards sign-in against brute force. Implementations
// count failed attempts per username inside a rolling window.
type LoginThrottle interface {
	// Blocked reports whether further attempts for the username should
	// be rejected right now.
	Blocked(ctx context.Context, username string) (bool, error)
	// RecordFailure bumps the failed-attempt counter for the username.
	RecordFailure(ctx context.Context, username string) error
	// Reset clears the counter after a successful sign-in.
	Reset(ctx context.Context, username string) error
}
