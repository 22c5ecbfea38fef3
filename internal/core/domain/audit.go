package domain

import "time"

// AuditAction identifies what an audit event records.
type AuditAction string

const (
	AuditSignIn       AuditAction = "signin"
	AuditSignUp       AuditAction = "signup"
	AuditAccessDenied AuditAction = "access_denied"
)

// AuditEvent is an append-only record of an authentication or
// authorization outcome. Events are written off the request path.
type AuditEvent struct {
	Username  string
	Action    AuditAction
	Outcome   string // "success", "failure", "denied"
	Detail    string // optional free-form context (never credentials)
	Timestamp time.Time
}
