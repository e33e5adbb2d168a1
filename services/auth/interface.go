package auth

import (
	"context"
	"errors"

	"rent2reuse/services/access"
)

// ErrDenied is the single denial error for every authorization failure:
// missing record, unapproved account, revoked token, or a lookup failure.
// Callers redirect to sign-in; no denial reason leaks to the client.
var ErrDenied = errors.New("admin session denied")

// Session is a resolved, authorized admin session.
type Session struct {
	UID   string      `json:"uid"`
	Email string      `json:"email"`
	Role  access.Role `json:"role"`
}

// SessionService is the one authorization surface consumed by middleware,
// handlers and the watcher alike, so the cookie guard, the per-request
// re-validation and the reactive state can never drift apart.
type SessionService interface {
	// SignIn exchanges a Firebase ID token for a session and a revocable
	// session token. Denied unless the admin record exists and is approved.
	SignIn(ctx context.Context, idToken string) (*Session, string, error)

	// ResolveSession validates a session token, re-fetches the admin record
	// and returns the session. Every failure path returns ErrDenied after
	// clearing the persisted session flags.
	ResolveSession(ctx context.Context, token string) (*Session, error)

	// SignOut revokes the session, clears persisted flags, stamps the
	// admin record's lastLogout and stops the idle timer. Idempotent.
	SignOut(ctx context.Context, uid string) error
}

// IdentityVerifier abstracts Firebase ID-token verification.
type IdentityVerifier interface {
	Verify(ctx context.Context, idToken string) (uid string, email string, err error)
}
