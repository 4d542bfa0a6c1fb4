package domain

import "errors"

// Sentinel errors shared across services. The API layer maps each of these
// to exactly one HTTP status in error_handler.go; everything else is a 500.
var (
	// ErrInvalidCredentials is returned for both an unknown identity and a
	// wrong password so a login response never reveals which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrDuplicateIdentity signals that a username or email is already taken.
	ErrDuplicateIdentity = errors.New("identity already registered")

	// ErrUnauthenticated signals a missing, malformed, or rejected token.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrForbidden signals a valid principal that the policy denies.
	ErrForbidden = errors.New("access forbidden")

	ErrUserNotFound    = errors.New("user not found")
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
)
