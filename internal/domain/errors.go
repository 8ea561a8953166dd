package domain

import "errors"

var (
	// ErrUnauthenticated: no session. Recovered by redirecting to login.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden: authenticated with the wrong role. The session is kept.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidCredential: the backend rejected a login attempt.
	ErrInvalidCredential = errors.New("invalid or inactive credential")
	// ErrTransientFetch: any other backend or network failure.
	ErrTransientFetch = errors.New("transient fetch failure")
	// ErrSessionInvalidated: the backend answered 401/403 on an established session.
	ErrSessionInvalidated = errors.New("session invalidated")
	// ErrStaleResponse: a response arrived after the session it was issued under ended.
	ErrStaleResponse = errors.New("stale response discarded")
)
