package client

import "daytrack/internal/domain"

// SessionState is the auth lifecycle state of a client session.
type SessionState string

const (
	StateIdle          SessionState = "idle"
	StateLoading       SessionState = "loading"
	StateAuthenticated SessionState = "authenticated"
	StateError         SessionState = "error"
)

// Session is an immutable auth state value. Transitions return new values so
// callers can treat session history as a sequence of snapshots.
type Session struct {
	State SessionState
	User  *domain.User
	Token string
	Err   string
}

// NewSession returns the idle starting state.
func NewSession() Session {
	return Session{State: StateIdle}
}

// Start marks an auth attempt in flight, clearing any prior error.
func (s Session) Start() Session {
	s.State = StateLoading
	s.Err = ""
	return s
}

// Succeed records an authenticated user and token.
func (s Session) Succeed(user *domain.User, token string) Session {
	return Session{
		State: StateAuthenticated,
		User:  user,
		Token: token,
	}
}

// Fail drops any credentials and records the error message.
func (s Session) Fail(msg string) Session {
	return Session{
		State: StateError,
		Err:   msg,
	}
}

// Logout returns to the idle state with no credentials.
func (s Session) Logout() Session {
	return Session{State: StateIdle}
}

// ClearError removes the error message without touching credentials.
func (s Session) ClearError() Session {
	s.Err = ""
	if s.State == StateError {
		s.State = StateIdle
	}
	return s
}

// Authenticated reports whether the session carries a usable token.
func (s Session) Authenticated() bool {
	return s.State == StateAuthenticated && s.Token != ""
}
