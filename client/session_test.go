package client

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"daytrack/internal/domain"
)

func TestSessionTransitions(t *testing.T) {
	s := NewSession()
	assert.Equal(t, StateIdle, s.State)
	assert.False(t, s.Authenticated())

	s = s.Start()
	assert.Equal(t, StateLoading, s.State)

	user := &domain.User{ID: "u1", Email: "ada@example.com"}
	s = s.Succeed(user, "token-1")
	assert.Equal(t, StateAuthenticated, s.State)
	assert.True(t, s.Authenticated())
	assert.Equal(t, "token-1", s.Token)

	s = s.Logout()
	assert.Equal(t, StateIdle, s.State)
	assert.Nil(t, s.User)
	assert.Empty(t, s.Token)
}

func TestSessionFailDropsCredentials(t *testing.T) {
	user := &domain.User{ID: "u1"}
	s := NewSession().Succeed(user, "token-1")

	s = s.Fail("Invalid credentials")

	assert.Equal(t, StateError, s.State)
	assert.Equal(t, "Invalid credentials", s.Err)
	assert.Nil(t, s.User)
	assert.Empty(t, s.Token)
	assert.False(t, s.Authenticated())
}

func TestSessionStartClearsError(t *testing.T) {
	s := NewSession().Fail("boom")

	s = s.Start()

	assert.Equal(t, StateLoading, s.State)
	assert.Empty(t, s.Err)
}

func TestSessionClearError(t *testing.T) {
	s := NewSession().Fail("boom").ClearError()
	assert.Equal(t, StateIdle, s.State)
	assert.Empty(t, s.Err)

	// Clearing on an authenticated session keeps the credentials.
	user := &domain.User{ID: "u1"}
	s = NewSession().Succeed(user, "token-1").ClearError()
	assert.Equal(t, StateAuthenticated, s.State)
	assert.Equal(t, "token-1", s.Token)
}
