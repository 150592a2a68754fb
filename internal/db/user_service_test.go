package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserAndAuthenticate(t *testing.T) {
	setupTestDB(t)

	user, err := CreateUser("alice", "alice@example.com", "correct horse battery")
	require.NoError(t, err)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "correct horse battery", user.PasswordHash)

	authed, err := Authenticate("alice", "correct horse battery")
	require.NoError(t, err)
	assert.Equal(t, user.ID, authed.ID)

	_, err = Authenticate("alice", "wrong password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = Authenticate("nobody", "correct horse battery")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	setupTestDB(t)

	_, err := CreateUser("alice", "", "password-one")
	require.NoError(t, err)

	_, err = CreateUser("alice", "", "password-two")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestAuthTokenLifecycle(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "alice")

	token, err := CreateAuthToken(user.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, token.Token)

	resolved, err := UserForToken(token.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)

	require.NoError(t, DeleteAuthToken(token.Token))

	_, err = UserForToken(token.Token)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserForTokenRejectsUnknown(t *testing.T) {
	setupTestDB(t)

	_, err := UserForToken("")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = UserForToken("not-a-real-token")
	assert.ErrorIs(t, err, ErrNotFound)
}
