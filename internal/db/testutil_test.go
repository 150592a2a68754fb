package db

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inkwise/writertools/internal/models"
)

// setupTestDB opens a fresh in-memory database for one test.
func setupTestDB(t *testing.T) {
	t.Helper()
	require.NoError(t, Initialize(":memory:"))
	t.Cleanup(func() {
		require.NoError(t, Close())
		DB = nil
	})
}

func createTestUser(t *testing.T, username string) *models.User {
	t.Helper()
	user, err := CreateUser(username, username+"@example.com", "hunter2-but-longer")
	require.NoError(t, err)
	return user
}
