package identity

import (
	"auction-engine/internal/auctionerrors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Tests Register
func TestRegistry_Register(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	user, err := registry.Register("Jordan Blake", "jordan@example.com", "jordan", "s3cret")
	require.NoError(t, err)

	_, parseErr := uuid.Parse(user.UserID)
	require.NoError(t, parseErr, "UserID should be a valid UUID")
	require.Equal(t, "jordan", user.Username)
	require.NotEqual(t, "s3cret", user.PasswordHash, "password must be stored hashed")

	tests := []struct {
		name          string
		fullName      string
		email         string
		username      string
		password      string
		expectedError error
	}{
		{name: "duplicate_username", fullName: "Other", email: "other@example.com", username: "jordan", password: "pw", expectedError: auctionerrors.ErrDuplicateUser},
		{name: "duplicate_email", fullName: "Other", email: "jordan@example.com", username: "other", password: "pw", expectedError: auctionerrors.ErrDuplicateUser},
		{name: "missing_full_name", fullName: "", email: "a@example.com", username: "a", password: "pw", expectedError: auctionerrors.ErrInvalidInput},
		{name: "missing_email", fullName: "A", email: "", username: "a", password: "pw", expectedError: auctionerrors.ErrInvalidInput},
		{name: "missing_username", fullName: "A", email: "a@example.com", username: "", password: "pw", expectedError: auctionerrors.ErrInvalidInput},
		{name: "missing_password", fullName: "A", email: "a@example.com", username: "a", password: "", expectedError: auctionerrors.ErrInvalidInput},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := registry.Register(tc.fullName, tc.email, tc.username, tc.password)
			require.ErrorIs(t, err, tc.expectedError)
		})
	}
}

// Tests Authenticate with username or email
func TestRegistry_Authenticate(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registered, err := registry.Register("Jordan Blake", "jordan@example.com", "jordan", "s3cret")
	require.NoError(t, err)

	t.Run("by_username", func(t *testing.T) {
		user, err := registry.Authenticate("jordan", "s3cret")
		require.NoError(t, err)
		require.Equal(t, registered.UserID, user.UserID)
	})

	t.Run("by_email", func(t *testing.T) {
		user, err := registry.Authenticate("jordan@example.com", "s3cret")
		require.NoError(t, err)
		require.Equal(t, registered.UserID, user.UserID)
	})

	t.Run("wrong_password", func(t *testing.T) {
		_, err := registry.Authenticate("jordan", "nope")
		require.ErrorIs(t, err, auctionerrors.ErrInvalidCredentials)
	})

	t.Run("unknown_user", func(t *testing.T) {
		_, err := registry.Authenticate("ghost", "s3cret")
		require.ErrorIs(t, err, auctionerrors.ErrInvalidCredentials)
	})

	t.Run("missing_credentials", func(t *testing.T) {
		_, err := registry.Authenticate("", "")
		require.ErrorIs(t, err, auctionerrors.ErrInvalidInput)
	})
}

// Tests Lookup
func TestRegistry_Lookup(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registered, err := registry.Register("Jordan Blake", "jordan@example.com", "jordan", "s3cret")
	require.NoError(t, err)

	user, err := registry.Lookup(registered.UserID)
	require.NoError(t, err)
	require.Equal(t, "jordan", user.Username)

	_, err = registry.Lookup("missing")
	require.ErrorIs(t, err, auctionerrors.ErrUserNotFound)
}
