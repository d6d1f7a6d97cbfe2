package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("creates user with valid inputs", func(t *testing.T) {
		user, err := NewUser("alice@example.com", "s3cret-pass", RoleBuyer)
		require.NoError(t, err)
		require.NotNil(t, user)

		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, RoleBuyer, user.Role)
		assert.True(t, user.Active)
		assert.NotEmpty(t, user.ID)
		assert.NotEqual(t, "s3cret-pass", user.PasswordHash)
	})

	t.Run("normalizes email to lowercase", func(t *testing.T) {
		user, err := NewUser("  Bob@Example.COM ", "s3cret-pass", RoleShop)
		require.NoError(t, err)
		assert.Equal(t, "bob@example.com", user.Email)
	})

	t.Run("publishes UserRegistered event", func(t *testing.T) {
		user, err := NewUser("carol@example.com", "s3cret-pass", RoleBuyer)
		require.NoError(t, err)

		events := user.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeUserRegistered, events[0].EventType())
	})

	t.Run("fails with empty email", func(t *testing.T) {
		_, err := NewUser("", "s3cret-pass", RoleBuyer)
		require.Error(t, err)
	})

	t.Run("fails with malformed email", func(t *testing.T) {
		_, err := NewUser("not-an-email", "s3cret-pass", RoleBuyer)
		require.Error(t, err)
	})

	t.Run("fails with empty password", func(t *testing.T) {
		_, err := NewUser("dave@example.com", "", RoleBuyer)
		require.Error(t, err)
	})

	t.Run("fails with unknown role", func(t *testing.T) {
		_, err := NewUser("eve@example.com", "s3cret-pass", UserRole("admin"))
		require.Error(t, err)
	})
}

func TestUserCheckPassword(t *testing.T) {
	user, err := NewUser("frank@example.com", "original-pass", RoleBuyer)
	require.NoError(t, err)

	assert.True(t, user.CheckPassword("original-pass"))
	assert.False(t, user.CheckPassword("wrong-pass"))

	t.Run("change password invalidates old one", func(t *testing.T) {
		require.NoError(t, user.ChangePassword("new-pass"))
		assert.True(t, user.CheckPassword("new-pass"))
		assert.False(t, user.CheckPassword("original-pass"))
	})

	t.Run("change to empty password rejected", func(t *testing.T) {
		require.Error(t, user.ChangePassword(""))
	})
}

func TestUserFullName(t *testing.T) {
	user, err := NewUser("grace@example.com", "s3cret-pass", RoleShop)
	require.NoError(t, err)

	assert.Equal(t, "grace@example.com", user.FullName())

	user.SetName("Grace", "Hopper")
	assert.Equal(t, "Grace Hopper", user.FullName())
}
