package partner

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDetails() ContactDetails {
	return ContactDetails{
		City:      "Saint Petersburg",
		Street:    "Nevsky Prospekt",
		House:     "28",
		Apartment: "14",
		Phone:     "+7 900 000-00-00",
	}
}

func TestNewContact(t *testing.T) {
	userID := uuid.New()

	t.Run("creates contact with valid details", func(t *testing.T) {
		contact, err := NewContact(userID, validDetails())
		require.NoError(t, err)
		assert.Equal(t, userID, contact.UserID)
		assert.Equal(t, "Saint Petersburg", contact.City)
	})

	t.Run("fails with nil user", func(t *testing.T) {
		_, err := NewContact(uuid.Nil, validDetails())
		require.Error(t, err)
	})

	t.Run("fails without city", func(t *testing.T) {
		details := validDetails()
		details.City = ""
		_, err := NewContact(userID, details)
		require.Error(t, err)
	})

	t.Run("fails without phone", func(t *testing.T) {
		details := validDetails()
		details.Phone = "  "
		_, err := NewContact(userID, details)
		require.Error(t, err)
	})
}

func TestContactUpdate(t *testing.T) {
	contact, err := NewContact(uuid.New(), validDetails())
	require.NoError(t, err)
	version := contact.Version

	details := validDetails()
	details.City = "Moscow"
	require.NoError(t, contact.Update(details))

	assert.Equal(t, "Moscow", contact.City)
	assert.Equal(t, version+1, contact.Version)

	details.Street = ""
	require.Error(t, contact.Update(details))
}
