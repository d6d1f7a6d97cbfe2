package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{ErrCodeValidation, http.StatusBadRequest},
		{ErrCodeEmptyBasketNoContact, http.StatusBadRequest},
		{ErrCodeInvalidStatus, http.StatusBadRequest},
		{ErrCodeUnauthorized, http.StatusUnauthorized},
		{ErrCodeInvalidCredentials, http.StatusUnauthorized},
		{ErrCodeTokenRevoked, http.StatusUnauthorized},
		{ErrCodeNotYourOrder, http.StatusForbidden},
		{ErrCodeNoShop, http.StatusForbidden},
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeAlreadyExists, http.StatusConflict},
		{ErrCodeAlreadyInBasket, http.StatusConflict},
		{ErrCodeInsufficientStock, http.StatusUnprocessableEntity},
		{ErrCodeShopClosed, http.StatusUnprocessableEntity},
		{ErrCodeProductNotInShop, http.StatusUnprocessableEntity},
		{ErrCodeInternalError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(tt.code))
		})
	}

	t.Run("unmapped INVALID_ codes are validation failures", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, GetHTTPStatus("INVALID_EMAIL"))
	})

	t.Run("unknown codes are server errors", func(t *testing.T) {
		assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus("SOMETHING_ELSE"))
	})
}
