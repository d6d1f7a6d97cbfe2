package dto

import (
	"net/http"
	"strings"
)

// Error codes shared across handlers. Domain errors carry these codes
// directly; handlers translate them to HTTP status codes through
// ErrorCodeHTTPStatus.
const (
	// Generic
	ErrCodeValidation     = "VALIDATION_ERROR"
	ErrCodeInvalidInput   = "INVALID_INPUT"
	ErrCodeNotFound       = "NOT_FOUND"
	ErrCodeAlreadyExists  = "ALREADY_EXISTS"
	ErrCodeConflict       = "CONCURRENCY_CONFLICT"
	ErrCodeUnauthorized   = "UNAUTHORIZED"
	ErrCodeForbidden      = "FORBIDDEN"
	ErrCodeInvalidState   = "INVALID_STATE"
	ErrCodeInternalError  = "INTERNAL_ERROR"
	ErrCodeTooManyRequest = "TOO_MANY_REQUESTS"

	// Identity
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeTokenInvalid       = "TOKEN_INVALID"
	ErrCodeTokenExpired       = "TOKEN_EXPIRED"
	ErrCodeTokenRevoked       = "TOKEN_REVOKED"

	// Catalog
	ErrCodeNoShop          = "NO_SHOP"
	ErrCodeInvalidCategory = "INVALID_CATEGORY"

	// Trade
	ErrCodeShopClosed           = "SHOP_CLOSED"
	ErrCodeProductNotInShop     = "PRODUCT_NOT_IN_SHOP"
	ErrCodeInsufficientStock    = "INSUFFICIENT_STOCK"
	ErrCodeAlreadyInBasket      = "ALREADY_IN_BASKET"
	ErrCodeEmptyBasketNoContact = "EMPTY_BASKET_OR_NO_CONTACT"
	ErrCodeEmptyCheckout        = "EMPTY_CHECKOUT"
	ErrCodeNotYourOrder         = "NOT_YOUR_ORDER"
	ErrCodeInvalidStatus        = "INVALID_STATUS"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes.
// Business rule violations that passed validation but cannot be
// fulfilled map to 422.
var ErrorCodeHTTPStatus = map[string]int{
	// 400 Bad Request
	ErrCodeValidation:           http.StatusBadRequest,
	ErrCodeInvalidInput:         http.StatusBadRequest,
	ErrCodeInvalidStatus:        http.StatusBadRequest,
	ErrCodeInvalidCategory:      http.StatusBadRequest,
	ErrCodeEmptyBasketNoContact: http.StatusBadRequest,
	ErrCodeEmptyCheckout:        http.StatusBadRequest,

	// 401 Unauthorized
	ErrCodeUnauthorized:       http.StatusUnauthorized,
	ErrCodeInvalidCredentials: http.StatusUnauthorized,
	ErrCodeTokenInvalid:       http.StatusUnauthorized,
	ErrCodeTokenExpired:       http.StatusUnauthorized,
	ErrCodeTokenRevoked:       http.StatusUnauthorized,

	// 403 Forbidden
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeNotYourOrder: http.StatusForbidden,
	ErrCodeNoShop:       http.StatusForbidden,

	// 404 Not Found
	ErrCodeNotFound: http.StatusNotFound,

	// 409 Conflict
	ErrCodeAlreadyExists:   http.StatusConflict,
	ErrCodeConflict:        http.StatusConflict,
	ErrCodeAlreadyInBasket: http.StatusConflict,

	// 422 Unprocessable Entity
	ErrCodeInvalidState:      http.StatusUnprocessableEntity,
	ErrCodeInsufficientStock: http.StatusUnprocessableEntity,
	ErrCodeShopClosed:        http.StatusUnprocessableEntity,
	ErrCodeProductNotInShop:  http.StatusUnprocessableEntity,

	// 429 Too Many Requests
	ErrCodeTooManyRequest: http.StatusTooManyRequests,

	// 500 Internal Server Error
	ErrCodeInternalError: http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unmapped INVALID_* codes are treated as validation failures;
// everything else unknown is a server error.
func GetHTTPStatus(errorCode string) int {
	if status, ok := ErrorCodeHTTPStatus[errorCode]; ok {
		return status
	}
	if strings.HasPrefix(errorCode, "INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
