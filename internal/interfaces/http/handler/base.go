package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/marketlink/backend/internal/domain/shared"
	"github.com/marketlink/backend/internal/interfaces/http/dto"
	"github.com/marketlink/backend/internal/interfaces/http/middleware"
)

// BaseHandler provides response helpers shared by all handlers
type BaseHandler struct{}

// Success writes a 200 response with the envelope
func (h *BaseHandler) Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// Created writes a 201 response with the envelope
func (h *BaseHandler) Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// NoContent writes a 204 response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// BadRequest writes a 400 validation error response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeValidation, message)
}

// Unauthorized writes a 401 error response
func (h *BaseHandler) Unauthorized(c *gin.Context, message string) {
	h.Error(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, message)
}

// Error writes an error response with the given status and code
func (h *BaseHandler) Error(c *gin.Context, status int, code, message string) {
	c.JSON(status, dto.NewErrorResponseWithRequestID(code, message, c.GetString("request_id")))
}

// HandleError maps an application error to its HTTP representation.
// Domain errors carry their own code; anything else is a server error.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		h.Error(c, dto.GetHTTPStatus(domainErr.Code), domainErr.Code, domainErr.Message)
		return
	}

	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternalError, "An unexpected error occurred")
}

// getUserID extracts the authenticated user ID set by the JWT middleware
func getUserID(c *gin.Context) (uuid.UUID, error) {
	userID, ok := middleware.GetJWTUserID(c)
	if !ok {
		return uuid.Nil, errors.New("user not authenticated")
	}
	return userID, nil
}

// getUserRole extracts the authenticated user role set by the JWT middleware
func getUserRole(c *gin.Context) (string, error) {
	role, ok := middleware.GetJWTUserRole(c)
	if !ok {
		return "", errors.New("user not authenticated")
	}
	return role, nil
}
