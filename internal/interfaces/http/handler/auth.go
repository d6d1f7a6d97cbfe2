package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
	identityapp "github.com/marketlink/backend/internal/application/identity"
)

// AuthHandler handles registration, login and logout endpoints
type AuthHandler struct {
	BaseHandler
	authService *identityapp.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *identityapp.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// RegisterRequest represents a request to register a new account
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email,max=200"`
	Password  string `json:"password" binding:"required,min=8,max=128"`
	Role      string `json:"role" binding:"required,oneof=buyer shop"`
	FirstName string `json:"first_name" binding:"max=100"`
	LastName  string `json:"last_name" binding:"max=100"`
	Company   string `json:"company" binding:"max=200"`
	Position  string `json:"position" binding:"max=100"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new account with the buyer or shop role
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	user, err := h.authService.Register(c.Request.Context(), identityapp.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Company:   req.Company,
		Position:  req.Position,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, user)
}

// Login exchanges credentials for a token pair
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.authService.Login(c.Request.Context(), identityapp.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Logout revokes the presented access token
func (h *AuthHandler) Logout(c *gin.Context) {
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		h.Unauthorized(c, "Missing bearer token")
		return
	}

	if err := h.authService.Logout(c.Request.Context(), identityapp.LogoutInput{
		AccessToken: strings.TrimSpace(parts[1]),
	}); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
