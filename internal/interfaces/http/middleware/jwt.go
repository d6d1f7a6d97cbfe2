package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/marketlink/backend/internal/infrastructure/auth"
	"github.com/marketlink/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// Context keys populated by the JWT middleware
const (
	ContextKeyUserID    = "jwt_user_id"
	ContextKeyUserEmail = "jwt_user_email"
	ContextKeyUserRole  = "jwt_user_role"
	ContextKeyClaims    = "jwt_claims"
)

// JWTMiddlewareConfig holds configuration for the JWT middleware
type JWTMiddlewareConfig struct {
	JWTService *auth.JWTService

	// TokenBlacklist checks revoked tokens. Optional; when nil no
	// revocation check is performed.
	TokenBlacklist auth.TokenBlacklist

	// SkipPaths lists path prefixes that bypass authentication
	SkipPaths []string

	// OnError overrides the default error response
	OnError func(c *gin.Context, err error)

	Logger *zap.Logger
}

// JWTAuthMiddleware returns a middleware that validates Bearer tokens
// and stores the authenticated identity in the request context.
func JWTAuthMiddleware(cfg JWTMiddlewareConfig) gin.HandlerFunc {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		for _, path := range cfg.SkipPaths {
			if strings.HasPrefix(c.Request.URL.Path, path) {
				c.Next()
				return
			}
		}

		tokenString, err := extractBearerToken(c)
		if err != nil {
			handleAuthError(c, cfg, err)
			return
		}

		claims, err := cfg.JWTService.ValidateAccessToken(tokenString)
		if err != nil {
			handleAuthError(c, cfg, err)
			return
		}

		if cfg.TokenBlacklist != nil && claims.ID != "" {
			revoked, err := cfg.TokenBlacklist.IsBlacklisted(c.Request.Context(), claims.ID)
			if err != nil {
				// Fail open on blacklist errors so an unavailable
				// store does not lock every user out.
				logger.Warn("Token blacklist check failed",
					zap.String("jti", claims.ID),
					zap.Error(err))
			} else if revoked {
				handleAuthError(c, cfg, auth.ErrTokenBlacklisted)
				return
			}
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyUserEmail, claims.Email)
		c.Set(ContextKeyUserRole, claims.Role)
		c.Set(ContextKeyClaims, claims)

		c.Next()
	}
}

// OptionalJWTAuthMiddleware validates a token when present but lets
// anonymous requests through.
func OptionalJWTAuthMiddleware(cfg JWTMiddlewareConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			c.Next()
			return
		}

		claims, err := cfg.JWTService.ValidateAccessToken(tokenString)
		if err != nil {
			c.Next()
			return
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyUserEmail, claims.Email)
		c.Set(ContextKeyUserRole, claims.Role)
		c.Set(ContextKeyClaims, claims)

		c.Next()
	}
}

// extractBearerToken extracts the token from the Authorization header
func extractBearerToken(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", auth.ErrInvalidToken
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", auth.ErrInvalidToken
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", auth.ErrInvalidToken
	}

	return token, nil
}

// handleAuthError writes the 401 response for an authentication failure
func handleAuthError(c *gin.Context, cfg JWTMiddlewareConfig, err error) {
	if cfg.OnError != nil {
		cfg.OnError(c, err)
		return
	}

	code := dto.ErrCodeTokenInvalid
	message := "Invalid or missing token"

	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		code = dto.ErrCodeTokenExpired
		message = "Token has expired"
	case errors.Is(err, auth.ErrTokenBlacklisted):
		code = dto.ErrCodeTokenRevoked
		message = "Token has been revoked"
	case errors.Is(err, auth.ErrInvalidTokenType):
		message = "Wrong token type for this endpoint"
	}

	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(code, message))
}

// GetJWTUserID returns the authenticated user's ID from the context
func GetJWTUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(ContextKeyUserID)
	if !exists {
		return uuid.Nil, false
	}

	raw, ok := value.(string)
	if !ok {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

// GetJWTUserEmail returns the authenticated user's email from the context
func GetJWTUserEmail(c *gin.Context) (string, bool) {
	value, exists := c.Get(ContextKeyUserEmail)
	if !exists {
		return "", false
	}
	email, ok := value.(string)
	return email, ok
}

// GetJWTUserRole returns the authenticated user's role from the context
func GetJWTUserRole(c *gin.Context) (string, bool) {
	value, exists := c.Get(ContextKeyUserRole)
	if !exists {
		return "", false
	}
	role, ok := value.(string)
	return role, ok
}

// GetJWTClaims returns the full token claims from the context
func GetJWTClaims(c *gin.Context) (*auth.Claims, bool) {
	value, exists := c.Get(ContextKeyClaims)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*auth.Claims)
	return claims, ok
}
