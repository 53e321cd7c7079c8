package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	domainerr "github.com/khanut-app/backend/internal/domain/error"
	coreport "github.com/khanut-app/backend/internal/domain/port/core"
	"github.com/khanut-app/backend/internal/infrastructure/adapter/api/dto"
)

// Context keys populated by the admission gate
const (
	ContextUserID = "userID"
	ContextRole   = "role"
)

// RoleCustomer is the role required by customer-facing endpoints
const RoleCustomer = "customer"

// Authenticate validates the bearer token and attaches the caller's
// identity and role to the request context. Handlers never parse tokens
// themselves; they read the identity this middleware attached.
func Authenticate(secret string, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.CodeUnauthorized,
				Message: "Missing or malformed Authorization header",
			})
			return
		}

		userID, role, err := parseToken(strings.TrimPrefix(header, "Bearer "), secret)
		if err != nil {
			logger.Warn("Rejected bearer token", map[string]any{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.CodeUnauthorized,
				Message: "Invalid or expired token",
			})
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextRole, role)
		c.Next()
	}
}

// RequireCustomer gates an endpoint to callers carrying the customer role.
// Must run after Authenticate.
func RequireCustomer(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextRole)
		if role != RoleCustomer {
			logger.Warn("Non-customer caller rejected", map[string]any{
				"path": c.Request.URL.Path,
				"role": role,
			})
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
				Code:    domainerr.CodeForbidden,
				Message: "Customer role required",
			})
			return
		}
		c.Next()
	}
}

// CallerID returns the authenticated caller's identity from the context,
// or an empty string when no identity was attached
func CallerID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}

// GenerateToken issues an HS256 bearer token carrying the subject's
// identity and role. Used by tooling and tests; token issuance for real
// users lives in the identity service.
func GenerateToken(secret, userID, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"iat":  now.Unix(),
		"nbf":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func parseToken(tokenString, secret string) (userID, role string, err error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", errors.New("invalid claims")
	}

	userID, ok = claims["sub"].(string)
	if !ok || userID == "" {
		return "", "", errors.New("subject claim missing")
	}
	role, _ = claims["role"].(string)

	return userID, role, nil
}
