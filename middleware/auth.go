package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/Endawoke47/CounselFlow-Ultimate-Neo/backend/config"
	"github.com/Endawoke47/CounselFlow-Ultimate-Neo/backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Token type constants
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims represents the JWT claims
type Claims struct {
	Email     string `json:"email"`
	Role      string `json:"role"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// GenerateTokenPair generates access and refresh tokens for a user.
// It returns the access token, the refresh token, and the access expiry.
func GenerateTokenPair(email, role string, cfg *config.AuthConfig) (string, string, time.Time, error) {
	accessExpiry := time.Now().Add(time.Duration(cfg.AccessExpireMins) * time.Minute)
	access, err := signToken(email, role, TokenTypeAccess, accessExpiry, cfg.JWTSecret)
	if err != nil {
		return "", "", time.Time{}, err
	}

	refreshExpiry := time.Now().Add(time.Duration(cfg.RefreshExpireHours) * time.Hour)
	refresh, err := signToken(email, role, TokenTypeRefresh, refreshExpiry, cfg.JWTSecret)
	if err != nil {
		return "", "", time.Time{}, err
	}

	return access, refresh, accessExpiry, nil
}

func signToken(email, role, tokenType string, expiresAt time.Time, secret string) (string, error) {
	claims := Claims{
		Email:     email,
		Role:      role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// AuthMiddleware validates the Bearer token and extracts user identity
func AuthMiddleware(cfg *config.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(cfg.JWTSecret), nil
		})

		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		// Refresh tokens are only good for the refresh endpoint
		if claims.TokenType == TokenTypeRefresh {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token cannot be used for access"})
			c.Abort()
			return
		}

		// Store user identity in context
		c.Set("user_email", claims.Email)
		c.Set("user_role", claims.Role)

		ctx := context.WithValue(c.Request.Context(), logger.UserEmailKey, claims.Email)
		ctx = context.WithValue(ctx, logger.UserRoleKey, claims.Role)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetUserEmail gets the authenticated user's email from gin context
func GetUserEmail(c *gin.Context) string {
	if email, exists := c.Get("user_email"); exists {
		return email.(string)
	}
	return ""
}

// GetUserRole gets the authenticated user's role from gin context
func GetUserRole(c *gin.Context) string {
	if role, exists := c.Get("user_role"); exists {
		return role.(string)
	}
	return ""
}
