package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"mandapbook/config"
	"mandapbook/utils"
)

// Context keys set by the auth middleware for downstream handlers.
const (
	CtxUserID     = "userID"
	CtxProviderID = "providerID"
	CtxRole       = "role"
)

var errTokenRevoked = errors.New("token has been revoked")

// RevokeToken invalidates a still-valid token at sign-out. The revocation
// mark outlives the token itself, and the cached identity is dropped so the
// next request re-validates.
func RevokeToken(c *gin.Context) error {
	tokenString, ok := bearerToken(c)
	if !ok {
		return errors.New("missing bearer token")
	}
	client := utils.GetAuthCacheClient()
	if client == nil {
		return errors.New("auth cache unavailable")
	}
	hash := utils.HashToken(tokenString)
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	if err := client.Set(ctx, utils.AuthRevokedPrefix+hash, "1", utils.TokenTTL).Err(); err != nil {
		return err
	}
	client.Del(ctx, utils.AuthCachePrefix+hash)
	return nil
}

// identity resolves the bearer token to (subject, role), consulting the
// Redis auth cache first. The cache is keyed by the token's hash, so a raw
// token never lands in Redis.
func identity(tokenString string) (subject, role string, err error) {
	hash := utils.HashToken(tokenString)
	cacheKey := utils.AuthCachePrefix + hash
	client := utils.GetAuthCacheClient()

	if client != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()
		if n, rerr := client.Exists(ctx, utils.AuthRevokedPrefix+hash).Result(); rerr == nil && n > 0 {
			return "", "", errTokenRevoked
		}
		if cached, cerr := client.Get(ctx, cacheKey).Result(); cerr == nil {
			if sub, r, ok := strings.Cut(cached, "|"); ok {
				return sub, r, nil
			}
		}
	}

	subject, role, err = utils.ExtractIdentityFromToken(tokenString)
	if err != nil {
		return "", "", err
	}

	if client != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()
		client.Set(ctx, cacheKey, subject+"|"+role, utils.AuthCacheTTL)
	}
	return subject, role, nil
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	return token, token != ""
}

func unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
}

// requireRole builds a middleware accepting only tokens of the given role.
// The subject is stored under ctxKey for handlers.
func requireRole(role, ctxKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			unauthorized(c)
			return
		}
		subject, tokenRole, err := identity(tokenString)
		if err != nil || subject == "" || tokenRole != role {
			unauthorized(c)
			return
		}
		c.Set(ctxKey, subject)
		c.Set(CtxRole, tokenRole)
		c.Next()
	}
}

// JWTAuthUserMiddleware admits user tokens and sets userID.
func JWTAuthUserMiddleware() gin.HandlerFunc {
	return requireRole(utils.RoleUser, CtxUserID)
}

// JWTAuthProviderMiddleware admits provider tokens and sets providerID.
func JWTAuthProviderMiddleware() gin.HandlerFunc {
	return requireRole(utils.RoleProvider, CtxProviderID)
}

// AdminAuthMiddleware admits requests bearing the static admin key from
// configuration. An empty configured key disables admin access entirely.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			unauthorized(c)
			return
		}
		adminKey := config.AppConfig.AdminAPIKey
		if adminKey == "" || tokenString != adminKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}
		c.Set(CtxRole, utils.RoleAdmin)
		c.Next()
	}
}
