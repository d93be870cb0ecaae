package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/hbnb/internal/credentials"
	"github.com/BruksfildServices01/hbnb/internal/domain/authz"
	"github.com/BruksfildServices01/hbnb/internal/httperr"
)

const (
	ContextCaller = "caller"
	ContextClaims = "claims"
)

type TokenParser interface {
	Parse(token string) (*credentials.Claims, error)
}

// AuthMiddleware requires a valid, unrevoked bearer token. revoker may be
// nil when revocation is disabled.
func AuthMiddleware(tokens TokenParser, revoker credentials.Revoker) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "missing_authorization_header")
			return
		}
		if !authenticate(c, tokens, revoker, authHeader) {
			return
		}
		c.Next()
	}
}

// OptionalAuthMiddleware attaches a caller when a token is presented and
// lets anonymous requests through. A bad token is still rejected.
func OptionalAuthMiddleware(tokens TokenParser, revoker credentials.Revoker) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && !authenticate(c, tokens, revoker, authHeader) {
			return
		}
		c.Next()
	}
}

func authenticate(
	c *gin.Context,
	tokens TokenParser,
	revoker credentials.Revoker,
	authHeader string,
) bool {

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		abortUnauthorized(c, "invalid_authorization_header")
		return false
	}

	claims, err := tokens.Parse(strings.TrimSpace(parts[1]))
	if err != nil {
		abortUnauthorized(c, "invalid_token")
		return false
	}

	if revoker != nil && claims.JTI != "" {
		revoked, err := revoker.IsRevoked(c.Request.Context(), claims.JTI)
		if err != nil {
			log.Error().Err(err).Msg("revocation lookup failed")
			httperr.Internal(c, "revocation_unavailable", "could not validate token")
			c.Abort()
			return false
		}
		if revoked {
			abortUnauthorized(c, "token_revoked")
			return false
		}
	}

	caller := claims.Caller
	c.Set(ContextCaller, &caller)
	c.Set(ContextClaims, claims)
	return true
}

func abortUnauthorized(c *gin.Context, code string) {
	httperr.Unauthorized(c, code, "authentication failed")
	c.Abort()
}

// CallerFrom returns the authenticated caller, or nil for anonymous
// requests.
func CallerFrom(c *gin.Context) *authz.Caller {
	v, ok := c.Get(ContextCaller)
	if !ok {
		return nil
	}
	caller, _ := v.(*authz.Caller)
	return caller
}

func ClaimsFrom(c *gin.Context) *credentials.Claims {
	v, ok := c.Get(ContextClaims)
	if !ok {
		return nil
	}
	claims, _ := v.(*credentials.Claims)
	return claims
}
