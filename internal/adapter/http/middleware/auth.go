package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	IdentityKey = "identity"
	TokenCookie = "token"
)

// TokenVerifier resolves an access token to the operator it was issued to.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (entities.Identity, error)
}

// RequireAuth accepts "Authorization: Bearer <token>" or the token cookie.
func RequireAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			if cookie, err := c.Cookie(TokenCookie); err == nil {
				token = cookie
			}
		}
		if strings.TrimSpace(token) == "" {
			abortUnauthorized(c, "MISSING_TOKEN", "missing token")
			return
		}

		identity, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			var de *entities.DomainError
			switch {
			case errors.As(err, &de) && errors.Is(err, entities.ErrAuth):
				abortUnauthorized(c, de.Code, de.Message)
			case errors.Is(err, entities.ErrAuth):
				abortUnauthorized(c, "INVALID_TOKEN", "invalid token")
			default:
				log.Error().Err(err).Msg("[auth][middleware] verify failed")
				appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
				c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			}
			return
		}
		c.Set(IdentityKey, identity)
		c.Next()
	}
}

// IdentityFrom returns the operator set by RequireAuth.
func IdentityFrom(c *gin.Context) (entities.Identity, bool) {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return entities.Identity{}, false
	}
	identity, ok := v.(entities.Identity)
	return identity, ok
}

func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func abortUnauthorized(c *gin.Context, code, msg string) {
	log.Info().Str("code", code).Str("path", c.Request.URL.Path).Msg("[auth][middleware] unauthorized")
	appErr := pkg.NewDomainErrorSimple(code, msg, http.StatusUnauthorized)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
