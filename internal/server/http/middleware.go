package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/taskkeeper/internal/server/auth"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
)

// identityKey is the gin context key under which the validated identity is
// stored for the duration of one request.
const identityKey = "identity"

const bearerPrefix = "Bearer "

// authRequired validates the bearer token once at the request boundary and
// stores the resulting identity in the gin context. Handlers behind this
// middleware never re-derive identity from the token themselves.
func (s *Server) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			abortUnauthorized(c)
			return
		}

		identity, err := auth.ValidateToken(
			strings.TrimPrefix(header, bearerPrefix),
			s.jwtSecret, s.tokenIssuer, s.tokenAudience,
		)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// identityFromContext returns the identity stored by authRequired, or nil if
// the middleware did not run.
func identityFromContext(c *gin.Context) *models.Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	identity, _ := v.(*models.Identity)
	return identity
}
