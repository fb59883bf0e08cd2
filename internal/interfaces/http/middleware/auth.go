package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/petshop/backend/internal/domain/shared"
	"github.com/petshop/backend/internal/infrastructure/auth"
	"github.com/petshop/backend/internal/interfaces/http/dto"
)

const (
	// AccessContextKey is the gin context key for the resolved access context
	AccessContextKey = "access_context"
	// AccessAdminKey flags admin requests for the access log
	AccessAdminKey = "access_admin"
)

// defaultSkipPrefixes are the paths that bypass the token gate entirely.
var defaultSkipPrefixes = []string{
	"/health",
	"/swagger",
	"/api-docs",
	"/v1/system-metrics",
}

// TokenAuth returns a middleware that resolves the Authorization header
// against the token registry and stores the access context for handlers.
// Unknown or missing tokens are rejected before any handler runs.
func TokenAuth(registry *auth.TokenRegistry, skipPrefixes ...string) gin.HandlerFunc {
	prefixes := defaultSkipPrefixes
	if len(skipPrefixes) > 0 {
		prefixes = skipPrefixes
	}

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, prefix := range prefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		token, err := auth.BearerToken(c.GetHeader("Authorization"))
		if err != nil {
			abortUnauthorized(c, err)
			return
		}

		access, err := registry.Resolve(token)
		if err != nil {
			abortUnauthorized(c, err)
			return
		}

		c.Set(AccessContextKey, access)
		c.Set(AccessAdminKey, access.Admin)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, err error) {
	message := "Invalid or missing API token"
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		message = domainErr.Message
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponse(dto.ErrCodeUnauthorized, message))
}

// GetAccessContext retrieves the access context stored by TokenAuth.
// The zero value it returns for ungated routes matches no tenant.
func GetAccessContext(c *gin.Context) shared.AccessContext {
	if v, exists := c.Get(AccessContextKey); exists {
		if access, ok := v.(shared.AccessContext); ok {
			return access
		}
	}
	return shared.AccessContext{}
}
