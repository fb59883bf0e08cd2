package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/petshop/backend/internal/interfaces/http/dto"
)

// SwaggerGate returns a middleware in front of the documentation routes.
// When the docs are disabled it answers 404 so the deployment does not
// reveal that documentation exists at all.
func SwaggerGate(enabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !enabled {
			c.AbortWithStatusJSON(http.StatusNotFound,
				dto.NewErrorResponse(dto.ErrCodeNotFound, "API documentation is not available"))
			return
		}
		c.Next()
	}
}
