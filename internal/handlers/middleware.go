package handlers

import (
	"net/http"
	"strings"

	"quizforge/internal/service"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// identityMiddleware verifies the bearer token and stores the embedded
// identity in the Gin context for downstream handlers.
func (h *Handler) identityMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"status": statusFail,
			"msg":    "missing Authorization header",
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"status": statusFail,
			"msg":    "invalid Authorization header format",
		})
		return
	}

	ident, err := h.services.ParseToken(parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"status": statusFail,
			"msg":    "invalid token",
		})
		return
	}

	c.Set(identityKey, ident)
	c.Next()
}

// identityFrom extracts the verified identity stored by the middleware.
func identityFrom(c *gin.Context) (service.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return service.Identity{}, false
	}
	ident, ok := v.(service.Identity)
	return ident, ok
}
