package middleware

import (
	"crypto/subtle"
	"net/http"

	"cafe-fausse/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// AdminMiddleware gates the overview endpoint behind the static admin
// key, accepted from the X-Admin-Key header or the key query parameter
// (the dashboard sends the latter).
type AdminMiddleware struct {
	key string
}

func NewAdminMiddleware(cfg config.AdminConfig) *AdminMiddleware {
	return &AdminMiddleware{key: cfg.Key}
}

func (m *AdminMiddleware) RequireKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-Admin-Key")
		if key == "" {
			key = c.Query("key")
		}

		if subtle.ConstantTimeCompare([]byte(key), []byte(m.key)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid admin key"})
			return
		}

		c.Next()
	}
}
