package redirect

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Middleware serves stored redirects before route handling. API and
// service endpoints are never redirected.
func Middleware(resolver *Resolver, logger *logrus.Entry) gin.HandlerFunc {
	log := logger.WithField("component", "redirect-middleware")

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api/") || path == "/sitemap.xml" || strings.HasPrefix(path, "/socket.io/") {
			c.Next()
			return
		}

		result, err := resolver.Resolve(c.Request.Context(), path)
		if err != nil {
			// Resolution failure must not take the page down; pass through
			log.WithError(err).Error("Redirect resolution failed")
			c.Next()
			return
		}
		if result == nil {
			c.Next()
			return
		}

		c.Redirect(result.StatusCode, result.URL)
		c.Abort()
	}
}
