package middleware

import (
	"github.com/gin-gonic/gin"

	"ecotours/pkg/utils"
)

// RequestOrigin puts scheme://host of the request into the request context so
// that media URLs can be rendered absolute.
func RequestOrigin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if origin := utils.RequestOrigin(c.Request); origin != "" {
			c.Request = c.Request.WithContext(utils.WithOrigin(c.Request.Context(), origin))
		}
		c.Next()
	}
}
