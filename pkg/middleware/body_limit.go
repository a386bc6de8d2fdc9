package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ecotours/pkg/utils"
)

// BodyLimit rejects declared bodies above maxBytes with 413 and caps streamed
// bodies; binding errors caused by the cap surface as ErrPayloadTooLarge.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			utils.HandleServiceError(c, utils.ErrPayloadTooLarge)
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
