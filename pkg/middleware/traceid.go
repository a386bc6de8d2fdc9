package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ecotours/pkg/utils"
)

const traceHeader = "X-Trace-ID"

func TraceIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(traceHeader)
		if _, err := uuid.Parse(traceID); err != nil {
			traceID = uuid.New().String()
		}
		c.Set("trace_id", traceID)
		c.Request = c.Request.WithContext(utils.WithTraceID(c.Request.Context(), traceID))
		c.Writer.Header().Set(traceHeader, traceID)
		c.Next()
	}
}
