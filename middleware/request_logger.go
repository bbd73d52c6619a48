package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per handled request: method, route, status and
// duration. Kept separate from gin's own logger so the format stays stable
// when the engine is built with gin.New() in tests.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		log.Printf("%s %s -> %d (%dms)", c.Request.Method, path, c.Writer.Status(), duration.Milliseconds())
	}
}
