package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows all origins. The gateway sits behind its own frontend during
// development and carries no cookies, so the permissive policy is safe.
func CORS() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Authorization", "Accept", "Origin", "X-Requested-With"},
		MaxAge:          12 * time.Hour,
	})
}
