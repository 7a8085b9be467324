package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"artist-hub.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	authHandler    *handlers.AuthHandler
	artistHandler  *handlers.ArtistHandler
	authMiddleware gin.HandlerFunc
}

func registerRoutes(r *gin.Engine, d routeDeps) {
	// Auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/login", d.authHandler.Login)
		auth.POST("/signup", d.authHandler.Signup)
		auth.POST("/google", d.authHandler.GoogleLogin)
		auth.POST("/send-otp", d.authHandler.SendOTP)
		auth.POST("/verify-otp", d.authHandler.VerifyOTP)
		auth.GET("/check-nickname", d.authHandler.CheckNickname)
		auth.POST("/update-nickname", d.authMiddleware, d.authHandler.UpdateNickname)
	}

	// Artist catalog routes
	api := r.Group("/api")
	{
		api.GET("/artists", d.artistHandler.List)
		api.POST("/artists/:id/image", d.authMiddleware, d.artistHandler.UploadImage)
	}
}

// applyCORSMiddleware reflects the request origin. The frontend runs on a
// separate origin and sends credentialed requests.
func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

// registerHealthRoute exposes the liveness probe on GET /
func registerHealthRoute(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "artist-hub-backend",
			"version": "0.1.0",
		})
	})
}

// registerMetricsRoute exposes the Prometheus scrape endpoint
func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
