package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fitpulse.backend/internal/interfaces/http/handlers"
	"fitpulse.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler    *handlers.AuthHandler
	userHandler    *handlers.UserHandler
	authMiddleware gin.HandlerFunc
}

func newRouter(env string, corsOrigins []string, d routeDeps) *gin.Engine {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggerMiddleware(),
		middleware.MetricsMiddleware(),
	)
	applyCORSMiddleware(r, corsOrigins)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Welcome to FitPulse",
		})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "healthy",
			"environment": env,
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	registerAPIV1Routes(r, d)
	return r
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
		}

		// User routes (protected)
		users := v1.Group("/users")
		users.Use(d.authMiddleware)
		{
			users.GET("/me", d.userHandler.GetMe)
			users.PUT("/me", d.userHandler.UpdateMe)
			users.GET("/:id", d.userHandler.GetUser)
		}
	}
}
