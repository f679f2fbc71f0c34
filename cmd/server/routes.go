package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"it-short.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	systemUserHandler *handlers.SystemUserHandler
	authMiddleware    gin.HandlerFunc
}

func registerAdminRoutes(r *gin.Engine, d routeDeps) {
	admin := r.Group("/admin")
	{
		// Public routes
		admin.POST("/login", d.systemUserHandler.SignIn)
		admin.POST("/system_users", d.systemUserHandler.Create)

		// Token-protected routes
		protected := admin.Group("")
		protected.Use(d.authMiddleware)
		{
			protected.GET("/system_users/all", d.systemUserHandler.GetAll)
			protected.GET("/system_users", d.systemUserHandler.List)
			protected.GET("/system_users/:id", d.systemUserHandler.Get)
			protected.PUT("/system_users/:id", d.systemUserHandler.Update)
			protected.DELETE("/system_users/:id", d.systemUserHandler.Delete)
		}
	}
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "it-short-backend",
			"version": "0.1.0",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID, token")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}
