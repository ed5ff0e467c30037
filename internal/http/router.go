package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SanaAbdulRahman/E-Learning-TutionApp-Server/internal/http/handlers"
	"github.com/SanaAbdulRahman/E-Learning-TutionApp-Server/internal/http/middleware"
)

// BuildRouter assembles the HTTP surface. Everything behind RequireAuth
// depends on both a valid access token and a live session snapshot.
func BuildRouter(accountHandlers *handlers.AccountHandlers, authMW *middleware.AuthMW) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		v1.POST("/registration", accountHandlers.Register)
		v1.POST("/activate-user", accountHandlers.Activate)
		v1.POST("/login", accountHandlers.Login)
		v1.POST("/social-auth", accountHandlers.SocialAuth)
		v1.GET("/refresh", accountHandlers.Refresh)

		authed := v1.Group("")
		authed.Use(authMW.RequireAuth())
		{
			authed.GET("/logout", accountHandlers.Logout)
			authed.GET("/me", accountHandlers.Me)
			authed.PUT("/update-user-info", accountHandlers.UpdateInfo)
			authed.PUT("/update-user-password", accountHandlers.UpdatePassword)
			authed.PUT("/update-user-avatar", accountHandlers.UpdateAvatar)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "route " + c.Request.URL.Path + " not found",
		})
	})

	return router
}
