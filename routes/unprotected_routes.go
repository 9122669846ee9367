package routes

import (
	"net/http"

	"github.com/Ram-Jam5/movie-review-back-end/controllers"
	"github.com/gin-gonic/gin"
)

func SetupUnprotectedRoutes(router gin.IRouter, deps Dependencies) {
	auth := deps.auth()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Server is running"})
	})
	router.POST("/register", controllers.RegisterUser(deps.Users))
	router.POST("/login", controllers.LoginUser(auth))
	router.POST("/refresh", controllers.RefreshTokenHandler(auth))
	router.POST("/logout", controllers.LogoutHandler(auth))
}
