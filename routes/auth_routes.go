package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/weblynx/backoffice_backend/controllers"
	"github.com/weblynx/backoffice_backend/middleware"
)

// RegisterAuthRoutes wires the authentication endpoints
func RegisterAuthRoutes(e *echo.Echo, authController *controllers.AuthController) {
	auth := e.Group("/api/auth")
	auth.POST("/login", authController.Login)
	auth.POST("/firebase", authController.FirebaseLogin)
	auth.POST("/refresh", authController.Refresh)

	protected := e.Group("/api/auth", middleware.JWTMiddleware())
	protected.GET("/me", authController.Me)
	protected.POST("/logout", authController.Logout)
}
