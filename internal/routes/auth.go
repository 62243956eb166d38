package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"translation-office/internal/controllers"
	"translation-office/internal/services"
	"translation-office/pkg/middleware"
)

func runAuthRouter(
	api *echo.Group,
	authService services.AuthServiceInterface,
	authMW *middleware.AuthMiddleware,
	logger *zap.Logger,
) {
	authCtrl := controllers.NewAuthController(authService, logger)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", authCtrl.Login)
		authGroup.POST("/refresh_token", authCtrl.RefreshTokens)
		authGroup.GET("/me", authCtrl.Me, authMW.Auth)
	}
}
