package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"translation-office/internal/controllers"
	"translation-office/internal/services"
)

func runAdminRequestRouter(
	adminGroup *echo.Group,
	requestService services.RequestServiceInterface,
	logger *zap.Logger,
) {
	adminCtrl := controllers.NewAdminRequestController(requestService, logger)

	adminGroup.GET("/requests", adminCtrl.GetRequests)
	adminGroup.GET("/requests/:id", adminCtrl.FindRequest)
	adminGroup.PATCH("/requests/:id", adminCtrl.UpdateRequest)
	adminGroup.PUT("/requests/:id/status", adminCtrl.TransitionStatus)
	adminGroup.DELETE("/requests/:id", adminCtrl.DeleteRequest)
}
