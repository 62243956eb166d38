package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"translation-office/internal/controllers"
	"translation-office/internal/services"
)

func runDashboardRouter(
	adminGroup *echo.Group,
	dashboardService services.DashboardServiceInterface,
	logger *zap.Logger,
) {
	dashboardCtrl := controllers.NewDashboardController(dashboardService, logger)

	adminGroup.GET("/stats", dashboardCtrl.GetStats)
}
