package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"translation-office/internal/controllers"
	"translation-office/internal/services"
)

func runReportRouter(
	adminGroup *echo.Group,
	reportService services.ReportServiceInterface,
	logger *zap.Logger,
) {
	reportCtrl := controllers.NewReportController(reportService, logger)

	adminGroup.GET("/report", reportCtrl.ExportRequests)
}
