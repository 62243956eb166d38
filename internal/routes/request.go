package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"translation-office/internal/controllers"
	"translation-office/internal/services"
	"translation-office/pkg/filestorage"
)

func runRequestRouter(
	api *echo.Group,
	requestService services.RequestServiceInterface,
	fileStorage filestorage.FileStorageInterface,
	logger *zap.Logger,
) {
	requestCtrl := controllers.NewRequestController(requestService, logger)
	uploadCtrl := controllers.NewUploadController(fileStorage, logger)

	api.POST("/requests", requestCtrl.CreateRequest)
	api.POST("/quote", requestCtrl.Quote)
	api.GET("/generate-temp-id", requestCtrl.GenerateTempID)
	api.POST("/upload", uploadCtrl.Upload)
}
