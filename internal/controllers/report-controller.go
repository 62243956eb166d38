package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"translation-office/internal/services"
	apperrors "translation-office/pkg/errors"
	"translation-office/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

// ExportRequests streams the filtered request set as an XLSX download. The
// same filters as the list endpoint apply.
func (ctrl *ReportController) ExportRequests(c echo.Context) error {
	if format := c.QueryParam("format"); format != "" && format != "xlsx" {
		return utils.ErrorResponse(c, apperrors.NewValidationError(map[string]string{
			"format": "only xlsx is supported",
		}), ctrl.logger)
	}

	params := utils.ParseListParams(c.QueryParams())

	file, err := ctrl.reportService.ExportRequestsXLSX(c.Request().Context(), params)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	defer file.Close()

	filename := fmt.Sprintf("requests-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().WriteHeader(http.StatusOK)

	if err := file.Write(c.Response().Writer); err != nil {
		ctrl.logger.Error("failed to write XLSX response", zap.Error(err))
		return apperrors.NewInternalError(err)
	}
	return nil
}
