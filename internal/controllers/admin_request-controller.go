package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"translation-office/internal/dto"
	"translation-office/internal/services"
	"translation-office/pkg/utils"
)

// AdminRequestController serves the staff back office: listing, inspecting
// and mutating requests. Every route behind it requires an admin token.
type AdminRequestController struct {
	requestService services.RequestServiceInterface
	logger         *zap.Logger
}

func NewAdminRequestController(requestService services.RequestServiceInterface, logger *zap.Logger) *AdminRequestController {
	return &AdminRequestController{requestService: requestService, logger: logger}
}

func (ctrl *AdminRequestController) GetRequests(c echo.Context) error {
	params := utils.ParseListParams(c.QueryParams())

	resp, err := ctrl.requestService.GetRequests(c.Request().Context(), params)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.JSON(http.StatusOK, resp)
}

func (ctrl *AdminRequestController) FindRequest(c echo.Context) error {
	id := c.Param("id")

	req, err := ctrl.requestService.FindRequest(c.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, req, "request found successfully", http.StatusOK)
}

func (ctrl *AdminRequestController) UpdateRequest(c echo.Context) error {
	id := c.Param("id")

	var body dto.UpdateRequestDTO
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&body); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	claims, err := utils.GetClaimsFromContext(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	req, err := ctrl.requestService.UpdateRequest(c.Request().Context(), id, body, claims.Email)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, req, "request updated successfully", http.StatusOK)
}

func (ctrl *AdminRequestController) TransitionStatus(c echo.Context) error {
	id := c.Param("id")

	var body dto.TransitionStatusDTO
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&body); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	claims, err := utils.GetClaimsFromContext(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	req, err := ctrl.requestService.TransitionStatus(c.Request().Context(), id, body, claims.Email)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, req, "status updated successfully", http.StatusOK)
}

func (ctrl *AdminRequestController) DeleteRequest(c echo.Context) error {
	id := c.Param("id")

	if err := ctrl.requestService.DeleteRequest(c.Request().Context(), id); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, nil, "request deleted successfully", http.StatusOK)
}
