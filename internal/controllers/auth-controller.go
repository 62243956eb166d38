package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"translation-office/internal/dto"
	"translation-office/internal/services"
	"translation-office/pkg/utils"
)

type AuthController struct {
	authService services.AuthServiceInterface
	logger      *zap.Logger
}

func NewAuthController(authService services.AuthServiceInterface, logger *zap.Logger) *AuthController {
	return &AuthController{authService: authService, logger: logger}
}

func (ctrl *AuthController) Login(c echo.Context) error {
	var body dto.LoginDTO
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&body); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	resp, err := ctrl.authService.Login(c.Request().Context(), body, c.RealIP())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, resp, "login successful", http.StatusOK)
}

func (ctrl *AuthController) RefreshTokens(c echo.Context) error {
	var body dto.RefreshTokenDTO
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&body); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	resp, err := ctrl.authService.RefreshTokens(c.Request().Context(), body.RefreshToken)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, resp, "tokens refreshed", http.StatusOK)
}

// Me returns the authenticated staff member, resolved fresh from storage so
// a role change takes effect without waiting for token expiry.
func (ctrl *AuthController) Me(c echo.Context) error {
	claims, err := utils.GetClaimsFromContext(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	user, err := ctrl.authService.GetUserByID(c.Request().Context(), claims.UserID)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, user, "user found successfully", http.StatusOK)
}
