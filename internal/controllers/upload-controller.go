package controllers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"translation-office/internal/dto"
	"translation-office/internal/services"
	apperrors "translation-office/pkg/errors"
	"translation-office/pkg/filestorage"
	"translation-office/pkg/utils"
)

// UploadController stores a document ahead of the intake form submit. The
// returned reference is later attached to the request via fileUrl.
type UploadController struct {
	storage filestorage.FileStorageInterface
	logger  *zap.Logger
}

func NewUploadController(storage filestorage.FileStorageInterface, logger *zap.Logger) *UploadController {
	return &UploadController{storage: storage, logger: logger}
}

func (ctrl *UploadController) Upload(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(c, apperrors.NewValidationError(map[string]string{
			"file": "file is required",
		}), ctrl.logger)
	}

	if err := services.ValidateUpload(file, MaxUploadSize); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	// Pre-uploads are grouped under the caller's temp id, or a fresh one.
	groupID := c.FormValue("tempId")
	if groupID == "" {
		groupID = uuid.New().String()
	}
	fileRef, err := ctrl.storage.Save(file, groupID)
	if err != nil {
		return utils.ErrorResponse(c, apperrors.NewStorageError(err), ctrl.logger)
	}

	url, err := ctrl.storage.ResolveURL(c.Request().Context(), fileRef)
	if err != nil {
		return utils.ErrorResponse(c, apperrors.NewStorageError(err), ctrl.logger)
	}

	return c.JSON(http.StatusOK, dto.UploadResponseDTO{
		Success:  true,
		URL:      url,
		FileRef:  fileRef,
		FileName: file.Filename,
		FileSize: file.Size,
		FileType: file.Header.Get("Content-Type"),
	})
}
