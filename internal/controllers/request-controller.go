package controllers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"translation-office/internal/dto"
	"translation-office/internal/services"
	apperrors "translation-office/pkg/errors"
	"translation-office/pkg/utils"
)

// MaxUploadSize bounds inline and standalone document uploads.
const MaxUploadSize = 10 * 1024 * 1024

// RequestController serves the public intake surface: submitting a request,
// pricing a quote.
type RequestController struct {
	requestService services.RequestServiceInterface
	logger         *zap.Logger
}

func NewRequestController(requestService services.RequestServiceInterface, logger *zap.Logger) *RequestController {
	return &RequestController{requestService: requestService, logger: logger}
}

// CreateRequest accepts either a JSON body referencing a pre-uploaded file
// or a multipart form with the document inline.
func (ctrl *RequestController) CreateRequest(c echo.Context) error {
	var body dto.CreateRequestDTO
	var file *multipart.FileHeader

	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		body = bindCreateRequestForm(c)
		if f, err := c.FormFile("file"); err == nil {
			file = f
		}
	} else if err := c.Bind(&body); err != nil {
		ctrl.logger.Warn("CreateRequest: malformed body", zap.Error(err))
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// Field violations and the document checks are reported together, so
	// the customer sees every problem in one response.
	details := map[string]string{}
	if err := c.Validate(&body); err != nil {
		var httpErr *apperrors.HttpError
		if !errors.As(err, &httpErr) || httpErr.Details == nil {
			return utils.ErrorResponse(c, err, ctrl.logger)
		}
		details = httpErr.Details
	}
	for field, message := range documentViolations(&body, file) {
		details[field] = message
	}
	if len(details) > 0 {
		return utils.ErrorResponse(c, apperrors.NewValidationError(details), ctrl.logger)
	}

	resp, err := ctrl.requestService.CreateRequest(c.Request().Context(), body, file)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.JSON(http.StatusCreated, resp)
}

func documentViolations(body *dto.CreateRequestDTO, file *multipart.FileHeader) map[string]string {
	violations := map[string]string{}
	if file == nil {
		if body.FileURL == "" {
			violations["fileUrl"] = "a document file or a file reference is required"
		}
		if body.OriginalFileName == "" {
			violations["originalFileName"] = "is required"
		}
		return violations
	}

	var uploadErr *apperrors.HttpError
	if err := services.ValidateUpload(file, MaxUploadSize); errors.As(err, &uploadErr) && uploadErr.Details != nil {
		for field, message := range uploadErr.Details {
			violations[field] = message
		}
	}
	return violations
}

func bindCreateRequestForm(c echo.Context) dto.CreateRequestDTO {
	return dto.CreateRequestDTO{
		CustomerName:     c.FormValue("customerName"),
		CustomerEmail:    c.FormValue("customerEmail"),
		CustomerPhone:    c.FormValue("customerPhone"),
		CustomerAddress:  c.FormValue("customerAddress"),
		SourceLanguage:   c.FormValue("sourceLanguage"),
		TargetLanguage:   c.FormValue("targetLanguage"),
		DocumentType:     c.FormValue("documentType"),
		Urgency:          c.FormValue("urgency"),
		Specialization:   c.FormValue("specialization"),
		AdditionalNotes:  c.FormValue("additionalNotes"),
		NumberOfPages:    c.FormValue("numberOfPages"),
		HardCopy:         c.FormValue("hardCopy") == "true",
		OriginalFileName: c.FormValue("originalFileName"),
		FileURL:          c.FormValue("fileUrl"),
	}
}

// GenerateTempID hands the intake form an id to group its upload under
// before the request itself exists.
func (ctrl *RequestController) GenerateTempID(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"tempId": uuid.New().String()})
}

type quoteRequest struct {
	NumberOfPages string `json:"numberOfPages" validate:"required"`
	Urgency       string `json:"urgency" validate:"omitempty,oneof=STANDARD NEXT_DAY SAME_DAY"`
	HardCopy      bool   `json:"hardCopy"`
}

// Quote prices a prospective request without creating anything.
func (ctrl *RequestController) Quote(c echo.Context) error {
	var body quoteRequest
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&body); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	price := services.CalculateQuote(body.NumberOfPages, body.Urgency, body.HardCopy)
	return utils.SuccessResponse(c, dto.QuoteDTO{
		NumberOfPages: body.NumberOfPages,
		Urgency:       body.Urgency,
		HardCopy:      body.HardCopy,
		Price:         price,
	}, "quote calculated", http.StatusOK)
}
