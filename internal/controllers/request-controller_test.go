package controllers

import (
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"translation-office/internal/dto"
	"translation-office/pkg/customvalidator"
	"translation-office/pkg/types"
	"translation-office/pkg/utils"
)

type stubRequestService struct {
	created int
}

func (s *stubRequestService) CreateRequest(_ context.Context, _ dto.CreateRequestDTO, _ *multipart.FileHeader) (*dto.CreateRequestResponse, error) {
	s.created++
	return &dto.CreateRequestResponse{Success: true, RequestID: "stub-id"}, nil
}

func (s *stubRequestService) GetRequests(_ context.Context, _ types.ListParams) (*dto.ListRequestsResponse, error) {
	return &dto.ListRequestsResponse{}, nil
}

func (s *stubRequestService) FindRequest(_ context.Context, _ string) (*dto.RequestDTO, error) {
	return &dto.RequestDTO{}, nil
}

func (s *stubRequestService) UpdateRequest(_ context.Context, _ string, _ dto.UpdateRequestDTO, _ string) (*dto.RequestDTO, error) {
	return &dto.RequestDTO{}, nil
}

func (s *stubRequestService) TransitionStatus(_ context.Context, _ string, _ dto.TransitionStatusDTO, _ string) (*dto.RequestDTO, error) {
	return &dto.RequestDTO{}, nil
}

func (s *stubRequestService) DeleteRequest(_ context.Context, _ string) error {
	return nil
}

func newIntakeTestServer(t *testing.T) (*echo.Echo, *stubRequestService, *RequestController) {
	t.Helper()

	e := echo.New()
	v := validator.New()
	require.NoError(t, customvalidator.RegisterCustomValidations(v))
	e.Validator = utils.NewValidator(v)

	svc := &stubRequestService{}
	ctrl := NewRequestController(svc, zap.NewNop())
	return e, svc, ctrl
}

func TestCreateRequest_ReportsAllViolationsAtOnce(t *testing.T) {
	e, svc, ctrl := newIntakeTestServer(t)

	// Missing email AND missing document: one response must list both.
	payload := `{
		"customerName": "Aziza Rahimova",
		"sourceLanguage": "English",
		"targetLanguage": "Arabic",
		"documentType": "LEGAL",
		"numberOfPages": "3"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/requests", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := ctrl.CreateRequest(e.NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, svc.created, "an invalid payload must not reach the service")

	var body struct {
		Status  bool              `json:"status"`
		Message string            `json:"message"`
		Body    map[string]string `json:"body"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Status)
	assert.Contains(t, body.Body, "customerEmail")
	assert.Contains(t, body.Body, "fileUrl")
	assert.Contains(t, body.Body, "originalFileName")
}

func TestCreateRequest_ValidPayloadReachesService(t *testing.T) {
	e, svc, ctrl := newIntakeTestServer(t)

	payload := `{
		"customerName": "Aziza Rahimova",
		"customerEmail": "aziza@example.com",
		"sourceLanguage": "English",
		"targetLanguage": "Arabic",
		"documentType": "LEGAL",
		"urgency": "STANDARD",
		"numberOfPages": "3",
		"originalFileName": "contract.pdf",
		"fileUrl": "requests/pre/contract.pdf"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/requests", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := ctrl.CreateRequest(e.NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, svc.created)
}
