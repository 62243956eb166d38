package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strconv"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"translation-office/internal/dto"
	"translation-office/internal/entities"
	"translation-office/internal/repositories"
	"translation-office/pkg/constants"
	apperrors "translation-office/pkg/errors"
	"translation-office/pkg/filestorage"
	"translation-office/pkg/types"
)

type RequestServiceInterface interface {
	CreateRequest(ctx context.Context, data dto.CreateRequestDTO, file *multipart.FileHeader) (*dto.CreateRequestResponse, error)
	GetRequests(ctx context.Context, params types.ListParams) (*dto.ListRequestsResponse, error)
	FindRequest(ctx context.Context, id string) (*dto.RequestDTO, error)
	UpdateRequest(ctx context.Context, id string, data dto.UpdateRequestDTO, actor string) (*dto.RequestDTO, error)
	TransitionStatus(ctx context.Context, id string, data dto.TransitionStatusDTO, actor string) (*dto.RequestDTO, error)
	DeleteRequest(ctx context.Context, id string) error
}

type RequestService struct {
	txManager    repositories.TxManagerInterface
	requestRepo  repositories.RequestRepositoryInterface
	historyRepo  repositories.StatusHistoryRepositoryInterface
	storage      filestorage.FileStorageInterface
	notification NotificationServiceInterface
	logger       *zap.Logger
}

func NewRequestService(
	txManager repositories.TxManagerInterface,
	requestRepo repositories.RequestRepositoryInterface,
	historyRepo repositories.StatusHistoryRepositoryInterface,
	storage filestorage.FileStorageInterface,
	notification NotificationServiceInterface,
	logger *zap.Logger,
) RequestServiceInterface {
	return &RequestService{
		txManager:    txManager,
		requestRepo:  requestRepo,
		historyRepo:  historyRepo,
		storage:      storage,
		notification: notification,
		logger:       logger,
	}
}

// CreateRequest registers a new order. The row and its first history entry
// commit together; an inline document is stored only after the row exists,
// and the row is removed again if storage fails, so no committed request
// ever points at a file that was never written.
func (s *RequestService) CreateRequest(ctx context.Context, data dto.CreateRequestDTO, file *multipart.FileHeader) (*dto.CreateRequestResponse, error) {
	originalFileName := data.OriginalFileName
	fileSize := data.FileSize
	fileType := data.FileType
	if file != nil {
		originalFileName = file.Filename
		fileSize = file.Size
		fileType = file.Header.Get("Content-Type")
	}

	urgency := data.Urgency
	if urgency == "" {
		urgency = constants.UrgencyStandard
	}

	// Callers other than the HTTP boundary get the same enumerated checks.
	details := map[string]string{}
	if file == nil && data.FileURL == "" {
		details["fileUrl"] = "a document file or a file reference is required"
	}
	if originalFileName == "" {
		details["originalFileName"] = "is required"
	}
	if !constants.IsValidDocumentType(data.DocumentType) {
		details["documentType"] = "is not a known document type"
	}
	if !constants.IsValidUrgency(urgency) {
		details["urgency"] = "is not a known delivery tier"
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidationError(details)
	}

	pages, _ := strconv.Atoi(data.NumberOfPages)
	estimate := CalculateQuote(data.NumberOfPages, urgency, data.HardCopy)

	fileURL := data.FileURL
	if file != nil {
		fileURL = constants.FileURLPending
	}

	req := &entities.TranslationRequest{
		ID:               uuid.New().String(),
		CustomerName:     data.CustomerName,
		CustomerEmail:    data.CustomerEmail,
		CustomerPhone:    null.NewString(data.CustomerPhone, data.CustomerPhone != ""),
		CustomerAddress:  null.NewString(data.CustomerAddress, data.CustomerAddress != ""),
		SourceLanguage:   data.SourceLanguage,
		TargetLanguage:   data.TargetLanguage,
		DocumentType:     data.DocumentType,
		Urgency:          urgency,
		Specialization:   null.NewString(data.Specialization, data.Specialization != ""),
		AdditionalNotes:  null.NewString(data.AdditionalNotes, data.AdditionalNotes != ""),
		NumberOfPages:    pages,
		OriginalFileName: originalFileName,
		FileURL:          fileURL,
		FileSize:         fileSize,
		FileType:         fileType,
		Status:           constants.StatusPending,
		EstimatedPrice:   null.Float64From(estimate),
		Version:          1,
	}

	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if err := s.requestRepo.CreateInTx(ctx, tx, req); err != nil {
			return fmt.Errorf("failed to create translation request: %w", err)
		}
		return s.historyRepo.CreateInTx(ctx, tx, &entities.StatusHistory{
			RequestID: req.ID,
			Status:    constants.StatusPending,
			Notes:     "Request submitted",
			ChangedBy: constants.SystemActor,
		})
	})
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	if file != nil {
		fileRef, saveErr := s.storage.Save(file, req.ID)
		if saveErr != nil {
			s.compensateCreate(ctx, req.ID)
			return nil, apperrors.NewStorageError(saveErr)
		}
		if err := s.requestRepo.UpdateFileReference(ctx, req.ID, fileRef, fileSize, fileType); err != nil {
			if delErr := s.storage.Delete(ctx, fileRef); delErr != nil {
				s.logger.Error("failed to remove orphaned file", zap.String("fileRef", fileRef), zap.Error(delErr))
			}
			s.compensateCreate(ctx, req.ID)
			return nil, apperrors.NewInternalError(err)
		}
	}

	s.sendIntakeNotifications(req, data.NumberOfPages, estimate)

	return &dto.CreateRequestResponse{
		Success:   true,
		RequestID: req.ID,
		Message:   "Translation request submitted successfully",
	}, nil
}

// compensateCreate undoes the intake transaction after a storage failure.
func (s *RequestService) compensateCreate(ctx context.Context, id string) {
	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if err := s.historyRepo.DeleteByRequestIDInTx(ctx, tx, id); err != nil {
			return err
		}
		return s.requestRepo.DeleteInTx(ctx, tx, id)
	})
	if err != nil {
		s.logger.Error("failed to roll back request after storage failure",
			zap.String("requestId", id), zap.Error(err))
	}
}

func (s *RequestService) sendIntakeNotifications(req *entities.TranslationRequest, pagesText string, estimate float64) {
	if err := s.notification.SendRequestConfirmation(req.CustomerEmail, req.ID); err != nil {
		s.logger.Warn("failed to send confirmation email",
			zap.String("requestId", req.ID), zap.Error(err))
	}
	alert := AdminAlert{
		RequestID:      req.ID,
		CustomerName:   req.CustomerName,
		CustomerEmail:  req.CustomerEmail,
		SourceLanguage: req.SourceLanguage,
		TargetLanguage: req.TargetLanguage,
		DocumentType:   req.DocumentType,
		Urgency:        req.Urgency,
		NumberOfPages:  pagesText,
		EstimatedPrice: estimate,
		FileName:       req.OriginalFileName,
	}
	if err := s.notification.SendAdminNotification(alert); err != nil {
		s.logger.Warn("failed to send admin notification",
			zap.String("requestId", req.ID), zap.Error(err))
	}
}

// GetRequests returns one page of requests with the latest history entry
// embedded per row.
func (s *RequestService) GetRequests(ctx context.Context, params types.ListParams) (*dto.ListRequestsResponse, error) {
	requests, total, err := s.requestRepo.List(ctx, params)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	ids := make([]string, 0, len(requests))
	for _, req := range requests {
		ids = append(ids, req.ID)
	}
	latest, err := s.historyRepo.LatestByRequestIDs(ctx, ids)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	items := make([]dto.RequestDTO, 0, len(requests))
	for i := range requests {
		var history []entities.StatusHistory
		if entry, ok := latest[requests[i].ID]; ok {
			history = []entities.StatusHistory{entry}
		}
		items = append(items, mapRequestToDTO(&requests[i], history))
	}

	return &dto.ListRequestsResponse{
		Requests:   items,
		Pagination: buildPagination(params, total),
	}, nil
}

func buildPagination(params types.ListParams, total uint64) types.Pagination {
	if params.LimitAll {
		return types.Pagination{Page: 1, Limit: int(total), Total: total, Pages: 1}
	}
	pages := 1
	if params.Limit > 0 {
		pages = int((total + uint64(params.Limit) - 1) / uint64(params.Limit))
		if pages == 0 {
			pages = 1
		}
	}
	return types.Pagination{
		Page:  params.Page,
		Limit: params.Limit,
		Total: total,
		Pages: pages,
	}
}

func (s *RequestService) FindRequest(ctx context.Context, id string) (*dto.RequestDTO, error) {
	req, err := s.requestRepo.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	history, err := s.historyRepo.FindByRequestID(ctx, id)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	result := mapRequestToDTO(req, history)
	return &result, nil
}

// UpdateRequest applies a staff edit. The stored version must match the one
// the caller read or the edit is rejected with a conflict, so two admins
// cannot silently overwrite each other. A status change also appends a
// history entry in the same transaction.
func (s *RequestService) UpdateRequest(ctx context.Context, id string, data dto.UpdateRequestDTO, actor string) (*dto.RequestDTO, error) {
	if data.Status != nil && !constants.IsValidStatus(*data.Status) {
		return nil, apperrors.NewValidationError(map[string]string{
			"status": "is not a known status",
		})
	}

	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		current, err := s.requestRepo.FindForUpdateInTx(ctx, tx, id)
		if err != nil {
			return err
		}
		if current.Version != data.Version {
			return apperrors.NewConflictError("request was modified by someone else, reload and try again")
		}

		if err := s.requestRepo.UpdateInTx(ctx, tx, id, data); err != nil {
			return err
		}

		if data.Status != nil && *data.Status != current.Status {
			notes := fmt.Sprintf("Status changed to %s", *data.Status)
			if data.AdminNotes != nil && *data.AdminNotes != "" {
				notes = *data.AdminNotes
			}
			return s.historyRepo.CreateInTx(ctx, tx, &entities.StatusHistory{
				RequestID: id,
				Status:    *data.Status,
				Notes:     notes,
				ChangedBy: actor,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.FindRequest(ctx, id)
}

// TransitionStatus records a status assignment. The history entry is
// appended even when the status does not change, so repeated assignments
// stay visible in the audit trail.
func (s *RequestService) TransitionStatus(ctx context.Context, id string, data dto.TransitionStatusDTO, actor string) (*dto.RequestDTO, error) {
	if !constants.IsValidStatus(data.Status) {
		return nil, apperrors.NewValidationError(map[string]string{
			"status": "is not a known status",
		})
	}

	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := s.requestRepo.FindForUpdateInTx(ctx, tx, id); err != nil {
			return err
		}
		if err := s.requestRepo.UpdateStatusInTx(ctx, tx, id, data.Status); err != nil {
			return err
		}

		notes := data.Notes
		if notes == "" {
			notes = fmt.Sprintf("Status changed to %s", data.Status)
		}
		return s.historyRepo.CreateInTx(ctx, tx, &entities.StatusHistory{
			RequestID: id,
			Status:    data.Status,
			Notes:     notes,
			ChangedBy: actor,
		})
	})
	if err != nil {
		return nil, err
	}
	return s.FindRequest(ctx, id)
}

// DeleteRequest removes the request and its owned history atomically. The
// stored document is cleaned up best-effort after the commit.
func (s *RequestService) DeleteRequest(ctx context.Context, id string) error {
	req, err := s.requestRepo.Find(ctx, id)
	if err != nil {
		return err
	}

	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if err := s.historyRepo.DeleteByRequestIDInTx(ctx, tx, id); err != nil {
			return err
		}
		return s.requestRepo.DeleteInTx(ctx, tx, id)
	})
	if err != nil {
		return err
	}

	if req.FileURL != "" && req.FileURL != constants.FileURLPending {
		if delErr := s.storage.Delete(ctx, req.FileURL); delErr != nil {
			s.logger.Warn("failed to delete stored document",
				zap.String("requestId", id), zap.Error(delErr))
		}
	}
	return nil
}

func mapRequestToDTO(req *entities.TranslationRequest, history []entities.StatusHistory) dto.RequestDTO {
	historyDTOs := make([]dto.StatusHistoryDTO, 0, len(history))
	for _, h := range history {
		historyDTOs = append(historyDTOs, dto.StatusHistoryDTO{
			Status:    h.Status,
			Notes:     h.Notes,
			ChangedBy: h.ChangedBy,
			CreatedAt: h.CreatedAt,
		})
	}

	return dto.RequestDTO{
		ID:                req.ID,
		CustomerName:      req.CustomerName,
		CustomerEmail:     req.CustomerEmail,
		CustomerPhone:     req.CustomerPhone.Ptr(),
		CustomerAddress:   req.CustomerAddress.Ptr(),
		SourceLanguage:    req.SourceLanguage,
		TargetLanguage:    req.TargetLanguage,
		DocumentType:      req.DocumentType,
		Urgency:           req.Urgency,
		Specialization:    req.Specialization.Ptr(),
		AdditionalNotes:   req.AdditionalNotes.Ptr(),
		NumberOfPages:     strconv.Itoa(req.NumberOfPages),
		OriginalFileName:  req.OriginalFileName,
		FileURL:           req.FileURL,
		FileSize:          req.FileSize,
		FileType:          req.FileType,
		Status:            req.Status,
		EstimatedPrice:    req.EstimatedPrice.Ptr(),
		FinalPrice:        req.FinalPrice.Ptr(),
		EstimatedDelivery: req.EstimatedDelivery.Ptr(),
		ActualDelivery:    req.ActualDelivery.Ptr(),
		AdminNotes:        req.AdminNotes.Ptr(),
		AssignedTo:        req.AssignedTo.Ptr(),
		Version:           req.Version,
		CreatedAt:         req.CreatedAt,
		UpdatedAt:         req.UpdatedAt,
		StatusHistory:     historyDTOs,
	}
}

// AllowedUploadExtensions mirrors the document types the office accepts.
var AllowedUploadExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".txt":  true,
}

// ValidateUpload checks the document before it touches storage.
func ValidateUpload(file *multipart.FileHeader, maxSize int64) error {
	if file.Size > maxSize {
		return apperrors.NewValidationError(map[string]string{
			"file": fmt.Sprintf("file exceeds the %d MB limit", maxSize/(1024*1024)),
		})
	}
	ext := filepath.Ext(file.Filename)
	if !AllowedUploadExtensions[ext] {
		return apperrors.NewValidationError(map[string]string{
			"file": "only PDF, DOC, DOCX and TXT files are accepted",
		})
	}
	return nil
}
