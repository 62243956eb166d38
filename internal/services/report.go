package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"translation-office/internal/entities"
	"translation-office/internal/repositories"
	apperrors "translation-office/pkg/errors"
	"translation-office/pkg/types"
)

type ReportServiceInterface interface {
	ExportRequestsXLSX(ctx context.Context, params types.ListParams) (*excelize.File, error)
}

type ReportService struct {
	requestRepo repositories.RequestRepositoryInterface
	historyRepo repositories.StatusHistoryRepositoryInterface
}

func NewReportService(
	requestRepo repositories.RequestRepositoryInterface,
	historyRepo repositories.StatusHistoryRepositoryInterface,
) ReportServiceInterface {
	return &ReportService{requestRepo: requestRepo, historyRepo: historyRepo}
}

var reportHeaders = []string{
	"ID", "Customer", "Email", "Phone", "Languages", "Document Type",
	"Urgency", "Pages", "Status", "Estimated Price", "Final Price",
	"Assigned To", "Last Change By", "Created At",
}

// ExportRequestsXLSX renders every request matching the filters into a
// spreadsheet. Pagination is ignored on purpose, a report is always the
// full filtered set.
func (s *ReportService) ExportRequestsXLSX(ctx context.Context, params types.ListParams) (*excelize.File, error) {
	params.LimitAll = true

	requests, _, err := s.requestRepo.List(ctx, params)
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

	f := excelize.NewFile()
	const sheet = "Requests"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	for col, header := range reportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, apperrors.NewInternalError(err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, apperrors.NewInternalError(err)
		}
	}

	for rowIdx, req := range requests {
		changedBy := ""
		if entry, ok := latest[req.ID]; ok {
			changedBy = entry.ChangedBy
		}
		for col, value := range reportRow(&req, changedBy) {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return nil, apperrors.NewInternalError(err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, apperrors.NewInternalError(err)
			}
		}
	}

	return f, nil
}

func reportRow(req *entities.TranslationRequest, changedBy string) []interface{} {
	estimated := ""
	if req.EstimatedPrice.Valid {
		estimated = strconv.FormatFloat(req.EstimatedPrice.Float64, 'f', 2, 64)
	}
	final := ""
	if req.FinalPrice.Valid {
		final = strconv.FormatFloat(req.FinalPrice.Float64, 'f', 2, 64)
	}

	return []interface{}{
		req.ID,
		req.CustomerName,
		req.CustomerEmail,
		req.CustomerPhone.String,
		fmt.Sprintf("%s → %s", req.SourceLanguage, req.TargetLanguage),
		req.DocumentType,
		req.Urgency,
		req.NumberOfPages,
		req.Status,
		estimated,
		final,
		req.AssignedTo.String,
		changedBy,
		req.CreatedAt.Format("2006-01-02 15:04"),
	}
}
