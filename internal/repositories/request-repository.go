package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"translation-office/internal/dto"
	"translation-office/internal/entities"
	apperrors "translation-office/pkg/errors"
	"translation-office/pkg/types"
)

type RequestRepositoryInterface interface {
	CreateInTx(ctx context.Context, tx pgx.Tx, req *entities.TranslationRequest) error
	Find(ctx context.Context, id string) (*entities.TranslationRequest, error)
	FindForUpdateInTx(ctx context.Context, tx pgx.Tx, id string) (*entities.TranslationRequest, error)
	List(ctx context.Context, params types.ListParams) ([]entities.TranslationRequest, uint64, error)
	UpdateFileReference(ctx context.Context, id, fileURL string, fileSize int64, fileType string) error
	UpdateInTx(ctx context.Context, tx pgx.Tx, id string, data dto.UpdateRequestDTO) error
	UpdateStatusInTx(ctx context.Context, tx pgx.Tx, id, status string) error
	DeleteInTx(ctx context.Context, tx pgx.Tx, id string) error
}

type RequestRepository struct {
	storage *pgxpool.Pool
}

func NewRequestRepository(storage *pgxpool.Pool) RequestRepositoryInterface {
	return &RequestRepository{storage: storage}
}

const requestColumns = `id, customer_name, customer_email, customer_phone, customer_address,
	source_language, target_language, document_type, urgency, specialization, additional_notes,
	number_of_pages, original_file_name, file_url, file_size, file_type, status,
	estimated_price, final_price, estimated_delivery, actual_delivery, admin_notes, assigned_to,
	version, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRequest(row rowScanner) (*entities.TranslationRequest, error) {
	var r entities.TranslationRequest
	err := row.Scan(
		&r.ID, &r.CustomerName, &r.CustomerEmail, &r.CustomerPhone, &r.CustomerAddress,
		&r.SourceLanguage, &r.TargetLanguage, &r.DocumentType, &r.Urgency, &r.Specialization, &r.AdditionalNotes,
		&r.NumberOfPages, &r.OriginalFileName, &r.FileURL, &r.FileSize, &r.FileType, &r.Status,
		&r.EstimatedPrice, &r.FinalPrice, &r.EstimatedDelivery, &r.ActualDelivery, &r.AdminNotes, &r.AssignedTo,
		&r.Version, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *RequestRepository) CreateInTx(ctx context.Context, tx pgx.Tx, req *entities.TranslationRequest) error {
	query := `
		INSERT INTO translation_requests (
			id, customer_name, customer_email, customer_phone, customer_address,
			source_language, target_language, document_type, urgency, specialization, additional_notes,
			number_of_pages, original_file_name, file_url, file_size, file_type, status,
			estimated_price, version, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
			$12, $13, $14, $15, $16, $17, $18, $19, NOW(), NOW()
		)
		RETURNING created_at, updated_at`
	return tx.QueryRow(ctx, query,
		req.ID, req.CustomerName, req.CustomerEmail, req.CustomerPhone, req.CustomerAddress,
		req.SourceLanguage, req.TargetLanguage, req.DocumentType, req.Urgency, req.Specialization, req.AdditionalNotes,
		req.NumberOfPages, req.OriginalFileName, req.FileURL, req.FileSize, req.FileType, req.Status,
		req.EstimatedPrice, req.Version,
	).Scan(&req.CreatedAt, &req.UpdatedAt)
}

func (r *RequestRepository) Find(ctx context.Context, id string) (*entities.TranslationRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM translation_requests WHERE id = $1`, requestColumns)
	req, err := scanRequest(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan translation request: %w", err)
	}
	return req, nil
}

// FindForUpdateInTx locks the row for the rest of the transaction.
func (r *RequestRepository) FindForUpdateInTx(ctx context.Context, tx pgx.Tx, id string) (*entities.TranslationRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM translation_requests WHERE id = $1 FOR UPDATE`, requestColumns)
	req, err := scanRequest(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan translation request: %w", err)
	}
	return req, nil
}

func listConditions(params types.ListParams) sq.And {
	conds := sq.And{}
	if params.Status != "" {
		conds = append(conds, sq.Eq{"status": params.Status})
	}
	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		conds = append(conds, sq.Or{
			sq.ILike{"customer_name": pattern},
			sq.ILike{"customer_email": pattern},
			sq.ILike{"original_file_name": pattern},
		})
	}
	if params.DateFrom != nil {
		conds = append(conds, sq.GtOrEq{"created_at": *params.DateFrom})
	}
	if params.DateTo != nil {
		conds = append(conds, sq.LtOrEq{"created_at": *params.DateTo})
	}
	return conds
}

func buildListCountQuery(params types.ListParams) (string, []interface{}, error) {
	builder := sq.Select("COUNT(*)").From("translation_requests").PlaceholderFormat(sq.Dollar)
	if conds := listConditions(params); len(conds) > 0 {
		builder = builder.Where(conds)
	}
	return builder.ToSql()
}

func buildListSelectQuery(params types.ListParams) (string, []interface{}, error) {
	sortColumn := "created_at"
	if params.SortBy == "name" {
		sortColumn = "customer_name"
	}
	direction := "DESC"
	if params.SortOrder == "asc" {
		direction = "ASC"
	}

	builder := sq.Select(requestColumns).
		From("translation_requests").
		OrderBy(sortColumn + " " + direction).
		PlaceholderFormat(sq.Dollar)
	if conds := listConditions(params); len(conds) > 0 {
		builder = builder.Where(conds)
	}
	if !params.LimitAll {
		offset := uint64((params.Page - 1) * params.Limit)
		builder = builder.Limit(uint64(params.Limit)).Offset(offset)
	}
	return builder.ToSql()
}

// List returns the matching page plus the total matching count.
func (r *RequestRepository) List(ctx context.Context, params types.ListParams) ([]entities.TranslationRequest, uint64, error) {
	countSQL, countArgs, err := buildListCountQuery(params)
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count translation requests: %w", err)
	}

	querySQL, args, err := buildListSelectQuery(params)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, querySQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list translation requests: %w", err)
	}
	defer rows.Close()

	requests := make([]entities.TranslationRequest, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan translation request row: %w", err)
		}
		requests = append(requests, *req)
	}
	return requests, total, rows.Err()
}

func (r *RequestRepository) UpdateFileReference(ctx context.Context, id, fileURL string, fileSize int64, fileType string) error {
	tag, err := r.storage.Exec(ctx, `
		UPDATE translation_requests
		SET file_url = $2, file_size = $3, file_type = $4, updated_at = NOW()
		WHERE id = $1`,
		id, fileURL, fileSize, fileType)
	if err != nil {
		return fmt.Errorf("failed to update file reference: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateInTx overwrites every field the caller provided. A pointer to an
// empty value clears the column; nil pointers leave it untouched. Version is
// bumped here, the caller is responsible for the conflict check.
func (r *RequestRepository) UpdateInTx(ctx context.Context, tx pgx.Tx, id string, data dto.UpdateRequestDTO) error {
	builder := sq.Update("translation_requests").
		Set("updated_at", time.Now()).
		Set("version", sq.Expr("version + 1")).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar)

	if data.Status != nil {
		builder = builder.Set("status", *data.Status)
	}
	if data.EstimatedPrice != nil {
		builder = builder.Set("estimated_price", *data.EstimatedPrice)
	}
	if data.FinalPrice != nil {
		builder = builder.Set("final_price", *data.FinalPrice)
	}
	if data.EstimatedDelivery != nil {
		builder = builder.Set("estimated_delivery", nullableTime(*data.EstimatedDelivery))
	}
	if data.ActualDelivery != nil {
		builder = builder.Set("actual_delivery", nullableTime(*data.ActualDelivery))
	}
	if data.AdminNotes != nil {
		builder = builder.Set("admin_notes", nullableString(*data.AdminNotes))
	}
	if data.AssignedTo != nil {
		builder = builder.Set("assigned_to", nullableString(*data.AssignedTo))
	}

	querySQL, args, err := builder.ToSql()
	if err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, querySQL, args...)
	if err != nil {
		return fmt.Errorf("failed to update translation request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *RequestRepository) UpdateStatusInTx(ctx context.Context, tx pgx.Tx, id, status string) error {
	tag, err := tx.Exec(ctx, `
		UPDATE translation_requests
		SET status = $2, version = version + 1, updated_at = NOW()
		WHERE id = $1`,
		id, status)
	if err != nil {
		return fmt.Errorf("failed to update request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *RequestRepository) DeleteInTx(ctx context.Context, tx pgx.Tx, id string) error {
	tag, err := tx.Exec(ctx, `DELETE FROM translation_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete translation request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Explicitly-empty values are written as NULL, per the destructive-overwrite
// update policy.
func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func nullableTime(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t
}
