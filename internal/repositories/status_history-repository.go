package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"translation-office/internal/entities"
)

type StatusHistoryRepositoryInterface interface {
	CreateInTx(ctx context.Context, tx pgx.Tx, entry *entities.StatusHistory) error
	FindByRequestID(ctx context.Context, requestID string) ([]entities.StatusHistory, error)
	LatestByRequestIDs(ctx context.Context, requestIDs []string) (map[string]entities.StatusHistory, error)
	DeleteByRequestIDInTx(ctx context.Context, tx pgx.Tx, requestID string) error
}

type StatusHistoryRepository struct {
	storage *pgxpool.Pool
}

func NewStatusHistoryRepository(storage *pgxpool.Pool) StatusHistoryRepositoryInterface {
	return &StatusHistoryRepository{storage: storage}
}

func (r *StatusHistoryRepository) CreateInTx(ctx context.Context, tx pgx.Tx, entry *entities.StatusHistory) error {
	query := `
		INSERT INTO status_history (request_id, status, notes, changed_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`
	return tx.QueryRow(ctx, query,
		entry.RequestID, entry.Status, entry.Notes, entry.ChangedBy,
	).Scan(&entry.ID, &entry.CreatedAt)
}

// FindByRequestID returns the full history, newest first.
func (r *StatusHistoryRepository) FindByRequestID(ctx context.Context, requestID string) ([]entities.StatusHistory, error) {
	query := `
		SELECT id, request_id, status, notes, changed_by, created_at
		FROM status_history
		WHERE request_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := r.storage.Query(ctx, query, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to query status history: %w", err)
	}
	defer rows.Close()

	history := make([]entities.StatusHistory, 0)
	for rows.Next() {
		var h entities.StatusHistory
		if err := rows.Scan(&h.ID, &h.RequestID, &h.Status, &h.Notes, &h.ChangedBy, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan status history row: %w", err)
		}
		history = append(history, h)
	}
	return history, rows.Err()
}

// LatestByRequestIDs fetches only the most recent entry per request, a read
// optimization for the list view.
func (r *StatusHistoryRepository) LatestByRequestIDs(ctx context.Context, requestIDs []string) (map[string]entities.StatusHistory, error) {
	if len(requestIDs) == 0 {
		return map[string]entities.StatusHistory{}, nil
	}

	query := `
		SELECT DISTINCT ON (request_id)
			id, request_id, status, notes, changed_by, created_at
		FROM status_history
		WHERE request_id = ANY($1)
		ORDER BY request_id, created_at DESC, id DESC`

	rows, err := r.storage.Query(ctx, query, requestIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query latest status history: %w", err)
	}
	defer rows.Close()

	latest := make(map[string]entities.StatusHistory, len(requestIDs))
	for rows.Next() {
		var h entities.StatusHistory
		if err := rows.Scan(&h.ID, &h.RequestID, &h.Status, &h.Notes, &h.ChangedBy, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan status history row: %w", err)
		}
		latest[h.RequestID] = h
	}
	return latest, rows.Err()
}

// DeleteByRequestIDInTx removes the owned history before the parent row goes,
// respecting the ownership invariant.
func (r *StatusHistoryRepository) DeleteByRequestIDInTx(ctx context.Context, tx pgx.Tx, requestID string) error {
	_, err := tx.Exec(ctx, `DELETE FROM status_history WHERE request_id = $1`, requestID)
	if err != nil {
		return fmt.Errorf("failed to delete status history: %w", err)
	}
	return nil
}
