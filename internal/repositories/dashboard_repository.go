package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"translation-office/internal/dto"
)

type DashboardRepositoryInterface interface {
	CountAll(ctx context.Context) (uint64, error)
	CountByStatus(ctx context.Context, status string) (uint64, error)
	RecentRequests(ctx context.Context, limit uint64) ([]dto.RecentRequestDTO, error)
	StatusDistribution(ctx context.Context) (map[string]uint64, error)
}

type DashboardRepository struct {
	storage *pgxpool.Pool
}

func NewDashboardRepository(storage *pgxpool.Pool) DashboardRepositoryInterface {
	return &DashboardRepository{storage: storage}
}

func (r *DashboardRepository) CountAll(ctx context.Context) (uint64, error) {
	var count uint64
	err := r.storage.QueryRow(ctx, `SELECT COUNT(*) FROM translation_requests`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count requests: %w", err)
	}
	return count, nil
}

func (r *DashboardRepository) CountByStatus(ctx context.Context, status string) (uint64, error) {
	query, args, err := sq.Select("COUNT(*)").
		From("translation_requests").
		Where(sq.Eq{"status": status}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var count uint64
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count requests by status: %w", err)
	}
	return count, nil
}

func (r *DashboardRepository) RecentRequests(ctx context.Context, limit uint64) ([]dto.RecentRequestDTO, error) {
	query, args, err := sq.Select("id", "customer_name", "source_language", "target_language", "status", "created_at").
		From("translation_requests").
		OrderBy("created_at DESC").
		Limit(limit).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent requests: %w", err)
	}
	defer rows.Close()

	recent := make([]dto.RecentRequestDTO, 0, limit)
	for rows.Next() {
		var item dto.RecentRequestDTO
		if err := rows.Scan(&item.ID, &item.CustomerName, &item.SourceLanguage, &item.TargetLanguage, &item.Status, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan recent request: %w", err)
		}
		recent = append(recent, item)
	}
	return recent, rows.Err()
}

func (r *DashboardRepository) StatusDistribution(ctx context.Context) (map[string]uint64, error) {
	rows, err := r.storage.Query(ctx, `
		SELECT status, COUNT(*)
		FROM translation_requests
		GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to query status distribution: %w", err)
	}
	defer rows.Close()

	distribution := make(map[string]uint64)
	for rows.Next() {
		var status string
		var count uint64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan status distribution: %w", err)
		}
		distribution[status] = count
	}
	return distribution, rows.Err()
}
