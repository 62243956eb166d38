package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"translation-office/internal/dto"
	"translation-office/internal/repositories"
	"translation-office/pkg/constants"
	apperrors "translation-office/pkg/errors"
)

const recentRequestsLimit = 5

type DashboardServiceInterface interface {
	GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error)
}

type DashboardService struct {
	dashboardRepo repositories.DashboardRepositoryInterface
}

func NewDashboardService(dashboardRepo repositories.DashboardRepositoryInterface) DashboardServiceInterface {
	return &DashboardService{dashboardRepo: dashboardRepo}
}

// GetStats gathers the overview counters concurrently; the aggregates are
// independent reads so one round trip each is all the latency we pay.
func (s *DashboardService) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	var stats dto.DashboardStatsDTO

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		total, err := s.dashboardRepo.CountAll(gctx)
		stats.TotalRequests = total
		return err
	})
	g.Go(func() error {
		count, err := s.dashboardRepo.CountByStatus(gctx, constants.StatusPending)
		stats.PendingRequests = count
		return err
	})
	g.Go(func() error {
		count, err := s.dashboardRepo.CountByStatus(gctx, constants.StatusInProgress)
		stats.InProgressRequests = count
		return err
	})
	g.Go(func() error {
		count, err := s.dashboardRepo.CountByStatus(gctx, constants.StatusCompleted)
		stats.CompletedRequests = count
		return err
	})
	g.Go(func() error {
		recent, err := s.dashboardRepo.RecentRequests(gctx, recentRequestsLimit)
		stats.RecentRequests = recent
		return err
	})
	g.Go(func() error {
		distribution, err := s.dashboardRepo.StatusDistribution(gctx)
		stats.StatusDistribution = distribution
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return &stats, nil
}
