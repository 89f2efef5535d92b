package stats

import (
	"context"
	"errors"
	"sync"

	"github.com/harryviennot/cuisto-admin/internal/domain/enums"
	"github.com/harryviennot/cuisto-admin/internal/domain/model"
)

const recentReportsLimit = 5

type StatsRepo interface {
	Statistics(ctx context.Context) (model.Statistics, error)
}

type ReportsRepo interface {
	List(ctx context.Context, filter model.ReportQueueFilter) (model.ReportQueue, error)
}

// Overview is the dashboard landing payload: platform-wide counters plus the
// freshest pending reports.
type Overview struct {
	Statistics    model.Statistics
	RecentReports []model.ContentReport
}

type Service struct {
	stats   StatsRepo
	reports ReportsRepo
}

func NewService(stats StatsRepo, reports ReportsRepo) *Service {
	return &Service{stats: stats, reports: reports}
}

// Overview fetches the counters and the recent pending reports concurrently;
// the two reads are independent and neither should wait on the other.
func (s *Service) Overview(ctx context.Context) (Overview, error) {
	if s.stats == nil || s.reports == nil {
		return Overview{}, errors.New("stats repos are not configured")
	}

	var (
		wg sync.WaitGroup

		statistics model.Statistics
		statsErr   error

		queue      model.ReportQueue
		reportsErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		statistics, statsErr = s.stats.Statistics(ctx)
	}()
	go func() {
		defer wg.Done()
		queue, reportsErr = s.reports.List(ctx, model.ReportQueueFilter{
			Status: enums.ReportStatusPending,
			Limit:  recentReportsLimit,
		})
	}()
	wg.Wait()

	if statsErr != nil {
		return Overview{}, statsErr
	}
	if reportsErr != nil {
		return Overview{}, reportsErr
	}

	return Overview{
		Statistics:    statistics,
		RecentReports: queue.Reports,
	}, nil
}

// Statistics exposes the raw counters for the statistics page.
func (s *Service) Statistics(ctx context.Context) (model.Statistics, error) {
	if s.stats == nil {
		return model.Statistics{}, errors.New("stats repo is not configured")
	}
	return s.stats.Statistics(ctx)
}
