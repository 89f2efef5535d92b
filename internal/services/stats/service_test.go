package stats

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/harryviennot/cuisto-admin/internal/domain/enums"
	"github.com/harryviennot/cuisto-admin/internal/domain/model"
)

type statsStub struct {
	statistics model.Statistics
	err        error
	delay      time.Duration
}

func (s *statsStub) Statistics(ctx context.Context) (model.Statistics, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return model.Statistics{}, ctx.Err()
		}
	}
	if s.err != nil {
		return model.Statistics{}, s.err
	}
	return s.statistics, nil
}

type reportsStub struct {
	queue      model.ReportQueue
	err        error
	delay      time.Duration
	lastFilter model.ReportQueueFilter
}

func (s *reportsStub) List(ctx context.Context, filter model.ReportQueueFilter) (model.ReportQueue, error) {
	s.lastFilter = filter
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return model.ReportQueue{}, ctx.Err()
		}
	}
	if s.err != nil {
		return model.ReportQueue{}, s.err
	}
	return s.queue, nil
}

func TestOverviewCombinesBothReads(t *testing.T) {
	t.Parallel()

	statsRepo := &statsStub{statistics: model.Statistics{
		Users: model.UserStatistics{GoodStanding: 120, Banned: 3},
	}}
	reportsRepo := &reportsStub{queue: model.ReportQueue{
		Reports: []model.ContentReport{{ID: "report-1"}, {ID: "report-2"}},
		Total:   2,
	}}

	service := NewService(statsRepo, reportsRepo)
	overview, err := service.Overview(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if overview.Statistics.Users.GoodStanding != 120 {
		t.Errorf("statistics not propagated: %+v", overview.Statistics.Users)
	}
	if len(overview.RecentReports) != 2 {
		t.Errorf("recent reports = %d, want 2", len(overview.RecentReports))
	}
	if reportsRepo.lastFilter.Status != enums.ReportStatusPending {
		t.Errorf("recent reports filter = %+v, want pending", reportsRepo.lastFilter)
	}
	if reportsRepo.lastFilter.Limit != recentReportsLimit {
		t.Errorf("limit = %d, want %d", reportsRepo.lastFilter.Limit, recentReportsLimit)
	}
}

func TestOverviewSurfacesStatsError(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("statistics endpoint down")
	service := NewService(&statsStub{err: wantErr}, &reportsStub{})

	_, err := service.Overview(context.Background())
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected %v, got %v", wantErr, err)
	}
}

func TestOverviewSurfacesReportsError(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("reports endpoint down")
	service := NewService(&statsStub{}, &reportsStub{err: wantErr})

	_, err := service.Overview(context.Background())
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected %v, got %v", wantErr, err)
	}
}

func TestOverviewReadsRunConcurrently(t *testing.T) {
	t.Parallel()

	// Each read sleeps 80ms; a sequential implementation would need 160ms.
	statsRepo := &statsStub{delay: 80 * time.Millisecond}
	reportsRepo := &reportsStub{delay: 80 * time.Millisecond}

	service := NewService(statsRepo, reportsRepo)

	start := time.Now()
	if _, err := service.Overview(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 150*time.Millisecond {
		t.Errorf("overview took %v, reads look sequential", elapsed)
	}
}
