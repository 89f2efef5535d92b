package queues

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/harryviennot/cuisto-admin/internal/domain/model"
)

const (
	quickDismissReason = "Quick dismissed from queue"
	quickResolveNotes  = "Quick resolved from queue"

	defaultPageSize = 50
	maxPageSize     = 200
)

var ErrValidation = errors.New("validation error")

type ReportsRepo interface {
	List(ctx context.Context, filter model.ReportQueueFilter) (model.ReportQueue, error)
	Get(ctx context.Context, reportID string) (model.ContentReport, error)
	Dismiss(ctx context.Context, reportID, reason, notes string, isFalseReport bool) (model.ContentReport, error)
}

type FeedbackRepo interface {
	List(ctx context.Context, filter model.FeedbackQueueFilter) (model.FeedbackQueue, error)
	Get(ctx context.Context, feedbackID string) (model.ExtractionFeedback, error)
	Resolve(ctx context.Context, feedbackID, resolutionNotes string, wasHelpful *bool) (model.ExtractionFeedback, error)
}

type RecipesRepo interface {
	List(ctx context.Context, filter model.RecipeListFilter) (model.RecipeList, error)
	Get(ctx context.Context, recipeID string) (model.Recipe, error)
}

type UsersRepo interface {
	List(ctx context.Context, filter model.UserListFilter) (model.UserList, error)
	Get(ctx context.Context, userID string) (model.UserDetail, error)
}

// Service serves the review queues and their one-click shortcuts. Quick
// actions are deliberately conservative: a quick dismiss never marks the
// report false, a quick resolve never marks the extraction helpful.
type Service struct {
	reports  ReportsRepo
	feedback FeedbackRepo
	recipes  RecipesRepo
	users    UsersRepo

	pageSize    int
	searchDelay time.Duration
}

func NewService(reports ReportsRepo, feedback FeedbackRepo, recipes RecipesRepo, users UsersRepo, pageSize int) *Service {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &Service{
		reports:  reports,
		feedback: feedback,
		recipes:  recipes,
		users:    users,
		pageSize: pageSize,
	}
}

// SetSearchDebounce overrides the settle period handed to SearchDebouncer.
func (s *Service) SetSearchDebounce(delay time.Duration) {
	s.searchDelay = delay
}

// SearchDebouncer builds a debouncer for one search box, settling after the
// configured quiet period.
func (s *Service) SearchDebouncer() *Debouncer {
	return NewDebouncer(s.searchDelay)
}

func (s *Service) Reports(ctx context.Context, filter model.ReportQueueFilter) (model.ReportQueue, error) {
	if s.reports == nil {
		return model.ReportQueue{}, errors.New("reports repo is not configured")
	}
	filter.Limit = s.clampLimit(filter.Limit)
	return s.reports.List(ctx, filter)
}

func (s *Service) Report(ctx context.Context, reportID string) (model.ContentReport, error) {
	if s.reports == nil {
		return model.ContentReport{}, errors.New("reports repo is not configured")
	}
	if strings.TrimSpace(reportID) == "" {
		return model.ContentReport{}, fmt.Errorf("%w: report id is required", ErrValidation)
	}
	return s.reports.Get(ctx, reportID)
}

// QuickDismissReport closes a report straight from the queue without opening
// it. It never marks the report false; that judgement needs the detail view.
func (s *Service) QuickDismissReport(ctx context.Context, reportID string) (model.ContentReport, error) {
	if s.reports == nil {
		return model.ContentReport{}, errors.New("reports repo is not configured")
	}
	if strings.TrimSpace(reportID) == "" {
		return model.ContentReport{}, fmt.Errorf("%w: report id is required", ErrValidation)
	}
	return s.reports.Dismiss(ctx, reportID, quickDismissReason, "", false)
}

func (s *Service) Feedback(ctx context.Context, filter model.FeedbackQueueFilter) (model.FeedbackQueue, error) {
	if s.feedback == nil {
		return model.FeedbackQueue{}, errors.New("feedback repo is not configured")
	}
	filter.Limit = s.clampLimit(filter.Limit)
	return s.feedback.List(ctx, filter)
}

func (s *Service) FeedbackItem(ctx context.Context, feedbackID string) (model.ExtractionFeedback, error) {
	if s.feedback == nil {
		return model.ExtractionFeedback{}, errors.New("feedback repo is not configured")
	}
	if strings.TrimSpace(feedbackID) == "" {
		return model.ExtractionFeedback{}, fmt.Errorf("%w: feedback id is required", ErrValidation)
	}
	return s.feedback.Get(ctx, feedbackID)
}

// QuickResolveFeedback closes a feedback item from the queue. was_helpful is
// pinned to false so the extraction quality stats stay honest.
func (s *Service) QuickResolveFeedback(ctx context.Context, feedbackID string) (model.ExtractionFeedback, error) {
	if s.feedback == nil {
		return model.ExtractionFeedback{}, errors.New("feedback repo is not configured")
	}
	if strings.TrimSpace(feedbackID) == "" {
		return model.ExtractionFeedback{}, fmt.Errorf("%w: feedback id is required", ErrValidation)
	}
	wasHelpful := false
	return s.feedback.Resolve(ctx, feedbackID, quickResolveNotes, &wasHelpful)
}

// ResolveFeedback closes a feedback item from the detail view with the
// moderator's own notes and helpfulness judgement.
func (s *Service) ResolveFeedback(ctx context.Context, feedbackID, notes string, wasHelpful *bool) (model.ExtractionFeedback, error) {
	if s.feedback == nil {
		return model.ExtractionFeedback{}, errors.New("feedback repo is not configured")
	}
	if strings.TrimSpace(feedbackID) == "" {
		return model.ExtractionFeedback{}, fmt.Errorf("%w: feedback id is required", ErrValidation)
	}
	return s.feedback.Resolve(ctx, feedbackID, notes, wasHelpful)
}

func (s *Service) Recipes(ctx context.Context, filter model.RecipeListFilter) (model.RecipeList, error) {
	if s.recipes == nil {
		return model.RecipeList{}, errors.New("recipes repo is not configured")
	}
	filter.Search = strings.TrimSpace(filter.Search)
	filter.Limit = s.clampLimit(filter.Limit)
	return s.recipes.List(ctx, filter)
}

func (s *Service) Recipe(ctx context.Context, recipeID string) (model.Recipe, error) {
	if s.recipes == nil {
		return model.Recipe{}, errors.New("recipes repo is not configured")
	}
	if strings.TrimSpace(recipeID) == "" {
		return model.Recipe{}, fmt.Errorf("%w: recipe id is required", ErrValidation)
	}
	return s.recipes.Get(ctx, recipeID)
}

func (s *Service) Users(ctx context.Context, filter model.UserListFilter) (model.UserList, error) {
	if s.users == nil {
		return model.UserList{}, errors.New("users repo is not configured")
	}
	filter.Search = strings.TrimSpace(filter.Search)
	filter.Limit = s.clampLimit(filter.Limit)
	return s.users.List(ctx, filter)
}

func (s *Service) User(ctx context.Context, userID string) (model.UserDetail, error) {
	if s.users == nil {
		return model.UserDetail{}, errors.New("users repo is not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return model.UserDetail{}, fmt.Errorf("%w: user id is required", ErrValidation)
	}
	return s.users.Get(ctx, userID)
}

func (s *Service) clampLimit(limit int) int {
	if limit <= 0 {
		return s.pageSize
	}
	if limit > maxPageSize {
		return maxPageSize
	}
	return limit
}
