package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/harryviennot/cuisto-admin/internal/domain/enums"
	"github.com/harryviennot/cuisto-admin/internal/domain/model"
	modsvc "github.com/harryviennot/cuisto-admin/internal/services/moderation"
	queuesvc "github.com/harryviennot/cuisto-admin/internal/services/queues"
	"github.com/harryviennot/cuisto-admin/internal/transport/http/dto"
)

type fakeReportsRepo struct {
	report     model.ContentReport
	dismissed  []string
	actions    []enums.ReportAction
	takeErr    error
	dismissErr error
}

func (f *fakeReportsRepo) List(_ context.Context, _ model.ReportQueueFilter) (model.ReportQueue, error) {
	return model.ReportQueue{Reports: []model.ContentReport{f.report}, Total: 1}, nil
}

func (f *fakeReportsRepo) Get(_ context.Context, reportID string) (model.ContentReport, error) {
	report := f.report
	report.ID = reportID
	return report, nil
}

func (f *fakeReportsRepo) Dismiss(_ context.Context, reportID, reason, notes string, isFalseReport bool) (model.ContentReport, error) {
	f.dismissed = append(f.dismissed, reportID)
	if f.dismissErr != nil {
		return model.ContentReport{}, f.dismissErr
	}
	report := f.report
	report.ID = reportID
	report.Status = enums.ReportStatusResolved
	return report, nil
}

func (f *fakeReportsRepo) TakeAction(_ context.Context, _ string, action enums.ReportAction, _, _ string, _ *int) error {
	f.actions = append(f.actions, action)
	return f.takeErr
}

type fakeRecipesRepo struct {
	recipe  model.Recipe
	hideErr error
	hidden  []string
}

func (f *fakeRecipesRepo) List(_ context.Context, _ model.RecipeListFilter) (model.RecipeList, error) {
	return model.RecipeList{Recipes: []model.Recipe{f.recipe}, Total: 1}, nil
}

func (f *fakeRecipesRepo) Get(_ context.Context, recipeID string) (model.Recipe, error) {
	recipe := f.recipe
	recipe.ID = recipeID
	return recipe, nil
}

func (f *fakeRecipesRepo) Hide(_ context.Context, recipeID, _ string) error {
	f.hidden = append(f.hidden, recipeID)
	return f.hideErr
}

func (f *fakeRecipesRepo) Unhide(_ context.Context, _, _ string) error {
	return nil
}

type fakeUsersRepo struct {
	calls []string
}

func (f *fakeUsersRepo) Warn(_ context.Context, userID, _, _ string) error {
	f.calls = append(f.calls, "warn:"+userID)
	return nil
}

func (f *fakeUsersRepo) Suspend(_ context.Context, userID string, _ int, _ string) error {
	f.calls = append(f.calls, "suspend:"+userID)
	return nil
}

func (f *fakeUsersRepo) Unsuspend(_ context.Context, userID, _ string) error {
	f.calls = append(f.calls, "unsuspend:"+userID)
	return nil
}

func (f *fakeUsersRepo) Ban(_ context.Context, userID, _ string) error {
	f.calls = append(f.calls, "ban:"+userID)
	return nil
}

func (f *fakeUsersRepo) Unban(_ context.Context, userID, _ string) error {
	f.calls = append(f.calls, "unban:"+userID)
	return nil
}

func (f *fakeUsersRepo) Delete(_ context.Context, userID, _ string) error {
	f.calls = append(f.calls, "delete:"+userID)
	return nil
}

func newReportsRouter(reports *fakeReportsRepo, recipes *fakeRecipesRepo, users *fakeUsersRepo) http.Handler {
	moderationService := modsvc.NewService(recipes, users, reports)
	queueService := queuesvc.NewService(reports, nil, recipes, nil, 50)
	handler := NewReportsHandler(queueService, moderationService)

	r := chi.NewRouter()
	r.Get("/reports/{id}", handler.Get)
	r.Post("/reports/{id}/quick-dismiss", handler.QuickDismiss)
	r.Post("/reports/{id}/resolve", handler.Resolve)
	return r
}

func TestReportsQuickDismiss(t *testing.T) {
	reports := &fakeReportsRepo{report: model.ContentReport{ID: "report-1", RecipeID: "recipe-1"}}
	router := newReportsRouter(reports, &fakeRecipesRepo{}, &fakeUsersRepo{})

	req := httptest.NewRequest(http.MethodPost, "/reports/report-1/quick-dismiss", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d want=%d body=%s", rr.Code, http.StatusOK, rr.Body.String())
	}
	if len(reports.dismissed) != 1 {
		t.Fatalf("dismissed = %v", reports.dismissed)
	}

	var response dto.ReportResponse
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if response.Status != string(enums.ReportStatusResolved) {
		t.Errorf("status = %q", response.Status)
	}
}

func TestReportsResolveRejectsUnknownAction(t *testing.T) {
	router := newReportsRouter(&fakeReportsRepo{}, &fakeRecipesRepo{}, &fakeUsersRepo{})

	body := strings.NewReader(`{"action":"delete_everything"}`)
	req := httptest.NewRequest(http.MethodPost, "/reports/report-1/resolve", body)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: got=%d want=%d", rr.Code, http.StatusBadRequest)
	}
}

func TestReportsResolveHideWithSecondaryWarn(t *testing.T) {
	reports := &fakeReportsRepo{report: model.ContentReport{ID: "report-1", RecipeID: "recipe-1"}}
	recipes := &fakeRecipesRepo{}
	router := newReportsRouter(reports, recipes, &fakeUsersRepo{})

	body := strings.NewReader(`{"action":"hide_recipe","reason":"spam","user_action":"warn"}`)
	req := httptest.NewRequest(http.MethodPost, "/reports/report-1/resolve", body)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d body=%s", rr.Code, rr.Body.String())
	}
	if len(recipes.hidden) != 1 || recipes.hidden[0] != "recipe-1" {
		t.Fatalf("hidden = %v", recipes.hidden)
	}
	if len(reports.actions) != 1 || reports.actions[0] != enums.ReportActionWarnUser {
		t.Fatalf("actions = %v", reports.actions)
	}

	var response dto.CompositeResultResponse
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if response.RecipeStep.Status != "succeeded" || response.UserStep.Status != "succeeded" {
		t.Errorf("unexpected steps: %+v", response)
	}
}

func TestReportsResolveReportsPartialOutcome(t *testing.T) {
	reports := &fakeReportsRepo{report: model.ContentReport{ID: "report-1", RecipeID: "recipe-1"}}
	recipes := &fakeRecipesRepo{hideErr: errors.New("hide endpoint down")}
	router := newReportsRouter(reports, recipes, &fakeUsersRepo{})

	body := strings.NewReader(`{"action":"ban_user","reason":"fraud","also_hide_recipe":true}`)
	req := httptest.NewRequest(http.MethodPost, "/reports/report-1/resolve", body)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d body=%s", rr.Code, rr.Body.String())
	}

	var response dto.CompositeResultResponse
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if response.RecipeStep.Status != "failed" {
		t.Errorf("recipe step = %+v, want failed", response.RecipeStep)
	}
	if response.UserStep.Status != "succeeded" {
		t.Errorf("user step = %+v, want succeeded", response.UserStep)
	}
	if !response.Partial {
		t.Error("expected partial result")
	}
	if response.RecipeStep.Error == "" {
		t.Error("step error message must be surfaced")
	}
}
