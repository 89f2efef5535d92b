package moderation

import (
	"context"
	"errors"
	"testing"

	"github.com/harryviennot/cuisto-admin/internal/domain/enums"
	"github.com/harryviennot/cuisto-admin/internal/domain/model"
)

type recipesStub struct {
	recipe  model.Recipe
	getErr  error
	hideErr error

	calls       []string
	hideReasons []string
}

func (s *recipesStub) Get(_ context.Context, recipeID string) (model.Recipe, error) {
	s.calls = append(s.calls, "get:"+recipeID)
	if s.getErr != nil {
		return model.Recipe{}, s.getErr
	}
	return s.recipe, nil
}

func (s *recipesStub) Hide(_ context.Context, recipeID, reason string) error {
	s.calls = append(s.calls, "hide:"+recipeID)
	s.hideReasons = append(s.hideReasons, reason)
	return s.hideErr
}

func (s *recipesStub) Unhide(_ context.Context, recipeID, reason string) error {
	s.calls = append(s.calls, "unhide:"+recipeID)
	return nil
}

type usersStub struct {
	warnErr    error
	suspendErr error
	banErr     error

	calls        []string
	suspendDays  []int
	warnRecipeID string
}

func (s *usersStub) Warn(_ context.Context, userID, reason, recipeID string) error {
	s.calls = append(s.calls, "warn:"+userID)
	s.warnRecipeID = recipeID
	return s.warnErr
}

func (s *usersStub) Suspend(_ context.Context, userID string, durationDays int, reason string) error {
	s.calls = append(s.calls, "suspend:"+userID)
	s.suspendDays = append(s.suspendDays, durationDays)
	return s.suspendErr
}

func (s *usersStub) Unsuspend(_ context.Context, userID, reason string) error {
	s.calls = append(s.calls, "unsuspend:"+userID)
	return nil
}

func (s *usersStub) Ban(_ context.Context, userID, reason string) error {
	s.calls = append(s.calls, "ban:"+userID)
	return s.banErr
}

func (s *usersStub) Unban(_ context.Context, userID, reason string) error {
	s.calls = append(s.calls, "unban:"+userID)
	return nil
}

func (s *usersStub) Delete(_ context.Context, userID, reason string) error {
	s.calls = append(s.calls, "delete:"+userID)
	return nil
}

type reportsStub struct {
	report     model.ContentReport
	getErr     error
	dismissErr error
	actionErr  error

	calls          []string
	dismissReasons []string
	falseReports   []bool
	actions        []enums.ReportAction
	actionDays     []*int
}

func (s *reportsStub) Get(_ context.Context, reportID string) (model.ContentReport, error) {
	s.calls = append(s.calls, "get:"+reportID)
	if s.getErr != nil {
		return model.ContentReport{}, s.getErr
	}
	return s.report, nil
}

func (s *reportsStub) Dismiss(_ context.Context, reportID, reason, notes string, isFalseReport bool) (model.ContentReport, error) {
	s.calls = append(s.calls, "dismiss:"+reportID)
	s.dismissReasons = append(s.dismissReasons, reason)
	s.falseReports = append(s.falseReports, isFalseReport)
	if s.dismissErr != nil {
		return model.ContentReport{}, s.dismissErr
	}
	return s.report, nil
}

func (s *reportsStub) TakeAction(_ context.Context, reportID string, action enums.ReportAction, reason, notes string, suspensionDays *int) error {
	s.calls = append(s.calls, "action:"+reportID)
	s.actions = append(s.actions, action)
	s.actionDays = append(s.actionDays, suspensionDays)
	return s.actionErr
}

func newTestService() (*Service, *recipesStub, *usersStub, *reportsStub) {
	recipes := &recipesStub{}
	users := &usersStub{}
	reports := &reportsStub{}
	return NewService(recipes, users, reports), recipes, users, reports
}

func TestHideRecipeWithWarnOrdersHideFirst(t *testing.T) {
	t.Parallel()

	service, recipes, users, _ := newTestService()

	result, err := service.HideRecipe(context.Background(), HideRecipeInput{
		RecipeID:   "recipe-1",
		AuthorID:   "author-1",
		Reason:     "spam content",
		UserAction: enums.UserActionWarn,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(recipes.calls) != 1 || recipes.calls[0] != "hide:recipe-1" {
		t.Fatalf("unexpected recipe calls: %v", recipes.calls)
	}
	if len(users.calls) != 1 || users.calls[0] != "warn:author-1" {
		t.Fatalf("unexpected user calls: %v", users.calls)
	}
	if users.warnRecipeID != "recipe-1" {
		t.Errorf("warning not linked to recipe, got %q", users.warnRecipeID)
	}
	if result.RecipeStep.Status != StepSucceeded || result.UserStep.Status != StepSucceeded {
		t.Errorf("unexpected result: %+v", result)
	}
	if result.DecisionID == "" {
		t.Error("expected a decision id")
	}
}

func TestHideRecipeFailureAbortsUserAction(t *testing.T) {
	t.Parallel()

	service, recipes, users, _ := newTestService()
	recipes.hideErr = errors.New("recipe not found")

	result, err := service.HideRecipe(context.Background(), HideRecipeInput{
		RecipeID:   "recipe-1",
		AuthorID:   "author-1",
		UserAction: enums.UserActionBan,
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(users.calls) != 0 {
		t.Fatalf("author must stay untouched after hide failure, got %v", users.calls)
	}
	if result.RecipeStep.Status != StepFailed {
		t.Errorf("recipe step = %q, want failed", result.RecipeStep.Status)
	}
	if result.UserStep.Status != StepSkipped {
		t.Errorf("user step = %q, want skipped", result.UserStep.Status)
	}
}

func TestHideRecipeSuspendFailureKeepsRecipeHidden(t *testing.T) {
	t.Parallel()

	service, recipes, users, _ := newTestService()
	users.suspendErr = errors.New("user already banned")

	result, err := service.HideRecipe(context.Background(), HideRecipeInput{
		RecipeID:   "recipe-1",
		AuthorID:   "author-1",
		UserAction: enums.UserActionSuspend,
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(recipes.calls) != 1 {
		t.Fatalf("unexpected recipe calls: %v", recipes.calls)
	}
	if !result.Partial() {
		t.Errorf("expected partial result, got %+v", result)
	}
	if result.RecipeStep.Status != StepSucceeded {
		t.Errorf("recipe step = %q, want succeeded", result.RecipeStep.Status)
	}
}

func TestHideRecipeSuspendDefaultsToSevenDays(t *testing.T) {
	t.Parallel()

	service, _, users, _ := newTestService()

	_, err := service.HideRecipe(context.Background(), HideRecipeInput{
		RecipeID:   "recipe-1",
		AuthorID:   "author-1",
		UserAction: enums.UserActionSuspend,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users.suspendDays) != 1 || users.suspendDays[0] != 7 {
		t.Errorf("suspension days = %v, want [7]", users.suspendDays)
	}
}

func TestHideRecipeRejectsUnknownSuspensionDuration(t *testing.T) {
	t.Parallel()

	service, recipes, _, _ := newTestService()

	_, err := service.HideRecipe(context.Background(), HideRecipeInput{
		RecipeID:       "recipe-1",
		AuthorID:       "author-1",
		UserAction:     enums.UserActionSuspend,
		SuspensionDays: 14,
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(recipes.calls) != 0 {
		t.Errorf("nothing should be called on invalid input, got %v", recipes.calls)
	}
}

func TestHideRecipeResolvesAuthorFromRecipe(t *testing.T) {
	t.Parallel()

	service, recipes, users, _ := newTestService()
	recipes.recipe = model.Recipe{ID: "recipe-1", CreatedBy: "author-9"}

	_, err := service.HideRecipe(context.Background(), HideRecipeInput{
		RecipeID:   "recipe-1",
		UserAction: enums.UserActionWarn,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users.calls) != 1 || users.calls[0] != "warn:author-9" {
		t.Errorf("unexpected user calls: %v", users.calls)
	}
	if recipes.calls[0] != "get:recipe-1" || recipes.calls[1] != "hide:recipe-1" {
		t.Errorf("author lookup must happen before hiding, got %v", recipes.calls)
	}
}

func TestHideRecipeWithoutAuthorSkipsUserAction(t *testing.T) {
	t.Parallel()

	service, recipes, users, _ := newTestService()
	recipes.recipe = model.Recipe{ID: "recipe-1"}

	result, err := service.HideRecipe(context.Background(), HideRecipeInput{
		RecipeID:   "recipe-1",
		UserAction: enums.UserActionBan,
	})
	if !errors.Is(err, ErrAuthorUnknown) {
		t.Fatalf("expected ErrAuthorUnknown, got %v", err)
	}
	if len(users.calls) != 0 {
		t.Errorf("no user call expected, got %v", users.calls)
	}
	if result.RecipeStep.Status != StepSucceeded {
		t.Errorf("recipe step = %q, want succeeded", result.RecipeStep.Status)
	}
}

func TestResolveReportDismissUsesDefaults(t *testing.T) {
	t.Parallel()

	service, _, _, reports := newTestService()

	result, err := service.ResolveReport(context.Background(), ReportActionInput{
		ReportID: "report-1",
		Action:   enums.ReportActionDismiss,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reports.calls) != 1 || reports.calls[0] != "dismiss:report-1" {
		t.Fatalf("unexpected report calls: %v", reports.calls)
	}
	if reports.dismissReasons[0] != "Dismissed by moderator" {
		t.Errorf("dismiss reason = %q", reports.dismissReasons[0])
	}
	if reports.falseReports[0] {
		t.Error("dismiss must not flag the report as false by default")
	}
	if result.UserStep.Status != StepSucceeded {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestResolveReportHideWithSecondarySuspend(t *testing.T) {
	t.Parallel()

	service, recipes, _, reports := newTestService()

	result, err := service.ResolveReport(context.Background(), ReportActionInput{
		ReportID:       "report-1",
		RecipeID:       "recipe-1",
		Action:         enums.ReportActionHideRecipe,
		Reason:         "copyright violation",
		UserAction:     enums.UserActionSuspend,
		SuspensionDays: 30,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recipes.calls) != 1 || recipes.calls[0] != "hide:recipe-1" {
		t.Fatalf("unexpected recipe calls: %v", recipes.calls)
	}
	if len(reports.actions) != 1 || reports.actions[0] != enums.ReportActionSuspendUser {
		t.Fatalf("unexpected report actions: %v", reports.actions)
	}
	if reports.actionDays[0] == nil || *reports.actionDays[0] != 30 {
		t.Errorf("suspension days not forwarded: %v", reports.actionDays)
	}
	if result.RecipeStep.Status != StepSucceeded || result.UserStep.Status != StepSucceeded {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestResolveReportHideFailureAbortsSecondary(t *testing.T) {
	t.Parallel()

	service, recipes, _, reports := newTestService()
	recipes.hideErr = errors.New("recipe already deleted")

	result, err := service.ResolveReport(context.Background(), ReportActionInput{
		ReportID:   "report-1",
		RecipeID:   "recipe-1",
		Action:     enums.ReportActionHideRecipe,
		UserAction: enums.UserActionWarn,
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(reports.actions) != 0 {
		t.Fatalf("secondary action must not run after hide failure, got %v", reports.actions)
	}
	if result.RecipeStep.Status != StepFailed {
		t.Errorf("recipe step = %q, want failed", result.RecipeStep.Status)
	}
}

func TestResolveReportHideResolvesRecipeFromReport(t *testing.T) {
	t.Parallel()

	service, recipes, _, reports := newTestService()
	reports.report = model.ContentReport{ID: "report-1", RecipeID: "recipe-5"}

	_, err := service.ResolveReport(context.Background(), ReportActionInput{
		ReportID: "report-1",
		Action:   enums.ReportActionHideRecipe,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recipes.calls) != 1 || recipes.calls[0] != "hide:recipe-5" {
		t.Errorf("unexpected recipe calls: %v", recipes.calls)
	}
}

func TestResolveReportSanctionHidesBestEffort(t *testing.T) {
	t.Parallel()

	service, recipes, _, reports := newTestService()
	recipes.hideErr = errors.New("hide endpoint down")

	result, err := service.ResolveReport(context.Background(), ReportActionInput{
		ReportID:       "report-1",
		RecipeID:       "recipe-1",
		Action:         enums.ReportActionBanUser,
		Reason:         "repeat offender",
		AlsoHideRecipe: true,
	})
	if err != nil {
		t.Fatalf("ban must land despite hide failure, got %v", err)
	}
	if len(recipes.calls) != 1 || recipes.calls[0] != "hide:recipe-1" {
		t.Fatalf("hide must still be attempted, got %v", recipes.calls)
	}
	if len(reports.actions) != 1 || reports.actions[0] != enums.ReportActionBanUser {
		t.Fatalf("unexpected report actions: %v", reports.actions)
	}
	if result.RecipeStep.Status != StepFailed {
		t.Errorf("recipe step = %q, want failed", result.RecipeStep.Status)
	}
	if result.UserStep.Status != StepSucceeded {
		t.Errorf("user step = %q, want succeeded", result.UserStep.Status)
	}
	if !result.Partial() {
		t.Error("expected partial result")
	}
}

func TestResolveReportSanctionRequiresReason(t *testing.T) {
	t.Parallel()

	service, _, _, reports := newTestService()

	_, err := service.ResolveReport(context.Background(), ReportActionInput{
		ReportID: "report-1",
		Action:   enums.ReportActionSuspendUser,
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(reports.calls) != 0 {
		t.Errorf("no calls expected, got %v", reports.calls)
	}
}

func TestResolveReportSanctionOrdersHideFirst(t *testing.T) {
	t.Parallel()

	service, recipes, _, reports := newTestService()

	_, err := service.ResolveReport(context.Background(), ReportActionInput{
		ReportID:       "report-1",
		RecipeID:       "recipe-1",
		Action:         enums.ReportActionWarnUser,
		Reason:         "first strike",
		AlsoHideRecipe: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	order := append([]string{}, recipes.calls...)
	order = append(order, reports.calls...)
	if len(order) != 2 || order[0] != "hide:recipe-1" || order[1] != "action:report-1" {
		t.Errorf("unexpected call order: %v", order)
	}
}

func TestDirectUserSanctions(t *testing.T) {
	t.Parallel()

	service, _, users, _ := newTestService()
	ctx := context.Background()

	if err := service.WarnUser(ctx, "user-1", "be nice", ""); err != nil {
		t.Fatalf("warn: %v", err)
	}
	if err := service.SuspendUser(ctx, "user-1", 30, "spam"); err != nil {
		t.Fatalf("suspend: %v", err)
	}
	if err := service.BanUser(ctx, "user-1", "fraud"); err != nil {
		t.Fatalf("ban: %v", err)
	}
	if err := service.UnbanUser(ctx, "user-1", "appeal granted"); err != nil {
		t.Fatalf("unban: %v", err)
	}
	if err := service.UnsuspendUser(ctx, "user-1", "appeal granted"); err != nil {
		t.Fatalf("unsuspend: %v", err)
	}

	want := []string{"warn:user-1", "suspend:user-1", "ban:user-1", "unban:user-1", "unsuspend:user-1"}
	if len(users.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", users.calls, want)
	}
	for i := range want {
		if users.calls[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, users.calls[i], want[i])
		}
	}
}

func TestSuspendUserRejectsArbitraryDuration(t *testing.T) {
	t.Parallel()

	service, _, users, _ := newTestService()

	err := service.SuspendUser(context.Background(), "user-1", 3, "spam")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(users.calls) != 0 {
		t.Errorf("no calls expected, got %v", users.calls)
	}
}
