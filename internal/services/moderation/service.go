package moderation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/harryviennot/cuisto-admin/internal/domain/enums"
	"github.com/harryviennot/cuisto-admin/internal/domain/model"
)

var (
	ErrValidation    = errors.New("validation error")
	ErrAuthorUnknown = errors.New("recipe author is unknown")
)

// SuspensionDurations are the domain-enumerated suspension choices, in days.
var SuspensionDurations = []int{1, 7, 30, 180, 365}

const DefaultSuspensionDays = 7

const (
	defaultHideReason       = "Hidden by moderator"
	defaultReportHideReason = "Hidden due to content report"
	defaultDismissReason    = "Dismissed by moderator"
)

type RecipesRepo interface {
	Get(ctx context.Context, recipeID string) (model.Recipe, error)
	Hide(ctx context.Context, recipeID, reason string) error
	Unhide(ctx context.Context, recipeID, reason string) error
}

type UsersRepo interface {
	Warn(ctx context.Context, userID, reason, recipeID string) error
	Suspend(ctx context.Context, userID string, durationDays int, reason string) error
	Unsuspend(ctx context.Context, userID, reason string) error
	Ban(ctx context.Context, userID, reason string) error
	Unban(ctx context.Context, userID, reason string) error
	Delete(ctx context.Context, userID, reason string) error
}

type ReportsRepo interface {
	Get(ctx context.Context, reportID string) (model.ContentReport, error)
	Dismiss(ctx context.Context, reportID, reason, notes string, isFalseReport bool) (model.ContentReport, error)
	TakeAction(ctx context.Context, reportID string, action enums.ReportAction, reason, notes string, suspensionDays *int) error
}

// Service turns one composite moderator decision into the ordered remote
// calls it implies. Recipe visibility changes always go out before user
// standing changes, and a completed step is never rolled back.
type Service struct {
	recipes RecipesRepo
	users   UsersRepo
	reports ReportsRepo
}

func NewService(recipes RecipesRepo, users UsersRepo, reports ReportsRepo) *Service {
	return &Service{recipes: recipes, users: users, reports: reports}
}

type StepStatus string

const (
	StepSucceeded StepStatus = "succeeded"
	StepFailed    StepStatus = "failed"
	StepSkipped   StepStatus = "skipped"
)

// StepResult is the outcome of one remote call within a composite decision.
type StepResult struct {
	Name   string
	Status StepStatus
	Err    error
}

func succeeded(name string) StepResult {
	return StepResult{Name: name, Status: StepSucceeded}
}

func failed(name string, err error) StepResult {
	return StepResult{Name: name, Status: StepFailed, Err: err}
}

func skipped(name string) StepResult {
	return StepResult{Name: name, Status: StepSkipped}
}

// CompositeResult reports both steps of a composite decision so the caller
// can present a partial outcome honestly. After any success the caller must
// re-fetch the affected entities; the orchestrator never synthesizes state.
// DecisionID ties the two steps together in logs and client-side reporting.
type CompositeResult struct {
	DecisionID string
	RecipeStep StepResult
	UserStep   StepResult
}

func (r CompositeResult) Partial() bool {
	return r.RecipeStep.Status == StepSucceeded && r.UserStep.Status == StepFailed ||
		r.RecipeStep.Status == StepFailed && r.UserStep.Status == StepSucceeded
}

type HideRecipeInput struct {
	RecipeID string
	Reason   string
	// AuthorID may be provided by a caller that already holds the recipe;
	// left empty it is resolved from the recipe detail when needed.
	AuthorID       string
	UserAction     enums.UserAction
	SuspensionDays int
}

// HideRecipe runs the recipe-centered composite decision: hide the recipe,
// then optionally sanction its author. A hide failure aborts the whole
// decision; a sanction failure leaves the recipe hidden.
func (s *Service) HideRecipe(ctx context.Context, input HideRecipeInput) (CompositeResult, error) {
	result := CompositeResult{
		DecisionID: uuid.NewString(),
		RecipeStep: skipped("hide_recipe"),
		UserStep:   skipped("user_action"),
	}

	if s.recipes == nil || s.users == nil {
		return result, fmt.Errorf("moderation repos are not configured")
	}
	if strings.TrimSpace(input.RecipeID) == "" {
		return result, fmt.Errorf("%w: recipe id is required", ErrValidation)
	}

	reason := strings.TrimSpace(input.Reason)
	if reason == "" {
		reason = defaultHideReason
	}

	suspensionDays := input.SuspensionDays
	if input.UserAction == enums.UserActionSuspend {
		if suspensionDays == 0 {
			suspensionDays = DefaultSuspensionDays
		}
		if !validSuspensionDays(suspensionDays) {
			return result, fmt.Errorf("%w: invalid suspension duration: %d days", ErrValidation, suspensionDays)
		}
	}

	authorID := strings.TrimSpace(input.AuthorID)
	if input.UserAction != enums.UserActionNone && authorID == "" {
		recipe, err := s.recipes.Get(ctx, input.RecipeID)
		if err != nil {
			return result, err
		}
		authorID = strings.TrimSpace(recipe.CreatedBy)
	}

	if err := s.recipes.Hide(ctx, input.RecipeID, reason); err != nil {
		result.RecipeStep = failed("hide_recipe", err)
		return result, err
	}
	result.RecipeStep = succeeded("hide_recipe")

	if input.UserAction == enums.UserActionNone {
		return result, nil
	}
	if authorID == "" {
		// Hiding stands; there is simply no author to act on.
		result.UserStep = skipped(string(input.UserAction))
		return result, ErrAuthorUnknown
	}

	var err error
	switch input.UserAction {
	case enums.UserActionWarn:
		err = s.users.Warn(ctx, authorID, reason, input.RecipeID)
	case enums.UserActionSuspend:
		err = s.users.Suspend(ctx, authorID, suspensionDays, reason)
	case enums.UserActionBan:
		err = s.users.Ban(ctx, authorID, reason)
	default:
		err = fmt.Errorf("%w: unsupported user action %q", ErrValidation, input.UserAction)
	}
	if err != nil {
		result.UserStep = failed(string(input.UserAction), err)
		return result, err
	}

	result.UserStep = succeeded(string(input.UserAction))
	return result, nil
}

// UnhideRecipe restores a hidden recipe. Single step, no user side effects.
func (s *Service) UnhideRecipe(ctx context.Context, recipeID, reason string) error {
	if s.recipes == nil {
		return fmt.Errorf("moderation repos are not configured")
	}
	if strings.TrimSpace(recipeID) == "" {
		return fmt.Errorf("%w: recipe id is required", ErrValidation)
	}
	trimmed := strings.TrimSpace(reason)
	if trimmed == "" {
		return fmt.Errorf("%w: reason is required", ErrValidation)
	}
	return s.recipes.Unhide(ctx, recipeID, trimmed)
}

type ReportActionInput struct {
	ReportID string
	Action   enums.ReportAction
	Reason   string
	Notes    string
	// RecipeID is the report's recipe reference; left empty it is resolved
	// from the report when a hide is requested.
	RecipeID       string
	AlsoHideRecipe bool
	// UserAction is the optional secondary sanction when Action is
	// hide_recipe.
	UserAction     enums.UserAction
	SuspensionDays int
}

// ResolveReport runs the report-centered composite decision. User sanctions
// are routed through the report's take-action endpoint so the audit record
// stays linked to the report.
func (s *Service) ResolveReport(ctx context.Context, input ReportActionInput) (CompositeResult, error) {
	result := CompositeResult{
		DecisionID: uuid.NewString(),
		RecipeStep: skipped("hide_recipe"),
		UserStep:   skipped("report_action"),
	}

	if s.reports == nil || s.recipes == nil {
		return result, fmt.Errorf("moderation repos are not configured")
	}
	if strings.TrimSpace(input.ReportID) == "" {
		return result, fmt.Errorf("%w: report id is required", ErrValidation)
	}

	switch input.Action {
	case enums.ReportActionDismiss:
		return s.dismissReport(ctx, input, result)
	case enums.ReportActionHideRecipe:
		return s.hideFromReport(ctx, input, result)
	case enums.ReportActionWarnUser, enums.ReportActionSuspendUser, enums.ReportActionBanUser:
		return s.sanctionFromReport(ctx, input, result)
	default:
		return result, fmt.Errorf("%w: unsupported report action %q", ErrValidation, input.Action)
	}
}

func (s *Service) dismissReport(ctx context.Context, input ReportActionInput, result CompositeResult) (CompositeResult, error) {
	reason := strings.TrimSpace(input.Reason)
	if reason == "" {
		reason = defaultDismissReason
	}

	if _, err := s.reports.Dismiss(ctx, input.ReportID, reason, input.Notes, false); err != nil {
		result.UserStep = failed("dismiss", err)
		return result, err
	}
	result.UserStep = succeeded("dismiss")
	return result, nil
}

func (s *Service) hideFromReport(ctx context.Context, input ReportActionInput, result CompositeResult) (CompositeResult, error) {
	reason := strings.TrimSpace(input.Reason)
	if reason == "" {
		reason = defaultReportHideReason
	}

	recipeID, err := s.resolveReportRecipe(ctx, input)
	if err != nil {
		return result, err
	}
	if recipeID == "" {
		return result, fmt.Errorf("%w: report has no recipe to hide", ErrValidation)
	}

	if err := s.recipes.Hide(ctx, recipeID, reason); err != nil {
		result.RecipeStep = failed("hide_recipe", err)
		return result, err
	}
	result.RecipeStep = succeeded("hide_recipe")

	if input.UserAction == enums.UserActionNone {
		return result, nil
	}

	secondary, suspensionDays, err := secondaryReportAction(input.UserAction, input.SuspensionDays)
	if err != nil {
		result.UserStep = failed(string(input.UserAction), err)
		return result, err
	}
	if err := s.reports.TakeAction(ctx, input.ReportID, secondary, reason, input.Notes, suspensionDays); err != nil {
		result.UserStep = failed(string(secondary), err)
		return result, err
	}
	result.UserStep = succeeded(string(secondary))
	return result, nil
}

func (s *Service) sanctionFromReport(ctx context.Context, input ReportActionInput, result CompositeResult) (CompositeResult, error) {
	reason := strings.TrimSpace(input.Reason)
	if reason == "" {
		return result, fmt.Errorf("%w: reason is required", ErrValidation)
	}

	var suspensionDays *int
	if input.Action == enums.ReportActionSuspendUser {
		days := input.SuspensionDays
		if days == 0 {
			days = DefaultSuspensionDays
		}
		if !validSuspensionDays(days) {
			return result, fmt.Errorf("%w: invalid suspension duration: %d days", ErrValidation, days)
		}
		suspensionDays = &days
	}

	// Hiding the content comes first and is best effort: a failure here
	// must not leave the user sanctioned while the report action is dropped,
	// so the report action is attempted regardless.
	if input.AlsoHideRecipe {
		recipeID, err := s.resolveReportRecipe(ctx, input)
		if err != nil {
			result.RecipeStep = failed("hide_recipe", err)
		} else if recipeID != "" {
			if hideErr := s.recipes.Hide(ctx, recipeID, reason); hideErr != nil {
				result.RecipeStep = failed("hide_recipe", hideErr)
			} else {
				result.RecipeStep = succeeded("hide_recipe")
			}
		}
	}

	if err := s.reports.TakeAction(ctx, input.ReportID, input.Action, reason, input.Notes, suspensionDays); err != nil {
		result.UserStep = failed(string(input.Action), err)
		return result, err
	}
	result.UserStep = succeeded(string(input.Action))

	// The report action landed; a best-effort hide failure is still
	// reported but must not mask the overall outcome.
	return result, nil
}

func (s *Service) resolveReportRecipe(ctx context.Context, input ReportActionInput) (string, error) {
	if trimmed := strings.TrimSpace(input.RecipeID); trimmed != "" {
		return trimmed, nil
	}
	report, err := s.reports.Get(ctx, input.ReportID)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(report.RecipeID), nil
}

func secondaryReportAction(action enums.UserAction, days int) (enums.ReportAction, *int, error) {
	switch action {
	case enums.UserActionWarn:
		return enums.ReportActionWarnUser, nil, nil
	case enums.UserActionSuspend:
		if days == 0 {
			days = DefaultSuspensionDays
		}
		if !validSuspensionDays(days) {
			return "", nil, fmt.Errorf("%w: invalid suspension duration: %d days", ErrValidation, days)
		}
		return enums.ReportActionSuspendUser, &days, nil
	case enums.UserActionBan:
		return enums.ReportActionBanUser, nil, nil
	default:
		return "", nil, fmt.Errorf("%w: unsupported user action %q", ErrValidation, action)
	}
}

// WarnUser issues a direct warning from the user detail view.
func (s *Service) WarnUser(ctx context.Context, userID, reason, recipeID string) error {
	if err := s.requireUserInput(userID, reason); err != nil {
		return err
	}
	return s.users.Warn(ctx, userID, strings.TrimSpace(reason), recipeID)
}

func (s *Service) SuspendUser(ctx context.Context, userID string, durationDays int, reason string) error {
	if err := s.requireUserInput(userID, reason); err != nil {
		return err
	}
	if durationDays == 0 {
		durationDays = DefaultSuspensionDays
	}
	if !validSuspensionDays(durationDays) {
		return fmt.Errorf("%w: invalid suspension duration: %d days", ErrValidation, durationDays)
	}
	return s.users.Suspend(ctx, userID, durationDays, strings.TrimSpace(reason))
}

func (s *Service) UnsuspendUser(ctx context.Context, userID, reason string) error {
	if err := s.requireUserInput(userID, reason); err != nil {
		return err
	}
	return s.users.Unsuspend(ctx, userID, strings.TrimSpace(reason))
}

func (s *Service) BanUser(ctx context.Context, userID, reason string) error {
	if err := s.requireUserInput(userID, reason); err != nil {
		return err
	}
	return s.users.Ban(ctx, userID, strings.TrimSpace(reason))
}

func (s *Service) UnbanUser(ctx context.Context, userID, reason string) error {
	if err := s.requireUserInput(userID, reason); err != nil {
		return err
	}
	return s.users.Unban(ctx, userID, strings.TrimSpace(reason))
}

func (s *Service) DeleteUser(ctx context.Context, userID, reason string) error {
	if err := s.requireUserInput(userID, reason); err != nil {
		return err
	}
	return s.users.Delete(ctx, userID, strings.TrimSpace(reason))
}

func (s *Service) requireUserInput(userID, reason string) error {
	if s.users == nil {
		return fmt.Errorf("moderation repos are not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("%w: user id is required", ErrValidation)
	}
	if strings.TrimSpace(reason) == "" {
		return fmt.Errorf("%w: reason is required", ErrValidation)
	}
	return nil
}

func validSuspensionDays(days int) bool {
	for _, allowed := range SuspensionDurations {
		if days == allowed {
			return true
		}
	}
	return false
}
