package dto

import (
	"time"

	"github.com/harryviennot/cuisto-admin/internal/domain/model"
	"github.com/harryviennot/cuisto-admin/internal/services/moderation"
	"github.com/harryviennot/cuisto-admin/internal/services/stats"
)

type UserSummaryResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

func FromUserSummary(summary *model.UserSummary) *UserSummaryResponse {
	if summary == nil {
		return nil
	}
	return &UserSummaryResponse{
		ID:        summary.ID,
		Name:      summary.Name,
		AvatarURL: summary.AvatarURL,
	}
}

type RecipeSummaryResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	ImageURL  string `json:"image_url,omitempty"`
	CreatedBy string `json:"created_by,omitempty"`
	IsPublic  bool   `json:"is_public"`
	SourceURL string `json:"source_url,omitempty"`
}

func FromRecipeSummary(summary *model.RecipeSummary) *RecipeSummaryResponse {
	if summary == nil {
		return nil
	}
	return &RecipeSummaryResponse{
		ID:        summary.ID,
		Title:     summary.Title,
		ImageURL:  summary.ImageURL,
		CreatedBy: summary.CreatedBy,
		IsPublic:  summary.IsPublic,
		SourceURL: summary.SourceURL,
	}
}

type ReportResponse struct {
	ID              string     `json:"id"`
	RecipeID        string     `json:"recipe_id"`
	ReporterUserID  string     `json:"reporter_user_id"`
	Reason          string     `json:"reason"`
	Description     string     `json:"description,omitempty"`
	Status          string     `json:"status"`
	Priority        int        `json:"priority"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
	ResolvedAt      *time.Time `json:"resolved_at,omitempty"`
	ResolvedBy      string     `json:"resolved_by,omitempty"`
	ResolutionNotes string     `json:"resolution_notes,omitempty"`

	Recipe   *RecipeSummaryResponse `json:"recipe,omitempty"`
	Reporter *UserSummaryResponse   `json:"reporter,omitempty"`
}

func FromReport(report model.ContentReport) ReportResponse {
	return ReportResponse{
		ID:              report.ID,
		RecipeID:        report.RecipeID,
		ReporterUserID:  report.ReporterUserID,
		Reason:          string(report.Reason),
		Description:     report.Description,
		Status:          string(report.Status),
		Priority:        report.Priority,
		CreatedAt:       report.CreatedAt,
		UpdatedAt:       report.UpdatedAt,
		ResolvedAt:      report.ResolvedAt,
		ResolvedBy:      report.ResolvedBy,
		ResolutionNotes: report.ResolutionNotes,
		Recipe:          FromRecipeSummary(report.Recipe),
		Reporter:        FromUserSummary(report.Reporter),
	}
}

type ReportQueueResponse struct {
	Reports []ReportResponse `json:"reports"`
	Total   int              `json:"total"`
}

func FromReportQueue(queue model.ReportQueue) ReportQueueResponse {
	reports := make([]ReportResponse, 0, len(queue.Reports))
	for _, report := range queue.Reports {
		reports = append(reports, FromReport(report))
	}
	return ReportQueueResponse{Reports: reports, Total: queue.Total}
}

type FeedbackResponse struct {
	ID          string     `json:"id"`
	RecipeID    string     `json:"recipe_id"`
	UserID      string     `json:"user_id"`
	Category    string     `json:"category"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
	WasHelpful  *bool      `json:"was_helpful,omitempty"`

	Recipe *RecipeSummaryResponse `json:"recipe,omitempty"`
	User   *UserSummaryResponse   `json:"user,omitempty"`
}

func FromFeedback(feedback model.ExtractionFeedback) FeedbackResponse {
	return FeedbackResponse{
		ID:          feedback.ID,
		RecipeID:    feedback.RecipeID,
		UserID:      feedback.UserID,
		Category:    string(feedback.Category),
		Description: feedback.Description,
		Status:      string(feedback.Status),
		CreatedAt:   feedback.CreatedAt,
		ResolvedAt:  feedback.ResolvedAt,
		WasHelpful:  feedback.WasHelpful,
		Recipe:      FromRecipeSummary(feedback.Recipe),
		User:        FromUserSummary(feedback.User),
	}
}

type FeedbackQueueResponse struct {
	Feedback []FeedbackResponse `json:"feedback"`
	Total    int                `json:"total"`
}

func FromFeedbackQueue(queue model.FeedbackQueue) FeedbackQueueResponse {
	feedback := make([]FeedbackResponse, 0, len(queue.Feedback))
	for _, item := range queue.Feedback {
		feedback = append(feedback, FromFeedback(item))
	}
	return FeedbackQueueResponse{Feedback: feedback, Total: queue.Total}
}

type IngredientResponse struct {
	Name     string   `json:"name"`
	Quantity *float64 `json:"quantity,omitempty"`
	Unit     string   `json:"unit,omitempty"`
	Notes    string   `json:"notes,omitempty"`
}

type InstructionStepResponse struct {
	StepNumber  int    `json:"step_number"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description"`
}

type RecipeResponse struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	ImageURL     string     `json:"image_url,omitempty"`
	SourceType   string     `json:"source_type,omitempty"`
	SourceURL    string     `json:"source_url,omitempty"`
	IsPublic     bool       `json:"is_public"`
	IsDraft      bool       `json:"is_draft"`
	IsHidden     bool       `json:"is_hidden"`
	HiddenAt     *time.Time `json:"hidden_at,omitempty"`
	HiddenReason string     `json:"hidden_reason,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	CreatedBy    string     `json:"created_by"`

	Ingredients  []IngredientResponse      `json:"ingredients,omitempty"`
	Instructions []InstructionStepResponse `json:"instructions,omitempty"`

	Uploader *UserSummaryResponse `json:"uploader,omitempty"`
	HiddenBy *UserSummaryResponse `json:"hidden_by,omitempty"`
}

func FromRecipe(recipe model.Recipe) RecipeResponse {
	ingredients := make([]IngredientResponse, 0, len(recipe.Ingredients))
	for _, ingredient := range recipe.Ingredients {
		ingredients = append(ingredients, IngredientResponse{
			Name:     ingredient.Name,
			Quantity: ingredient.Quantity,
			Unit:     ingredient.Unit,
			Notes:    ingredient.Notes,
		})
	}

	instructions := make([]InstructionStepResponse, 0, len(recipe.Instructions))
	for _, step := range recipe.Instructions {
		instructions = append(instructions, InstructionStepResponse{
			StepNumber:  step.StepNumber,
			Title:       step.Title,
			Description: step.Description,
		})
	}

	return RecipeResponse{
		ID:           recipe.ID,
		Title:        recipe.Title,
		Description:  recipe.Description,
		ImageURL:     recipe.ImageURL,
		SourceType:   recipe.SourceType,
		SourceURL:    recipe.SourceURL,
		IsPublic:     recipe.IsPublic,
		IsDraft:      recipe.IsDraft,
		IsHidden:     recipe.IsHidden,
		HiddenAt:     recipe.HiddenAt,
		HiddenReason: recipe.HiddenReason,
		CreatedAt:    recipe.CreatedAt,
		CreatedBy:    recipe.CreatedBy,
		Ingredients:  ingredients,
		Instructions: instructions,
		Uploader:     FromUserSummary(recipe.Uploader),
		HiddenBy:     FromUserSummary(recipe.HiddenBy),
	}
}

type RecipeListResponse struct {
	Recipes []RecipeResponse `json:"recipes"`
	Total   int              `json:"total"`
}

func FromRecipeList(list model.RecipeList) RecipeListResponse {
	recipes := make([]RecipeResponse, 0, len(list.Recipes))
	for _, recipe := range list.Recipes {
		recipes = append(recipes, FromRecipe(recipe))
	}
	return RecipeListResponse{Recipes: recipes, Total: list.Total}
}

type UserListItemResponse struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	AvatarURL    string     `json:"avatar_url,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	LastSignInAt *time.Time `json:"last_sign_in_at,omitempty"`

	ModerationStatus string `json:"moderation_status"`
	WarningCount     int    `json:"warning_count"`
	ReportCount      int    `json:"report_count"`

	ReportsSubmitted         int     `json:"reports_submitted"`
	FalseReportCount         int     `json:"false_report_count"`
	ReporterReliabilityScore float64 `json:"reporter_reliability_score"`

	IsPremium bool `json:"is_premium"`
}

type UserListResponse struct {
	Users []UserListItemResponse `json:"users"`
	Total int                    `json:"total"`
}

func FromUserList(list model.UserList) UserListResponse {
	users := make([]UserListItemResponse, 0, len(list.Users))
	for _, user := range list.Users {
		users = append(users, UserListItemResponse{
			ID:                       user.ID,
			Name:                     user.Name,
			Email:                    user.Email,
			AvatarURL:                user.AvatarURL,
			CreatedAt:                user.CreatedAt,
			LastSignInAt:             user.LastSignInAt,
			ModerationStatus:         string(user.ModerationStatus),
			WarningCount:             user.WarningCount,
			ReportCount:              user.ReportCount,
			ReportsSubmitted:         user.ReportsSubmitted,
			FalseReportCount:         user.FalseReportCount,
			ReporterReliabilityScore: user.ReporterReliabilityScore,
			IsPremium:                user.IsPremium,
		})
	}
	return UserListResponse{Users: users, Total: list.Total}
}

type UserModerationResponse struct {
	Status                   string     `json:"status"`
	WarningCount             int        `json:"warning_count"`
	ReportCount              int        `json:"report_count"`
	FalseReportCount         int        `json:"false_report_count"`
	SuspendedUntil           *time.Time `json:"suspended_until,omitempty"`
	BanReason                string     `json:"ban_reason,omitempty"`
	ReporterReliabilityScore float64    `json:"reporter_reliability_score"`
}

type UserWarningResponse struct {
	ID             string     `json:"id"`
	IssuedBy       string     `json:"issued_by"`
	Reason         string     `json:"reason"`
	RecipeID       string     `json:"recipe_id,omitempty"`
	AcknowledgedAt *time.Time `json:"acknowledged_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type ModerationActionResponse struct {
	ID             string               `json:"id"`
	ModeratorID    string               `json:"moderator_id"`
	ActionType     string               `json:"action_type"`
	Reason         string               `json:"reason"`
	Notes          string               `json:"notes,omitempty"`
	DurationDays   *int                 `json:"duration_days,omitempty"`
	TargetUserID   string               `json:"target_user_id,omitempty"`
	TargetRecipeID string               `json:"target_recipe_id,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
	Moderator      *UserSummaryResponse `json:"moderator,omitempty"`
}

type UserDetailResponse struct {
	User             *UserSummaryResponse       `json:"user,omitempty"`
	Email            string                     `json:"email"`
	CreatedAt        *time.Time                 `json:"created_at,omitempty"`
	LastSignInAt     *time.Time                 `json:"last_sign_in_at,omitempty"`
	Moderation       UserModerationResponse     `json:"moderation"`
	Warnings         []UserWarningResponse      `json:"warnings"`
	Actions          []ModerationActionResponse `json:"actions"`
	Feedback         []FeedbackResponse         `json:"feedback"`
	ReportsSubmitted int                        `json:"reports_submitted"`
	IsPremium        bool                       `json:"is_premium"`
}

func FromUserDetail(detail model.UserDetail) UserDetailResponse {
	warnings := make([]UserWarningResponse, 0, len(detail.Warnings))
	for _, warning := range detail.Warnings {
		warnings = append(warnings, UserWarningResponse{
			ID:             warning.ID,
			IssuedBy:       warning.IssuedBy,
			Reason:         warning.Reason,
			RecipeID:       warning.RecipeID,
			AcknowledgedAt: warning.AcknowledgedAt,
			CreatedAt:      warning.CreatedAt,
		})
	}

	actions := make([]ModerationActionResponse, 0, len(detail.Actions))
	for _, action := range detail.Actions {
		actions = append(actions, ModerationActionResponse{
			ID:             action.ID,
			ModeratorID:    action.ModeratorID,
			ActionType:     string(action.ActionType),
			Reason:         action.Reason,
			Notes:          action.Notes,
			DurationDays:   action.DurationDays,
			TargetUserID:   action.TargetUserID,
			TargetRecipeID: action.TargetRecipeID,
			CreatedAt:      action.CreatedAt,
			Moderator:      FromUserSummary(action.Moderator),
		})
	}

	feedback := make([]FeedbackResponse, 0, len(detail.Feedback))
	for _, item := range detail.Feedback {
		feedback = append(feedback, FromFeedback(item))
	}

	return UserDetailResponse{
		User:         FromUserSummary(detail.User),
		Email:        detail.Email,
		CreatedAt:    detail.CreatedAt,
		LastSignInAt: detail.LastSignInAt,
		Moderation: UserModerationResponse{
			Status:                   string(detail.Moderation.Status),
			WarningCount:             detail.Moderation.WarningCount,
			ReportCount:              detail.Moderation.ReportCount,
			FalseReportCount:         detail.Moderation.FalseReportCount,
			SuspendedUntil:           detail.Moderation.SuspendedUntil,
			BanReason:                detail.Moderation.BanReason,
			ReporterReliabilityScore: detail.Moderation.ReporterReliabilityScore,
		},
		Warnings:         warnings,
		Actions:          actions,
		Feedback:         feedback,
		ReportsSubmitted: detail.ReportsSubmitted,
		IsPremium:        detail.IsPremium,
	}
}

// StepResponse is one leg of a composite moderation decision. Error carries
// the core API's own message so the moderator sees it verbatim.
type StepResponse struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type CompositeResultResponse struct {
	DecisionID string       `json:"decision_id"`
	RecipeStep StepResponse `json:"recipe_step"`
	UserStep   StepResponse `json:"user_step"`
	Partial    bool         `json:"partial"`
}

func FromCompositeResult(result moderation.CompositeResult) CompositeResultResponse {
	return CompositeResultResponse{
		DecisionID: result.DecisionID,
		RecipeStep: fromStep(result.RecipeStep),
		UserStep:   fromStep(result.UserStep),
		Partial:    result.Partial(),
	}
}

func fromStep(step moderation.StepResult) StepResponse {
	response := StepResponse{
		Name:   step.Name,
		Status: string(step.Status),
	}
	if step.Err != nil {
		response.Error = step.Err.Error()
	}
	return response
}

type StatisticsResponse struct {
	Reports struct {
		ByStatus        map[string]int `json:"by_status"`
		PendingByReason map[string]int `json:"pending_by_reason"`
	} `json:"reports"`
	Feedback struct {
		ByStatus          map[string]int `json:"by_status"`
		PendingByCategory map[string]int `json:"pending_by_category"`
	} `json:"feedback"`
	Users struct {
		GoodStanding int `json:"good_standing"`
		Warned       int `json:"warned"`
		Suspended    int `json:"suspended"`
		Banned       int `json:"banned"`
	} `json:"users"`
	Actions struct {
		ByType     map[string]int `json:"by_type"`
		Total      int            `json:"total"`
		PeriodDays int            `json:"period_days"`
	} `json:"actions"`
}

func FromStatistics(statistics model.Statistics) StatisticsResponse {
	var response StatisticsResponse
	response.Reports.ByStatus = statistics.Reports.ByStatus
	response.Reports.PendingByReason = statistics.Reports.PendingByReason
	response.Feedback.ByStatus = statistics.Feedback.ByStatus
	response.Feedback.PendingByCategory = statistics.Feedback.PendingByCategory
	response.Users.GoodStanding = statistics.Users.GoodStanding
	response.Users.Warned = statistics.Users.Warned
	response.Users.Suspended = statistics.Users.Suspended
	response.Users.Banned = statistics.Users.Banned
	response.Actions.ByType = statistics.Actions.ByType
	response.Actions.Total = statistics.Actions.Total
	response.Actions.PeriodDays = statistics.Actions.PeriodDays
	return response
}

type OverviewResponse struct {
	Statistics    StatisticsResponse `json:"statistics"`
	RecentReports []ReportResponse   `json:"recent_reports"`
}

func FromOverview(overview stats.Overview) OverviewResponse {
	recent := make([]ReportResponse, 0, len(overview.RecentReports))
	for _, report := range overview.RecentReports {
		recent = append(recent, FromReport(report))
	}
	return OverviewResponse{
		Statistics:    FromStatistics(overview.Statistics),
		RecentReports: recent,
	}
}

type SessionResponse struct {
	UserID      string    `json:"user_id"`
	Email       string    `json:"email"`
	IsModerator bool      `json:"is_moderator"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type PushReceiptResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message,omitempty"`
	SentCount   int    `json:"sent_count"`
	FailedCount int    `json:"failed_count"`
}

func FromPushReceipt(receipt model.PushReceipt) PushReceiptResponse {
	return PushReceiptResponse{
		Success:     receipt.Success,
		Message:     receipt.Message,
		SentCount:   receipt.SentCount,
		FailedCount: receipt.FailedCount,
	}
}
