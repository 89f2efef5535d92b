package adminhttp

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/harryviennot/cuisto-admin/internal/domain/enums"
	"github.com/harryviennot/cuisto-admin/internal/domain/model"
)

type UsersRepo struct {
	client *Client
}

func NewUsersRepo(client *Client) *UsersRepo {
	return &UsersRepo{client: client}
}

type userModerationDTO struct {
	ID                       string     `json:"id"`
	UserID                   string     `json:"user_id"`
	Status                   string     `json:"status"`
	WarningCount             int        `json:"warning_count"`
	ReportCount              int        `json:"report_count"`
	FalseReportCount         int        `json:"false_report_count"`
	SuspendedUntil           *time.Time `json:"suspended_until"`
	BanReason                string     `json:"ban_reason"`
	ReporterReliabilityScore float64    `json:"reporter_reliability_score"`
	CreatedAt                time.Time  `json:"created_at"`
	UpdatedAt                time.Time  `json:"updated_at"`
}

func (dto userModerationDTO) toModel() model.UserModeration {
	return model.UserModeration{
		ID:                       dto.ID,
		UserID:                   strings.TrimSpace(dto.UserID),
		Status:                   enums.UserStatus(strings.TrimSpace(dto.Status)),
		WarningCount:             dto.WarningCount,
		ReportCount:              dto.ReportCount,
		FalseReportCount:         dto.FalseReportCount,
		SuspendedUntil:           timeOrNil(dto.SuspendedUntil),
		BanReason:                strings.TrimSpace(dto.BanReason),
		ReporterReliabilityScore: dto.ReporterReliabilityScore,
		CreatedAt:                dto.CreatedAt,
		UpdatedAt:                dto.UpdatedAt,
	}
}

type userWarningDTO struct {
	ID             string     `json:"id"`
	UserID         string     `json:"user_id"`
	IssuedBy       string     `json:"issued_by"`
	Reason         string     `json:"reason"`
	RecipeID       string     `json:"recipe_id"`
	AcknowledgedAt *time.Time `json:"acknowledged_at"`
	CreatedAt      time.Time  `json:"created_at"`
}

type moderationActionDTO struct {
	ID             string    `json:"id"`
	ModeratorID    string    `json:"moderator_id"`
	ActionType     string    `json:"action_type"`
	Reason         string    `json:"reason"`
	Notes          string    `json:"notes"`
	DurationDays   *int      `json:"duration_days"`
	TargetUserID   string    `json:"target_user_id"`
	TargetRecipeID string    `json:"target_recipe_id"`
	CreatedAt      time.Time `json:"created_at"`

	Moderator *userSummaryDTO `json:"moderator"`
}

func (dto moderationActionDTO) toModel() model.ModerationAction {
	return model.ModerationAction{
		ID:             dto.ID,
		ModeratorID:    strings.TrimSpace(dto.ModeratorID),
		ActionType:     enums.ActionType(strings.TrimSpace(dto.ActionType)),
		Reason:         strings.TrimSpace(dto.Reason),
		Notes:          strings.TrimSpace(dto.Notes),
		DurationDays:   dto.DurationDays,
		TargetUserID:   strings.TrimSpace(dto.TargetUserID),
		TargetRecipeID: strings.TrimSpace(dto.TargetRecipeID),
		CreatedAt:      dto.CreatedAt,
		Moderator:      dto.Moderator.toModel(),
	}
}

type userDetailDTO struct {
	User             *userSummaryDTO       `json:"user"`
	Email            string                `json:"email"`
	CreatedAt        *time.Time            `json:"created_at"`
	LastSignInAt     *time.Time            `json:"last_sign_in_at"`
	Moderation       userModerationDTO     `json:"moderation"`
	Warnings         []userWarningDTO      `json:"warnings"`
	Actions          []moderationActionDTO `json:"actions"`
	Feedback         []feedbackDTO         `json:"feedback"`
	ReportsSubmitted int                   `json:"reports_submitted"`
	IsPremium        bool                  `json:"is_premium"`
}

func (dto userDetailDTO) toModel() model.UserDetail {
	warnings := make([]model.UserWarning, 0, len(dto.Warnings))
	for _, warning := range dto.Warnings {
		warnings = append(warnings, model.UserWarning{
			ID:             warning.ID,
			UserID:         strings.TrimSpace(warning.UserID),
			IssuedBy:       strings.TrimSpace(warning.IssuedBy),
			Reason:         strings.TrimSpace(warning.Reason),
			RecipeID:       strings.TrimSpace(warning.RecipeID),
			AcknowledgedAt: timeOrNil(warning.AcknowledgedAt),
			CreatedAt:      warning.CreatedAt,
		})
	}

	actions := make([]model.ModerationAction, 0, len(dto.Actions))
	for _, action := range dto.Actions {
		actions = append(actions, action.toModel())
	}

	feedback := make([]model.ExtractionFeedback, 0, len(dto.Feedback))
	for _, item := range dto.Feedback {
		feedback = append(feedback, item.toModel())
	}

	return model.UserDetail{
		User:             dto.User.toModel(),
		Email:            strings.TrimSpace(dto.Email),
		CreatedAt:        timeOrNil(dto.CreatedAt),
		LastSignInAt:     timeOrNil(dto.LastSignInAt),
		Moderation:       dto.Moderation.toModel(),
		Warnings:         warnings,
		Actions:          actions,
		Feedback:         feedback,
		ReportsSubmitted: dto.ReportsSubmitted,
		IsPremium:        dto.IsPremium,
	}
}

type userListItemDTO struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	AvatarURL    string     `json:"avatar_url"`
	CreatedAt    time.Time  `json:"created_at"`
	LastSignInAt *time.Time `json:"last_sign_in_at"`

	ModerationStatus string `json:"moderation_status"`
	WarningCount     int    `json:"warning_count"`
	ReportCount      int    `json:"report_count"`

	ReportsSubmitted         int     `json:"reports_submitted"`
	FalseReportCount         int     `json:"false_report_count"`
	ReporterReliabilityScore float64 `json:"reporter_reliability_score"`

	IsPremium bool `json:"is_premium"`
}

type userListDTO struct {
	Users []userListItemDTO `json:"users"`
	Total int               `json:"total"`
}

func (r *UsersRepo) List(ctx context.Context, filter model.UserListFilter) (model.UserList, error) {
	query := url.Values{}
	if filter.Status != "" {
		query.Set("status", string(filter.Status))
	}
	if filter.IsPremium != nil {
		query.Set("is_premium", strconv.FormatBool(*filter.IsPremium))
	}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	if filter.SortBy != "" {
		query.Set("sort_by", filter.SortBy)
	}
	if filter.SortOrder != "" {
		query.Set("sort_order", filter.SortOrder)
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}
	if filter.Offset > 0 {
		query.Set("offset", strconv.Itoa(filter.Offset))
	}

	var response userListDTO
	if err := r.client.DoJSON(ctx, http.MethodGet, "/admin/users", query, nil, &response); err != nil {
		return model.UserList{}, err
	}

	users := make([]model.UserListItem, 0, len(response.Users))
	for _, dto := range response.Users {
		users = append(users, model.UserListItem{
			ID:                       dto.ID,
			Name:                     strings.TrimSpace(dto.Name),
			Email:                    strings.TrimSpace(dto.Email),
			AvatarURL:                strings.TrimSpace(dto.AvatarURL),
			CreatedAt:                dto.CreatedAt,
			LastSignInAt:             timeOrNil(dto.LastSignInAt),
			ModerationStatus:         enums.UserStatus(strings.TrimSpace(dto.ModerationStatus)),
			WarningCount:             dto.WarningCount,
			ReportCount:              dto.ReportCount,
			ReportsSubmitted:         dto.ReportsSubmitted,
			FalseReportCount:         dto.FalseReportCount,
			ReporterReliabilityScore: dto.ReporterReliabilityScore,
			IsPremium:                dto.IsPremium,
		})
	}
	return model.UserList{Users: users, Total: response.Total}, nil
}

func (r *UsersRepo) Get(ctx context.Context, userID string) (model.UserDetail, error) {
	var response userDetailDTO
	err := r.client.DoJSON(ctx, http.MethodGet, "/admin/users/"+url.PathEscape(userID), nil, nil, &response)
	if err != nil {
		return model.UserDetail{}, err
	}
	return response.toModel(), nil
}

type warnRequestDTO struct {
	Reason   string `json:"reason"`
	RecipeID string `json:"recipe_id,omitempty"`
}

// Warn issues a warning; recipeID links the warning to the offending recipe
// when the sanction came from a recipe-centered decision.
func (r *UsersRepo) Warn(ctx context.Context, userID, reason, recipeID string) error {
	request := warnRequestDTO{
		Reason:   strings.TrimSpace(reason),
		RecipeID: strings.TrimSpace(recipeID),
	}
	return r.client.DoJSON(ctx, http.MethodPost, "/admin/users/"+url.PathEscape(userID)+"/warn", nil, request, nil)
}

type suspendRequestDTO struct {
	DurationDays int    `json:"duration_days"`
	Reason       string `json:"reason"`
}

func (r *UsersRepo) Suspend(ctx context.Context, userID string, durationDays int, reason string) error {
	request := suspendRequestDTO{
		DurationDays: durationDays,
		Reason:       strings.TrimSpace(reason),
	}
	return r.client.DoJSON(ctx, http.MethodPost, "/admin/users/"+url.PathEscape(userID)+"/suspend", nil, request, nil)
}

type reasonRequestDTO struct {
	Reason string `json:"reason"`
}

func (r *UsersRepo) Unsuspend(ctx context.Context, userID, reason string) error {
	request := reasonRequestDTO{Reason: strings.TrimSpace(reason)}
	return r.client.DoJSON(ctx, http.MethodPost, "/admin/users/"+url.PathEscape(userID)+"/unsuspend", nil, request, nil)
}

func (r *UsersRepo) Ban(ctx context.Context, userID, reason string) error {
	request := reasonRequestDTO{Reason: strings.TrimSpace(reason)}
	return r.client.DoJSON(ctx, http.MethodPost, "/admin/users/"+url.PathEscape(userID)+"/ban", nil, request, nil)
}

func (r *UsersRepo) Unban(ctx context.Context, userID, reason string) error {
	request := reasonRequestDTO{Reason: strings.TrimSpace(reason)}
	return r.client.DoJSON(ctx, http.MethodPost, "/admin/users/"+url.PathEscape(userID)+"/unban", nil, request, nil)
}

func (r *UsersRepo) Delete(ctx context.Context, userID, reason string) error {
	request := reasonRequestDTO{Reason: strings.TrimSpace(reason)}
	return r.client.DoJSON(ctx, http.MethodDelete, "/admin/users/"+url.PathEscape(userID), nil, request, nil)
}
