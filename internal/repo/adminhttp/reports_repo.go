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

type ReportsRepo struct {
	client *Client
}

func NewReportsRepo(client *Client) *ReportsRepo {
	return &ReportsRepo{client: client}
}

type contentReportDTO struct {
	ID              string     `json:"id"`
	RecipeID        string     `json:"recipe_id"`
	ReporterUserID  string     `json:"reporter_user_id"`
	Reason          string     `json:"reason"`
	Description     string     `json:"description"`
	Status          string     `json:"status"`
	Priority        int        `json:"priority"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at"`
	ResolvedAt      *time.Time `json:"resolved_at"`
	ResolvedBy      string     `json:"resolved_by"`
	ResolutionNotes string     `json:"resolution_notes"`

	Recipe   *recipeSummaryDTO `json:"recipes"`
	Reporter *userSummaryDTO   `json:"reporter"`
}

func (dto contentReportDTO) toModel() model.ContentReport {
	return model.ContentReport{
		ID:              dto.ID,
		RecipeID:        strings.TrimSpace(dto.RecipeID),
		ReporterUserID:  strings.TrimSpace(dto.ReporterUserID),
		Reason:          enums.ReportReason(strings.TrimSpace(dto.Reason)),
		Description:     strings.TrimSpace(dto.Description),
		Status:          enums.ReportStatus(strings.TrimSpace(dto.Status)),
		Priority:        dto.Priority,
		CreatedAt:       dto.CreatedAt,
		UpdatedAt:       timeOrNil(dto.UpdatedAt),
		ResolvedAt:      timeOrNil(dto.ResolvedAt),
		ResolvedBy:      strings.TrimSpace(dto.ResolvedBy),
		ResolutionNotes: strings.TrimSpace(dto.ResolutionNotes),
		Recipe:          dto.Recipe.toModel(),
		Reporter:        dto.Reporter.toModel(),
	}
}

type reportQueueDTO struct {
	Reports []contentReportDTO `json:"reports"`
	Total   int                `json:"total"`
}

func (r *ReportsRepo) List(ctx context.Context, filter model.ReportQueueFilter) (model.ReportQueue, error) {
	query := url.Values{}
	if filter.Status != "" {
		query.Set("status", string(filter.Status))
	}
	if filter.Reason != "" {
		query.Set("reason", string(filter.Reason))
	}
	if filter.MinPriority > 0 {
		query.Set("min_priority", strconv.Itoa(filter.MinPriority))
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}
	if filter.Offset > 0 {
		query.Set("offset", strconv.Itoa(filter.Offset))
	}

	var response reportQueueDTO
	if err := r.client.DoJSON(ctx, http.MethodGet, "/admin/reports", query, nil, &response); err != nil {
		return model.ReportQueue{}, err
	}

	reports := make([]model.ContentReport, 0, len(response.Reports))
	for _, dto := range response.Reports {
		reports = append(reports, dto.toModel())
	}
	return model.ReportQueue{Reports: reports, Total: response.Total}, nil
}

func (r *ReportsRepo) Get(ctx context.Context, reportID string) (model.ContentReport, error) {
	var response contentReportDTO
	err := r.client.DoJSON(ctx, http.MethodGet, "/admin/reports/"+url.PathEscape(reportID), nil, nil, &response)
	if err != nil {
		return model.ContentReport{}, err
	}
	return response.toModel(), nil
}

type dismissRequestDTO struct {
	Reason        string `json:"reason"`
	Notes         string `json:"notes,omitempty"`
	IsFalseReport bool   `json:"is_false_report"`
}

// Dismiss resolves the report with no side effects. is_false_report is sent
// explicitly so the server default can never diverge from the dashboard's.
func (r *ReportsRepo) Dismiss(ctx context.Context, reportID, reason, notes string, isFalseReport bool) (model.ContentReport, error) {
	request := dismissRequestDTO{
		Reason:        strings.TrimSpace(reason),
		Notes:         strings.TrimSpace(notes),
		IsFalseReport: isFalseReport,
	}

	var response contentReportDTO
	err := r.client.DoJSON(ctx, http.MethodPost, "/admin/reports/"+url.PathEscape(reportID)+"/dismiss", nil, request, &response)
	if err != nil {
		return model.ContentReport{}, err
	}
	return response.toModel(), nil
}

type takeActionRequestDTO struct {
	Action         string `json:"action"`
	Reason         string `json:"reason"`
	Notes          string `json:"notes,omitempty"`
	SuspensionDays *int   `json:"suspension_days,omitempty"`
}

// TakeAction records a moderation action through the report, keeping the
// audit record linked to it. suspensionDays is only sent when set.
func (r *ReportsRepo) TakeAction(ctx context.Context, reportID string, action enums.ReportAction, reason, notes string, suspensionDays *int) error {
	request := takeActionRequestDTO{
		Action:         string(action),
		Reason:         strings.TrimSpace(reason),
		Notes:          strings.TrimSpace(notes),
		SuspensionDays: suspensionDays,
	}
	return r.client.DoJSON(ctx, http.MethodPost, "/admin/reports/"+url.PathEscape(reportID)+"/action", nil, request, nil)
}
