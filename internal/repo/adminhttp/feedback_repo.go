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

type FeedbackRepo struct {
	client *Client
}

func NewFeedbackRepo(client *Client) *FeedbackRepo {
	return &FeedbackRepo{client: client}
}

type feedbackDTO struct {
	ID          string     `json:"id"`
	RecipeID    string     `json:"recipe_id"`
	UserID      string     `json:"user_id"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	ResolvedAt  *time.Time `json:"resolved_at"`
	WasHelpful  *bool      `json:"was_helpful"`

	Recipe *recipeSummaryDTO `json:"recipes"`
	User   *userSummaryDTO   `json:"user"`
}

func (dto feedbackDTO) toModel() model.ExtractionFeedback {
	return model.ExtractionFeedback{
		ID:          dto.ID,
		RecipeID:    strings.TrimSpace(dto.RecipeID),
		UserID:      strings.TrimSpace(dto.UserID),
		Category:    enums.FeedbackCategory(strings.TrimSpace(dto.Category)),
		Description: strings.TrimSpace(dto.Description),
		Status:      enums.FeedbackStatus(strings.TrimSpace(dto.Status)),
		CreatedAt:   dto.CreatedAt,
		ResolvedAt:  timeOrNil(dto.ResolvedAt),
		WasHelpful:  dto.WasHelpful,
		Recipe:      dto.Recipe.toModel(),
		User:        dto.User.toModel(),
	}
}

type feedbackQueueDTO struct {
	Feedback []feedbackDTO `json:"feedback"`
	Total    int           `json:"total"`
}

func (r *FeedbackRepo) List(ctx context.Context, filter model.FeedbackQueueFilter) (model.FeedbackQueue, error) {
	query := url.Values{}
	if filter.Status != "" {
		query.Set("status", string(filter.Status))
	}
	if filter.Category != "" {
		query.Set("category", string(filter.Category))
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}
	if filter.Offset > 0 {
		query.Set("offset", strconv.Itoa(filter.Offset))
	}

	var response feedbackQueueDTO
	if err := r.client.DoJSON(ctx, http.MethodGet, "/admin/extraction-feedback", query, nil, &response); err != nil {
		return model.FeedbackQueue{}, err
	}

	feedback := make([]model.ExtractionFeedback, 0, len(response.Feedback))
	for _, dto := range response.Feedback {
		feedback = append(feedback, dto.toModel())
	}
	return model.FeedbackQueue{Feedback: feedback, Total: response.Total}, nil
}

func (r *FeedbackRepo) Get(ctx context.Context, feedbackID string) (model.ExtractionFeedback, error) {
	var response feedbackDTO
	err := r.client.DoJSON(ctx, http.MethodGet, "/admin/extraction-feedback/"+url.PathEscape(feedbackID), nil, nil, &response)
	if err != nil {
		return model.ExtractionFeedback{}, err
	}
	return response.toModel(), nil
}

type resolveFeedbackRequestDTO struct {
	ResolutionNotes string `json:"resolution_notes,omitempty"`
	WasHelpful      *bool  `json:"was_helpful,omitempty"`
}

func (r *FeedbackRepo) Resolve(ctx context.Context, feedbackID, resolutionNotes string, wasHelpful *bool) (model.ExtractionFeedback, error) {
	request := resolveFeedbackRequestDTO{
		ResolutionNotes: strings.TrimSpace(resolutionNotes),
		WasHelpful:      wasHelpful,
	}

	var response feedbackDTO
	err := r.client.DoJSON(ctx, http.MethodPost, "/admin/extraction-feedback/"+url.PathEscape(feedbackID)+"/resolve", nil, request, &response)
	if err != nil {
		return model.ExtractionFeedback{}, err
	}
	return response.toModel(), nil
}
