package adminhttp

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/harryviennot/cuisto-admin/internal/domain/model"
)

type RecipesRepo struct {
	client *Client
}

func NewRecipesRepo(client *Client) *RecipesRepo {
	return &RecipesRepo{client: client}
}

type recipeDTO struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	ImageURL     string     `json:"image_url"`
	SourceType   string     `json:"source_type"`
	SourceURL    string     `json:"source_url"`
	IsPublic     bool       `json:"is_public"`
	IsDraft      bool       `json:"is_draft"`
	IsHidden     bool       `json:"is_hidden"`
	HiddenAt     *time.Time `json:"hidden_at"`
	HiddenReason string     `json:"hidden_reason"`
	CreatedAt    time.Time  `json:"created_at"`
	CreatedBy    string     `json:"created_by"`

	Ingredients  []ingredientDTO  `json:"ingredients"`
	Instructions []instructionDTO `json:"instructions"`

	Uploader *userSummaryDTO `json:"uploader"`
	HiddenBy *userSummaryDTO `json:"hidden_by"`
}

func (dto recipeDTO) toModel() model.Recipe {
	return model.Recipe{
		ID:           dto.ID,
		Title:        strings.TrimSpace(dto.Title),
		Description:  strings.TrimSpace(dto.Description),
		ImageURL:     strings.TrimSpace(dto.ImageURL),
		SourceType:   strings.TrimSpace(dto.SourceType),
		SourceURL:    strings.TrimSpace(dto.SourceURL),
		IsPublic:     dto.IsPublic,
		IsDraft:      dto.IsDraft,
		IsHidden:     dto.IsHidden,
		HiddenAt:     timeOrNil(dto.HiddenAt),
		HiddenReason: strings.TrimSpace(dto.HiddenReason),
		CreatedAt:    dto.CreatedAt,
		CreatedBy:    strings.TrimSpace(dto.CreatedBy),
		Ingredients:  ingredientsToModel(dto.Ingredients),
		Instructions: instructionsToModel(dto.Instructions),
		Uploader:     dto.Uploader.toModel(),
		HiddenBy:     dto.HiddenBy.toModel(),
	}
}

type recipeListDTO struct {
	Recipes []recipeDTO `json:"recipes"`
	Total   int         `json:"total"`
}

func (r *RecipesRepo) List(ctx context.Context, filter model.RecipeListFilter) (model.RecipeList, error) {
	query := url.Values{}
	if filter.UserID != "" {
		query.Set("user_id", filter.UserID)
	}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	if filter.IsHidden != nil {
		query.Set("is_hidden", strconv.FormatBool(*filter.IsHidden))
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}
	if filter.Offset > 0 {
		query.Set("offset", strconv.Itoa(filter.Offset))
	}

	var response recipeListDTO
	if err := r.client.DoJSON(ctx, http.MethodGet, "/admin/recipes", query, nil, &response); err != nil {
		return model.RecipeList{}, err
	}

	recipes := make([]model.Recipe, 0, len(response.Recipes))
	for _, dto := range response.Recipes {
		recipes = append(recipes, dto.toModel())
	}
	return model.RecipeList{Recipes: recipes, Total: response.Total}, nil
}

func (r *RecipesRepo) Get(ctx context.Context, recipeID string) (model.Recipe, error) {
	var response recipeDTO
	err := r.client.DoJSON(ctx, http.MethodGet, "/admin/recipes/"+url.PathEscape(recipeID), nil, nil, &response)
	if err != nil {
		return model.Recipe{}, err
	}
	return response.toModel(), nil
}

type visibilityRequestDTO struct {
	Reason string `json:"reason"`
}

func (r *RecipesRepo) Hide(ctx context.Context, recipeID, reason string) error {
	request := visibilityRequestDTO{Reason: strings.TrimSpace(reason)}
	return r.client.DoJSON(ctx, http.MethodPost, "/admin/recipes/"+url.PathEscape(recipeID)+"/hide", nil, request, nil)
}

func (r *RecipesRepo) Unhide(ctx context.Context, recipeID, reason string) error {
	request := visibilityRequestDTO{Reason: strings.TrimSpace(reason)}
	return r.client.DoJSON(ctx, http.MethodPost, "/admin/recipes/"+url.PathEscape(recipeID)+"/unhide", nil, request, nil)
}
