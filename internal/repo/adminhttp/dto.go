package adminhttp

import (
	"strings"
	"time"

	"github.com/harryviennot/cuisto-admin/internal/domain/model"
)

type userSummaryDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

func (dto *userSummaryDTO) toModel() *model.UserSummary {
	if dto == nil || strings.TrimSpace(dto.ID) == "" {
		return nil
	}
	return &model.UserSummary{
		ID:        dto.ID,
		Name:      strings.TrimSpace(dto.Name),
		AvatarURL: strings.TrimSpace(dto.AvatarURL),
	}
}

type recipeSummaryDTO struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	ImageURL  string `json:"image_url"`
	CreatedBy string `json:"created_by"`
	IsPublic  bool   `json:"is_public"`
	SourceURL string `json:"source_url"`
}

func (dto *recipeSummaryDTO) toModel() *model.RecipeSummary {
	if dto == nil || strings.TrimSpace(dto.ID) == "" {
		return nil
	}
	return &model.RecipeSummary{
		ID:        dto.ID,
		Title:     strings.TrimSpace(dto.Title),
		ImageURL:  strings.TrimSpace(dto.ImageURL),
		CreatedBy: strings.TrimSpace(dto.CreatedBy),
		IsPublic:  dto.IsPublic,
		SourceURL: strings.TrimSpace(dto.SourceURL),
	}
}

type ingredientDTO struct {
	Name     string   `json:"name"`
	Quantity *float64 `json:"quantity"`
	Unit     string   `json:"unit"`
	Notes    string   `json:"notes"`
}

type instructionDTO struct {
	StepNumber  int    `json:"step_number"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func ingredientsToModel(dtos []ingredientDTO) []model.Ingredient {
	if len(dtos) == 0 {
		return nil
	}
	out := make([]model.Ingredient, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, model.Ingredient{
			Name:     strings.TrimSpace(dto.Name),
			Quantity: dto.Quantity,
			Unit:     strings.TrimSpace(dto.Unit),
			Notes:    strings.TrimSpace(dto.Notes),
		})
	}
	return out
}

func instructionsToModel(dtos []instructionDTO) []model.InstructionStep {
	if len(dtos) == 0 {
		return nil
	}
	out := make([]model.InstructionStep, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, model.InstructionStep{
			StepNumber:  dto.StepNumber,
			Title:       strings.TrimSpace(dto.Title),
			Description: strings.TrimSpace(dto.Description),
		})
	}
	return out
}

func timeOrNil(value *time.Time) *time.Time {
	if value == nil || value.IsZero() {
		return nil
	}
	utc := value.UTC()
	return &utc
}
