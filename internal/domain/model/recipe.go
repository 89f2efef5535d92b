package model

import "time"

type RecipeSummary struct {
	ID        string
	Title     string
	ImageURL  string
	CreatedBy string
	IsPublic  bool
	SourceURL string
}

type Ingredient struct {
	Name     string
	Quantity *float64
	Unit     string
	Notes    string
}

type InstructionStep struct {
	StepNumber  int
	Title       string
	Description string
}

// Recipe is the admin view of a recipe including moderation fields.
// IsHidden=true implies HiddenAt and HiddenReason are set server-side.
type Recipe struct {
	ID           string
	Title        string
	Description  string
	ImageURL     string
	SourceType   string
	SourceURL    string
	IsPublic     bool
	IsDraft      bool
	IsHidden     bool
	HiddenAt     *time.Time
	HiddenReason string
	CreatedAt    time.Time
	CreatedBy    string
	Ingredients  []Ingredient
	Instructions []InstructionStep

	Uploader *UserSummary
	HiddenBy *UserSummary
}

type RecipeList struct {
	Recipes []Recipe
	Total   int
}

type RecipeListFilter struct {
	UserID   string
	Search   string
	IsHidden *bool
	Limit    int
	Offset   int
}
