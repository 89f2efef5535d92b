package dto

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type HideRecipeRequest struct {
	Reason         string `json:"reason"`
	UserAction     string `json:"user_action,omitempty"`
	SuspensionDays int    `json:"suspension_days,omitempty"`
}

type UnhideRecipeRequest struct {
	Reason string `json:"reason"`
}

type ReportActionRequest struct {
	Action         string `json:"action"`
	Reason         string `json:"reason,omitempty"`
	Notes          string `json:"notes,omitempty"`
	AlsoHideRecipe bool   `json:"also_hide_recipe,omitempty"`
	UserAction     string `json:"user_action,omitempty"`
	SuspensionDays int    `json:"suspension_days,omitempty"`
}

type ResolveFeedbackRequest struct {
	ResolutionNotes string `json:"resolution_notes,omitempty"`
	WasHelpful      *bool  `json:"was_helpful,omitempty"`
}

type WarnUserRequest struct {
	Reason   string `json:"reason"`
	RecipeID string `json:"recipe_id,omitempty"`
}

type SuspendUserRequest struct {
	DurationDays int    `json:"duration_days"`
	Reason       string `json:"reason"`
}

type UserReasonRequest struct {
	Reason string `json:"reason"`
}

type LocalizedTextRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type SendNotificationRequest struct {
	UserID        string                          `json:"user_id,omitempty"`
	Localizations map[string]LocalizedTextRequest `json:"localizations"`
	Data          map[string]string               `json:"data,omitempty"`
}
