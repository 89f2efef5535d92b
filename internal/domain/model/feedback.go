package model

import (
	"time"

	"github.com/harryviennot/cuisto-admin/internal/domain/enums"
)

type ExtractionFeedback struct {
	ID          string
	RecipeID    string
	UserID      string
	Category    enums.FeedbackCategory
	Description string
	Status      enums.FeedbackStatus
	CreatedAt   time.Time
	ResolvedAt  *time.Time
	// WasHelpful is meaningful only once Status is resolved.
	WasHelpful *bool

	Recipe *RecipeSummary
	User   *UserSummary
}

type FeedbackQueue struct {
	Feedback []ExtractionFeedback
	Total    int
}

type FeedbackQueueFilter struct {
	Status   enums.FeedbackStatus
	Category enums.FeedbackCategory
	Limit    int
	Offset   int
}
