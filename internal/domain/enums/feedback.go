package enums

type FeedbackStatus string

const (
	FeedbackStatusPending  FeedbackStatus = "pending"
	FeedbackStatusResolved FeedbackStatus = "resolved"
)

type FeedbackCategory string

const (
	FeedbackCategoryWrongIngredients  FeedbackCategory = "wrong_ingredients"
	FeedbackCategoryMissingSteps      FeedbackCategory = "missing_steps"
	FeedbackCategoryIncorrectSteps    FeedbackCategory = "incorrect_steps"
	FeedbackCategoryBadFormatting     FeedbackCategory = "bad_formatting"
	FeedbackCategoryWrongMeasurements FeedbackCategory = "wrong_measurements"
	FeedbackCategoryWrongServings     FeedbackCategory = "wrong_servings"
	FeedbackCategoryAIHallucination   FeedbackCategory = "ai_hallucination"
	FeedbackCategoryWrongTitle        FeedbackCategory = "wrong_title"
	FeedbackCategoryWrongImage        FeedbackCategory = "wrong_image"
	FeedbackCategoryOther             FeedbackCategory = "other"
)
