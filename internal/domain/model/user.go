package model

import (
	"time"

	"github.com/harryviennot/cuisto-admin/internal/domain/enums"
)

// UserModeration is the per-user standing aggregate owned by the core API.
// Status=suspended implies a future SuspendedUntil; status=banned implies
// BanReason and is terminal until an explicit unban.
type UserModeration struct {
	ID                       string
	UserID                   string
	Status                   enums.UserStatus
	WarningCount             int
	ReportCount              int
	FalseReportCount         int
	SuspendedUntil           *time.Time
	BanReason                string
	ReporterReliabilityScore float64
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

type UserWarning struct {
	ID             string
	UserID         string
	IssuedBy       string
	Reason         string
	RecipeID       string
	AcknowledgedAt *time.Time
	CreatedAt      time.Time
}

// ModerationAction is the append-only audit record written by the server for
// every successful moderation mutation. The dashboard only reads these.
type ModerationAction struct {
	ID             string
	ModeratorID    string
	ActionType     enums.ActionType
	Reason         string
	Notes          string
	DurationDays   *int
	TargetUserID   string
	TargetRecipeID string
	CreatedAt      time.Time

	Moderator *UserSummary
}

type UserDetail struct {
	User             *UserSummary
	Email            string
	CreatedAt        *time.Time
	LastSignInAt     *time.Time
	Moderation       UserModeration
	Warnings         []UserWarning
	Actions          []ModerationAction
	Feedback         []ExtractionFeedback
	ReportsSubmitted int
	IsPremium        bool
}

type UserListItem struct {
	ID           string
	Name         string
	Email        string
	AvatarURL    string
	CreatedAt    time.Time
	LastSignInAt *time.Time

	ModerationStatus enums.UserStatus
	WarningCount     int
	ReportCount      int

	ReportsSubmitted         int
	FalseReportCount         int
	ReporterReliabilityScore float64

	IsPremium bool
}

type UserList struct {
	Users []UserListItem
	Total int
}

type UserListFilter struct {
	Status    enums.UserStatus
	IsPremium *bool
	Search    string
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}
