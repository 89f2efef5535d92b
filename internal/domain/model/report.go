package model

import (
	"time"

	"github.com/harryviennot/cuisto-admin/internal/domain/enums"
)

type UserSummary struct {
	ID        string
	Name      string
	AvatarURL string
}

type ContentReport struct {
	ID              string
	RecipeID        string
	ReporterUserID  string
	Reason          enums.ReportReason
	Description     string
	Status          enums.ReportStatus
	Priority        int
	CreatedAt       time.Time
	UpdatedAt       *time.Time
	ResolvedAt      *time.Time
	ResolvedBy      string
	ResolutionNotes string

	Recipe   *RecipeSummary
	Reporter *UserSummary
}

type ReportQueue struct {
	Reports []ContentReport
	Total   int
}

// ReportQueueFilter narrows the report list; zero values mean "no filter".
type ReportQueueFilter struct {
	Status      enums.ReportStatus
	Reason      enums.ReportReason
	MinPriority int
	Limit       int
	Offset      int
}
