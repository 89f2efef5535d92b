package enums

import "strings"

// ActionType mirrors the moderation_actions audit enum on the core API.
type ActionType string

const (
	ActionDismissReport   ActionType = "dismiss_report"
	ActionHideRecipe      ActionType = "hide_recipe"
	ActionUnhideRecipe    ActionType = "unhide_recipe"
	ActionWarnUser        ActionType = "warn_user"
	ActionSuspendUser     ActionType = "suspend_user"
	ActionUnsuspendUser   ActionType = "unsuspend_user"
	ActionBanUser         ActionType = "ban_user"
	ActionUnbanUser       ActionType = "unban_user"
	ActionResolveFeedback ActionType = "resolve_feedback"
)

// UserAction is the secondary sanction a moderator can attach to a
// recipe-centered composite decision.
type UserAction string

const (
	UserActionNone    UserAction = "none"
	UserActionWarn    UserAction = "warn"
	UserActionSuspend UserAction = "suspend"
	UserActionBan     UserAction = "ban"
)

func ParseUserAction(raw string) (UserAction, bool) {
	switch UserAction(strings.ToLower(strings.TrimSpace(raw))) {
	case UserActionNone, "":
		return UserActionNone, true
	case UserActionWarn:
		return UserActionWarn, true
	case UserActionSuspend:
		return UserActionSuspend, true
	case UserActionBan:
		return UserActionBan, true
	default:
		return UserActionNone, false
	}
}

// ReportAction is the primary verb of a report-centered decision. Dismiss is
// routed through the dismiss endpoint; the rest go through the report's
// take-action endpoint so the audit record stays linked to the report.
type ReportAction string

const (
	ReportActionDismiss     ReportAction = "dismiss"
	ReportActionHideRecipe  ReportAction = "hide_recipe"
	ReportActionWarnUser    ReportAction = "warn_user"
	ReportActionSuspendUser ReportAction = "suspend_user"
	ReportActionBanUser     ReportAction = "ban_user"
)

func ParseReportAction(raw string) (ReportAction, bool) {
	switch ReportAction(strings.ToLower(strings.TrimSpace(raw))) {
	case ReportActionDismiss:
		return ReportActionDismiss, true
	case ReportActionHideRecipe:
		return ReportActionHideRecipe, true
	case ReportActionWarnUser:
		return ReportActionWarnUser, true
	case ReportActionSuspendUser:
		return ReportActionSuspendUser, true
	case ReportActionBanUser:
		return ReportActionBanUser, true
	default:
		return "", false
	}
}

// IsUserSanction reports whether the action changes a user's standing.
func (a ReportAction) IsUserSanction() bool {
	return a == ReportActionWarnUser || a == ReportActionSuspendUser || a == ReportActionBanUser
}
