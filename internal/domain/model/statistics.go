package model

type ReportStatistics struct {
	ByStatus        map[string]int
	PendingByReason map[string]int
}

type FeedbackStatistics struct {
	ByStatus          map[string]int
	PendingByCategory map[string]int
}

type UserStatistics struct {
	GoodStanding int
	Warned       int
	Suspended    int
	Banned       int
}

type ActionStatistics struct {
	ByType     map[string]int
	Total      int
	PeriodDays int
}

type Statistics struct {
	Reports  ReportStatistics
	Feedback FeedbackStatistics
	Users    UserStatistics
	Actions  ActionStatistics
}
