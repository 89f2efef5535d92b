package adminhttp

import (
	"context"
	"net/http"

	"github.com/harryviennot/cuisto-admin/internal/domain/model"
)

type StatsRepo struct {
	client *Client
}

func NewStatsRepo(client *Client) *StatsRepo {
	return &StatsRepo{client: client}
}

type statisticsDTO struct {
	Reports struct {
		ByStatus        map[string]int `json:"by_status"`
		PendingByReason map[string]int `json:"pending_by_reason"`
	} `json:"reports"`
	Feedback struct {
		ByStatus          map[string]int `json:"by_status"`
		PendingByCategory map[string]int `json:"pending_by_category"`
	} `json:"feedback"`
	Users struct {
		GoodStanding int `json:"good_standing"`
		Warned       int `json:"warned"`
		Suspended    int `json:"suspended"`
		Banned       int `json:"banned"`
	} `json:"users"`
	Actions struct {
		ByType     map[string]int `json:"by_type"`
		Total      int            `json:"total"`
		PeriodDays int            `json:"period_days"`
	} `json:"actions"`
}

func (r *StatsRepo) Statistics(ctx context.Context) (model.Statistics, error) {
	var response statisticsDTO
	if err := r.client.DoJSON(ctx, http.MethodGet, "/admin/statistics", nil, nil, &response); err != nil {
		return model.Statistics{}, err
	}

	return model.Statistics{
		Reports: model.ReportStatistics{
			ByStatus:        orEmpty(response.Reports.ByStatus),
			PendingByReason: orEmpty(response.Reports.PendingByReason),
		},
		Feedback: model.FeedbackStatistics{
			ByStatus:          orEmpty(response.Feedback.ByStatus),
			PendingByCategory: orEmpty(response.Feedback.PendingByCategory),
		},
		Users: model.UserStatistics{
			GoodStanding: response.Users.GoodStanding,
			Warned:       response.Users.Warned,
			Suspended:    response.Users.Suspended,
			Banned:       response.Users.Banned,
		},
		Actions: model.ActionStatistics{
			ByType:     orEmpty(response.Actions.ByType),
			Total:      response.Actions.Total,
			PeriodDays: response.Actions.PeriodDays,
		},
	}, nil
}

func orEmpty(values map[string]int) map[string]int {
	if values == nil {
		return map[string]int{}
	}
	return values
}
