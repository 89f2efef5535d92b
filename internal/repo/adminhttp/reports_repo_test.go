package adminhttp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/harryviennot/cuisto-admin/internal/domain/enums"
	"github.com/harryviennot/cuisto-admin/internal/domain/model"
)

func newRepoTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL, staticTokens{token: "session-token"}, time.Second)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func TestDismissSendsFalseReportFlagExplicitly(t *testing.T) {
	t.Parallel()

	client := newRepoTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/admin/reports/report-1/dismiss" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}

		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request body: %v", err)
		}
		if body["reason"] != "Quick dismissed from queue" {
			t.Fatalf("reason = %v", body["reason"])
		}
		flag, present := body["is_false_report"]
		if !present {
			t.Fatal("is_false_report must always be present")
		}
		if flag != false {
			t.Fatalf("is_false_report = %v", flag)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"report-1","status":"resolved"}`))
	})

	repo := NewReportsRepo(client)
	report, err := repo.Dismiss(context.Background(), "report-1", "Quick dismissed from queue", "", false)
	if err != nil {
		t.Fatalf("dismiss: %v", err)
	}
	if report.Status != enums.ReportStatusResolved {
		t.Errorf("status = %q", report.Status)
	}
}

func TestTakeActionOmitsSuspensionDaysWhenUnset(t *testing.T) {
	t.Parallel()

	client := newRepoTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/admin/reports/report-1/action" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}

		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request body: %v", err)
		}
		if body["action"] != "warn_user" {
			t.Fatalf("action = %v", body["action"])
		}
		if _, present := body["suspension_days"]; present {
			t.Fatal("suspension_days must be omitted for non-suspend actions")
		}

		w.WriteHeader(http.StatusNoContent)
	})

	repo := NewReportsRepo(client)
	err := repo.TakeAction(context.Background(), "report-1", enums.ReportActionWarnUser, "first strike", "", nil)
	if err != nil {
		t.Fatalf("take action: %v", err)
	}
}

func TestTakeActionForwardsSuspensionDays(t *testing.T) {
	t.Parallel()

	client := newRepoTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request body: %v", err)
		}
		if body["suspension_days"] != float64(30) {
			t.Fatalf("suspension_days = %v", body["suspension_days"])
		}
		w.WriteHeader(http.StatusNoContent)
	})

	repo := NewReportsRepo(client)
	days := 30
	err := repo.TakeAction(context.Background(), "report-1", enums.ReportActionSuspendUser, "spam", "", &days)
	if err != nil {
		t.Fatalf("take action: %v", err)
	}
}

func TestHideSendsReason(t *testing.T) {
	t.Parallel()

	client := newRepoTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/admin/recipes/recipe-1/hide" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request body: %v", err)
		}
		if body["reason"] != "Hidden due to content report" {
			t.Fatalf("reason = %v", body["reason"])
		}
		w.WriteHeader(http.StatusNoContent)
	})

	repo := NewRecipesRepo(client)
	if err := repo.Hide(context.Background(), "recipe-1", "Hidden due to content report"); err != nil {
		t.Fatalf("hide: %v", err)
	}
}

func TestListBuildsFilterQuery(t *testing.T) {
	t.Parallel()

	client := newRepoTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if query.Get("status") != "pending" || query.Get("min_priority") != "3" {
			t.Fatalf("unexpected query: %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"reports":[{"id":"report-1","status":"pending"}],"total":1}`))
	})

	repo := NewReportsRepo(client)
	queue, err := repo.List(context.Background(), model.ReportQueueFilter{
		Status:      enums.ReportStatusPending,
		MinPriority: 3,
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if queue.Total != 1 || len(queue.Reports) != 1 {
		t.Errorf("unexpected queue: %+v", queue)
	}
}
