package public

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	adminapp "github.com/twentymincoach/api/internal/admin/application"
	"github.com/twentymincoach/api/internal/directory"
	"github.com/twentymincoach/api/internal/interfaces/http/common"
	"github.com/twentymincoach/api/internal/metrics"
	publicapp "github.com/twentymincoach/api/internal/public/application"
	"github.com/twentymincoach/api/internal/seed"
)

var testNow = time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

func newTestRouter(t *testing.T) chi.Router {
	t.Helper()
	d := directory.New()
	for _, c := range seed.Coaches() {
		if err := d.Upsert(c); err != nil {
			t.Fatal(err)
		}
	}
	h := NewHandler(Config{
		Logger:   zap.NewNop(),
		Queries:  publicapp.NewQueryEngine(d),
		Profiles: publicapp.NewProfileResolver(d),
		Coaches:  adminapp.NewCoachService(d, nil),
		Metrics:  metrics.New(),
	})
	h.now = func() time.Time { return testNow }

	fakeAuth := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") == "" {
				common.WriteMessage(nil, w, http.StatusUnauthorized, "missing token")
				return
			}
			ctx := common.ContextWithUser(r.Context(), common.AuthenticatedUser{ID: "u1", Name: "Rita"})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}

	r := chi.NewRouter()
	h.Register(r, fakeAuth)
	return r
}

func do(t *testing.T, r http.Handler, method, target, body string, auth bool) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if auth {
		req.Header.Set("Authorization", "Bearer test")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %s: %v", rec.Body.String(), err)
	}
	return out
}

func TestCoachSearch(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name    string
		target  string
		wantIDs []string
	}{
		{"empty query lists everyone by rating", "/coaches/search", []string{"3", "1", "2", "4"}},
		{"available only", "/coaches/search?available=true", []string{"1", "2", "4"}},
		{"specialty alias", "/coaches/search?specialty=health-fitness", []string{"1"}},
		{"no match", "/coaches/search?q=zzzz", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, r, http.MethodGet, tt.target, "", false)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
			}
			resp := decode[coachSearchResponse](t, rec)
			if strings.Join(resp.IDs, ",") != strings.Join(tt.wantIDs, ",") {
				t.Errorf("ids = %v, want %v", resp.IDs, tt.wantIDs)
			}
			if resp.Total != len(tt.wantIDs) || len(resp.Items) != len(tt.wantIDs) {
				t.Errorf("total = %d items = %d", resp.Total, len(resp.Items))
			}
		})
	}
}

func TestCoachSearch_Paging(t *testing.T) {
	r := newTestRouter(t)

	rec := do(t, r, http.MethodGet, "/coaches/search?page=2&limit=3", "", false)
	resp := decode[coachSearchResponse](t, rec)
	if len(resp.IDs) != 4 {
		t.Errorf("ids should cover every match, got %v", resp.IDs)
	}
	if len(resp.Items) != 1 || resp.Items[0].ID != "4" {
		t.Errorf("page 2 items = %+v", resp.Items)
	}

	rec = do(t, r, http.MethodGet, "/coaches/search?page=9223372036854775807&limit=100", "", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("huge page status = %d", rec.Code)
	}
	resp = decode[coachSearchResponse](t, rec)
	if len(resp.Items) != 0 || resp.Total != 4 {
		t.Errorf("huge page items = %d total = %d", len(resp.Items), resp.Total)
	}
}

func TestCoachSearch_InvalidFilter(t *testing.T) {
	r := newTestRouter(t)

	rec := do(t, r, http.MethodGet, "/coaches/search?specialty=", "", false)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	body := decode[map[string]string](t, rec)
	if body["error"] == "" {
		t.Error("expected error message")
	}
}

func TestCoachList(t *testing.T) {
	r := newTestRouter(t)

	rec := do(t, r, http.MethodGet, "/coaches", "", false)
	resp := decode[coachListResponse](t, rec)
	if resp.Total != 4 || resp.Items[0].ID != "1" {
		t.Fatalf("unexpected list: %+v", resp)
	}
	if resp.Items[0].Rate != "$15/session" {
		t.Errorf("rate = %q", resp.Items[0].Rate)
	}
}

func TestCoachDetail(t *testing.T) {
	r := newTestRouter(t)

	rec := do(t, r, http.MethodGet, "/coaches/1", "", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	resp := decode[coachDetailResponse](t, rec)
	if resp.Name != "Dr. Maria Silva" || len(resp.Reviews) != 3 {
		t.Errorf("unexpected detail: %+v", resp)
	}
	if resp.Stats.AvgResponseTime != "2 min" {
		t.Errorf("avgResponseTime = %q", resp.Stats.AvgResponseTime)
	}
	if resp.Reviews[0].Posted != "2 days ago" {
		t.Errorf("posted = %q", resp.Reviews[0].Posted)
	}

	rec = do(t, r, http.MethodGet, "/coaches/999", "", false)
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing coach status = %d, want 404", rec.Code)
	}
}

func TestSpecialties(t *testing.T) {
	r := newTestRouter(t)

	resp := decode[map[string][]string](t, do(t, r, http.MethodGet, "/specialties", "", false))
	if len(resp["items"]) != 10 {
		t.Errorf("items = %v", resp["items"])
	}
}

func TestReviewCreate(t *testing.T) {
	r := newTestRouter(t)

	rec := do(t, r, http.MethodPost, "/coaches/2/reviews", `{"rating":5,"comment":"Great"}`, false)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated status = %d, want 401", rec.Code)
	}

	rec = do(t, r, http.MethodPost, "/coaches/2/reviews", `{"rating":5,"comment":"Great"}`, true)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	review := decode[reviewResponse](t, rec)
	if review.Reviewer != "Rita" || review.Rating != 5 {
		t.Errorf("unexpected review: %+v", review)
	}

	detail := decode[coachDetailResponse](t, do(t, r, http.MethodGet, "/coaches/2", "", false))
	if detail.ReviewCount != 90 || detail.Reviews[0].ID != review.ID {
		t.Errorf("review not visible on profile: count=%d first=%s", detail.ReviewCount, detail.Reviews[0].ID)
	}
}

func TestReviewCreate_Errors(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name   string
		target string
		body   string
		want   int
	}{
		{"rating out of range", "/coaches/2/reviews", `{"rating":9}`, http.StatusBadRequest},
		{"malformed json", "/coaches/2/reviews", `{"rating":`, http.StatusBadRequest},
		{"unknown field", "/coaches/2/reviews", `{"rating":4,"stars":4}`, http.StatusBadRequest},
		{"unknown coach", "/coaches/404/reviews", `{"rating":4}`, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, r, http.MethodPost, tt.target, tt.body, true)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d (%s)", rec.Code, tt.want, rec.Body.String())
			}
		})
	}
}

func TestPostedLabel(t *testing.T) {
	tests := []struct {
		age  time.Duration
		want string
	}{
		{time.Hour, "today"},
		{36 * time.Hour, "1 day ago"},
		{3 * 24 * time.Hour, "3 days ago"},
		{8 * 24 * time.Hour, "1 week ago"},
		{20 * 24 * time.Hour, "2 weeks ago"},
		{65 * 24 * time.Hour, "2 months ago"},
		{800 * 24 * time.Hour, "2 years ago"},
	}
	for _, tt := range tests {
		if got := postedLabel(testNow.Add(-tt.age), testNow); got != tt.want {
			t.Errorf("postedLabel(%v) = %q, want %q", tt.age, got, tt.want)
		}
	}
}
