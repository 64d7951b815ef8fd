package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorder_Counts(t *testing.T) {
	r := New()
	r.Search(3, nil)
	r.Search(0, errors.New("bad filter"))
	r.ProfileLookup(nil)
	r.Write("review", nil)

	if got := testutil.ToFloat64(r.searches.WithLabelValues("ok")); got != 1 {
		t.Errorf("ok searches = %v", got)
	}
	if got := testutil.ToFloat64(r.searches.WithLabelValues("error")); got != 1 {
		t.Errorf("failed searches = %v", got)
	}
	if got := testutil.ToFloat64(r.writes.WithLabelValues("review", "ok")); got != 1 {
		t.Errorf("review writes = %v", got)
	}
}

func TestRecorder_NilIsNoop(t *testing.T) {
	var r *Recorder
	r.Search(1, nil)
	r.ProfileLookup(nil)
	r.Write("upsert", nil)
}

func TestHandler_ServesMetrics(t *testing.T) {
	r := New()
	r.ProfileLookup(nil)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "coach_api_profile_lookups_total") {
		t.Error("profile counter missing from exposition")
	}
}
