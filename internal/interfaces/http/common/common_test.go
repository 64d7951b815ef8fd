package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/twentymincoach/api/internal/domain"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", fmt.Errorf("get: %w", domain.ErrNotFound), http.StatusNotFound},
		{"invalid record", fmt.Errorf("%w: rating", domain.ErrInvalidRecord), http.StatusBadRequest},
		{"invalid filter", domain.ErrInvalidFilter, http.StatusBadRequest},
		{"bad json", ErrBadRequest, http.StatusBadRequest},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusFor(tt.err); got != tt.want {
				t.Errorf("StatusFor = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWriteError_HidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(zap.NewNop(), rec, errors.New("mongo: connection refused"), "failed to load coach")

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["error"] != "failed to load coach" {
		t.Errorf("error = %q", body["error"])
	}
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Rating int `json:"rating"`
	}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"rating":4}`))
	if err := DecodeJSON(req, &dst); err != nil || dst.Rating != 4 {
		t.Fatalf("DecodeJSON = %v, rating %d", err, dst.Rating)
	}

	for _, body := range []string{`{"rating":"four"}`, `{"unknown":1}`, `{`} {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		if err := DecodeJSON(req, &dst); !errors.Is(err, ErrBadRequest) {
			t.Errorf("body %s: expected ErrBadRequest, got %v", body, err)
		}
	}
}

func TestParseHelpers(t *testing.T) {
	if v, ok := ParsePositiveInt("3", 1); v != 3 || !ok {
		t.Errorf("ParsePositiveInt(3) = %d, %v", v, ok)
	}
	if v, ok := ParsePositiveInt("-2", 7); v != 7 || ok {
		t.Errorf("ParsePositiveInt(-2) = %d, %v", v, ok)
	}
	if !ParseBool("TRUE") || !ParseBool("1") || ParseBool("no") || ParseBool("") {
		t.Error("ParseBool mismatch")
	}
}

func TestPage(t *testing.T) {
	tests := []struct {
		total, page, limit int
		start, end         int
	}{
		{10, 1, 3, 0, 3},
		{10, 4, 3, 9, 10},
		{10, 5, 3, 10, 10},
		{0, 1, 20, 0, 0},
		{5, 0, 0, 0, 5},
		{10, math.MaxInt, 100, 10, 10},
		{10, math.MaxInt / 2, 3, 10, 10},
		{math.MaxInt, 2, math.MaxInt, math.MaxInt, math.MaxInt},
		{math.MaxInt, 2, math.MaxInt - 1, math.MaxInt - 1, math.MaxInt},
	}
	for _, tt := range tests {
		start, end := Page(tt.total, tt.page, tt.limit)
		if start != tt.start || end != tt.end {
			t.Errorf("Page(%d,%d,%d) = [%d,%d), want [%d,%d)", tt.total, tt.page, tt.limit, start, end, tt.start, tt.end)
		}
	}
}

func TestRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(1, 2, zap.NewNop())
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	handler := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	call := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/coaches", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	if call("10.0.0.1:1000") != http.StatusNoContent || call("10.0.0.1:1001") != http.StatusNoContent {
		t.Fatal("burst should be allowed")
	}
	if got := call("10.0.0.1:1002"); got != http.StatusTooManyRequests {
		t.Errorf("third request = %d, want 429", got)
	}
	if got := call("10.0.0.2:1000"); got != http.StatusNoContent {
		t.Errorf("other client = %d, want 204", got)
	}

	now = now.Add(time.Second)
	if got := call("10.0.0.1:1003"); got != http.StatusNoContent {
		t.Errorf("after refill = %d, want 204", got)
	}
}

func TestRateLimiter_Disabled(t *testing.T) {
	limiter := NewRateLimiter(0, 1, zap.NewNop())
	for i := 0; i < 100; i++ {
		if !limiter.Allow("x") {
			t.Fatal("disabled limiter rejected a request")
		}
	}
}

func TestDisplayName(t *testing.T) {
	if got := (AuthenticatedUser{Name: " Lia ", Username: "lia"}).DisplayName(); got != "Lia" {
		t.Errorf("DisplayName = %q", got)
	}
	if got := (AuthenticatedUser{Username: "lia"}).DisplayName(); got != "lia" {
		t.Errorf("DisplayName = %q", got)
	}
}
