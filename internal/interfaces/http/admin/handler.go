package admin

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	adminapp "github.com/twentymincoach/api/internal/admin/application"
	"github.com/twentymincoach/api/internal/metrics"
)

// Handler wires admin HTTP endpoints to application services.
type Handler struct {
	logger       *zap.Logger
	coachService adminapp.CoachService
	metrics      *metrics.Recorder
}

// Config provides dependencies for Handler.
type Config struct {
	Logger       *zap.Logger
	CoachService adminapp.CoachService
	Metrics      *metrics.Recorder
}

// NewHandler constructs an admin HTTP handler set.
func NewHandler(cfg Config) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		logger:       logger,
		coachService: cfg.CoachService,
		metrics:      cfg.Metrics,
	}
}

// Register mounts admin routes onto router. The caller applies authentication.
func (h *Handler) Register(r chi.Router) {
	r.Put("/coaches", h.coachUpsertHandler())
	r.Patch("/coaches/{id}/availability", h.coachAvailabilityHandler())
}
