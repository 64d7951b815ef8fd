package public

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	adminapp "github.com/twentymincoach/api/internal/admin/application"
	"github.com/twentymincoach/api/internal/metrics"
	publicapp "github.com/twentymincoach/api/internal/public/application"
)

// Handler wires public HTTP endpoints to application services.
type Handler struct {
	logger   *zap.Logger
	queries  publicapp.CoachQueryService
	profiles publicapp.ProfileService
	coaches  adminapp.CoachService
	metrics  *metrics.Recorder
	now      func() time.Time
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger   *zap.Logger
	Queries  publicapp.CoachQueryService
	Profiles publicapp.ProfileService
	// Coaches accepts review submissions from signed-in clients.
	Coaches adminapp.CoachService
	Metrics *metrics.Recorder
}

// NewHandler constructs a public HTTP handler set.
func NewHandler(cfg Config) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		logger:   logger,
		queries:  cfg.Queries,
		profiles: cfg.Profiles,
		coaches:  cfg.Coaches,
		metrics:  cfg.Metrics,
		now:      time.Now,
	}
}

// Register mounts all public routes onto the router.
func (h *Handler) Register(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Get("/coaches", h.coachListHandler())
	r.Get("/coaches/search", h.coachSearchHandler())
	r.Get("/coaches/{id}", h.coachDetailHandler())
	r.Get("/specialties", h.specialtyListHandler())
	r.With(authMiddleware).Post("/coaches/{id}/reviews", h.reviewCreateHandler())
	r.With(authMiddleware).Get("/auth/verify", h.authVerifyHandler())
}
