package public

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/twentymincoach/api/internal/domain"
	"github.com/twentymincoach/api/internal/interfaces/http/common"
	publicapp "github.com/twentymincoach/api/internal/public/application"
	publicdomain "github.com/twentymincoach/api/internal/public/domain"
)

// coachSearchHandler はキーワードとフィルタでコーチを検索し、スコア順に返す。
// ids は全件、items はページ単位。
func (h *Handler) coachSearchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), common.RequestTimeout)
		defer cancel()

		query := r.URL.Query()
		search := publicapp.SearchQuery{
			Text:          query.Get("q"),
			AvailableOnly: common.ParseBool(query.Get("available")),
		}
		if query.Has("specialty") {
			specialty := query.Get("specialty")
			search.Specialty = &specialty
		}

		page, _ := common.ParsePositiveInt(query.Get("page"), 1)
		limit, _ := common.ParsePositiveInt(query.Get("limit"), common.DefaultPageLimit)
		if limit > common.MaxPageLimit {
			limit = common.MaxPageLimit
		}

		ranked, err := h.queries.SearchCoaches(ctx, search)
		h.metrics.Search(len(ranked), err)
		if err != nil {
			common.WriteError(h.logger, w, err, "failed to search coaches")
			return
		}

		ids := make([]string, 0, len(ranked))
		for _, rc := range ranked {
			ids = append(ids, rc.Coach.ID)
		}
		start, end := common.Page(len(ranked), page, limit)
		items := make([]rankedCoachResponse, 0, end-start)
		for _, rc := range ranked[start:end] {
			items = append(items, rankedCoachResponse{
				coachSummaryResponse: publicdomain.NewCoachSummary(rc.Coach),
				Score:                rc.Score,
			})
		}

		common.WriteJSON(h.logger, w, http.StatusOK, coachSearchResponse{
			IDs:   ids,
			Items: items,
			Page:  page,
			Limit: limit,
			Total: len(ranked),
		})
	}
}

func (h *Handler) coachListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), common.RequestTimeout)
		defer cancel()

		items, err := h.queries.ListAll(ctx)
		if err != nil {
			common.WriteError(h.logger, w, err, "failed to list coaches")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, coachListResponse{Items: items, Total: len(items)})
	}
}

func (h *Handler) coachDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), common.RequestTimeout)
		defer cancel()

		id := strings.TrimSpace(chi.URLParam(r, "id"))
		if id == "" {
			common.WriteMessage(h.logger, w, http.StatusBadRequest, "coach id is required")
			return
		}

		detail, err := h.profiles.Profile(ctx, id)
		h.metrics.ProfileLookup(err)
		if err != nil {
			if common.StatusFor(err) == http.StatusNotFound {
				h.logger.Debug("coach not found", zap.String("id", id))
			}
			common.WriteError(h.logger, w, err, "failed to load coach")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildCoachDetailResponse(*detail, h.now()))
	}
}

func (h *Handler) specialtyListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"items": domain.Specialties})
	}
}
