package admin

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/twentymincoach/api/internal/interfaces/http/common"
)

// coachUpsertHandler はコーチを新規作成または丸ごと置き換える。既存レビューは保持される。
func (h *Handler) coachUpsertHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		var req adminCoachRequest
		if err := common.DecodeJSON(r, &req); err != nil {
			common.WriteError(h.logger, w, err, "failed to save coach")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), common.RequestTimeout)
		defer cancel()

		coach, err := h.coachService.Upsert(ctx, req.toCommand())
		h.metrics.Write("upsert", err)
		if err != nil {
			common.WriteError(h.logger, w, err, "failed to save coach")
			return
		}

		h.logger.Info("coach saved", zap.String("id", coach.ID), zap.String("by", actor(r)))
		common.WriteJSON(h.logger, w, http.StatusOK, adminCoachDomainToResponse(*coach))
	}
}

func (h *Handler) coachAvailabilityHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		id := strings.TrimSpace(chi.URLParam(r, "id"))
		var req adminAvailabilityRequest
		if err := common.DecodeJSON(r, &req); err != nil {
			common.WriteError(h.logger, w, err, "failed to update availability")
			return
		}
		if req.Available == nil {
			common.WriteError(h.logger, w, fmt.Errorf("%w: available is required", common.ErrBadRequest), "failed to update availability")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), common.RequestTimeout)
		defer cancel()

		coach, err := h.coachService.SetAvailability(ctx, id, *req.Available)
		h.metrics.Write("availability", err)
		if err != nil {
			common.WriteError(h.logger, w, err, "failed to update availability")
			return
		}

		h.logger.Info("availability changed",
			zap.String("id", id),
			zap.Bool("available", coach.Available),
			zap.String("by", actor(r)),
		)
		common.WriteJSON(h.logger, w, http.StatusOK, adminCoachDomainToResponse(*coach))
	}
}

func actor(r *http.Request) string {
	if user, ok := common.UserFromContext(r.Context()); ok {
		return user.ID
	}
	return ""
}
