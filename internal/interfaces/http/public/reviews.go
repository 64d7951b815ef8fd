package public

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	adminapp "github.com/twentymincoach/api/internal/admin/application"
	"github.com/twentymincoach/api/internal/interfaces/http/common"
)

// reviewCreateHandler は認証済みユーザーのレビューを受け付ける。投稿者名はトークンから取る。
func (h *Handler) reviewCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteMessage(h.logger, w, http.StatusInternalServerError, "failed to read credentials")
			return
		}
		defer r.Body.Close()

		id := strings.TrimSpace(chi.URLParam(r, "id"))
		var req createReviewRequest
		if err := common.DecodeJSON(r, &req); err != nil {
			common.WriteError(h.logger, w, err, "failed to submit review")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), common.RequestTimeout)
		defer cancel()

		review, err := h.coaches.AppendReview(ctx, id, adminapp.AppendReviewCommand{
			Reviewer: user.DisplayName(),
			Rating:   req.Rating,
			Comment:  req.Comment,
		})
		h.metrics.Write("review", err)
		if err != nil {
			common.WriteError(h.logger, w, err, "failed to submit review")
			return
		}

		h.logger.Info("review submitted",
			zap.String("coach", id),
			zap.String("review", review.ID),
			zap.String("user", user.ID),
		)
		common.WriteJSON(h.logger, w, http.StatusCreated, buildReviewResponse(*review, h.now()))
	}
}
