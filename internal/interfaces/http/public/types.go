package public

import (
	"fmt"
	"time"

	"github.com/twentymincoach/api/internal/domain"
	publicdomain "github.com/twentymincoach/api/internal/public/domain"
)

type coachSummaryResponse = publicdomain.CoachSummary

type rankedCoachResponse struct {
	coachSummaryResponse
	Score int `json:"score"`
}

type coachSearchResponse struct {
	IDs   []string              `json:"ids"`
	Items []rankedCoachResponse `json:"items"`
	Page  int                   `json:"page"`
	Limit int                   `json:"limit"`
	Total int                   `json:"total"`
}

type coachListResponse struct {
	Items []coachSummaryResponse `json:"items"`
	Total int                    `json:"total"`
}

type coachStatsResponse struct {
	TotalSessions   int     `json:"totalSessions"`
	AvgResponseTime string  `json:"avgResponseTime"`
	CompletionRate  float64 `json:"completionRate"`
}

type reviewResponse struct {
	ID        string     `json:"id"`
	Reviewer  string     `json:"reviewer"`
	Rating    int        `json:"rating"`
	Posted    string     `json:"posted"`
	Comment   string     `json:"comment"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

type coachDetailResponse struct {
	coachSummaryResponse
	Expertise      []string           `json:"expertise"`
	Certifications []string           `json:"certifications"`
	Languages      []string           `json:"languages"`
	Stats          coachStatsResponse `json:"stats"`
	Reviews        []reviewResponse   `json:"reviews"`
}

type createReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// buildCoachDetailResponse はプロフィール表示用 DTO に変換する。
func buildCoachDetailResponse(detail domain.CoachDetail, now time.Time) coachDetailResponse {
	reviews := make([]reviewResponse, 0, len(detail.Reviews))
	for _, review := range detail.Reviews {
		reviews = append(reviews, buildReviewResponse(review, now))
	}
	coach := detail.Coach
	return coachDetailResponse{
		coachSummaryResponse: publicdomain.NewCoachSummary(coach),
		Expertise:            nonNil(coach.Expertise.Strings()),
		Certifications:       nonNil(coach.Certifications.Strings()),
		Languages:            nonNil(coach.Languages.Strings()),
		Stats: coachStatsResponse{
			TotalSessions:   coach.Stats.TotalSessions,
			AvgResponseTime: formatResponseTime(coach.Stats.AvgResponseTime),
			CompletionRate:  coach.Stats.CompletionRate.Float64(),
		},
		Reviews: reviews,
	}
}

func buildReviewResponse(review domain.Review, now time.Time) reviewResponse {
	resp := reviewResponse{
		ID:       review.ID,
		Reviewer: review.Reviewer,
		Rating:   review.Rating.Int(),
		Posted:   review.Posted,
		Comment:  review.Comment,
	}
	if !review.CreatedAt.IsZero() {
		created := review.CreatedAt
		resp.CreatedAt = &created
		if resp.Posted == "" {
			resp.Posted = postedLabel(created, now)
		}
	}
	return resp
}

// postedLabel renders a relative age such as "2 days ago" or "1 week ago".
func postedLabel(created, now time.Time) string {
	age := now.Sub(created)
	if age < 24*time.Hour {
		return "today"
	}
	days := int(age.Hours() / 24)
	switch {
	case days < 7:
		return plural(days, "day")
	case days < 30:
		return plural(days/7, "week")
	case days < 365:
		return plural(days/30, "month")
	default:
		return plural(days/365, "year")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

func formatResponseTime(d time.Duration) string {
	switch {
	case d <= 0:
		return ""
	case d < time.Minute:
		return fmt.Sprintf("%d sec", int(d/time.Second))
	case d < time.Hour:
		return fmt.Sprintf("%d min", int(d/time.Minute))
	default:
		return fmt.Sprintf("%d h", int(d/time.Hour))
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
