package admin

import (
	"time"

	adminapp "github.com/twentymincoach/api/internal/admin/application"
	"github.com/twentymincoach/api/internal/domain"
)

type adminRatePayload struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type adminStatsPayload struct {
	TotalSessions      int     `json:"totalSessions"`
	AvgResponseMinutes float64 `json:"avgResponseMinutes"`
	CompletionRate     float64 `json:"completionRate"`
}

// adminCoachRequest is the PUT body. An omitted id creates a new coach.
type adminCoachRequest struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Specialty      string            `json:"specialty"`
	Rating         float64           `json:"rating"`
	ReviewCount    int               `json:"reviewCount"`
	Location       string            `json:"location"`
	Available      bool              `json:"available"`
	Rate           adminRatePayload  `json:"rate"`
	Bio            string            `json:"bio"`
	Expertise      []string          `json:"expertise"`
	Certifications []string          `json:"certifications"`
	Languages      []string          `json:"languages"`
	AvatarURL      string            `json:"avatarUrl"`
	Stats          adminStatsPayload `json:"stats"`
}

type adminAvailabilityRequest struct {
	Available *bool `json:"available"`
}

type adminCoachResponse struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Specialty      string            `json:"specialty"`
	Rating         float64           `json:"rating"`
	ReviewCount    int               `json:"reviewCount"`
	Location       string            `json:"location,omitempty"`
	Available      bool              `json:"available"`
	Rate           adminRatePayload  `json:"rate"`
	RateLabel      string            `json:"rateLabel"`
	Bio            string            `json:"bio,omitempty"`
	Expertise      []string          `json:"expertise,omitempty"`
	Certifications []string          `json:"certifications,omitempty"`
	Languages      []string          `json:"languages,omitempty"`
	AvatarURL      string            `json:"avatarUrl,omitempty"`
	Stats          adminStatsPayload `json:"stats"`
	ReviewTotal    int               `json:"storedReviews"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

func (req adminCoachRequest) toCommand() adminapp.UpsertCoachCommand {
	return adminapp.UpsertCoachCommand{
		ID:              req.ID,
		Name:            req.Name,
		Specialty:       req.Specialty,
		Rating:          req.Rating,
		ReviewCount:     req.ReviewCount,
		Location:        req.Location,
		Available:       req.Available,
		RateAmount:      req.Rate.Amount,
		RateCurrency:    req.Rate.Currency,
		Bio:             req.Bio,
		Expertise:       req.Expertise,
		Certifications:  req.Certifications,
		Languages:       req.Languages,
		AvatarURL:       req.AvatarURL,
		TotalSessions:   req.Stats.TotalSessions,
		AvgResponseTime: time.Duration(req.Stats.AvgResponseMinutes * float64(time.Minute)),
		CompletionRate:  req.Stats.CompletionRate,
	}
}

func adminCoachDomainToResponse(c domain.Coach) adminCoachResponse {
	return adminCoachResponse{
		ID:             c.ID,
		Name:           c.Name,
		Specialty:      c.Specialty.String(),
		Rating:         c.Rating.Float64(),
		ReviewCount:    c.ReviewCount,
		Location:       c.Location,
		Available:      c.Available,
		Rate:           adminRatePayload{Amount: c.Rate.Amount, Currency: c.Rate.Currency},
		RateLabel:      c.Rate.Label(),
		Bio:            c.Bio,
		Expertise:      c.Expertise.Strings(),
		Certifications: c.Certifications.Strings(),
		Languages:      c.Languages.Strings(),
		AvatarURL:      c.AvatarURL.String(),
		Stats: adminStatsPayload{
			TotalSessions:      c.Stats.TotalSessions,
			AvgResponseMinutes: c.Stats.AvgResponseTime.Minutes(),
			CompletionRate:     c.Stats.CompletionRate.Float64(),
		},
		ReviewTotal: len(c.Reviews),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
