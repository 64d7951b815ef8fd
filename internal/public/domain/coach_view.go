package domain

import (
	"math"

	coachdomain "github.com/twentymincoach/api/internal/domain"
)

// CoachSummary is the card shown in search results and listings.
type CoachSummary struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Specialty   string  `json:"specialty"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`
	Location    string  `json:"location,omitempty"`
	Available   bool    `json:"available"`
	Rate        string  `json:"rate"`
	AvatarURL   string  `json:"avatarUrl,omitempty"`
	Bio         string  `json:"bio,omitempty"`
}

// RankedCoach pairs a coach with its match score for one query.
type RankedCoach struct {
	Coach coachdomain.Coach
	Score int
}

// NewCoachSummary projects a coach onto its card view.
func NewCoachSummary(c coachdomain.Coach) CoachSummary {
	return CoachSummary{
		ID:          c.ID,
		Name:        c.Name,
		Specialty:   c.Specialty.String(),
		Rating:      math.Round(c.Rating.Float64()*10) / 10,
		ReviewCount: c.ReviewCount,
		Location:    c.Location,
		Available:   c.Available,
		Rate:        c.Rate.Label(),
		AvatarURL:   c.AvatarURL.String(),
		Bio:         c.Bio,
	}
}
