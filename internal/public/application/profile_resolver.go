package application

import (
	"context"

	coachdomain "github.com/twentymincoach/api/internal/domain"
)

// profileResolver implements ProfileService.
type profileResolver struct {
	coaches CoachReader
}

// NewProfileResolver creates a new ProfileService.
func NewProfileResolver(coaches CoachReader) ProfileService {
	return &profileResolver{coaches: coaches}
}

// Profile returns the coach with its reviews in stored, most-recent-first
// order. ErrNotFound is the only failure; there are no partial results.
func (p *profileResolver) Profile(_ context.Context, id string) (*coachdomain.CoachDetail, error) {
	coach, err := p.coaches.Get(id)
	if err != nil {
		return nil, err
	}
	detail := coach.Detail()
	return &detail, nil
}
