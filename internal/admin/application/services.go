package application

import (
	"context"
	"time"

	"github.com/twentymincoach/api/internal/domain"
)

// CoachDirectory is the in-memory write target.
type CoachDirectory interface {
	UpsertWith(id string, fn func(existing *domain.Coach) (domain.Coach, error)) (domain.Coach, error)
	Update(id string, fn func(*domain.Coach) error) (domain.Coach, error)
}

// CoachRepository persists directory writes. It is optional: a nil
// repository keeps the directory memory-only.
type CoachRepository interface {
	Save(ctx context.Context, coach domain.Coach) error
	SetAvailability(ctx context.Context, id string, available bool) error
	AppendReview(ctx context.Context, id string, review domain.Review, rating domain.Rating, reviewCount int) error
}

// CoachService describes admin and collaborator write use-cases.
type CoachService interface {
	Upsert(ctx context.Context, cmd UpsertCoachCommand) (*domain.Coach, error)
	SetAvailability(ctx context.Context, id string, available bool) (*domain.Coach, error)
	AppendReview(ctx context.Context, id string, cmd AppendReviewCommand) (*domain.Review, error)
}

// UpsertCoachCommand contains inputs for creating/replacing a coach.
// An empty ID creates a new coach with a generated identifier.
type UpsertCoachCommand struct {
	ID              string
	Name            string
	Specialty       string
	Rating          float64
	ReviewCount     int
	Location        string
	Available       bool
	RateAmount      int64
	RateCurrency    string
	Bio             string
	Expertise       []string
	Certifications  []string
	Languages       []string
	AvatarURL       string
	TotalSessions   int
	AvgResponseTime time.Duration
	CompletionRate  float64
}

// AppendReviewCommand captures a review submission.
type AppendReviewCommand struct {
	Reviewer string
	Rating   int
	Comment  string
}
