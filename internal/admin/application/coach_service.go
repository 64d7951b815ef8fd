package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/twentymincoach/api/internal/domain"
)

const anonymousReviewer = "Anonymous"

// coachService implements CoachService. Every write runs under the
// directory's per-record lock, creates included, so the store and the
// directory see the same order of changes.
type coachService struct {
	directory   CoachDirectory
	repo        CoachRepository
	idGenerator func() string
	now         func() time.Time
}

// NewCoachService wires the directory and an optional repository.
func NewCoachService(directory CoachDirectory, repo CoachRepository) CoachService {
	return &coachService{
		directory:   directory,
		repo:        repo,
		idGenerator: func() string { return uuid.NewString() },
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *coachService) Upsert(ctx context.Context, cmd UpsertCoachCommand) (*domain.Coach, error) {
	coach, err := s.buildCoach(cmd)
	if err != nil {
		return nil, err
	}

	stored, err := s.directory.UpsertWith(coach.ID, func(existing *domain.Coach) (domain.Coach, error) {
		now := s.now()
		if existing != nil {
			coach.Reviews = existing.Reviews
			coach.CreatedAt = existing.CreatedAt
		} else {
			coach.CreatedAt = now
		}
		coach.UpdatedAt = now
		if err := coach.Validate(); err != nil {
			return domain.Coach{}, err
		}
		if err := s.persist(ctx, coach); err != nil {
			return domain.Coach{}, err
		}
		return coach, nil
	})
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (s *coachService) SetAvailability(ctx context.Context, id string, available bool) (*domain.Coach, error) {
	updated, err := s.directory.Update(id, func(c *domain.Coach) error {
		if s.repo != nil {
			if err := s.repo.SetAvailability(ctx, id, available); err != nil {
				return fmt.Errorf("persist availability: %w", err)
			}
		}
		c.Available = available
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *coachService) AppendReview(ctx context.Context, id string, cmd AppendReviewCommand) (*domain.Review, error) {
	rating, err := domain.NewReviewRating(cmd.Rating)
	if err != nil {
		return nil, err
	}
	reviewer := SanitizeText(cmd.Reviewer)
	if reviewer == "" {
		reviewer = anonymousReviewer
	}
	review := domain.Review{
		ID:        s.idGenerator(),
		Reviewer:  reviewer,
		Rating:    rating,
		Comment:   SanitizeText(cmd.Comment),
		CreatedAt: s.now(),
	}

	_, err = s.directory.Update(id, func(c *domain.Coach) error {
		c.AddReview(review)
		if err := c.Validate(); err != nil {
			return err
		}
		if s.repo != nil {
			if err := s.repo.AppendReview(ctx, id, review, c.Rating, c.ReviewCount); err != nil {
				return fmt.Errorf("persist review: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (s *coachService) persist(ctx context.Context, coach domain.Coach) error {
	if s.repo == nil {
		return nil
	}
	if err := s.repo.Save(ctx, coach); err != nil {
		return fmt.Errorf("persist coach %s: %w", coach.ID, err)
	}
	return nil
}

func (s *coachService) buildCoach(cmd UpsertCoachCommand) (domain.Coach, error) {
	id := strings.TrimSpace(cmd.ID)
	if id == "" {
		id = s.idGenerator()
	}
	specialty, err := domain.NewSpecialty(domain.CanonicalSpecialty(cmd.Specialty))
	if err != nil {
		return domain.Coach{}, err
	}
	rating, err := domain.NewRating(cmd.Rating)
	if err != nil {
		return domain.Coach{}, err
	}
	rate, err := domain.NewMoney(cmd.RateAmount, cmd.RateCurrency)
	if err != nil {
		return domain.Coach{}, err
	}
	completion, err := domain.NewCompletionRate(cmd.CompletionRate)
	if err != nil {
		return domain.Coach{}, err
	}
	avatar, err := domain.NewURL(cmd.AvatarURL)
	if err != nil {
		return domain.Coach{}, err
	}

	return domain.Coach{
		ID:             id,
		Name:           SanitizeText(cmd.Name),
		Specialty:      specialty,
		Rating:         rating,
		ReviewCount:    cmd.ReviewCount,
		Location:       SanitizeText(cmd.Location),
		Available:      cmd.Available,
		Rate:           rate,
		Bio:            SanitizeText(cmd.Bio),
		Expertise:      domain.NewTagList(sanitizeList(cmd.Expertise)),
		Certifications: domain.NewTagList(sanitizeList(cmd.Certifications)),
		Languages:      domain.NewTagList(sanitizeList(cmd.Languages)),
		AvatarURL:      avatar,
		Stats: domain.CoachStats{
			TotalSessions:   cmd.TotalSessions,
			AvgResponseTime: cmd.AvgResponseTime,
			CompletionRate:  completion,
		},
	}, nil
}
