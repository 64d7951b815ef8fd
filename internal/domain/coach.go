package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Coach is a service provider offering short video sessions.
// A coach exclusively owns its review collection.
type Coach struct {
	ID             string
	Name           string
	Specialty      Specialty
	Rating         Rating
	ReviewCount    int
	Location       string
	Available      bool
	Rate           Money
	Bio            string
	Expertise      TagList
	Certifications TagList
	Languages      TagList
	AvatarURL      URL
	Stats          CoachStats
	Reviews        []Review
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CoachStats aggregates session metrics shown on the profile.
type CoachStats struct {
	TotalSessions   int
	AvgResponseTime time.Duration
	CompletionRate  CompletionRate
}

// Review is a single client review. Reviews are appended, never edited.
type Review struct {
	ID        string
	Reviewer  string
	Rating    ReviewRating
	Posted    string
	Comment   string
	CreatedAt time.Time
}

// CoachDetail is the profile view: the coach plus its reviews, most recent first.
type CoachDetail struct {
	Coach   Coach
	Reviews []Review
}

// Validate checks every invariant of the record and wraps ErrInvalidRecord on failure.
func (c Coach) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidRecord)
	}
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidRecord)
	}
	if _, err := NewSpecialty(string(c.Specialty)); err != nil {
		return err
	}
	if _, err := NewRating(float64(c.Rating)); err != nil {
		return err
	}
	if c.ReviewCount < 0 {
		return fmt.Errorf("%w: review count must be >= 0", ErrInvalidRecord)
	}
	if _, err := NewMoney(c.Rate.Amount, c.Rate.Currency); err != nil {
		return err
	}
	if c.Stats.TotalSessions < 0 {
		return fmt.Errorf("%w: total sessions must be >= 0", ErrInvalidRecord)
	}
	if c.Stats.AvgResponseTime < 0 {
		return fmt.Errorf("%w: response time must be >= 0", ErrInvalidRecord)
	}
	if _, err := NewCompletionRate(float64(c.Stats.CompletionRate)); err != nil {
		return err
	}
	for i, review := range c.Reviews {
		if err := review.Validate(); err != nil {
			return fmt.Errorf("review %d: %w", i, err)
		}
	}
	return nil
}

// Validate checks the review rating bounds.
func (r Review) Validate() error {
	if _, err := NewReviewRating(int(r.Rating)); err != nil {
		return err
	}
	return nil
}

// Clone returns a deep copy so stored records are never shared with callers.
func (c Coach) Clone() Coach {
	out := c
	out.Expertise = cloneTags(c.Expertise)
	out.Certifications = cloneTags(c.Certifications)
	out.Languages = cloneTags(c.Languages)
	if c.Reviews != nil {
		out.Reviews = append([]Review(nil), c.Reviews...)
	}
	return out
}

// AddReview prepends the review, bumps the review count and folds the
// rating into the running average.
func (c *Coach) AddReview(review Review) {
	total := c.Rating.Float64()*float64(c.ReviewCount) + float64(review.Rating)
	c.ReviewCount++
	c.Rating = Rating(math.Round(total/float64(c.ReviewCount)*10) / 10)

	reviews := make([]Review, 0, len(c.Reviews)+1)
	reviews = append(reviews, review)
	c.Reviews = append(reviews, c.Reviews...)
}

// Detail splits the coach into its profile view.
func (c Coach) Detail() CoachDetail {
	clone := c.Clone()
	reviews := clone.Reviews
	if reviews == nil {
		reviews = []Review{}
	}
	clone.Reviews = nil
	return CoachDetail{Coach: clone, Reviews: reviews}
}

func cloneTags(tags TagList) TagList {
	if tags == nil {
		return nil
	}
	return append(TagList(nil), tags...)
}
