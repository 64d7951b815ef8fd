package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/twentymincoach/api/internal/domain"
	"github.com/twentymincoach/api/internal/public/application"
	"github.com/twentymincoach/api/internal/seed"
)

func TestProfile_ReturnsDetailWithReviews(t *testing.T) {
	resolver := application.NewProfileResolver(newDirectory(t, seed.Coaches()...))

	detail, err := resolver.Profile(context.Background(), "1")
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if detail.Coach.ID != "1" || detail.Coach.Name != "Dr. Maria Silva" {
		t.Errorf("unexpected coach: %+v", detail.Coach)
	}
	if len(detail.Reviews) != 3 {
		t.Fatalf("expected 3 reviews, got %d", len(detail.Reviews))
	}
	wantOrder := []string{"1-1", "1-2", "1-3"}
	for i, id := range wantOrder {
		if detail.Reviews[i].ID != id {
			t.Errorf("review %d = %s, want %s", i, detail.Reviews[i].ID, id)
		}
	}
	if len(detail.Coach.Certifications) != 3 || detail.Coach.Stats.CompletionRate != 98 {
		t.Errorf("profile fields missing: %+v", detail.Coach)
	}
}

func TestProfile_NotFound(t *testing.T) {
	resolver := application.NewProfileResolver(newDirectory(t, seed.Coaches()...))

	detail, err := resolver.Profile(context.Background(), "999")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if detail != nil {
		t.Error("expected no partial result")
	}
}

func TestProfile_ReflectsAppendedReview(t *testing.T) {
	d := newDirectory(t, seed.Coaches()...)
	resolver := application.NewProfileResolver(d)

	_, err := d.Update("4", func(c *domain.Coach) error {
		c.AddReview(domain.Review{ID: "4-new", Reviewer: "Léo", Rating: 5})
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}

	detail, err := resolver.Profile(context.Background(), "4")
	if err != nil {
		t.Fatal(err)
	}
	if detail.Reviews[0].ID != "4-new" {
		t.Errorf("newest review not first: %+v", detail.Reviews)
	}
	if detail.Coach.ReviewCount != 157 {
		t.Errorf("ReviewCount = %d, want 157", detail.Coach.ReviewCount)
	}
}
