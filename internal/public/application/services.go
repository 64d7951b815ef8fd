package application

import (
	"context"
	"iter"

	coachdomain "github.com/twentymincoach/api/internal/domain"
	"github.com/twentymincoach/api/internal/public/domain"
)

// CoachReader abstracts read access to the coach directory.
type CoachReader interface {
	Get(id string) (coachdomain.Coach, error)
	All() iter.Seq[coachdomain.Coach]
}

// SearchQuery expresses a free-text query plus hard filters.
// A nil Specialty means no specialty filter.
type SearchQuery struct {
	Text          string
	Specialty     *string
	AvailableOnly bool
}

// CoachQueryService describes search and listing use-cases.
type CoachQueryService interface {
	Search(ctx context.Context, query SearchQuery) ([]string, error)
	SearchCoaches(ctx context.Context, query SearchQuery) ([]domain.RankedCoach, error)
	ListAll(ctx context.Context) ([]domain.CoachSummary, error)
}

// ProfileService resolves the detail view of a single coach.
type ProfileService interface {
	Profile(ctx context.Context, id string) (*coachdomain.CoachDetail, error)
}
