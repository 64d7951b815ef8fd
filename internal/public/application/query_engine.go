package application

import (
	"context"
	"sort"
	"strings"

	coachdomain "github.com/twentymincoach/api/internal/domain"
	"github.com/twentymincoach/api/internal/public/domain"
)

const (
	specialtyTermWeight = 2
	contentTermWeight   = 1
)

// queryEngine implements CoachQueryService over a CoachReader.
// It keeps no state between calls.
type queryEngine struct {
	coaches CoachReader
}

// NewQueryEngine creates a new CoachQueryService.
func NewQueryEngine(coaches CoachReader) CoachQueryService {
	return &queryEngine{coaches: coaches}
}

func (q *queryEngine) Search(ctx context.Context, query SearchQuery) ([]string, error) {
	ranked, err := q.SearchCoaches(ctx, query)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(ranked))
	for _, r := range ranked {
		ids = append(ids, r.Coach.ID)
	}
	return ids, nil
}

// SearchCoaches fails only with ErrInvalidFilter. The scan is in-memory and
// runs to completion even if ctx is done.
func (q *queryEngine) SearchCoaches(_ context.Context, query SearchQuery) ([]domain.RankedCoach, error) {
	fold := coachdomain.NewFolder()

	specialty := ""
	if query.Specialty != nil {
		if err := coachdomain.ValidSpecialtyFilter(*query.Specialty); err != nil {
			return nil, err
		}
		specialty = fold.Fold(fold.CanonicalSpecialty(*query.Specialty))
	}

	terms := Tokenize(query.Text)
	ranked := make([]domain.RankedCoach, 0)
	for coach := range q.coaches.All() {
		if query.AvailableOnly && !coach.Available {
			continue
		}
		if specialty != "" && fold.Fold(fold.CanonicalSpecialty(coach.Specialty.String())) != specialty {
			continue
		}
		score := scoreWith(fold, coach, terms)
		if len(terms) > 0 && score == 0 {
			continue
		}
		ranked = append(ranked, domain.RankedCoach{Coach: coach, Score: score})
	}

	sortRanked(ranked)
	return ranked, nil
}

func (q *queryEngine) ListAll(context.Context) ([]domain.CoachSummary, error) {
	summaries := make([]domain.CoachSummary, 0)
	for coach := range q.coaches.All() {
		summaries = append(summaries, domain.NewCoachSummary(coach))
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].ID < summaries[j].ID
	})
	return summaries, nil
}

// Tokenize splits text on whitespace into case-folded terms, dropping duplicates.
func Tokenize(text string) []string {
	fields := strings.Fields(coachdomain.Fold(text))
	if len(fields) == 0 {
		return nil
	}
	terms := make([]string, 0, len(fields))
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		terms = append(terms, f)
	}
	return terms
}

// Score awards 2 per term found in the specialty and 1 per term found in the
// bio or any expertise tag.
func Score(coach coachdomain.Coach, terms []string) int {
	return scoreWith(coachdomain.NewFolder(), coach, terms)
}

func scoreWith(fold *coachdomain.Folder, coach coachdomain.Coach, terms []string) int {
	if len(terms) == 0 {
		return 0
	}
	specialty := fold.Fold(coach.Specialty.String())
	bio := fold.Fold(coach.Bio)
	tags := make([]string, 0, len(coach.Expertise))
	for _, tag := range coach.Expertise {
		tags = append(tags, fold.Fold(tag))
	}

	score := 0
	for _, term := range terms {
		if strings.Contains(specialty, term) {
			score += specialtyTermWeight
		}
		if strings.Contains(bio, term) || containsAny(tags, term) {
			score += contentTermWeight
		}
	}
	return score
}

func containsAny(haystacks []string, term string) bool {
	for _, h := range haystacks {
		if strings.Contains(h, term) {
			return true
		}
	}
	return false
}

// sortRanked orders by score, rating, review count (all descending) and
// finally identifier ascending so equal candidates always come out the same way.
func sortRanked(ranked []domain.RankedCoach) {
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Coach.Rating != b.Coach.Rating {
			return a.Coach.Rating > b.Coach.Rating
		}
		if a.Coach.ReviewCount != b.Coach.ReviewCount {
			return a.Coach.ReviewCount > b.Coach.ReviewCount
		}
		return a.Coach.ID < b.Coach.ID
	})
}
