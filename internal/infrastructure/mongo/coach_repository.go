package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/twentymincoach/api/internal/domain"
)

// CoachRepository はコーチ集約の Mongo 実装。ディレクトリの初期ロードと書き込みの永続化を担う。
type CoachRepository struct {
	collection *mongo.Collection
}

// NewCoachRepository は MongoDB コレクションを束縛した CoachRepository を生成する。
func NewCoachRepository(db *mongo.Database, collectionName string) *CoachRepository {
	return &CoachRepository{collection: db.Collection(collectionName)}
}

// LoadAll は全コーチを ID 昇順で読み込む。不正なドキュメントがあればエラーを返す。
func (r *CoachRepository) LoadAll(ctx context.Context) ([]domain.Coach, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	coaches := make([]domain.Coach, 0)
	for cursor.Next(ctx) {
		var doc CoachDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		coach, err := mapCoachDocument(doc)
		if err != nil {
			return nil, fmt.Errorf("coach %s: %w", doc.ID, err)
		}
		coaches = append(coaches, coach)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return coaches, nil
}

// Count はコレクション内のコーチ数を返す。
func (r *CoachRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// Save はコーチを丸ごと置き換える。存在しなければ挿入する。
func (r *CoachRepository) Save(ctx context.Context, coach domain.Coach) error {
	doc := toCoachDocument(coach)
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, opts)
	return err
}

// SetAvailability は受付状態のみを更新する。
func (r *CoachRepository) SetAvailability(ctx context.Context, id string, available bool) error {
	update := bson.M{"$set": bson.M{
		"available": available,
		"updatedAt": time.Now().UTC(),
	}}
	return r.updateOne(ctx, id, update)
}

// AppendReview はレビューを配列先頭に追加し、評価平均と件数を同時に更新する。
func (r *CoachRepository) AppendReview(ctx context.Context, id string, review domain.Review, rating domain.Rating, reviewCount int) error {
	update := bson.M{
		"$push": bson.M{"reviews": bson.M{
			"$each":     bson.A{toReviewDocument(review)},
			"$position": 0,
		}},
		"$set": bson.M{
			"rating":      rating.Float64(),
			"reviewCount": reviewCount,
			"updatedAt":   time.Now().UTC(),
		},
	}
	return r.updateOne(ctx, id, update)
}

// EnsureIndexes は運用時の絞り込み・並び替えで使うインデックスを作成する。
func (r *CoachRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "specialty", Value: 1}},
			Options: options.Index().SetName("idx_coach_specialty"),
		},
		{
			Keys:    bson.D{{Key: "available", Value: 1}, {Key: "rating", Value: -1}},
			Options: options.Index().SetName("idx_coach_available_rating"),
		},
		{
			Keys:    bson.D{{Key: "reviews.id", Value: 1}},
			Options: options.Index().SetName("idx_coach_review_id").SetSparse(true),
		},
	}
	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}

// Drop はコレクションを削除する。seed コマンドの -drop 用。
func (r *CoachRepository) Drop(ctx context.Context) error {
	return r.collection.Drop(ctx)
}

func (r *CoachRepository) updateOne(ctx context.Context, id string, update bson.M) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	return nil
}

func toCoachDocument(c domain.Coach) CoachDocument {
	reviews := make([]ReviewDocument, 0, len(c.Reviews))
	for _, review := range c.Reviews {
		reviews = append(reviews, toReviewDocument(review))
	}
	return CoachDocument{
		ID:             c.ID,
		Name:           c.Name,
		Specialty:      c.Specialty.String(),
		Rating:         c.Rating.Float64(),
		ReviewCount:    c.ReviewCount,
		Location:       c.Location,
		Available:      c.Available,
		Rate:           CoachRateDocument{Amount: c.Rate.Amount, Currency: c.Rate.Currency},
		Bio:            c.Bio,
		Expertise:      c.Expertise.Strings(),
		Certifications: c.Certifications.Strings(),
		Languages:      c.Languages.Strings(),
		AvatarURL:      c.AvatarURL.String(),
		Stats: CoachStatsDocument{
			TotalSessions:      c.Stats.TotalSessions,
			AvgResponseSeconds: int64(c.Stats.AvgResponseTime / time.Second),
			CompletionRate:     c.Stats.CompletionRate.Float64(),
		},
		Reviews:   reviews,
		CreatedAt: timePtr(c.CreatedAt),
		UpdatedAt: timePtr(c.UpdatedAt),
	}
}

func toReviewDocument(r domain.Review) ReviewDocument {
	return ReviewDocument{
		ID:        r.ID,
		Reviewer:  r.Reviewer,
		Rating:    r.Rating.Int(),
		Posted:    r.Posted,
		Comment:   r.Comment,
		CreatedAt: timePtr(r.CreatedAt),
	}
}

func mapCoachDocument(doc CoachDocument) (domain.Coach, error) {
	var reviews []domain.Review
	if len(doc.Reviews) > 0 {
		reviews = make([]domain.Review, 0, len(doc.Reviews))
		for _, rd := range doc.Reviews {
			reviews = append(reviews, domain.Review{
				ID:        rd.ID,
				Reviewer:  rd.Reviewer,
				Rating:    domain.ReviewRating(rd.Rating),
				Posted:    rd.Posted,
				Comment:   rd.Comment,
				CreatedAt: derefTime(rd.CreatedAt),
			})
		}
	}

	coach := domain.Coach{
		ID:             doc.ID,
		Name:           doc.Name,
		Specialty:      domain.Specialty(domain.CanonicalSpecialty(doc.Specialty)),
		Rating:         domain.Rating(doc.Rating),
		ReviewCount:    doc.ReviewCount,
		Location:       doc.Location,
		Available:      doc.Available,
		Rate:           domain.Money{Amount: doc.Rate.Amount, Currency: doc.Rate.Currency},
		Bio:            doc.Bio,
		Expertise:      domain.NewTagList(doc.Expertise),
		Certifications: domain.NewTagList(doc.Certifications),
		Languages:      domain.NewTagList(doc.Languages),
		AvatarURL:      domain.URL(doc.AvatarURL),
		Stats: domain.CoachStats{
			TotalSessions:   doc.Stats.TotalSessions,
			AvgResponseTime: time.Duration(doc.Stats.AvgResponseSeconds) * time.Second,
			CompletionRate:  domain.CompletionRate(doc.Stats.CompletionRate),
		},
		Reviews:   reviews,
		CreatedAt: derefTime(doc.CreatedAt),
		UpdatedAt: derefTime(doc.UpdatedAt),
	}
	if err := coach.Validate(); err != nil {
		return domain.Coach{}, err
	}
	return coach, nil
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	v := t.UTC()
	return &v
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
