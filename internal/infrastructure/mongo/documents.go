package mongo

import (
	"time"
)

// CoachRateDocument は料金を最小通貨単位で保持する埋め込みドキュメント。
type CoachRateDocument struct {
	Amount   int64  `bson:"amount"`
	Currency string `bson:"currency"`
}

// CoachStatsDocument はセッション統計の埋め込み構造を表す。
type CoachStatsDocument struct {
	TotalSessions      int     `bson:"totalSessions"`
	AvgResponseSeconds int64   `bson:"avgResponseSeconds"`
	CompletionRate     float64 `bson:"completionRate"`
}

// ReviewDocument はコーチドキュメントに埋め込まれるレビュー。配列先頭が最新。
type ReviewDocument struct {
	ID        string     `bson:"id"`
	Reviewer  string     `bson:"reviewer"`
	Rating    int        `bson:"rating"`
	Posted    string     `bson:"posted,omitempty"`
	Comment   string     `bson:"comment"`
	CreatedAt *time.Time `bson:"createdAt,omitempty"`
}

// CoachDocument は MongoDB 上でのコーチスキーマを Go 構造体として表現したもの。
type CoachDocument struct {
	ID             string             `bson:"_id"`
	Name           string             `bson:"name"`
	Specialty      string             `bson:"specialty"`
	Rating         float64            `bson:"rating"`
	ReviewCount    int                `bson:"reviewCount"`
	Location       string             `bson:"location,omitempty"`
	Available      bool               `bson:"available"`
	Rate           CoachRateDocument  `bson:"rate"`
	Bio            string             `bson:"bio,omitempty"`
	Expertise      []string           `bson:"expertise,omitempty"`
	Certifications []string           `bson:"certifications,omitempty"`
	Languages      []string           `bson:"languages,omitempty"`
	AvatarURL      string             `bson:"avatarUrl,omitempty"`
	Stats          CoachStatsDocument `bson:"stats"`
	Reviews        []ReviewDocument   `bson:"reviews"`
	CreatedAt      *time.Time         `bson:"createdAt,omitempty"`
	UpdatedAt      *time.Time         `bson:"updatedAt,omitempty"`
}
