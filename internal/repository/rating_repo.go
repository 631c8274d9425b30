package repository

import (
	"context"

	"github.com/MugaboVedaste/e-comerce-Kush/internal/model"

	"gorm.io/gorm"
)

// RatingRepository is insert-only plus the aggregate read. Ratings are never
// updated or deleted within this service.
type RatingRepository interface {
	Create(ctx context.Context, r *model.SiteRating) error
	// Aggregate computes the arithmetic mean and total count in SQL.
	// Both come back as zero when no ratings exist.
	Aggregate(ctx context.Context) (avg float64, count int64, err error)
}

type ratingRepo struct{ db *gorm.DB }

func NewRatingRepository(db *gorm.DB) RatingRepository { return &ratingRepo{db: db} }

func (r *ratingRepo) Create(ctx context.Context, rating *model.SiteRating) error {
	return r.db.WithContext(ctx).Create(rating).Error
}

func (r *ratingRepo) Aggregate(ctx context.Context) (float64, int64, error) {
	var row struct {
		Avg   float64
		Count int64
	}
	err := r.db.WithContext(ctx).Model(&model.SiteRating{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Scan(&row).Error
	return row.Avg, row.Count, err
}
