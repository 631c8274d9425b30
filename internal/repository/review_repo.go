package repository

import (
	"context"

	"github.com/MugaboVedaste/e-comerce-Kush/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(ctx context.Context, r *model.SiteReview) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.SiteReview, error)
	// ListRecentApproved returns the newest approved reviews, newest first.
	ListRecentApproved(ctx context.Context, limit int) ([]model.SiteReview, error)
	SetApproved(ctx context.Context, id uuid.UUID, approved bool) error
}

type reviewRepo struct{ db *gorm.DB }

func NewReviewRepository(db *gorm.DB) ReviewRepository { return &reviewRepo{db: db} }

func (r *reviewRepo) Create(ctx context.Context, review *model.SiteReview) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.SiteReview, error) {
	var review model.SiteReview
	err := r.db.WithContext(ctx).First(&review, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepo) ListRecentApproved(ctx context.Context, limit int) ([]model.SiteReview, error) {
	var reviews []model.SiteReview
	err := r.db.WithContext(ctx).
		Where("is_approved = ?", true).
		Order("created_at desc").
		Limit(limit).
		Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepo) SetApproved(ctx context.Context, id uuid.UUID, approved bool) error {
	res := r.db.WithContext(ctx).Model(&model.SiteReview{}).
		Where("id = ?", id).
		Update("is_approved", approved)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
