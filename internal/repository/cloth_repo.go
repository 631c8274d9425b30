package repository

import (
	"context"

	"github.com/MugaboVedaste/e-comerce-Kush/internal/dto"
	"github.com/MugaboVedaste/e-comerce-Kush/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClothRepository defines the data access contract for clothes.
type ClothRepository interface {
	Create(ctx context.Context, c *model.Cloth) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Cloth, error)
	List(ctx context.Context, filter dto.ClothFilter) ([]model.Cloth, error)
	ListByManager(ctx context.Context, managerID uuid.UUID) ([]model.Cloth, error)
	Update(ctx context.Context, c *model.Cloth) error

	// IncrementLikes bumps the counter by one in a single UPDATE statement,
	// then returns the new value. Returns gorm.ErrRecordNotFound when the id
	// does not exist.
	IncrementLikes(ctx context.Context, id uuid.UUID) (int, error)
}

type clothRepo struct{ db *gorm.DB }

func NewClothRepository(db *gorm.DB) ClothRepository { return &clothRepo{db: db} }

func (r *clothRepo) Create(ctx context.Context, c *model.Cloth) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clothRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Cloth, error) {
	var c model.Cloth
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clothRepo) List(ctx context.Context, filter dto.ClothFilter) ([]model.Cloth, error) {
	var clothes []model.Cloth
	q := r.db.WithContext(ctx).Model(&model.Cloth{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Category != "" {
		q = q.Where("category_id = ?", filter.Category)
	}
	err := q.Order("created_at desc").Find(&clothes).Error
	return clothes, err
}

func (r *clothRepo) ListByManager(ctx context.Context, managerID uuid.UUID) ([]model.Cloth, error) {
	var clothes []model.Cloth
	err := r.db.WithContext(ctx).
		Where("manager_id = ?", managerID).
		Order("created_at desc").
		Find(&clothes).Error
	return clothes, err
}

func (r *clothRepo) Update(ctx context.Context, c *model.Cloth) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *clothRepo) IncrementLikes(ctx context.Context, id uuid.UUID) (int, error) {
	res := r.db.WithContext(ctx).Model(&model.Cloth{}).
		Where("id = ?", id).
		Update("likes", gorm.Expr("likes + 1"))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}

	var likes int
	err := r.db.WithContext(ctx).Model(&model.Cloth{}).
		Where("id = ?", id).
		Pluck("likes", &likes).Error
	return likes, err
}
