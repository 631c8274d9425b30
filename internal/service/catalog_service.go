package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MugaboVedaste/e-comerce-Kush/internal/dto"
	"github.com/MugaboVedaste/e-comerce-Kush/internal/model"
	"github.com/MugaboVedaste/e-comerce-Kush/internal/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// CatalogService assembles categories together with their clothes for the
// public listing pages and manages the categories themselves.
type CatalogService interface {
	// Compose lists all categories, each with its attached clothes filtered
	// to the given status ("" attaches everything).
	Compose(ctx context.Context, status string) ([]dto.CategoryWithClothes, error)
	// CategoryBySlug resolves one category and all its clothes regardless of
	// status. Returns ErrNotFound when the slug doesn't match.
	CategoryBySlug(ctx context.Context, s string) (*dto.CategoryWithClothes, error)
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (dto.CategoryResponse, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

type catalogService struct {
	categories repository.CategoryRepository
}

func NewCatalogService(categories repository.CategoryRepository) CatalogService {
	return &catalogService{categories: categories}
}

func mapCategory(c model.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
	}
}

func mapCategoryWithClothes(c model.Category) dto.CategoryWithClothes {
	out := dto.CategoryWithClothes{
		CategoryResponse: mapCategory(c),
		Clothes:          make([]dto.ClothResponse, 0, len(c.Clothes)),
	}
	for _, cloth := range c.Clothes {
		out.Clothes = append(out.Clothes, mapCloth(cloth))
	}
	return out
}

func (s *catalogService) Compose(ctx context.Context, status string) ([]dto.CategoryWithClothes, error) {
	list, err := s.categories.ListWithClothes(ctx, status)
	if err != nil {
		return nil, err
	}
	result := make([]dto.CategoryWithClothes, 0, len(list))
	for _, c := range list {
		result = append(result, mapCategoryWithClothes(c))
	}
	return result, nil
}

func (s *catalogService) CategoryBySlug(ctx context.Context, sl string) (*dto.CategoryWithClothes, error) {
	c, err := s.categories.FindBySlug(ctx, sl)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	out := mapCategoryWithClothes(*c)
	return &out, nil
}

func (s *catalogService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (dto.CategoryResponse, error) {
	sl, err := s.uniqueSlug(ctx, req.Name)
	if err != nil {
		return dto.CategoryResponse{}, err
	}
	c := &model.Category{
		Name:        req.Name,
		Slug:        sl,
		Description: req.Description,
	}
	if err := s.categories.Create(ctx, c); err != nil {
		return dto.CategoryResponse{}, err
	}
	return mapCategory(*c), nil
}

func (s *catalogService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if _, err := s.categories.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.categories.Delete(ctx, id)
}

// uniqueSlug derives a URL-safe slug from the name and suffixes -2, -3, ...
// until it doesn't collide. The slug is generated once here and never
// regenerated on later edits.
func (s *catalogService) uniqueSlug(ctx context.Context, name string) (string, error) {
	base := slug.Make(name)
	candidate := base
	for i := 2; ; i++ {
		exists, err := s.categories.SlugExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}
