package service

import (
	"context"
	"errors"
	"time"

	"github.com/MugaboVedaste/e-comerce-Kush/internal/dto"
	"github.com/MugaboVedaste/e-comerce-Kush/internal/model"
	"github.com/MugaboVedaste/e-comerce-Kush/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClothService covers the cloth lifecycle: staff create/edit with the owner
// gate, public reads, the manager dashboard listing, and the anonymous like
// counter.
type ClothService interface {
	Create(ctx context.Context, req dto.CreateClothRequest, managerID uuid.UUID) (dto.ClothResponse, error)
	// Update applies the edit only when actorID matches the cloth's manager;
	// otherwise it returns ErrNotOwner and changes nothing.
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateClothRequest, actorID uuid.UUID) (dto.ClothResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (dto.ClothResponse, error)
	List(ctx context.Context, filter dto.ClothFilter) ([]dto.ClothResponse, error)
	ListByManager(ctx context.Context, managerID uuid.UUID) ([]dto.ClothResponse, error)
	// Like increments the counter by exactly one. Repeated calls keep
	// incrementing; there is no dedup by design.
	Like(ctx context.Context, id uuid.UUID) (int, error)
}

type clothService struct {
	clothes    repository.ClothRepository
	categories repository.CategoryRepository
}

func NewClothService(clothes repository.ClothRepository, categories repository.CategoryRepository) ClothService {
	return &clothService{clothes: clothes, categories: categories}
}

func mapCloth(c model.Cloth) dto.ClothResponse {
	return dto.ClothResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Price:       c.Price,
		Description: c.Description,
		Status:      c.Status,
		CategoryID:  c.CategoryID.String(),
		ManagerID:   c.ManagerID.String(),
		ImageFront:  c.ImageFront,
		ImageLeft:   c.ImageLeft,
		ImageRight:  c.ImageRight,
		Likes:       c.Likes,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   c.UpdatedAt.Format(time.RFC3339),
	}
}

func (s *clothService) Create(ctx context.Context, req dto.CreateClothRequest, managerID uuid.UUID) (dto.ClothResponse, error) {
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return dto.ClothResponse{}, errors.New("invalid category id")
	}
	if _, err := s.categories.FindByID(ctx, categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ClothResponse{}, errors.New("category not found")
		}
		return dto.ClothResponse{}, err
	}

	status := req.Status
	if status == "" {
		status = model.StatusAvailable
	}

	c := &model.Cloth{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Status:      status,
		CategoryID:  categoryID,
		ManagerID:   managerID,
		ImageFront:  req.ImageFront,
		ImageLeft:   req.ImageLeft,
		ImageRight:  req.ImageRight,
	}
	if err := s.clothes.Create(ctx, c); err != nil {
		return dto.ClothResponse{}, err
	}
	return mapCloth(*c), nil
}

func (s *clothService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateClothRequest, actorID uuid.UUID) (dto.ClothResponse, error) {
	c, err := s.clothes.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ClothResponse{}, ErrNotFound
		}
		return dto.ClothResponse{}, err
	}

	// Ownership check happens before any field is touched.
	if c.ManagerID != actorID {
		return dto.ClothResponse{}, ErrNotOwner
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Price != nil {
		c.Price = *req.Price
	}
	if req.Description != nil {
		c.Description = req.Description
	}
	if req.Status != nil {
		c.Status = *req.Status
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return dto.ClothResponse{}, errors.New("invalid category id")
		}
		if _, err := s.categories.FindByID(ctx, categoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return dto.ClothResponse{}, errors.New("category not found")
			}
			return dto.ClothResponse{}, err
		}
		c.CategoryID = categoryID
	}
	if req.ImageFront != nil {
		c.ImageFront = req.ImageFront
	}
	if req.ImageLeft != nil {
		c.ImageLeft = req.ImageLeft
	}
	if req.ImageRight != nil {
		c.ImageRight = req.ImageRight
	}

	if err := s.clothes.Update(ctx, c); err != nil {
		return dto.ClothResponse{}, err
	}
	return mapCloth(*c), nil
}

func (s *clothService) GetByID(ctx context.Context, id uuid.UUID) (dto.ClothResponse, error) {
	c, err := s.clothes.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ClothResponse{}, ErrNotFound
		}
		return dto.ClothResponse{}, err
	}
	return mapCloth(*c), nil
}

func (s *clothService) List(ctx context.Context, filter dto.ClothFilter) ([]dto.ClothResponse, error) {
	list, err := s.clothes.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ClothResponse, 0, len(list))
	for _, c := range list {
		result = append(result, mapCloth(c))
	}
	return result, nil
}

func (s *clothService) ListByManager(ctx context.Context, managerID uuid.UUID) ([]dto.ClothResponse, error) {
	list, err := s.clothes.ListByManager(ctx, managerID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ClothResponse, 0, len(list))
	for _, c := range list {
		result = append(result, mapCloth(c))
	}
	return result, nil
}

func (s *clothService) Like(ctx context.Context, id uuid.UUID) (int, error) {
	likes, err := s.clothes.IncrementLikes(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return likes, nil
}
