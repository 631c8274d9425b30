package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateClothRequest struct {
	Name        string          `json:"name"        validate:"required,min=2,max=200"`
	Price       decimal.Decimal `json:"price"       validate:"required"`
	Description *string         `json:"description"`
	Status      string          `json:"status"      validate:"omitempty,oneof=available sold"`
	CategoryID  string          `json:"category_id" validate:"required,uuid"`
	ImageFront  *string         `json:"image_front"`
	ImageLeft   *string         `json:"image_left"`
	ImageRight  *string         `json:"image_right"`
}

type UpdateClothRequest struct {
	Name        *string          `json:"name"        validate:"omitempty,min=2,max=200"`
	Price       *decimal.Decimal `json:"price"`
	Description *string          `json:"description"`
	Status      *string          `json:"status"      validate:"omitempty,oneof=available sold"`
	CategoryID  *string          `json:"category_id" validate:"omitempty,uuid"`
	ImageFront  *string          `json:"image_front"`
	ImageLeft   *string          `json:"image_left"`
	ImageRight  *string          `json:"image_right"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type ClothFilter struct {
	Status   string `form:"status"`
	Category string `form:"category"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ClothResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description *string         `json:"description"`
	Status      string          `json:"status"`
	CategoryID  string          `json:"category_id"`
	ManagerID   string          `json:"manager_id"`
	ImageFront  *string         `json:"image_front"`
	ImageLeft   *string         `json:"image_left"`
	ImageRight  *string         `json:"image_right"`
	Likes       int             `json:"likes"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}

// LikeResponse is the payload returned by the public like endpoint.
type LikeResponse struct {
	Success bool `json:"success"`
	Likes   int  `json:"likes"`
}
