package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateCategoryRequest struct {
	Name        string  `json:"name"        validate:"required,min=2,max=100"`
	Description *string `json:"description"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CategoryResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
	CreatedAt   string  `json:"created_at"`
}

// CategoryWithClothes is a category plus the clothes attached for display.
type CategoryWithClothes struct {
	CategoryResponse
	Clothes []ClothResponse `json:"clothes"`
}

// LandingResponse is the full payload for the public landing page.
type LandingResponse struct {
	Categories    []CategoryWithClothes `json:"categories"`
	Rating        RatingSummary         `json:"rating"`
	RecentReviews []ReviewResponse      `json:"recent_reviews"`
}

// AboutResponse carries the rating summary and recent reviews shown on the
// about page.
type AboutResponse struct {
	Rating        RatingSummary    `json:"rating"`
	RecentReviews []ReviewResponse `json:"recent_reviews"`
}
