package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// SubmitRatingRequest carries one anonymous star rating. Range is enforced
// in the service so out-of-range values produce the endpoint's own error
// shape rather than the generic validation envelope.
type SubmitRatingRequest struct {
	Rating int `json:"rating"`
}

type SubmitReviewRequest struct {
	Name       string  `json:"name"`
	Contact    *string `json:"contact"`
	ReviewText string  `json:"review_text"`
}

type ApproveReviewRequest struct {
	Approved bool `json:"approved"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// RatingSummary is the site-wide aggregate: mean of all ratings rounded to
// one decimal, and the total count. Both are zero when no ratings exist.
type RatingSummary struct {
	AverageRating float64 `json:"average_rating"`
	TotalRatings  int64   `json:"total_ratings"`
}

type SubmitRatingResponse struct {
	Success       bool    `json:"success"`
	Message       string  `json:"message"`
	AverageRating float64 `json:"average_rating"`
	TotalRatings  int64   `json:"total_ratings"`
}

type ReviewResponse struct {
	Name       string `json:"name"`
	ReviewText string `json:"review_text"`
	CreatedAt  string `json:"created_at"` // human-readable submission date
}

type SubmitReviewResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Review  ReviewResponse `json:"review"`
}
