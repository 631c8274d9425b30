package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ContactRequest struct {
	Name    string `json:"name"    validate:"required,min=1"`
	Email   string `json:"email"   validate:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" validate:"required,min=1"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
