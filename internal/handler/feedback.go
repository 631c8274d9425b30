package handler

import (
	"errors"
	"net/http"

	"github.com/MugaboVedaste/e-comerce-Kush/internal/apierror"
	"github.com/MugaboVedaste/e-comerce-Kush/internal/dto"
	"github.com/MugaboVedaste/e-comerce-Kush/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FeedbackHandler struct{ svc service.FeedbackService }

func NewFeedbackHandler(svc service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{svc: svc}
}

// SubmitRating POST /submit-rating
func (h *FeedbackHandler) SubmitRating(c *gin.Context) {
	var req dto.SubmitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid JSON: " + err.Error()})
		return
	}

	summary, err := h.svc.SubmitRating(c.Request.Context(), req, clientIP(c))
	if err != nil {
		if errors.Is(err, service.ErrInvalidRating) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "failed to submit rating"})
		return
	}

	c.JSON(http.StatusOK, dto.SubmitRatingResponse{
		Success:       true,
		Message:       "Thank you for rating us!",
		AverageRating: summary.AverageRating,
		TotalRatings:  summary.TotalRatings,
	})
}

// SubmitReview POST /submit-review
func (h *FeedbackHandler) SubmitReview(c *gin.Context) {
	var req dto.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": gin.H{"body": "invalid JSON"}})
		return
	}

	review, err := h.svc.SubmitReview(c.Request.Context(), req, clientIP(c))
	if err != nil {
		var fields service.FieldErrors
		if errors.As(err, &fields) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": fields})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": gin.H{"detail": "failed to submit review"}})
		return
	}

	c.JSON(http.StatusOK, dto.SubmitReviewResponse{
		Success: true,
		Message: "Thank you for your review!",
		Review:  review,
	})
}

// ApproveReview POST /manager/reviews/:id/approve (staff only)
// The after-the-fact moderation toggle: approved=false hides a published
// review from the public pages.
func (h *FeedbackHandler) ApproveReview(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	var req dto.ApproveReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid JSON: "+err.Error()))
		return
	}
	if err := h.svc.SetReviewApproval(c.Request.Context(), id, req.Approved); err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, apierror.New("review not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("failed to update review"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
