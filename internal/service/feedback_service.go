package service

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/MugaboVedaste/e-comerce-Kush/internal/dto"
	"github.com/MugaboVedaste/e-comerce-Kush/internal/model"
	"github.com/MugaboVedaste/e-comerce-Kush/internal/repository"
	"github.com/MugaboVedaste/e-comerce-Kush/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// recentReviewLimit is how many approved reviews the public pages show.
const recentReviewLimit = 5

// reviewDateFormat is the human-readable submission date echoed back to the
// reviewer and shown on the public pages.
const reviewDateFormat = "January 2, 2006"

// ErrInvalidRating is returned for ratings outside [1,5]; nothing is persisted.
var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// FieldErrors carries per-field validation messages for the review form.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msg := range e {
		parts = append(parts, field+": "+msg)
	}
	return strings.Join(parts, "; ")
}

// MailQueue is the slice of the worker dispatcher the feedback service needs.
type MailQueue interface {
	EnqueueEmail(ctx context.Context, payload interface{}) error
}

// FeedbackService handles the site-wide star ratings and written reviews:
// aggregate computation, submissions, and the moderation toggle.
type FeedbackService interface {
	// RatingSummary recomputes the aggregate on every call; there is no cache.
	RatingSummary(ctx context.Context) (dto.RatingSummary, error)
	SubmitRating(ctx context.Context, req dto.SubmitRatingRequest, submitterIP string) (dto.RatingSummary, error)
	RecentReviews(ctx context.Context) ([]dto.ReviewResponse, error)
	SubmitReview(ctx context.Context, req dto.SubmitReviewRequest, submitterIP string) (dto.ReviewResponse, error)
	SetReviewApproval(ctx context.Context, id uuid.UUID, approved bool) error
}

type feedbackService struct {
	ratings  repository.RatingRepository
	reviews  repository.ReviewRepository
	mail     MailQueue
	operator string // operator mailbox for moderation notices
}

func NewFeedbackService(ratings repository.RatingRepository, reviews repository.ReviewRepository, mail MailQueue, operator string) FeedbackService {
	return &feedbackService{ratings: ratings, reviews: reviews, mail: mail, operator: operator}
}

func (s *feedbackService) RatingSummary(ctx context.Context) (dto.RatingSummary, error) {
	avg, count, err := s.ratings.Aggregate(ctx)
	if err != nil {
		return dto.RatingSummary{}, err
	}
	return dto.RatingSummary{
		AverageRating: math.Round(avg*10) / 10,
		TotalRatings:  count,
	}, nil
}

func (s *feedbackService) SubmitRating(ctx context.Context, req dto.SubmitRatingRequest, submitterIP string) (dto.RatingSummary, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return dto.RatingSummary{}, ErrInvalidRating
	}

	rating := &model.SiteRating{Rating: req.Rating}
	if submitterIP != "" {
		rating.SubmitterIP = &submitterIP
	}
	if err := s.ratings.Create(ctx, rating); err != nil {
		return dto.RatingSummary{}, err
	}
	return s.RatingSummary(ctx)
}

func mapReview(r model.SiteReview) dto.ReviewResponse {
	return dto.ReviewResponse{
		Name:       r.Name,
		ReviewText: r.ReviewText,
		CreatedAt:  r.CreatedAt.Format(reviewDateFormat),
	}
}

func (s *feedbackService) RecentReviews(ctx context.Context) ([]dto.ReviewResponse, error) {
	list, err := s.reviews.ListRecentApproved(ctx, recentReviewLimit)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ReviewResponse, 0, len(list))
	for _, r := range list {
		result = append(result, mapReview(r))
	}
	return result, nil
}

func (s *feedbackService) SubmitReview(ctx context.Context, req dto.SubmitReviewRequest, submitterIP string) (dto.ReviewResponse, error) {
	fields := FieldErrors{}
	if strings.TrimSpace(req.Name) == "" {
		fields["name"] = "This field is required"
	}
	if strings.TrimSpace(req.ReviewText) == "" {
		fields["review_text"] = "This field is required"
	}
	if len(fields) > 0 {
		return dto.ReviewResponse{}, fields
	}

	review := &model.SiteReview{
		Name:       strings.TrimSpace(req.Name),
		Contact:    req.Contact,
		ReviewText: strings.TrimSpace(req.ReviewText),
		IsApproved: true, // auto-published; moderation is after the fact
	}
	if submitterIP != "" {
		review.SubmitterIP = &submitterIP
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return dto.ReviewResponse{}, err
	}

	// Best effort: a failed notification must not fail the submission.
	if s.mail != nil {
		payload := worker.EmailJobPayload{
			To:      s.operator,
			Subject: "New review from " + review.Name,
			Body:    review.ReviewText,
		}
		if err := s.mail.EnqueueEmail(ctx, payload); err != nil {
			log.Warn().Err(err).Msg("failed to enqueue review notification")
		}
	}

	return mapReview(*review), nil
}

func (s *feedbackService) SetReviewApproval(ctx context.Context, id uuid.UUID, approved bool) error {
	err := s.reviews.SetApproved(ctx, id, approved)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
