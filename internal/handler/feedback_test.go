package handler

import (
	"net/http"
	"testing"

	"github.com/MugaboVedaste/e-comerce-Kush/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitRatingEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/submit-rating", map[string]int{"rating": 5}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success       bool    `json:"success"`
		Message       string  `json:"message"`
		AverageRating float64 `json:"average_rating"`
		TotalRatings  int64   `json:"total_ratings"`
	}
	decodeBody(t, w, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, "Thank you for rating us!", resp.Message)
	assert.Equal(t, 5.0, resp.AverageRating)
	assert.Equal(t, int64(1), resp.TotalRatings)
}

func TestSubmitRatingEndpointRejectsOutOfRange(t *testing.T) {
	env := newTestEnv(t)

	for _, bad := range []int{0, 6} {
		w := env.do(t, http.MethodPost, "/submit-rating", map[string]int{"rating": bad}, "")
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp struct {
			Success bool   `json:"success"`
			Error   string `json:"error"`
		}
		decodeBody(t, w, &resp)
		assert.False(t, resp.Success)
		assert.NotEmpty(t, resp.Error)
	}

	var count int64
	require.NoError(t, env.db.Model(&model.SiteRating{}).Count(&count).Error)
	assert.Equal(t, int64(0), count, "rejected ratings must not be persisted")
}

func TestSubmitReviewEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/submit-review", map[string]string{
		"name":        "Alice",
		"review_text": "Great store!",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Review  struct {
			Name       string `json:"name"`
			ReviewText string `json:"review_text"`
			CreatedAt  string `json:"created_at"`
		} `json:"review"`
	}
	decodeBody(t, w, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, "Thank you for your review!", resp.Message)
	assert.Equal(t, "Alice", resp.Review.Name)
	assert.NotEmpty(t, resp.Review.CreatedAt)

	// The review shows up on the about page straight away.
	about := env.do(t, http.MethodGet, "/about", nil, "")
	require.Equal(t, http.StatusOK, about.Code)
	var aboutResp struct {
		RecentReviews []struct {
			Name string `json:"name"`
		} `json:"recent_reviews"`
	}
	decodeBody(t, about, &aboutResp)
	require.Len(t, aboutResp.RecentReviews, 1)
	assert.Equal(t, "Alice", aboutResp.RecentReviews[0].Name)
}

func TestSubmitReviewEndpointValidation(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/submit-review", map[string]string{
		"name":        "",
		"review_text": "  ",
	}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Success bool              `json:"success"`
		Errors  map[string]string `json:"errors"`
	}
	decodeBody(t, w, &resp)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Errors, "name")
	assert.Contains(t, resp.Errors, "review_text")

	var count int64
	require.NoError(t, env.db.Model(&model.SiteReview{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestApproveReviewEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.seedStaff(t, "manager", "secret99")
	token := env.loginToken(t, "manager", "secret99")

	submitted := env.do(t, http.MethodPost, "/submit-review", map[string]string{
		"name":        "Bob",
		"review_text": "meh",
	}, "")
	require.Equal(t, http.StatusOK, submitted.Code)

	var review model.SiteReview
	require.NoError(t, env.db.First(&review).Error)

	// Staff hides the review.
	w := env.do(t, http.MethodPost, "/manager/reviews/"+review.ID.String()+"/approve",
		map[string]bool{"approved": false}, token)
	require.Equal(t, http.StatusOK, w.Code)

	about := env.do(t, http.MethodGet, "/about", nil, "")
	var aboutResp struct {
		RecentReviews []struct {
			Name string `json:"name"`
		} `json:"recent_reviews"`
	}
	decodeBody(t, about, &aboutResp)
	assert.Empty(t, aboutResp.RecentReviews)

	// Without a token the moderation endpoint is closed.
	anon := env.do(t, http.MethodPost, "/manager/reviews/"+review.ID.String()+"/approve",
		map[string]bool{"approved": true}, "")
	assert.Equal(t, http.StatusUnauthorized, anon.Code)

	// Unknown review id.
	missing := env.do(t, http.MethodPost, "/manager/reviews/"+uuid.NewString()+"/approve",
		map[string]bool{"approved": true}, token)
	assert.Equal(t, http.StatusNotFound, missing.Code)
}
