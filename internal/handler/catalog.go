package handler

import (
	"net/http"

	"github.com/MugaboVedaste/e-comerce-Kush/internal/apierror"
	"github.com/MugaboVedaste/e-comerce-Kush/internal/dto"
	"github.com/MugaboVedaste/e-comerce-Kush/internal/model"
	"github.com/MugaboVedaste/e-comerce-Kush/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	catalog  service.CatalogService
	feedback service.FeedbackService
}

func NewCatalogHandler(catalog service.CatalogService, feedback service.FeedbackService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, feedback: feedback}
}

// Landing GET /
// The landing page shows available clothes only; the status filter is an
// explicit policy, see DESIGN.md.
func (h *CatalogHandler) Landing(c *gin.Context) {
	ctx := c.Request.Context()

	categories, err := h.catalog.Compose(ctx, model.StatusAvailable)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to load catalog"))
		return
	}
	summary, err := h.feedback.RatingSummary(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to load rating summary"))
		return
	}
	reviews, err := h.feedback.RecentReviews(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to load reviews"))
		return
	}

	c.JSON(http.StatusOK, dto.LandingResponse{
		Categories:    categories,
		Rating:        summary,
		RecentReviews: reviews,
	})
}

// About GET /about
func (h *CatalogHandler) About(c *gin.Context) {
	ctx := c.Request.Context()

	summary, err := h.feedback.RatingSummary(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to load rating summary"))
		return
	}
	reviews, err := h.feedback.RecentReviews(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to load reviews"))
		return
	}

	c.JSON(http.StatusOK, dto.AboutResponse{Rating: summary, RecentReviews: reviews})
}

// CategoryDetail GET /category/:slug
func (h *CatalogHandler) CategoryDetail(c *gin.Context) {
	resp, err := h.catalog.CategoryBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, apierror.New("category not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("failed to load category"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateCategory POST /manager/categories (staff only)
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.catalog.CreateCategory(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// DeleteCategory DELETE /manager/categories/:id (staff only, cascades)
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	if err := h.catalog.DeleteCategory(c.Request.Context(), id); err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, apierror.New("category not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("failed to delete category"))
		return
	}
	c.JSON(http.StatusNoContent, nil)
}
