package handler

import (
	"net/http"

	"github.com/MugaboVedaste/e-comerce-Kush/internal/apierror"
	"github.com/MugaboVedaste/e-comerce-Kush/internal/dto"
	"github.com/MugaboVedaste/e-comerce-Kush/internal/middleware"
	"github.com/MugaboVedaste/e-comerce-Kush/internal/model"
	"github.com/MugaboVedaste/e-comerce-Kush/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ClothesHandler struct{ svc service.ClothService }

func NewClothesHandler(svc service.ClothService) *ClothesHandler {
	return &ClothesHandler{svc: svc}
}

// List GET /clothes and GET /manager/clothes
// Defaults to available clothes; ?status=all lifts the filter, ?status=sold
// narrows it.
func (h *ClothesHandler) List(c *gin.Context) {
	var filter dto.ClothFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	switch filter.Status {
	case "all":
		filter.Status = ""
	case "":
		filter.Status = model.StatusAvailable
	}

	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list clothes"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Detail GET /clothes/:id and GET /manager/clothes/:id
func (h *ClothesHandler) Detail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, apierror.New("cloth not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("failed to load cloth"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Like POST /clothes/:id/like
// Unauthenticated raw counter: every call increments by one, no dedup.
func (h *ClothesHandler) Like(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	likes, err := h.svc.Like(c.Request.Context(), id)
	if err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "cloth not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to like cloth"})
		return
	}
	c.JSON(http.StatusOK, dto.LikeResponse{Success: true, Likes: likes})
}

// Create POST /manager/clothes/add (staff only)
// The authenticated staff user becomes the assigned manager.
func (h *ClothesHandler) Create(c *gin.Context) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, apierror.New("authentication required"))
		return
	}
	var req dto.CreateClothRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req, actorID)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Edit POST /manager/clothes/:id/edit (staff only; must be the owner)
func (h *ClothesHandler) Edit(c *gin.Context) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, apierror.New("authentication required"))
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	var req dto.UpdateClothRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, svcErr := h.svc.Update(c.Request.Context(), id, req, actorID)
	if svcErr != nil {
		switch svcErr {
		case service.ErrNotFound:
			c.JSON(http.StatusNotFound, apierror.New("cloth not found"))
		case service.ErrNotOwner:
			c.JSON(http.StatusForbidden, apierror.New(svcErr.Error()))
		default:
			c.JSON(http.StatusBadRequest, apierror.New(svcErr.Error()))
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Dashboard GET /manager/dashboard (staff only)
// Lists only the clothes managed by the authenticated user.
func (h *ClothesHandler) Dashboard(c *gin.Context) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, apierror.New("authentication required"))
		return
	}
	resp, err := h.svc.ListByManager(c.Request.Context(), actorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to load dashboard"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"clothes": resp})
}
