package handler

import (
	"errors"
	"net/http"

	"github.com/MugaboVedaste/e-comerce-Kush/internal/dto"
	"github.com/MugaboVedaste/e-comerce-Kush/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type ContactHandler struct{ svc service.ContactService }

func NewContactHandler(svc service.ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// Send POST /send-contact
// Validates the form, then relays the message to the operator mailbox.
// Transport failures surface as a generic 500.
func (h *ContactHandler) Send(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid JSON: " + err.Error()})
		return
	}
	if err := validate.Struct(&req); err != nil {
		msg := "all required fields must be filled"
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			msg = verrs[0].Field() + " is invalid or missing"
		}
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": msg})
		return
	}

	if err := h.svc.SendMessage(c.Request.Context(), req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ContactResponse{Success: true, Message: "Message sent successfully"})
}
