package v1

import (
	"net/http"
	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required).
// limiter runs before the handler when non-nil.
func NewContactHandler(api *gin.RouterGroup, contactUC domain.ContactUsecase, limiter gin.HandlerFunc) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	handlers := []gin.HandlerFunc{}
	if limiter != nil {
		handlers = append(handlers, limiter)
	}
	handlers = append(handlers, handler.SubmitContact)

	api.POST("/contact", handlers...)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Stores a message from the contact form. This is a public endpoint.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactMessage  true  "Contact Form Data"
// @Success      200      {object}  response.OK
// @Failure      422      {object}  response.ErrorBody
// @Failure      429      {object}  response.ErrorBody
// @Failure      500      {object}  response.ErrorBody
// @Router       /api/contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactMessage
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Unprocessable("validation failed", validation.FormatValidationErrors(err), err))
		return
	}

	if _, err := h.contactUC.SubmitContact(c.Request.Context(), &req); err != nil {
		c.Error(apperror.New(http.StatusInternalServerError, err.Error(), err))
		return
	}

	response.JSON(c, http.StatusOK, response.OK{OK: true})
}
