package v1

import (
	"net/http"
	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthUC domain.HealthUsecase
}

// NewHealthHandler registers the liveness and diagnostics routes
func NewHealthHandler(r gin.IRoutes, healthUC domain.HealthUsecase) {
	handler := &HealthHandler{healthUC: healthUC}

	r.GET("/", handler.Root)
	r.GET("/test", handler.Diagnostics)
}

// Root godoc
// @Summary      Liveness
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.Message
// @Router       / [get]
func (h *HealthHandler) Root(c *gin.Context) {
	response.JSON(c, http.StatusOK, response.Message{Message: "Portfolio API running"})
}

// Diagnostics godoc
// @Summary      Backend and database diagnostics
// @Description  Reports store connectivity. Always answers 200; failures are described in the payload.
// @Tags         health
// @Produce      json
// @Success      200  {object}  domain.Diagnostics
// @Router       /test [get]
func (h *HealthHandler) Diagnostics(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.healthUC.Diagnose(c.Request.Context()))
}
