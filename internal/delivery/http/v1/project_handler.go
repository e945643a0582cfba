package v1

import (
	"fmt"
	"net/http"
	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/logger"
	"strings"

	"github.com/gin-gonic/gin"
)

// DataSourceHeader tells clients whether a listing came from the store or fallback data.
const DataSourceHeader = "X-Data-Source"

type ProjectHandler struct {
	projectUC domain.ProjectUsecase
}

// NewProjectHandler registers the public project routes
func NewProjectHandler(api *gin.RouterGroup, projectUC domain.ProjectUsecase) {
	handler := &ProjectHandler{projectUC: projectUC}

	api.GET("/projects", handler.ListProjects)
}

// ListProjects godoc
// @Summary      List portfolio projects
// @Description  Returns stored projects, or a static sample when the store cannot be read.
// @Tags         projects
// @Produce      json
// @Param        featured  query     bool  false  "Only featured (true) or non-featured (false) projects"
// @Success      200       {array}   domain.Project
// @Failure      422       {object}  response.ErrorBody
// @Router       /api/projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	var filter domain.ProjectFilter
	if raw, ok := c.GetQuery("featured"); ok {
		featured, err := parseBoolQuery(raw)
		if err != nil {
			c.Error(apperror.Unprocessable("validation failed", []string{"featured: " + err.Error()}, err))
			return
		}
		filter.Featured = &featured
	}

	listing := h.projectUC.ListProjects(c.Request.Context(), filter)
	if listing.FromStore() {
		c.Header(DataSourceHeader, "store")
	} else {
		c.Header(DataSourceHeader, "fallback")
		logger.Log.Warn("Serving fallback projects", "outcome", string(listing.Outcome), "reason", listing.Reason)
	}

	response.JSON(c, http.StatusOK, listing.Projects)
}

// parseBoolQuery accepts the usual spellings of a boolean query value.
func parseBoolQuery(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "t", "yes", "y", "on":
		return true, nil
	case "0", "false", "f", "no", "n", "off":
		return false, nil
	default:
		return false, fmt.Errorf("value could not be parsed to a boolean")
	}
}
