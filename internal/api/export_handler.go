package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"alcyxob/workout-planner/internal/domain"
	"alcyxob/workout-planner/internal/service"
)

// ExportHandler pushes the selected plan to the configured CalDAV calendar.
type ExportHandler struct {
	exportService service.ExportService // nil when CalDAV is not configured
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

type ExportRequest struct {
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}

func (h *ExportHandler) Export(c *gin.Context) {
	if h.exportService == nil {
		abortWithError(c, http.StatusServiceUnavailable, "Calendar export is not configured")
		return
	}

	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	start, err := domain.ParseDateOnly(req.Start)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Invalid start: %v", err))
		return
	}
	end, err := domain.ParseDateOnly(req.End)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Invalid end: %v", err))
		return
	}

	result, err := h.exportService.ExportRange(c.Request.Context(), start, end)
	if err != nil {
		abortWithError(c, http.StatusBadGateway, fmt.Sprintf("Export failed: %v", err))
		return
	}
	c.JSON(http.StatusOK, result)
}
