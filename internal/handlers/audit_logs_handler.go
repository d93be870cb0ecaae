package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/hbnb/internal/facade"
	"github.com/BruksfildServices01/hbnb/internal/httperr"
	"github.com/BruksfildServices01/hbnb/internal/httpresp"
	"github.com/BruksfildServices01/hbnb/internal/middleware"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	facade *facade.Facade
}

func NewAuditLogsHandler(f *facade.Facade) *AuditLogsHandler {
	return &AuditLogsHandler{facade: f}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil {
		httperr.BadRequest(c, "invalid_limit", "limit must be an integer")
		return
	}

	logs, err := h.facade.RecentAuditLogs(c.Request.Context(), middleware.CallerFrom(c), limit)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, logs)
}
