package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aqarcrm/aqarcrm/internal/remote"
)

type SyncHandler struct {
	syncService *remote.Service
}

func NewSyncHandler(syncService *remote.Service) *SyncHandler {
	return &SyncHandler{syncService: syncService}
}

// Trigger runs a full snapshot refresh against the central service. When no
// remote is configured the endpoint says so instead of failing.
func (h *SyncHandler) Trigger(c *gin.Context) {
	if h.syncService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no remote service configured"})
		return
	}

	report := h.syncService.SyncAll(c.Request.Context())
	c.JSON(http.StatusOK, report)
}
