package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aqarcrm/aqarcrm/internal/core/stats"
)

type DashboardHandler struct {
	statsService *stats.Service
}

func NewDashboardHandler(statsService *stats.Service) *DashboardHandler {
	return &DashboardHandler{statsService: statsService}
}

func (h *DashboardHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.statsService.Dashboard(time.Now()))
}
