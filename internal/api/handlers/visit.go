package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aqarcrm/aqarcrm/internal/core/visit"
)

type VisitHandler struct {
	visitService *visit.Service
}

func NewVisitHandler(visitService *visit.Service) *VisitHandler {
	return &VisitHandler{visitService: visitService}
}

func (h *VisitHandler) Create(c *gin.Context) {
	var req visit.CreateVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	v, err := h.visitService.Create(&req)
	if err != nil {
		if errors.Is(err, visit.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, v)
}

func (h *VisitHandler) List(c *gin.Context) {
	var filter visit.Filter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	visits := h.visitService.List(filter)
	if visits == nil {
		visits = []visit.Visit{}
	}
	c.JSON(http.StatusOK, gin.H{"visits": visits, "total": len(visits)})
}

func (h *VisitHandler) Get(c *gin.Context) {
	v, err := h.visitService.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, visit.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, v)
}

func (h *VisitHandler) Update(c *gin.Context) {
	var req visit.UpdateVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	v, err := h.visitService.Update(c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, visit.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, visit.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, v)
}

func (h *VisitHandler) Delete(c *gin.Context) {
	if err := h.visitService.Delete(c.Param("id")); err != nil {
		if errors.Is(err, visit.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// SendReminders runs the reminder sweep on demand; the cron job runs the
// same code hourly.
func (h *VisitHandler) SendReminders(c *gin.Context) {
	sent := h.visitService.SendReminders(time.Now())
	c.JSON(http.StatusOK, gin.H{"sent": sent})
}
