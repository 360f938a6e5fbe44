package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aqarcrm/aqarcrm/internal/core/maintenance"
)

type MaintenanceHandler struct {
	maintenanceService *maintenance.Service
}

func NewMaintenanceHandler(maintenanceService *maintenance.Service) *MaintenanceHandler {
	return &MaintenanceHandler{maintenanceService: maintenanceService}
}

func (h *MaintenanceHandler) Create(c *gin.Context) {
	var req maintenance.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := h.maintenanceService.Create(&req)
	if err != nil {
		if errors.Is(err, maintenance.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, m)
}

func (h *MaintenanceHandler) List(c *gin.Context) {
	var filter maintenance.Filter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	requests := h.maintenanceService.List(filter)
	if requests == nil {
		requests = []maintenance.Request{}
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests, "total": len(requests)})
}

func (h *MaintenanceHandler) Get(c *gin.Context) {
	m, err := h.maintenanceService.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, maintenance.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, m)
}

func (h *MaintenanceHandler) Update(c *gin.Context) {
	var req maintenance.UpdateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := h.maintenanceService.Update(c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, maintenance.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, maintenance.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, m)
}

func (h *MaintenanceHandler) Delete(c *gin.Context) {
	if err := h.maintenanceService.Delete(c.Param("id")); err != nil {
		if errors.Is(err, maintenance.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
