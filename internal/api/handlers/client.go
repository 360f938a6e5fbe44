package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aqarcrm/aqarcrm/internal/core/client"
	"github.com/aqarcrm/aqarcrm/internal/core/matching"
)

type ClientHandler struct {
	clientService   *client.Service
	matchingService *matching.Service
}

func NewClientHandler(clientService *client.Service, matchingService *matching.Service) *ClientHandler {
	return &ClientHandler{clientService: clientService, matchingService: matchingService}
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req client.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.clientService.Create(&req)
	if err != nil {
		if errors.Is(err, client.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *ClientHandler) List(c *gin.Context) {
	var filter client.Filter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sortOpt := client.SortOption(c.DefaultQuery("sort", string(client.SortNewest)))

	c.JSON(http.StatusOK, h.clientService.List(filter, sortOpt))
}

func (h *ClientHandler) Get(c *gin.Context) {
	cl, err := h.clientService.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, cl)
}

func (h *ClientHandler) Update(c *gin.Context) {
	var req client.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cl, err := h.clientService.Update(c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, client.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, cl)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	if err := h.clientService.Delete(c.Param("id")); err != nil {
		if errors.Is(err, client.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

func (h *ClientHandler) AddInteraction(c *gin.Context) {
	var req client.AddInteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cl, err := h.clientService.AddInteraction(c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, client.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, cl)
}

func (h *ClientHandler) ListInteractions(c *gin.Context) {
	cl, err := h.clientService.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	interactions := cl.Interactions
	if interactions == nil {
		interactions = []client.Interaction{}
	}
	c.JSON(http.StatusOK, gin.H{"interactions": interactions, "total": len(interactions)})
}

func (h *ClientHandler) SetNeeds(c *gin.Context) {
	var req client.SetNeedsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cl, err := h.clientService.SetNeeds(c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, client.ErrNeedsForRole) || errors.Is(err, client.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, cl)
}

// Matches returns the inventory subset satisfying the client's needs.
func (h *ClientHandler) Matches(c *gin.Context) {
	matches, err := h.matchingService.MatchesForClient(c.Param("id"))
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, matching.ErrNoNeeds) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"matches": matches, "total": len(matches)})
}
