package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aqarcrm/aqarcrm/internal/core/agent"
)

type AgentHandler struct {
	agentService *agent.Service
}

func NewAgentHandler(agentService *agent.Service) *AgentHandler {
	return &AgentHandler{agentService: agentService}
}

func (h *AgentHandler) Create(c *gin.Context) {
	var req agent.CreateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a, err := h.agentService.Create(&req)
	if err != nil {
		if errors.Is(err, agent.ErrEmailExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, agent.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, a.Sanitized())
}

func (h *AgentHandler) List(c *gin.Context) {
	agents := h.agentService.List()
	out := make([]agent.Agent, 0, len(agents))
	for _, a := range agents {
		out = append(out, a.Sanitized())
	}
	c.JSON(http.StatusOK, gin.H{"agents": out, "total": len(out)})
}

func (h *AgentHandler) Get(c *gin.Context) {
	a, err := h.agentService.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, agent.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, a.Sanitized())
}

func (h *AgentHandler) Update(c *gin.Context) {
	var req agent.UpdateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a, err := h.agentService.Update(c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, agent.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, agent.ErrEmailExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, agent.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, a.Sanitized())
}

func (h *AgentHandler) Delete(c *gin.Context) {
	if err := h.agentService.Delete(c.Param("id")); err != nil {
		if errors.Is(err, agent.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

func (h *AgentHandler) SetPassword(c *gin.Context) {
	var req struct {
		Password string `json:"password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.agentService.SetPassword(c.Param("id"), req.Password); err != nil {
		if errors.Is(err, agent.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}
