package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aqarcrm/aqarcrm/internal/core/campaign"
	"github.com/aqarcrm/aqarcrm/internal/core/client"
)

type CampaignHandler struct {
	campaignService *campaign.Service
}

func NewCampaignHandler(campaignService *campaign.Service) *CampaignHandler {
	return &CampaignHandler{campaignService: campaignService}
}

func (h *CampaignHandler) Create(c *gin.Context) {
	var req campaign.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, h.campaignService.Create(&req))
}

func (h *CampaignHandler) List(c *gin.Context) {
	campaigns := h.campaignService.List()
	if campaigns == nil {
		campaigns = []campaign.Campaign{}
	}
	c.JSON(http.StatusOK, gin.H{"campaigns": campaigns, "total": len(campaigns)})
}

func (h *CampaignHandler) Get(c *gin.Context) {
	cp, err := h.campaignService.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, campaign.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, cp)
}

func (h *CampaignHandler) Update(c *gin.Context) {
	var req campaign.UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cp, err := h.campaignService.Update(c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, campaign.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, campaign.ErrAlreadySent) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, cp)
}

func (h *CampaignHandler) Delete(c *gin.Context) {
	if err := h.campaignService.Delete(c.Param("id")); err != nil {
		if errors.Is(err, campaign.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// Preview returns the resolved audience without sending anything.
func (h *CampaignHandler) Preview(c *gin.Context) {
	audience, err := h.campaignService.Preview(c.Param("id"))
	if err != nil {
		if errors.Is(err, campaign.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if audience == nil {
		audience = []client.Client{}
	}
	c.JSON(http.StatusOK, gin.H{"recipients": audience, "total": len(audience)})
}

func (h *CampaignHandler) Send(c *gin.Context) {
	result, err := h.campaignService.Send(c.Param("id"))
	if err != nil {
		if errors.Is(err, campaign.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, campaign.ErrAlreadySent) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
