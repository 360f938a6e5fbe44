package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aqarcrm/aqarcrm/internal/core/rental"
)

type RentalHandler struct {
	rentalService *rental.Service
}

func NewRentalHandler(rentalService *rental.Service) *RentalHandler {
	return &RentalHandler{rentalService: rentalService}
}

func (h *RentalHandler) CreateContract(c *gin.Context) {
	var req rental.CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contract, err := h.rentalService.CreateContract(&req)
	if err != nil {
		if errors.Is(err, rental.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, contract)
}

func (h *RentalHandler) ListContracts(c *gin.Context) {
	var filter rental.ContractFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contracts := h.rentalService.ListContracts(filter)
	if contracts == nil {
		contracts = []rental.Contract{}
	}
	c.JSON(http.StatusOK, gin.H{"contracts": contracts, "total": len(contracts)})
}

func (h *RentalHandler) GetContract(c *gin.Context) {
	contract, err := h.rentalService.GetContract(c.Param("id"))
	if err != nil {
		if errors.Is(err, rental.ErrContractNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, contract)
}

func (h *RentalHandler) UpdateContract(c *gin.Context) {
	var req rental.UpdateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contract, err := h.rentalService.UpdateContract(c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, rental.ErrContractNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, rental.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, contract)
}

func (h *RentalHandler) DeleteContract(c *gin.Context) {
	if err := h.rentalService.DeleteContract(c.Param("id")); err != nil {
		if errors.Is(err, rental.ErrContractNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

func (h *RentalHandler) CreatePayment(c *gin.Context) {
	var req rental.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payment, err := h.rentalService.CreatePayment(c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, rental.ErrContractNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, rental.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, payment)
}

func (h *RentalHandler) ListPayments(c *gin.Context) {
	var filter rental.PaymentFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if id := c.Param("id"); id != "" {
		filter.ContractID = id
	}

	payments := h.rentalService.ListPayments(filter)
	if payments == nil {
		payments = []rental.Payment{}
	}
	c.JSON(http.StatusOK, gin.H{"payments": payments, "total": len(payments)})
}

func (h *RentalHandler) MarkPaid(c *gin.Context) {
	var req rental.MarkPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payment, err := h.rentalService.MarkPaid(c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, rental.ErrPaymentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, rental.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, payment)
}

func (h *RentalHandler) CancelPayment(c *gin.Context) {
	payment, err := h.rentalService.CancelPayment(c.Param("id"))
	if err != nil {
		if errors.Is(err, rental.ErrPaymentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, payment)
}

func (h *RentalHandler) ListAlerts(c *gin.Context) {
	includeResolved := c.Query("include_resolved") == "true"
	alerts := h.rentalService.ListAlerts(includeResolved)
	if alerts == nil {
		alerts = []rental.Alert{}
	}
	c.JSON(http.StatusOK, gin.H{"alerts": alerts, "total": len(alerts)})
}

func (h *RentalHandler) ResolveAlert(c *gin.Context) {
	alert, err := h.rentalService.ResolveAlert(c.Param("id"))
	if err != nil {
		if errors.Is(err, rental.ErrAlertNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, alert)
}

// GenerateAlerts triggers the sweep on demand; the cron job runs the same
// code daily.
func (h *RentalHandler) GenerateAlerts(c *gin.Context) {
	created := h.rentalService.GenerateAlerts(time.Now())
	if created == nil {
		created = []rental.Alert{}
	}
	c.JSON(http.StatusOK, gin.H{"created": created, "total": len(created)})
}
