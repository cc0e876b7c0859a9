package handler

import (
	"errors"
	"net/http"

	"invoice-dashboard-backend/internal/repository"
	service "invoice-dashboard-backend/internal/services/dashboard"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	service *service.Service
}

func NewDashboardHandler(s *service.Service) *DashboardHandler {
	return &DashboardHandler{service: s}
}

func (h *DashboardHandler) GetRevenue(c *gin.Context) {
	rows, err := h.service.FetchRevenue(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"revenue": rows})
}

func (h *DashboardHandler) GetLatestInvoices(c *gin.Context) {
	latest, err := h.service.FetchLatestInvoices(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"latest_invoices": latest})
}

func (h *DashboardHandler) GetCards(c *gin.Context) {
	cards, err := h.service.FetchCardData(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cards)
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, repository.ErrHasInvoices):
		c.JSON(http.StatusConflict, gin.H{"error": "customer has invoices"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
