package handler

import (
	"net/http"

	service "invoice-dashboard-backend/internal/services/dashboard"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CustomerHandler struct {
	service *service.Service
}

func NewCustomerHandler(s *service.Service) *CustomerHandler {
	return &CustomerHandler{service: s}
}

// List returns id+name pairs for selection lists.
func (h *CustomerHandler) List(c *gin.Context) {
	names, err := h.service.FetchCustomers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": names})
}

// ListFiltered returns customers with their invoice totals.
func (h *CustomerHandler) ListFiltered(c *gin.Context) {
	summaries, err := h.service.FetchFilteredCustomers(c.Request.Context(), c.Query("query"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": summaries})
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer ID"})
		return
	}

	if err := h.service.DeleteCustomer(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "customer deleted"})
}
