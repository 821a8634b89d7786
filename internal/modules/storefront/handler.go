package storefront

import (
	"errors"
	"net/http"

	"carsalesweblink/internal/pkg/response"
	"carsalesweblink/internal/repository"
	"carsalesweblink/internal/sheets"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dealers/:id", h.GetDealer)
	rg.GET("/dealers/:id/vehicles", h.ListVehicles)
	rg.POST("/dealers/:id/leads", h.SubmitLead)
	rg.GET("/settings", h.GetSettings)
}

func (h *Handler) GetDealer(c *gin.Context) {
	d, err := h.service.Dealer(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "Failed to load dealer")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"dealer": d})
}

func (h *Handler) ListVehicles(c *gin.Context) {
	vehicles, err := h.service.Vehicles(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "Failed to list vehicles")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"vehicles": vehicles})
}

func (h *Handler) SubmitLead(c *gin.Context) {
	var req LeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "name and phone are required")
		return
	}

	lead, err := h.service.SubmitLead(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, repository.ErrLeadMissingContact) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "name and phone are required")
			return
		}
		h.writeError(c, err, "Failed to submit lead")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{
		"leadId": lead.LeadID,
		"status": lead.Status,
	})
}

func (h *Handler) GetSettings(c *gin.Context) {
	settings, err := h.service.Settings(c.Request.Context())
	if err != nil {
		response.Internal(c, "Failed to load settings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"settings": settings})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	if errors.Is(err, sheets.ErrNotFound) {
		response.NotFound(c, "Dealer not found")
		return
	}
	response.Internal(c, fallback)
}
