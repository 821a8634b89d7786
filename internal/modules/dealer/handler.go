package dealer

import (
	"errors"
	"net/http"

	"carsalesweblink/internal/pkg/response"
	"carsalesweblink/internal/sheets"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts login, which must sit outside the auth group.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/login", h.Login)
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/vehicles", h.ListVehicles)
	rg.POST("/vehicles", h.UpsertVehicle)
	rg.GET("/leads", h.ListLeads)
	rg.PATCH("/leads/:leadId", h.UpdateLeadStatus)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "dealerId and passcode are required")
		return
	}

	token, d, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Wrong dealer id or passcode")
			return
		}
		response.Internal(c, "Login failed")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"token": token,
		"dealer": gin.H{
			"dealerId": d.DealerID,
			"name":     d.Name,
			"status":   d.Status,
			"logoUrl":  d.LogoURL,
		},
	})
}

func (h *Handler) ListVehicles(c *gin.Context) {
	vehicles, err := h.service.Vehicles(c.Request.Context(), c.GetString("dealer_id"))
	if err != nil {
		response.Internal(c, "Failed to list vehicles")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"vehicles": vehicles})
}

func (h *Handler) UpsertVehicle(c *gin.Context) {
	var req VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	v, err := h.service.UpsertVehicle(c.Request.Context(), c.GetString("dealer_id"), req)
	if err != nil {
		if errors.Is(err, sheets.ErrLayoutOverlap) {
			response.Error(c, http.StatusConflict, "TAB_FULL", "Vehicle section of the dealer tab is full")
			return
		}
		response.Internal(c, "Failed to save vehicle")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"vehicle": v})
}

func (h *Handler) ListLeads(c *gin.Context) {
	leads, err := h.service.Leads(c.Request.Context(), c.GetString("dealer_id"))
	if err != nil {
		response.Internal(c, "Failed to list leads")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"leads": leads})
}

func (h *Handler) UpdateLeadStatus(c *gin.Context) {
	var req UpdateLeadStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "status is required")
		return
	}

	err := h.service.UpdateLeadStatus(c.Request.Context(), c.GetString("dealer_id"), c.Param("leadId"), req.Status)
	if err != nil {
		if errors.Is(err, sheets.ErrNotFound) {
			response.NotFound(c, "Lead not found")
			return
		}
		response.Internal(c, "Failed to update lead")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"leadId": c.Param("leadId"), "status": req.Status})
}
