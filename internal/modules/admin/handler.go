package admin

import (
	"errors"
	"net/http"

	"carsalesweblink/internal/pkg/response"
	"carsalesweblink/internal/pkg/validator"
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
	rg.GET("/dealers", h.ListDealers)
	rg.POST("/dealers", h.CreateDealer)
	rg.PATCH("/dealers/:id", h.UpdateDealer)
	rg.POST("/dealers/:id/reset-passcode", h.ResetPasscode)
	rg.PATCH("/dealers/:id/leads/:leadId", h.UpdateLeadStatus)
	rg.GET("/settings", h.GetSettings)
	rg.PUT("/settings", h.UpdateSettings)
}

func (h *Handler) ListDealers(c *gin.Context) {
	dealers, err := h.service.ListDealers(c.Request.Context())
	if err != nil {
		response.Internal(c, "Failed to list dealers")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"dealers": dealers})
}

func (h *Handler) CreateDealer(c *gin.Context) {
	var req CreateDealerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid dealer payload", errs)
		return
	}

	d, err := h.service.CreateDealer(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err, "Failed to create dealer")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{
		"dealer":   d,
		"passcode": d.Passcode,
	})
}

func (h *Handler) UpdateDealer(c *gin.Context) {
	var req UpdateDealerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	d, err := h.service.UpdateDealer(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeError(c, err, "Failed to update dealer")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"dealer": d})
}

func (h *Handler) ResetPasscode(c *gin.Context) {
	d, err := h.service.ResetPasscode(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "Failed to reset passcode")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"dealerId": d.DealerID,
		"passcode": d.Passcode,
	})
}

func (h *Handler) UpdateLeadStatus(c *gin.Context) {
	var req UpdateLeadStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	err := h.service.UpdateLeadStatus(c.Request.Context(), c.Param("id"), c.Param("leadId"), req.Status)
	if err != nil {
		h.writeError(c, err, "Failed to update lead")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"leadId": c.Param("leadId"), "status": req.Status})
}

func (h *Handler) GetSettings(c *gin.Context) {
	settings, err := h.service.GetSettings(c.Request.Context())
	if err != nil {
		response.Internal(c, "Failed to load settings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"settings": settings})
}

func (h *Handler) UpdateSettings(c *gin.Context) {
	var values map[string]string
	if err := c.ShouldBindJSON(&values); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.UpdateSettings(c.Request.Context(), values); err != nil {
		h.writeError(c, err, "Failed to update settings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"updated": len(values)})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrValidation),
		errors.Is(err, repository.ErrInvalidDealerID),
		errors.Is(err, repository.ErrUnknownSettingKey):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, sheets.ErrNotFound):
		response.NotFound(c, "Not found")
	default:
		response.Internal(c, fallback)
	}
}
