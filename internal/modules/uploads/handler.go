package uploads

import (
	"errors"
	"net/http"

	"carsalesweblink/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/uploads/sign", h.Sign)
}

type signRequest struct {
	Folder string `json:"folder"`
}

func (h *Handler) Sign(c *gin.Context) {
	var req signRequest
	// Body is optional; an empty request signs an unfoldered upload.
	_ = c.ShouldBindJSON(&req)

	sig, err := h.service.Sign(req.Folder)
	if err != nil {
		if errors.Is(err, ErrNotConfigured) {
			response.Error(c, http.StatusServiceUnavailable, "UPLOADS_DISABLED", "Uploads are not configured")
			return
		}
		response.Internal(c, "Failed to sign upload")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"upload": sig})
}
