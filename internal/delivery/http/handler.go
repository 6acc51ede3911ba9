package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salesbot/backend/internal/domain"
	"github.com/salesbot/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	correctionService *usecase.CorrectionService
}

// NewHandler creates a new HTTP handler
func NewHandler(correctionService *usecase.CorrectionService) *Handler {
	return &Handler{correctionService: correctionService}
}

// correctRequest is one detected price tag: a shop plus the OCR fragments
// clipped from its photograph.
type correctRequest struct {
	ShopName string          `json:"shopName" binding:"required"`
	Objects  []correctObject `json:"objects" binding:"required"`
}

// correctObject is a single detected fragment within the tag.
type correctObject struct {
	Class string `json:"class" binding:"required"`
	Text  string `json:"text"`
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "salesbot-backend",
		"version": "1.0.0",
	})
}

// CorrectTag corrects every fragment of one detected price tag.
// POST /api/v1/tags/correct
func (h *Handler) CorrectTag(c *gin.Context) {
	if h.correctionService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "correction service not available",
		})
		return
	}

	var req correctRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request",
			"details": err.Error(),
		})
		return
	}

	fields := make([]domain.DetectedField, 0, len(req.Objects))
	for _, obj := range req.Objects {
		fields = append(fields, domain.DetectedField{
			ShopName: req.ShopName,
			Class:    domain.ParseFieldClass(obj.Class),
			RawText:  obj.Text,
		})
	}

	corrections := h.correctionService.CorrectObjects(c.Request.Context(), fields)

	c.JSON(http.StatusOK, gin.H{
		"shopName":    req.ShopName,
		"corrections": corrections,
	})
}

// ListShops returns the retailers with a registered price parser.
// GET /api/v1/shops
func (h *Handler) ListShops(c *gin.Context) {
	if h.correctionService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "correction service not available",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"shops": h.correctionService.Shops(),
	})
}
