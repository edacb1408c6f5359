package scanner

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/smartshield/smartshield/internal/logging"
	"github.com/smartshield/smartshield/internal/merchant"
	"github.com/smartshield/smartshield/internal/validation"
)

// Handler provides HTTP endpoints for scanning and registry inspection
type Handler struct {
	service *Service
	store   merchant.Store
	maxList int
	started time.Time
}

// NewHandler creates a new scanner handler
func NewHandler(service *Service, store merchant.Store) *Handler {
	return &Handler{
		service: service,
		store:   store,
		maxList: merchant.DefaultListLimit,
		started: time.Now(),
	}
}

// WithListLimit overrides the listing cap.
func (h *Handler) WithListLimit(n int) *Handler {
	if n > 0 {
		h.maxList = n
	}
	return h
}

// RegisterRoutes sets up scan and merchant endpoints
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/scan", h.Scan)
	r.GET("/merchants", h.ListMerchants)
	r.GET("/merchants/:handle", h.GetMerchant)
	r.GET("/stats", h.Stats)
}

// ScanRequest is the payload for POST /v1/scan. A pointer distinguishes a
// missing qr_text field from an empty one: absence is a client error, but
// the empty string is valid input and gets classified like anything else.
type ScanRequest struct {
	QRText *string `json:"qr_text"`
}

// ScanResponse is the verdict returned to the caller
type ScanResponse struct {
	Status  string `json:"status"`
	Score   int    `json:"score"`
	Message string `json:"message"`
}

// Scan classifies a scanned QR payload or UPI handle.
// POST /v1/scan
func (h *Handler) Scan(c *gin.Context) {
	var req ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.QRText == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Request body must contain 'qr_text'",
		})
		return
	}

	qrText := validation.SanitizeString(*req.QRText)

	res, err := h.service.Classify(c.Request.Context(), qrText)
	if err != nil {
		logging.L(c.Request.Context()).Error("scan failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "registry_unavailable",
			"message": "Merchant registry is temporarily unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, ScanResponse{
		Status:  string(res.Status),
		Score:   res.Score,
		Message: res.Message,
	})
}

// ListMerchants returns the most recently registered merchants, newest first.
// GET /v1/merchants?limit=N
func (h *Handler) ListMerchants(c *gin.Context) {
	limit := h.maxList
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_request",
				"message": "'limit' must be an integer",
			})
			return
		}
		limit = n
	}
	if limit < 1 {
		limit = 1
	}
	if limit > h.maxList {
		limit = h.maxList
	}

	merchants, err := h.store.ListRecent(c.Request.Context(), limit)
	if err != nil {
		logging.L(c.Request.Context()).Error("list merchants failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "registry_unavailable",
			"message": "Merchant registry is temporarily unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"merchants": merchants,
		"count":     len(merchants),
	})
}

// GetMerchant returns a single registry record by handle.
// GET /v1/merchants/:handle
func (h *Handler) GetMerchant(c *gin.Context) {
	handle := merchant.CanonicalHandle(c.Param("handle"))

	m, err := h.store.Get(c.Request.Context(), handle)
	if err != nil {
		if errors.Is(err, merchant.ErrMerchantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "merchant_not_found",
				"message": "No merchant registered under this handle",
			})
			return
		}
		logging.L(c.Request.Context()).Error("get merchant failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "registry_unavailable",
			"message": "Merchant registry is temporarily unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, m)
}

// Stats reports registry size.
// GET /v1/stats
func (h *Handler) Stats(c *gin.Context) {
	count, err := h.store.Count(c.Request.Context())
	if err != nil {
		logging.L(c.Request.Context()).Error("stats failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "registry_unavailable",
			"message": "Merchant registry is temporarily unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"merchants":      count,
		"uptime_seconds": int64(time.Since(h.started).Seconds()),
	})
}
