package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stylefinder/backend/internal/domain"
	"github.com/stylefinder/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	search *usecase.SearchService
}

// NewHandler creates a new HTTP handler
func NewHandler(search *usecase.SearchService) *Handler {
	return &Handler{search: search}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "stylefinder-backend",
		"version": "1.0.0",
	})
}

// searchBody is the inbound search request payload
type searchBody struct {
	Description string `json:"description"`
	Focus       string `json:"focus"`
	MaxResults  int    `json:"maxResults"`
	SessionID   string `json:"sessionId"`
}

// validFocusModes maps inbound focus strings to domain focus modes.
// An empty focus means best match.
var validFocusModes = map[string]domain.FocusMode{
	"":                              domain.FocusBestMatch,
	string(domain.FocusBestMatch):   domain.FocusBestMatch,
	string(domain.FocusLowestPrice): domain.FocusLowestPrice,
	string(domain.FocusBrand):       domain.FocusBrand,
	string(domain.FocusRegionFirst): domain.FocusRegionFirst,
}

// Search handles product search requests
func (h *Handler) Search(c *gin.Context) {
	var body searchBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	focus, ok := validFocusModes[body.Focus]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown focus mode: " + body.Focus})
		return
	}

	request := &domain.SearchRequest{
		Description: body.Description,
		Focus:       focus,
		MaxResults:  body.MaxResults,
		SessionID:   body.SessionID,
	}

	response, err := h.search.Search(c.Request.Context(), request)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotConfigured):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Search is not configured. Please contact the administrator.",
			})
		case errors.Is(err, domain.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request parameters"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	c.JSON(http.StatusOK, response)
}

// SearchHistory returns the recent searches of a session
func (h *Handler) SearchHistory(c *gin.Context) {
	sessionID := c.Query("sessionId")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sessionId is required"})
		return
	}

	history, err := h.search.History(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionId": sessionID,
		"history":   history,
	})
}
