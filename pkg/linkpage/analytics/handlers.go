package analytics

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/linkpage/linkpage/pkg/linkpage/models"
	"gorm.io/gorm"
)

// Handler handles analytics requests
type Handler struct {
	db       *gorm.DB
	recorder *Recorder
}

// NewHandler creates a new analytics handler
func NewHandler(db *gorm.DB, recorder *Recorder) *Handler {
	return &Handler{db: db, recorder: recorder}
}

// TrackClickRequest represents the request to record a click
type TrackClickRequest struct {
	LinkID   uint   `json:"linkId"`
	Referrer string `json:"referrer"`
}

// TrackClickResponse confirms a recorded click
type TrackClickResponse struct {
	Success bool `json:"success"`
	ClickID uint `json:"clickId"`
}

// TrackClick records a click on a link
// @Summary Record a click
// @Description Record a visit to a link, with referrer classification and best-effort geolocation
// @Tags analytics
// @Accept json
// @Produce json
// @Param request body TrackClickRequest true "Click details"
// @Success 201 {object} TrackClickResponse
// @Failure 400 {object} map[string]string "linkId missing"
// @Failure 500 {object} map[string]string "Persistence failure"
// @Router /analytics/click [post]
func (h *Handler) TrackClick(c *gin.Context) {
	var req TrackClickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// IP and user agent come from the request, not the body
	ip := c.ClientIP()
	userAgent := c.Request.UserAgent()

	click, err := h.recorder.Record(c.Request.Context(), req.LinkID, req.Referrer, ip, userAgent)
	if err != nil {
		if errors.Is(err, ErrLinkIDRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "linkId is required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record click"})
		return
	}

	c.JSON(http.StatusCreated, TrackClickResponse{Success: true, ClickID: click.ID})
}

// GetStats returns the full analytics summary for a profile
// @Summary Get profile statistics
// @Description Compute totals, per-link counts, hourly histogram and top rankings for a profile's clicks
// @Tags analytics
// @Produce json
// @Param id path int true "Profile ID"
// @Success 200 {object} Stats
// @Failure 400 {object} map[string]string "Invalid profile ID"
// @Failure 404 {object} map[string]string "Profile not found"
// @Router /analytics/stats/{id} [get]
func (h *Handler) GetStats(c *gin.Context) {
	profileID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid profile ID"})
		return
	}

	// One consistent read of the profile's links with their clicks. A
	// click committed while the summary is being computed may or may not
	// show up; that staleness is accepted.
	var profile models.Profile
	query := h.db.
		Preload("Links", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("links.id ASC")
		}).
		Preload("Links.Clicks", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("clicks.timestamp DESC")
		})
	if err := query.First(&profile, uint(profileID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile"})
		return
	}

	c.JSON(http.StatusOK, BuildStats(profile.Links))
}

// RegisterRoutes registers analytics routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analytics/click", h.TrackClick)
	rg.GET("/analytics/stats/:id", h.GetStats)
}
