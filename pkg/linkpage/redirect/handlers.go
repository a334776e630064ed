package redirect

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linkpage/linkpage/pkg/linkpage/analytics"
	"github.com/linkpage/linkpage/pkg/linkpage/models"
	"gorm.io/gorm"
)

// recordTimeout bounds the background click recording, which includes
// the geolocation lookup.
const recordTimeout = 10 * time.Second

// Handler handles tracked redirect requests
type Handler struct {
	db       *gorm.DB
	recorder *analytics.Recorder
}

// NewHandler creates a new redirect handler
func NewHandler(db *gorm.DB, recorder *analytics.Recorder) *Handler {
	return &Handler{db: db, recorder: recorder}
}

// Redirect sends the visitor to the link target and records the click
// server-side, for pages rendered without the tracking beacon.
// Recording is fire and forget - the redirect is never blocked on the
// geolocation lookup or the insert.
func (h *Handler) Redirect(c *gin.Context) {
	linkID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Link not found"})
		return
	}

	var link models.Link
	if err := h.db.First(&link, uint(linkID)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Link not found"})
		return
	}

	referer := c.Request.Referer()
	ip := c.ClientIP()
	userAgent := c.Request.UserAgent()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()
		if _, err := h.recorder.Record(ctx, link.ID, referer, ip, userAgent); err != nil {
			log.Printf("redirect: recording click for link %d failed: %v", link.ID, err)
		}
	}()

	c.Redirect(http.StatusFound, link.URL)
}

// RegisterRoutes registers redirect routes on the root router
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/r/:id", h.Redirect)
}
