package profiles

import (
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linkpage/linkpage/pkg/linkpage/models"
	"gorm.io/gorm"
)

const (
	slugPrefix   = "u"
	slugLength   = 6
	slugAttempts = 10
)

// Handler handles profile-related requests
type Handler struct {
	db *gorm.DB
}

// NewHandler creates a new profiles handler
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

// LinkInput is one link entry in a profile create/update payload
type LinkInput struct {
	Title     string `json:"title"`
	URL       string `json:"url"`
	Icon      string `json:"icon"`
	Color     string `json:"color"`
	TextColor string `json:"textColor"`
}

// CreateProfileRequest represents the request to create a profile
type CreateProfileRequest struct {
	Email     string      `json:"email" binding:"required,email"`
	Name      string      `json:"name"`
	Slug      string      `json:"slug"`
	Bio       string      `json:"bio"`
	ImageURL  string      `json:"imageUrl"`
	BgType    string      `json:"bgType"`
	BgValue   string      `json:"bgValue"`
	NameColor string      `json:"nameColor"`
	BioColor  string      `json:"bioColor"`
	LinkColor string      `json:"linkColor"`
	Links     []LinkInput `json:"links"`
}

// UpdateProfileRequest represents the request to update a profile.
// Pointer fields distinguish "not provided" from "set to empty". A nil
// Links field leaves the link set alone; a non-nil one replaces it.
type UpdateProfileRequest struct {
	ID        uint         `json:"id"`
	Email     string       `json:"email"`
	Name      *string      `json:"name"`
	Slug      string       `json:"slug"`
	Bio       *string      `json:"bio"`
	ImageURL  *string      `json:"imageUrl"`
	BgType    *string      `json:"bgType"`
	BgValue   *string      `json:"bgValue"`
	NameColor *string      `json:"nameColor"`
	BioColor  *string      `json:"bioColor"`
	LinkColor *string      `json:"linkColor"`
	Links     *[]LinkInput `json:"links"`
}

// ValidationError represents a validation error
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// prepareLinks converts link inputs to models, silently dropping entries
// with an empty title or URL and applying the default color.
func prepareLinks(inputs []LinkInput) []models.Link {
	links := make([]models.Link, 0, len(inputs))
	for _, in := range inputs {
		if in.Title == "" || in.URL == "" {
			continue
		}
		color := in.Color
		if color == "" {
			color = models.DefaultLinkColor
		}
		links = append(links, models.Link{
			Title:     in.Title,
			URL:       in.URL,
			Icon:      in.Icon,
			Color:     color,
			TextColor: in.TextColor,
		})
	}
	return links
}

// generateRandomString creates a random string of given length
func generateRandomString(length int, charset string) string {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[r.Intn(len(charset))]
	}
	return string(b)
}

// normalizeSlug trims and lower-cases a caller-provided slug
func normalizeSlug(slug string) string {
	return strings.ToLower(strings.TrimSpace(slug))
}

// generateSlug creates a unique prefixed slug
func (h *Handler) generateSlug() string {
	const charset = "abcdefghijklmnopqrstuvwxyz0123456789"

	for attempts := 0; attempts < slugAttempts; attempts++ {
		candidate := slugPrefix + "-" + generateRandomString(slugLength, charset)
		var existing models.Profile
		if err := h.db.Where("slug = ?", candidate).First(&existing).Error; err != nil {
			return candidate
		}
	}

	// Fallback to a timestamp-based slug if short ones are exhausted
	return slugPrefix + "-" + strconv.FormatInt(time.Now().UnixMilli(), 36)
}

// resolveSlug normalizes a provided slug or generates a fresh one
func (h *Handler) resolveSlug(provided string) string {
	if strings.TrimSpace(provided) != "" {
		return normalizeSlug(provided)
	}
	return h.generateSlug()
}

// isSlugAvailable checks whether a slug is free, ignoring the given
// profile id (so a profile can keep its own slug on update)
func (h *Handler) isSlugAvailable(slug string, excludeID uint) bool {
	var existing models.Profile
	query := h.db.Where("slug = ?", slug)
	if excludeID > 0 {
		query = query.Where("id != ?", excludeID)
	}
	return query.First(&existing).Error != nil
}

// fetchProfile loads a profile with its links in creation order
func (h *Handler) fetchProfile(id uint) (*models.Profile, error) {
	var profile models.Profile
	err := h.db.Preload("Links", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("links.id ASC")
	}).First(&profile, id).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Get returns a profile by id or email
// @Summary Get a profile
// @Description Get a profile with its links, looked up by id or email
// @Tags profiles
// @Produce json
// @Param id query int false "Profile ID"
// @Param email query string false "Profile email"
// @Success 200 {object} models.Profile
// @Failure 404 {object} map[string]string "Profile not found"
// @Security BearerAuth
// @Router /profile [get]
func (h *Handler) Get(c *gin.Context) {
	query := h.db.Preload("Links", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("links.id ASC")
	})

	if id := c.Query("id"); id != "" {
		query = query.Where("id = ?", id)
	}
	if email := c.Query("email"); email != "" {
		query = query.Where("email = ?", email)
	}

	var profile models.Profile
	if err := query.First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetPage returns the public page payload for a profile slug
// @Summary Get a public profile page
// @Description Get the public profile and its links by slug, no authentication required
// @Tags profiles
// @Produce json
// @Param slug path string true "Profile slug"
// @Success 200 {object} models.Profile
// @Failure 404 {object} map[string]string "Profile not found"
// @Router /page/{slug} [get]
func (h *Handler) GetPage(c *gin.Context) {
	slug := c.Param("slug")

	var profile models.Profile
	err := h.db.Preload("Links", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("links.id ASC")
	}).Where("slug = ?", slug).First(&profile).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// Create creates a new profile
// @Summary Create a profile
// @Description Create a profile with an optional initial link set
// @Tags profiles
// @Accept json
// @Produce json
// @Param request body CreateProfileRequest true "Profile details"
// @Success 201 {object} models.Profile
// @Failure 400 {object} map[string]string "Validation error"
// @Security BearerAuth
// @Router /profile [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.Profile
	if err := h.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
		return
	}

	profile := models.Profile{
		Email:     req.Email,
		Name:      req.Name,
		Slug:      h.resolveSlug(req.Slug),
		Bio:       req.Bio,
		ImageURL:  req.ImageURL,
		BgType:    defaultString(req.BgType, models.DefaultBgType),
		BgValue:   defaultString(req.BgValue, models.DefaultBgValue),
		NameColor: defaultString(req.NameColor, models.DefaultNameColor),
		BioColor:  defaultString(req.BioColor, models.DefaultBioColor),
		LinkColor: defaultString(req.LinkColor, models.DefaultLinkColor),
		IsOwner:   true,
		Links:     prepareLinks(req.Links),
	}

	if err := h.db.Create(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create profile"})
		return
	}

	c.JSON(http.StatusCreated, profile)
}

// Update updates a profile, creating it if it does not exist yet
// @Summary Update a profile
// @Description Update profile fields and optionally replace the link set; creates the profile when none matches
// @Tags profiles
// @Accept json
// @Produce json
// @Param request body UpdateProfileRequest true "Updated profile details"
// @Success 200 {object} models.Profile
// @Failure 400 {object} map[string]string "Validation error"
// @Security BearerAuth
// @Router /profile [put]
func (h *Handler) Update(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	query := h.db.Model(&models.Profile{})
	if req.ID > 0 {
		query = query.Where("id = ?", req.ID)
	}
	if req.Email != "" {
		query = query.Where("email = ?", req.Email)
	}

	var profile models.Profile
	if err := query.First(&profile).Error; err != nil {
		h.createFromUpdate(c, req)
		return
	}

	updates := map[string]interface{}{}
	if req.Slug != "" {
		slug := normalizeSlug(req.Slug)
		if slug != profile.Slug && !h.isSlugAvailable(slug, profile.ID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "This slug is already in use"})
			return
		}
		updates["slug"] = slug
	}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.BgType != nil {
		updates["bg_type"] = *req.BgType
	}
	if req.BgValue != nil {
		updates["bg_value"] = *req.BgValue
	}
	if req.NameColor != nil {
		updates["name_color"] = *req.NameColor
	}
	if req.BioColor != nil {
		updates["bio_color"] = *req.BioColor
	}
	if req.LinkColor != nil {
		updates["link_color"] = *req.LinkColor
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&profile).Updates(updates).Error; err != nil {
				return err
			}
		}
		if req.Links != nil {
			return rewriteLinks(tx, profile.ID, prepareLinks(*req.Links))
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	updated, err := h.fetchProfile(profile.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// createFromUpdate handles the upsert path of Update for profiles that do
// not exist yet
func (h *Handler) createFromUpdate(c *gin.Context, req UpdateProfileRequest) {
	if req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}

	profile := models.Profile{
		Email:     req.Email,
		Slug:      h.resolveSlug(req.Slug),
		Name:      valueOrEmpty(req.Name),
		Bio:       valueOrEmpty(req.Bio),
		ImageURL:  valueOrEmpty(req.ImageURL),
		BgType:    defaultString(valueOrEmpty(req.BgType), models.DefaultBgType),
		BgValue:   defaultString(valueOrEmpty(req.BgValue), models.DefaultBgValue),
		NameColor: defaultString(valueOrEmpty(req.NameColor), models.DefaultNameColor),
		BioColor:  defaultString(valueOrEmpty(req.BioColor), models.DefaultBioColor),
		LinkColor: defaultString(valueOrEmpty(req.LinkColor), models.DefaultLinkColor),
		IsOwner:   true,
	}
	if req.Links != nil {
		profile.Links = prepareLinks(*req.Links)
	}

	if err := h.db.Create(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create profile"})
		return
	}

	c.JSON(http.StatusCreated, profile)
}

// rewriteLinks replaces a profile's link set. Clicks belong to their link
// and go away with it.
func rewriteLinks(tx *gorm.DB, profileID uint, links []models.Link) error {
	var linkIDs []uint
	if err := tx.Model(&models.Link{}).Where("profile_id = ?", profileID).Pluck("id", &linkIDs).Error; err != nil {
		return err
	}
	if len(linkIDs) > 0 {
		if err := tx.Where("link_id IN ?", linkIDs).Delete(&models.Click{}).Error; err != nil {
			return err
		}
		if err := tx.Where("profile_id = ?", profileID).Delete(&models.Link{}).Error; err != nil {
			return err
		}
	}

	for i := range links {
		links[i].ProfileID = profileID
	}
	if len(links) > 0 {
		return tx.Create(&links).Error
	}
	return nil
}

// CheckSlug reports whether a slug is available
// @Summary Check slug availability
// @Description Check whether a profile slug is free, optionally excluding the caller's own profile
// @Tags profiles
// @Produce json
// @Param slug path string true "Slug to check"
// @Param currentId query int false "Profile ID to exclude"
// @Success 200 {object} map[string]bool
// @Security BearerAuth
// @Router /profile/check-slug/{slug} [get]
func (h *Handler) CheckSlug(c *gin.Context) {
	slug := normalizeSlug(c.Param("slug"))
	if slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Slug is required"})
		return
	}

	var excludeID uint
	if current := c.Query("currentId"); current != "" {
		parsed, err := strconv.ParseUint(current, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid currentId"})
			return
		}
		excludeID = uint(parsed)
	}

	c.JSON(http.StatusOK, gin.H{"available": h.isSlugAvailable(slug, excludeID)})
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func valueOrEmpty(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

// RegisterRoutes registers the authenticated profile routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/profile", h.Get)
	rg.POST("/profile", h.Create)
	rg.PUT("/profile", h.Update)
	rg.GET("/profile/check-slug/:slug", h.CheckSlug)
}

// RegisterPublicRoutes registers the unauthenticated page route
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/page/:slug", h.GetPage)
}
