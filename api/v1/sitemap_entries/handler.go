package sitemap_entries

import (
	"errors"
	"time"

	"go_seo/internal/httpx"
	"go_seo/internal/model"
	"go_seo/internal/sitemap"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListRequest represents list sitemap entries request
type ListRequest struct {
	Page     int    `form:"page"`
	PageSize int    `form:"pageSize"`
	URL      string `form:"url"`
	IsActive *bool  `form:"isActive"`
}

// CreateRequest represents create sitemap entry request
type CreateRequest struct {
	URL        string   `json:"url" binding:"required"`
	LastMod    string   `json:"lastmod"`
	ChangeFreq string   `json:"changefreq"`
	Priority   *float64 `json:"priority"`
	IsActive   *bool    `json:"isActive"`
}

// UpdateRequest represents update sitemap entry request
type UpdateRequest struct {
	ID         int      `json:"id" binding:"required"`
	URL        *string  `json:"url"`
	LastMod    *string  `json:"lastmod"`
	ChangeFreq *string  `json:"changefreq"`
	Priority   *float64 `json:"priority"`
	IsActive   *bool    `json:"isActive"`
}

// DeleteRequest represents delete sitemap entries request
type DeleteRequest struct {
	IDs []int `json:"ids" binding:"required,min=1"`
}

// Handler handles sitemap entries API
type Handler struct {
	db  *gorm.DB
	svc *sitemap.Service
}

// NewHandler creates a new sitemap entries handler
func NewHandler(db *gorm.DB, svc *sitemap.Service) *Handler {
	return &Handler{db: db, svc: svc}
}

// parseLastMod accepts a date or RFC3339 timestamp, empty means now
func parseLastMod(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// List handles GET /api/v1/sitemap-entries
func (h *Handler) List(c *gin.Context) {
	var req ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid(err.Error()))
		return
	}

	// Set defaults
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 {
		req.PageSize = 15
	}

	// Build query
	query := h.db.Model(&model.SitemapEntry{})

	if req.URL != "" {
		query = query.Where("url LIKE ?", "%"+req.URL+"%")
	}
	if req.IsActive != nil {
		query = query.Where("is_active = ?", *req.IsActive)
	}

	// Count total
	var total int64
	if err := query.Count(&total).Error; err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to count sitemap entries", err))
		return
	}

	var entries []model.SitemapEntry
	offset := (req.Page - 1) * req.PageSize
	if err := query.
		Offset(offset).
		Limit(req.PageSize).
		Order("priority DESC, last_mod DESC").
		Find(&entries).Error; err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to fetch sitemap entries", err))
		return
	}

	httpx.OKItems(c, entries, total, req.Page, req.PageSize)
}

// Create handles POST /api/v1/sitemap-entries/create
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamMissing(err.Error()))
		return
	}

	lastMod, err := parseLastMod(req.LastMod)
	if err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid("lastmod must be a date or RFC3339 timestamp"))
		return
	}

	entry := model.SitemapEntry{
		URL:        req.URL,
		LastMod:    lastMod,
		ChangeFreq: model.ChangeFreqWeekly,
		Priority:   0.5,
		IsActive:   true,
	}
	if req.ChangeFreq != "" {
		entry.ChangeFreq = req.ChangeFreq
	}
	if req.Priority != nil {
		entry.Priority = *req.Priority
	}
	if req.IsActive != nil {
		entry.IsActive = *req.IsActive
	}

	if err := sitemap.ValidateEntry(&entry); err != nil {
		httpx.FailErr(c, httpx.ErrParamIllegal(err.Error()))
		return
	}

	// Check URL uniqueness
	var count int64
	if err := h.db.Model(&model.SitemapEntry{}).Where("url = ?", entry.URL).Count(&count).Error; err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to check URL uniqueness", err))
		return
	}
	if count > 0 {
		httpx.FailErr(c, httpx.ErrAlreadyExists("sitemap entry for this URL already exists"))
		return
	}

	if err := h.db.Create(&entry).Error; err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to create sitemap entry", err))
		return
	}

	h.svc.InvalidateCache(c.Request.Context())
	httpx.OK(c, gin.H{"item": entry})
}

// Update handles POST /api/v1/sitemap-entries/update
func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamMissing(err.Error()))
		return
	}

	var entry model.SitemapEntry
	if err := h.db.First(&entry, req.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.FailErr(c, httpx.ErrNotFound("sitemap entry not found"))
			return
		}
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to find sitemap entry", err))
		return
	}

	// Apply changes, then validate the merged entry before persisting
	if req.URL != nil {
		entry.URL = *req.URL
	}
	if req.LastMod != nil {
		lastMod, err := parseLastMod(*req.LastMod)
		if err != nil {
			httpx.FailErr(c, httpx.ErrParamInvalid("lastmod must be a date or RFC3339 timestamp"))
			return
		}
		entry.LastMod = lastMod
	}
	if req.ChangeFreq != nil {
		entry.ChangeFreq = *req.ChangeFreq
	}
	if req.Priority != nil {
		entry.Priority = *req.Priority
	}
	if req.IsActive != nil {
		entry.IsActive = *req.IsActive
	}

	if err := sitemap.ValidateEntry(&entry); err != nil {
		httpx.FailErr(c, httpx.ErrParamIllegal(err.Error()))
		return
	}

	if err := h.db.Save(&entry).Error; err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to update sitemap entry", err))
		return
	}

	h.svc.InvalidateCache(c.Request.Context())
	httpx.OK(c, gin.H{"item": entry})
}

// Delete handles POST /api/v1/sitemap-entries/delete
func (h *Handler) Delete(c *gin.Context) {
	var req DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamMissing(err.Error()))
		return
	}

	result := h.db.Delete(&model.SitemapEntry{}, req.IDs)
	if result.Error != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to delete sitemap entries", result.Error))
		return
	}

	h.svc.InvalidateCache(c.Request.Context())
	httpx.OK(c, gin.H{
		"deletedCount": result.RowsAffected,
	})
}
