package metadata

import (
	"errors"

	"go_seo/internal/config"
	"go_seo/internal/httpx"
	"go_seo/internal/metadata"
	"go_seo/internal/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListRequest represents list page metadata request
type ListRequest struct {
	Page     int    `form:"page"`
	PageSize int    `form:"pageSize"`
	Path     string `form:"path"`
	Site     string `form:"site"`
	Language string `form:"language"`
	IsActive *bool  `form:"isActive"`
}

// CreateRequest represents create page metadata request
type CreateRequest struct {
	Path               string `json:"path" binding:"required"`
	Site               string `json:"site"`
	Language           string `json:"language"`
	Title              string `json:"title"`
	Description        string `json:"description"`
	Keywords           string `json:"keywords"`
	Robots             string `json:"robots"`
	CanonicalURL       string `json:"canonicalUrl"`
	OGTitle            string `json:"ogTitle"`
	OGDescription      string `json:"ogDescription"`
	OGImage            string `json:"ogImage"`
	TwitterCard        string `json:"twitterCard"`
	TwitterTitle       string `json:"twitterTitle"`
	TwitterDescription string `json:"twitterDescription"`
	TwitterImage       string `json:"twitterImage"`
	IsActive           *bool  `json:"isActive"`
}

// UpdateRequest represents update page metadata request
type UpdateRequest struct {
	ID                 int     `json:"id" binding:"required"`
	Title              *string `json:"title"`
	Description        *string `json:"description"`
	Keywords           *string `json:"keywords"`
	Robots             *string `json:"robots"`
	CanonicalURL       *string `json:"canonicalUrl"`
	OGTitle            *string `json:"ogTitle"`
	OGDescription      *string `json:"ogDescription"`
	OGImage            *string `json:"ogImage"`
	TwitterCard        *string `json:"twitterCard"`
	TwitterTitle       *string `json:"twitterTitle"`
	TwitterDescription *string `json:"twitterDescription"`
	TwitterImage       *string `json:"twitterImage"`
	IsActive           *bool   `json:"isActive"`
}

// DeleteRequest represents delete page metadata request
type DeleteRequest struct {
	IDs []int `json:"ids" binding:"required,min=1"`
}

// PreviewRequest represents the rendered tag preview request
type PreviewRequest struct {
	Path     string `form:"path" binding:"required"`
	Site     string `form:"site"`
	Language string `form:"language"`
}

// PreviewResponse carries the rendered head fragments for one path
type PreviewResponse struct {
	MetaTags    string                `json:"metaTags"`
	Hreflang    string                `json:"hreflang"`
	MobileTags  string                `json:"mobileTags"`
	Breadcrumbs []metadata.Breadcrumb `json:"breadcrumbs"`
}

// Handler handles page metadata API
type Handler struct {
	db  *gorm.DB
	svc *metadata.Service
	cfg config.SEOConfig
}

// NewHandler creates a new page metadata handler
func NewHandler(db *gorm.DB, svc *metadata.Service, cfg config.SEOConfig) *Handler {
	return &Handler{db: db, svc: svc, cfg: cfg}
}

// List handles GET /api/v1/metadata
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
	query := h.db.Model(&model.PageMetadata{})

	if req.Path != "" {
		query = query.Where("path LIKE ?", "%"+req.Path+"%")
	}
	if req.Site != "" {
		query = query.Where("site = ?", req.Site)
	}
	if req.Language != "" {
		query = query.Where("language = ?", req.Language)
	}
	if req.IsActive != nil {
		query = query.Where("is_active = ?", *req.IsActive)
	}

	// Count total
	var total int64
	if err := query.Count(&total).Error; err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to count page metadata", err))
		return
	}

	var records []model.PageMetadata
	offset := (req.Page - 1) * req.PageSize
	if err := query.
		Offset(offset).
		Limit(req.PageSize).
		Order("id DESC").
		Find(&records).Error; err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to fetch page metadata", err))
		return
	}

	httpx.OKItems(c, records, total, req.Page, req.PageSize)
}

// Create handles POST /api/v1/metadata/create
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamMissing(err.Error()))
		return
	}

	// Check (path, site, language) uniqueness
	var count int64
	if err := h.db.Model(&model.PageMetadata{}).
		Where("path = ? AND site = ? AND language = ?", req.Path, req.Site, req.Language).
		Count(&count).Error; err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to check uniqueness", err))
		return
	}
	if count > 0 {
		httpx.FailErr(c, httpx.ErrAlreadyExists("metadata for this path, site and language already exists"))
		return
	}

	record := model.PageMetadata{
		Path:               req.Path,
		Site:               req.Site,
		Language:           req.Language,
		Title:              req.Title,
		Description:        req.Description,
		Keywords:           req.Keywords,
		Robots:             req.Robots,
		Canonical:          req.CanonicalURL,
		OGTitle:            req.OGTitle,
		OGDescription:      req.OGDescription,
		OGImage:            req.OGImage,
		TwitterCard:        req.TwitterCard,
		TwitterTitle:       req.TwitterTitle,
		TwitterDescription: req.TwitterDescription,
		TwitterImage:       req.TwitterImage,
		IsActive:           true,
	}
	if req.IsActive != nil {
		record.IsActive = *req.IsActive
	}

	if err := h.db.Create(&record).Error; err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to create page metadata", err))
		return
	}

	h.svc.InvalidateCache(c.Request.Context())
	httpx.OK(c, gin.H{"item": record})
}

// Update handles POST /api/v1/metadata/update
func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamMissing(err.Error()))
		return
	}

	var record model.PageMetadata
	if err := h.db.First(&record, req.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.FailErr(c, httpx.ErrNotFound("page metadata not found"))
			return
		}
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to find page metadata", err))
		return
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Keywords != nil {
		updates["keywords"] = *req.Keywords
	}
	if req.Robots != nil {
		updates["robots"] = *req.Robots
	}
	if req.CanonicalURL != nil {
		updates["canonical"] = *req.CanonicalURL
	}
	if req.OGTitle != nil {
		updates["og_title"] = *req.OGTitle
	}
	if req.OGDescription != nil {
		updates["og_description"] = *req.OGDescription
	}
	if req.OGImage != nil {
		updates["og_image"] = *req.OGImage
	}
	if req.TwitterCard != nil {
		updates["twitter_card"] = *req.TwitterCard
	}
	if req.TwitterTitle != nil {
		updates["twitter_title"] = *req.TwitterTitle
	}
	if req.TwitterDescription != nil {
		updates["twitter_description"] = *req.TwitterDescription
	}
	if req.TwitterImage != nil {
		updates["twitter_image"] = *req.TwitterImage
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) > 0 {
		if err := h.db.Model(&record).Updates(updates).Error; err != nil {
			httpx.FailErr(c, httpx.ErrDatabaseError("failed to update page metadata", err))
			return
		}
	}

	if err := h.db.First(&record, req.ID).Error; err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to reload page metadata", err))
		return
	}

	h.svc.InvalidateCache(c.Request.Context())
	httpx.OK(c, gin.H{"item": record})
}

// Delete handles POST /api/v1/metadata/delete
func (h *Handler) Delete(c *gin.Context) {
	var req DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamMissing(err.Error()))
		return
	}

	result := h.db.Delete(&model.PageMetadata{}, req.IDs)
	if result.Error != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to delete page metadata", result.Error))
		return
	}

	h.svc.InvalidateCache(c.Request.Context())
	httpx.OK(c, gin.H{
		"deletedCount": result.RowsAffected,
	})
}

// Preview handles GET /api/v1/metadata/preview. It renders the head
// fragments the way the public pages receive them.
func (h *Handler) Preview(c *gin.Context) {
	var req PreviewRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamMissing(err.Error()))
		return
	}

	record, err := h.svc.Get(c.Request.Context(), req.Path, req.Site, req.Language)
	if err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to resolve page metadata", err))
		return
	}

	resp := PreviewResponse{
		MobileTags:  metadata.BuildMobileMetadata(h.cfg).RenderTags(),
		Breadcrumbs: metadata.Breadcrumbs(req.Path),
	}
	if record != nil {
		resp.MetaTags = metadata.RenderMetaTags(record)
	}

	resp.Hreflang = metadata.NewHreflangGenerator(h.cfg).RenderTags(req.Path)

	httpx.OK(c, resp)
}
