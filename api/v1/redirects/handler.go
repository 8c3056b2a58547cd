package redirects

import (
	"errors"

	"go_seo/internal/httpx"
	"go_seo/internal/model"
	"go_seo/internal/redirect"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListRequest represents list redirect rules request
type ListRequest struct {
	Page     int    `form:"page"`
	PageSize int    `form:"pageSize"`
	Pattern  string `form:"pattern"`
	IsActive *bool  `form:"isActive"`
}

// CreateRequest represents create redirect rule request
type CreateRequest struct {
	SourcePattern string `json:"sourcePattern" binding:"required"`
	TargetURL     string `json:"targetUrl" binding:"required"`
	IsRegex       bool   `json:"isRegex"`
	StatusCode    int    `json:"statusCode"`
	Priority      int    `json:"priority"`
	IsActive      *bool  `json:"isActive"`
	Description   string `json:"description"`
}

// UpdateRequest represents update redirect rule request
type UpdateRequest struct {
	ID            int     `json:"id" binding:"required"`
	SourcePattern *string `json:"sourcePattern"`
	TargetURL     *string `json:"targetUrl"`
	IsRegex       *bool   `json:"isRegex"`
	StatusCode    *int    `json:"statusCode"`
	Priority      *int    `json:"priority"`
	IsActive      *bool   `json:"isActive"`
	Description   *string `json:"description"`
}

// DeleteRequest represents delete redirect rules request
type DeleteRequest struct {
	IDs []int `json:"ids" binding:"required,min=1"`
}

// Handler handles redirect rules API
type Handler struct {
	db *gorm.DB
}

// NewHandler creates a new redirect rules handler
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

// List handles GET /api/v1/redirects
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
	query := h.db.Model(&model.RedirectRule{})

	// Pattern filter (fuzzy)
	if req.Pattern != "" {
		query = query.Where("source_pattern LIKE ?", "%"+req.Pattern+"%")
	}

	// IsActive filter
	if req.IsActive != nil {
		query = query.Where("is_active = ?", *req.IsActive)
	}

	// Count total
	var total int64
	if err := query.Count(&total).Error; err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to count redirect rules", err))
		return
	}

	// Fetch rules with pagination, resolution order
	var rules []model.RedirectRule
	offset := (req.Page - 1) * req.PageSize
	if err := query.
		Offset(offset).
		Limit(req.PageSize).
		Order("priority DESC, created_at DESC, id DESC").
		Find(&rules).Error; err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to fetch redirect rules", err))
		return
	}

	httpx.OKItems(c, rules, total, req.Page, req.PageSize)
}

// Create handles POST /api/v1/redirects/create
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamMissing(err.Error()))
		return
	}

	rule := model.RedirectRule{
		SourcePattern: req.SourcePattern,
		TargetURL:     req.TargetURL,
		IsRegex:       req.IsRegex,
		StatusCode:    req.StatusCode,
		Priority:      req.Priority,
		IsActive:      true,
		Description:   req.Description,
	}
	if req.StatusCode == 0 {
		rule.StatusCode = model.StatusMovedPermanently
	}
	if req.IsActive != nil {
		rule.IsActive = *req.IsActive
	}

	if err := redirect.ValidateRule(&rule); err != nil {
		httpx.FailErr(c, httpx.ErrParamIllegal(err.Error()))
		return
	}

	if err := h.db.Create(&rule).Error; err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to create redirect rule", err))
		return
	}

	httpx.OK(c, gin.H{"item": rule})
}

// Update handles POST /api/v1/redirects/update
func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamMissing(err.Error()))
		return
	}

	var rule model.RedirectRule
	if err := h.db.First(&rule, req.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.FailErr(c, httpx.ErrNotFound("redirect rule not found"))
			return
		}
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to find redirect rule", err))
		return
	}

	// Apply changes, then validate the merged rule before persisting
	if req.SourcePattern != nil {
		rule.SourcePattern = *req.SourcePattern
	}
	if req.TargetURL != nil {
		rule.TargetURL = *req.TargetURL
	}
	if req.IsRegex != nil {
		rule.IsRegex = *req.IsRegex
	}
	if req.StatusCode != nil {
		rule.StatusCode = *req.StatusCode
	}
	if req.Priority != nil {
		rule.Priority = *req.Priority
	}
	if req.IsActive != nil {
		rule.IsActive = *req.IsActive
	}
	if req.Description != nil {
		rule.Description = *req.Description
	}

	if err := redirect.ValidateRule(&rule); err != nil {
		httpx.FailErr(c, httpx.ErrParamIllegal(err.Error()))
		return
	}

	if err := h.db.Save(&rule).Error; err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to update redirect rule", err))
		return
	}

	httpx.OK(c, gin.H{"item": rule})
}

// Delete handles POST /api/v1/redirects/delete
func (h *Handler) Delete(c *gin.Context) {
	var req DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamMissing(err.Error()))
		return
	}

	result := h.db.Delete(&model.RedirectRule{}, req.IDs)
	if result.Error != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to delete redirect rules", result.Error))
		return
	}

	httpx.OK(c, gin.H{
		"deletedCount": result.RowsAffected,
	})
}
