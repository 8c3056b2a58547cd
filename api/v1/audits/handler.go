package audits

import (
	"go_seo/internal/audit"
	"go_seo/internal/httpx"
	"go_seo/internal/model"

	"github.com/gin-gonic/gin"
)

// RunRequest represents an audit run request
type RunRequest struct {
	URLs []string `json:"urls" binding:"required,min=1"`
}

// ListRequest represents list audit reports request
type ListRequest struct {
	Page      int    `form:"page"`
	PageSize  int    `form:"pageSize"`
	RequestID string `form:"requestId"`
}

// AMPPreviewRequest represents an AMP preview request
type AMPPreviewRequest struct {
	URL string `json:"url" binding:"required"`
}

// Handler handles audits API
type Handler struct {
	svc        *audit.Service
	ampEnabled bool
}

// NewHandler creates a new audits handler
func NewHandler(svc *audit.Service, ampEnabled bool) *Handler {
	return &Handler{svc: svc, ampEnabled: ampEnabled}
}

// Run handles POST /api/v1/audits/run. The audit executes in the
// background; clients poll the list endpoint or listen for the
// audit:completed Socket.IO event.
func (h *Handler) Run(c *gin.Context) {
	var req RunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamMissing(err.Error()))
		return
	}

	requestID, err := h.svc.Run(req.URLs)
	if err != nil {
		httpx.FailErr(c, httpx.ErrParamIllegal(err.Error()))
		return
	}

	httpx.OK(c, gin.H{
		"requestId": requestID,
		"status":    model.AuditStatusPending,
		"urls":      len(req.URLs),
	})
}

// AMPPreview handles POST /api/v1/audits/amp-preview
func (h *Handler) AMPPreview(c *gin.Context) {
	if !h.ampEnabled {
		httpx.FailErr(c, httpx.ErrStateConflict("AMP generation is disabled"))
		return
	}

	var req AMPPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamMissing(err.Error()))
		return
	}

	amp, err := h.svc.AMPPreview(c.Request.Context(), req.URL)
	if err != nil {
		httpx.FailErr(c, httpx.ErrExternalError("failed to generate AMP document", err))
		return
	}

	httpx.OK(c, gin.H{
		"url": req.URL,
		"amp": amp,
	})
}

// List handles GET /api/v1/audits
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

	reports, total, err := h.svc.List(req.RequestID, req.Page, req.PageSize)
	if err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to fetch audit reports", err))
		return
	}

	httpx.OKItems(c, reports, total, req.Page, req.PageSize)
}

// Get handles GET /api/v1/audits/:requestId, returning every report of
// one run.
func (h *Handler) Get(c *gin.Context) {
	requestID := c.Param("requestId")
	if requestID == "" {
		httpx.FailErr(c, httpx.ErrParamMissing("requestId is required"))
		return
	}

	reports, total, err := h.svc.List(requestID, 1, 100)
	if err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to fetch audit reports", err))
		return
	}
	if total == 0 {
		httpx.FailErr(c, httpx.ErrNotFound("audit run not found"))
		return
	}

	httpx.OK(c, gin.H{
		"requestId": requestID,
		"items":     reports,
		"total":     total,
	})
}
