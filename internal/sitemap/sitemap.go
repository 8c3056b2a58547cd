package sitemap

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"go_seo/internal/cache"
	"go_seo/internal/model"
)

const cacheKey = "seo:sitemap:xml"

// Repository lists the active sitemap entries, highest priority first
type Repository interface {
	ListActive(ctx context.Context) ([]model.SitemapEntry, error)
}

// GormRepository reads sitemap entries from the database
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a sitemap repository backed by GORM
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// ListActive returns active entries ordered by priority, then last modification
func (r *GormRepository) ListActive(ctx context.Context) ([]model.SitemapEntry, error) {
	var entries []model.SitemapEntry
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("priority DESC, last_mod DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// urlSet is the sitemap protocol document
type urlSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []urlEntry
}

type urlEntry struct {
	XMLName    xml.Name `xml:"url"`
	Loc        string   `xml:"loc"`
	LastMod    string   `xml:"lastmod"`
	ChangeFreq string   `xml:"changefreq"`
	Priority   string   `xml:"priority"`
}

// Service renders sitemap.xml from the stored entries and caches the
// serialized document in Redis.
type Service struct {
	repo     Repository
	cacheTTL time.Duration
	logger   *logrus.Entry
}

// NewService creates a sitemap service
func NewService(repo Repository, cacheTTLSec int, logger *logrus.Entry) *Service {
	return &Service{
		repo:     repo,
		cacheTTL: time.Duration(cacheTTLSec) * time.Second,
		logger:   logger.WithField("component", "sitemap-service"),
	}
}

// Render returns the serialized sitemap document
func (s *Service) Render(ctx context.Context) ([]byte, error) {
	var cached []byte
	if cache.GetJSON(ctx, cacheKey, &cached) {
		return cached, nil
	}

	entries, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	doc := BuildURLSet(entries)
	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sitemap: %w", err)
	}
	out := append([]byte(xml.Header), body...)

	cache.SetJSON(ctx, cacheKey, out, s.cacheTTL)
	return out, nil
}

// InvalidateCache drops the cached document after entry writes
func (s *Service) InvalidateCache(ctx context.Context) {
	cache.Invalidate(ctx, cacheKey)
}

// BuildURLSet converts entries into the sitemap protocol document
func BuildURLSet(entries []model.SitemapEntry) urlSet {
	doc := urlSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  make([]urlEntry, 0, len(entries)),
	}
	for _, e := range entries {
		doc.URLs = append(doc.URLs, urlEntry{
			Loc:        e.URL,
			LastMod:    e.LastMod.UTC().Format("2006-01-02"),
			ChangeFreq: e.ChangeFreq,
			Priority:   strconv.FormatFloat(e.Priority, 'f', 1, 64),
		})
	}
	return doc
}

// Handler serves GET /sitemap.xml
func Handler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := svc.Render(c.Request.Context())
		if err != nil {
			svc.logger.WithError(err).Error("Failed to render sitemap")
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Data(http.StatusOK, "application/xml; charset=utf-8", body)
	}
}

// ValidateEntry checks a sitemap entry at creation/update time
func ValidateEntry(entry *model.SitemapEntry) error {
	if entry.URL == "" {
		return fmt.Errorf("url is required")
	}
	if entry.Priority < 0.0 || entry.Priority > 1.0 {
		return fmt.Errorf("priority must be between 0.0 and 1.0")
	}
	if !model.ValidChangeFreq(entry.ChangeFreq) {
		return fmt.Errorf("changefreq must be one of always, hourly, daily, weekly, monthly, yearly, never")
	}
	return nil
}
