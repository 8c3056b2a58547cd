package metadata

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"go_seo/internal/cache"
	"go_seo/internal/config"
	"go_seo/internal/model"
)

// Repository loads the active metadata records stored for a path across
// all sites and languages.
type Repository interface {
	FindForPath(ctx context.Context, path string) ([]model.PageMetadata, error)
}

// GormRepository reads page metadata from the database
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a metadata repository backed by GORM
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// FindForPath returns all active records for path, any site and language
func (r *GormRepository) FindForPath(ctx context.Context, path string) ([]model.PageMetadata, error) {
	var records []model.PageMetadata
	err := r.db.WithContext(ctx).
		Where("path = ? AND is_active = ?", path, true).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Service resolves the metadata record for a request and caches the result
type Service struct {
	repo   Repository
	cfg    config.SEOConfig
	logger *logrus.Entry
}

// NewService creates a metadata service
func NewService(repo Repository, cfg config.SEOConfig, logger *logrus.Entry) *Service {
	return &Service{
		repo:   repo,
		cfg:    cfg,
		logger: logger.WithField("component", "metadata-service"),
	}
}

// Get returns the best metadata record for (path, site, language), or nil
// when nothing is stored for the path. Results are cached in Redis; admin
// writes call InvalidateCache.
func (s *Service) Get(ctx context.Context, path, site, language string) (*model.PageMetadata, error) {
	key := cacheKey(path, site, language)

	var cached model.PageMetadata
	if cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	records, err := s.repo.FindForPath(ctx, path)
	if err != nil {
		return nil, err
	}

	best := pickBest(records, site, language)
	if best == nil {
		return nil, nil
	}

	cache.SetJSON(ctx, key, best, time.Duration(s.cfg.CacheTTLSec)*time.Second)
	return best, nil
}

// InvalidateCache drops all cached metadata resolutions
func (s *Service) InvalidateCache(ctx context.Context) {
	cache.Invalidate(ctx, "seo:meta:*")
}

func cacheKey(path, site, language string) string {
	sum := md5.Sum([]byte(site + path))
	return fmt.Sprintf("seo:meta:%s:%s", hex.EncodeToString(sum[:]), language)
}

// pickBest selects the most specific applicable record. A record applies
// when its site and language are either exact matches or empty (generic).
// Site specificity outranks language specificity; latest update breaks ties.
func pickBest(records []model.PageMetadata, site, language string) *model.PageMetadata {
	var best *model.PageMetadata
	bestRank := -1

	for i := range records {
		r := &records[i]
		if r.Site != "" && r.Site != site {
			continue
		}
		if r.Language != "" && r.Language != language {
			continue
		}

		rank := 0
		if r.Site != "" {
			rank += 2
		}
		if r.Language != "" {
			rank++
		}

		if rank > bestRank || (rank == bestRank && r.UpdatedAt.After(best.UpdatedAt)) {
			best = r
			bestRank = rank
		}
	}

	return best
}
