package redirect

import (
	"context"

	"gorm.io/gorm"

	"go_seo/internal/model"
)

// GormRepository reads redirect rules from the database
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a rule repository backed by GORM
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// ListActive returns active rules ordered by priority descending, then
// creation time descending. ID breaks creation-time ties deterministically.
func (r *GormRepository) ListActive(ctx context.Context) ([]model.RedirectRule, error) {
	var rules []model.RedirectRule
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("priority DESC, created_at DESC, id DESC").
		Find(&rules).Error
	if err != nil {
		return nil, err
	}
	return rules, nil
}
