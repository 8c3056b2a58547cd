package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"go_seo/internal/config"
	"go_seo/internal/model"
)

// Notifier delivers an event with a payload to connected clients. A nil
// Notifier disables notifications.
type Notifier func(event string, payload interface{})

// Service runs audits in the background and persists their reports
type Service struct {
	db       *gorm.DB
	analyzer *Analyzer
	cfg      config.AuditConfig
	logger   *logrus.Entry
	notify   Notifier
}

// NewService creates an audit service
func NewService(db *gorm.DB, analyzer *Analyzer, cfg config.AuditConfig, logger *logrus.Entry, notify Notifier) *Service {
	return &Service{
		db:       db,
		analyzer: analyzer,
		cfg:      cfg,
		logger:   logger.WithField("component", "audit-service"),
		notify:   notify,
	}
}

// Run creates a pending report row per URL and starts the audit in the
// background. It returns the request ID that groups the rows.
func (s *Service) Run(urls []string) (string, error) {
	if !s.cfg.Enabled {
		return "", fmt.Errorf("audits are disabled")
	}
	if len(urls) == 0 {
		return "", fmt.Errorf("at least one URL is required")
	}
	for _, raw := range urls {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return "", fmt.Errorf("invalid URL %q", raw)
		}
	}

	requestID := uuid.New().String()
	reports := make([]model.AuditReport, 0, len(urls))
	for _, raw := range urls {
		reports = append(reports, model.AuditReport{
			RequestID: requestID,
			URL:       raw,
			Status:    model.AuditStatusPending,
		})
	}
	if err := s.db.Create(&reports).Error; err != nil {
		return "", fmt.Errorf("failed to create audit reports: %w", err)
	}

	go s.execute(requestID, reports)
	return requestID, nil
}

func (s *Service) execute(requestID string, reports []model.AuditReport) {
	s.logger.Infof("Starting audit run %s with %d URLs", requestID, len(reports))

	g := new(errgroup.Group)
	g.SetLimit(s.cfg.MaxConcurrency)
	for i := range reports {
		row := reports[i]
		g.Go(func() error {
			s.runOne(context.Background(), row)
			return nil
		})
	}
	g.Wait()

	s.logger.Infof("Audit run %s finished", requestID)
}

func (s *Service) runOne(ctx context.Context, row model.AuditReport) {
	report, err := s.analyzer.AnalyzeURL(ctx, row.URL)
	if err != nil {
		s.logger.WithError(err).Warnf("Audit of %s failed", row.URL)
		s.finish(row, map[string]interface{}{
			"status": model.AuditStatusFailed,
			"error":  err.Error(),
		})
		return
	}

	detail, err := json.Marshal(report)
	if err != nil {
		s.logger.WithError(err).Errorf("Failed to encode report for %s", row.URL)
		s.finish(row, map[string]interface{}{
			"status": model.AuditStatusFailed,
			"error":  "failed to encode report",
		})
		return
	}

	s.finish(row, map[string]interface{}{
		"status": model.AuditStatusCompleted,
		"score":  report.Score,
		"detail": detail,
	})
}

func (s *Service) finish(row model.AuditReport, updates map[string]interface{}) {
	if err := s.db.Model(&model.AuditReport{}).Where("id = ?", row.ID).Updates(updates).Error; err != nil {
		s.logger.WithError(err).Errorf("Failed to update audit report %d", row.ID)
		return
	}
	if s.notify != nil {
		s.notify("audit:completed", map[string]interface{}{
			"requestId": row.RequestID,
			"url":       row.URL,
			"status":    updates["status"],
			"score":     updates["score"],
		})
	}
}

// AMPPreview returns the AMP variant of a live page
func (s *Service) AMPPreview(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("invalid URL %q", rawURL)
	}
	return s.analyzer.AMPForURL(ctx, rawURL)
}

// List returns audit reports, optionally filtered by request ID, newest first
func (s *Service) List(requestID string, page, pageSize int) ([]model.AuditReport, int64, error) {
	query := s.db.Model(&model.AuditReport{})
	if requestID != "" {
		query = query.Where("request_id = ?", requestID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reports []model.AuditReport
	if err := query.Order("id DESC").Offset((page - 1) * pageSize).Limit(pageSize).Find(&reports).Error; err != nil {
		return nil, 0, err
	}
	return reports, total, nil
}

// Get returns one audit report by ID
func (s *Service) Get(id uint) (*model.AuditReport, error) {
	var report model.AuditReport
	if err := s.db.First(&report, id).Error; err != nil {
		return nil, err
	}
	return &report, nil
}
