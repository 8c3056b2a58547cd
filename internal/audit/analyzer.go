package audit

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"go_seo/internal/cache"
	"go_seo/internal/config"
)

// reportCacheTTL bounds how long a computed report is reused.
const reportCacheTTL = time.Hour

// Analyzer fetches a page and computes its audit report
type Analyzer struct {
	client        *http.Client
	cfg           config.AuditConfig
	viewportWidth int
	logger        *logrus.Entry
}

// NewAnalyzer creates an analyzer. viewportWidth is the assumed mobile
// device width used by the responsive checks.
func NewAnalyzer(cfg config.AuditConfig, viewportWidth int, logger *logrus.Entry) *Analyzer {
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = 1
	}
	if viewportWidth <= 0 {
		viewportWidth = 375
	}
	return &Analyzer{
		client: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeoutSec) * time.Second,
		},
		cfg:           cfg,
		viewportWidth: viewportWidth,
		logger:        logger.WithField("component", "audit-analyzer"),
	}
}

// AnalyzeURL audits a single URL. Recent reports are served from Redis.
func (a *Analyzer) AnalyzeURL(ctx context.Context, rawURL string) (*Report, error) {
	cacheKey := "seo:audit:" + rawURL

	var cached Report
	if cache.GetJSON(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	base, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}

	start := time.Now()
	body, err := a.fetch(ctx, rawURL, a.cfg.DesktopUserAgent)
	if err != nil {
		return nil, err
	}
	responseTime := time.Since(start).Seconds()

	doc, err := parseHTML(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", rawURL, err)
	}

	text := textContent(doc)
	internal, external := extractLinks(doc, base)
	imageCount, imagesWithAlt := imageStats(doc)

	content := ContentMetrics{
		WordCount:      len(strings.Fields(text)),
		HeadingCounts:  headingCounts(doc),
		InternalLinks:  len(internal),
		ExternalLinks:  len(external),
		BrokenLinks:    a.checkLinks(ctx, append(internal, external...)),
		ImageCount:     imageCount,
		ImagesWithAlt:  imagesWithAlt,
		KeywordDensity: keywordDensity(text),
	}

	technical := TechnicalMetrics{
		HasSSL:           base.Scheme == "https",
		HasRobotsTxt:     a.urlExists(ctx, base.ResolveReference(&url.URL{Path: "/robots.txt"}).String()),
		HasSitemap:       a.urlExists(ctx, base.ResolveReference(&url.URL{Path: "/sitemap.xml"}).String()),
		IsMobileFriendly: a.checkMobileFriendly(ctx, rawURL),
		HasSchemaMarkup:  hasSchemaMarkup(doc),
		PageSize:         len(body),
		ResponseTime:     responseTime,
	}

	speed := derivePageSpeed(responseTime)

	report := &Report{
		URL:             rawURL,
		Timestamp:       time.Now(),
		Title:           pageTitle(doc),
		MetaDescription: metaDescription(doc),
		CanonicalURL:    canonicalURL(doc),
		Content:         content,
		Technical:       technical,
		PageSpeed:       speed,
		Responsive:      CheckResponsiveDesign(doc, a.viewportWidth),
		Score:           CalculateScore(content, technical, speed),
		Suggestions:     GenerateSuggestions(content, technical, speed),
	}

	cache.SetJSON(ctx, cacheKey, report, reportCacheTTL)
	return report, nil
}

// AMPForURL fetches a page and returns its AMP variant
func (a *Analyzer) AMPForURL(ctx context.Context, rawURL string) (string, error) {
	body, err := a.fetch(ctx, rawURL, a.cfg.DesktopUserAgent)
	if err != nil {
		return "", err
	}
	doc, err := parseHTML(bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to parse %q: %w", rawURL, err)
	}
	return GenerateAMP(doc), nil
}

func (a *Analyzer) fetch(ctx context.Context, rawURL, userAgent string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %q: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("fetch %q returned status %d", rawURL, resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// checkLinks verifies links with bounded concurrency and returns the
// broken ones. A link is broken when the request fails or returns >= 400.
func (a *Analyzer) checkLinks(ctx context.Context, links []string) []string {
	if a.cfg.LinkCheckLimit <= 0 {
		return nil
	}
	if len(links) > a.cfg.LinkCheckLimit {
		links = links[:a.cfg.LinkCheckLimit]
	}

	var (
		mu     sync.Mutex
		broken []string
		wg     sync.WaitGroup
	)
	semaphore := make(chan struct{}, a.cfg.MaxConcurrency)

	for _, link := range links {
		wg.Add(1)
		semaphore <- struct{}{}
		go func(link string) {
			defer wg.Done()
			defer func() { <-semaphore }()

			if !a.linkAlive(ctx, link) {
				mu.Lock()
				broken = append(broken, link)
				mu.Unlock()
			}
		}(link)
	}

	wg.Wait()
	return broken
}

func (a *Analyzer) linkAlive(ctx context.Context, link string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, link, nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", a.cfg.DesktopUserAgent)

	resp, err := a.client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode < 400
}

func (a *Analyzer) urlExists(ctx context.Context, rawURL string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return false
	}
	resp, err := a.client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// checkMobileFriendly refetches the page with a mobile user agent and
// looks for a viewport meta tag.
func (a *Analyzer) checkMobileFriendly(ctx context.Context, rawURL string) bool {
	body, err := a.fetch(ctx, rawURL, a.cfg.MobileUserAgent)
	if err != nil {
		return false
	}
	doc, err := parseHTML(bytes.NewReader(body))
	if err != nil {
		return false
	}
	return viewportContent(doc) != ""
}
