package audit

import "time"

// ContentMetrics are the content-related measurements of one page
type ContentMetrics struct {
	WordCount      int                `json:"wordCount"`
	HeadingCounts  map[string]int     `json:"headingCounts"`
	InternalLinks  int                `json:"internalLinks"`
	ExternalLinks  int                `json:"externalLinks"`
	BrokenLinks    []string           `json:"brokenLinks"`
	ImageCount     int                `json:"imageCount"`
	ImagesWithAlt  int                `json:"imagesWithAlt"`
	KeywordDensity map[string]float64 `json:"keywordDensity"`
}

// TechnicalMetrics are the site-level measurements of one page
type TechnicalMetrics struct {
	HasSSL           bool    `json:"hasSsl"`
	HasRobotsTxt     bool    `json:"hasRobotsTxt"`
	HasSitemap       bool    `json:"hasSitemap"`
	IsMobileFriendly bool    `json:"isMobileFriendly"`
	HasSchemaMarkup  bool    `json:"hasSchemaMarkup"`
	PageSize         int     `json:"pageSize"`
	ResponseTime     float64 `json:"responseTime"`
}

// PageSpeed approximates loading metrics from the observed load time.
// The paint/interactive values are derived ratios, not field measurements.
type PageSpeed struct {
	LoadTime               float64 `json:"loadTime"`
	FirstContentfulPaint   float64 `json:"firstContentfulPaint"`
	LargestContentfulPaint float64 `json:"largestContentfulPaint"`
	TimeToInteractive      float64 `json:"timeToInteractive"`
	TotalBlockingTime      float64 `json:"totalBlockingTime"`
}

// derivePageSpeed fills the derived ratios from a measured load time
func derivePageSpeed(loadTime float64) PageSpeed {
	return PageSpeed{
		LoadTime:               loadTime,
		FirstContentfulPaint:   loadTime * 0.3,
		LargestContentfulPaint: loadTime * 0.6,
		TimeToInteractive:      loadTime * 0.8,
		TotalBlockingTime:      loadTime * 0.2,
	}
}

// Report is the complete result of auditing one URL
type Report struct {
	URL             string           `json:"url"`
	Timestamp       time.Time        `json:"timestamp"`
	Title           string           `json:"title"`
	MetaDescription string           `json:"metaDescription"`
	CanonicalURL    string           `json:"canonicalUrl,omitempty"`
	Content         ContentMetrics   `json:"contentMetrics"`
	Technical       TechnicalMetrics `json:"technicalMetrics"`
	PageSpeed       PageSpeed        `json:"pageSpeed"`
	Responsive      ResponsiveCheck  `json:"responsiveDesign"`
	Score           float64          `json:"score"`
	Suggestions     []string         `json:"suggestions"`
}
