package model

import "time"

// ChangeFreq values accepted by the sitemap protocol
const (
	ChangeFreqAlways  = "always"
	ChangeFreqHourly  = "hourly"
	ChangeFreqDaily   = "daily"
	ChangeFreqWeekly  = "weekly"
	ChangeFreqMonthly = "monthly"
	ChangeFreqYearly  = "yearly"
	ChangeFreqNever   = "never"
)

// ValidChangeFreq reports whether freq is a legal changefreq value
func ValidChangeFreq(freq string) bool {
	switch freq {
	case ChangeFreqAlways, ChangeFreqHourly, ChangeFreqDaily, ChangeFreqWeekly,
		ChangeFreqMonthly, ChangeFreqYearly, ChangeFreqNever:
		return true
	}
	return false
}

// SitemapEntry is one custom URL in the generated sitemap.xml
type SitemapEntry struct {
	BaseModel
	URL        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"url"`
	LastMod    time.Time `gorm:"not null" json:"lastmod"`
	ChangeFreq string    `gorm:"type:varchar(20);not null;default:'weekly'" json:"changefreq"`
	Priority   float64   `gorm:"not null;default:0.5" json:"priority"`
	IsActive   bool      `gorm:"default:true;not null" json:"isActive"`
}

// TableName specifies the table name for SitemapEntry model
func (SitemapEntry) TableName() string {
	return "sitemap_entries"
}
