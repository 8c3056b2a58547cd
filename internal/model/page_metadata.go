package model

// PageMetadata holds the SEO head block for one path.
// Site and Language narrow the record: empty site means any site, empty
// language means the default language. (path, site, language) is unique.
type PageMetadata struct {
	BaseModel
	Path     string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_path_site_lang" json:"path"`
	Site     string `gorm:"type:varchar(128);not null;default:'';uniqueIndex:uniq_path_site_lang" json:"site"`
	Language string `gorm:"type:varchar(16);not null;default:'';uniqueIndex:uniq_path_site_lang" json:"language"`

	Title       string `gorm:"type:varchar(255)" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Keywords    string `gorm:"type:varchar(255)" json:"keywords"`
	Robots      string `gorm:"type:varchar(64)" json:"robots"`
	Canonical   string `gorm:"type:varchar(255)" json:"canonicalUrl"`

	OGTitle       string `gorm:"type:varchar(255)" json:"ogTitle"`
	OGDescription string `gorm:"type:text" json:"ogDescription"`
	OGImage       string `gorm:"type:varchar(255)" json:"ogImage"`

	TwitterCard        string `gorm:"type:varchar(32)" json:"twitterCard"`
	TwitterTitle       string `gorm:"type:varchar(255)" json:"twitterTitle"`
	TwitterDescription string `gorm:"type:text" json:"twitterDescription"`
	TwitterImage       string `gorm:"type:varchar(255)" json:"twitterImage"`

	IsActive bool `gorm:"default:true;not null" json:"isActive"`
}

// TableName specifies the table name for PageMetadata model
func (PageMetadata) TableName() string {
	return "page_metadata"
}
