package model

// Redirect status codes allowed for a rule
const (
	StatusMovedPermanently  = 301
	StatusFound             = 302
	StatusTemporaryRedirect = 307
	StatusPermanentRedirect = 308
)

// ValidStatusCode reports whether code is one of the four redirect codes a rule may use
func ValidStatusCode(code int) bool {
	switch code {
	case StatusMovedPermanently, StatusFound, StatusTemporaryRedirect, StatusPermanentRedirect:
		return true
	}
	return false
}

// RedirectRule maps a source path pattern to a target URL.
// SourcePattern is a literal path, a wildcard pattern (* segments) or a
// regular expression depending on IsRegex. TargetURL may reference capture
// groups positionally ($1, $2, ...).
type RedirectRule struct {
	BaseModel
	SourcePattern string `gorm:"type:varchar(255);not null;index:idx_redirect_lookup" json:"sourcePattern"`
	TargetURL     string `gorm:"type:varchar(255);not null" json:"targetUrl"`
	IsRegex       bool   `gorm:"default:false;not null" json:"isRegex"`
	StatusCode    int    `gorm:"default:301;not null" json:"statusCode"`
	Priority      int    `gorm:"default:0;not null;index" json:"priority"`
	IsActive      bool   `gorm:"default:true;not null;index:idx_redirect_lookup" json:"isActive"`
	Description   string `gorm:"type:text" json:"description"`
}

// TableName specifies the table name for RedirectRule model
func (RedirectRule) TableName() string {
	return "redirect_rules"
}
