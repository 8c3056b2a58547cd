package model

import "gorm.io/datatypes"

// AuditStatus represents the lifecycle of one audit run on one URL
type AuditStatus string

const (
	AuditStatusPending   AuditStatus = "pending"
	AuditStatusCompleted AuditStatus = "completed"
	AuditStatusFailed    AuditStatus = "failed"
)

// AuditReport stores the result of analyzing one URL. Detail carries the
// full report (content metrics, technical metrics, page speed, suggestions)
// as JSON; Score duplicates the overall score for listing and ordering.
type AuditReport struct {
	BaseModel
	RequestID string         `gorm:"type:varchar(36);not null;index" json:"requestId"`
	URL       string         `gorm:"type:varchar(255);not null;index" json:"url"`
	Status    AuditStatus    `gorm:"type:enum('pending','completed','failed');not null;default:'pending'" json:"status"`
	Score     float64        `gorm:"not null;default:0" json:"score"`
	Detail    datatypes.JSON `gorm:"type:json" json:"detail,omitempty"`
	Error     string         `gorm:"type:varchar(255)" json:"error,omitempty"`
}

// TableName specifies the table name for AuditReport model
func (AuditReport) TableName() string {
	return "audit_reports"
}
