package audit

import "gorm.io/gorm"

// AuditLog records one mutating admin operation.
type AuditLog struct {
	gorm.Model
	UserID       uint   `json:"user_id" gorm:"index"`
	Action       string `json:"action"`
	ResourceType string `json:"resource_type" gorm:"index"`
	ResourceID   string `json:"resource_id"`
	OldData      []byte `json:"old_data" gorm:"type:jsonb"`
	NewData      []byte `json:"new_data" gorm:"type:jsonb"`
	IPAddress    string `json:"ip_address"`
	UserAgent    string `json:"user_agent"`
	Description  string `json:"description"`
}
