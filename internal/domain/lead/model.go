package lead

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusNew       Status = "NEW"
	StatusOpen      Status = "OPEN"
	StatusQualified Status = "QUALIFIED"
	StatusWon       Status = "WON"
	StatusLost      Status = "LOST"
	StatusArchived  Status = "ARCHIVED"
)

var AllStatuses = []Status{
	StatusNew,
	StatusOpen,
	StatusQualified,
	StatusWon,
	StatusLost,
	StatusArchived,
}

// ParseStatus matches a wire value case-insensitively and returns the
// canonical uppercase form.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToUpper(strings.TrimSpace(raw)))
	for _, known := range AllStatuses {
		if s == known {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown lead status %q", raw)
}

// Lead is one visitor submission against a form. AccountID is always copied
// from the form at creation, never taken from the request.
type Lead struct {
	gorm.Model
	AccountID       uint             `json:"account_id" gorm:"index"`
	FormID          uint             `json:"form_id" gorm:"index"`
	EventID         *uint            `json:"event_id"`
	CreatedByUserID *uint            `json:"created_by_user_id"`
	Status          Status           `json:"status" gorm:"default:'NEW'"`
	Notes           *string          `json:"notes"`
	Values          []LeadFieldValue `json:"values" gorm:"foreignKey:LeadID"`
}

// LeadFieldValue ties one answer to its field. Blank answers are dropped at
// submission and never stored.
type LeadFieldValue struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	LeadID    uint      `json:"lead_id" gorm:"index"`
	FieldID   uint      `json:"field_id" gorm:"index"`
	Value     string    `json:"value" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}
