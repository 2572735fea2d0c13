package form

import (
	"github.com/leadradar/leadradar-api/internal/domain/event"
	"gorm.io/gorm"
)

// Form is a configurable questionnaire belonging to one account and
// optionally one event.
type Form struct {
	gorm.Model
	AccountID   uint         `json:"account_id" gorm:"index"`
	EventID     *uint        `json:"event_id"` // Optional
	Name        string       `json:"name"`
	Description *string      `json:"description"`
	IsActive    bool         `json:"is_active" gorm:"default:true"`
	Fields      []FormField  `json:"fields" gorm:"foreignKey:FormID"`
	Event       *event.Event `json:"event" gorm:"foreignKey:EventID"`
}

// FormField is one ordered question within a form. Order lives in the
// sort_order column; the field services keep the sequence free of duplicates
// across insert/delete/reorder/duplicate.
type FormField struct {
	gorm.Model
	FormID      uint      `json:"form_id" gorm:"index"`
	Type        FieldType `json:"type"`
	Label       string    `json:"label"`
	Required    bool      `json:"required"`
	Order       int       `json:"order" gorm:"column:sort_order"`
	Placeholder *string   `json:"placeholder"`
	// Options is a JSON array of strings for SELECT/MULTISELECT/RADIO;
	// a legacy comma-separated form is still accepted on read.
	Options *string `json:"options"`
}
