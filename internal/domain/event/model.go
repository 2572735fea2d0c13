package event

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Event is a trade show or other occasion that forms and leads are captured
// against.
type Event struct {
	gorm.Model
	AccountID uint           `json:"account_id" gorm:"index"`
	Name      string         `json:"name"`
	Location  *string        `json:"location"`
	StartDate datatypes.Date `json:"start_date"`
	EndDate   datatypes.Date `json:"end_date"`
	IsActive  bool           `json:"is_active" gorm:"default:true"`
}
