package account

import "gorm.io/gorm"

// Account is the tenant boundary. Every other entity is reachable from
// exactly one Account.
type Account struct {
	gorm.Model
	Name string `json:"name"`
}
