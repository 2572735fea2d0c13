package user

import (
	"github.com/leadradar/leadradar-api/internal/domain/account"
	"gorm.io/gorm"
)

type Role string

const (
	RoleOwner  Role = "OWNER"
	RoleMember Role = "MEMBER"
)

type User struct {
	gorm.Model
	AccountID    uint            `json:"account_id" gorm:"index"`
	Email        string          `json:"email" gorm:"uniqueIndex"`
	Name         string          `json:"name"`
	Role         Role            `json:"role" gorm:"default:'MEMBER'"`
	PasswordHash string          `json:"-"`
	Account      account.Account `json:"account" gorm:"foreignKey:AccountID"`
}
