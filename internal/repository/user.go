package repository

import (
	"github.com/leadradar/leadradar-api/internal/domain/account"
	"github.com/leadradar/leadradar-api/internal/domain/user"
	"gorm.io/gorm"
)

type UserRepo interface {
	GetUserByEmail(email string) (user.User, error)
	GetUserRawByID(id uint) (user.User, error)
	SaveUser(u *user.User) error
	CreateAccount(a *account.Account) error
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{
		db: db,
	}
}

func (r *DBUserRepo) GetUserByEmail(email string) (user.User, error) {
	var u user.User
	if err := r.db.Where("email = ?", email).Preload("Account").First(&u).Error; err != nil {
		return u, err
	}
	return u, nil
}

func (r *DBUserRepo) GetUserRawByID(id uint) (user.User, error) {
	var u user.User
	if err := r.db.Preload("Account").First(&u, id).Error; err != nil {
		return u, err
	}
	return u, nil
}

func (r *DBUserRepo) SaveUser(u *user.User) error {
	return r.db.Save(u).Error
}

func (r *DBUserRepo) CreateAccount(a *account.Account) error {
	return r.db.Create(a).Error
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	if tx == nil {
		return r
	}
	return &DBUserRepo{db: tx}
}
