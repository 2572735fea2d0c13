package repository

import (
	"github.com/leadradar/leadradar-api/internal/domain/form"
	"gorm.io/gorm"
)

type FormRepo interface {
	ListFormsByAccount(accountID uint) ([]form.Form, error)
	GetFormByID(id uint) (form.Form, error)
	GetFormWithFields(id uint) (form.Form, error)
	CreateForm(f *form.Form) error
	SaveForm(f *form.Form) error
	WithTx(tx *gorm.DB) FormRepo
}

type DBFormRepo struct {
	db *gorm.DB
}

func NewFormRepo(db *gorm.DB) *DBFormRepo {
	return &DBFormRepo{
		db: db,
	}
}

func (r *DBFormRepo) ListFormsByAccount(accountID uint) ([]form.Form, error) {
	var forms []form.Form
	err := r.db.Where("account_id = ?", accountID).Order("created_at desc").Find(&forms).Error
	return forms, err
}

func (r *DBFormRepo) GetFormByID(id uint) (form.Form, error) {
	var f form.Form
	if err := r.db.First(&f, id).Error; err != nil {
		return f, err
	}
	return f, nil
}

func (r *DBFormRepo) GetFormWithFields(id uint) (form.Form, error) {
	var f form.Form
	err := r.db.Preload("Fields", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order asc")
	}).Preload("Event").First(&f, id).Error
	if err != nil {
		return f, err
	}
	return f, nil
}

func (r *DBFormRepo) CreateForm(f *form.Form) error {
	return r.db.Create(f).Error
}

func (r *DBFormRepo) SaveForm(f *form.Form) error {
	return r.db.Save(f).Error
}

func (r *DBFormRepo) WithTx(tx *gorm.DB) FormRepo {
	if tx == nil {
		return r
	}
	return &DBFormRepo{db: tx}
}
