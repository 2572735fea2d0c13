package repository

import (
	"github.com/leadradar/leadradar-api/internal/domain/form"
	"gorm.io/gorm"
)

type FormFieldRepo interface {
	GetFieldByID(id uint) (form.FormField, error)
	ListFieldsByForm(formID uint) ([]form.FormField, error)
	MaxOrder(formID uint) (int, error)
	CreateField(f *form.FormField) error
	SaveField(f *form.FormField) error
	UpdateOrder(fieldID uint, order int) error
	DeleteField(id uint) error
	WithTx(tx *gorm.DB) FormFieldRepo
}

type DBFormFieldRepo struct {
	db *gorm.DB
}

func NewFormFieldRepo(db *gorm.DB) *DBFormFieldRepo {
	return &DBFormFieldRepo{
		db: db,
	}
}

func (r *DBFormFieldRepo) GetFieldByID(id uint) (form.FormField, error) {
	var f form.FormField
	if err := r.db.First(&f, id).Error; err != nil {
		return f, err
	}
	return f, nil
}

func (r *DBFormFieldRepo) ListFieldsByForm(formID uint) ([]form.FormField, error) {
	var fields []form.FormField
	err := r.db.Where("form_id = ?", formID).Order("sort_order asc").Find(&fields).Error
	return fields, err
}

// MaxOrder returns 0 for a form with no fields.
func (r *DBFormFieldRepo) MaxOrder(formID uint) (int, error) {
	var max *int
	err := r.db.Model(&form.FormField{}).
		Where("form_id = ?", formID).
		Select("MAX(sort_order)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return 0, nil
	}
	return *max, nil
}

func (r *DBFormFieldRepo) CreateField(f *form.FormField) error {
	return r.db.Create(f).Error
}

func (r *DBFormFieldRepo) SaveField(f *form.FormField) error {
	return r.db.Save(f).Error
}

func (r *DBFormFieldRepo) UpdateOrder(fieldID uint, order int) error {
	return r.db.Model(&form.FormField{}).
		Where("id = ?", fieldID).
		Update("sort_order", order).Error
}

func (r *DBFormFieldRepo) DeleteField(id uint) error {
	return r.db.Delete(&form.FormField{}, id).Error
}

func (r *DBFormFieldRepo) WithTx(tx *gorm.DB) FormFieldRepo {
	if tx == nil {
		return r
	}
	return &DBFormFieldRepo{db: tx}
}
