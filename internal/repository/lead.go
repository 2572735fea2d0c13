package repository

import (
	"github.com/leadradar/leadradar-api/internal/domain/lead"
	"gorm.io/gorm"
)

type LeadRepo interface {
	CreateLead(l *lead.Lead) error
	CreateValues(values []lead.LeadFieldValue) error
	GetLeadByID(id uint) (lead.Lead, error)
	ListLeadsByForm(formID uint) ([]lead.Lead, error)
	SaveLead(l *lead.Lead) error
	CountValuesByField(fieldID uint) (int64, error)
	DeleteValuesByField(fieldID uint) error
	WithTx(tx *gorm.DB) LeadRepo
}

type DBLeadRepo struct {
	db *gorm.DB
}

func NewLeadRepo(db *gorm.DB) *DBLeadRepo {
	return &DBLeadRepo{
		db: db,
	}
}

func (r *DBLeadRepo) CreateLead(l *lead.Lead) error {
	return r.db.Create(l).Error
}

func (r *DBLeadRepo) CreateValues(values []lead.LeadFieldValue) error {
	if len(values) == 0 {
		return nil
	}
	return r.db.Create(&values).Error
}

func (r *DBLeadRepo) GetLeadByID(id uint) (lead.Lead, error) {
	var l lead.Lead
	if err := r.db.Preload("Values").First(&l, id).Error; err != nil {
		return l, err
	}
	return l, nil
}

func (r *DBLeadRepo) ListLeadsByForm(formID uint) ([]lead.Lead, error) {
	var leads []lead.Lead
	err := r.db.Where("form_id = ?", formID).
		Preload("Values").
		Order("created_at asc").
		Find(&leads).Error
	return leads, err
}

func (r *DBLeadRepo) SaveLead(l *lead.Lead) error {
	return r.db.Save(l).Error
}

func (r *DBLeadRepo) CountValuesByField(fieldID uint) (int64, error) {
	var n int64
	err := r.db.Model(&lead.LeadFieldValue{}).Where("field_id = ?", fieldID).Count(&n).Error
	return n, err
}

func (r *DBLeadRepo) DeleteValuesByField(fieldID uint) error {
	return r.db.Where("field_id = ?", fieldID).Delete(&lead.LeadFieldValue{}).Error
}

func (r *DBLeadRepo) WithTx(tx *gorm.DB) LeadRepo {
	if tx == nil {
		return r
	}
	return &DBLeadRepo{db: tx}
}
