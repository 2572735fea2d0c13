package repository

import (
	"github.com/leadradar/leadradar-api/internal/domain/event"
	"gorm.io/gorm"
)

type EventRepo interface {
	ListEventsByAccount(accountID uint) ([]event.Event, error)
	GetEventByID(id uint) (event.Event, error)
	CreateEvent(e *event.Event) error
	SaveEvent(e *event.Event) error
	WithTx(tx *gorm.DB) EventRepo
}

type DBEventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) *DBEventRepo {
	return &DBEventRepo{
		db: db,
	}
}

func (r *DBEventRepo) ListEventsByAccount(accountID uint) ([]event.Event, error) {
	var events []event.Event
	err := r.db.Where("account_id = ?", accountID).Order("start_date desc").Find(&events).Error
	return events, err
}

func (r *DBEventRepo) GetEventByID(id uint) (event.Event, error) {
	var e event.Event
	if err := r.db.First(&e, id).Error; err != nil {
		return e, err
	}
	return e, nil
}

func (r *DBEventRepo) CreateEvent(e *event.Event) error {
	return r.db.Create(e).Error
}

func (r *DBEventRepo) SaveEvent(e *event.Event) error {
	return r.db.Save(e).Error
}

func (r *DBEventRepo) WithTx(tx *gorm.DB) EventRepo {
	if tx == nil {
		return r
	}
	return &DBEventRepo{db: tx}
}
