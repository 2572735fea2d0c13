package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	User      UserRepo
	Event     EventRepo
	Form      FormRepo
	FormField FormFieldRepo
	Lead      LeadRepo
	Audit     AuditRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		User:      NewUserRepo(db),
		Event:     NewEventRepo(db),
		Form:      NewFormRepo(db),
		FormField: NewFormFieldRepo(db),
		Lead:      NewLeadRepo(db),
		Audit:     NewAuditRepo(db),
		db:        db,
	}
}

func (r *Repos) Begin() *gorm.DB {
	return r.db.Begin()
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:      r.User.WithTx(tx),
		Event:     r.Event.WithTx(tx),
		Form:      r.Form.WithTx(tx),
		FormField: r.FormField.WithTx(tx),
		Lead:      r.Lead.WithTx(tx),
		Audit:     r.Audit.WithTx(tx),
		db:        tx,
	}
}

// ExecTx runs fn against a repo set bound to one transaction; fn returning an
// error rolls everything back.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}

// Ping verifies the underlying connection, used by the health endpoint.
func (r *Repos) Ping() error {
	return r.db.Exec("SELECT 1").Error
}
