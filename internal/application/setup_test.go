package application

import (
	"testing"

	"github.com/leadradar/leadradar-api/internal/domain/account"
	"github.com/leadradar/leadradar-api/internal/domain/form"
	"github.com/leadradar/leadradar-api/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/leadradar/leadradar-api/internal/domain/audit"
	"github.com/leadradar/leadradar-api/internal/domain/event"
	"github.com/leadradar/leadradar-api/internal/domain/lead"
	"github.com/leadradar/leadradar-api/internal/domain/user"
)

// newTestRepos opens an isolated in-memory database with the full schema.
func newTestRepos(t *testing.T) *repository.Repos {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&account.Account{},
		&user.User{},
		&event.Event{},
		&form.Form{},
		&form.FormField{},
		&lead.Lead{},
		&lead.LeadFieldValue{},
		&audit.AuditLog{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return repository.NewRepositories(db)
}

func seedAccount(t *testing.T, repos *repository.Repos, name string) *account.Account {
	t.Helper()
	acc := &account.Account{Name: name}
	if err := repos.User.CreateAccount(acc); err != nil {
		t.Fatalf("failed to seed account: %v", err)
	}
	return acc
}

func seedForm(t *testing.T, repos *repository.Repos, accountID uint, name string) *form.Form {
	t.Helper()
	f := &form.Form{AccountID: accountID, Name: name, IsActive: true}
	if err := repos.Form.CreateForm(f); err != nil {
		t.Fatalf("failed to seed form: %v", err)
	}
	return f
}

func seedField(t *testing.T, repos *repository.Repos, formID uint, label string, ft form.FieldType, order int, required bool) *form.FormField {
	t.Helper()
	fld := &form.FormField{
		FormID:   formID,
		Type:     ft,
		Label:    label,
		Order:    order,
		Required: required,
	}
	if err := repos.FormField.CreateField(fld); err != nil {
		t.Fatalf("failed to seed field %q: %v", label, err)
	}
	return fld
}

func fieldOrders(t *testing.T, repos *repository.Repos, formID uint) map[string]int {
	t.Helper()
	fields, err := repos.FormField.ListFieldsByForm(formID)
	if err != nil {
		t.Fatalf("failed to list fields: %v", err)
	}
	orders := make(map[string]int, len(fields))
	for _, f := range fields {
		orders[f.Label] = f.Order
	}
	return orders
}
