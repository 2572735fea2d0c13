package db

import (
	"fmt"

	"github.com/leadradar/leadradar-api/internal/config"
	"github.com/leadradar/leadradar-api/internal/domain/account"
	"github.com/leadradar/leadradar-api/internal/domain/audit"
	"github.com/leadradar/leadradar-api/internal/domain/event"
	"github.com/leadradar/leadradar-api/internal/domain/form"
	"github.com/leadradar/leadradar-api/internal/domain/lead"
	"github.com/leadradar/leadradar-api/internal/domain/user"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the process-wide connection pool. The handle is created once
// at startup and injected into the repository container; nothing else holds
// it.
func Connect() (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	return conn, nil
}

// Migrate runs the schema auto-migration for every entity.
func Migrate(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&account.Account{},
		&user.User{},
		&event.Event{},
		&form.Form{},
		&form.FormField{},
		&lead.Lead{},
		&lead.LeadFieldValue{},
		&audit.AuditLog{},
	)
}
