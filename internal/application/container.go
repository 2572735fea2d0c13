package application

import (
	"github.com/leadradar/leadradar-api/internal/repository"
	"github.com/leadradar/leadradar-api/pkg/storage"
)

type Services struct {
	User   *UserService
	Event  *EventService
	Form   *FormService
	Field  *FieldService
	Lead   *LeadService
	Export *ExportService
	Audit  *AuditService
	Feed   *LeadFeed
}

func New(repos *repository.Repos, archive *storage.Client) *Services {
	feed := NewLeadFeed()
	return &Services{
		User:   NewUserService(repos),
		Event:  NewEventService(repos),
		Form:   NewFormService(repos),
		Field:  NewFieldService(repos),
		Lead:   NewLeadService(repos, feed),
		Export: NewExportService(repos, archive),
		Audit:  NewAuditService(repos),
		Feed:   feed,
	}
}
