package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/leadradar/leadradar-api/internal/application"
	"github.com/leadradar/leadradar-api/internal/repository"
	"github.com/leadradar/leadradar-api/pkg/metrics"
)

type Handlers struct {
	User   *UserHandler
	Event  *EventHandler
	Form   *FormHandler
	Field  *FormFieldHandler
	Lead   *LeadHandler
	Export *ExportHandler
	Audit  *AuditHandler
	Health *HealthHandler
	Router *gin.Engine
}

func New(svc *application.Services, repos *repository.Repos, m *metrics.Metrics, router *gin.Engine) *Handlers {
	h := &Handlers{
		User:   NewUserHandler(svc.User, m),
		Event:  NewEventHandler(svc.Event),
		Form:   NewFormHandler(svc.Form),
		Field:  NewFormFieldHandler(svc.Field, repos.Audit),
		Lead:   NewLeadHandler(svc.Lead, repos.Audit, m),
		Export: NewExportHandler(svc.Export, m),
		Audit:  NewAuditHandler(svc.Audit),
		Health: NewHealthHandler(repos),
		Router: router,
	}
	return h
}
