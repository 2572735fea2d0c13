package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/leadradar/leadradar-api/internal/api/handlers"
	"github.com/leadradar/leadradar-api/internal/api/middleware"
	"github.com/leadradar/leadradar-api/internal/application"
	"github.com/leadradar/leadradar-api/internal/cron"
	"github.com/leadradar/leadradar-api/internal/repository"
	"github.com/leadradar/leadradar-api/pkg/metrics"
	"github.com/leadradar/leadradar-api/pkg/storage"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, conn *gorm.DB, archive *storage.Client, m *metrics.Metrics) {
	// init
	reposInstance := repository.NewRepositories(conn)
	servicesInstance := application.New(reposInstance, archive)
	handlersInstance := handlers.New(servicesInstance, reposInstance, m, r)

	// Start background tasks
	cron.StartCleanupTask(servicesInstance.Audit)

	// Ops surface
	r.GET("/api/health", handlersInstance.Health.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes: registration, login and the capture endpoint posted by
	// the public form pages.
	r.POST("/api/auth/register", handlersInstance.User.Register)
	r.POST("/api/auth/login", handlersInstance.User.Login)
	r.POST("/api/auth/logout", handlersInstance.User.Logout)
	r.POST("/api/leads", handlersInstance.Lead.Submit)

	auth := r.Group("/api")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/auth/me", handlersInstance.User.Me)
		auth.GET("/ws/leads", handlers.LeadFeedHandler(servicesInstance.Feed, m))

		events := auth.Group("/events")
		{
			events.GET("", handlersInstance.Event.ListEvents)
			events.GET("/:id", handlersInstance.Event.GetEvent)
			events.POST("", handlersInstance.Event.CreateEvent)
			events.PUT("/:id", handlersInstance.Event.UpdateEvent)
		}

		forms := auth.Group("/forms")
		{
			forms.GET("", handlersInstance.Form.ListForms)
			forms.GET("/:id", handlersInstance.Form.GetForm)
			forms.POST("", handlersInstance.Form.CreateForm)
			forms.PUT("/:id", handlersInstance.Form.UpdateForm)
			forms.PUT("/:id/fields/:fieldId", handlersInstance.Field.UpdateField)
			forms.GET("/:id/leads", handlersInstance.Lead.ListLeads)
		}

		fields := auth.Group("/form-fields")
		{
			fields.POST("", handlersInstance.Field.AddField)
			fields.POST("/reorder", handlersInstance.Field.ReorderField)
			fields.POST("/duplicate", handlersInstance.Field.DuplicateField)
			fields.POST("/delete", handlersInstance.Field.DeleteField)
		}

		leads := auth.Group("/leads")
		{
			leads.GET("/:id", handlersInstance.Lead.GetLead)
			leads.POST("/status", handlersInstance.Lead.UpdateStatus)
		}

		audit := auth.Group("/audit/logs")
		{
			audit.GET("", handlersInstance.Audit.GetAuditLogs)
		}
	}

	// The export download link lives on the admin pages, outside /api.
	admin := r.Group("/admin")
	admin.Use(middleware.JWTAuthMiddleware())
	{
		admin.GET("/forms/:id/leads/export", handlersInstance.Export.ExportLeads)
	}
}
