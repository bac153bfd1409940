package routes

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/scheduler-web/internal/audit"
	"github.com/BruksfildServices01/scheduler-web/internal/config"
	"github.com/BruksfildServices01/scheduler-web/internal/dashboard"
	domain "github.com/BruksfildServices01/scheduler-web/internal/domain/appointment"
	"github.com/BruksfildServices01/scheduler-web/internal/handlers"
	"github.com/BruksfildServices01/scheduler-web/internal/logging"
	"github.com/BruksfildServices01/scheduler-web/internal/middleware"
	"github.com/BruksfildServices01/scheduler-web/internal/preference"
	ucAppointment "github.com/BruksfildServices01/scheduler-web/internal/usecase/appointment"
	"github.com/BruksfildServices01/scheduler-web/internal/web"
)

// Infra holds the singletons built by main.
type Infra struct {
	Repo        domain.Repository
	Audit       *audit.Dispatcher
	Preferences preference.Store
	Limiter     *middleware.RateLimiter
	Logger      logging.Logger

	// DB is nil when DATABASE_URL is not set.
	DB *gorm.DB

	// DashboardOptions overrides timers and clock, mostly for tests.
	DashboardOptions dashboard.Options
}

func RegisterRoutes(r *gin.Engine, cfg *config.Config, infra Infra) error {

	// ======================================================
	// 🖼️ TEMPLATES
	// ======================================================
	tmpl, err := web.Templates()
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestIDMiddleware(),
		middleware.CORSMiddleware(),
		middleware.VisitorMiddleware(cfg),
		middleware.AccessLogMiddleware(infra.Logger),
	)
	if infra.Limiter != nil {
		r.Use(middleware.RateLimitMiddleware(infra.Limiter))
	}

	// ======================================================
	// 🧠 USE CASES - APPOINTMENTS
	// ======================================================
	uc := dashboard.UseCases{
		List:   ucAppointment.NewListAppointments(infra.Repo, infra.Audit),
		Create: ucAppointment.NewCreateAppointment(infra.Repo, infra.Audit),
		Delete: ucAppointment.NewDeleteAppointment(infra.Repo, infra.Audit),
	}

	// ======================================================
	// 🗂️ SESSIONS
	// ======================================================
	opts := infra.DashboardOptions
	if opts.SuccessTTL <= 0 {
		opts.SuccessTTL = cfg.SuccessTTL
	}

	registry, err := dashboard.NewRegistry(cfg.SessionCacheSize, func(visitorID string) *dashboard.Dashboard {
		settings := preference.NewSettings(
			preference.Scoped(infra.Preferences, visitorID),
			infra.Logger,
		)
		return dashboard.New(visitorID, uc, settings, infra.Logger, opts)
	})
	if err != nil {
		return err
	}

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	dashboardHandler := handlers.NewDashboardHandler(registry, opts.SuccessTTL)
	stateAPIHandler := handlers.NewStateAPIHandler(registry, uc.List)
	auditLogsHandler := handlers.NewAuditLogsHandler(infra.DB)

	r.GET("/health", handlers.Health)

	// ======================================================
	// 🌍 ROTAS WEB (HTML)
	// ======================================================
	r.GET("/", dashboardHandler.Page)
	r.POST("/agendamentos", dashboardHandler.Create)
	r.POST("/agendamentos/:id/excluir", dashboardHandler.RequestDelete)
	r.POST("/exclusao/confirmar", dashboardHandler.ConfirmDelete)
	r.POST("/exclusao/cancelar", dashboardHandler.CancelDelete)
	r.POST("/erro/fechar", dashboardHandler.DismissError)
	r.POST("/tema/alternar", dashboardHandler.ToggleTheme)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/state", stateAPIHandler.State)
		api.GET("/agendamentos", stateAPIHandler.Appointments)
		api.POST("/form/change", stateAPIHandler.Change)
		api.POST("/form/blur", stateAPIHandler.Blur)
		api.POST("/validate", stateAPIHandler.Validate)
		api.GET("/auditoria", auditLogsHandler.List)
	}

	return nil
}
