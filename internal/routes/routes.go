package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/carepetz/petshop-scheduler/internal/audit"
	"github.com/carepetz/petshop-scheduler/internal/config"
	"github.com/carepetz/petshop-scheduler/internal/handlers"
	infraRepo "github.com/carepetz/petshop-scheduler/internal/infra/repository"
	"github.com/carepetz/petshop-scheduler/internal/middleware"
	ucAppointment "github.com/carepetz/petshop-scheduler/internal/usecase/appointment"
	ucClient "github.com/carepetz/petshop-scheduler/internal/usecase/client"
	ucService "github.com/carepetz/petshop-scheduler/internal/usecase/service"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, svcCache ucService.Cache) {

	// ======================================================
	// INFRA
	// ======================================================
	clientRepo := infraRepo.NewClientGormRepository(db)
	serviceRepo := infraRepo.NewServiceGormRepository(db)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	clientUC := ucClient.New(clientRepo, appointmentRepo, auditDispatcher)
	serviceUC := ucService.New(serviceRepo, appointmentRepo, svcCache, auditDispatcher)

	createAppointmentUC := ucAppointment.NewCreate(
		appointmentRepo,
		clientRepo,
		serviceRepo,
		auditDispatcher,
	)

	updateAppointmentUC := ucAppointment.NewUpdate(
		appointmentRepo,
		clientRepo,
		serviceRepo,
		auditDispatcher,
	)

	deleteAppointmentUC := ucAppointment.NewDelete(
		appointmentRepo,
		auditDispatcher,
	)

	appointmentQueriesUC := ucAppointment.NewQueries(appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	clientHandler := handlers.NewClientHandler(clientUC)
	serviceHandler := handlers.NewServiceHandler(serviceUC)
	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		deleteAppointmentUC,
		appointmentQueriesUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// CLIENTS
			// ------------------------------
			secured.POST("/clients", clientHandler.Create)
			secured.GET("/clients", clientHandler.List)
			secured.GET("/clients/:id", clientHandler.GetByID)
			secured.GET("/clients/code/:code", clientHandler.GetByCode)
			secured.PUT("/clients/:id", clientHandler.Update)
			secured.DELETE("/clients/:id", clientHandler.Delete)
			secured.GET("/clients/:id/exists", clientHandler.ExistsByID)
			secured.GET("/clients/code/:code/exists", clientHandler.ExistsByCode)

			// ------------------------------
			// SERVICES
			// ------------------------------
			secured.POST("/services", serviceHandler.Create)
			secured.GET("/services", serviceHandler.List)
			secured.GET("/services/:id", serviceHandler.GetByID)
			secured.GET("/services/code/:code", serviceHandler.GetByCode)
			secured.PUT("/services/:id", serviceHandler.Update)
			secured.DELETE("/services/:id", serviceHandler.Delete)
			secured.GET("/services/:id/exists", serviceHandler.ExistsByID)
			secured.GET("/services/code/:code/exists", serviceHandler.ExistsByCode)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/appointments/by-date", appointmentHandler.ListByDate)
			secured.GET("/appointments/range", appointmentHandler.ListByDateRange)
			secured.GET("/appointments/conflict", appointmentHandler.HasConflict)
			secured.GET("/appointments/client/:clientId", appointmentHandler.ListByClient)
			secured.GET("/appointments/:id", appointmentHandler.GetByID)
			secured.GET("/appointments/code/:code", appointmentHandler.GetByCode)
			secured.PUT("/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)
			secured.GET("/appointments/:id/exists", appointmentHandler.ExistsByID)
			secured.GET("/appointments/code/:code/exists", appointmentHandler.ExistsByCode)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
