package api

import (
	"github.com/gin-gonic/gin"

	"github.com/aqarcrm/aqarcrm/internal/api/handlers"
	"github.com/aqarcrm/aqarcrm/internal/api/middleware"
)

type Router struct {
	engine             *gin.Engine
	propertyHandler    *handlers.PropertyHandler
	clientHandler      *handlers.ClientHandler
	rentalHandler      *handlers.RentalHandler
	maintenanceHandler *handlers.MaintenanceHandler
	visitHandler       *handlers.VisitHandler
	campaignHandler    *handlers.CampaignHandler
	agentHandler       *handlers.AgentHandler
	dashboardHandler   *handlers.DashboardHandler
	syncHandler        *handlers.SyncHandler
}

func NewRouter(
	propertyHandler *handlers.PropertyHandler,
	clientHandler *handlers.ClientHandler,
	rentalHandler *handlers.RentalHandler,
	maintenanceHandler *handlers.MaintenanceHandler,
	visitHandler *handlers.VisitHandler,
	campaignHandler *handlers.CampaignHandler,
	agentHandler *handlers.AgentHandler,
	dashboardHandler *handlers.DashboardHandler,
	syncHandler *handlers.SyncHandler,
) *Router {
	return &Router{
		propertyHandler:    propertyHandler,
		clientHandler:      clientHandler,
		rentalHandler:      rentalHandler,
		maintenanceHandler: maintenanceHandler,
		visitHandler:       visitHandler,
		campaignHandler:    campaignHandler,
		agentHandler:       agentHandler,
		dashboardHandler:   dashboardHandler,
		syncHandler:        syncHandler,
	}
}

func (r *Router) Setup(mode string) *gin.Engine {
	gin.SetMode(mode)
	r.engine = gin.New()
	r.engine.Use(gin.Recovery())
	r.engine.Use(middleware.AuditMiddleware())
	r.engine.Use(middleware.RequestLogger())

	r.setupRoutes()
	return r.engine
}

func (r *Router) setupRoutes() {
	api := r.engine.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	properties := api.Group("/properties")
	{
		properties.POST("", r.propertyHandler.Create)
		properties.GET("", r.propertyHandler.List)
		properties.GET("/:id", r.propertyHandler.Get)
		properties.PUT("/:id", r.propertyHandler.Update)
		properties.PATCH("/:id/status", r.propertyHandler.UpdateStatus)
		properties.DELETE("/:id", r.propertyHandler.Delete)
	}

	clients := api.Group("/clients")
	{
		clients.POST("", r.clientHandler.Create)
		clients.GET("", r.clientHandler.List)
		clients.GET("/:id", r.clientHandler.Get)
		clients.PUT("/:id", r.clientHandler.Update)
		clients.DELETE("/:id", r.clientHandler.Delete)

		clients.POST("/:id/interactions", r.clientHandler.AddInteraction)
		clients.GET("/:id/interactions", r.clientHandler.ListInteractions)
		clients.PUT("/:id/needs", r.clientHandler.SetNeeds)
		clients.GET("/:id/matches", r.clientHandler.Matches)
	}

	contracts := api.Group("/contracts")
	{
		contracts.POST("", r.rentalHandler.CreateContract)
		contracts.GET("", r.rentalHandler.ListContracts)
		contracts.GET("/:id", r.rentalHandler.GetContract)
		contracts.PUT("/:id", r.rentalHandler.UpdateContract)
		contracts.DELETE("/:id", r.rentalHandler.DeleteContract)

		contracts.POST("/:id/payments", r.rentalHandler.CreatePayment)
		contracts.GET("/:id/payments", r.rentalHandler.ListPayments)
	}

	payments := api.Group("/payments")
	{
		payments.GET("", r.rentalHandler.ListPayments)
		payments.POST("/:id/paid", r.rentalHandler.MarkPaid)
		payments.POST("/:id/cancel", r.rentalHandler.CancelPayment)
	}

	alerts := api.Group("/alerts")
	{
		alerts.GET("", r.rentalHandler.ListAlerts)
		alerts.POST("/generate", r.rentalHandler.GenerateAlerts)
		alerts.POST("/:id/resolve", r.rentalHandler.ResolveAlert)
	}

	maintenance := api.Group("/maintenance")
	{
		maintenance.POST("", r.maintenanceHandler.Create)
		maintenance.GET("", r.maintenanceHandler.List)
		maintenance.GET("/:id", r.maintenanceHandler.Get)
		maintenance.PUT("/:id", r.maintenanceHandler.Update)
		maintenance.DELETE("/:id", r.maintenanceHandler.Delete)
	}

	visits := api.Group("/visits")
	{
		visits.POST("", r.visitHandler.Create)
		visits.GET("", r.visitHandler.List)
		visits.GET("/:id", r.visitHandler.Get)
		visits.PUT("/:id", r.visitHandler.Update)
		visits.DELETE("/:id", r.visitHandler.Delete)
		visits.POST("/reminders", r.visitHandler.SendReminders)
	}

	campaigns := api.Group("/campaigns")
	{
		campaigns.POST("", r.campaignHandler.Create)
		campaigns.GET("", r.campaignHandler.List)
		campaigns.GET("/:id", r.campaignHandler.Get)
		campaigns.PUT("/:id", r.campaignHandler.Update)
		campaigns.DELETE("/:id", r.campaignHandler.Delete)
		campaigns.GET("/:id/preview", r.campaignHandler.Preview)
		campaigns.POST("/:id/send", r.campaignHandler.Send)
	}

	agents := api.Group("/agents")
	{
		agents.POST("", r.agentHandler.Create)
		agents.GET("", r.agentHandler.List)
		agents.GET("/:id", r.agentHandler.Get)
		agents.PUT("/:id", r.agentHandler.Update)
		agents.DELETE("/:id", r.agentHandler.Delete)
		agents.PUT("/:id/password", r.agentHandler.SetPassword)
	}

	api.GET("/dashboard", r.dashboardHandler.Get)
	api.POST("/sync", r.syncHandler.Trigger)
}
