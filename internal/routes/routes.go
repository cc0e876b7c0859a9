package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"invoice-dashboard-backend/internal/config"
	handler "invoice-dashboard-backend/internal/handlers"
	"invoice-dashboard-backend/internal/repository"
	service "invoice-dashboard-backend/internal/services/dashboard"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log *logrus.Logger) {
	invoiceRepo := repository.NewInvoiceRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	revenueRepo := repository.NewRevenueRepository(db)

	dashboardService := service.NewService(
		invoiceRepo,
		customerRepo,
		revenueRepo,
		cfg.CustomerDeletePolicy,
		log,
	)

	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	invoiceHandler := handler.NewInvoiceHandler(dashboardService)
	customerHandler := handler.NewCustomerHandler(dashboardService)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Dashboard summary routes
	dash := api.Group("/dashboard")
	dash.GET("/revenue", dashboardHandler.GetRevenue)
	dash.GET("/latest-invoices", dashboardHandler.GetLatestInvoices)
	dash.GET("/cards", dashboardHandler.GetCards)

	// Invoice routes
	invoices := api.Group("/invoices")
	{
		invoices.GET("", invoiceHandler.List)
		invoices.GET("/pages", invoiceHandler.Pages)
		invoices.GET("/:id", invoiceHandler.GetByID)
		invoices.POST("", invoiceHandler.Create)
		invoices.PUT("/:id", invoiceHandler.Update)
		invoices.DELETE("/:id", invoiceHandler.Delete)
	}

	// Customer routes
	customers := api.Group("/customers")
	{
		customers.GET("", customerHandler.List)
		customers.GET("/filtered", customerHandler.ListFiltered)
		customers.DELETE("/:id", customerHandler.Delete)
	}
}
