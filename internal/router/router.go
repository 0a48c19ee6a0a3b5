package router

import (
	"github.com/gin-gonic/gin"

	"invoiceflow/internal/config"
	"invoiceflow/internal/handler"
	"invoiceflow/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	invoiceH *handler.InvoiceHandler,
	clientH *handler.ClientHandler,
	productH *handler.ProductHandler,
	settingsH *handler.SettingsHandler,
	backupH *handler.BackupHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health check
	r.GET("/healthz", healthH.Liveness)

	v1 := r.Group("/api/v1")

	invoices := v1.Group("/invoices")
	invoices.GET("", invoiceH.List)
	invoices.GET("/export", invoiceH.Export)
	invoices.POST("/next-number", invoiceH.NextNumber)
	invoices.GET("/:id", invoiceH.GetByID)
	invoices.POST("", invoiceH.Save)
	invoices.DELETE("/:id", invoiceH.Delete)

	clients := v1.Group("/clients")
	clients.GET("", clientH.List)
	clients.GET("/:id", clientH.GetByID)
	clients.POST("", clientH.Save)
	clients.DELETE("/:id", clientH.Delete)

	products := v1.Group("/products")
	products.GET("", productH.List)
	products.GET("/:id", productH.GetByID)
	products.POST("", productH.Save)
	products.DELETE("/:id", productH.Delete)

	settings := v1.Group("/settings")
	settings.GET("", settingsH.Get)
	settings.PUT("", settingsH.Update)
	settings.GET("/currencies", settingsH.Currencies)

	backup := v1.Group("/backup")
	backup.GET("/export", backupH.Export)
	backup.POST("/import", backupH.Import)
	backup.POST("/clear", backupH.Clear)

	return r
}
