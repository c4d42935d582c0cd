package routes

import (
	"net/http"
	"time"

	"savora/handlers"
	"savora/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterDeliveryRoutes registers the customer-facing delivery pricing endpoints.
func RegisterDeliveryRoutes(r *gin.Engine, dh *handlers.DeliveryHandler) {
	api := r.Group("/api/delivery")
	{
		api.POST("/quote", dh.QuoteHandler)
		api.GET("/check", dh.CheckHandler)
		api.POST("/estimate", dh.EstimateHandler)
	}
}

// RegisterCatalogRoutes registers the customer-facing catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, ch *handlers.CatalogHandler) {
	api := r.Group("/api/catalog")
	{
		api.GET("/items", ch.ListItemsHandler)
		api.GET("/items/:id", ch.GetItemHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for back-office operations.
func RegisterAdminRoutes(r *gin.Engine, dah *handlers.DeliveryAdminHandler, cah *handlers.CatalogAdminHandler) {
	admin := r.Group("/api/admin")
	{
		admin.GET("/zones", dah.ListZonesHandler)
		admin.POST("/zones", dah.CreateZoneHandler)
		admin.PUT("/zones/:id", dah.UpdateZoneHandler)
		admin.DELETE("/zones/:id", dah.DeleteZoneHandler)

		admin.GET("/charge-rules", dah.ListChargeRulesHandler)
		admin.POST("/charge-rules", dah.CreateChargeRuleHandler)
		admin.PUT("/charge-rules/:id", dah.UpdateChargeRuleHandler)
		admin.DELETE("/charge-rules/:id", dah.DeleteChargeRuleHandler)

		admin.GET("/surcharges", dah.ListSurchargesHandler)
		admin.POST("/surcharges", dah.CreateSurchargeHandler)
		admin.PUT("/surcharges/:id", dah.UpdateSurchargeHandler)
		admin.DELETE("/surcharges/:id", dah.DeleteSurchargeHandler)

		admin.GET("/main-categories", cah.ListMainCategoriesHandler)
		admin.POST("/main-categories", cah.CreateMainCategoryHandler)
		admin.PUT("/main-categories/:id", cah.UpdateMainCategoryHandler)
		admin.DELETE("/main-categories/:id", cah.DeleteMainCategoryHandler)

		admin.GET("/categories", cah.ListCategoriesHandler)
		admin.POST("/categories", cah.CreateCategoryHandler)
		admin.PUT("/categories/:id", cah.UpdateCategoryHandler)
		admin.DELETE("/categories/:id", cah.DeleteCategoryHandler)

		admin.GET("/subcategories", cah.ListSubcategoriesHandler)
		admin.POST("/subcategories", cah.CreateSubcategoryHandler)
		admin.PUT("/subcategories/:id", cah.UpdateSubcategoryHandler)
		admin.DELETE("/subcategories/:id", cah.DeleteSubcategoryHandler)

		admin.GET("/items", cah.ListItemsHandler)
		admin.POST("/items", cah.CreateItemHandler)
		admin.PUT("/items/:id", cah.UpdateItemHandler)
		admin.DELETE("/items/:id", cah.DeleteItemHandler)

		// Weekly schedules for the three hierarchy levels, then items.
		admin.PUT("/schedules/:level/:id", cah.UpsertScheduleHandler)
		admin.DELETE("/schedules/:level/:id", cah.DeleteScheduleHandler)
		admin.PUT("/item-schedules/:id", cah.UpsertItemScheduleHandler)
		admin.DELETE("/item-schedules/:id", cah.DeleteItemScheduleHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, dh *handlers.DeliveryHandler, ch *handlers.CatalogHandler, dah *handlers.DeliveryAdminHandler, cah *handlers.CatalogAdminHandler) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterDeliveryRoutes(r, dh)
	RegisterCatalogRoutes(r, ch)
	RegisterAdminRoutes(r, dah, cah)
	RegisterHealthRoute(r)
}
