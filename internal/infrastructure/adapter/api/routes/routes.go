package routes

import (
	"net/http"

	coreport "github.com/fbp-works/economy-service/internal/domain/port/core"
	"github.com/fbp-works/economy-service/internal/infrastructure/adapter/api/handler"
	"github.com/fbp-works/economy-service/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	walletHandler *handler.WalletHandler,
	purchaseHandler *handler.PurchaseHandler,
	catalogHandler *handler.CatalogHandler,
	redemptionHandler *handler.RedemptionHandler,
	eventHandler *handler.EventHandler,
) {
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// User routes, keyed by external identity
	userRoutes := router.Group("/users/:externalId")
	{
		userRoutes.GET("/balance", walletHandler.GetBalance)
		userRoutes.GET("/transactions", walletHandler.ListTransactions)
		userRoutes.POST("/grants", walletHandler.Grant)
		userRoutes.GET("/inventory", catalogHandler.GetInventory)
		userRoutes.POST("/purchases", purchaseHandler.Purchase)
		userRoutes.POST("/redemptions", redemptionHandler.Redeem)
	}

	// Catalog administration
	itemRoutes := router.Group("/items")
	{
		itemRoutes.GET("", catalogHandler.ListItems)
		itemRoutes.POST("", catalogHandler.AddItem)
		itemRoutes.PUT("/:itemId", catalogHandler.EditItem)
		itemRoutes.DELETE("/:itemId", catalogHandler.RemoveItem)
	}

	questRoutes := router.Group("/quests")
	{
		questRoutes.GET("", catalogHandler.ListQuests)
		questRoutes.POST("", catalogHandler.AddQuest)
		questRoutes.PUT("/:questId", catalogHandler.EditQuest)
		questRoutes.DELETE("/:questId", catalogHandler.RemoveQuest)
	}

	router.GET("/redemptions", redemptionHandler.CountUses)

	// External trigger events
	router.POST("/events/subject-renamed", eventHandler.SubjectRenamed)
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, serviceName string, tracingEnabled bool) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())

	if tracingEnabled {
		router.Use(otelgin.Middleware(serviceName))
	}
}
