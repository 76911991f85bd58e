package routes

import (
	"workshop_jobs/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathRequisitions   = "/requisitions"
	PathPurchaseOrders = "/purchase-orders"
	PathCatalog        = "/catalog"
)

func addProcurementRoutes(rg *gin.RouterGroup, procurementHandler *handlers.ProcurementHandler, catalogHandler *handlers.CatalogHandler) {
	requisitions := rg.Group(PathRequisitions)
	{
		requisitions.GET("/pending", procurementHandler.ListPendingRequisitions)
	}

	purchaseOrders := rg.Group(PathPurchaseOrders)
	{
		purchaseOrders.POST("", procurementHandler.CreatePurchaseOrder)
		purchaseOrders.GET("", procurementHandler.ListPurchaseOrders)
		purchaseOrders.GET("/:id", procurementHandler.GetPurchaseOrder)
		purchaseOrders.PATCH("/:id/receive", procurementHandler.ReceivePurchaseOrder)
	}

	catalogGroup := rg.Group(PathCatalog)
	{
		catalogGroup.GET("/parts", catalogHandler.ListParts)
	}
}
