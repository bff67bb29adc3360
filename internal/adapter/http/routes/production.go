package routes

import (
	"bitumen_production/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathConversion        = "/conversion"
	PathBlendSession      = "/blend-session"
	PathStock             = "/stock"
	PathProductionRecords = "/production-records"
)

func addConversionRoutes(rg *gin.RouterGroup, conversionHandler *handlers.ConversionHandler, statusHandler *handlers.StatusHandler) {
	conversion := rg.Group(PathConversion)
	{
		conversion.POST("/preview", conversionHandler.Preview)
		conversion.POST("/start", conversionHandler.Start)
		conversion.POST("/finish", conversionHandler.Finish)
		conversion.GET("/batches/:id", conversionHandler.GetBatch)

		// viewers
		conversion.GET("/active", statusHandler.Active)
		conversion.GET("/active/stream", statusHandler.Stream)
	}
}

func addBlendSessionRoutes(rg *gin.RouterGroup, blendHandler *handlers.BlendSessionHandler) {
	blend := rg.Group(PathBlendSession)
	{
		blend.POST("/recompute", blendHandler.Recompute)
		blend.POST("/finalize", blendHandler.Finalize)
	}
}

func addStockRoutes(rg *gin.RouterGroup, stockHandler *handlers.StockHandler) {
	stock := rg.Group(PathStock)
	{
		stock.GET("", stockHandler.List)
		stock.GET("/:category", stockHandler.Get)
		stock.POST("/:category/credit", stockHandler.Credit)
		stock.POST("/:category/debit", stockHandler.Debit)
		stock.PUT("/:category/price", stockHandler.SetPrice)
	}
}

func addProductionRecordRoutes(rg *gin.RouterGroup, recordHandler *handlers.ProductionRecordHandler) {
	rg.GET(PathProductionRecords+"/:id", recordHandler.GetByID)
}
