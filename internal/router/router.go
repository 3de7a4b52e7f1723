package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "landrecords/docs" // registers swagger docs
	"landrecords/internal/handler"
	"landrecords/internal/middleware"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	OCR          *handler.OCRHandler
	Document     *handler.DocumentHandler
	Translation  *handler.TranslationHandler
	DisputedLand *handler.DisputedLandHandler
	Registry     *handler.RegistryHandler
	Newsletter   *handler.NewsletterHandler
	Health       *handler.HealthHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(h Handlers, allowedOrigins []string) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	v1.GET("/health", h.Health.Capabilities)

	// OCR and processing ledger
	ocr := v1.Group("/ocr")
	ocr.POST("/upload", h.OCR.Upload)
	ocr.POST("/process", h.OCR.Process)
	ocr.POST("/process-upload", h.OCR.ProcessUpload)
	ocr.GET("/stats", h.OCR.Stats)
	ocr.GET("/stats/daily", h.OCR.Daily)
	ocr.GET("/stats/export", h.OCR.ExportStats)

	// Documents
	docs := v1.Group("/documents")
	docs.GET("", h.Document.List)
	docs.GET("/export", h.Document.Export)
	docs.GET("/:id", h.Document.GetByID)
	docs.PATCH("/:id", h.Document.Update)
	docs.DELETE("/:id", h.Document.Delete)
	docs.GET("/:id/download", h.Document.Download)
	docs.POST("/:id/extract", h.Document.Extract)
	docs.POST("/:id/save", h.Document.Save)
	docs.POST("/:id/summarize", h.Document.Summarize)
	docs.POST("/:id/ask", h.Document.Ask)

	// Translation
	tr := v1.Group("/translate")
	tr.POST("/text", h.Translation.TranslateText)
	tr.POST("/document/:id", h.Translation.TranslateDocument)
	tr.POST("/terms", h.Translation.DetectTerms)
	tr.GET("/glossary", h.Translation.Glossary)

	// Disputed lands
	disputes := v1.Group("/disputed-lands")
	disputes.GET("", h.DisputedLand.List)
	disputes.POST("", h.DisputedLand.Create)
	disputes.POST("/batch", h.DisputedLand.CreateBatch)
	disputes.GET("/map-data", h.DisputedLand.MapData)
	disputes.GET("/stats", h.DisputedLand.Stats)
	disputes.GET("/districts", h.DisputedLand.Districts)
	disputes.GET("/tehsils", h.DisputedLand.Tehsils)
	disputes.GET("/:id", h.DisputedLand.GetByID)
	disputes.PUT("/:id", h.DisputedLand.Update)
	disputes.DELETE("/:id", h.DisputedLand.Delete)

	// Registry
	farmers := v1.Group("/farmers")
	farmers.POST("", h.Registry.CreateFarmer)
	farmers.GET("", h.Registry.ListFarmers)
	farmers.GET("/:id", h.Registry.GetFarmer)

	parcels := v1.Group("/parcels")
	parcels.GET("", h.Registry.ListParcels)
	parcels.GET("/:id", h.Registry.GetParcel)

	// Newsletter
	news := v1.Group("/newsletter")
	news.POST("/subscribe", h.Newsletter.Subscribe)
	news.POST("/unsubscribe", h.Newsletter.Unsubscribe)

	return r
}
