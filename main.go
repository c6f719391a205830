package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Tejaspatil1175/nokiabackend/client"
	"github.com/Tejaspatil1175/nokiabackend/config"
	"github.com/Tejaspatil1175/nokiabackend/handler"
	"github.com/Tejaspatil1175/nokiabackend/logger"
	"github.com/Tejaspatil1175/nokiabackend/service"
)

func main() {
	// Initialize configuration
	cfg := config.LoadConfig()

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Sync()

	// OCR capability
	tesseractClient := client.NewTesseractClient(cfg.TesseractDataPath)

	// Telecom capability: live provider, or the deterministic double
	// when no credentials are configured
	var provider service.NetworkProvider
	if cfg.Nokia.UseMock || cfg.Nokia.APIKey == "" {
		logger.Warn("using mock network provider; configure NOKIA_API_KEY for live checks")
		provider = client.NewMockNokiaClient()
	} else {
		provider = client.NewNokiaClient(cfg.Nokia)
	}

	// Service layer
	documentService := service.NewDocumentService(tesseractClient, service.NewPDFProcessor(), cfg.Scoring)
	networkService := service.NewNetworkService(provider, cfg.Scoring)

	// Handler layer
	documentHandler := handler.NewDocumentHandler(documentService)
	networkHandler := handler.NewNetworkHandler(networkService)

	// Setup Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	// Configure max multipart memory (32 MB)
	router.MaxMultipartMemory = 32 << 20

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "Fraud Risk Assessment",
		})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		documents := api.Group("/documents")
		{
			documents.POST("/verify", documentHandler.VerifyDocument)
		}

		network := api.Group("/network")
		{
			network.POST("/fraud-check", networkHandler.FraudCheck)
			network.POST("/verify-number", networkHandler.VerifyNumber)
			network.POST("/sim-swap", networkHandler.CheckSimSwap)
			network.POST("/verify-location", networkHandler.VerifyLocation)
			network.POST("/device-status", networkHandler.DeviceStatus)
		}
	}

	// Start server
	logger.Info("starting fraud risk assessment service", zap.String("port", cfg.ServerPort))
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
