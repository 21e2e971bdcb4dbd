package main

import (
	"fmt"
	"log"

	"balju/internal/config"
	"balju/internal/extractor"
	"balju/internal/extractor/gemini"
	"balju/internal/handler"
	"balju/internal/port"
	"balju/internal/router"
	"balju/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Register extractor providers
	extractor.RegisterProvider("gemini", func(c *config.ExtractorConfig) (port.OrderExtractor, error) {
		return gemini.NewExtractor(c), nil
	})

	ex, err := extractor.NewExtractor(&cfg.Extractor)
	if err != nil {
		return fmt.Errorf("failed to initialize extractor: %w", err)
	}

	// Initialize services
	extractSvc := service.NewExtractService(ex)

	// Initialize handlers
	orderH := handler.NewOrderHandler(extractSvc)
	healthH := handler.NewHealthHandler()

	// Setup router
	r := router.Setup(cfg, orderH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
