package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/m1z23r/drift/pkg/middleware"
	"github.com/mihailo/promptdeck-api/internal/config"
	"github.com/mihailo/promptdeck-api/internal/database"
	"github.com/mihailo/promptdeck-api/internal/handlers"
	authmw "github.com/mihailo/promptdeck-api/internal/middleware"
	"github.com/mihailo/promptdeck-api/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	jwtService := services.NewJWTService(cfg.JWTSecret, cfg.JWTAccessExpiry)
	collectionService := services.NewCollectionService(db)
	templateService := services.NewTemplateService(db)
	variableService := services.NewVariableService(db)

	collectionHandler := handlers.NewCollectionHandler(collectionService)
	templateHandler := handlers.NewTemplateHandler(templateService, collectionService)
	variableHandler := handlers.NewVariableHandler(variableService, templateService)

	app := drift.New()

	if cfg.IsProduction() {
		app.SetMode(drift.ReleaseMode)
	} else {
		app.SetMode(drift.DebugMode)
	}

	app.Use(middleware.Recovery())
	app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:       86400,
	}))
	app.Use(middleware.BodyParser())

	api := app.Group("/api/v1")

	protected := api.Group("")
	protected.Use(authmw.Auth(jwtService))

	protected.Get("/collections", collectionHandler.List)
	protected.Post("/collections", collectionHandler.Create)
	protected.Patch("/collections/:collectionId", collectionHandler.Update)

	protected.Get("/templates", templateHandler.List)
	protected.Post("/templates", templateHandler.Create)
	protected.Patch("/templates/:templateId", templateHandler.Update)

	protected.Get("/templates/:templateId/variables", variableHandler.List)
	protected.Post("/templates/:templateId/variables", variableHandler.Create)
	protected.Patch("/templates/:templateId/variables/:variableId", variableHandler.Update)
	protected.Delete("/templates/:templateId/variables/:variableId", variableHandler.Delete)

	api.Get("/health", func(c *drift.Context) {
		_ = c.JSON(200, map[string]string{"status": "ok"})
	})

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		log.Printf("Server starting on %s", addr)
		if err := app.Run(addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
}
