// main.go
//
// Relational replacement for the Monastery360 browser localStorage data layer
// Copyright (c) 2026 Monastery360 Project
//
// This file is part of monastery360-datastore.
// monastery360-datastore is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// monastery360-datastore is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with
// monastery360-datastore. If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/joho/godotenv"
	"github.com/monastery360/datastore/internal/config"
	"github.com/monastery360/datastore/internal/database"
	"github.com/monastery360/datastore/internal/handlers"
	"github.com/monastery360/datastore/internal/identity"
	"github.com/monastery360/datastore/internal/middleware"
	"github.com/monastery360/datastore/internal/services"
	"github.com/monastery360/datastore/internal/store"
	"github.com/monastery360/datastore/internal/types"

	_ "github.com/monastery360/datastore/docs/api" // Swagger docs
)

// @title Monastery360 Datastore API
// @version 1.0.0
// @description Data service for the Monastery360 monastery network site
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/monastery360/datastore

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:3000
// @BasePath /api
// @schemes http https

func main() {
	// Load .env when present, then configuration
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// The store is the only durable boundary; everything above it works in
	// whole collections, like the localStorage layer it replaces.
	ctx := services.NewContext(store.NewKV(db))

	// Seed curated content and, optionally, the demo accounts
	bundle, err := services.LoadContentBundle(cfg.ContentFile)
	if err != nil {
		log.Fatalf("Failed to load content bundle: %v", err)
	}
	services.ApplyContent(ctx, bundle)
	if cfg.SeedDemoUsers {
		services.SeedDemoUsers(ctx)
	}

	// External identity provider
	var verifier identity.Verifier
	switch cfg.AuthProvider {
	case config.AuthProviderFirebase:
		verifier, err = identity.NewFirebaseVerifier(context.Background(), cfg.FirebaseProjectID)
		if err != nil {
			log.Fatalf("Failed to initialize Firebase: %v", err)
		}
	case config.AuthProviderAuthorizer:
		verifier, err = identity.NewAuthorizerVerifier(cfg.AuthzClientID, cfg.AuthzURL, "http://localhost:"+cfg.Port)
		if err != nil {
			log.Fatalf("Failed to initialize Authorizer: %v", err)
		}
	default:
		log.Println("No identity provider configured, local credentials only")
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler:          customErrorHandler,
		DisableStartupMessage: false,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("monastery360")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Health
	healthHandler := &handlers.HealthHandler{Cfg: cfg, DB: db}
	app.Get("/health", healthHandler.Health)

	// API routes under /api
	api := app.Group("/api")

	// Create handlers
	authHandler := &handlers.AuthHandler{Ctx: ctx, Verifier: verifier}
	monasteryHandler := &handlers.MonasteryHandler{Ctx: ctx, Tours: bundle.Tours}
	archiveHandler := &handlers.ArchiveHandler{Ctx: ctx}
	eventHandler := &handlers.EventHandler{Ctx: ctx}
	userHandler := &handlers.UserHandler{Ctx: ctx}
	adminHandler := &handlers.AdminHandler{Ctx: ctx}

	// Session routes
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/register", authHandler.Register)
	auth.Post("/session", authHandler.Session)
	auth.Post("/logout", authHandler.Logout)
	auth.Get("/me", authHandler.Me)

	// Content routes (public GET, admin mutations)
	api.Get("/monasteries/tours", monasteryHandler.ListTours)
	api.Get("/monasteries", monasteryHandler.List)
	api.Post("/monasteries", middleware.RequireAdmin(ctx), monasteryHandler.Add)
	api.Patch("/monasteries/:id", middleware.RequireAdmin(ctx), monasteryHandler.Update)
	api.Delete("/monasteries/:id", middleware.RequireAdmin(ctx), monasteryHandler.Delete)

	api.Get("/archives", archiveHandler.List)
	api.Post("/archives", middleware.RequireAdmin(ctx), archiveHandler.Add)
	api.Patch("/archives/:id", middleware.RequireAdmin(ctx), archiveHandler.Update)
	api.Post("/archives/:id/download", archiveHandler.Download)

	api.Get("/events", eventHandler.List)
	api.Post("/events", middleware.RequireAdmin(ctx), eventHandler.Add)

	// User administration routes
	api.Get("/users", middleware.RequireAdmin(ctx), userHandler.List)
	api.Patch("/users/:id/role", middleware.RequireAdmin(ctx), userHandler.UpdateRole)
	api.Post("/users/:id/deactivate", middleware.RequireAdmin(ctx), userHandler.Deactivate)

	// Admin trail, analytics, backup
	admin := api.Group("/admin", middleware.RequireAdmin(ctx))
	admin.Get("/activities", adminHandler.Activities)
	admin.Get("/analytics", adminHandler.Analytics)
	admin.Post("/analytics", adminHandler.GenerateAnalytics)
	admin.Get("/backup", adminHandler.ExportBackup)
	admin.Post("/backup", adminHandler.ImportBackup)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.Port
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}
	if e, ok := err.(*types.CustomError); ok {
		code = e.Code
		message = e.Message
		errorType = e.Type
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    code,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}
