package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	"github.com/ManuelReschke/Folio/app/controllers"
	"github.com/ManuelReschke/Folio/app/repository"
	"github.com/ManuelReschke/Folio/internal/pkg/cache"
	"github.com/ManuelReschke/Folio/internal/pkg/database"
	"github.com/ManuelReschke/Folio/internal/pkg/env"
	"github.com/ManuelReschke/Folio/internal/pkg/objectstore"
	"github.com/ManuelReschke/Folio/internal/pkg/router"
	"github.com/ManuelReschke/Folio/internal/pkg/scheduler"
	"github.com/ManuelReschke/Folio/internal/pkg/statistics"
	"github.com/ManuelReschke/Folio/internal/pkg/viewmodel"
)

func main() {
	app := NewApplication()

	go func() {
		err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
		if err != nil {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	if m := scheduler.GetManager(); m != nil {
		m.Stop()
	}
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("Shutdown failed: %v", err)
	}
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()
	database.SetupDatabase()
	cache.SetupCache()
	repository.InitializeFactory(database.GetDB())

	deps := controllers.DefaultDependencies()
	deps.Store = setupObjectStore()
	setupScheduler(deps)

	// Define possible base paths
	basePaths := []string{
		"./",        // Current directory
		"../../",    // From cmd/folio to project root
		"../../../", // Fallback
	}

	basePath := ""
	for _, path := range basePaths {
		if _, err := os.Stat(path + "views"); !os.IsNotExist(err) {
			basePath = path
			break
		}
	}

	if basePath == "" {
		panic("Could not find project root directory")
	}

	engine := html.New(basePath+"views", ".html")
	engine.AddFuncMap(viewmodel.TemplateFuncs())
	engine.Reload(env.IsDev())

	// init fiber app
	app := fiber.New(fiber.Config{
		Views:     engine,
		BodyLimit: 8 * 1024 * 1024, // images are capped lower by the upload handler
	})

	// ignore and cache favicon
	app.Use(favicon.New(favicon.Config{
		File:         basePath + "public/assets/icons/favicon.ico",
		URL:          "/favicon.ico",
		CacheControl: "public, max-age=604800",
	}))

	// recovery and logging
	app.Use(recover.New(), logger.New())

	// fiber metrics
	app.Get("/metrics", basicauth.New(basicauth.Config{
		Users: map[string]string{
			env.GetEnv("METRICS_USER", "admin"): env.GetEnv("METRICS_PASSWORD", "change-me"),
		},
	}), monitor.New(monitor.Config{Title: "Folio Metrics"}))

	// static files
	app.Static("/", basePath+"public/assets", fiber.Static{
		CacheDuration: 15 * time.Second,
		Compress:      true,
	})

	// SWAGGER / OPENAPI
	openAPICfg := swagger.Config{
		BasePath: "/docs/api/",
		FilePath: basePath + "public/docs/v1/openapi.yml",
		Path:     "v1",
	}
	app.Use(swagger.New(openAPICfg))

	// ROUTER
	router.InstallRouter(app, deps)

	return app
}

// setupObjectStore returns nil when uploads are disabled or the bucket is unreachable
func setupObjectStore() objectstore.Store {
	cfg, err := objectstore.LoadConfig()
	if err != nil {
		log.Printf("[ObjectStore] Invalid configuration, uploads disabled: %v", err)
		return nil
	}
	if !cfg.IsEnabled() {
		log.Println("[ObjectStore] Disabled")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	client, err := objectstore.NewClient(ctx, cfg)
	if err != nil {
		log.Printf("[ObjectStore] Could not connect, uploads disabled: %v", err)
		return nil
	}
	return client
}

func setupScheduler(deps controllers.Dependencies) {
	refresh := func() error {
		_, err := statistics.UpdateStatisticsCache(deps.Repos)
		return err
	}
	m := scheduler.NewManager(
		deps.Content,
		refresh,
		env.GetDuration("PUBLISH_SWEEP_INTERVAL", scheduler.DefaultPublishInterval),
		env.GetDuration("STATS_REFRESH_INTERVAL", scheduler.DefaultStatsInterval),
	)
	scheduler.InitializeManager(m)
	m.Start()
}
