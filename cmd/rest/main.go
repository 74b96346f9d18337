package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"gps-tracking-be/internal/bootstrap"
	"gps-tracking-be/internal/config"
	"gps-tracking-be/internal/model"
	"gps-tracking-be/internal/server"
	"gps-tracking-be/internal/tracer"
	"gps-tracking-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	shutdownTracer := tracer.InitTracer(cfg.Tracing)
	defer shutdownTracer(context.Background())

	// 2. Initialize Database
	gormDB, err := database.NewGormDB(database.GormConfig{
		Driver: cfg.Database.Driver,
		DSN:    cfg.Database.Connection,
	})
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}
	// An sqlite store may be in memory, so its schema is created on every start.
	if cfg.Database.Driver == database.DriverSQLite {
		if err := model.AutoMigrate(gormDB); err != nil {
			log.Panicf("Unable to migrate sqlite schema: %v", err)
		}
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 4. Start Background Services
	log.Println("Background: Starting Consumer Service...")
	if err := container.ConsumerService.Consume(ctx); err != nil {
		log.Printf("Background Consumer Error: %v", err)
	}

	// 5. Initialize Server
	srv := server.New(cfg, container)
	go func() {
		<-ctx.Done()
		if err := srv.Shutdown(); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	// 6. Run Server
	if err := srv.Run(); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}
